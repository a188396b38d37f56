package docdiff

import (
	"regexp"
	"sort"
	"strings"
)

// ExtractDocument parses raw text into an ExtractedDocument. Total over any
// string input: empty or unstructured text degrades to zero or one preamble
// section and near-empty metadata, never an error.
func ExtractDocument(rawText, filename string) *ExtractedDocument {
	return &ExtractedDocument{
		Text:     rawText,
		Sections: ExtractSections(rawText),
		Metadata: ExtractMetadata(rawText, filename),
	}
}

// CompareDocuments aligns two revisions by section id and classifies every
// aligned or unaligned pair. Sections equal under normalize produce no entry.
// Alignment is strictly by declared id: a renumbered section surfaces as
// added plus removed, not modified.
func CompareDocuments(oldDoc, newDoc *ExtractedDocument) *ComparisonResult {
	oldByID := sectionsByID(oldDoc.Sections)
	newByID := sectionsByID(newDoc.Sections)

	var changes []SectionChange

	for _, id := range oldByID.order {
		oldSec := oldByID.byID[id]
		newSec, exists := newByID.byID[id]
		if !exists {
			changes = append(changes, SectionChange{
				SectionID:    id,
				SectionTitle: oldSec.Title,
				ChangeType:   ChangeRemoved,
				OldContent:   oldSec.Content,
			})
			continue
		}
		if normalize(oldSec.Content) != normalize(newSec.Content) {
			changes = append(changes, SectionChange{
				SectionID:    id,
				SectionTitle: newSec.Title,
				ChangeType:   ChangeModified,
				OldContent:   oldSec.Content,
				NewContent:   newSec.Content,
			})
		}
	}

	for _, id := range newByID.order {
		if _, exists := oldByID.byID[id]; exists {
			continue
		}
		newSec := newByID.byID[id]
		changes = append(changes, SectionChange{
			SectionID:    id,
			SectionTitle: newSec.Title,
			ChangeType:   ChangeAdded,
			NewContent:   newSec.Content,
		})
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return naturalLess(changes[i].SectionID, changes[j].SectionID)
	})

	summary := ChangeSummary{TotalChanges: len(changes)}
	for _, ch := range changes {
		switch ch.ChangeType {
		case ChangeAdded:
			summary.Added++
		case ChangeModified:
			summary.Modified++
		case ChangeRemoved:
			summary.Removed++
		}
	}

	return &ComparisonResult{
		OldDocument: oldDoc,
		NewDocument: newDoc,
		Changes:     changes,
		Summary:     summary,
	}
}

// sectionIndex is an insertion-ordered id to section mapping. Duplicate ids
// keep the last occurrence at the first occurrence's position.
type sectionIndex struct {
	byID  map[string]DocumentSection
	order []string
}

func sectionsByID(sections []DocumentSection) sectionIndex {
	idx := sectionIndex{byID: make(map[string]DocumentSection, len(sections))}
	for _, sec := range sections {
		if _, seen := idx.byID[sec.ID]; !seen {
			idx.order = append(idx.order, sec.ID)
		}
		idx.byID[sec.ID] = sec
	}
	return idx
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalize reduces text to a canonical form for the equality test only:
// lowercase, whitespace runs collapsed to single spaces, ends trimmed. It is
// idempotent. Contents differing only in case or spacing compare equal; any
// other difference counts as modified.
func normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ToLower(text), " "))
}

// naturalLess compares section ids with embedded numbers compared
// numerically, so "1.2" orders before "1.10" and both before "2".
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aTok, aNum, aRest := nextToken(a)
		bTok, bNum, bRest := nextToken(b)

		if aNum && bNum {
			// Compare digit runs numerically: shorter trimmed run is smaller.
			at := strings.TrimLeft(aTok, "0")
			bt := strings.TrimLeft(bTok, "0")
			if len(at) != len(bt) {
				return len(at) < len(bt)
			}
			if at != bt {
				return at < bt
			}
		} else if aTok != bTok {
			return aTok < bTok
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// nextToken splits off the leading run of digits or non-digits.
func nextToken(s string) (tok string, isNum bool, rest string) {
	isNum = s[0] >= '0' && s[0] <= '9'
	i := 1
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') == isNum {
		i++
	}
	return s[:i], isNum, s[i:]
}
