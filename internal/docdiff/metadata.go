package docdiff

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Each metadata field has its own ordered pattern list; the first successful
// capture wins and the fields are independent of each other.
var (
	sopIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)SOP[-\s]?ID:?\s*([A-Za-z0-9][A-Za-z0-9-]*)`),
		regexp.MustCompile(`(?i)Document\s+(?:ID|Number|No\.?):?\s*([A-Za-z0-9][A-Za-z0-9-]*)`),
		regexp.MustCompile(`(?i)SOP\s+(?:No\.?|Number):?\s*([A-Za-z0-9][A-Za-z0-9-]*)`),
		// Bare structured codes like "QMS-PRD-0042-001".
		regexp.MustCompile(`\b([A-Z]{2,4}-[A-Z]{2,4}-\d{3,4}(?:-\d{1,3})?)\b`),
	}

	versionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bVersion\s*:\s*([A-Za-z0-9.]+)`),
		regexp.MustCompile(`(?i)\bVersion\s+(\d[A-Za-z0-9.]*)`),
		regexp.MustCompile(`(?i)\bRev(?:ision)?\b\.?\s*:?\s*([A-Za-z0-9.]+)`),
		regexp.MustCompile(`\bv(\d+(?:\.\d+)+)\b`),
	}

	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Title:\s*(.+)`),
		regexp.MustCompile(`(?im)^(.*Standard Operating Procedure.*)$`),
		regexp.MustCompile(`(?i)SOP:\s*(.+)`),
	}

	departmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bDepartment\s*:\s*(.+)`),
		regexp.MustCompile(`(?i)\bDept\b\.?\s*:?\s*(.+)`),
	}
)

// maxTitleLen guards against a title pattern capturing a whole paragraph.
const maxTitleLen = 200

// ExtractMetadata pulls document identity fields from the raw text and the
// source filename. Fields that match nothing stay empty, except SopID which
// falls back to the filename and finally to "N/A".
func ExtractMetadata(text, filename string) Metadata {
	return Metadata{
		Title:      extractTitle(text, filename),
		Version:    extractVersion(text),
		SopID:      extractSopID(text, filename),
		Department: extractDepartment(text),
	}
}

func extractSopID(text, filename string) string {
	if id := firstMatch(sopIDPatterns, text); id != "" {
		return id
	}
	// Filenames often carry the code with underscores instead of hyphens.
	name := strings.ReplaceAll(filename, "_", "-")
	if id := firstMatch(sopIDPatterns[len(sopIDPatterns)-1:], name); id != "" {
		return id
	}
	return "N/A"
}

func extractVersion(text string) string {
	return firstMatch(versionPatterns, text)
}

func extractTitle(text, filename string) string {
	// Only the document head is considered, to avoid matching references to
	// other SOPs deep in the body.
	head := strings.Join(headLines(text, 10), "\n")
	for _, re := range titlePatterns {
		m := re.FindStringSubmatch(head)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		if title != "" && len(title) < maxTitleLen {
			return title
		}
	}
	return titleFromFilename(filename)
}

func extractDepartment(text string) string {
	return firstMatch(departmentPatterns, text)
}

// firstMatch returns the trimmed first capture group of the first pattern
// that matches, or "".
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// headLines returns up to n trimmed non-empty leading lines of text.
func headLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}

// titleFromFilename derives a readable title from the source filename by
// stripping the extension and mapping separators to spaces.
func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.TrimSpace(base)
}
