package docdiff

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern is one entry in the heading detection cascade. id and title
// name the capture groups used for the section id and title; a zero title
// index means the id capture doubles as the title.
type headingPattern struct {
	re    *regexp.Regexp
	id    int
	title int
}

// Heading patterns are tried in order; the first match wins for a line.
// No scoring or lookahead across patterns.
var headingPatterns = []headingPattern{
	// Numeric headings: "1.", "1.1", "1.1.1" followed by title text.
	{re: regexp.MustCompile(`^(\d+\.?\d*\.?\d*)\s+(.+)$`), id: 1, title: 2},
	// "Section N: Title" / "Section N Title".
	{re: regexp.MustCompile(`(?i)^(Section\s+\d+):?\s*(.+)$`), id: 1, title: 2},
	// Alpha-numeric headings: "A.", "A.1", "AB.2.3".
	{re: regexp.MustCompile(`^([A-Z]{1,3}\.?\d*\.?\d*)\s+(.+)$`), id: 1, title: 2},
	// Bare SOP keyword headings with nothing else on the line.
	{re: regexp.MustCompile(`(?i)^(Purpose|Scope|Procedure|Responsibilities|References|Definitions|Equipment|Materials|Safety|Quality|Documentation):?\s*$`), id: 1},
}

// preambleID labels the synthetic section holding text that appears before
// the first recognized heading.
const preambleID = "Preamble"

// ExtractSections parses raw document text into an ordered section sequence
// using the heading pattern cascade. It never fails: text with no
// recognizable headings yields either an empty slice or a single preamble
// section containing the whole text.
func ExtractSections(text string) []DocumentSection {
	var sections []DocumentSection
	var current *DocumentSection
	syntheticCounter := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if id, title, ok := matchHeading(line); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			if id == "" {
				syntheticCounter++
				id = fmt.Sprintf("Section %d", syntheticCounter)
			}
			if title == "" {
				title = line
			}
			current = &DocumentSection{
				ID:    id,
				Title: title,
				Level: 1 + strings.Count(id, "."),
			}
			continue
		}

		// Body line: append to the open section, or open the preamble if
		// content appears before any recognized heading.
		if current == nil {
			current = &DocumentSection{
				ID:    preambleID,
				Title: "Document Header",
				Level: 0,
			}
		}
		if current.Content == "" {
			current.Content = line
		} else {
			current.Content += "\n" + line
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// matchHeading tests a line against the cascade and returns the section id
// and title of the first matching pattern.
func matchHeading(line string) (id, title string, ok bool) {
	for _, p := range headingPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		id = strings.TrimSpace(m[p.id])
		if p.title > 0 {
			title = strings.TrimSpace(m[p.title])
		} else {
			title = id
		}
		return id, title, true
	}
	return "", "", false
}
