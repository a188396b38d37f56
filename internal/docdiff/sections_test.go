package docdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline/internal/docdiff"
)

func TestExtractSections_NumericHeadings(t *testing.T) {
	text := "1. Purpose\nThis SOP defines cleaning steps.\n2. Scope\nApplies to all lab equipment."

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 2)

	assert.Equal(t, "1.", sections[0].ID)
	assert.Equal(t, "Purpose", sections[0].Title)
	assert.Equal(t, "This SOP defines cleaning steps.", sections[0].Content)
	assert.Equal(t, 2, sections[0].Level)

	assert.Equal(t, "2.", sections[1].ID)
	assert.Equal(t, "Scope", sections[1].Title)
}

func TestExtractSections_NestedNumbering(t *testing.T) {
	text := "1.1 Equipment list\nUse calibrated scales.\n1.1.1 Scale maintenance\nClean weekly."

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 2)

	assert.Equal(t, "1.1", sections[0].ID)
	assert.Equal(t, 2, sections[0].Level)
	assert.Equal(t, "1.1.1", sections[1].ID)
	assert.Equal(t, 3, sections[1].Level)
}

func TestExtractSections_SectionWordHeadings(t *testing.T) {
	text := "Section 1: Introduction\nBackground material.\nsection 2 Cleaning\nWipe surfaces."

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 2)

	assert.Equal(t, "Section 1", sections[0].ID)
	assert.Equal(t, "Introduction", sections[0].Title)
	assert.Equal(t, "section 2", sections[1].ID)
	assert.Equal(t, "Cleaning", sections[1].Title)
}

func TestExtractSections_AlphaHeadings(t *testing.T) {
	text := "A.1 Appendix one\ncontent a\nB.2 Appendix two\ncontent b"

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 2)
	assert.Equal(t, "A.1", sections[0].ID)
	assert.Equal(t, "Appendix one", sections[0].Title)
}

func TestExtractSections_BareKeywordHeadings(t *testing.T) {
	text := "Purpose\nDefines the cleaning procedure.\nScope:\nAll production lines."

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 2)

	assert.Equal(t, "Purpose", sections[0].ID)
	assert.Equal(t, "Purpose", sections[0].Title)
	assert.Equal(t, "Defines the cleaning procedure.", sections[0].Content)
	assert.Equal(t, "Scope", sections[1].ID)
}

func TestExtractSections_KeywordWithInlineTextIsNotBareHeading(t *testing.T) {
	// "Purpose: defines..." has trailing text, so the bare keyword pattern
	// must not match; the line lands in the preamble as body text.
	text := "Purpose: defines the cleaning procedure."

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 1)
	assert.Equal(t, "Preamble", sections[0].ID)
	assert.Equal(t, 0, sections[0].Level)
	assert.Equal(t, text, sections[0].Content)
}

func TestExtractSections_PreambleBeforeFirstHeading(t *testing.T) {
	text := "ACME Pharma\nControlled copy\n1. Purpose\nDefines steps."

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 2)

	assert.Equal(t, "Preamble", sections[0].ID)
	assert.Equal(t, "Document Header", sections[0].Title)
	assert.Equal(t, "ACME Pharma\nControlled copy", sections[0].Content)
	assert.Equal(t, "1.", sections[1].ID)
}

func TestExtractSections_EmptyInput(t *testing.T) {
	assert.Empty(t, docdiff.ExtractSections(""))
	assert.Empty(t, docdiff.ExtractSections("\n\n   \n"))
}

func TestExtractSections_NoHeadingsAtAll(t *testing.T) {
	text := "just a plain paragraph\nwith a second line"

	sections := docdiff.ExtractSections(text)
	require.Len(t, sections, 1)
	assert.Equal(t, "Preamble", sections[0].ID)
	assert.Equal(t, "just a plain paragraph\nwith a second line", sections[0].Content)
}

func TestExtractSections_FirstPatternWins(t *testing.T) {
	// "1 Safety" matches the numeric pattern before the alpha or keyword
	// patterns get a chance.
	sections := docdiff.ExtractSections("1 Safety\nwear gloves")
	require.Len(t, sections, 1)
	assert.Equal(t, "1", sections[0].ID)
	assert.Equal(t, "Safety", sections[0].Title)
	assert.Equal(t, 1, sections[0].Level)
}
