package reportexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline/internal/docdiff"
)

func testReport() *docdiff.Report {
	return &docdiff.Report{
		OldMetadata: docdiff.Metadata{Title: "Tank Cleaning SOP", SopID: "QMS-PRD-0042", Version: "2"},
		NewMetadata: docdiff.Metadata{Title: "Tank Cleaning SOP", SopID: "QMS-PRD-0042", Version: "3"},
		Summary:     docdiff.ChangeSummary{TotalChanges: 2, Added: 1, Modified: 1},
		Changes: []docdiff.FlaggedChange{
			{
				SectionChange: docdiff.SectionChange{
					SectionID:    "1.",
					SectionTitle: "Purpose",
					ChangeType:   docdiff.ChangeModified,
					OldContent:   "Clean the tank weekly.",
					NewContent:   "Clean the tank daily.",
				},
				TrainingFlag: "Frequency change",
			},
			{
				SectionChange: docdiff.SectionChange{
					SectionID:    "5.",
					SectionTitle: "Safety",
					ChangeType:   docdiff.ChangeAdded,
					NewContent:   "Wear PPE at all times.",
				},
				TrainingFlag: "New content",
			},
		},
		Indicators: docdiff.TrainingIndicators{FrequencyTiming: true},
	}
}

func TestWriteCSV_StartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testReport()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), BOM))
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testReport()))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), BOM)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, columns, rows[0])

	assert.Equal(t, "1.", rows[1][0])
	assert.Equal(t, "Purpose", rows[1][1])
	assert.Equal(t, "modified", rows[1][2])
	assert.Equal(t, "Frequency change", rows[1][3])
	assert.Equal(t, "Clean the tank weekly.", rows[1][4])
	assert.Equal(t, "Clean the tank daily.", rows[1][5])

	assert.Equal(t, "5.", rows[2][0])
	assert.Equal(t, "added", rows[2][2])
	assert.Equal(t, "", rows[2][4])
}

func TestWriteCSV_SummaryRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testReport()))

	s := buf.String()
	assert.Contains(t, s, "Total Changes,2")
	assert.Contains(t, s, "Added,1")
	assert.Contains(t, s, "Modified,1")
	assert.Contains(t, s, "Removed,0")
	assert.Contains(t, s, "Old Document,QMS-PRD-0042,2")
	assert.Contains(t, s, "New Document,QMS-PRD-0042,3")
}

func TestWriteCSV_IndicatorRows(t *testing.T) {
	report := testReport()
	report.Indicators.ProceduralSteps = true

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report))

	s := buf.String()
	assert.Contains(t, s, "Procedural Steps,Yes")
	assert.Contains(t, s, "Safety Warnings,No")
	assert.Contains(t, s, "Limits / Specifications,No")
	assert.Contains(t, s, "Frequency / Timing,Yes")
	assert.Contains(t, s, "Required Documentation,No")
	assert.Contains(t, s, "Roles / Responsibilities,No")
}

func TestWriteCSV_EmptyChanges(t *testing.T) {
	report := testReport()
	report.Changes = nil
	report.Summary = docdiff.ChangeSummary{}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report))
	assert.Contains(t, buf.String(), "Total Changes,0")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Tank_Cleaning_SOP", SanitizeFilename("Tank Cleaning SOP"))
	assert.Equal(t, "QMS-PRD-0042", SanitizeFilename("QMS-PRD-0042"))
	assert.Equal(t, "a_b", SanitizeFilename("a///...b"))
	assert.Equal(t, "trimmed", SanitizeFilename("__trimmed__"))

	long := SanitizeFilename(string(bytes.Repeat([]byte("x"), 150)))
	assert.Len(t, long, 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("QMS-PRD-0042", "csv")
	assert.Regexp(t, `^QMS-PRD-0042_\d{4}-\d{2}-\d{2}\.csv$`, name)

	name = BuildFilename("My Report!", "xlsx")
	assert.Regexp(t, `^My_Report_\d{4}-\d{2}-\d{2}\.xlsx$`, name)
}
