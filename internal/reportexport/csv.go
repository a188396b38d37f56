package reportexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"redline/internal/docdiff"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Section ID",
	"Section Title",
	"Change Type",
	"Training Flag",
	"Old Content",
	"New Content",
}

// CSVWriter wraps csv.Writer for exporting comparison reports as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteChanges converts the report's flagged changes to CSV rows and writes them.
func (w *CSVWriter) WriteChanges(changes []docdiff.FlaggedChange) error {
	for i := range changes {
		if err := w.csv.Write(changeToRow(&changes[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary appends summary, metadata, and training indicator rows after a
// blank separator row.
func (w *CSVWriter) WriteSummary(report *docdiff.Report) error {
	rows := [][]string{
		{},
		{"Total Changes", strconv.Itoa(report.Summary.TotalChanges)},
		{"Added", strconv.Itoa(report.Summary.Added)},
		{"Modified", strconv.Itoa(report.Summary.Modified)},
		{"Removed", strconv.Itoa(report.Summary.Removed)},
		{"Old Document", report.OldMetadata.SopID, report.OldMetadata.Version},
		{"New Document", report.NewMetadata.SopID, report.NewMetadata.Version},
		{},
		{"Procedural Steps", formatBool(report.Indicators.ProceduralSteps)},
		{"Safety Warnings", formatBool(report.Indicators.SafetyWarnings)},
		{"Limits / Specifications", formatBool(report.Indicators.LimitsSpecifications)},
		{"Frequency / Timing", formatBool(report.Indicators.FrequencyTiming)},
		{"Required Documentation", formatBool(report.Indicators.RequiredDocumentation)},
		{"Roles / Responsibilities", formatBool(report.Indicators.RoleResponsibilities)},
	}
	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the full report (BOM, header, changes, summary) to w.
func WriteCSV(w io.Writer, report *docdiff.Report) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteChanges(report.Changes); err != nil {
		return err
	}
	if err := cw.WriteSummary(report); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func changeToRow(change *docdiff.FlaggedChange) []string {
	return []string{
		change.SectionID,
		change.SectionTitle,
		string(change.ChangeType),
		change.TrainingFlag,
		change.OldContent,
		change.NewContent,
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
