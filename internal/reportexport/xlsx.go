package reportexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"redline/internal/docdiff"
)

const (
	changesSheet = "Changes"
	summarySheet = "Summary"
)

// WriteXLSX renders the report as a two-sheet workbook and writes it to w.
// The Changes sheet mirrors the CSV columns; the Summary sheet carries the
// counts, document metadata, and training indicators.
func WriteXLSX(w io.Writer, report *docdiff.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", changesSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	if err := writeChangesSheet(f, report); err != nil {
		return err
	}
	if err := writeSummarySheet(f, report); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeChangesSheet(f *excelize.File, report *docdiff.Report) error {
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(changesSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing changes header: %w", err)
	}

	for i := range report.Changes {
		change := &report.Changes[i]
		row := []interface{}{
			change.SectionID,
			change.SectionTitle,
			string(change.ChangeType),
			change.TrainingFlag,
			change.OldContent,
			change.NewContent,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(changesSheet, cell, &row); err != nil {
			return fmt.Errorf("writing change row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report *docdiff.Report) error {
	rows := [][]interface{}{
		{"Total Changes", report.Summary.TotalChanges},
		{"Added", report.Summary.Added},
		{"Modified", report.Summary.Modified},
		{"Removed", report.Summary.Removed},
		{},
		{"Old Document", report.OldMetadata.Title},
		{"Old SOP ID", report.OldMetadata.SopID},
		{"Old Version", report.OldMetadata.Version},
		{"New Document", report.NewMetadata.Title},
		{"New SOP ID", report.NewMetadata.SopID},
		{"New Version", report.NewMetadata.Version},
		{},
		{"Procedural Steps", formatBool(report.Indicators.ProceduralSteps)},
		{"Safety Warnings", formatBool(report.Indicators.SafetyWarnings)},
		{"Limits / Specifications", formatBool(report.Indicators.LimitsSpecifications)},
		{"Frequency / Timing", formatBool(report.Indicators.FrequencyTiming)},
		{"Required Documentation", formatBool(report.Indicators.RequiredDocumentation)},
		{"Roles / Responsibilities", formatBool(report.Indicators.RoleResponsibilities)},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
