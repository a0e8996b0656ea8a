package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/surfaid/vetflow/internal/model"
)

// Sheet names in the output workbook.
const (
	sheetVerdicts = "Verdicts"
	sheetHits     = "Hits"
	sheetSummary  = "Summary"
)

// XLSXWriter writes the run outcome as an xlsx workbook: one supplier per
// row on the Verdicts sheet, every classified hit (including suppressed
// false positives) on the Hits sheet, and the batch counts on Summary.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates a writer targeting the given path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write renders results and summary and saves the workbook.
func (w *XLSXWriter) Write(_ context.Context, results []model.SupplierResult, summary model.BatchSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetVerdicts); err != nil {
		return fmt.Errorf("failed to prepare verdict sheet: %w", err)
	}
	for _, name := range []string{sheetHits, sheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	if err := w.writeVerdicts(f, results); err != nil {
		return err
	}
	if err := w.writeHits(f, results); err != nil {
		return err
	}
	if err := w.writeSummary(f, summary); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (w *XLSXWriter) writeVerdicts(f *excelize.File, results []model.SupplierResult) error {
	header := []any{"Row", "Supplier", "Country", "Verdict", "Hits", "Suppressed", "Error"}
	if err := f.SetSheetRow(sheetVerdicts, "A1", &header); err != nil {
		return fmt.Errorf("failed to write verdict header: %w", err)
	}

	for i, result := range results {
		verdict := result.Verdict.Worst.String()
		errText := ""
		if result.Err != nil {
			verdict = "ERROR"
			errText = result.Err.Error()
		}

		suppressed := 0
		for _, h := range result.Verdict.Hits {
			if h.Disposition == model.FalsePositive {
				suppressed++
			}
		}

		row := []any{
			result.Supplier.RowID,
			result.Supplier.Name,
			result.Supplier.Country,
			verdict,
			result.Verdict.HitCount,
			suppressed,
			errText,
		}
		cellRef := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetVerdicts, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write verdict row: %w", err)
		}
	}
	return nil
}

func (w *XLSXWriter) writeHits(f *excelize.File, results []model.SupplierResult) error {
	header := []any{"Supplier", "Matched Name", "Source List", "Disposition", "Rule", "Confidence", "Country", "DOB", "Reference"}
	if err := f.SetSheetRow(sheetHits, "A1", &header); err != nil {
		return fmt.Errorf("failed to write hit header: %w", err)
	}

	rowNum := 2
	for _, result := range results {
		for _, h := range result.Verdict.Hits {
			row := []any{
				result.Supplier.Name,
				h.Hit.MatchedName,
				h.Hit.SourceList,
				h.Disposition.String(),
				h.Reason,
				fmt.Sprintf("%.3f", h.Confidence),
				h.Hit.Country,
				h.Hit.DateOfBirth,
				h.Hit.ReferenceID,
			}
			cellRef := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(sheetHits, cellRef, &row); err != nil {
				return fmt.Errorf("failed to write hit row: %w", err)
			}
			rowNum++
		}
	}
	return nil
}

func (w *XLSXWriter) writeSummary(f *excelize.File, summary model.BatchSummary) error {
	rows := [][]any{
		{"Suppliers screened", summary.Suppliers},
		{"Clear", summary.Clear},
		{"False positives only", summary.FalsePositives},
		{"Needs review", summary.NeedsReview},
		{"True positives", summary.TruePositives},
		{"Errored", summary.Errored},
		{"Total hits", summary.TotalHits},
		{"Hits suppressed as noise", summary.SuppressedHits},
	}
	for i, row := range rows {
		cellRef := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetSummary, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}
