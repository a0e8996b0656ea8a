package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/surfaid/vetflow/internal/model"
)

// RenderSummary renders the batch summary as a boxed table for the
// terminal.
func RenderSummary(summary model.BatchSummary) string {
	rows := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"Suppliers screened", summary.Suppliers, SubtleStyle},
		{"Clear", summary.Clear, SuccessStyle},
		{"False positives only", summary.FalsePositives, SuccessStyle},
		{"Needs review", summary.NeedsReview, WarningStyle},
		{"True positives", summary.TruePositives, ErrorStyle},
		{"Errored", summary.Errored, ErrorStyle},
		{"Hits suppressed as noise", summary.SuppressedHits, SubtleStyle},
	}

	var b strings.Builder
	for _, row := range rows {
		label := TableCellStyle.Render(fmt.Sprintf("%-26s", row.label))
		b.WriteString(label + row.style.Render(fmt.Sprintf("%4d", row.value)) + "\n")
	}
	return RenderBox("Screening summary", strings.TrimRight(b.String(), "\n"))
}

// RenderVerdict renders a one-line outcome for a supplier.
func RenderVerdict(result model.SupplierResult) string {
	if result.Err != nil {
		return FormatError(fmt.Sprintf("%s: %v", result.Supplier.Name, result.Err))
	}
	line := fmt.Sprintf("%s: %s (%d hits)", result.Supplier.Name, result.Verdict.Worst, result.Verdict.HitCount)
	switch result.Verdict.Worst {
	case model.TruePositive:
		return FormatError(line)
	case model.NeedsReview:
		return FormatWarning(line)
	default:
		return FormatSuccess(line)
	}
}
