// Package report handles the spreadsheet edges of a run: reading the
// supplier list and writing the reviewed-verdict workbook.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/surfaid/vetflow/internal/common"
	"github.com/surfaid/vetflow/internal/model"
)

// Input column headers, matched case-insensitively.
const (
	ColumnName       = "Name"
	ColumnFirstName  = "FirstName"
	ColumnMiddleName = "MiddleName"
	ColumnLastName   = "LastName"
	ColumnGender     = "Gender"
	ColumnDOB        = "DOB"
	ColumnCountry    = "Country"
	ColumnEntityType = "EntityType"
)

// XLSXReader reads suppliers from the first sheet of an xlsx workbook.
type XLSXReader struct {
	path string
}

// NewXLSXReader creates a reader for the given workbook path.
func NewXLSXReader(path string) *XLSXReader {
	return &XLSXReader{path: path}
}

// Read loads every supplier row. The header row is mapped by name, so
// column order does not matter; a missing Name column is a configuration
// error, while rows with an empty name are skipped with a warning.
func (r *XLSXReader) Read(_ context.Context) ([]model.Supplier, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open supplier file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no sheets in %s", common.ErrInvalidConfig, r.path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, common.ErrNoSuppliers
	}

	headers := make(map[string]int)
	for i, header := range rows[0] {
		headers[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := headers[strings.ToLower(ColumnName)]; !ok {
		return nil, fmt.Errorf("%w: required column %q not found", common.ErrInvalidConfig, ColumnName)
	}

	cell := func(row []string, column string) string {
		idx, ok := headers[strings.ToLower(column)]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var suppliers []model.Supplier
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isEmptyRow(row) {
			continue
		}

		name := cell(row, ColumnName)
		if name == "" {
			slog.Warn("Skipping supplier row without a name", "row", rowIdx+1)
			continue
		}

		suppliers = append(suppliers, model.Supplier{
			Name:        name,
			FirstName:   cell(row, ColumnFirstName),
			MiddleName:  cell(row, ColumnMiddleName),
			LastName:    cell(row, ColumnLastName),
			Gender:      strings.ToLower(cell(row, ColumnGender)),
			DateOfBirth: cell(row, ColumnDOB),
			Country:     cell(row, ColumnCountry),
			EntityType:  parseEntityType(cell(row, ColumnEntityType)),
			RowID:       rowIdx + 1,
		})
	}

	if len(suppliers) == 0 {
		return nil, common.ErrNoSuppliers
	}
	return suppliers, nil
}

func parseEntityType(s string) model.EntityType {
	switch strings.ToLower(s) {
	case "individual", "person":
		return model.EntityIndividual
	case "organization", "organisation", "company":
		return model.EntityOrganization
	default:
		return ""
	}
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
