// Package xlsxexport renders a persisted record collection as an Excel
// workbook, one row per line item.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cropai/internal/domain"
)

const sheetName = "Records"

// columns defines the header row.
var columns = []string{
	"Record ID",
	"Date",
	"Item",
	"Quantity",
	"Unit",
	"Unit Price",
	"Line Total",
	"Record Total",
	"Currency",
	"Vendor",
	"Created At",
}

// BuildWorkbook creates a workbook for the collection. The caller owns the
// returned file and must Close it.
func BuildWorkbook(kind domain.RecordKind, records []domain.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for i := range records {
		for _, item := range records[i].Data.Items {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheetName, cell, recordRow(&records[i], item)); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}

	return f, nil
}

func recordRow(rec *domain.Record, item domain.LineItem) *[]interface{} {
	var price interface{}
	if item.Price != nil {
		price = *item.Price
	}
	values := []interface{}{
		rec.ID.String(),
		rec.Data.Date,
		item.Name,
		item.Quantity,
		item.Unit,
		price,
		item.Total,
		rec.Data.Total,
		rec.Data.Currency,
		rec.Data.Vendor,
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	return &values
}

// FileName returns the attachment name for a collection export.
func FileName(kind domain.RecordKind) string {
	return fmt.Sprintf("cropai_%s_records.xlsx", kind)
}
