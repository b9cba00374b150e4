// Package report renders the recommendation log as a spreadsheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/h809829-coder/agrosmart/entities"
)

const (
	HistorySheet    = "History"
	HistoryFilename = "agrosmart_history.xlsx"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var historyHeader = []any{"Timestamp", "Location", "Soil Type", "Season", "Water Availability", "Budget", "Recommended Crop"}

// WriteHistory writes records, in the given order, below a header row.
func WriteHistory(w io.Writer, records []entities.RecommendationRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), HistorySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(HistorySheet, "A1", &historyHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(HistorySheet, "A1", "G1", bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetColWidth(HistorySheet, "A", "G", 20); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Timestamp.UTC().Format(time.RFC3339),
			r.Location,
			r.SoilType,
			r.Season,
			r.WaterAvailability,
			r.Budget,
			r.RecommendedCrop,
		}
		if err := f.SetSheetRow(HistorySheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
