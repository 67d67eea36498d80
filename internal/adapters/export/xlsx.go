package export

import (
	"fmt"
	"io"
	"log"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Daily"
	DrinksSheet  = "Drinks"
)

var (
	summaryHeaders = []string{"Date", "Total (ml)", "Goal (ml)", "Progress (%)", "Achieved"}
	drinksHeaders  = []string{"Date", "Time", "Amount (ml)"}
)

// WriteHistoryXLSX writes a workbook with one row per day and one row per
// drink, in the order the records are given.
func WriteHistoryXLSX(w io.Writer, records []*domain.DayRecord) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[EXPORT] Error closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SummarySheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DrinksSheet); err != nil {
		return fmt.Errorf("export: create sheet: %w", err)
	}

	if err := writeRow(f, SummarySheet, 1, toRow(summaryHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, DrinksSheet, 1, toRow(drinksHeaders)); err != nil {
		return err
	}

	drinkRow := 2
	for i, day := range records {
		summary := []interface{}{day.Date, day.Total, day.Goal, day.Progress(), day.Achieved()}
		if err := writeRow(f, SummarySheet, i+2, summary); err != nil {
			return err
		}

		for _, drink := range day.Logs {
			if err := writeRow(f, DrinksSheet, drinkRow, []interface{}{day.Date, drink.Time, drink.Amount}); err != nil {
				return err
			}
			drinkRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: failed to set row %d on %s: %w", row, sheet, err)
	}
	return nil
}

func toRow(headers []string) []interface{} {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}
