// Package report renders progress data into downloadable spreadsheets.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// DeckStatsSheet is the name of the worksheet holding per-deck statistics.
const DeckStatsSheet = "Deck stats"

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var deckStatsHeader = []any{
	"Deck", "Total cards", "Mastered", "In progress", "Not started", "Completion rate (%)",
}

// WriteDeckStats writes stats as an XLSX workbook to w: a header row, one row
// per deck in the given order, and a totals row whose completion rate is
// computed over all cards.
func WriteDeckStats(w io.Writer, stats []domain.DeckStat) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", DeckStatsSheet)

	if err := f.SetSheetRow(DeckStatsSheet, "A1", &deckStatsHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var total domain.DeckStat
	for i, s := range stats {
		row := []any{s.DeckName, s.TotalCards, s.Mastered, s.InProgress, s.NotStarted, s.CompletionRate}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
		total.TotalCards += s.TotalCards
		total.Mastered += s.Mastered
		total.InProgress += s.InProgress
		total.NotStarted += s.NotStarted
	}

	totalRow := len(stats) + 2
	row := []any{"Total", total.TotalCards, total.Mastered, total.InProgress, total.NotStarted, completionRate(total)}
	if err := setRow(f, totalRow, row); err != nil {
		return err
	}

	if err := styleSheet(f, totalRow); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	if err := f.SetSheetRow(DeckStatsSheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", n, err)
	}
	return nil
}

func styleSheet(f *excelize.File, totalRow int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := f.SetCellStyle(DeckStatsSheet, "A1", "F1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	first, _ := excelize.CoordinatesToCellName(1, totalRow)
	last, _ := excelize.CoordinatesToCellName(len(deckStatsHeader), totalRow)
	if err := f.SetCellStyle(DeckStatsSheet, first, last, bold); err != nil {
		return fmt.Errorf("style totals: %w", err)
	}

	if err := f.SetColWidth(DeckStatsSheet, "A", "A", 32); err != nil {
		return fmt.Errorf("set width: %w", err)
	}
	if err := f.SetColWidth(DeckStatsSheet, "B", "F", 18); err != nil {
		return fmt.Errorf("set width: %w", err)
	}
	return nil
}

// completionRate mirrors the per-deck rule: mastered share of all cards,
// rounded to one decimal, 0 for an empty set.
func completionRate(s domain.DeckStat) float64 {
	if s.TotalCards == 0 {
		return 0
	}
	return math.Round(float64(s.Mastered)*1000/float64(s.TotalCards)) / 10
}
