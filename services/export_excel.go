package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel renders the quote snapshot as an Excel workbook and
// returns the file contents.
func GenerateQuoteExcel(data *QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quote"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{42, 16, 8, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4F46E5"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    quoteThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: quoteThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Project Quote #QF-"+data.QuoteID)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Date: "+data.Date)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	rowNum := 3
	if data.Notes != "" {
		if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
			return nil, fmt.Errorf("merge notes: %w", err)
		}
		f.SetCellValue(sheetName, "A3", "Briefing: "+sanitizeQuoteCell(data.Notes))
		f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)
		rowNum = 4
	}
	rowNum++ // blank spacer row

	// ── Column headers ──────────────────────────────────────────────────

	headers := []string{"Service", "Unit Price", "Qty", "Line Total"}
	headerRow := fmt.Sprintf("%d", rowNum)
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+headerRow, h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle)
	rowNum++

	// ── Item rows ───────────────────────────────────────────────────────

	for _, line := range data.Lines {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeQuoteCell(line.Name))
		f.SetCellValue(sheetName, "B"+rowStr, FormatMoney(data.CurrencySymbol, line.UnitPrice))
		f.SetCellValue(sheetName, "C"+rowStr, line.Quantity)
		f.SetCellValue(sheetName, "D"+rowStr, FormatMoney(data.CurrencySymbol, line.LineTotal))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
		rowNum++
	}

	// ── Summary rows ────────────────────────────────────────────────────

	rowNum++ // blank spacer row

	writeSummary := func(label, value string) {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "C"+rowStr, label)
		f.SetCellStyle(sheetName, "C"+rowStr, "C"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "D"+rowStr, value)
		f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, summaryValueStyle)
		rowNum++
	}

	writeSummary("Subtotal:", FormatMoney(data.CurrencySymbol, data.Subtotal))
	if data.DiscountPercent > 0 {
		writeSummary(
			fmt.Sprintf("Discount (%s%%):", trimPercent(data.DiscountPercent)),
			"-"+FormatMoney(data.CurrencySymbol, data.DiscountAmount),
		)
	}
	if data.TaxPercent > 0 {
		writeSummary(
			fmt.Sprintf("Tax (%s%%):", trimPercent(data.TaxPercent)),
			"+"+FormatMoney(data.CurrencySymbol, data.TaxAmount),
		)
	}
	writeSummary("Total:", FormatMoney(data.CurrencySymbol, data.Total))

	rowNum++
	deliveryRow := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "A"+deliveryRow,
		fmt.Sprintf("Estimated delivery (%s): %d business days", data.DeliveryMode, data.DeliveryDays))
	f.SetCellStyle(sheetName, "A"+deliveryRow, "A"+deliveryRow, subtitleStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func quoteThinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}

// sanitizeQuoteCell prevents formula injection by prefixing dangerous
// leading characters with a single quote.
func sanitizeQuoteCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
