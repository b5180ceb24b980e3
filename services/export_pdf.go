package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	brandColor   = &props.Color{Red: 79, Green: 70, Blue: 229}
	mutedColor   = &props.Color{Red: 100, Green: 100, Blue: 100}
	whiteColor   = &props.Color{Red: 255, Green: 255, Blue: 255}
	altRowColor  = &props.Color{Red: 248, Green: 249, Blue: 250}
	summaryColor = &props.Color{Red: 250, Green: 250, Blue: 250}
)

// GenerateQuotePDF renders the quote document using maroto/v2 and returns
// the raw PDF bytes. It assumes a well-formed snapshot: no validation is
// performed here.
func GenerateQuotePDF(data *QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteBriefing(m, data)
	addQuoteItemsTable(m, data)
	addQuoteSummary(m, data)
	addQuoteDelivery(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader draws the branded header band: title, quote identifier and
// date on a filled background.
func addQuoteHeader(m core.Maroto, data *QuoteExportData) {
	bandCell := &props.Cell{BackgroundColor: brandColor}

	m.AddRows(
		row.New(14).Add(
			col.New(8).Add(
				text.New("PROJECT QUOTE", props.Text{
					Size:  22,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: whiteColor,
					Top:   2,
				}),
			).WithStyle(bandCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("DATE: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: whiteColor,
					Top:   4,
				}),
			).WithStyle(bandCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("ID: #QF-%s", data.QuoteID), props.Text{
					Size:  9,
					Align: align.Left,
					Color: whiteColor,
				}),
			).WithStyle(bandCell),
		),
	)

	m.AddRows(row.New(6))
}

// addQuoteBriefing draws the client notes block. The block height follows
// the wrapped line count so the table below starts after the full text.
func addQuoteBriefing(m core.Maroto, data *QuoteExportData) {
	if data.Notes == "" {
		return
	}

	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(
				text.New("PROJECT BRIEFING:", props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
		),
	)

	lines := wrapText(data.Notes, 110)
	for _, line := range lines {
		m.AddRows(
			row.New(4).Add(
				col.New(12).Add(
					text.New(line, props.Text{
						Size:  8,
						Align: align.Left,
						Color: mutedColor,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(5))
}

// addQuoteItemsTable draws the itemized table: a distinguished header row
// followed by one row per selected line. Zero lines yields a header-only
// table, which is still a valid document.
func addQuoteItemsTable(m core.Maroto, data *QuoteExportData) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := &props.Cell{
		BackgroundColor: altRowColor,
		BorderColor:     &props.Color{Red: 200, Green: 200, Blue: 200},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("SERVICE", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("UNIT PRICE", headerTextRight)).WithStyle(headerCell),
			col.New(1).Add(text.New("QTY", headerTextRight)).WithStyle(headerCell),
			col.New(3).Add(text.New("LINE TOTAL", headerTextRight)).WithStyle(headerCell),
		),
	)

	bodyText := props.Text{Size: 9, Align: align.Left}
	bodyTextRight := props.Text{Size: 9, Align: align.Right}

	for i, line := range data.Lines {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altRowColor}
		}

		colName := col.New(6).Add(text.New(line.Name, bodyText))
		colPrice := col.New(2).Add(text.New(FormatMoney(data.CurrencySymbol, line.UnitPrice), bodyTextRight))
		colQty := col.New(1).Add(text.New(fmt.Sprintf("%d", line.Quantity), bodyTextRight))
		colTotal := col.New(3).Add(text.New(FormatMoney(data.CurrencySymbol, line.LineTotal), bodyTextRight))

		if cellStyle != nil {
			colName = colName.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colTotal = colTotal.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colName, colPrice, colQty, colTotal))
	}

	m.AddRows(row.New(6))
}

// addQuoteSummary draws the summary box to the right, below the measured
// end of the table. Discount and tax figures come straight from the
// snapshot so the document always matches what the engine charged.
func addQuoteSummary(m core.Maroto, data *QuoteExportData) {
	boxCell := &props.Cell{BackgroundColor: summaryColor}
	labelStyle := props.Text{
		Size:  9,
		Align: align.Left,
		Color: mutedColor,
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Right,
		Color: mutedColor,
	}

	addSummaryLine := func(label, value string) {
		m.AddRows(
			row.New(7).Add(
				col.New(6),
				col.New(4).Add(text.New(label, labelStyle)).WithStyle(boxCell),
				col.New(2).Add(text.New(value, valueStyle)).WithStyle(boxCell),
			),
		)
	}

	addSummaryLine("Subtotal", FormatMoney(data.CurrencySymbol, data.Subtotal))

	if data.IsExpress {
		addSummaryLine("Express Surcharge (25%)", "Included")
	}
	if data.DiscountPercent > 0 {
		addSummaryLine(
			fmt.Sprintf("Discount (%s%%)", trimPercent(data.DiscountPercent)),
			"-"+FormatMoney(data.CurrencySymbol, data.DiscountAmount),
		)
	}
	if data.TaxPercent > 0 {
		addSummaryLine(
			fmt.Sprintf("Tax (%s%%)", trimPercent(data.TaxPercent)),
			"+"+FormatMoney(data.CurrencySymbol, data.TaxAmount),
		)
	}

	totalLabel := props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: brandColor,
	}
	totalValue := props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: brandColor,
	}

	m.AddRows(
		row.New(10).Add(
			col.New(6),
			col.New(3).Add(text.New("TOTAL:", totalLabel)).WithStyle(boxCell),
			col.New(3).Add(text.New(FormatMoney(data.CurrencySymbol, data.Total), totalValue)).WithStyle(boxCell),
		),
	)
}

// addQuoteDelivery draws the estimated delivery block.
func addQuoteDelivery(m core.Maroto, data *QuoteExportData) {
	m.AddRows(row.New(4))

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("ESTIMATED DELIVERY: %s", data.DeliveryMode), props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%d Business Days", data.DeliveryDays), props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

// trimPercent formats a rate without trailing zeros (10 not 10.00, 7.5 kept).
func trimPercent(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// wrapText splits s into lines of at most width characters, breaking on
// spaces. Words longer than width get their own line.
func wrapText(s string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				lines = append(lines, current)
				current = word
				continue
			}
			current += " " + word
		}
		lines = append(lines, current)
	}
	return lines
}
