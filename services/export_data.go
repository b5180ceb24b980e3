package services

import (
	"crypto/rand"
	"fmt"
	"math"
	"time"
)

// Daily pricing throughput used for the delivery estimate. Express orders
// assume double capacity.
const (
	standardDailyRate = 400.0
	expressDailyRate  = 800.0
)

// QuoteExportLine is a single itemized row in the rendered document.
type QuoteExportLine struct {
	Name      string
	UnitPrice float64
	Quantity  int
	LineTotal float64
}

// QuoteExportData holds everything the document renderers need. It is a
// pure projection of a QuoteSnapshot: the financial figures are copied from
// the snapshot, never recomputed, so the printed document can not drift
// from what the pricing engine charged.
type QuoteExportData struct {
	QuoteID        string
	Date           string
	Notes          string
	CurrencySymbol string

	Lines []QuoteExportLine

	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	TaxPercent      float64
	TaxAmount       float64
	Total           float64
	TotalDays       int

	IsExpress    bool
	DeliveryMode string // STANDARD or EXPRESS
	DeliveryDays int
}

// BuildQuoteExportData assembles the renderer snapshot from the current
// quote state and totals.
func BuildQuoteExportData(snap QuoteSnapshot, quoteID string, express bool) *QuoteExportData {
	lines := make([]QuoteExportLine, 0, len(snap.State.Lines))
	for _, line := range snap.State.Lines {
		lines = append(lines, QuoteExportLine{
			Name:      line.Offering.Name,
			UnitPrice: EffectivePrice(line),
			Quantity:  line.Quantity,
			LineTotal: LineTotal(line),
		})
	}

	mode := "STANDARD"
	rate := standardDailyRate
	if express {
		mode = "EXPRESS"
		rate = expressDailyRate
	}

	return &QuoteExportData{
		QuoteID:        quoteID,
		Date:           time.Now().Format("02/01/2006"),
		Notes:          snap.State.Notes,
		CurrencySymbol: snap.State.Currency.Symbol(),

		Lines: lines,

		Subtotal:        snap.Totals.Subtotal,
		DiscountPercent: snap.State.DiscountPercent,
		DiscountAmount:  snap.Totals.DiscountAmount,
		TaxPercent:      snap.State.TaxPercent,
		TaxAmount:       snap.Totals.TaxAmount,
		Total:           snap.Totals.Total,
		TotalDays:       snap.Totals.TotalDays,

		IsExpress:    express,
		DeliveryMode: mode,
		DeliveryDays: int(math.Ceil(snap.Totals.Subtotal / rate)),
	}
}

// QuoteFilename returns the suggested download filename for a quote PDF.
func QuoteFilename(quoteID string) string {
	return fmt.Sprintf("Quote_%s.pdf", quoteID)
}

const quoteIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewQuoteID generates a random 8-character uppercase identifier.
func NewQuoteID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand should not fail; fall back to a time-derived ID.
		return fmt.Sprintf("%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	for i, b := range buf {
		buf[i] = quoteIDAlphabet[int(b)%len(quoteIDAlphabet)]
	}
	return string(buf)
}
