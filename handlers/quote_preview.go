package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"quoteforge/services"
)

// HandleQuotePreview handles GET /quote/preview
// Renders a minimal HTML summary of the current quote for printing or a
// quick sanity check before exporting the PDF.
func HandleQuotePreview(store *services.QuoteStore, quoteID string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := services.BuildQuoteExportData(store.Snapshot(), quoteID, isExpress(e))

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return quotePreview(data).Render(e.Request.Context(), e.Response)
	}
}

// quotePreview builds the preview page as a templ component.
func quotePreview(data *services.QuoteExportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		line := func(format string, args ...any) error {
			_, err := fmt.Fprintf(w, format+"\n", args...)
			return err
		}

		if err := line(`<!DOCTYPE html><html><head><title>Quote #QF-%s</title></head><body>`,
			templ.EscapeString(data.QuoteID)); err != nil {
			return err
		}
		line(`<h1>PROJECT QUOTE</h1>`)
		line(`<p>ID: #QF-%s &mdash; %s</p>`, templ.EscapeString(data.QuoteID), templ.EscapeString(data.Date))

		if data.Notes != "" {
			line(`<h3>Project Briefing</h3><p>%s</p>`, templ.EscapeString(data.Notes))
		}

		line(`<table border="1" cellpadding="6"><tr><th>Service</th><th>Unit Price</th><th>Qty</th><th>Line Total</th></tr>`)
		for _, item := range data.Lines {
			line(`<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>`,
				templ.EscapeString(item.Name),
				templ.EscapeString(services.FormatMoney(data.CurrencySymbol, item.UnitPrice)),
				item.Quantity,
				templ.EscapeString(services.FormatMoney(data.CurrencySymbol, item.LineTotal)),
			)
		}
		line(`</table>`)

		line(`<p>Subtotal: %s</p>`, templ.EscapeString(services.FormatMoney(data.CurrencySymbol, data.Subtotal)))
		if data.DiscountPercent > 0 {
			line(`<p>Discount: -%s</p>`, templ.EscapeString(services.FormatMoney(data.CurrencySymbol, data.DiscountAmount)))
		}
		if data.TaxPercent > 0 {
			line(`<p>Tax: +%s</p>`, templ.EscapeString(services.FormatMoney(data.CurrencySymbol, data.TaxAmount)))
		}
		line(`<p><strong>Total: %s</strong></p>`, templ.EscapeString(services.FormatMoney(data.CurrencySymbol, data.Total)))
		line(`<p>Estimated delivery (%s): %d business days</p>`,
			templ.EscapeString(data.DeliveryMode), data.DeliveryDays)

		return line(`</body></html>`)
	})
}
