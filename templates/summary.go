// Package templates holds the HTMX fragments served next to the JSON API.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"elik/services"
)

// SummaryData is everything the summary card displays.
type SummaryData struct {
	Settings services.Settings
	Summary  services.Summary
	Stats    services.Stats
}

// SummaryRow is one category line of the summary card.
type SummaryRow struct {
	Category services.Category
	Label    string
	Amount   string
}

// Rows returns the non-zero category subtotals in display order.
func (d SummaryData) Rows() []SummaryRow {
	var rows []SummaryRow
	for _, c := range services.Categories {
		amount := d.Summary.Bucket(c)
		if amount.IsZero() {
			continue
		}
		rows = append(rows, SummaryRow{Category: c, Label: c.Label(), Amount: services.FormatCZK(amount)})
	}
	return rows
}

// CalculationSummary renders the totals card swapped in by HTMX.
func CalculationSummary(data SummaryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}

		ew.printf(`<section id="calculation-summary" class="summary-card">`)
		ew.printf(`<h2>Celkový souhrn nabídky</h2>`)

		ew.printf(`<dl class="summary-stats">`)
		ew.printf(`<div><dt>Položek</dt><dd>%d</dd></div>`, data.Stats.ItemCount)
		ew.printf(`<div><dt>Hodin práce</dt><dd>%sh</dd></div>`, esc(services.FormatQty(data.Stats.LaborHours)))
		ew.printf(`<div><dt>Metrů práce</dt><dd>%sm</dd></div>`, esc(services.FormatQty(data.Stats.LaborLength)))
		ew.printf(`<div><dt>Kusů materiálu</dt><dd>%s ks</dd></div>`, esc(services.FormatQty(data.Stats.MaterialUnits)))
		ew.printf(`<div><dt>Metrů materiálu</dt><dd>%sm</dd></div>`, esc(services.FormatQty(data.Stats.MaterialLength)))
		ew.printf(`<div><dt>Průměrná sazba</dt><dd>%s/h</dd></div>`, esc(services.FormatCZK(data.Stats.EffectiveHourlyRate)))
		ew.printf(`</dl>`)

		ew.printf(`<table class="summary-buckets">`)
		for _, r := range data.Rows() {
			ew.printf(`<tr data-category="%s"><th>%s</th><td>%s</td></tr>`, esc(string(r.Category)), esc(r.Label), esc(r.Amount))
		}
		ew.printf(`</table>`)

		ew.printf(`<table class="summary-totals">`)
		ew.printf(`<tr><th>Celkem bez DPH</th><td>%s</td></tr>`, esc(services.FormatCZK(data.Summary.PreTaxTotal)))
		ew.printf(`<tr><th>DPH %d%%</th><td>%s</td></tr>`, services.VATPercent, esc(services.FormatCZK(data.Summary.Tax)))
		ew.printf(`<tr class="grand-total"><th>Celkem s DPH</th><td>%s</td></tr>`, esc(services.FormatCZK(data.Summary.TaxInclusiveTotal)))
		ew.printf(`</table>`)

		if data.Settings.ProjectName != "" || data.Settings.CustomerName != "" {
			ew.printf(`<p class="summary-project">%s`, esc(data.Settings.ProjectName))
			if data.Settings.CustomerName != "" {
				ew.printf(` – %s`, esc(data.Settings.CustomerName))
			}
			ew.printf(`</p>`)
		}

		ew.printf(`</section>`)
		return ew.err
	})
}

// ItemPriceData is the result of pricing a single item from the form.
type ItemPriceData struct {
	Name      string
	Category  services.Category
	Breakdown string
	Total     string
}

// ItemPrice renders the live price preview of the item being edited.
func ItemPrice(data ItemPriceData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf(`<div id="item-price" class="item-price" data-category="%s">`, esc(string(data.Category)))
		if data.Name != "" {
			ew.printf(`<span class="item-name">%s</span>`, esc(data.Name))
		}
		if data.Breakdown != "" {
			ew.printf(`<span class="item-breakdown">%s</span>`, esc(data.Breakdown))
		}
		ew.printf(`<strong class="item-total">%s</strong>`, esc(data.Total))
		ew.printf(`</div>`)
		return ew.err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
