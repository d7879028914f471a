package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Vertical bounds of the content area on an A4 page, in millimetres.
const (
	PageTop    = 20.0
	PageBottom = 270.0
)

// Export formats and their file extensions.
const (
	FormatPDF   = "pdf"
	FormatExcel = "xlsx"
	FormatText  = "txt"
)

// RenderOptions carries the presentation parameters of a document.
type RenderOptions struct {
	Title      string
	FilePrefix string
	Format     string
	Now        time.Time
}

// DefaultRenderOptions returns the options used when nothing is configured.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Title:      "ELIK - Kalkulace elektroinstalace",
		FilePrefix: "ELIK",
		Format:     FormatPDF,
		Now:        time.Now(),
	}
}

// Render lays out a calculation as a paginated document. Prices and totals
// come from PriceOf and Summarize so the document always matches what the
// interactive summary shows.
func Render(items []LineItem, settings Settings, opts RenderOptions) Document {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Format == "" {
		opts.Format = FormatPDF
	}

	doc := Document{
		Title:       opts.Title,
		Filename:    ExportFilename(opts.FilePrefix, settings.ProjectName, opts.Format, opts.Now),
		GeneratedAt: opts.Now,
		Settings:    settings,
		Summary:     Summarize(items, settings),
	}

	for i, item := range items {
		rule := item.Rule()
		doc.Items = append(doc.Items, ReportItem{
			Index:     i + 1,
			ID:        item.ID,
			Category:  item.Category,
			Name:      item.Name,
			Breakdown: rule.Describe(settings),
			Note:      item.Note,
			Total:     rule.Price(settings),
		})
	}

	var sections []Section
	sections = append(sections, headerSection(doc))
	if settings.ProjectName != "" || settings.CustomerName != "" {
		sections = append(sections, projectSection(settings))
	}
	sections = append(sections, ratesSection(settings))
	for i, ri := range doc.Items {
		s := itemSection(ri)
		if i == 0 {
			// Keep the listing heading on the same page as the first item.
			heading := Line{Style: StyleHeading, Label: "Rozpis položek", Height: 10}
			s.Lines = append([]Line{heading}, s.Lines...)
		}
		sections = append(sections, s)
	}
	sections = append(sections, summarySection(doc.Summary))

	doc.Pages = paginate(sections)
	return doc
}

// paginate places sections top to bottom and opens a new page whenever the
// next section would cross PageBottom. A section taller than a whole page
// still gets a page of its own.
func paginate(sections []Section) []Page {
	pages := []Page{{}}
	cursor := PageTop
	for _, s := range sections {
		h := s.Height()
		current := &pages[len(pages)-1]
		if cursor+h > PageBottom && len(current.Sections) > 0 {
			pages = append(pages, Page{})
			current = &pages[len(pages)-1]
			cursor = PageTop
		}
		current.Sections = append(current.Sections, s)
		cursor += h
	}
	return pages
}

func headerSection(doc Document) Section {
	return Section{Kind: SectionHeader, Lines: []Line{
		{Style: StyleTitle, Label: doc.Title, Height: 15},
		{Style: StyleSubtitle, Label: "Datum vytvoření: " + FormatDateCZ(doc.GeneratedAt), Height: 10},
	}}
}

func projectSection(s Settings) Section {
	lines := []Line{{Style: StyleHeading, Label: "Informace o projektu", Height: 8}}
	if s.ProjectName != "" {
		lines = append(lines, Line{Style: StyleText, Label: "Název projektu: " + s.ProjectName, Height: 6})
	}
	if s.CustomerName != "" {
		lines = append(lines, Line{Style: StyleText, Label: "Zákazník: " + s.CustomerName, Height: 6})
	}
	lines = append(lines, Line{Style: StyleSpacer, Height: 5})
	return Section{Kind: SectionProject, Lines: lines}
}

func ratesSection(s Settings) Section {
	return Section{Kind: SectionRates, Lines: []Line{
		{Style: StyleHeading, Label: "Standardní sazby", Height: 8},
		{Style: StyleText, Label: "Hodinová sazba: " + FormatCZK(s.DefaultHourlyRate) + "/hod", Height: 5},
		{Style: StyleText, Label: "Metrová sazba: " + FormatCZK(s.DefaultRatePerLength) + "/m", Height: 5},
		{Style: StyleText, Label: "Dopravní náklady: " + FormatCZK(s.TransportCost), Height: 5},
		{Style: StyleText, Label: "Náklady na jídlo: " + FormatCZK(s.MealCost), Height: 5},
		{Style: StyleSpacer, Height: 10},
	}}
}

func itemSection(ri ReportItem) Section {
	lines := []Line{{
		Style:  StyleItemHeader,
		Label:  fmt.Sprintf("%d. %s: %s", ri.Index, ri.Category.Label(), ri.Name),
		Height: 5,
	}}
	if ri.Breakdown != "" {
		lines = append(lines, Line{Style: StyleItemDetail, Label: ri.Breakdown, Height: 4})
	}
	if ri.Note != "" {
		lines = append(lines, Line{Style: StyleItemDetail, Label: "Poznámka: " + ri.Note, Height: 4})
	}
	lines = append(lines, Line{Style: StyleItemTotal, Label: "Celkem:", Value: FormatCZK(ri.Total), Height: 8})
	return Section{Kind: SectionItem, Lines: lines}
}

func summarySection(sum Summary) Section {
	lines := []Line{{Style: StyleHeading, Label: "Celkový souhrn", Height: 12}}
	for _, c := range Categories {
		amount := sum.Bucket(c)
		if amount.IsZero() {
			continue
		}
		lines = append(lines, Line{Style: StyleSummaryRow, Label: c.Label() + ":", Value: FormatCZK(amount), Height: 6})
	}
	lines = append(lines,
		Line{Style: StyleSpacer, Height: 5},
		Line{Style: StyleSummaryTotal, Label: "Celkem bez DPH:", Value: FormatCZK(sum.PreTaxTotal), Height: 8},
		Line{Style: StyleSummaryTotal, Label: fmt.Sprintf("DPH %d%%:", VATPercent), Value: FormatCZK(sum.Tax), Height: 8},
		Line{Style: StyleGrandTotal, Label: "CELKEM S DPH:", Value: FormatCZK(sum.TaxInclusiveTotal), Height: 8},
	)
	return Section{Kind: SectionSummary, Lines: lines}
}

// ExportFilename builds the artifact name: <prefix>_<project>.<ext>, or
// <prefix>_kalkulace_<YYYY-MM-DD>.<ext> when there is no project name.
func ExportFilename(prefix, projectName, ext string, now time.Time) string {
	if prefix == "" {
		prefix = "ELIK"
	}
	if strings.TrimSpace(projectName) != "" {
		return fmt.Sprintf("%s_%s.%s", prefix, sanitizeFilename(projectName), ext)
	}
	return fmt.Sprintf("%s_kalkulace_%s.%s", prefix, now.Format("2006-01-02"), ext)
}

// sanitizeFilename folds diacritics ("dům" → "dum") and replaces every
// remaining rune outside [A-Za-z0-9] with an underscore.
func sanitizeFilename(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, folded)
}
