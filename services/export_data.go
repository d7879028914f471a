package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineStyle controls how a document line is typeset.
type LineStyle int

const (
	StyleSpacer LineStyle = iota
	StyleTitle
	StyleSubtitle
	StyleHeading
	StyleText
	StyleItemHeader
	StyleItemDetail
	StyleItemTotal
	StyleSummaryRow
	StyleSummaryTotal
	StyleGrandTotal
)

// Line is a single typeset line. Value, when set, is right-aligned.
type Line struct {
	Style  LineStyle
	Label  string
	Value  string
	Height float64 // mm
}

// SectionKind identifies a logical block of the document.
type SectionKind int

const (
	SectionHeader SectionKind = iota
	SectionProject
	SectionRates
	SectionItem
	SectionSummary
)

// Section is a block that is never split across pages.
type Section struct {
	Kind  SectionKind
	Lines []Line
}

// Height returns the vertical space the section occupies.
func (s Section) Height() float64 {
	var h float64
	for _, l := range s.Lines {
		h += l.Height
	}
	return h
}

// Page is one page of laid-out sections.
type Page struct {
	Sections []Section
}

// ReportItem is one priced row of the item listing.
type ReportItem struct {
	Index     int
	ID        string
	Category  Category
	Name      string
	Breakdown string
	Note      string
	Total     decimal.Decimal
}

// Document is the renderer's output: a paginated layout plus the tabular
// data the spreadsheet writer needs. Every number comes from the pricing
// engine.
type Document struct {
	Title       string
	Filename    string
	GeneratedAt time.Time
	Settings    Settings
	Items       []ReportItem
	Summary     Summary
	Pages       []Page
}
