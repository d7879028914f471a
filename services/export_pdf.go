package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
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

// GeneratePDF typesets a rendered document with maroto/v2. Pages are added
// explicitly so the layout chosen by Render is kept as is.
func GeneratePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).
		WithTopMargin(PageTop).
		WithRightMargin(20).
		WithPageNumber(props.PageNumber{
			Pattern: "Strana {current} z {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	for _, p := range doc.Pages {
		pg := page.New()
		for _, s := range p.Sections {
			for _, l := range s.Lines {
				pg.Add(pdfRow(l))
			}
		}
		m.AddPages(pg)
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdf.GetBytes(), nil
}

// pdfRow turns one document line into a maroto row of the line's height.
func pdfRow(l Line) core.Row {
	if l.Style == StyleSpacer {
		return row.New(l.Height)
	}

	style := pdfTextStyle(l.Style)
	if l.Value == "" {
		return row.New(l.Height).Add(
			col.New(12).Add(text.New(l.Label, style)),
		)
	}

	valueStyle := style
	valueStyle.Align = align.Right
	return row.New(l.Height).Add(
		col.New(8).Add(text.New(l.Label, style)),
		col.New(4).Add(text.New(l.Value, valueStyle)),
	)
}

// pdfTextStyle maps a line style to font size and weight.
func pdfTextStyle(s LineStyle) props.Text {
	t := props.Text{Size: 10, Style: fontstyle.Normal, Align: align.Left}
	switch s {
	case StyleTitle:
		t.Size = 20
		t.Style = fontstyle.Bold
	case StyleSubtitle:
		t.Size = 11
		t.Color = &props.Color{Red: 80, Green: 80, Blue: 80}
	case StyleHeading:
		t.Size = 14
		t.Style = fontstyle.Bold
	case StyleText:
		t.Size = 11
	case StyleItemHeader:
		t.Style = fontstyle.Bold
	case StyleItemDetail:
		t.Left = 5
	case StyleItemTotal:
		t.Style = fontstyle.Bold
		t.Left = 5
	case StyleSummaryRow:
		t.Size = 12
	case StyleSummaryTotal:
		t.Size = 12
		t.Style = fontstyle.Bold
	case StyleGrandTotal:
		t.Size = 14
		t.Style = fontstyle.Bold
	}
	return t
}
