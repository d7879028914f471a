package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel writes the document's item listing and summary to a single
// worksheet and returns the file contents.
func GenerateExcel(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Kalkulace"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 12, 36, 30, 30, 18}
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

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	// Summary cells: bold, right-aligned.
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(doc.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	row := 2
	info := []string{"Datum vytvoření: " + FormatDateCZ(doc.GeneratedAt)}
	if doc.Settings.ProjectName != "" {
		info = append(info, "Název projektu: "+doc.Settings.ProjectName)
	}
	if doc.Settings.CustomerName != "" {
		info = append(info, "Zákazník: "+doc.Settings.CustomerName)
	}
	for _, line := range info {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheetName, cell, sanitizeExcelCell(line))
		row++
	}
	row++

	// ── Item table ──────────────────────────────────────────────────────

	headers := []string{"#", "Kategorie", "Položka", "Výpočet", "Poznámka", "Celkem"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], row), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
	row++

	for _, it := range doc.Items {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+r, it.Index)
		f.SetCellValue(sheetName, "B"+r, it.Category.Label())
		f.SetCellValue(sheetName, "C"+r, sanitizeExcelCell(it.Name))
		f.SetCellValue(sheetName, "D"+r, sanitizeExcelCell(it.Breakdown))
		f.SetCellValue(sheetName, "E"+r, sanitizeExcelCell(it.Note))
		f.SetCellValue(sheetName, "F"+r, FormatCZK(it.Total))
		f.SetCellStyle(sheetName, "A"+r, lastCol+r, itemStyle)
		row++
	}

	// ── Summary rows ────────────────────────────────────────────────────

	row++
	summaryRows := make([][2]string, 0, len(Categories)+3)
	for _, c := range Categories {
		if amount := doc.Summary.Bucket(c); !amount.IsZero() {
			summaryRows = append(summaryRows, [2]string{c.Label() + ":", FormatCZK(amount)})
		}
	}
	summaryRows = append(summaryRows,
		[2]string{"Celkem bez DPH:", FormatCZK(doc.Summary.PreTaxTotal)},
		[2]string{fmt.Sprintf("DPH %d%%:", VATPercent), FormatCZK(doc.Summary.Tax)},
		[2]string{"CELKEM S DPH:", FormatCZK(doc.Summary.TaxInclusiveTotal)},
	)
	for _, sr := range summaryRows {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+r, sr[0])
		f.SetCellValue(sheetName, "F"+r, sr[1])
		f.SetCellStyle(sheetName, "E"+r, "F"+r, summaryStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes cells that Excel would read as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
