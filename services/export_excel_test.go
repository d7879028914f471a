package services

import (
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

func openExcel(t *testing.T, doc Document) *excelize.File {
	t.Helper()

	result, err := GenerateExcel(doc)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestGenerateExcel_Sample(t *testing.T) {
	calc := sampleCalculation()
	f := openExcel(t, Render(calc.Items, calc.Settings, testOptions(FormatExcel)))

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Kalkulace" {
		t.Fatalf("expected single sheet 'Kalkulace', got %v", sheets)
	}

	title, _ := f.GetCellValue("Kalkulace", "A1")
	if title != "ELIK - Kalkulace elektroinstalace" {
		t.Errorf("expected title, got %q", title)
	}
	project, _ := f.GetCellValue("Kalkulace", "A3")
	if project != "Název projektu: Rodinný dům Brno" {
		t.Errorf("A3 = %q", project)
	}

	// Header row follows date, project, customer and a blank row.
	header, _ := f.GetCellValue("Kalkulace", "C6")
	if header != "Položka" {
		t.Errorf("C6 = %q, want Položka", header)
	}
	name, _ := f.GetCellValue("Kalkulace", "C7")
	if name != "Rozvody v kuchyni" {
		t.Errorf("C7 = %q", name)
	}
	total, _ := f.GetCellValue("Kalkulace", "F7")
	if total != FormatCZK(dec("8000")) {
		t.Errorf("F7 = %q", total)
	}
	breakdown, _ := f.GetCellValue("Kalkulace", "D10")
	if breakdown != "10 ks × 50 Kč/ks" {
		t.Errorf("D10 = %q", breakdown)
	}

	summary := excelSummary(t, f)
	want := map[string]string{
		"Práce:":          FormatCZK(dec("9800")),
		"Celkem bez DPH:": FormatCZK(dec("14600")),
		"DPH 21%:":        FormatCZK(dec("3066")),
		"CELKEM S DPH:":   FormatCZK(dec("17666")),
	}
	for label, value := range want {
		if summary[label] != value {
			t.Errorf("summary %s = %q, want %q", label, summary[label], value)
		}
	}
}

func TestGenerateExcel_FormulaInjection(t *testing.T) {
	items := []LineItem{{ID: "1", Name: "=HYPERLINK(\"x\")", Category: CategoryOther, FlatPrice: dec("10"), Note: "+1"}}
	f := openExcel(t, Render(items, testSettings(), testOptions(FormatExcel)))

	// No project or customer: header row 4, first item row 5.
	name, _ := f.GetCellValue("Kalkulace", "C5")
	if name != "'=HYPERLINK(\"x\")" {
		t.Errorf("C5 = %q, want escaped formula", name)
	}
	note, _ := f.GetCellValue("Kalkulace", "E5")
	if note != "'+1" {
		t.Errorf("E5 = %q, want escaped note", note)
	}
}

func TestGenerateExcel_NoItems(t *testing.T) {
	f := openExcel(t, Render(nil, testSettings(), testOptions(FormatExcel)))
	summary := excelSummary(t, f)
	if summary["CELKEM S DPH:"] != "0 Kč" {
		t.Errorf("grand total = %q, want 0 Kč", summary["CELKEM S DPH:"])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input, expect string
	}{
		{"", ""},
		{"Kabely", "Kabely"},
		{"=1+1", "'=1+1"},
		{"-5", "'-5"},
		{"@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

// excelSummary reads the label/value pairs from columns E and F.
func excelSummary(t *testing.T, f *excelize.File) map[string]string {
	t.Helper()

	rows, err := f.GetRows("Kalkulace")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	out := map[string]string{}
	for i := range rows {
		label, _ := f.GetCellValue("Kalkulace", fmt.Sprintf("E%d", i+1))
		value, _ := f.GetCellValue("Kalkulace", fmt.Sprintf("F%d", i+1))
		if label != "" {
			out[label] = value
		}
	}
	return out
}
