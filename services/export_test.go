package services

import (
	"errors"
	"strings"
	"testing"
)

func TestExport_Formats(t *testing.T) {
	tests := []struct {
		format     string
		wantFile   string
		wantPrefix string
	}{
		{FormatPDF, "ELIK_Rodinny_dum_Brno.pdf", "%PDF-"},
		{FormatExcel, "ELIK_Rodinny_dum_Brno.xlsx", "PK"},
		{FormatText, "ELIK_Rodinny_dum_Brno.txt", "ELIK - KALKULACE"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			doc, data, err := Export(sampleCalculation(), testOptions(tt.format))
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if doc.Filename != tt.wantFile {
				t.Errorf("Filename = %q, want %q", doc.Filename, tt.wantFile)
			}
			if !strings.HasPrefix(string(data), tt.wantPrefix) {
				t.Errorf("data starts with %q, want %q", string(data[:min(len(data), 16)]), tt.wantPrefix)
			}
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, _, err := Export(sampleCalculation(), testOptions("docx"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Export() error = %v, want ErrUnknownFormat", err)
	}
}

func TestExport_SameTotalsAcrossFormats(t *testing.T) {
	calc := sampleCalculation()
	var totals []string
	for _, format := range []string{FormatPDF, FormatExcel, FormatText} {
		doc, _, err := Export(calc, testOptions(format))
		if err != nil {
			t.Fatalf("Export(%s) error = %v", format, err)
		}
		totals = append(totals, doc.Summary.TaxInclusiveTotal.String())
	}
	for _, got := range totals[1:] {
		if got != totals[0] {
			t.Errorf("totals differ across formats: %v", totals)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatPDF:   "application/pdf",
		FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		FormatText:  "text/plain; charset=utf-8",
		"zip":       "application/octet-stream",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}
