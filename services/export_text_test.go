package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGenerateText_Sample(t *testing.T) {
	calc := sampleCalculation()
	doc := Render(calc.Items, calc.Settings, testOptions(FormatText))

	out, err := GenerateText(doc)
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"ELIK - KALKULACE ELEKTROINSTALACE",
		"Datum vytvoření: 16. října 2026",
		"ROZPIS POLOŽEK",
		"1. Práce: Rozvody v kuchyni",
		"   10h × 800 Kč/hod",
		"   Poznámka: včetně krabic",
		fmt.Sprintf("Strana 1 z %d", len(doc.Pages)),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q", want)
		}
	}

	var grand string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "CELKEM S DPH:") {
			grand = line
		}
	}
	if !strings.HasSuffix(grand, FormatCZK(dec("17666"))) {
		t.Errorf("grand total line = %q", grand)
	}
}

func TestGenerateText_PageBreaks(t *testing.T) {
	calc := bigCalculation(40)
	doc := Render(calc.Items, calc.Settings, testOptions(FormatText))

	out, err := GenerateText(doc)
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	text := string(out)

	if got := strings.Count(text, "\f"); got != len(doc.Pages)-1 {
		t.Errorf("got %d form feeds, want %d", got, len(doc.Pages)-1)
	}
	last := fmt.Sprintf("Strana %d z %d", len(doc.Pages), len(doc.Pages))
	if !strings.Contains(text, last) {
		t.Errorf("text output missing footer %q", last)
	}
}

func TestTextLine(t *testing.T) {
	tests := []struct {
		name   string
		line   Line
		expect string
	}{
		{"spacer", Line{Style: StyleSpacer, Label: "ignored", Height: 5}, ""},
		{"heading", Line{Style: StyleHeading, Label: "Celkový souhrn"}, "CELKOVÝ SOUHRN"},
		{"detail", Line{Style: StyleItemDetail, Label: "Celková cena"}, "   Celková cena"},
		{"value padded", Line{Style: StyleSummaryRow, Label: "Jídlo:", Value: "300 Kč"}, "Jídlo:" + strings.Repeat(" ", textWidth-12) + "300 Kč"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textLine(tt.line); got != tt.expect {
				t.Errorf("textLine() = %q, want %q", got, tt.expect)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteText_WriterError(t *testing.T) {
	doc := Render(nil, testSettings(), testOptions(FormatText))
	if err := WriteText(doc, failingWriter{}); err == nil {
		t.Fatal("WriteText() expected error from failing writer")
	}
}
