package services

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// textWidth is the column at which right-aligned values end.
const textWidth = 72

// WriteText writes the document as plain text. Pages are separated by a
// form feed so printers and pagers keep the same breaks as the PDF.
func WriteText(doc Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, p := range doc.Pages {
		if i > 0 {
			bw.WriteString("\f")
		}
		for _, s := range p.Sections {
			for _, l := range s.Lines {
				bw.WriteString(textLine(l))
				bw.WriteByte('\n')
			}
		}
		fmt.Fprintf(bw, "%*s\n", textWidth, fmt.Sprintf("Strana %d z %d", i+1, len(doc.Pages)))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// GenerateText is WriteText into a byte slice.
func GenerateText(doc Document) ([]byte, error) {
	var sb strings.Builder
	if err := WriteText(doc, &sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func textLine(l Line) string {
	label := l.Label
	switch l.Style {
	case StyleSpacer:
		return ""
	case StyleTitle, StyleHeading:
		label = strings.ToUpper(label)
	case StyleItemDetail, StyleItemTotal:
		label = "   " + label
	}
	if l.Value == "" {
		return label
	}
	pad := textWidth - utf8.RuneCountInString(label) - utf8.RuneCountInString(l.Value)
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + l.Value
}
