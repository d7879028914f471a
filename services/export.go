package services

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned for export formats other than pdf, xlsx and txt.
var ErrUnknownFormat = errors.New("unknown export format")

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	switch format {
	case FormatPDF:
		return "application/pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Export renders a calculation and encodes it in the requested format.
// The returned document carries the artifact filename.
func Export(calc Calculation, opts RenderOptions) (Document, []byte, error) {
	doc := Render(calc.Items, calc.Settings, opts)

	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case FormatPDF, "":
		data, err = GeneratePDF(doc)
	case FormatExcel:
		data, err = GenerateExcel(doc)
	case FormatText:
		data, err = GenerateText(doc)
	default:
		return Document{}, nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		return Document{}, nil, err
	}
	return doc, data, nil
}
