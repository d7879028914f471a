package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"elik/config"
	"elik/services"
)

// renderOptions builds the document options for a request.
func renderOptions(cfg *config.Config, format string) services.RenderOptions {
	opts := services.DefaultRenderOptions()
	if cfg != nil {
		if cfg.DocumentTitle != "" {
			opts.Title = cfg.DocumentTitle
		}
		if cfg.FilePrefix != "" {
			opts.FilePrefix = cfg.FilePrefix
		}
	}
	opts.Format = format
	opts.Now = time.Now()
	return opts
}

// HandleCalculationExport returns a handler that renders the posted
// calculation and sends it as a download in the format named by the
// {format} path value (pdf, xlsx or txt).
func HandleCalculationExport(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format := e.Request.PathValue("format")
		switch format {
		case services.FormatPDF, services.FormatExcel, services.FormatText:
		default:
			return ErrorToast(e, http.StatusBadRequest, fmt.Sprintf("Nepodporovaný formát exportu: %s", format))
		}

		calc, err := decodeCalculation(e)
		if err != nil {
			log.Printf("export_%s: %v", format, err)
			return ErrorToast(e, http.StatusBadRequest, "Neplatná data kalkulace")
		}
		if err := calc.ValidateForExport(); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, services.ErrNoItems) {
				status = http.StatusUnprocessableEntity
			}
			return ErrorToast(e, status, validationMessage(err))
		}

		doc, data, err := services.Export(calc, renderOptions(cfg, format))
		if err != nil {
			log.Printf("export_%s: failed to generate: %v", format, err)
			return ErrorToast(e, http.StatusInternalServerError, "Export se nezdařil, zkuste to prosím znovu")
		}

		SetToast(e, "success", fmt.Sprintf("Export %s připraven", doc.Filename))
		e.Response.Header().Set("Content-Type", services.ContentType(format))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
		e.Response.WriteHeader(http.StatusOK)
		e.Response.Write(data)
		return nil
	}
}
