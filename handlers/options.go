package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"elik/services"
)

// HandleCalculationOptions returns the select options of the item form.
func HandleCalculationOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"categories":    services.CategoryOptions(),
			"laborModes":    services.LaborModeOptions,
			"materialModes": services.MaterialModeOptions,
			"vatPercent":    services.VATPercent,
		})
	}
}
