package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"elik/config"
	"elik/services"
)

// HandleRatePresetList returns all stored rate presets.
func HandleRatePresetList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		presets, err := services.ListRatePresets(app)
		if err != nil {
			log.Printf("rate_presets: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "Could not load rate presets"})
		}
		return e.JSON(http.StatusOK, map[string]any{"presets": presets})
	}
}

// HandleCalculationDefaults returns the settings a new calculation starts
// with: the default rate preset, or the configured defaults when no preset
// is stored.
func HandleCalculationDefaults(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		preset, err := services.DefaultRatePreset(app)
		if err != nil {
			log.Printf("calculation_defaults: falling back to config: %v", err)
			return e.JSON(http.StatusOK, configSettings(cfg))
		}
		return e.JSON(http.StatusOK, preset.Settings())
	}
}

func configSettings(cfg *config.Config) services.Settings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	d := cfg.Defaults
	return services.Settings{
		DefaultHourlyRate:    decimal.NewFromFloat(d.HourlyRate),
		DefaultRatePerLength: decimal.NewFromFloat(d.RatePerLength),
		TransportCost:        decimal.NewFromFloat(d.TransportCost),
		MealCost:             decimal.NewFromFloat(d.MealCost),
	}
}
