package services

import (
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"
)

// ErrNoRatePresets is returned when the rate_presets collection is empty.
var ErrNoRatePresets = errors.New("rate presets: none stored")

// RatePreset is a stored set of default rates a session can start from.
type RatePreset struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	IsDefault            bool            `json:"isDefault"`
	DefaultHourlyRate    decimal.Decimal `json:"defaultHourlyRate"`
	DefaultRatePerLength decimal.Decimal `json:"defaultRatePerLength"`
	TransportCost        decimal.Decimal `json:"transportCost"`
	MealCost             decimal.Decimal `json:"mealCost"`
}

// Settings returns fresh session settings seeded from the preset.
func (p RatePreset) Settings() Settings {
	return Settings{
		DefaultHourlyRate:    p.DefaultHourlyRate,
		DefaultRatePerLength: p.DefaultRatePerLength,
		TransportCost:        p.TransportCost,
		MealCost:             p.MealCost,
	}
}

func ratePresetFromRecord(r *core.Record) RatePreset {
	return RatePreset{
		ID:                   r.Id,
		Name:                 r.GetString("name"),
		IsDefault:            r.GetBool("is_default"),
		DefaultHourlyRate:    decimal.NewFromFloat(r.GetFloat("hourly_rate")),
		DefaultRatePerLength: decimal.NewFromFloat(r.GetFloat("rate_per_length")),
		TransportCost:        decimal.NewFromFloat(r.GetFloat("transport_cost")),
		MealCost:             decimal.NewFromFloat(r.GetFloat("meal_cost")),
	}
}

// ListRatePresets returns all presets, default first, then by name.
func ListRatePresets(app *pocketbase.PocketBase) ([]RatePreset, error) {
	col, err := app.FindCollectionByNameOrId("rate_presets")
	if err != nil {
		return nil, fmt.Errorf("rate presets: collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "-is_default,name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("rate presets: query failed: %w", err)
	}
	presets := make([]RatePreset, 0, len(records))
	for _, r := range records {
		presets = append(presets, ratePresetFromRecord(r))
	}
	return presets, nil
}

// DefaultRatePreset returns the preset flagged as default. If none is
// flagged, the first preset by name is used.
func DefaultRatePreset(app *pocketbase.PocketBase) (RatePreset, error) {
	presets, err := ListRatePresets(app)
	if err != nil {
		return RatePreset{}, err
	}
	if len(presets) == 0 {
		return RatePreset{}, ErrNoRatePresets
	}
	return presets[0], nil
}
