package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"elik/config"
)

type presetDef struct {
	name          string
	isDefault     bool
	hourlyRate    float64
	ratePerLength float64
	transportCost float64
	mealCost      float64
}

// Seed inserts the default rate preset from the configuration plus two
// common alternatives. It is safe to call on every startup because it
// returns early if any preset already exists.
func Seed(app *pocketbase.PocketBase, defaults config.Defaults) error {
	col, err := app.FindCollectionByNameOrId("rate_presets")
	if err != nil {
		return fmt.Errorf("seed: could not find rate_presets collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query rate_presets: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: rate_presets collection is empty – inserting defaults …")

	defs := []presetDef{
		{
			name:          defaults.PresetName,
			isDefault:     true,
			hourlyRate:    defaults.HourlyRate,
			ratePerLength: defaults.RatePerLength,
			transportCost: defaults.TransportCost,
			mealCost:      defaults.MealCost,
		},
		{name: "Víkendová práce", hourlyRate: 1200, ratePerLength: 220, transportCost: 700, mealCost: 300},
		{name: "Revize a drobné opravy", hourlyRate: 650, ratePerLength: 120, transportCost: 350, mealCost: 0},
	}

	for _, d := range defs {
		r := core.NewRecord(col)
		r.Set("name", d.name)
		r.Set("is_default", d.isDefault)
		r.Set("hourly_rate", d.hourlyRate)
		r.Set("rate_per_length", d.ratePerLength)
		r.Set("transport_cost", d.transportCost)
		r.Set("meal_cost", d.mealCost)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save preset %q: %w", d.name, err)
		}
	}

	log.Printf("seed: inserted %d rate presets", len(defs))
	return nil
}
