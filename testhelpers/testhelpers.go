// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"elik/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestRatePreset stores a preset with the given name and rates.
func CreateTestRatePreset(t *testing.T, app *pocketbase.PocketBase, name string, isDefault bool, hourlyRate, ratePerLength, transportCost, mealCost float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rate_presets")
	if err != nil {
		t.Fatalf("failed to find rate_presets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("is_default", isDefault)
	record.Set("hourly_rate", hourlyRate)
	record.Set("rate_per_length", ratePerLength)
	record.Set("transport_cost", transportCost)
	record.Set("meal_cost", mealCost)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rate preset: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
