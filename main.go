package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"elik/collections"
	"elik/commands"
	"elik/config"
	"elik/handlers"
)

func main() {
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	app.RootCmd.AddCommand(commands.NewQuoteCommand(cfg))

	// Create collections and seed the default rate presets on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app, cfg.Defaults); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Rates ────────────────────────────────────────────────
		se.Router.GET("/api/rate-presets", handlers.HandleRatePresetList(app))
		se.Router.GET("/api/calculation/defaults", handlers.HandleCalculationDefaults(app, cfg))
		se.Router.GET("/api/calculation/options", handlers.HandleCalculationOptions(app))

		// ── Pricing ──────────────────────────────────────────────
		se.Router.POST("/api/calculation/summary", handlers.HandleCalculationSummary(app))
		se.Router.POST("/api/calculation/export/{format}", handlers.HandleCalculationExport(app, cfg))

		// ── HTMX fragments ───────────────────────────────────────
		se.Router.POST("/calculation/summary", handlers.HandleSummaryFragment(app))
		se.Router.POST("/calculation/item-price", handlers.HandleItemPrice(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
