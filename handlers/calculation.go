package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"elik/services"
	"elik/templates"
)

// maxCalculationBody caps the JSON body of calculation requests.
const maxCalculationBody = 1 << 20

// PricedItem is one item of a summary response.
type PricedItem struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Category  services.Category `json:"category"`
	Breakdown string            `json:"breakdown"`
	Total     decimal.Decimal   `json:"total"`
}

// SummaryResponse is the JSON body returned by the summary endpoint.
type SummaryResponse struct {
	Items   []PricedItem     `json:"items"`
	Summary services.Summary `json:"summary"`
	Stats   services.Stats   `json:"stats"`
}

// decodeCalculation reads a JSON calculation from the request body. Items
// without an ID get one here, since the caller is creating them.
func decodeCalculation(e *core.RequestEvent) (services.Calculation, error) {
	var calc services.Calculation
	decoder := json.NewDecoder(http.MaxBytesReader(e.Response, e.Request.Body, maxCalculationBody))
	if err := decoder.Decode(&calc); err != nil {
		return services.Calculation{}, fmt.Errorf("decode calculation: %w", err)
	}
	calc.AssignIDs()
	return calc, nil
}

// BuildSummaryResponse prices every item and aggregates the calculation.
func BuildSummaryResponse(calc services.Calculation) SummaryResponse {
	resp := SummaryResponse{
		Items:   make([]PricedItem, 0, len(calc.Items)),
		Summary: services.Summarize(calc.Items, calc.Settings),
		Stats:   services.ComputeStats(calc.Items, calc.Settings),
	}
	for _, item := range calc.Items {
		rule := item.Rule()
		resp.Items = append(resp.Items, PricedItem{
			ID:        item.ID,
			Name:      item.Name,
			Category:  item.Category,
			Breakdown: rule.Describe(calc.Settings),
			Total:     rule.Price(calc.Settings),
		})
	}
	return resp
}

// HandleCalculationSummary returns priced items, the summary and the stats
// for a JSON calculation.
func HandleCalculationSummary(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		calc, err := decodeCalculation(e)
		if err != nil {
			log.Printf("calculation_summary: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid calculation JSON"})
		}
		if err := calc.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "Invalid calculation", "fields": err})
		}
		return e.JSON(http.StatusOK, BuildSummaryResponse(calc))
	}
}

// HandleSummaryFragment renders the summary card for HTMX.
func HandleSummaryFragment(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		calc, err := decodeCalculation(e)
		if err != nil {
			log.Printf("summary_fragment: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Neplatná data kalkulace")
		}
		if err := calc.Validate(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, validationMessage(err))
		}

		data := templates.SummaryData{
			Settings: calc.Settings,
			Summary:  services.Summarize(calc.Items, calc.Settings),
			Stats:    services.ComputeStats(calc.Items, calc.Settings),
		}
		return templates.CalculationSummary(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleItemPrice prices the item currently being edited in the form. Form
// numbers are parsed permissively: a decimal comma is accepted and anything
// unparseable counts as zero. Negative numbers are rejected; a missing name
// or category is not, since the item is still being typed.
func HandleItemPrice(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Neplatný formulář")
		}
		item, settings := parseItemForm(e.Request)
		if err := item.ValidateAmounts(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, validationMessage(err))
		}
		if err := settings.Validate(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, validationMessage(err))
		}

		rule := item.Rule()
		data := templates.ItemPriceData{
			Name:      item.Name,
			Category:  item.Category,
			Breakdown: rule.Describe(settings),
			Total:     services.FormatCZK(rule.Price(settings)),
		}
		return templates.ItemPrice(data).Render(e.Request.Context(), e.Response)
	}
}

// parseItemForm reads one line item and the session settings from form values.
func parseItemForm(r *http.Request) (services.LineItem, services.Settings) {
	item := services.LineItem{
		ID:           r.FormValue("id"),
		Name:         strings.TrimSpace(r.FormValue("name")),
		Category:     services.Category(r.FormValue("category")),
		LaborMode:    services.LaborMode(r.FormValue("laborMode")),
		MaterialMode: services.MaterialMode(r.FormValue("materialMode")),

		Hours:                 formDecimal(r, "hours"),
		HourlyRate:            formDecimal(r, "hourlyRate"),
		Length:                formDecimal(r, "length"),
		RatePerLength:         formDecimal(r, "ratePerLength"),
		FlatMaterialAmount:    formDecimal(r, "flatMaterialAmount"),
		UnitCount:             formDecimal(r, "unitCount"),
		RatePerUnit:           formDecimal(r, "ratePerUnit"),
		MaterialLength:        formDecimal(r, "materialLength"),
		MaterialRatePerLength: formDecimal(r, "materialRatePerLength"),
		FlatPrice:             formDecimal(r, "flatPrice"),
		Note:                  r.FormValue("note"),
	}
	settings := services.Settings{
		ProjectName:          r.FormValue("projectName"),
		CustomerName:         r.FormValue("customerName"),
		DefaultHourlyRate:    formDecimal(r, "defaultHourlyRate"),
		DefaultRatePerLength: formDecimal(r, "defaultRatePerLength"),
		TransportCost:        formDecimal(r, "transportCost"),
		MealCost:             formDecimal(r, "mealCost"),
	}
	return item, settings
}

func formDecimal(r *http.Request, key string) decimal.Decimal {
	raw := strings.TrimSpace(r.FormValue(key))
	raw = strings.ReplaceAll(raw, services.GroupSeparator, "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.Replace(raw, ",", ".", 1)
	return decimal.NewFromFloat(cast.ToFloat64(raw))
}

// validationMessage flattens a validation error into one toast line.
func validationMessage(err error) string {
	if errors.Is(err, services.ErrNoItems) {
		return "Kalkulace neobsahuje žádné položky"
	}
	return "Neplatná kalkulace: " + err.Error()
}
