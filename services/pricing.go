// Package services provides the pricing engine for calculation line items
// and the renderers that turn a priced calculation into export documents.
package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VATPercent is the fixed VAT rate applied to every calculation.
const VATPercent = 21

// VATRate is VATPercent as a multiplier.
var VATRate = decimal.NewFromInt(VATPercent).Div(decimal.NewFromInt(100))

var half = decimal.NewFromFloat(0.5)

// Category is the top-level classification of a line item. It selects both
// the pricing rule and the summary bucket.
type Category string

const (
	CategoryLabor     Category = "labor"
	CategoryMaterial  Category = "material"
	CategoryTransport Category = "transport"
	CategoryMeal      Category = "meal"
	CategoryOther     Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryLabor,
	CategoryMaterial,
	CategoryTransport,
	CategoryMeal,
	CategoryOther,
}

// Label returns the Czech display label of the category.
func (c Category) Label() string {
	switch c {
	case CategoryLabor:
		return "Práce"
	case CategoryMaterial:
		return "Materiál"
	case CategoryTransport:
		return "Doprava"
	case CategoryMeal:
		return "Jídlo"
	default:
		return "Ostatní"
	}
}

// LaborMode selects how a labor item is priced.
type LaborMode string

const (
	LaborByHour   LaborMode = "by_hour"
	LaborByLength LaborMode = "by_length"
)

// MaterialMode selects how a material item is priced.
type MaterialMode string

const (
	MaterialFlatAmount  MaterialMode = "flat"
	MaterialByUnitCount MaterialMode = "by_unit"
	MaterialByLength    MaterialMode = "by_length"
)

// LineItem is one billable entry as supplied by the caller. Every numeric
// field is optional; a missing value is zero.
type LineItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	LaborMode    LaborMode    `json:"laborMode,omitempty"`
	MaterialMode MaterialMode `json:"materialMode,omitempty"`

	Hours                 decimal.Decimal `json:"hours"`
	HourlyRate            decimal.Decimal `json:"hourlyRate"`
	Length                decimal.Decimal `json:"length"`
	RatePerLength         decimal.Decimal `json:"ratePerLength"`
	FlatMaterialAmount    decimal.Decimal `json:"flatMaterialAmount"`
	UnitCount             decimal.Decimal `json:"unitCount"`
	RatePerUnit           decimal.Decimal `json:"ratePerUnit"`
	MaterialLength        decimal.Decimal `json:"materialLength"`
	MaterialRatePerLength decimal.Decimal `json:"materialRatePerLength"`

	FlatPrice decimal.Decimal `json:"flatPrice"`
	Note      string          `json:"note,omitempty"`
}

// NewLineItem returns an item of the given category with a fresh ID.
func NewLineItem(name string, category Category) LineItem {
	return LineItem{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
	}
}

// Settings holds the session-wide defaults used while pricing items.
type Settings struct {
	ProjectName          string          `json:"projectName"`
	CustomerName         string          `json:"customerName"`
	DefaultHourlyRate    decimal.Decimal `json:"defaultHourlyRate"`
	DefaultRatePerLength decimal.Decimal `json:"defaultRatePerLength"`
	TransportCost        decimal.Decimal `json:"transportCost"`
	MealCost             decimal.Decimal `json:"mealCost"`
}

// Summary is the aggregate of a calculation. It is derived on demand and
// never stored.
type Summary struct {
	Labor             decimal.Decimal `json:"labor"`
	Material          decimal.Decimal `json:"material"`
	Transport         decimal.Decimal `json:"transport"`
	Meal              decimal.Decimal `json:"meal"`
	Other             decimal.Decimal `json:"other"`
	PreTaxTotal       decimal.Decimal `json:"preTaxTotal"`
	Tax               decimal.Decimal `json:"tax"`
	TaxInclusiveTotal decimal.Decimal `json:"taxInclusiveTotal"`
}

// Bucket returns the subtotal for a category. Unknown categories map to Other.
func (s Summary) Bucket(c Category) decimal.Decimal {
	switch c {
	case CategoryLabor:
		return s.Labor
	case CategoryMaterial:
		return s.Material
	case CategoryTransport:
		return s.Transport
	case CategoryMeal:
		return s.Meal
	default:
		return s.Other
	}
}

// PriceOf returns the total of a single item.
func PriceOf(item LineItem, settings Settings) decimal.Decimal {
	return item.Rule().Price(settings)
}

// Summarize prices every item, accumulates the per-category buckets and
// applies VAT once on the pre-tax total.
func Summarize(items []LineItem, settings Settings) Summary {
	var s Summary
	for _, item := range items {
		price := PriceOf(item, settings)
		switch item.Category {
		case CategoryLabor:
			s.Labor = s.Labor.Add(price)
		case CategoryMaterial:
			s.Material = s.Material.Add(price)
		case CategoryTransport:
			s.Transport = s.Transport.Add(price)
		case CategoryMeal:
			s.Meal = s.Meal.Add(price)
		default:
			s.Other = s.Other.Add(price)
		}
	}

	s.PreTaxTotal = decimal.Sum(s.Labor, s.Material, s.Transport, s.Meal, s.Other)
	s.Tax = roundHalfUp(s.PreTaxTotal.Mul(VATRate))
	s.TaxInclusiveTotal = s.PreTaxTotal.Add(s.Tax)
	return s
}

// Stats holds quantity roll-ups shown next to the summary.
type Stats struct {
	ItemCount           int             `json:"itemCount"`
	LaborHours          decimal.Decimal `json:"laborHours"`
	LaborLength         decimal.Decimal `json:"laborLength"`
	MaterialUnits       decimal.Decimal `json:"materialUnits"`
	MaterialLength      decimal.Decimal `json:"materialLength"`
	EffectiveHourlyRate decimal.Decimal `json:"effectiveHourlyRate"`
}

// ComputeStats sums quantities per labor/material mode. The effective hourly
// rate spreads the labor subtotal over the hours plus the length work
// converted to hours at the ratio of the default rates.
func ComputeStats(items []LineItem, settings Settings) Stats {
	st := Stats{ItemCount: len(items)}
	for _, item := range items {
		switch item.Category {
		case CategoryLabor:
			switch item.LaborMode {
			case LaborByHour:
				st.LaborHours = st.LaborHours.Add(item.Hours)
			case LaborByLength:
				st.LaborLength = st.LaborLength.Add(item.Length)
			}
		case CategoryMaterial:
			switch item.MaterialMode {
			case MaterialByUnitCount:
				st.MaterialUnits = st.MaterialUnits.Add(item.UnitCount)
			case MaterialByLength:
				st.MaterialLength = st.MaterialLength.Add(item.MaterialLength)
			}
		}
	}

	if st.LaborHours.IsPositive() {
		equivalentHours := st.LaborHours
		if !settings.DefaultHourlyRate.IsZero() {
			ratio := settings.DefaultRatePerLength.Div(settings.DefaultHourlyRate)
			equivalentHours = equivalentHours.Add(st.LaborLength.Mul(ratio))
		}
		if !equivalentHours.IsZero() {
			labor := Summarize(items, settings).Labor
			st.EffectiveHourlyRate = roundHalfUp(labor.Div(equivalentHours))
		}
	}
	return st
}

// roundHalfUp rounds to a whole amount with halves going toward +Inf.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}
