package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rule is the resolved pricing path of a line item. Exactly one rule is
// active per item, so fields that belong to other paths are never read.
type Rule interface {
	// Price returns the item total under this rule.
	Price(settings Settings) decimal.Decimal
	// Describe returns the human-readable breakdown shown in exports.
	Describe(settings Settings) string

	isRule()
}

// Rule resolves the active pricing path. A non-zero flat price wins over
// everything else; otherwise the category and its mode decide.
func (item LineItem) Rule() Rule {
	if !item.FlatPrice.IsZero() {
		return FlatPrice{Amount: item.FlatPrice}
	}

	switch item.Category {
	case CategoryLabor:
		switch item.LaborMode {
		case LaborByHour:
			return LaborByHourRule{Hours: item.Hours, HourlyRate: item.HourlyRate}
		case LaborByLength:
			return LaborByLengthRule{Length: item.Length, RatePerLength: item.RatePerLength}
		default:
			return Unpriced{}
		}
	case CategoryMaterial:
		switch item.MaterialMode {
		case MaterialFlatAmount:
			return MaterialFlatRule{Amount: item.FlatMaterialAmount}
		case MaterialByUnitCount:
			return MaterialByUnitRule{Count: item.UnitCount, RatePerUnit: item.RatePerUnit}
		case MaterialByLength:
			return MaterialByLengthRule{Length: item.MaterialLength, RatePerLength: item.MaterialRatePerLength}
		default:
			return Unpriced{}
		}
	case CategoryTransport:
		return TransportFee{}
	case CategoryMeal:
		return MealFee{}
	case CategoryOther:
		return Unpriced{}
	default:
		return Unpriced{}
	}
}

// FlatPrice overrides all other computation.
type FlatPrice struct {
	Amount decimal.Decimal
}

func (r FlatPrice) Price(Settings) decimal.Decimal { return r.Amount }
func (r FlatPrice) Describe(Settings) string       { return "Paušální cena" }
func (FlatPrice) isRule()                          {}

// LaborByHourRule prices hours at the item rate or the default hourly rate.
type LaborByHourRule struct {
	Hours      decimal.Decimal
	HourlyRate decimal.Decimal
}

func (r LaborByHourRule) rate(s Settings) decimal.Decimal {
	return orDefault(r.HourlyRate, s.DefaultHourlyRate)
}

func (r LaborByHourRule) Price(s Settings) decimal.Decimal {
	return r.Hours.Mul(r.rate(s))
}

func (r LaborByHourRule) Describe(s Settings) string {
	return fmt.Sprintf("%sh × %s/hod", FormatQty(r.Hours), FormatCZK(r.rate(s)))
}

func (LaborByHourRule) isRule() {}

// LaborByLengthRule prices installed length at the item rate or the
// default per-length rate.
type LaborByLengthRule struct {
	Length        decimal.Decimal
	RatePerLength decimal.Decimal
}

func (r LaborByLengthRule) rate(s Settings) decimal.Decimal {
	return orDefault(r.RatePerLength, s.DefaultRatePerLength)
}

func (r LaborByLengthRule) Price(s Settings) decimal.Decimal {
	return r.Length.Mul(r.rate(s))
}

func (r LaborByLengthRule) Describe(s Settings) string {
	return fmt.Sprintf("%sm × %s/m", FormatQty(r.Length), FormatCZK(r.rate(s)))
}

func (LaborByLengthRule) isRule() {}

// MaterialFlatRule is a single material amount.
type MaterialFlatRule struct {
	Amount decimal.Decimal
}

func (r MaterialFlatRule) Price(Settings) decimal.Decimal { return r.Amount }
func (r MaterialFlatRule) Describe(Settings) string       { return "Celková cena" }
func (MaterialFlatRule) isRule()                          {}

// MaterialByUnitRule prices a piece count. There is no default unit rate.
type MaterialByUnitRule struct {
	Count       decimal.Decimal
	RatePerUnit decimal.Decimal
}

func (r MaterialByUnitRule) Price(Settings) decimal.Decimal {
	return r.Count.Mul(r.RatePerUnit)
}

func (r MaterialByUnitRule) Describe(Settings) string {
	return fmt.Sprintf("%s ks × %s/ks", FormatQty(r.Count), FormatCZK(r.RatePerUnit))
}

func (MaterialByUnitRule) isRule() {}

// MaterialByLengthRule prices cable or conduit by length.
type MaterialByLengthRule struct {
	Length        decimal.Decimal
	RatePerLength decimal.Decimal
}

func (r MaterialByLengthRule) Price(Settings) decimal.Decimal {
	return r.Length.Mul(r.RatePerLength)
}

func (r MaterialByLengthRule) Describe(Settings) string {
	return fmt.Sprintf("%sm × %s/m", FormatQty(r.Length), FormatCZK(r.RatePerLength))
}

func (MaterialByLengthRule) isRule() {}

// TransportFee charges the session transport cost.
type TransportFee struct{}

func (TransportFee) Price(s Settings) decimal.Decimal { return s.TransportCost }
func (TransportFee) Describe(Settings) string         { return "Dopravní náklady" }
func (TransportFee) isRule()                          {}

// MealFee charges the session meal cost.
type MealFee struct{}

func (MealFee) Price(s Settings) decimal.Decimal { return s.MealCost }
func (MealFee) Describe(Settings) string         { return "Náklady na jídlo" }
func (MealFee) isRule()                          {}

// Unpriced is the explicit zero path: Other items without a flat price and
// labor/material items whose mode is not set.
type Unpriced struct{}

func (Unpriced) Price(Settings) decimal.Decimal { return decimal.Zero }
func (Unpriced) Describe(Settings) string       { return "" }
func (Unpriced) isRule()                        {}

func orDefault(v, fallback decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return fallback
	}
	return v
}
