package services

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ErrNoItems is returned when an export is requested for an empty calculation.
var ErrNoItems = errors.New("calculation has no items")

// Validate checks the calculation at the input boundary. The engine itself
// accepts anything; this is where empty names, unknown categories and
// negative numbers are turned away.
func (c Calculation) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Items),
		validation.Field(&c.Settings),
	)
}

// ValidateForExport is Validate plus the rule that an export needs at
// least one item.
func (c Calculation) ValidateForExport() error {
	if len(c.Items) == 0 {
		return ErrNoItems
	}
	return c.Validate()
}

// Validate implements validation.Validatable.
func (item LineItem) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&item.Name, validation.By(notBlank)),
		validation.Field(&item.Category, validation.Required, validation.In(
			CategoryLabor, CategoryMaterial, CategoryTransport, CategoryMeal, CategoryOther,
		)),
		validation.Field(&item.LaborMode, validation.In(LaborByHour, LaborByLength)),
		validation.Field(&item.MaterialMode, validation.In(MaterialFlatAmount, MaterialByUnitCount, MaterialByLength)),
	}
	return validation.ValidateStruct(&item, append(rules, amountRules(&item)...)...)
}

// ValidateAmounts checks only that no number on the item is negative. It
// suits an item still being edited, whose name or category may be missing.
func (item LineItem) ValidateAmounts() error {
	return validation.ValidateStruct(&item, amountRules(&item)...)
}

func amountRules(item *LineItem) []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&item.Hours, nonNegative),
		validation.Field(&item.HourlyRate, nonNegative),
		validation.Field(&item.Length, nonNegative),
		validation.Field(&item.RatePerLength, nonNegative),
		validation.Field(&item.FlatMaterialAmount, nonNegative),
		validation.Field(&item.UnitCount, nonNegative),
		validation.Field(&item.RatePerUnit, nonNegative),
		validation.Field(&item.MaterialLength, nonNegative),
		validation.Field(&item.MaterialRatePerLength, nonNegative),
		validation.Field(&item.FlatPrice, nonNegative),
	}
}

// Validate implements validation.Validatable.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.DefaultHourlyRate, nonNegative),
		validation.Field(&s.DefaultRatePerLength, nonNegative),
		validation.Field(&s.TransportCost, nonNegative),
		validation.Field(&s.MealCost, nonNegative),
	)
}

var nonNegative = validation.By(func(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return nil
	}
	if d.IsNegative() {
		return validation.NewError("validation_negative", "must not be negative")
	}
	return nil
})

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}
