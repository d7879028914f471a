package services

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestCalculationValidate_Valid(t *testing.T) {
	if err := sampleCalculation().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if err := sampleCalculation().ValidateForExport(); err != nil {
		t.Fatalf("ValidateForExport() error = %v", err)
	}
}

func TestCalculationValidate_EmptyIsValidForSummary(t *testing.T) {
	calc := Calculation{Settings: testSettings()}
	if err := calc.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := calc.ValidateForExport(); !errors.Is(err, ErrNoItems) {
		t.Errorf("ValidateForExport() error = %v, want ErrNoItems", err)
	}
}

func TestLineItemValidate(t *testing.T) {
	valid := LineItem{Name: "Zásuvky", Category: CategoryLabor, LaborMode: LaborByHour, Hours: dec("2")}

	tests := []struct {
		name      string
		mutate    func(*LineItem)
		wantField string
	}{
		{"blank name", func(i *LineItem) { i.Name = "   " }, "name"},
		{"missing category", func(i *LineItem) { i.Category = "" }, "category"},
		{"unknown category", func(i *LineItem) { i.Category = "tools" }, "category"},
		{"unknown labor mode", func(i *LineItem) { i.LaborMode = "by_day" }, "laborMode"},
		{"unknown material mode", func(i *LineItem) { i.MaterialMode = "by_weight" }, "materialMode"},
		{"negative hours", func(i *LineItem) { i.Hours = dec("-1") }, "hours"},
		{"negative flat price", func(i *LineItem) { i.FlatPrice = dec("-0.5") }, "flatPrice"},
		{"negative unit rate", func(i *LineItem) { i.RatePerUnit = dec("-50") }, "ratePerUnit"},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid item: Validate() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			err := item.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			var errs validation.Errors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() error type %T, want validation.Errors", err)
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() errors %v, want field %q", errs, tt.wantField)
			}
		})
	}
}

func TestLineItemValidateAmounts(t *testing.T) {
	tests := []struct {
		name      string
		item      LineItem
		wantField string
	}{
		{"blank name allowed", LineItem{Category: CategoryLabor, Hours: dec("2")}, ""},
		{"unknown category allowed", LineItem{Name: "Okruh", Category: "tools", FlatPrice: dec("100")}, ""},
		{"zero values", LineItem{}, ""},
		{"negative hours", LineItem{Category: CategoryLabor, Hours: dec("-2")}, "hours"},
		{"negative material length", LineItem{MaterialLength: dec("-0.001")}, "materialLength"},
		{"negative flat price", LineItem{FlatPrice: dec("-1")}, "flatPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.ValidateAmounts()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateAmounts() error = %v", err)
				}
				return
			}
			var errs validation.Errors
			if !errors.As(err, &errs) {
				t.Fatalf("ValidateAmounts() error = %v, want validation.Errors", err)
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("ValidateAmounts() errors %v, want field %q", errs, tt.wantField)
			}
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	s := testSettings()
	s.MealCost = dec("-300")
	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for negative meal cost")
	}
	if !strings.Contains(err.Error(), "mealCost") {
		t.Errorf("Validate() error = %q, want mealCost", err)
	}
}

func TestCalculationValidate_ReportsItemIndex(t *testing.T) {
	calc := sampleCalculation()
	calc.Items[2].Name = ""
	err := calc.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	if !strings.Contains(err.Error(), "items: (2:") {
		t.Errorf("Validate() error = %q, want index 2 reported", err)
	}
}

func TestAssignIDs(t *testing.T) {
	calc := Calculation{Items: []LineItem{
		{ID: "keep", Name: "A", Category: CategoryMeal},
		{Name: "B", Category: CategoryMeal},
	}}
	calc.AssignIDs()
	if calc.Items[0].ID != "keep" {
		t.Errorf("existing ID replaced: %q", calc.Items[0].ID)
	}
	if calc.Items[1].ID == "" {
		t.Error("missing ID not assigned")
	}
}
