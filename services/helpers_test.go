package services

import (
	"bytes"
	"fmt"
	"time"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

var testNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func testOptions(format string) RenderOptions {
	return RenderOptions{
		Title:      "ELIK - Kalkulace elektroinstalace",
		FilePrefix: "ELIK",
		Format:     format,
		Now:        testNow,
	}
}

// sampleCalculation is a small job touching every bucket.
func sampleCalculation() Calculation {
	return Calculation{
		Settings: Settings{
			ProjectName:          "Rodinný dům Brno",
			CustomerName:         "Jan Novák",
			DefaultHourlyRate:    dec("800"),
			DefaultRatePerLength: dec("150"),
			TransportCost:        dec("500"),
			MealCost:             dec("300"),
		},
		Items: []LineItem{
			{ID: "1", Name: "Rozvody v kuchyni", Category: CategoryLabor, LaborMode: LaborByHour, Hours: dec("10")},
			{ID: "2", Name: "Kabelové žlaby", Category: CategoryLabor, LaborMode: LaborByLength, Length: dec("12")},
			{ID: "3", Name: "Kabely CYKY", Category: CategoryMaterial, MaterialMode: MaterialFlatAmount, FlatMaterialAmount: dec("1500"), Note: "včetně krabic"},
			{ID: "4", Name: "Zásuvky", Category: CategoryMaterial, MaterialMode: MaterialByUnitCount, UnitCount: dec("10"), RatePerUnit: dec("50")},
			{ID: "5", Name: "Doprava", Category: CategoryTransport},
			{ID: "6", Name: "Oběd", Category: CategoryMeal},
			{ID: "7", Name: "Revizní zpráva", Category: CategoryOther, FlatPrice: dec("2000")},
		},
	}
}

// bigCalculation has enough items to span several pages.
func bigCalculation(n int) Calculation {
	calc := Calculation{Settings: sampleCalculation().Settings}
	for i := 0; i < n; i++ {
		calc.Items = append(calc.Items, LineItem{
			ID:        fmt.Sprintf("%d", i+1),
			Name:      fmt.Sprintf("Okruh %d", i+1),
			Category:  CategoryLabor,
			LaborMode: LaborByHour,
			Hours:     dec("2"),
			Note:      "zásuvkový okruh",
		})
	}
	return calc
}
