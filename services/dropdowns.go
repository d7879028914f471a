package services

// Option is one choice of a form select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions lists the item categories in display order.
func CategoryOptions() []Option {
	opts := make([]Option, 0, len(Categories))
	for _, c := range Categories {
		opts = append(opts, Option{Value: string(c), Label: c.Label()})
	}
	return opts
}

// LaborModeOptions lists the ways a labor item can be priced.
var LaborModeOptions = []Option{
	{Value: string(LaborByHour), Label: "Hodinová sazba"},
	{Value: string(LaborByLength), Label: "Metrová sazba"},
}

// MaterialModeOptions lists the ways a material item can be priced.
var MaterialModeOptions = []Option{
	{Value: string(MaterialFlatAmount), Label: "Celková cena"},
	{Value: string(MaterialByUnitCount), Label: "Podle kusů"},
	{Value: string(MaterialByLength), Label: "Podle metrů"},
}
