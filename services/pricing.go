package services

// QuoteLine is a selected offering with a quantity and an optional price
// override. CustomPrice nil means the offering's base price applies.
type QuoteLine struct {
	Offering    Offering `json:"offering"`
	Quantity    int      `json:"quantity"`
	CustomPrice *float64 `json:"customPrice,omitempty"`
}

// EffectivePrice returns the custom price if set, else the base price.
func EffectivePrice(line QuoteLine) float64 {
	if line.CustomPrice != nil {
		return *line.CustomPrice
	}
	return line.Offering.Price
}

// LineTotal returns effective unit price times quantity.
func LineTotal(line QuoteLine) float64 {
	return EffectivePrice(line) * float64(line.Quantity)
}

// QuoteTotals holds the aggregate figures derived from a set of quote lines.
type QuoteTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxableAmount  float64 `json:"taxableAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
	TotalDays      int     `json:"totalDays"`
}

// CalcQuoteTotals computes all derived figures in a single pass over lines.
// Rates are percentages; discount applies to the subtotal, tax applies to
// the taxable amount after discount. Out-of-range inputs are not rejected
// here, they flow through the arithmetic unchanged.
func CalcQuoteTotals(lines []QuoteLine, discountPercent, taxPercent float64) QuoteTotals {
	var subtotal float64
	var totalDays int
	for _, line := range lines {
		subtotal += LineTotal(line)
		totalDays += line.Offering.EstimatedDays * line.Quantity
	}

	discountAmount := subtotal * discountPercent / 100
	taxableAmount := subtotal - discountAmount
	taxAmount := taxableAmount * taxPercent / 100

	return QuoteTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxableAmount,
		TaxAmount:      taxAmount,
		Total:          taxableAmount + taxAmount,
		TotalDays:      totalDays,
	}
}
