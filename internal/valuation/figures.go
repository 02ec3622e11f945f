// Package valuation derives the figures printed in the valuation sections
// from the rates and areas on the record.
package valuation

import (
	"fmt"
	"time"

	"valuation/internal/money"
	"valuation/internal/types"
)

// Percentages of market value banks ask for alongside the fair market value.
const (
	RealizablePct = 95
	DistressPct   = 80
	InsurablePct  = 35
)

// Figures are the computed amounts of the details-of-valuation and result
// tables.
type Figures struct {
	FlatValue   money.Paise // carpet area x composite rate
	TotalValue  money.Paise // flat value + fixed furniture
	MarketValue money.Paise
	Realizable  money.Paise
	Distress    money.Paise
	Insurable   money.Paise
	JantriValue money.Paise

	// TotalWords spells the total with "&" before the tens, as in the
	// details table; MarketWords omits it, as in the enclosure.
	TotalWords  string
	MarketWords string
}

// Compute derives the report figures from v.
func Compute(v types.Valuation) (Figures, error) {
	if v.Extent.Carpet <= 0 {
		return Figures{}, fmt.Errorf("compute figures: carpet area must be positive, got %s", v.Extent.Carpet)
	}
	if v.Rate.Composite <= 0 {
		return Figures{}, fmt.Errorf("compute figures: composite rate must be positive, got %s", v.Rate.Composite)
	}

	flat := v.Extent.Carpet.Times(v.Rate.Composite)
	total := flat + v.FixedFurniture

	return Figures{
		FlatValue:   flat,
		TotalValue:  total,
		MarketValue: total,
		Realizable:  total.Percent(RealizablePct),
		Distress:    total.Percent(DistressPct),
		Insurable:   total.Percent(InsurablePct),
		JantriValue: v.Extent.Carpet.Times(v.Rate.JantriRate),
		TotalWords:  money.Words(total, true),
		MarketWords: money.Words(total, false),
	}, nil
}

// Rs formats an amount the way the tables print it ("₹ 59,51,499.40").
func Rs(p money.Paise) string {
	return "₹ " + p.String()
}

// LongDate renders 30th October, 2025.
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d%s %s", t.Day(), ordinal(t.Day()), t.Format("January, 2006"))
}

// ShortDate renders 31-Oct-2025.
func ShortDate(t time.Time) string { return t.Format("02-Jan-2006") }

// SlashDate renders 31/10/2025.
func SlashDate(t time.Time) string { return t.Format("02/01/2006") }

// YesNo renders facility flags.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func ordinal(d int) string {
	if d%100 >= 11 && d%100 <= 13 {
		return "th"
	}
	switch d % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Years renders "0 Years" / "50 Years".
func Years(n int) string {
	return fmt.Sprintf("%d Years", n)
}
