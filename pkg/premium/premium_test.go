package premium

import (
	"testing"

	"github.com/onestop-insurance/onestop/pkg/mathutil"
)

func standardRates() Rates {
	return Rates{
		BasicPremium:          869.00,
		AdditionalCarDiscount: 0.25,
		ExtraLiabilityPerCar:  130.00,
		GlassCoveragePerCar:   86.00,
		LoanerCarPerCar:       58.00,
		HSTRate:               0.15,
		ProcessingFee:         39.99,
		NumPayments:           8,
	}
}

func TestCalculateBasePremium(t *testing.T) {
	rates := standardRates()

	tests := []struct {
		name     string
		numCars  int
		expected float64
	}{
		{"Single car pays the basic premium", 1, 869.00},
		{"Second car discounted", 2, 869.00 + 869.00*0.75},
		{"Five cars", 5, 869.00 + 869.00*0.75*4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(tt.numCars, Coverage{}, rates)
			if !mathutil.WithinCents(b.BasePremium, tt.expected) {
				t.Errorf("Calculate(%d).BasePremium = %v, expected %v", tt.numCars, b.BasePremium, tt.expected)
			}
			if !mathutil.WithinCents(b.TotalPremium, tt.expected) {
				t.Errorf("Calculate(%d).TotalPremium = %v, expected base premium %v with no coverages", tt.numCars, b.TotalPremium, tt.expected)
			}
		})
	}
}

func TestCalculateAddOnsProportionalToCars(t *testing.T) {
	rates := standardRates()

	for _, numCars := range []int{1, 2, 3, 7} {
		b := Calculate(numCars, Coverage{ExtraLiability: true, GlassCoverage: true, LoanerCar: true}, rates)
		n := float64(numCars)
		if !mathutil.WithinCents(b.ExtraLiabilityCost, 130.00*n) {
			t.Errorf("ExtraLiabilityCost for %d cars = %v, expected %v", numCars, b.ExtraLiabilityCost, 130.00*n)
		}
		if !mathutil.WithinCents(b.GlassCoverageCost, 86.00*n) {
			t.Errorf("GlassCoverageCost for %d cars = %v, expected %v", numCars, b.GlassCoverageCost, 86.00*n)
		}
		if !mathutil.WithinCents(b.LoanerCarCost, 58.00*n) {
			t.Errorf("LoanerCarCost for %d cars = %v, expected %v", numCars, b.LoanerCarCost, 58.00*n)
		}
	}
}

func TestCalculateUnselectedCoveragesCostNothing(t *testing.T) {
	b := Calculate(4, Coverage{}, standardRates())
	if b.ExtraLiabilityCost != 0 || b.GlassCoverageCost != 0 || b.LoanerCarCost != 0 {
		t.Errorf("unselected coverages contributed costs: %+v", b)
	}
}

// Worked example: two cars with extra liability only. The base premium is
// 869 + 869*0.75 = 1520.75 and the add-on is 130*2 = 260.
func TestCalculateWorkedExample(t *testing.T) {
	rates := standardRates()
	b := Calculate(2, Coverage{ExtraLiability: true}, rates)

	if !mathutil.WithinCents(b.BasePremium, 1520.75) {
		t.Errorf("BasePremium = %v, expected 1520.75", b.BasePremium)
	}
	if !mathutil.WithinCents(b.ExtraLiabilityCost, 260.00) {
		t.Errorf("ExtraLiabilityCost = %v, expected 260.00", b.ExtraLiabilityCost)
	}
	if !mathutil.WithinCents(b.TotalPremium, 1780.75) {
		t.Errorf("TotalPremium = %v, expected 1780.75", b.TotalPremium)
	}

	hst, totalCost := ApplyTax(b.TotalPremium, rates.HSTRate)
	if !mathutil.WithinTolerance(hst, 267.1125, 0.0001) {
		t.Errorf("ApplyTax() hst = %v, expected 267.1125", hst)
	}
	if !mathutil.WithinTolerance(totalCost, 2047.8625, 0.0001) {
		t.Errorf("ApplyTax() totalCost = %v, expected 2047.8625", totalCost)
	}
}

func TestApplyTaxExact(t *testing.T) {
	tests := []struct {
		name    string
		premium float64
		rate    float64
	}{
		{"Standard HST", 1780.75, 0.15},
		{"Zero rate", 500.00, 0.0},
		{"Round premium", 1000.00, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, totalCost := ApplyTax(tt.premium, tt.rate)
			if tax != tt.premium*tt.rate {
				t.Errorf("ApplyTax() tax = %v, expected exactly %v", tax, tt.premium*tt.rate)
			}
			if totalCost != tt.premium*(1+tt.rate) {
				t.Errorf("ApplyTax() totalCost = %v, expected exactly %v", totalCost, tt.premium*(1+tt.rate))
			}
		})
	}
}
