// Package premium implements the pricing pipeline: premium calculation, tax
// application, and payment scheduling. Every function here is pure; values
// stay unrounded until display.
package premium

// Rates carries every pricing constant the calculators use. Populated from
// configuration so a pricing change never touches this package.
type Rates struct {
	BasicPremium          float64
	AdditionalCarDiscount float64
	ExtraLiabilityPerCar  float64
	GlassCoveragePerCar   float64
	LoanerCarPerCar       float64
	HSTRate               float64
	ProcessingFee         float64
	NumPayments           int
}

// Coverage holds the optional coverage selections for a policy.
type Coverage struct {
	ExtraLiability bool
	GlassCoverage  bool
	LoanerCar      bool
}

// Breakdown is the computed cost of a policy before tax.
type Breakdown struct {
	// BasePremium covers all cars before add-ons: the first car at the full
	// basic premium, every additional car discounted.
	BasePremium float64

	ExtraLiabilityCost float64
	GlassCoverageCost  float64
	LoanerCarCost      float64

	// TotalPremium is the base premium plus all selected add-on costs.
	TotalPremium float64
}

// Calculate prices numCars with the selected coverages. Unselected coverages
// contribute zero; selected ones cost their per-car rate times the car count.
func Calculate(numCars int, cov Coverage, rates Rates) Breakdown {
	b := Breakdown{
		BasePremium: rates.BasicPremium + rates.BasicPremium*(1-rates.AdditionalCarDiscount)*float64(numCars-1),
	}
	if cov.ExtraLiability {
		b.ExtraLiabilityCost = rates.ExtraLiabilityPerCar * float64(numCars)
	}
	if cov.GlassCoverage {
		b.GlassCoverageCost = rates.GlassCoveragePerCar * float64(numCars)
	}
	if cov.LoanerCar {
		b.LoanerCarCost = rates.LoanerCarPerCar * float64(numCars)
	}
	b.TotalPremium = b.BasePremium + b.ExtraLiabilityCost + b.GlassCoverageCost + b.LoanerCarCost
	return b
}

// ApplyTax returns the HST charged on the total premium and the overall cost
// including that tax.
func ApplyTax(totalPremium, rate float64) (tax, totalCost float64) {
	tax = totalPremium * rate
	return tax, totalPremium + tax
}
