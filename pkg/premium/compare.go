package premium

// PlanCost summarizes the total outlay of one payment method so the receipt
// can show what financing actually costs.
type PlanCost struct {
	Method Method

	// TotalPaid is everything the customer hands over under this method.
	TotalPaid float64

	// SurchargeOverFull is how much more this method costs than paying in
	// full. Zero for Full.
	SurchargeOverFull float64
}

// ComparePlans reports the total outlay per payment method at zero down
// payment. DownPay with no down payment is arithmetically identical to
// Monthly, so only Full and Monthly are listed.
func ComparePlans(totalCost float64, rates Rates) []PlanCost {
	plans := []PlanCost{{Method: Full, TotalPaid: totalCost}}
	if installment := ScheduleInstallments(totalCost, Monthly, nil, rates); installment != nil {
		paid := *installment * installmentCount(rates)
		plans = append(plans, PlanCost{
			Method:            Monthly,
			TotalPaid:         paid,
			SurchargeOverFull: paid - totalCost,
		})
	}
	return plans
}
