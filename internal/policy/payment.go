package policy

import (
	"fmt"
	"strconv"

	"github.com/onestop-insurance/onestop/internal/prompt"
	"github.com/onestop-insurance/onestop/pkg/format"
	"github.com/onestop-insurance/onestop/pkg/mathutil"
	"github.com/onestop-insurance/onestop/pkg/premium"
)

// collectPayment reads the payment method and, for DownPay, the down payment
// amount. The down payment must be non-negative and must not exceed the cap
// computed by premium.MaxDownPayment; violations re-prompt with the
// formatted maximum.
func collectPayment(p *prompt.Prompter, totalCost float64, rates premium.Rates) (premium.Plan, error) {
	out := p.Out()
	var method premium.Method

	for {
		letter, err := p.ReadLine("Enter payment method (F = Full, M = Monthly, D = Down Pay): ")
		if err != nil {
			return premium.Plan{}, err
		}
		m, ok := premium.ParseMethod(letter)
		if !ok {
			fmt.Fprintln(out, "Invalid payment method. Please enter 'F', 'M', or 'D'.")
			continue
		}
		method = m
		break
	}

	plan := premium.Plan{Method: method}
	if method != premium.DownPay {
		return plan, nil
	}

	maxDown := premium.MaxDownPayment(totalCost, rates)
	for {
		raw, err := p.ReadLine("Enter the amount of the down payment: $")
		if err != nil {
			return plan, err
		}
		value, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			fmt.Fprintln(out, "Invalid amount. Please enter a numeric value.")
			continue
		}
		if value < 0 {
			fmt.Fprintln(out, "The down payment cannot be negative. Please enter a positive value.")
			continue
		}
		// Cent-precision comparison, so re-entering the printed maximum is
		// always accepted.
		if mathutil.RoundCents(value) > mathutil.RoundCents(maxDown) {
			fmt.Fprintf(out, "The down payment must not exceed %s. Please enter a valid amount.\n", format.Currency(maxDown))
			continue
		}
		plan.DownPayment = &value
		break
	}

	return plan, nil
}
