package premium

import "strings"

// Method identifies how the customer pays for the policy.
type Method int

const (
	// Full pays the entire cost up front; no installments.
	Full Method = iota

	// Monthly spreads the full cost over the configured installments.
	Monthly

	// DownPay pays part up front and finances the remainder.
	DownPay
)

// String returns the display name of the payment method.
func (m Method) String() string {
	switch m {
	case Full:
		return "Full"
	case Monthly:
		return "Monthly"
	case DownPay:
		return "Down Pay"
	}
	return "Unknown"
}

// ParseMethod maps the single-letter prompt answer (F, M, or D) to a Method.
func ParseMethod(letter string) (Method, bool) {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "F":
		return Full, true
	case "M":
		return Monthly, true
	case "D":
		return DownPay, true
	}
	return Full, false
}

// Plan is the customer's chosen payment arrangement. DownPayment and
// Installment are nil when not applicable.
type Plan struct {
	Method      Method
	DownPayment *float64
	Installment *float64
}

// ScheduleInstallments derives the per-installment amount for the given
// method. Full payment yields no installments. A down payment reduces the
// financed amount, and the processing fee is added to every installment
// regardless of the financed amount.
func ScheduleInstallments(totalCost float64, method Method, downPayment *float64, rates Rates) *float64 {
	if method == Full {
		return nil
	}
	adjusted := totalCost
	if downPayment != nil {
		adjusted -= *downPayment
	}
	installment := adjusted/installmentCount(rates) + rates.ProcessingFee
	return &installment
}

// MaxDownPayment is the largest down payment accepted: anything higher would
// push an installment below the processing fee.
func MaxDownPayment(totalCost float64, rates Rates) float64 {
	return totalCost - rates.ProcessingFee*installmentCount(rates)
}

// installmentCount guards the divisor: configuration validation only warns
// about a non-positive payment count, so scheduling treats anything below one
// as a single installment.
func installmentCount(rates Rates) float64 {
	if rates.NumPayments < 1 {
		return 1
	}
	return float64(rates.NumPayments)
}
