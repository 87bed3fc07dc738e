package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/onestop-insurance/onestop/internal/claims"
	"github.com/onestop-insurance/onestop/pkg/constants"
	"github.com/onestop-insurance/onestop/pkg/premium"
)

func sampleInputs() Inputs {
	return Inputs{
		PolicyNumber: 1944,
		InvoiceDate:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		FullName:     "John Doe",
		PhoneNumber:  "7095551234",
		Street:       "12 Main St",
		CityLine:     "Clarenville, NL, A1B2C3",
		NumCars:      2,
		Coverage:     premium.Coverage{ExtraLiability: true},
		Breakdown: premium.Breakdown{
			BasePremium:        1520.75,
			ExtraLiabilityCost: 260.00,
			TotalPremium:       1780.75,
		},
		HST:       267.1125,
		TotalCost: 2047.8625,
		Plan:      premium.Plan{Method: premium.Full},
		PlanCosts: []premium.PlanCost{
			{Method: premium.Full, TotalPaid: 2047.8625},
			{Method: premium.Monthly, TotalPaid: 2367.7825, SurchargeOverFull: 319.92},
		},
	}
}

func TestLinesContent(t *testing.T) {
	body := strings.Join(Lines(sampleInputs()), "\n")

	assert.Contains(t, body, "Policy - #1944")
	assert.Contains(t, body, "Current Invoice Date -- 2024-03-15")
	assert.Contains(t, body, "First Payment Date -- 2024-04-01")
	assert.Contains(t, body, "Full Name -- John Doe")
	assert.Contains(t, body, "Phone Number -- 7095551234")
	assert.Contains(t, body, "Street -- 12 Main St")
	assert.Contains(t, body, "City -- Clarenville, NL, A1B2C3")
	assert.Contains(t, body, "Number  of Cars  ----  2  ----  $1,520.75")
	assert.Contains(t, body, "Extra Liability  ----  Y  ----  $260.00")
	assert.Contains(t, body, "Glass  Coverage  ----  N  ----  $0.00")
	assert.Contains(t, body, "Total Premium  -------------  $1,780.75")
	assert.Contains(t, body, "HST Charge  -------------  $267.11")
	assert.Contains(t, body, "Total Cost  -------------  $2,047.86")
	assert.Contains(t, body, "Thank you for choosing One Stop Insurance Company")
}

func TestLinesFullPayment(t *testing.T) {
	body := strings.Join(Lines(sampleInputs()), "\n")

	assert.Contains(t, body, "Payment Method: Full Payment")
	assert.NotContains(t, body, "Down Payment")
	assert.NotContains(t, body, "Monthly Payment -----")
}

func TestLinesFinancedPayment(t *testing.T) {
	in := sampleInputs()
	down := 500.00
	installment := 233.47
	in.Plan = premium.Plan{Method: premium.DownPay, DownPayment: &down, Installment: &installment}

	body := strings.Join(Lines(in), "\n")
	assert.Contains(t, body, "Payment Method ----- Down Pay")
	assert.Contains(t, body, "Down Payment ----- $500.00")
	assert.Contains(t, body, "Monthly Payment ----- $233.47")
}

func TestLinesMonthlyPaymentWithoutDownPayment(t *testing.T) {
	in := sampleInputs()
	installment := 295.97
	in.Plan = premium.Plan{Method: premium.Monthly, Installment: &installment}

	body := strings.Join(Lines(in), "\n")
	assert.Contains(t, body, "Payment Method ----- Monthly")
	assert.Contains(t, body, "Down Payment ----- N/A")
	assert.Contains(t, body, "Monthly Payment ----- $295.97")
}

func TestLinesEmptyClaims(t *testing.T) {
	body := strings.Join(Lines(sampleInputs()), "\n")
	assert.Contains(t, body, "Claims History: None :)")
}

func TestLinesClaimsTable(t *testing.T) {
	in := sampleInputs()
	in.Claims = []claims.Claim{
		{Number: 100, Date: time.Date(2020, time.May, 15, 0, 0, 0, 0, time.UTC), Amount: 500.00},
		{Number: 7, Date: time.Date(2021, time.July, 9, 0, 0, 0, 0, time.UTC), Amount: 1250.50},
	}

	body := strings.Join(Lines(in), "\n")
	assert.Contains(t, body, "Claim #    Claim Date       Amount")
	assert.Contains(t, body, "100    2020-05-15")
	assert.Contains(t, body, "$500.00")
	assert.Contains(t, body, "$1,250.50")
	assert.NotContains(t, body, "Claims History: None :)")
}

func TestLinesComparison(t *testing.T) {
	body := strings.Join(Lines(sampleInputs()), "\n")
	assert.Contains(t, body, "Paying monthly totals $2,367.78, $319.92 more than paying in full.")
}

func TestLinesNoComparisonWithoutPlanCosts(t *testing.T) {
	in := sampleInputs()
	in.PlanCosts = nil

	body := strings.Join(Lines(in), "\n")
	assert.NotContains(t, body, "Paying monthly totals")
}

func TestRenderPlain(t *testing.T) {
	var out strings.Builder
	Render(&out, sampleInputs(), constants.ReceiptStylePlain)

	assert.Contains(t, out.String(), "Policy - #1944")
	assert.Contains(t, out.String(), "Your policy data for policy number 1944 has been saved successfully.")
	assert.NotContains(t, out.String(), "╭")
}

func TestRenderFancyDrawsBorder(t *testing.T) {
	var out strings.Builder
	Render(&out, sampleInputs(), constants.ReceiptStyleFancy)

	assert.Contains(t, out.String(), "╭")
	assert.Contains(t, out.String(), "Policy - #1944")
}

func TestRenderUnknownStyleFallsBackToPlain(t *testing.T) {
	var out strings.Builder
	Render(&out, sampleInputs(), "csv")

	assert.Contains(t, out.String(), "Policy - #1944")
	assert.NotContains(t, out.String(), "╭")
}
