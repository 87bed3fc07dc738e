// Package receipt assembles the computed policy values into display lines
// and renders them, either as plain text or inside a styled terminal box.
package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/onestop-insurance/onestop/internal/claims"
	"github.com/onestop-insurance/onestop/pkg/constants"
	"github.com/onestop-insurance/onestop/pkg/datetime"
	"github.com/onestop-insurance/onestop/pkg/format"
	"github.com/onestop-insurance/onestop/pkg/premium"
)

// Inputs carries everything a rendered receipt shows. All amounts arrive
// unrounded; formatting is this package's job.
type Inputs struct {
	PolicyNumber int
	InvoiceDate  time.Time

	FullName    string
	PhoneNumber string
	Street      string
	CityLine    string

	NumCars   int
	Coverage  premium.Coverage
	Breakdown premium.Breakdown
	HST       float64
	TotalCost float64

	Plan      premium.Plan
	Claims    []claims.Claim
	PlanCosts []premium.PlanCost
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	headingStyle = lipgloss.NewStyle().Bold(true)
)

// Render writes the receipt in the requested style followed by the save
// notice. Unknown styles fall back to plain.
func Render(w io.Writer, in Inputs, style string) {
	body := strings.Join(Lines(in), "\n")
	if style == constants.ReceiptStyleFancy {
		body = boxStyle.Render(body)
	}
	fmt.Fprintln(w, body)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Your policy data for policy number %d has been saved successfully.\n", in.PolicyNumber)
	fmt.Fprintln(w)
}

// Lines assembles the receipt body as display lines.
func Lines(in Inputs) []string {
	lines := []string{
		heading("------- One Stop Insurance Policy --------"),
		fmt.Sprintf("Policy - #%d", in.PolicyNumber),
		"",
		fmt.Sprintf("Current Invoice Date -- %s", format.Date(in.InvoiceDate)),
		fmt.Sprintf("  First Payment Date -- %s", format.Date(datetime.FirstOfNextMonth(in.InvoiceDate))),
		"",
		heading("-------- Customer Information --------"),
		fmt.Sprintf("   Full Name -- %s", in.FullName),
		fmt.Sprintf("Phone Number -- %s", in.PhoneNumber),
		fmt.Sprintf("      Street -- %s", in.Street),
		fmt.Sprintf("        City -- %s", in.CityLine),
		"",
		heading("----------- Premium Details -----------"),
		fmt.Sprintf("Number  of Cars  ----  %d  ----  %s", in.NumCars, format.Currency(in.Breakdown.BasePremium)),
		fmt.Sprintf("Extra Liability  ----  %s  ----  %s", yesNo(in.Coverage.ExtraLiability), format.Currency(in.Breakdown.ExtraLiabilityCost)),
		fmt.Sprintf("Glass  Coverage  ----  %s  ----  %s", yesNo(in.Coverage.GlassCoverage), format.Currency(in.Breakdown.GlassCoverageCost)),
		fmt.Sprintf("     Loaner Car  ----  %s  ----  %s", yesNo(in.Coverage.LoanerCar), format.Currency(in.Breakdown.LoanerCarCost)),
		"",
		fmt.Sprintf("  Total Premium  -------------  %s", format.Currency(in.Breakdown.TotalPremium)),
		fmt.Sprintf("     HST Charge  -------------  %s", format.Currency(in.HST)),
		fmt.Sprintf("     Total Cost  -------------  %s", format.Currency(in.TotalCost)),
		"",
		heading("------ Payment Details ------"),
	}

	lines = append(lines, paymentLines(in.Plan)...)
	lines = append(lines, "")
	lines = append(lines, claimLines(in.Claims)...)

	if comparison := comparisonLine(in.PlanCosts); comparison != "" {
		lines = append(lines, "", comparison)
	}

	lines = append(lines, "", "Thank you for choosing One Stop Insurance Company")
	return lines
}

func heading(s string) string {
	return headingStyle.Render(s)
}

func yesNo(selected bool) string {
	if selected {
		return "Y"
	}
	return "N"
}

func paymentLines(plan premium.Plan) []string {
	if plan.Method == premium.Full {
		return []string{"Payment Method: Full Payment"}
	}
	downPayment := "N/A"
	if plan.DownPayment != nil {
		downPayment = format.Currency(*plan.DownPayment)
	}
	installment := "N/A"
	if plan.Installment != nil {
		installment = format.Currency(*plan.Installment)
	}
	return []string{
		fmt.Sprintf("  Payment Method ----- %s", plan.Method),
		fmt.Sprintf("    Down Payment ----- %s", downPayment),
		fmt.Sprintf(" Monthly Payment ----- %s", installment),
	}
}

func claimLines(list []claims.Claim) []string {
	lines := []string{heading("------ Claim(s) Details ------")}
	if len(list) == 0 {
		return append(lines, "Claims History: None :)")
	}
	lines = append(lines,
		"Claim #    Claim Date       Amount",
		"----------------------------------",
	)
	for _, claim := range list {
		lines = append(lines, fmt.Sprintf("%7d    %s   %10s",
			claim.Number, format.Date(claim.Date), format.Currency(claim.Amount)))
	}
	return lines
}

// comparisonLine reports the financing surcharge so the customer sees what
// paying monthly costs over paying in full.
func comparisonLine(plans []premium.PlanCost) string {
	for _, plan := range plans {
		if plan.Method == premium.Monthly {
			return fmt.Sprintf("Paying monthly totals %s, %s more than paying in full.",
				format.Currency(plan.TotalPaid), format.Currency(plan.SurchargeOverFull))
		}
	}
	return ""
}
