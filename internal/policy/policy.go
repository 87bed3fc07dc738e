// Package policy orchestrates one insurance policy per cycle: customer
// intake, claims, pricing, payment, and the rendered receipt.
package policy

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/onestop-insurance/onestop/internal/claims"
	"github.com/onestop-insurance/onestop/internal/config"
	"github.com/onestop-insurance/onestop/internal/prompt"
	"github.com/onestop-insurance/onestop/internal/receipt"
	"github.com/onestop-insurance/onestop/pkg/premium"
)

// Desk processes insurance policies one at a time against a fixed rate card.
// The policy counter is threaded through ProcessPolicy explicitly rather
// than held as mutable state.
type Desk struct {
	prompter *prompt.Prompter
	out      io.Writer
	logger   *zap.Logger
	conf     *config.Configuration

	// now is swappable so tests can pin the invoice date.
	now func() time.Time
}

// New returns a Desk reading input from in and writing prompts and receipts
// to out. A nil logger is replaced with a no-op logger.
func New(in io.Reader, out io.Writer, logger *zap.Logger, conf *config.Configuration) *Desk {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Desk{
		prompter: prompt.New(in, out, logger),
		out:      out,
		logger:   logger,
		conf:     conf,
		now:      time.Now,
	}
}

// Run processes policies until the user declines to continue. A closed input
// source ends the session cleanly; there is no other exit.
func (d *Desk) Run() error {
	number := d.conf.Pricing.PolicyNumberSeed
	for {
		next, err := d.ProcessPolicy(number)
		if err != nil {
			return d.finishOnInputClosed(err)
		}
		number = next

		again, err := d.prompter.Confirm("Process another insurance policy? (Y/N): ")
		if err != nil {
			return d.finishOnInputClosed(err)
		}
		if !again {
			break
		}
	}
	fmt.Fprintln(d.out, "Thank you for using the One Stop Insurance Company program.")
	return nil
}

func (d *Desk) finishOnInputClosed(err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		d.logger.Info("input closed, ending session",
			zap.String("op", "policy.Run"),
		)
		return nil
	}
	return err
}

// ProcessPolicy runs one full cycle for the given policy number and returns
// the incremented counter for the next policy. Once the receipt is rendered
// the policy is final; invalid input only ever re-prompts.
func (d *Desk) ProcessPolicy(policyNumber int) (int, error) {
	fmt.Fprintf(d.out, "\nProcessing Policy Number: %d\n\n", policyNumber)

	cust, err := collectCustomer(d.prompter)
	if err != nil {
		return policyNumber, err
	}

	claimList, err := claims.NewCollector(d.prompter, d.logger).Collect()
	if err != nil {
		return policyNumber, err
	}

	rates := d.conf.Rates()
	breakdown := premium.Calculate(cust.NumCars, cust.Coverage, rates)
	hst, totalCost := premium.ApplyTax(breakdown.TotalPremium, rates.HSTRate)

	plan, err := collectPayment(d.prompter, totalCost, rates)
	if err != nil {
		return policyNumber, err
	}
	plan.Installment = premium.ScheduleInstallments(totalCost, plan.Method, plan.DownPayment, rates)

	invoiceDate := d.now()
	receipt.Render(d.out, receipt.Inputs{
		PolicyNumber: policyNumber,
		InvoiceDate:  invoiceDate,
		FullName:     cust.FullName(),
		PhoneNumber:  cust.PhoneNumber,
		Street:       cust.Address,
		CityLine:     cust.CityLine(),
		NumCars:      cust.NumCars,
		Coverage:     cust.Coverage,
		Breakdown:    breakdown,
		HST:          hst,
		TotalCost:    totalCost,
		Plan:         plan,
		Claims:       claimList,
		PlanCosts:    premium.ComparePlans(totalCost, rates),
	}, d.conf.Output.ReceiptStyle)

	d.logger.Info("policy processed",
		zap.String("op", "policy.ProcessPolicy"),
		zap.Int("policyNumber", policyNumber),
		zap.Int("numCars", cust.NumCars),
		zap.Float64("totalCost", totalCost),
		zap.String("paymentMethod", plan.Method.String()),
		zap.Int("claims", len(claimList)),
	)

	return policyNumber + 1, nil
}
