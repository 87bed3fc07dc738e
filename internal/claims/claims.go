// Package claims collects the historical claims attached to a policy.
package claims

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/onestop-insurance/onestop/internal/prompt"
	"github.com/onestop-insurance/onestop/pkg/constants"
	"github.com/onestop-insurance/onestop/pkg/datetime"
	"github.com/onestop-insurance/onestop/pkg/validate"
)

// Claim is one historical claim, keyed by its number within a policy.
type Claim struct {
	Number int
	Date   time.Time
	Amount float64
}

// Collector gathers claims interactively until the sentinel token is
// entered and confirmed.
type Collector struct {
	prompter *prompt.Prompter
	logger   *zap.Logger
}

// NewCollector returns a Collector driven by the given prompter. A nil
// logger is replaced with a no-op logger.
func NewCollector(p *prompt.Prompter, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{prompter: p, logger: logger}
}

// Collect loops over claim entries until the user enters the sentinel. Each
// entry reads a claim number (with its own confirmation step), the date as
// separately validated year, month, and day components, and a positive
// amount. A repeated claim number updates the existing claim's amount in
// place; its date and list position are kept.
func (c *Collector) Collect() ([]Claim, error) {
	var list []Claim
	out := c.prompter.Out()

	for {
		raw, err := c.prompter.ReadLine(fmt.Sprintf("Enter claim number (or '%s' to finish): ", constants.ClaimsSentinel))
		if err != nil {
			return list, err
		}
		confirmed, err := c.prompter.ConfirmValue(raw)
		if err != nil {
			return list, err
		}
		if !confirmed {
			fmt.Fprintln(out, "Input not confirmed. Please re-enter the value.")
			fmt.Fprintln(out)
			continue
		}
		if strings.EqualFold(raw, constants.ClaimsSentinel) {
			fmt.Fprintln(out)
			break
		}
		if ok, _ := validate.Check(raw, validate.PositiveInteger); !ok {
			fmt.Fprintln(out, "Please enter a numeric value.")
			fmt.Fprintln(out)
			continue
		}
		number, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(out, "Please enter a numeric value.")
			fmt.Fprintln(out)
			continue
		}

		date, err := c.collectDate()
		if err != nil {
			return list, err
		}

		rawAmount, err := c.prompter.Ask(
			"Enter claim amount: $",
			"Enter a valid positive number for the amount.",
			validate.PositiveAmount,
		)
		if err != nil {
			return list, err
		}
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			return list, err
		}

		list = c.merge(list, Claim{Number: number, Date: date, Amount: amount})
	}

	c.logger.Debug("claims collected",
		zap.String("op", "claims.Collect"),
		zap.Int("count", len(list)),
	)
	return list, nil
}

// collectDate reads and validates each date component independently, then
// assembles them. time.Date normalization means February 31 rolls forward
// rather than re-prompting.
func (c *Collector) collectDate() (time.Time, error) {
	rawYear, err := c.prompter.Ask(
		"Enter the year of the claim date (YYYY): ",
		"Invalid year. Please enter a valid year between 1900 and 2150.",
		validate.Year,
	)
	if err != nil {
		return time.Time{}, err
	}
	rawMonth, err := c.prompter.Ask(
		"Enter the month of the claim date (MM): ",
		"Invalid month. Please enter a value between 1 and 12.",
		validate.Month,
	)
	if err != nil {
		return time.Time{}, err
	}
	rawDay, err := c.prompter.Ask(
		"Enter the day of the claim date (DD): ",
		"Invalid day. Please enter a value between 1 and 31.",
		validate.Day,
	)
	if err != nil {
		return time.Time{}, err
	}

	year, _ := strconv.Atoi(rawYear)
	month, _ := strconv.Atoi(rawMonth)
	day, _ := strconv.Atoi(rawDay)
	return datetime.ComposeDate(year, month, day), nil
}

// merge appends the claim or, when its number already exists, overwrites the
// existing claim's amount in place and emits a notice.
func (c *Collector) merge(list []Claim, claim Claim) []Claim {
	for i := range list {
		if list[i].Number == claim.Number {
			fmt.Fprintf(c.prompter.Out(), "Duplicate claim number found. Updating amount for claim number %d.\n", claim.Number)
			list[i].Amount = claim.Amount
			return list
		}
	}
	return append(list, claim)
}
