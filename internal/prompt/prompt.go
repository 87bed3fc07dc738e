// Package prompt implements the ask/validate/confirm loop that gates every
// piece of interactive input. The input source and output sink are
// injectable so whole sessions can be driven deterministically in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/onestop-insurance/onestop/pkg/validate"
)

// State tracks where the loop is while collecting a single value.
type State int

const (
	// StatePrompting means the next read is a candidate value.
	StatePrompting State = iota

	// StateAwaitingConfirmation means a valid value is waiting on a Y/N.
	StateAwaitingConfirmation

	// StateAccepted means the value was validated and confirmed.
	StateAccepted
)

// ErrInputClosed is returned when the input source is exhausted before a
// value was accepted. Interactive sessions never hit this; piped input and
// scripted tests do.
var ErrInputClosed = errors.New("prompt: input source closed")

// Prompter reads values from a single input source, validating and
// confirming each one before handing it back.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

// New returns a Prompter reading from in and writing prompts to out. A nil
// logger is replaced with a no-op logger.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Out exposes the output sink so callers can interleave their own messages
// with prompts.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// ReadLine writes the prompt and returns the next input line, trimmed.
func (p *Prompter) ReadLine(promptMsg string) (string, error) {
	fmt.Fprint(p.out, promptMsg)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// ConfirmValue asks the user to confirm an accepted raw value. Anything
// other than a valid case-insensitive Y declines.
func (p *Prompter) ConfirmValue(value string) (bool, error) {
	answer, err := p.ReadLine(fmt.Sprintf("Confirm input '%s'? (Y/N): ", value))
	if err != nil {
		return false, err
	}
	fmt.Fprintln(p.out)
	if ok, _ := validate.Check(answer, validate.YesNo); !ok {
		return false, nil
	}
	return strings.EqualFold(answer, "Y"), nil
}

// Ask loops until a value passes every rule and the user confirms it. The
// error hint prints on every validation failure, followed by the failing
// rule's own message. Only validated, confirmed values are returned; the
// loop has no retry limit.
func (p *Prompter) Ask(promptMsg, errorHint string, rules ...validate.Rule) (string, error) {
	state := StatePrompting
	var value string
	for {
		switch state {
		case StatePrompting:
			input, err := p.ReadLine(promptMsg)
			if err != nil {
				return "", err
			}
			ok, msg := validate.Check(input, rules...)
			if !ok {
				fmt.Fprintln(p.out, errorHint)
				fmt.Fprintln(p.out, msg)
				fmt.Fprintln(p.out)
				continue
			}
			value = input
			state = StateAwaitingConfirmation
		case StateAwaitingConfirmation:
			confirmed, err := p.ConfirmValue(value)
			if err != nil {
				return "", err
			}
			if confirmed {
				state = StateAccepted
			} else {
				fmt.Fprintln(p.out, "Input not confirmed. Please re-enter the value.")
				fmt.Fprintln(p.out)
				state = StatePrompting
			}
		case StateAccepted:
			p.logger.Debug("input accepted",
				zap.String("op", "prompt.Ask"),
				zap.String("value", value),
			)
			return value, nil
		}
	}
}

// AskInitial validates and confirms a pre-supplied value before falling back
// to interactive prompting.
func (p *Prompter) AskInitial(initial, promptMsg, errorHint string, rules ...validate.Rule) (string, error) {
	if ok, msg := validate.Check(initial, rules...); ok {
		confirmed, err := p.ConfirmValue(initial)
		if err != nil {
			return "", err
		}
		if confirmed {
			return initial, nil
		}
		fmt.Fprintln(p.out, "Initial value not confirmed. Please enter the value again.")
		fmt.Fprintln(p.out)
	} else {
		fmt.Fprintln(p.out, errorHint)
		fmt.Fprintln(p.out, msg)
		fmt.Fprintln(p.out)
	}
	return p.Ask(promptMsg, errorHint, rules...)
}

// Confirm asks a standalone yes/no question through the full ask loop, so
// the answer itself gets the usual confirmation step.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question, "Please enter Y/N for Yes or No", validate.YesNo)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "Y"), nil
}
