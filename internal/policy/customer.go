package policy

import (
	"strconv"
	"strings"

	"github.com/onestop-insurance/onestop/internal/prompt"
	"github.com/onestop-insurance/onestop/pkg/format"
	"github.com/onestop-insurance/onestop/pkg/premium"
	"github.com/onestop-insurance/onestop/pkg/validate"
)

// Customer holds the validated intake data for one policy. Immutable once
// collected.
type Customer struct {
	FirstName   string
	LastName    string
	Address     string
	City        string
	Province    string
	PostalCode  string
	PhoneNumber string
	NumCars     int
	Coverage    premium.Coverage
}

// collectCustomer walks through the intake prompts in order, each one gated
// by its rule set, and applies display formatting to the accepted values.
func collectCustomer(p *prompt.Prompter) (Customer, error) {
	var cust Customer

	firstName, err := p.Ask(
		"Enter customer's first name: ",
		"Please use only allowed characters and ensure the name is no longer than 14 characters.",
		validate.Name, validate.MaxNameLength,
	)
	if err != nil {
		return cust, err
	}
	cust.FirstName = format.TitleName(firstName)

	lastName, err := p.Ask(
		"Enter customer's last name: ",
		"Please use only allowed characters and ensure the name is no longer than 14 characters.",
		validate.Name, validate.MaxNameLength,
	)
	if err != nil {
		return cust, err
	}
	cust.LastName = format.TitleName(lastName)

	address, err := p.Ask(
		"Enter customer's street address: ",
		"The address cannot be empty. Please enter a valid street address.",
		validate.NotBlank,
	)
	if err != nil {
		return cust, err
	}
	cust.Address = format.CapWords(address)

	city, err := p.Ask(
		"Enter customer's city: ",
		"Please use only allowed characters for the city name and ensure it is not empty.",
		validate.Name,
	)
	if err != nil {
		return cust, err
	}
	cust.City = format.TitleName(city)

	province, err := p.Ask(
		"Enter customer's province (abbreviation): ",
		"Please enter a valid province abbreviation. It cannot be empty.",
		validate.Province,
	)
	if err != nil {
		return cust, err
	}
	cust.Province = strings.ToUpper(province)

	postalCode, err := p.Ask(
		"Please enter the postal code (Format: X1X1X1): ",
		"Please enter a valid postal code in the format X1X1X1 without spaces.",
		validate.PostalCode,
	)
	if err != nil {
		return cust, err
	}
	cust.PostalCode = strings.ToUpper(strings.ReplaceAll(postalCode, " ", ""))

	phone, err := p.Ask(
		"Enter customer's phone number (10 digits): ",
		"Please enter a valid 10-digit numeric phone number without any spaces or special characters.",
		validate.PhoneNumber,
	)
	if err != nil {
		return cust, err
	}
	cust.PhoneNumber = phone

	rawCars, err := p.Ask(
		"Enter the number of cars being insured: ",
		"Please enter a positive integer for the number of cars.",
		validate.PositiveInteger,
	)
	if err != nil {
		return cust, err
	}
	cust.NumCars, err = strconv.Atoi(rawCars)
	if err != nil {
		return cust, err
	}

	cust.Coverage.ExtraLiability, err = askCoverage(p, "Do you want extra liability coverage? (Y/N): ")
	if err != nil {
		return cust, err
	}
	cust.Coverage.GlassCoverage, err = askCoverage(p, "Do you want glass coverage? (Y/N): ")
	if err != nil {
		return cust, err
	}
	cust.Coverage.LoanerCar, err = askCoverage(p, "Do you want a loaner car coverage? (Y/N): ")
	if err != nil {
		return cust, err
	}

	return cust, nil
}

func askCoverage(p *prompt.Prompter, question string) (bool, error) {
	answer, err := p.Ask(question, "Please answer Yes or No by typing Y or N.", validate.YesNo)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "Y"), nil
}

// FullName joins the customer's first and last names for display.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CityLine joins city, province, and postal code for display.
func (c Customer) CityLine() string {
	return c.City + ", " + c.Province + ", " + c.PostalCode
}
