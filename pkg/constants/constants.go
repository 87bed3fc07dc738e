// Package constants provides shared constants for the onestop application.
package constants

// DateLayout is the display format for invoice, payment, and claim dates.
const DateLayout = "2006-01-02"

// Pricing defaults. These seed the configuration and apply whenever no
// config file overrides them.
const (
	// DefaultBasicPremium is the premium charged for the first insured car
	DefaultBasicPremium = 869.00

	// DefaultAdditionalCarDiscount is the fraction discounted from the basic
	// premium for every car after the first
	DefaultAdditionalCarDiscount = 0.25

	// DefaultExtraLiabilityPerCar is the per-car cost of extra liability coverage
	DefaultExtraLiabilityPerCar = 130.00

	// DefaultGlassCoveragePerCar is the per-car cost of glass coverage
	DefaultGlassCoveragePerCar = 86.00

	// DefaultLoanerCarPerCar is the per-car cost of loaner car coverage
	DefaultLoanerCarPerCar = 58.00

	// DefaultHSTRate is the flat tax rate applied to the total premium
	DefaultHSTRate = 0.15

	// DefaultProcessingFee is the flat surcharge added to every installment
	DefaultProcessingFee = 39.99

	// DefaultNumPayments is the number of installments on a financed policy
	DefaultNumPayments = 8

	// DefaultPolicyNumberSeed is the policy number assigned to the first
	// policy of a session
	DefaultPolicyNumberSeed = 1944
)

// Validation limits
const (
	// PhoneNumberLength is the required digit count for phone numbers
	PhoneNumberLength = 10

	// PostalCodeLength is the required character count for postal codes
	PostalCodeLength = 6

	// MaxNameLength caps first and last name input
	MaxNameLength = 14

	// MaxShortLength caps short free-form input
	MaxShortLength = 5

	// MinClaimYear and MaxClaimYear bound the accepted claim years
	MinClaimYear = 1900
	MaxClaimYear = 2150
)

// Currency handling constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Receipt style constants
const (
	// ReceiptStylePlain renders the receipt as unstyled text
	ReceiptStylePlain = "plain"

	// ReceiptStyleFancy renders the receipt inside a styled terminal box
	ReceiptStyleFancy = "fancy"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// ClaimsSentinel is the token that ends claim entry.
const ClaimsSentinel = "done"

// Provinces holds the 13 recognized two-letter province and territory codes.
var Provinces = []string{
	"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT",
}
