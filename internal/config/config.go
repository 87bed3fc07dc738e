// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/onestop-insurance/onestop/pkg/constants"
	"github.com/onestop-insurance/onestop/pkg/premium"
)

// Configuration holds all configuration for onestop.
type Configuration struct {
	Pricing PricingConfig `yaml:"pricing,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// PricingConfig holds every pricing constant the calculators use. Defaults
// reproduce the standard One Stop rate card.
type PricingConfig struct {
	BasicPremium          float64 `mapstructure:"basicPremium"`
	AdditionalCarDiscount float64 `mapstructure:"additionalCarDiscount"`
	ExtraLiabilityPerCar  float64 `mapstructure:"extraLiabilityPerCar"`
	GlassCoveragePerCar   float64 `mapstructure:"glassCoveragePerCar"`
	LoanerCarPerCar       float64 `mapstructure:"loanerCarPerCar"`
	HSTRate               float64 `mapstructure:"hstRate"`
	ProcessingFee         float64 `mapstructure:"processingFee"`
	NumPayments           int     `mapstructure:"numPayments"`
	PolicyNumberSeed      int     `mapstructure:"policyNumberSeed"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds receipt rendering options
type OutputConfig struct {
	ReceiptStyle string `mapstructure:"receiptStyle"` // plain, fancy
}

// LoadConfiguration loads the YAML-formatted configuration at configPath.
// A missing file is not an error: every setting has a default, so the tool
// runs unconfigured.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pricing.basicPremium", constants.DefaultBasicPremium)
	v.SetDefault("pricing.additionalCarDiscount", constants.DefaultAdditionalCarDiscount)
	v.SetDefault("pricing.extraLiabilityPerCar", constants.DefaultExtraLiabilityPerCar)
	v.SetDefault("pricing.glassCoveragePerCar", constants.DefaultGlassCoveragePerCar)
	v.SetDefault("pricing.loanerCarPerCar", constants.DefaultLoanerCarPerCar)
	v.SetDefault("pricing.hstRate", constants.DefaultHSTRate)
	v.SetDefault("pricing.processingFee", constants.DefaultProcessingFee)
	v.SetDefault("pricing.numPayments", constants.DefaultNumPayments)
	v.SetDefault("pricing.policyNumberSeed", constants.DefaultPolicyNumberSeed)
	v.SetDefault("output.receiptStyle", constants.ReceiptStyleFancy)
}

// Rates converts the pricing configuration into the calculator's Rates.
func (c *Configuration) Rates() premium.Rates {
	return premium.Rates{
		BasicPremium:          c.Pricing.BasicPremium,
		AdditionalCarDiscount: c.Pricing.AdditionalCarDiscount,
		ExtraLiabilityPerCar:  c.Pricing.ExtraLiabilityPerCar,
		GlassCoveragePerCar:   c.Pricing.GlassCoveragePerCar,
		LoanerCarPerCar:       c.Pricing.LoanerCarPerCar,
		HSTRate:               c.Pricing.HSTRate,
		ProcessingFee:         c.Pricing.ProcessingFee,
		NumPayments:           c.Pricing.NumPayments,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never stop the program; a deliberately odd rate
// card is the operator's business.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	p := c.Pricing
	if p.BasicPremium <= 0 {
		warnings = append(warnings, fmt.Sprintf("basic premium %.2f is not positive", p.BasicPremium))
	}
	if p.AdditionalCarDiscount < 0 || p.AdditionalCarDiscount >= 1 {
		warnings = append(warnings, fmt.Sprintf("additional car discount %.2f is outside [0, 1)", p.AdditionalCarDiscount))
	}
	if p.ExtraLiabilityPerCar < 0 || p.GlassCoveragePerCar < 0 || p.LoanerCarPerCar < 0 {
		warnings = append(warnings, "coverage rates must not be negative")
	}
	if p.HSTRate < 0 {
		warnings = append(warnings, fmt.Sprintf("HST rate %.2f is negative", p.HSTRate))
	}
	if p.ProcessingFee < 0 {
		warnings = append(warnings, fmt.Sprintf("processing fee %.2f is negative", p.ProcessingFee))
	}
	if p.NumPayments < 1 {
		warnings = append(warnings, fmt.Sprintf("number of payments %d must be at least 1", p.NumPayments))
	}

	return warnings
}

// ValidateReceiptStyle checks that the receipt style is one of the supported
// styles.
func ValidateReceiptStyle(style string) error {
	if style != constants.ReceiptStylePlain && style != constants.ReceiptStyleFancy {
		return fmt.Errorf("expected receipt style of %s or %s, got %s",
			constants.ReceiptStylePlain, constants.ReceiptStyleFancy, style)
	}
	return nil
}
