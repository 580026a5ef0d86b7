package config

import "time"

type AppConfig struct {
	CurrencySymbol string `yaml:"currency"`
	TimezoneName   string `yaml:"timezone"`
	MetricsAddress string `yaml:"metrics-addr"`
}

const defaultCurrency = "Rs."

func (s *AppConfig) Currency() string {
	if s.CurrencySymbol == "" {
		return defaultCurrency
	}
	return s.CurrencySymbol
}

func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) MetricsAddr() string {
	return s.MetricsAddress
}
