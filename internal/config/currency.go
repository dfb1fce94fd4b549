package config

import "strings"

// Currency describes how one currency code is displayed.
type Currency struct {
	Symbol string `yaml:"symbol"`
	Locale string `yaml:"locale"` // BCP 47 tag, e.g. "en-US"
}

// CurrencyTable maps lowercase currency codes to their display configuration.
type CurrencyTable map[string]Currency

// DefaultCurrencies returns the built-in currency table.
func DefaultCurrencies() CurrencyTable {
	return CurrencyTable{
		"usd": {Symbol: "$", Locale: "en-US"},
		"npr": {Symbol: "रू", Locale: "ne-NP"},
		"inr": {Symbol: "₹", Locale: "en-IN"},
		"eur": {Symbol: "€", Locale: "de-DE"},
		"cad": {Symbol: "CA$", Locale: "en-CA"},
		"aud": {Symbol: "A$", Locale: "en-AU"},
	}
}

// Lookup resolves a currency code case-insensitively. Codes not present in
// the table resolve to the fallback code's entry; a fallback that is itself
// unknown resolves to a bare en-US entry so formatting always has a locale.
func (t CurrencyTable) Lookup(code, fallback string) Currency {
	if c, ok := t[strings.ToLower(strings.TrimSpace(code))]; ok {
		return c
	}
	if c, ok := t[strings.ToLower(strings.TrimSpace(fallback))]; ok {
		return c
	}
	return Currency{Symbol: "", Locale: "en-US"}
}
