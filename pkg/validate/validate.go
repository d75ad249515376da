// Package validate checks and normalizes user-supplied request parameters
// before they reach the market-data gateway.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Error describes a rejected input parameter. It maps to HTTP 400.
type Error struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// supportedCurrencies is the fixed set of fiat currencies accepted for
// price conversion.
var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "CAD": true,
	"AUD": true, "CHF": true, "CNY": true, "KRW": true, "INR": true,
}

// DefaultMaxLimit bounds the list endpoint page size.
const DefaultMaxLimit = 100

// MaxSymbols bounds batch symbol requests.
const MaxSymbols = 50

// Symbol normalizes a cryptocurrency symbol (trim, uppercase) and checks
// its charset and length.
func Symbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if symbol == "" {
		return "", &Error{Field: "symbol", Reason: "must be a non-empty string"}
	}
	if !symbolPattern.MatchString(symbol) {
		return "", &Error{Field: "symbol", Reason: "must contain only letters and numbers"}
	}
	if len(symbol) > 10 {
		return "", &Error{Field: "symbol", Reason: "must be between 1 and 10 characters"}
	}

	return symbol, nil
}

// Symbols validates a batch of symbols, preserving order.
func Symbols(symbols []string) ([]string, error) {
	if len(symbols) == 0 {
		return nil, &Error{Field: "symbols", Reason: "must be a non-empty list"}
	}
	if len(symbols) > MaxSymbols {
		return nil, &Error{Field: "symbols", Reason: fmt.Sprintf("cannot request more than %d symbols at once", MaxSymbols)}
	}

	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		v, err := Symbol(s)
		if err != nil {
			return nil, &Error{Field: "symbols", Reason: fmt.Sprintf("invalid symbol %q: %v", s, err)}
		}
		out = append(out, v)
	}
	return out, nil
}

// Currency normalizes a fiat currency code and checks it against the
// supported set.
func Currency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if currency == "" {
		return "", &Error{Field: "currency", Reason: "must be a non-empty string"}
	}
	if !supportedCurrencies[currency] {
		return "", &Error{
			Field:  "currency",
			Reason: fmt.Sprintf("currency %q not supported", currency),
		}
	}

	return currency, nil
}

// Limit checks a page-size parameter against [1, max].
func Limit(limit, max int) (int, error) {
	if limit < 1 {
		return 0, &Error{Field: "limit", Reason: "must be at least 1"}
	}
	if limit > max {
		return 0, &Error{Field: "limit", Reason: fmt.Sprintf("cannot exceed %d", max)}
	}
	return limit, nil
}

// Offset checks a pagination offset.
func Offset(offset int) (int, error) {
	if offset < 0 {
		return 0, &Error{Field: "offset", Reason: "must not be negative"}
	}
	return offset, nil
}

// Query checks a free-text search query.
func Query(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", &Error{Field: "query", Reason: "must be a non-empty string"}
	}
	return query, nil
}
