// Package models defines the public response contracts of the crypto API.
package models

// Asset is the full representation of a single cryptocurrency.
type Asset struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	PercentChange24h float64  `json:"percent_change_24h"`
	Volume24h        float64  `json:"volume_24h"`
	MarketCap        *float64 `json:"market_cap,omitempty"`
	Rank             *int     `json:"rank,omitempty"`
}

// ListItem is the reduced projection used by list and search responses.
type ListItem struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	PercentChange24h float64 `json:"percent_change_24h"`
	Rank             *int    `json:"rank,omitempty"`
}

// ListResponse wraps a page of list items.
type ListResponse struct {
	Data       []ListItem `json:"data"`
	TotalCount int        `json:"total_count"`
	Currency   string     `json:"currency"`
}

// MarketOverview holds aggregate market statistics.
type MarketOverview struct {
	TotalMarketCap         float64  `json:"total_market_cap"`
	TotalVolume24h         float64  `json:"total_volume_24h"`
	BitcoinDominance       *float64 `json:"bitcoin_dominance,omitempty"`
	ActiveCryptocurrencies *int     `json:"active_cryptocurrencies,omitempty"`
}

// ErrorResponse is the body returned for every error.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}
