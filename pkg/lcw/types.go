package lcw

// Upstream payload shapes. Optional fields are pointers so that a missing
// field stays distinguishable from a zero value; defaulting happens at the
// mapping boundary, not during decoding.

// deltaPayload is the multiplicative price-change block of a coin payload.
// Day is a day-over-day ratio where 1.0 means unchanged.
type deltaPayload struct {
	Day *float64 `json:"day"`
}

// coinPayload is one coin object as returned by coins/single and
// coins/list.
type coinPayload struct {
	Code   string        `json:"code"`
	Name   string        `json:"name"`
	Rate   float64       `json:"rate"`
	Volume float64       `json:"volume"`
	Cap    *float64      `json:"cap"`
	Rank   *int          `json:"rank"`
	Delta  *deltaPayload `json:"delta"`
}

// percentChange derives the 24h percent change from the delta block.
// A missing delta or day ratio counts as unchanged.
func (c coinPayload) percentChange() float64 {
	day := 1.0
	if c.Delta != nil && c.Delta.Day != nil {
		day = *c.Delta.Day
	}
	return (day - 1.0) * 100
}

// overviewPayload is the market-wide aggregate object returned by the
// overview endpoint.
type overviewPayload struct {
	Cap          float64  `json:"cap"`
	Volume       float64  `json:"volume"`
	BTCDominance *float64 `json:"btcDominance"`
	Liquidity    *int     `json:"liquidity"`
}

// errorPayload is the error envelope some non-2xx upstream responses carry.
type errorPayload struct {
	Error struct {
		Description string `json:"description"`
	} `json:"error"`
}

// Request bodies per operation.

type singleCoinRequest struct {
	Currency string `json:"currency"`
	Code     string `json:"code"`
	Meta     bool   `json:"meta"`
}

type coinListRequest struct {
	Currency string `json:"currency"`
	Sort     string `json:"sort"`
	Order    string `json:"order"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
	Meta     bool   `json:"meta"`
}

type overviewRequest struct {
	Currency string `json:"currency"`
}
