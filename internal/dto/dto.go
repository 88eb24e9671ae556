package dto

import "github.com/shopspring/decimal"

func init() {
	// Money and percentages go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// MsgResponse is the body of every successful mutation.
type MsgResponse struct {
	Msg string `json:"msg"`
}
