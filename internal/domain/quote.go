package domain

import "github.com/shopspring/decimal"

// Quote is the market data provider's view of an instrument. It is
// authoritative for current value, never for cost basis.
type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
	Sector string
}
