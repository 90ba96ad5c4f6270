package domain

import "github.com/shopspring/decimal"

// TaxLossOpportunity describes the loss that would be realized if the
// position were sold at its current price, plus the substantially
// different instrument to redeploy into. It is advisory only.
type TaxLossOpportunity struct {
	Symbol            string          `json:"symbol"`
	Name              string          `json:"name"`
	Shares            decimal.Decimal `json:"shares"`
	AvgPrice          decimal.Decimal `json:"avgPrice"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	UnrealizedLoss    decimal.Decimal `json:"unrealizedLoss"`
	ReplacementSymbol string          `json:"replacementSymbol"`
	ReplacementName   string          `json:"replacementName"`
}
