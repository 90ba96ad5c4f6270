package domain

import (
	"github.com/shopspring/decimal"
)

type Holding struct {
	Symbol    string
	Name      string
	Shares    decimal.Decimal
	AvgPrice  decimal.Decimal
	LastPrice decimal.Decimal
	Sector    *string
}

func (h Holding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.LastPrice)
}

// UnrealizedGainLoss keeps its sign - negative means the position
// is underwater relative to its cost basis.
func (h Holding) UnrealizedGainLoss() decimal.Decimal {
	return h.Shares.Mul(h.LastPrice.Sub(h.AvgPrice))
}

type Portfolio struct {
	InvestorID string
	Holdings   []Holding
}

func (p Portfolio) TotalValue() decimal.Decimal {
	totalValue := decimal.Zero
	for _, h := range p.Holdings {
		totalValue = totalValue.Add(h.MarketValue())
	}
	return totalValue
}

func (p Portfolio) GetHolding(symbol string) (*Holding, bool) {
	for i := range p.Holdings {
		if p.Holdings[i].Symbol == symbol {
			return &p.Holdings[i], true
		}
	}
	return nil, false
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for _, h := range p.Holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}
