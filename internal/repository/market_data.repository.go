package repository

import (
	"fmt"

	"roboadvisor/internal/domain"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// MarketDataRepository is the injected price/sector lookup the core
// depends on. It is authoritative for current value only - cost basis
// always comes from the holdings table.
type MarketDataRepository interface {
	// GetQuote returns nil without error when the provider does not
	// recognize the symbol.
	GetQuote(symbol string) (*domain.Quote, error)
}

type marketDataRepositoryHandler struct {
	Sectors map[string]string
}

func NewMarketDataRepository(sectors map[string]string) MarketDataRepository {
	return marketDataRepositoryHandler{
		Sectors: sectors,
	}
}

func (h marketDataRepositoryHandler) GetQuote(symbol string) (*domain.Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, nil
	}

	return &domain.Quote{
		Symbol: q.Symbol,
		Name:   q.ShortName,
		Price:  decimal.NewFromFloat(q.RegularMarketPrice),
		Sector: h.Sectors[symbol],
	}, nil
}

type staticMarketDataHandler struct {
	Quotes map[string]domain.Quote
}

// NewStaticMarketDataRepository serves quotes from a fixed in-memory
// snapshot. Used for dev and tests.
func NewStaticMarketDataRepository(quotes map[string]domain.Quote) MarketDataRepository {
	return staticMarketDataHandler{
		Quotes: quotes,
	}
}

func (h staticMarketDataHandler) GetQuote(symbol string) (*domain.Quote, error) {
	q, ok := h.Quotes[symbol]
	if !ok {
		return nil, nil
	}
	return &q, nil
}
