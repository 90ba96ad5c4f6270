package service

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:embed default_holdings.csv
var defaultHoldingsCsv []byte

type seedHolding struct {
	Symbol   string          `csv:"symbol"`
	Name     string          `csv:"name"`
	Shares   decimal.Decimal `csv:"shares"`
	AvgPrice decimal.Decimal `csv:"avg_price"`
	Sector   string          `csv:"sector"`
}

type PortfolioService interface {
	// GetPortfolio seeds default holdings on first read and refreshes
	// each holding's price and sector from the market data provider.
	// Share counts and cost bases are never touched by a read.
	GetPortfolio(ctx context.Context, investorID string) (*domain.Portfolio, error)
}

type portfolioServiceHandler struct {
	Db                   *sql.DB
	HoldingRepository    repository.HoldingRepository
	MarketDataRepository repository.MarketDataRepository
}

func NewPortfolioService(
	db *sql.DB,
	holdingRepository repository.HoldingRepository,
	marketDataRepository repository.MarketDataRepository,
) PortfolioService {
	return portfolioServiceHandler{
		Db:                   db,
		HoldingRepository:    holdingRepository,
		MarketDataRepository: marketDataRepository,
	}
}

func (h portfolioServiceHandler) GetPortfolio(ctx context.Context, investorID string) (*domain.Portfolio, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.getPortfolioInTx(ctx, tx, investorID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit portfolio read: %w", err)
	}

	return out, nil
}

func (h portfolioServiceHandler) getPortfolioInTx(ctx context.Context, tx qrm.Queryable, investorID string) (*domain.Portfolio, error) {
	holdings, err := h.HoldingRepository.List(tx, investorID)
	if err != nil {
		return nil, err
	}

	if len(holdings) == 0 {
		holdings, err = h.seedDefaultHoldings(tx, investorID)
		if err != nil {
			return nil, err
		}
	} else {
		holdings, err = h.refreshPrices(ctx, tx, holdings)
		if err != nil {
			return nil, err
		}
	}

	out := &domain.Portfolio{
		InvestorID: investorID,
		Holdings:   []domain.Holding{},
	}
	for _, holding := range holdings {
		out.Holdings = append(out.Holdings, holdingToDomain(holding))
	}

	return out, nil
}

func (h portfolioServiceHandler) seedDefaultHoldings(tx qrm.Queryable, investorID string) ([]model.Holding, error) {
	seeds := []seedHolding{}
	if err := gocsv.UnmarshalBytes(defaultHoldingsCsv, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse default holdings: %w", err)
	}

	holdings := []model.Holding{}
	for _, seed := range seeds {
		lastPrice := seed.AvgPrice
		sector := seed.Sector

		quote, err := h.MarketDataRepository.GetQuote(seed.Symbol)
		if err != nil {
			return nil, err
		}
		if quote != nil {
			lastPrice = quote.Price
			if quote.Sector != "" {
				sector = quote.Sector
			}
		}

		inserted, err := h.HoldingRepository.Add(tx, model.Holding{
			InvestorID: investorID,
			Symbol:     seed.Symbol,
			Name:       seed.Name,
			Shares:     seed.Shares,
			AvgPrice:   seed.AvgPrice,
			LastPrice:  lastPrice,
			Sector:     &sector,
		})
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, *inserted)
	}

	return holdings, nil
}

// refreshPrices updates last_price and sector for every symbol the
// provider recognizes. Unrecognized symbols keep their stored price.
func (h portfolioServiceHandler) refreshPrices(ctx context.Context, tx qrm.Queryable, holdings []model.Holding) ([]model.Holding, error) {
	log := logger.FromContext(ctx)

	out := []model.Holding{}
	for _, holding := range holdings {
		quote, err := h.MarketDataRepository.GetQuote(holding.Symbol)
		if err != nil {
			log.Warnf("failed to refresh price for %s: %s", holding.Symbol, err.Error())
			out = append(out, holding)
			continue
		}
		if quote == nil {
			out = append(out, holding)
			continue
		}

		holding.LastPrice = quote.Price
		if quote.Sector != "" {
			holding.Sector = &quote.Sector
		}
		updated, err := h.HoldingRepository.Update(tx, holding, postgres.ColumnList{
			table.Holding.LastPrice,
			table.Holding.Sector,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, *updated)
	}

	return out, nil
}

func holdingToDomain(holding model.Holding) domain.Holding {
	return domain.Holding{
		Symbol:    holding.Symbol,
		Name:      holding.Name,
		Shares:    holding.Shares,
		AvgPrice:  holding.AvgPrice,
		LastPrice: holding.LastPrice,
		Sector:    holding.Sector,
	}
}
