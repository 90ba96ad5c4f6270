package service

import (
	"context"
	"database/sql"
	"fmt"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// flat per-trade cost, recorded on the event but not subtracted from
// share accounting
var flatTransactionCost = decimal.NewFromInt(5)

type TransactionService interface {
	Buy(ctx context.Context, input BuyInput) (*model.RebalancingEvent, error)
	Sell(ctx context.Context, input SellInput) (*SellResult, error)
}

type BuyInput struct {
	InvestorID string
	Symbol     string
	Shares     decimal.Decimal
	Price      decimal.Decimal
}

type SellInput struct {
	InvestorID string
	Symbol     string
	Shares     decimal.Decimal
	Price      decimal.Decimal
}

type SellResult struct {
	Event    *model.RebalancingEvent
	TlhEvent *model.TaxLossHarvestingEvent
}

type transactionServiceHandler struct {
	Db                    *sql.DB
	HoldingRepository     repository.HoldingRepository
	ProfileRepository     repository.InvestmentProfileRepository
	EventRepository       repository.RebalancingEventRepository
	TlhEventRepository    repository.TaxLossHarvestingEventRepository
	MarketDataRepository  repository.MarketDataRepository
	ReplacementRepository repository.ReplacementRepository
}

func NewTransactionService(
	db *sql.DB,
	holdingRepository repository.HoldingRepository,
	profileRepository repository.InvestmentProfileRepository,
	eventRepository repository.RebalancingEventRepository,
	tlhEventRepository repository.TaxLossHarvestingEventRepository,
	marketDataRepository repository.MarketDataRepository,
	replacementRepository repository.ReplacementRepository,
) TransactionService {
	return transactionServiceHandler{
		Db:                    db,
		HoldingRepository:     holdingRepository,
		ProfileRepository:     profileRepository,
		EventRepository:       eventRepository,
		TlhEventRepository:    tlhEventRepository,
		MarketDataRepository:  marketDataRepository,
		ReplacementRepository: replacementRepository,
	}
}

// Buy is all-or-nothing per call: the row lock taken by buyInTx
// serializes concurrent trades on the same holding.
func (h transactionServiceHandler) Buy(ctx context.Context, input BuyInput) (*model.RebalancingEvent, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	event, err := h.buyInTx(ctx, tx, input)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit buy: %w", err)
	}

	return event, nil
}

func (h transactionServiceHandler) buyInTx(ctx context.Context, tx qrm.DB, input BuyInput) (*model.RebalancingEvent, error) {
	quote, err := h.MarketDataRepository.GetQuote(input.Symbol)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, UnknownInstrumentError(input.Symbol)
	}
	if !input.Shares.IsPositive() {
		return nil, InvalidQuantityError(input.Shares)
	}

	holding, err := h.HoldingRepository.GetForUpdate(tx, input.InvestorID, input.Symbol)
	if err != nil {
		return nil, err
	}

	if holding != nil {
		// weighted-average cost basis across the old lot and the new one
		newShares := holding.Shares.Add(input.Shares)
		newAvgPrice := holding.Shares.Mul(holding.AvgPrice).
			Add(input.Shares.Mul(input.Price)).
			Div(newShares)

		holding.Shares = newShares
		holding.AvgPrice = newAvgPrice
		holding.LastPrice = quote.Price
		_, err = h.HoldingRepository.Update(tx, *holding, postgres.ColumnList{
			table.Holding.Shares,
			table.Holding.AvgPrice,
			table.Holding.LastPrice,
		})
		if err != nil {
			return nil, err
		}
	} else {
		name := quote.Name
		if name == "" {
			name = input.Symbol
		}
		var sector *string
		if quote.Sector != "" {
			sector = &quote.Sector
		}
		_, err = h.HoldingRepository.Add(tx, model.Holding{
			InvestorID: input.InvestorID,
			Symbol:     input.Symbol,
			Name:       name,
			Shares:     input.Shares,
			AvgPrice:   input.Price,
			LastPrice:  quote.Price,
			Sector:     sector,
		})
		if err != nil {
			return nil, err
		}
	}

	return h.EventRepository.Add(tx, model.RebalancingEvent{
		InvestorID:      input.InvestorID,
		Side:            model.RebalanceSide_Buy,
		Symbol:          input.Symbol,
		Name:            quote.Name,
		Quantity:        input.Shares,
		Price:           input.Price,
		TransactionCost: flatTransactionCost,
		Status:          model.EventStatus_Completed,
	})
}

func (h transactionServiceHandler) Sell(ctx context.Context, input SellInput) (*SellResult, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := h.sellInTx(ctx, tx, input)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit sell: %w", err)
	}

	return result, nil
}

func (h transactionServiceHandler) sellInTx(ctx context.Context, tx qrm.DB, input SellInput) (*SellResult, error) {
	holding, err := h.HoldingRepository.GetForUpdate(tx, input.InvestorID, input.Symbol)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, NoSuchHoldingError(input.Symbol)
	}
	if input.Shares.GreaterThan(holding.Shares) {
		return nil, InsufficientSharesError(input.Symbol, input.Shares, holding.Shares)
	}
	if !input.Shares.IsPositive() {
		return nil, InvalidQuantityError(input.Shares)
	}

	// sign preserved: negative means the sale realizes a loss
	realized := input.Shares.Mul(input.Price.Sub(holding.AvgPrice))

	if input.Shares.Equal(holding.Shares) {
		// a holding with zero shares must not exist as a row
		err = h.HoldingRepository.Remove(tx, input.InvestorID, input.Symbol)
		if err != nil {
			return nil, err
		}
	} else {
		// cost basis is only recalculated on buys, never on partial sells
		holding.Shares = holding.Shares.Sub(input.Shares)
		_, err = h.HoldingRepository.Update(tx, *holding, postgres.ColumnList{
			table.Holding.Shares,
		})
		if err != nil {
			return nil, err
		}
	}

	event, err := h.EventRepository.Add(tx, model.RebalancingEvent{
		InvestorID:      input.InvestorID,
		Side:            model.RebalanceSide_Sell,
		Symbol:          input.Symbol,
		Name:            holding.Name,
		Quantity:        input.Shares,
		Price:           input.Price,
		TransactionCost: flatTransactionCost,
		Status:          model.EventStatus_Completed,
	})
	if err != nil {
		return nil, err
	}

	result := &SellResult{
		Event: event,
	}

	if realized.IsNegative() {
		tlhEvent, err := h.maybeHarvestLoss(ctx, tx, input, realized)
		if err != nil {
			return nil, err
		}
		result.TlhEvent = tlhEvent
	}

	return result, nil
}

// maybeHarvestLoss appends a tax loss harvesting event when the
// investor has opted in and a substantially different replacement
// instrument is defined for the symbol.
func (h transactionServiceHandler) maybeHarvestLoss(
	ctx context.Context,
	tx qrm.DB,
	input SellInput,
	realized decimal.Decimal,
) (*model.TaxLossHarvestingEvent, error) {
	log := logger.FromContext(ctx)

	profile, err := h.ProfileRepository.Get(tx, input.InvestorID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.TlhEnabled {
		return nil, nil
	}

	replacement, err := h.ReplacementRepository.GetReplacement(input.Symbol)
	if err != nil {
		return nil, err
	}
	if replacement == nil {
		log.Infof("no replacement instrument defined for %s - skipping harvest", input.Symbol)
		return nil, nil
	}

	return h.TlhEventRepository.Add(tx, model.TaxLossHarvestingEvent{
		InvestorID:        input.InvestorID,
		SymbolSold:        input.Symbol,
		SharesSold:        input.Shares,
		RealizedLoss:      realized.Abs(),
		ReplacementSymbol: replacement.Symbol,
		ReplacementName:   replacement.Name,
		Status:            model.EventStatus_Completed,
	})
}
