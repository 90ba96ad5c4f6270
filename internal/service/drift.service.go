package service

import (
	"context"
	"math"

	"roboadvisor/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type DriftService interface {
	// CheckRebalancingStatus is a pure read - it never executes trades.
	CheckRebalancingStatus(ctx context.Context, investorID string) (*domain.RebalanceCheck, error)
}

type driftServiceHandler struct {
	ProfileService   ProfileService
	PortfolioService PortfolioService
}

func NewDriftService(profileService ProfileService, portfolioService PortfolioService) DriftService {
	return driftServiceHandler{
		ProfileService:   profileService,
		PortfolioService: portfolioService,
	}
}

func (h driftServiceHandler) CheckRebalancingStatus(ctx context.Context, investorID string) (*domain.RebalanceCheck, error) {
	profile, err := h.ProfileService.GetProfile(ctx, investorID)
	if err != nil {
		return nil, err
	}
	portfolio, err := h.PortfolioService.GetPortfolio(ctx, investorID)
	if err != nil {
		return nil, err
	}

	totalValue := portfolio.TotalValue()
	if totalValue.IsZero() {
		// nothing to rebalance, and no dividing by zero
		return &domain.RebalanceCheck{
			NeedsRebalance: false,
			Details:        map[string]domain.DriftDetail{},
		}, nil
	}

	details := map[string]domain.DriftDetail{}
	absDrifts := []float64{}

	flag := func(symbol string, current, target float64) {
		drift := current - target
		absDrifts = append(absDrifts, math.Abs(drift))

		// strict comparison: a position sitting exactly at the
		// threshold is in band
		if math.Abs(drift) <= profile.RebalanceThreshold {
			return
		}

		action := domain.DriftActionBuy
		if drift > 0 {
			action = domain.DriftActionSell
		}
		details[symbol] = domain.DriftDetail{
			Symbol:            symbol,
			CurrentAllocation: current,
			TargetAllocation:  target,
			Drift:             drift,
			Action:            action,
			AmountToTrade:     decimal.NewFromFloat(math.Abs(drift)).Mul(totalValue),
		}
	}

	for _, holding := range portfolio.Holdings {
		current, _ := holding.MarketValue().Div(totalValue).Float64()
		flag(holding.Symbol, current, profile.TargetAllocation[holding.Symbol])
	}

	// targeted symbols the investor doesn't hold at all drift by their
	// full target fraction
	for symbol, target := range profile.TargetAllocation {
		if _, held := portfolio.GetHolding(symbol); !held {
			flag(symbol, 0, target)
		}
	}

	check := &domain.RebalanceCheck{
		NeedsRebalance: len(details) > 0,
		Details:        details,
	}

	if len(absDrifts) > 0 {
		meanAbsDrift, err := stats.Mean(absDrifts)
		if err != nil {
			return nil, err
		}
		maxAbsDrift, err := stats.Max(absDrifts)
		if err != nil {
			return nil, err
		}
		check.Summary = &domain.DriftSummary{
			MeanAbsDrift: meanAbsDrift,
			MaxAbsDrift:  maxAbsDrift,
		}
	}

	return check, nil
}
