package service

import (
	"context"
	"testing"

	"roboadvisor/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckRebalancingStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, profile *domain.InvestorProfile, portfolio *domain.Portfolio) DriftService {
		ctrl := gomock.NewController(t)
		profileService := NewMockProfileService(ctrl)
		portfolioService := NewMockPortfolioService(ctrl)

		profileService.EXPECT().GetProfile(ctx, "inv-1").Return(profile, nil)
		portfolioService.EXPECT().GetPortfolio(ctx, "inv-1").Return(portfolio, nil)

		return driftServiceHandler{
			ProfileService:   profileService,
			PortfolioService: portfolioService,
		}
	}

	t.Run("positions beyond the threshold are flagged with trade amounts", func(t *testing.T) {
		handler := setup(t,
			&domain.InvestorProfile{
				InvestorID:         "inv-1",
				RebalanceThreshold: 0.05,
				TargetAllocation: map[string]float64{
					"AAPL": 0.5,
					"BND":  0.25,
					"VOO":  0.25,
				},
			},
			&domain.Portfolio{
				InvestorID: "inv-1",
				Holdings: []domain.Holding{
					{Symbol: "AAPL", Shares: decimal.NewFromInt(1), LastPrice: decimal.NewFromInt(700)},
					{Symbol: "BND", Shares: decimal.NewFromInt(1), LastPrice: decimal.NewFromInt(300)},
				},
			},
		)

		check, err := handler.CheckRebalancingStatus(ctx, "inv-1")
		require.NoError(t, err)
		require.True(t, check.NeedsRebalance)

		// AAPL sits at 70% against a 50% target
		aapl, ok := check.Details["AAPL"]
		require.True(t, ok)
		require.Equal(t, domain.DriftActionSell, aapl.Action)
		require.InDelta(t, 0.2, aapl.Drift, 1e-9)
		require.InDelta(t, 200, aapl.AmountToTrade.InexactFloat64(), 1e-6)

		// BND is at 30% against 25%, within the 5% band
		_, ok = check.Details["BND"]
		require.False(t, ok)

		// VOO is targeted but not held, so it drifts by its full target
		voo, ok := check.Details["VOO"]
		require.True(t, ok)
		require.Equal(t, domain.DriftActionBuy, voo.Action)
		require.InDelta(t, -0.25, voo.Drift, 1e-9)
		require.InDelta(t, 250, voo.AmountToTrade.InexactFloat64(), 1e-6)

		require.NotNil(t, check.Summary)
		require.InDelta(t, 0.25, check.Summary.MaxAbsDrift, 1e-9)
	})

	t.Run("a position sitting exactly at the threshold is in band", func(t *testing.T) {
		// values chosen to be exact in binary so the comparison really
		// exercises the boundary
		handler := setup(t,
			&domain.InvestorProfile{
				InvestorID:         "inv-1",
				RebalanceThreshold: 0.0625,
				TargetAllocation: map[string]float64{
					"AAPL": 0.5,
					"BND":  0.5,
				},
			},
			&domain.Portfolio{
				InvestorID: "inv-1",
				Holdings: []domain.Holding{
					{Symbol: "AAPL", Shares: decimal.NewFromInt(1), LastPrice: decimal.NewFromInt(576)},
					{Symbol: "BND", Shares: decimal.NewFromInt(1), LastPrice: decimal.NewFromInt(448)},
				},
			},
		)

		check, err := handler.CheckRebalancingStatus(ctx, "inv-1")
		require.NoError(t, err)
		require.False(t, check.NeedsRebalance)
		require.Empty(t, check.Details)

		require.NotNil(t, check.Summary)
		require.InDelta(t, 0.0625, check.Summary.MeanAbsDrift, 1e-9)
		require.InDelta(t, 0.0625, check.Summary.MaxAbsDrift, 1e-9)
	})

	t.Run("an empty portfolio never needs rebalancing", func(t *testing.T) {
		handler := setup(t,
			&domain.InvestorProfile{
				InvestorID:         "inv-1",
				RebalanceThreshold: 0.05,
				TargetAllocation:   map[string]float64{"VOO": 1},
			},
			&domain.Portfolio{
				InvestorID: "inv-1",
				Holdings:   []domain.Holding{},
			},
		)

		check, err := handler.CheckRebalancingStatus(ctx, "inv-1")
		require.NoError(t, err)
		require.False(t, check.NeedsRebalance)
		require.Empty(t, check.Details)
		require.Nil(t, check.Summary)
	})
}
