package service

import (
	"context"
	"testing"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"
	mock_repository "roboadvisor/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetOpportunities(t *testing.T) {
	ctx := context.Background()

	t.Run("investors who have not opted in get an empty report with guidance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileService := NewMockProfileService(ctrl)

		handler := tlhServiceHandler{
			ProfileService: profileService,
		}

		profileService.EXPECT().GetProfile(ctx, "inv-1").Return(&domain.InvestorProfile{
			InvestorID: "inv-1",
			TlhEnabled: false,
		}, nil)

		report, err := handler.GetOpportunities(ctx, "inv-1")
		require.NoError(t, err)
		require.Empty(t, report.Opportunities)
		require.Equal(t, tlhNotEnabledMessage, report.Message)
	})

	t.Run("underwater positions with replacements are reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileService := NewMockProfileService(ctrl)
		portfolioService := NewMockPortfolioService(ctrl)
		replacementRepository := mock_repository.NewMockReplacementRepository(ctrl)

		handler := tlhServiceHandler{
			ProfileService:        profileService,
			PortfolioService:      portfolioService,
			ReplacementRepository: replacementRepository,
		}

		profileService.EXPECT().GetProfile(ctx, "inv-1").Return(&domain.InvestorProfile{
			InvestorID: "inv-1",
			TlhEnabled: true,
		}, nil)

		portfolioService.EXPECT().GetPortfolio(ctx, "inv-1").Return(&domain.Portfolio{
			InvestorID: "inv-1",
			Holdings: []domain.Holding{
				// up - never a candidate, replacement lookup must not happen
				{
					Symbol:    "AAPL",
					Name:      "Apple Inc.",
					Shares:    decimal.NewFromInt(10),
					AvgPrice:  decimal.NewFromFloat(175.20),
					LastPrice: decimal.NewFromFloat(183.10),
				},
				// down 40 per share on 5 shares
				{
					Symbol:    "TSLA",
					Name:      "Tesla, Inc.",
					Shares:    decimal.NewFromInt(5),
					AvgPrice:  decimal.NewFromInt(240),
					LastPrice: decimal.NewFromInt(200),
				},
				// down, but no replacement defined
				{
					Symbol:    "XYZ",
					Name:      "XYZ Corp",
					Shares:    decimal.NewFromInt(3),
					AvgPrice:  decimal.NewFromInt(50),
					LastPrice: decimal.NewFromInt(40),
				},
			},
		}, nil)

		replacementRepository.EXPECT().GetReplacement("TSLA").Return(&repository.InstrumentReplacement{
			Symbol: "TSLF",
			Name:   "Transport & Clean Energy Fund",
		}, nil)
		replacementRepository.EXPECT().GetReplacement("XYZ").Return(nil, nil)

		report, err := handler.GetOpportunities(ctx, "inv-1")
		require.NoError(t, err)
		require.Empty(t, report.Message)
		require.Len(t, report.Opportunities, 1)

		opportunity := report.Opportunities[0]
		require.Equal(t, "TSLA", opportunity.Symbol)
		require.True(t, opportunity.UnrealizedLoss.Equal(decimal.NewFromInt(200)), "got %s", opportunity.UnrealizedLoss)
		require.Equal(t, "TSLF", opportunity.ReplacementSymbol)
		require.Equal(t, "Transport & Clean Energy Fund", opportunity.ReplacementName)
	})
}
