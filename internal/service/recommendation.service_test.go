package service

import (
	"context"
	"testing"

	"roboadvisor/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetRecommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("risk tolerance maps to the matching model allocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileService := NewMockProfileService(ctrl)

		handler := recommendationServiceHandler{
			ProfileService: profileService,
		}

		profileService.EXPECT().GetProfile(ctx, "inv-1").Return(&domain.InvestorProfile{
			InvestorID:    "inv-1",
			RiskTolerance: "aggressive",
		}, nil)

		recommendation, err := handler.GetRecommendations(ctx, "inv-1")
		require.NoError(t, err)

		require.Equal(t, "aggressive", recommendation.RiskTolerance)
		require.Equal(t, map[string]float64{
			"VOO": 0.7,
			"QQQ": 0.2,
			"VNQ": 0.1,
		}, recommendation.TargetAllocation)
		// no narrative without a configured gpt client
		require.Empty(t, recommendation.Narrative)
	})

	t.Run("model allocations each sum to 1", func(t *testing.T) {
		for riskTolerance, allocation := range modelAllocations {
			sum := 0.0
			for _, fraction := range allocation {
				sum += fraction
			}
			require.InDelta(t, 1.0, sum, 1e-9, "allocation for %s", riskTolerance)
		}
	})
}
