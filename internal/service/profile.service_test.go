package service

import (
	"context"
	"errors"
	"testing"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"
	mock_repository "roboadvisor/internal/repository/mocks"
	"roboadvisor/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/go-cmp/cmp"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetProfile(t *testing.T) {
	t.Run("first read creates a moderate default profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileRepository := mock_repository.NewMockInvestmentProfileRepository(ctrl)

		handler := profileServiceHandler{
			ProfileRepository: profileRepository,
		}

		profileRepository.EXPECT().
			Get(gomock.Any(), "inv-1").
			Return(nil, nil)

		profileRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx qrm.Queryable, p model.InvestmentProfile) (*model.InvestmentProfile, error) {
				return &p, nil
			})

		profile, err := handler.GetProfile(context.Background(), "inv-1")
		require.NoError(t, err)

		require.Equal(t, "inv-1", profile.InvestorID)
		require.Equal(t, "moderate", profile.RiskTolerance)
		require.Equal(t, []string{}, profile.Goals)
		require.Equal(t, map[string]float64{
			"VOO":  0.6,
			"BND":  0.3,
			"AAPL": 0.1,
		}, profile.TargetAllocation)
		require.Equal(t, 0.05, profile.RebalanceThreshold)
		require.Equal(t, "quarterly", profile.RebalanceFrequency)
		require.False(t, profile.TlhEnabled)
	})

	t.Run("subsequent reads return the stored profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		profileRepository := mock_repository.NewMockInvestmentProfileRepository(ctrl)

		handler := profileServiceHandler{
			ProfileRepository: profileRepository,
		}

		profileRepository.EXPECT().
			Get(gomock.Any(), "inv-1").
			Return(&model.InvestmentProfile{
				InvestorID:         "inv-1",
				RiskTolerance:      model.RiskTolerance_Aggressive,
				Goals:              `["retirement"]`,
				TargetAllocation:   `{"VOO":0.7,"QQQ":0.3}`,
				RebalanceThreshold: 0.1,
				RebalanceFrequency: model.RebalanceFrequency_Monthly,
				TlhEnabled:         true,
			}, nil)

		profile, err := handler.GetProfile(context.Background(), "inv-1")
		require.NoError(t, err)

		expected := &domain.InvestorProfile{
			InvestorID:         "inv-1",
			RiskTolerance:      "aggressive",
			Goals:              []string{"retirement"},
			TargetAllocation:   map[string]float64{"VOO": 0.7, "QQQ": 0.3},
			RebalanceThreshold: 0.1,
			RebalanceFrequency: "monthly",
			TlhEnabled:         true,
		}
		require.Empty(t, cmp.Diff(expected, profile))
	})
}

func Test_applyProfileUpdate(t *testing.T) {
	t.Run("only patched fields change", func(t *testing.T) {
		p := defaultProfile("inv-1")

		columns, err := applyProfileUpdate(&p, ProfileUpdate{
			TlhEnabled:         util.BoolPointer(true),
			RebalanceThreshold: util.FloatPointer(0.1),
		})
		require.NoError(t, err)
		require.Len(t, columns, 2)

		require.True(t, p.TlhEnabled)
		require.Equal(t, 0.1, p.RebalanceThreshold)
		require.Equal(t, model.RiskTolerance_Moderate, p.RiskTolerance)
		require.Equal(t, `{"VOO":0.6,"BND":0.3,"AAPL":0.1}`, p.TargetAllocation)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		p := defaultProfile("inv-1")

		columns, err := applyProfileUpdate(&p, ProfileUpdate{})
		require.NoError(t, err)
		require.Len(t, columns, 0)
	})

	t.Run("unrecognized risk tolerance is rejected as a validation error", func(t *testing.T) {
		p := defaultProfile("inv-1")

		riskTolerance := model.RiskTolerance("yolo")
		_, err := applyProfileUpdate(&p, ProfileUpdate{
			RiskTolerance: &riskTolerance,
		})
		var validationErr ValidationError
		require.True(t, errors.As(err, &validationErr))
		require.Equal(t, model.RiskTolerance_Moderate, p.RiskTolerance)
	})

	t.Run("unrecognized rebalancing frequency is rejected as a validation error", func(t *testing.T) {
		p := defaultProfile("inv-1")

		frequency := model.RebalanceFrequency("hourly")
		_, err := applyProfileUpdate(&p, ProfileUpdate{
			RebalanceFrequency: &frequency,
		})
		var validationErr ValidationError
		require.True(t, errors.As(err, &validationErr))
		require.Equal(t, model.RebalanceFrequency_Quarterly, p.RebalanceFrequency)
	})

	t.Run("allocation not summing to 1 is rejected", func(t *testing.T) {
		p := defaultProfile("inv-1")

		_, err := applyProfileUpdate(&p, ProfileUpdate{
			TargetAllocation: &map[string]float64{
				"VOO": 0.5,
				"BND": 0.3,
			},
		})
		var validationErr ValidationError
		require.True(t, errors.As(err, &validationErr))

		// the stored allocation is untouched on rejection
		require.Equal(t, `{"VOO":0.6,"BND":0.3,"AAPL":0.1}`, p.TargetAllocation)
	})
}

func Test_validateAllocation(t *testing.T) {
	t.Run("sums within tolerance pass", func(t *testing.T) {
		require.NoError(t, validateAllocation(map[string]float64{"VOO": 0.6, "BND": 0.4}))
		require.NoError(t, validateAllocation(map[string]float64{"VOO": 0.3335, "BND": 0.333, "GLD": 0.333}))
	})

	t.Run("sums outside tolerance fail", func(t *testing.T) {
		require.Error(t, validateAllocation(map[string]float64{"VOO": 0.6, "BND": 0.3}))
		require.Error(t, validateAllocation(map[string]float64{"VOO": 0.6, "BND": 0.5}))
	})

	t.Run("negative fractions fail even when they sum to 1", func(t *testing.T) {
		require.Error(t, validateAllocation(map[string]float64{"VOO": 1.5, "BND": -0.5}))
	})
}
