package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPortfolio(t *testing.T) {
	portfolio := Portfolio{
		InvestorID: "inv-1",
		Holdings: []Holding{
			{
				Symbol:    "AAPL",
				Shares:    decimal.NewFromInt(10),
				AvgPrice:  decimal.NewFromFloat(175.50),
				LastPrice: decimal.NewFromFloat(183.10),
			},
			{
				Symbol:    "TSLA",
				Shares:    decimal.NewFromInt(5),
				AvgPrice:  decimal.NewFromInt(240),
				LastPrice: decimal.NewFromInt(200),
			},
		},
	}

	t.Run("total value sums share count times last price", func(t *testing.T) {
		require.True(t, portfolio.TotalValue().Equal(decimal.NewFromInt(2831)), "got %s", portfolio.TotalValue())
	})

	t.Run("unrealized gain loss keeps its sign", func(t *testing.T) {
		aapl, ok := portfolio.GetHolding("AAPL")
		require.True(t, ok)
		require.True(t, aapl.UnrealizedGainLoss().Equal(decimal.NewFromInt(76)))

		tsla, ok := portfolio.GetHolding("TSLA")
		require.True(t, ok)
		require.True(t, tsla.UnrealizedGainLoss().Equal(decimal.NewFromInt(-200)))
	})

	t.Run("unknown symbol is not found", func(t *testing.T) {
		_, ok := portfolio.GetHolding("VOO")
		require.False(t, ok)
	})

	t.Run("held symbols preserves holding order", func(t *testing.T) {
		require.Equal(t, []string{"AAPL", "TSLA"}, portfolio.HeldSymbols())
	})
}
