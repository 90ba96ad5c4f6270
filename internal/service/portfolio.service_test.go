package service

import (
	"context"
	"database/sql"
	"testing"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"
	mock_repository "roboadvisor/internal/repository/mocks"
	"roboadvisor/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_seedDefaultHoldings(t *testing.T) {
	var tx *sql.Tx

	t.Run("seeds the starter portfolio with refreshed prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

		handler := portfolioServiceHandler{
			HoldingRepository:    holdingRepository,
			MarketDataRepository: marketDataRepository,
		}

		marketDataRepository.EXPECT().GetQuote("AAPL").Return(&domain.Quote{
			Symbol: "AAPL",
			Name:   "Apple Inc.",
			Price:  decimal.NewFromFloat(183.10),
			Sector: "Technology",
		}, nil)
		// provider outage or unknown symbol - seeds still land at cost
		marketDataRepository.EXPECT().GetQuote("BND").Return(nil, nil)
		marketDataRepository.EXPECT().GetQuote("VOO").Return(&domain.Quote{
			Symbol: "VOO",
			Name:   "Vanguard S&P 500 ETF",
			Price:  decimal.NewFromFloat(445.75),
			Sector: "Broad Market",
		}, nil)

		inserted := []model.Holding{}
		holdingRepository.EXPECT().
			Add(tx, gomock.Any()).
			DoAndReturn(func(tx qrm.Queryable, holding model.Holding) (*model.Holding, error) {
				inserted = append(inserted, holding)
				return &holding, nil
			}).
			Times(3)

		holdings, err := handler.seedDefaultHoldings(tx, "inv-1")
		require.NoError(t, err)
		require.Len(t, holdings, 3)

		require.Equal(t, "AAPL", inserted[0].Symbol)
		require.True(t, inserted[0].Shares.Equal(decimal.NewFromInt(10)))
		require.True(t, inserted[0].AvgPrice.Equal(decimal.NewFromFloat(175.50)))
		require.True(t, inserted[0].LastPrice.Equal(decimal.NewFromFloat(183.10)))

		require.Equal(t, "BND", inserted[1].Symbol)
		require.True(t, inserted[1].LastPrice.Equal(decimal.NewFromFloat(72.40)))
		require.Equal(t, util.StringPointer("Fixed Income"), inserted[1].Sector)

		require.Equal(t, "VOO", inserted[2].Symbol)
		require.True(t, inserted[2].LastPrice.Equal(decimal.NewFromFloat(445.75)))
	})
}

func Test_getPortfolioInTx(t *testing.T) {
	var tx *sql.Tx
	ctx := context.Background()

	t.Run("reading twice returns the same share counts and cost bases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

		handler := portfolioServiceHandler{
			HoldingRepository:    holdingRepository,
			MarketDataRepository: marketDataRepository,
		}

		marketDataRepository.EXPECT().GetQuote("AAPL").Return(&domain.Quote{
			Symbol: "AAPL",
			Name:   "Apple Inc.",
			Price:  decimal.NewFromFloat(183.10),
			Sector: "Technology",
		}, nil).Times(2)
		marketDataRepository.EXPECT().GetQuote("BND").Return(&domain.Quote{
			Symbol: "BND",
			Name:   "Vanguard Total Bond Market ETF",
			Price:  decimal.NewFromFloat(71.85),
			Sector: "Fixed Income",
		}, nil).Times(2)
		marketDataRepository.EXPECT().GetQuote("VOO").Return(&domain.Quote{
			Symbol: "VOO",
			Name:   "Vanguard S&P 500 ETF",
			Price:  decimal.NewFromFloat(445.75),
			Sector: "Broad Market",
		}, nil).Times(2)

		// in-memory stand-in for the holdings table, keyed by symbol and
		// listed in symbol order like the real repository
		stored := []model.Holding{}
		holdingRepository.EXPECT().
			List(tx, "inv-1").
			DoAndReturn(func(tx qrm.Queryable, investorID string) ([]model.Holding, error) {
				return append([]model.Holding{}, stored...), nil
			}).
			Times(2)
		holdingRepository.EXPECT().
			Add(tx, gomock.Any()).
			DoAndReturn(func(tx qrm.Queryable, holding model.Holding) (*model.Holding, error) {
				stored = append(stored, holding)
				return &holding, nil
			}).
			Times(3)
		holdingRepository.EXPECT().
			Update(tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx qrm.Queryable, holding model.Holding, columns postgres.ColumnList) (*model.Holding, error) {
				for i := range stored {
					if stored[i].Symbol == holding.Symbol {
						stored[i].LastPrice = holding.LastPrice
						stored[i].Sector = holding.Sector
					}
				}
				return &holding, nil
			}).
			Times(3)

		first, err := handler.getPortfolioInTx(ctx, tx, "inv-1")
		require.NoError(t, err)
		require.Len(t, first.Holdings, 3)

		second, err := handler.getPortfolioInTx(ctx, tx, "inv-1")
		require.NoError(t, err)
		require.Len(t, second.Holdings, 3)

		for i := range first.Holdings {
			require.Equal(t, first.Holdings[i].Symbol, second.Holdings[i].Symbol)
			require.True(t, second.Holdings[i].Shares.Equal(first.Holdings[i].Shares),
				"shares drifted for %s", first.Holdings[i].Symbol)
			require.True(t, second.Holdings[i].AvgPrice.Equal(first.Holdings[i].AvgPrice),
				"cost basis drifted for %s", first.Holdings[i].Symbol)
		}
	})
}

func Test_refreshPrices(t *testing.T) {
	var tx *sql.Tx
	ctx := context.Background()

	t.Run("recognized symbols get fresh prices, unrecognized keep stored ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

		handler := portfolioServiceHandler{
			HoldingRepository:    holdingRepository,
			MarketDataRepository: marketDataRepository,
		}

		stored := []model.Holding{
			{
				InvestorID: "inv-1",
				Symbol:     "AAPL",
				Shares:     decimal.NewFromInt(10),
				AvgPrice:   decimal.NewFromFloat(175.50),
				LastPrice:  decimal.NewFromFloat(175.50),
			},
			{
				InvestorID: "inv-1",
				Symbol:     "OLDCO",
				Shares:     decimal.NewFromInt(4),
				AvgPrice:   decimal.NewFromInt(30),
				LastPrice:  decimal.NewFromInt(28),
			},
		}

		marketDataRepository.EXPECT().GetQuote("AAPL").Return(&domain.Quote{
			Symbol: "AAPL",
			Price:  decimal.NewFromFloat(183.10),
			Sector: "Technology",
		}, nil)
		marketDataRepository.EXPECT().GetQuote("OLDCO").Return(nil, nil)

		holdingRepository.EXPECT().
			Update(tx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx qrm.Queryable, holding model.Holding, columns postgres.ColumnList) (*model.Holding, error) {
				require.Equal(t, "AAPL", holding.Symbol)
				require.True(t, holding.LastPrice.Equal(decimal.NewFromFloat(183.10)))
				// cost basis is read-only on refresh
				require.True(t, holding.AvgPrice.Equal(decimal.NewFromFloat(175.50)))
				require.Equal(t, util.StringPointer("Technology"), holding.Sector)
				return &holding, nil
			})

		out, err := handler.refreshPrices(ctx, tx, stored)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.True(t, out[0].LastPrice.Equal(decimal.NewFromFloat(183.10)))
		require.True(t, out[1].LastPrice.Equal(decimal.NewFromInt(28)))
	})
}
