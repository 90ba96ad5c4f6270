package api

import (
	"testing"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_rebalancingEventToResponse(t *testing.T) {
	eventID := uuid.New()
	createdAt := time.Now().UTC()

	out := rebalancingEventToResponse(model.RebalancingEvent{
		EventID:         eventID,
		InvestorID:      "inv-1",
		Side:            model.RebalanceSide_Buy,
		Symbol:          "AAPL",
		Name:            "Apple Inc.",
		Quantity:        decimal.NewFromInt(10),
		Price:           decimal.NewFromFloat(183.10),
		TransactionCost: decimal.NewFromInt(5),
		Status:          model.EventStatus_Completed,
		CreatedAt:       createdAt,
	})

	require.Equal(t, eventID.String(), out.EventID)
	require.Equal(t, "buy", out.Action)
	require.Equal(t, "AAPL", out.Symbol)
	require.Equal(t, 10.0, out.Quantity)
	require.Equal(t, 183.10, out.Price)
	require.Equal(t, 5.0, out.TransactionCost)
	require.Equal(t, "completed", out.Status)
	require.Equal(t, createdAt, out.CreatedAt)
}

func Test_tlhEventToResponse(t *testing.T) {
	eventID := uuid.New()

	out := tlhEventToResponse(model.TaxLossHarvestingEvent{
		EventID:           eventID,
		InvestorID:        "inv-1",
		SymbolSold:        "TSLA",
		SharesSold:        decimal.NewFromInt(5),
		RealizedLoss:      decimal.NewFromInt(200),
		ReplacementSymbol: "TSLF",
		ReplacementName:   "Transport & Clean Energy Fund",
		Status:            model.EventStatus_Completed,
	})

	require.Equal(t, eventID.String(), out.EventID)
	require.Equal(t, "TSLA", out.SymbolSold)
	require.Equal(t, 5.0, out.SharesSold)
	require.Equal(t, 200.0, out.RealizedLoss)
	require.Equal(t, "TSLF", out.ReplacementSymbol)
}
