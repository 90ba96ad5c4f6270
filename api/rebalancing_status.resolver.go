package api

import (
	"context"

	"roboadvisor/internal/domain"

	"github.com/gin-gonic/gin"
)

type driftDetailResponse struct {
	Symbol            string  `json:"symbol"`
	CurrentAllocation float64 `json:"currentAllocation"`
	TargetAllocation  float64 `json:"targetAllocation"`
	Drift             float64 `json:"drift"`
	Action            string  `json:"action"`
	AmountToTrade     float64 `json:"amountToTrade"`
}

func (m ApiHandler) rebalancingStatus(c *gin.Context) {
	ctx := context.Background()
	investorID := c.Param("investorId")

	check, err := m.DriftService.CheckRebalancingStatus(ctx, investorID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	details := map[string]driftDetailResponse{}
	for symbol, detail := range check.Details {
		details[symbol] = driftDetailToResponse(detail)
	}

	out := gin.H{
		"needsRebalance": check.NeedsRebalance,
		"driftDetails":   details,
	}
	if check.Summary != nil {
		out["summary"] = check.Summary
	}

	c.JSON(200, out)
}

func driftDetailToResponse(detail domain.DriftDetail) driftDetailResponse {
	return driftDetailResponse{
		Symbol:            detail.Symbol,
		CurrentAllocation: detail.CurrentAllocation,
		TargetAllocation:  detail.TargetAllocation,
		Drift:             detail.Drift,
		Action:            string(detail.Action),
		AmountToTrade:     detail.AmountToTrade.InexactFloat64(),
	}
}
