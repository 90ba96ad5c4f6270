package api

import (
	"context"
	"fmt"

	"roboadvisor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (m ApiHandler) sell(c *gin.Context) {
	ctx := context.Background()

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.InvestorID == "" {
		returnErrorJsonCode(fmt.Errorf("investorId is required"), c, 400)
		return
	}

	result, err := m.TransactionService.Sell(ctx, service.SellInput{
		InvestorID: requestBody.InvestorID,
		Symbol:     requestBody.Symbol,
		Shares:     decimal.NewFromFloat(requestBody.Shares),
		Price:      decimal.NewFromFloat(requestBody.Price),
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := gin.H{
		"success": true,
		"message": fmt.Sprintf("sold %v shares of %s", requestBody.Shares, requestBody.Symbol),
		"event":   rebalancingEventToResponse(*result.Event),
	}
	if result.TlhEvent != nil {
		out["tlhEvent"] = tlhEventToResponse(*result.TlhEvent)
	}

	c.JSON(200, out)
}
