package api

import (
	"context"
	"fmt"

	"roboadvisor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type tradeRequest struct {
	InvestorID string  `json:"investorId"`
	Symbol     string  `json:"symbol"`
	Shares     float64 `json:"shares"`
	Price      float64 `json:"price"`
}

func (m ApiHandler) buy(c *gin.Context) {
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

	event, err := m.TransactionService.Buy(ctx, service.BuyInput{
		InvestorID: requestBody.InvestorID,
		Symbol:     requestBody.Symbol,
		Shares:     decimal.NewFromFloat(requestBody.Shares),
		Price:      decimal.NewFromFloat(requestBody.Price),
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": fmt.Sprintf("bought %v shares of %s", requestBody.Shares, requestBody.Symbol),
		"event":   rebalancingEventToResponse(*event),
	})
}
