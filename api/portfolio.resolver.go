package api

import (
	"context"

	"roboadvisor/internal/domain"

	"github.com/gin-gonic/gin"
)

type holdingResponse struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Shares       float64 `json:"shares"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	MarketValue  float64 `json:"marketValue"`
	Sector       *string `json:"sector,omitempty"`
}

type portfolioResponse struct {
	InvestorID string            `json:"investorId"`
	Holdings   []holdingResponse `json:"holdings"`
	TotalValue float64           `json:"totalValue"`
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	ctx := context.Background()
	investorID := c.Param("investorId")

	portfolio, err := m.PortfolioService.GetPortfolio(ctx, investorID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, portfolioToResponse(portfolio))
}

func portfolioToResponse(portfolio *domain.Portfolio) portfolioResponse {
	out := portfolioResponse{
		InvestorID: portfolio.InvestorID,
		Holdings:   []holdingResponse{},
		TotalValue: portfolio.TotalValue().InexactFloat64(),
	}
	for _, holding := range portfolio.Holdings {
		out.Holdings = append(out.Holdings, holdingResponse{
			Symbol:       holding.Symbol,
			Name:         holding.Name,
			Shares:       holding.Shares.InexactFloat64(),
			AvgPrice:     holding.AvgPrice.InexactFloat64(),
			CurrentPrice: holding.LastPrice.InexactFloat64(),
			MarketValue:  holding.MarketValue().InexactFloat64(),
			Sector:       holding.Sector,
		})
	}
	return out
}
