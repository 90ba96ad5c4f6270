package api

import (
	"context"

	"roboadvisor/internal/domain"

	"github.com/gin-gonic/gin"
)

type tlhOpportunityResponse struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Shares            float64 `json:"shares"`
	AvgPrice          float64 `json:"avgPrice"`
	CurrentPrice      float64 `json:"currentPrice"`
	UnrealizedLoss    float64 `json:"unrealizedLoss"`
	ReplacementSymbol string  `json:"replacementSymbol"`
	ReplacementName   string  `json:"replacementName"`
}

func (m ApiHandler) taxLossHarvestingOpportunities(c *gin.Context) {
	ctx := context.Background()
	investorID := c.Param("investorId")

	report, err := m.TlhService.GetOpportunities(ctx, investorID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	opportunities := []tlhOpportunityResponse{}
	for _, opportunity := range report.Opportunities {
		opportunities = append(opportunities, tlhOpportunityToResponse(opportunity))
	}

	out := gin.H{
		"opportunities": opportunities,
	}
	if report.Message != "" {
		out["message"] = report.Message
	}

	c.JSON(200, out)
}

func tlhOpportunityToResponse(opportunity domain.TaxLossOpportunity) tlhOpportunityResponse {
	return tlhOpportunityResponse{
		Symbol:            opportunity.Symbol,
		Name:              opportunity.Name,
		Shares:            opportunity.Shares.InexactFloat64(),
		AvgPrice:          opportunity.AvgPrice.InexactFloat64(),
		CurrentPrice:      opportunity.CurrentPrice.InexactFloat64(),
		UnrealizedLoss:    opportunity.UnrealizedLoss.InexactFloat64(),
		ReplacementSymbol: opportunity.ReplacementSymbol,
		ReplacementName:   opportunity.ReplacementName,
	}
}
