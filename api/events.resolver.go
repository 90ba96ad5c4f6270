package api

import (
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

type rebalancingEventResponse struct {
	EventID         string    `json:"eventId"`
	Action          string    `json:"action"`
	Symbol          string    `json:"symbol"`
	Name            string    `json:"name"`
	Quantity        float64   `json:"quantity"`
	Price           float64   `json:"price"`
	TransactionCost float64   `json:"transactionCost"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type tlhEventResponse struct {
	EventID           string    `json:"eventId"`
	SymbolSold        string    `json:"symbolSold"`
	SharesSold        float64   `json:"sharesSold"`
	RealizedLoss      float64   `json:"realizedLoss"`
	ReplacementSymbol string    `json:"replacementSymbol"`
	ReplacementName   string    `json:"replacementName"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

func rebalancingEventToResponse(e model.RebalancingEvent) rebalancingEventResponse {
	return rebalancingEventResponse{
		EventID:         e.EventID.String(),
		Action:          e.Side.String(),
		Symbol:          e.Symbol,
		Name:            e.Name,
		Quantity:        e.Quantity.InexactFloat64(),
		Price:           e.Price.InexactFloat64(),
		TransactionCost: e.TransactionCost.InexactFloat64(),
		Status:          e.Status.String(),
		CreatedAt:       e.CreatedAt,
	}
}

func tlhEventToResponse(e model.TaxLossHarvestingEvent) tlhEventResponse {
	return tlhEventResponse{
		EventID:           e.EventID.String(),
		SymbolSold:        e.SymbolSold,
		SharesSold:        e.SharesSold.InexactFloat64(),
		RealizedLoss:      e.RealizedLoss.InexactFloat64(),
		ReplacementSymbol: e.ReplacementSymbol,
		ReplacementName:   e.ReplacementName,
		Status:            e.Status.String(),
		CreatedAt:         e.CreatedAt,
	}
}

func (m ApiHandler) events(c *gin.Context) {
	investorID := c.Param("investorId")

	rebalancingEvents, err := m.EventRepository.List(m.Db, investorID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	tlhEvents, err := m.TlhEventRepository.List(m.Db, investorID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rebalancingOut := []rebalancingEventResponse{}
	for _, e := range rebalancingEvents {
		rebalancingOut = append(rebalancingOut, rebalancingEventToResponse(e))
	}
	tlhOut := []tlhEventResponse{}
	for _, e := range tlhEvents {
		tlhOut = append(tlhOut, tlhEventToResponse(e))
	}

	c.JSON(200, gin.H{
		"rebalancingEvents":       rebalancingOut,
		"taxLossHarvestingEvents": tlhOut,
	})
}
