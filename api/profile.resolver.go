package api

import (
	"context"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/service"

	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	RiskTolerance        *string             `json:"riskTolerance"`
	Goals                *[]string           `json:"goals"`
	TargetAllocation     *map[string]float64 `json:"targetAllocation"`
	RebalancingThreshold *float64            `json:"rebalancingThreshold"`
	RebalancingFrequency *string             `json:"rebalancingFrequency"`
	TlhEnabled           *bool               `json:"taxLossHarvestingEnabled"`
}

func (m ApiHandler) getProfile(c *gin.Context) {
	ctx := context.Background()
	investorID := c.Param("investorId")

	profile, err := m.ProfileService.GetProfile(ctx, investorID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, profile)
}

func (m ApiHandler) updateProfile(c *gin.Context) {
	ctx := context.Background()
	investorID := c.Param("investorId")

	var requestBody updateProfileRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	update := service.ProfileUpdate{
		Goals:              requestBody.Goals,
		TargetAllocation:   requestBody.TargetAllocation,
		RebalanceThreshold: requestBody.RebalancingThreshold,
		TlhEnabled:         requestBody.TlhEnabled,
	}
	if requestBody.RiskTolerance != nil {
		riskTolerance := model.RiskTolerance(*requestBody.RiskTolerance)
		update.RiskTolerance = &riskTolerance
	}
	if requestBody.RebalancingFrequency != nil {
		frequency := model.RebalanceFrequency(*requestBody.RebalancingFrequency)
		update.RebalanceFrequency = &frequency
	}

	profile, err := m.ProfileService.UpdateProfile(ctx, investorID, update)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, profile)
}
