package service

import (
	"context"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
)

type RecommendationService interface {
	GetRecommendations(ctx context.Context, investorID string) (*Recommendation, error)
}

type Recommendation struct {
	RiskTolerance    string             `json:"riskTolerance"`
	TargetAllocation map[string]float64 `json:"targetAllocation"`
	Narrative        string             `json:"narrative,omitempty"`
}

type recommendationServiceHandler struct {
	ProfileService ProfileService
	// nil when no ChatGPT key is configured
	GptRepository repository.GptRepository
}

func NewRecommendationService(profileService ProfileService, gptRepository repository.GptRepository) RecommendationService {
	return recommendationServiceHandler{
		ProfileService: profileService,
		GptRepository:  gptRepository,
	}
}

// each model allocation sums to 1.0
var modelAllocations = map[model.RiskTolerance]map[string]float64{
	model.RiskTolerance_Conservative: {
		"BND": 0.6,
		"VOO": 0.25,
		"VNQ": 0.05,
		"GLD": 0.1,
	},
	model.RiskTolerance_Moderate: {
		"VOO": 0.5,
		"BND": 0.3,
		"VNQ": 0.1,
		"GLD": 0.1,
	},
	model.RiskTolerance_Aggressive: {
		"VOO": 0.7,
		"QQQ": 0.2,
		"VNQ": 0.1,
	},
}

// GetRecommendations maps risk tolerance to a fixed model allocation.
// Advisory only - the profile's own target allocation is never touched.
func (h recommendationServiceHandler) GetRecommendations(ctx context.Context, investorID string) (*Recommendation, error) {
	profile, err := h.ProfileService.GetProfile(ctx, investorID)
	if err != nil {
		return nil, err
	}

	allocation, ok := modelAllocations[model.RiskTolerance(profile.RiskTolerance)]
	if !ok {
		allocation = modelAllocations[model.RiskTolerance_Moderate]
	}

	out := &Recommendation{
		RiskTolerance:    profile.RiskTolerance,
		TargetAllocation: allocation,
	}

	if h.GptRepository != nil {
		narrative, err := h.GptRepository.ExplainAllocation(ctx, profile.RiskTolerance, allocation)
		if err != nil {
			// the narrative is garnish - never fail the recommendation over it
			logger.FromContext(ctx).Warnf("failed to generate allocation narrative: %s", err.Error())
		} else {
			out.Narrative = narrative
		}
	}

	return out, nil
}
