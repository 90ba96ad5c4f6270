package service

import (
	"context"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"
)

const tlhNotEnabledMessage = "tax-loss harvesting is not enabled for this investor - opt in via profile update to receive opportunities"

type TaxLossHarvestingService interface {
	GetOpportunities(ctx context.Context, investorID string) (*TaxLossHarvestingReport, error)
}

type TaxLossHarvestingReport struct {
	Opportunities []domain.TaxLossOpportunity
	Message       string
}

type tlhServiceHandler struct {
	ProfileService        ProfileService
	PortfolioService      PortfolioService
	ReplacementRepository repository.ReplacementRepository
}

func NewTaxLossHarvestingService(
	profileService ProfileService,
	portfolioService PortfolioService,
	replacementRepository repository.ReplacementRepository,
) TaxLossHarvestingService {
	return tlhServiceHandler{
		ProfileService:        profileService,
		PortfolioService:      portfolioService,
		ReplacementRepository: replacementRepository,
	}
}

// GetOpportunities reports the loss each underwater position would
// realize at current prices, for positions with a defined replacement.
// Execution happens only through the sell path, which re-derives the
// opportunity independently.
func (h tlhServiceHandler) GetOpportunities(ctx context.Context, investorID string) (*TaxLossHarvestingReport, error) {
	profile, err := h.ProfileService.GetProfile(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if !profile.TlhEnabled {
		return &TaxLossHarvestingReport{
			Opportunities: []domain.TaxLossOpportunity{},
			Message:       tlhNotEnabledMessage,
		}, nil
	}

	portfolio, err := h.PortfolioService.GetPortfolio(ctx, investorID)
	if err != nil {
		return nil, err
	}

	opportunities := []domain.TaxLossOpportunity{}
	for _, holding := range portfolio.Holdings {
		unrealized := holding.UnrealizedGainLoss()
		if !unrealized.IsNegative() {
			continue
		}

		replacement, err := h.ReplacementRepository.GetReplacement(holding.Symbol)
		if err != nil {
			return nil, err
		}
		if replacement == nil {
			// no substantially different instrument defined - not
			// reported as an opportunity
			continue
		}

		opportunities = append(opportunities, domain.TaxLossOpportunity{
			Symbol:            holding.Symbol,
			Name:              holding.Name,
			Shares:            holding.Shares,
			AvgPrice:          holding.AvgPrice,
			CurrentPrice:      holding.LastPrice,
			UnrealizedLoss:    unrealized.Abs(),
			ReplacementSymbol: replacement.Symbol,
			ReplacementName:   replacement.Name,
		})
	}

	return &TaxLossHarvestingReport{
		Opportunities: opportunities,
	}, nil
}
