package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// allocation fractions must sum to 1 within this tolerance
const allocationSumTolerance = 0.001

type ProfileService interface {
	GetProfile(ctx context.Context, investorID string) (*domain.InvestorProfile, error)
	UpdateProfile(ctx context.Context, investorID string, update ProfileUpdate) (*domain.InvestorProfile, error)
}

// ProfileUpdate carries partial patch semantics - nil fields are left
// untouched on the stored profile.
type ProfileUpdate struct {
	RiskTolerance      *model.RiskTolerance
	Goals              *[]string
	TargetAllocation   *map[string]float64
	RebalanceThreshold *float64
	RebalanceFrequency *model.RebalanceFrequency
	TlhEnabled         *bool
}

type profileServiceHandler struct {
	Db                *sql.DB
	ProfileRepository repository.InvestmentProfileRepository
}

func NewProfileService(db *sql.DB, profileRepository repository.InvestmentProfileRepository) ProfileService {
	return profileServiceHandler{
		Db:                db,
		ProfileRepository: profileRepository,
	}
}

func defaultProfile(investorID string) model.InvestmentProfile {
	return model.InvestmentProfile{
		InvestorID:         investorID,
		RiskTolerance:      model.RiskTolerance_Moderate,
		Goals:              "[]",
		TargetAllocation:   `{"VOO":0.6,"BND":0.3,"AAPL":0.1}`,
		RebalanceThreshold: 0.05,
		RebalanceFrequency: model.RebalanceFrequency_Quarterly,
		TlhEnabled:         false,
	}
}

func (h profileServiceHandler) GetProfile(ctx context.Context, investorID string) (*domain.InvestorProfile, error) {
	p, err := h.getOrCreate(h.Db, investorID)
	if err != nil {
		return nil, err
	}

	return profileToDomain(*p)
}

func (h profileServiceHandler) getOrCreate(tx qrm.Queryable, investorID string) (*model.InvestmentProfile, error) {
	p, err := h.ProfileRepository.Get(tx, investorID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	return h.ProfileRepository.Add(tx, defaultProfile(investorID))
}

func (h profileServiceHandler) UpdateProfile(ctx context.Context, investorID string, update ProfileUpdate) (*domain.InvestorProfile, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p, err := h.getOrCreate(tx, investorID)
	if err != nil {
		return nil, err
	}

	columns, err := applyProfileUpdate(p, update)
	if err != nil {
		return nil, err
	}

	if len(columns) > 0 {
		p, err = h.ProfileRepository.Update(tx, *p, columns)
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit profile update: %w", err)
	}

	return profileToDomain(*p)
}

// applyProfileUpdate mutates p with the non-nil patch fields and
// returns the columns that changed.
func applyProfileUpdate(p *model.InvestmentProfile, update ProfileUpdate) (postgres.ColumnList, error) {
	columns := postgres.ColumnList{}
	if update.RiskTolerance != nil {
		switch *update.RiskTolerance {
		case model.RiskTolerance_Conservative, model.RiskTolerance_Moderate, model.RiskTolerance_Aggressive:
		default:
			return nil, InvalidRiskToleranceError(update.RiskTolerance.String())
		}
		p.RiskTolerance = *update.RiskTolerance
		columns = append(columns, table.InvestmentProfile.RiskTolerance)
	}
	if update.Goals != nil {
		goalsJson, err := json.Marshal(*update.Goals)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal goals: %w", err)
		}
		p.Goals = string(goalsJson)
		columns = append(columns, table.InvestmentProfile.Goals)
	}
	if update.TargetAllocation != nil {
		if err := validateAllocation(*update.TargetAllocation); err != nil {
			return nil, err
		}
		allocationJson, err := json.Marshal(*update.TargetAllocation)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal target allocation: %w", err)
		}
		p.TargetAllocation = string(allocationJson)
		columns = append(columns, table.InvestmentProfile.TargetAllocation)
	}
	if update.RebalanceThreshold != nil {
		p.RebalanceThreshold = *update.RebalanceThreshold
		columns = append(columns, table.InvestmentProfile.RebalanceThreshold)
	}
	if update.RebalanceFrequency != nil {
		switch *update.RebalanceFrequency {
		case model.RebalanceFrequency_Monthly, model.RebalanceFrequency_Quarterly, model.RebalanceFrequency_Annually:
		default:
			return nil, InvalidRebalanceFrequencyError(update.RebalanceFrequency.String())
		}
		p.RebalanceFrequency = *update.RebalanceFrequency
		columns = append(columns, table.InvestmentProfile.RebalanceFrequency)
	}
	if update.TlhEnabled != nil {
		p.TlhEnabled = *update.TlhEnabled
		columns = append(columns, table.InvestmentProfile.TlhEnabled)
	}

	return columns, nil
}

func validateAllocation(allocation map[string]float64) error {
	sum := 0.0
	for _, fraction := range allocation {
		if fraction < 0 {
			return InvalidAllocationError(fraction)
		}
		sum += fraction
	}
	if math.Abs(sum-1.0) > allocationSumTolerance {
		return InvalidAllocationError(sum)
	}
	return nil
}

func profileToDomain(p model.InvestmentProfile) (*domain.InvestorProfile, error) {
	goals := []string{}
	if err := json.Unmarshal([]byte(p.Goals), &goals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal goals for %s: %w", p.InvestorID, err)
	}
	allocation := map[string]float64{}
	if err := json.Unmarshal([]byte(p.TargetAllocation), &allocation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal target allocation for %s: %w", p.InvestorID, err)
	}

	return &domain.InvestorProfile{
		InvestorID:         p.InvestorID,
		RiskTolerance:      p.RiskTolerance.String(),
		Goals:              goals,
		TargetAllocation:   allocation,
		RebalanceThreshold: p.RebalanceThreshold,
		RebalanceFrequency: p.RebalanceFrequency.String(),
		TlhEnabled:         p.TlhEnabled,
	}, nil
}
