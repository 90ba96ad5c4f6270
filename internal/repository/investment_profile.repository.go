package repository

import (
	"errors"
	"fmt"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type InvestmentProfileRepository interface {
	// Get returns nil without error when no profile row exists, so
	// callers can lazily create defaults.
	Get(tx qrm.Queryable, investorID string) (*model.InvestmentProfile, error)
	Add(tx qrm.Queryable, p model.InvestmentProfile) (*model.InvestmentProfile, error)
	Update(tx qrm.Queryable, p model.InvestmentProfile, columns postgres.ColumnList) (*model.InvestmentProfile, error)
}

type investmentProfileRepositoryHandler struct{}

func NewInvestmentProfileRepository() InvestmentProfileRepository {
	return investmentProfileRepositoryHandler{}
}

func (h investmentProfileRepositoryHandler) Get(tx qrm.Queryable, investorID string) (*model.InvestmentProfile, error) {
	query := table.InvestmentProfile.
		SELECT(table.InvestmentProfile.AllColumns).
		WHERE(table.InvestmentProfile.InvestorID.EQ(postgres.String(investorID)))

	result := model.InvestmentProfile{}
	err := query.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get investment profile for %s: %w", investorID, err)
	}

	return &result, nil
}

func (h investmentProfileRepositoryHandler) Add(tx qrm.Queryable, p model.InvestmentProfile) (*model.InvestmentProfile, error) {
	p.CreatedAt = time.Now().UTC()
	p.ModifiedAt = time.Now().UTC()
	query := table.InvestmentProfile.
		INSERT(table.InvestmentProfile.AllColumns).
		MODEL(p).
		RETURNING(table.InvestmentProfile.AllColumns)

	out := model.InvestmentProfile{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert investment profile: %w", err)
	}

	return &out, nil
}

func (h investmentProfileRepositoryHandler) Update(tx qrm.Queryable, p model.InvestmentProfile, columns postgres.ColumnList) (*model.InvestmentProfile, error) {
	p.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.InvestmentProfile.ModifiedAt)

	query := table.InvestmentProfile.
		UPDATE(columns).
		MODEL(p).
		WHERE(table.InvestmentProfile.InvestorID.EQ(postgres.String(p.InvestorID))).
		RETURNING(table.InvestmentProfile.AllColumns)

	out := model.InvestmentProfile{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update investment profile: %w", err)
	}

	return &out, nil
}
