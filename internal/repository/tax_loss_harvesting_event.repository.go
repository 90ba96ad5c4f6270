package repository

import (
	"fmt"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// TaxLossHarvestingEventRepository is an insert-only ledger, created
// only when a sell realizes a loss and a replacement instrument exists.
type TaxLossHarvestingEventRepository interface {
	Add(tx qrm.Queryable, e model.TaxLossHarvestingEvent) (*model.TaxLossHarvestingEvent, error)
	List(tx qrm.Queryable, investorID string) ([]model.TaxLossHarvestingEvent, error)
}

type taxLossHarvestingEventRepositoryHandler struct{}

func NewTaxLossHarvestingEventRepository() TaxLossHarvestingEventRepository {
	return taxLossHarvestingEventRepositoryHandler{}
}

func (h taxLossHarvestingEventRepositoryHandler) Add(tx qrm.Queryable, e model.TaxLossHarvestingEvent) (*model.TaxLossHarvestingEvent, error) {
	e.EventID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	query := table.TaxLossHarvestingEvent.
		INSERT(table.TaxLossHarvestingEvent.AllColumns).
		MODEL(e).
		RETURNING(table.TaxLossHarvestingEvent.AllColumns)

	out := model.TaxLossHarvestingEvent{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tax loss harvesting event: %w", err)
	}

	return &out, nil
}

func (h taxLossHarvestingEventRepositoryHandler) List(tx qrm.Queryable, investorID string) ([]model.TaxLossHarvestingEvent, error) {
	query := table.TaxLossHarvestingEvent.
		SELECT(table.TaxLossHarvestingEvent.AllColumns).
		WHERE(table.TaxLossHarvestingEvent.InvestorID.EQ(postgres.String(investorID))).
		ORDER_BY(table.TaxLossHarvestingEvent.CreatedAt.DESC())

	result := []model.TaxLossHarvestingEvent{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax loss harvesting events for %s: %w", investorID, err)
	}

	return result, nil
}
