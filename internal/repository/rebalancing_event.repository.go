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

// RebalancingEventRepository is an insert-only ledger. Rows are never
// mutated or deleted once written.
type RebalancingEventRepository interface {
	Add(tx qrm.Queryable, e model.RebalancingEvent) (*model.RebalancingEvent, error)
	List(tx qrm.Queryable, investorID string) ([]model.RebalancingEvent, error)
}

type rebalancingEventRepositoryHandler struct{}

func NewRebalancingEventRepository() RebalancingEventRepository {
	return rebalancingEventRepositoryHandler{}
}

func (h rebalancingEventRepositoryHandler) Add(tx qrm.Queryable, e model.RebalancingEvent) (*model.RebalancingEvent, error) {
	e.EventID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	query := table.RebalancingEvent.
		INSERT(table.RebalancingEvent.AllColumns).
		MODEL(e).
		RETURNING(table.RebalancingEvent.AllColumns)

	out := model.RebalancingEvent{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rebalancing event: %w", err)
	}

	return &out, nil
}

func (h rebalancingEventRepositoryHandler) List(tx qrm.Queryable, investorID string) ([]model.RebalancingEvent, error) {
	query := table.RebalancingEvent.
		SELECT(table.RebalancingEvent.AllColumns).
		WHERE(table.RebalancingEvent.InvestorID.EQ(postgres.String(investorID))).
		ORDER_BY(table.RebalancingEvent.CreatedAt.DESC())

	result := []model.RebalancingEvent{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list rebalancing events for %s: %w", investorID, err)
	}

	return result, nil
}
