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

type HoldingRepository interface {
	List(tx qrm.Queryable, investorID string) ([]model.Holding, error)
	// Get returns nil without error when the investor does not hold
	// the symbol.
	Get(tx qrm.Queryable, investorID, symbol string) (*model.Holding, error)
	// GetForUpdate locks the holding row for the duration of the
	// surrounding transaction so concurrent buy/sell calls serialize
	// instead of losing updates.
	GetForUpdate(tx qrm.Queryable, investorID, symbol string) (*model.Holding, error)
	Add(tx qrm.Queryable, holding model.Holding) (*model.Holding, error)
	Update(tx qrm.Queryable, holding model.Holding, columns postgres.ColumnList) (*model.Holding, error)
	Remove(tx qrm.Executable, investorID, symbol string) error
}

type holdingRepositoryHandler struct{}

func NewHoldingRepository() HoldingRepository {
	return holdingRepositoryHandler{}
}

func (h holdingRepositoryHandler) List(tx qrm.Queryable, investorID string) ([]model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(table.Holding.InvestorID.EQ(postgres.String(investorID))).
		ORDER_BY(table.Holding.Symbol.ASC())

	result := []model.Holding{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for %s: %w", investorID, err)
	}

	return result, nil
}

func (h holdingRepositoryHandler) Get(tx qrm.Queryable, investorID, symbol string) (*model.Holding, error) {
	return h.get(tx, investorID, symbol, false)
}

func (h holdingRepositoryHandler) GetForUpdate(tx qrm.Queryable, investorID, symbol string) (*model.Holding, error) {
	return h.get(tx, investorID, symbol, true)
}

func (h holdingRepositoryHandler) get(tx qrm.Queryable, investorID, symbol string, forUpdate bool) (*model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(
			table.Holding.InvestorID.EQ(postgres.String(investorID)).
				AND(table.Holding.Symbol.EQ(postgres.String(symbol))),
		)
	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}

	result := model.Holding{}
	err := query.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding %s for %s: %w", symbol, investorID, err)
	}

	return &result, nil
}

func (h holdingRepositoryHandler) Add(tx qrm.Queryable, holding model.Holding) (*model.Holding, error) {
	holding.CreatedAt = time.Now().UTC()
	holding.ModifiedAt = time.Now().UTC()
	query := table.Holding.
		INSERT(table.Holding.AllColumns).
		MODEL(holding).
		RETURNING(table.Holding.AllColumns)

	out := model.Holding{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Update(tx qrm.Queryable, holding model.Holding, columns postgres.ColumnList) (*model.Holding, error) {
	holding.ModifiedAt = time.Now().UTC()
	columns = append(columns, table.Holding.ModifiedAt)

	query := table.Holding.
		UPDATE(columns).
		MODEL(holding).
		WHERE(
			table.Holding.InvestorID.EQ(postgres.String(holding.InvestorID)).
				AND(table.Holding.Symbol.EQ(postgres.String(holding.Symbol))),
		).
		RETURNING(table.Holding.AllColumns)

	out := model.Holding{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Remove(tx qrm.Executable, investorID, symbol string) error {
	query := table.Holding.
		DELETE().
		WHERE(
			table.Holding.InvestorID.EQ(postgres.String(investorID)).
				AND(table.Holding.Symbol.EQ(postgres.String(symbol))),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete holding %s for %s: %w", symbol, investorID, err)
	}

	return nil
}
