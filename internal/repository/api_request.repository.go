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

type ApiRequestRepository interface {
	Add(db qrm.Queryable, r model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, r model.APIRequest) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Queryable, r model.APIRequest) (*model.APIRequest, error) {
	r.RequestID = uuid.New()
	if r.StartTs.IsZero() {
		r.StartTs = time.Now().UTC()
	}
	query := table.APIRequest.
		INSERT(table.APIRequest.AllColumns).
		MODEL(r).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &out, nil
}

func (h ApiRequestRepositoryHandler) Update(db qrm.Executable, r model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(
			table.APIRequest.StatusCode,
			table.APIRequest.ResponseBody,
			table.APIRequest.DurationMs,
		).
		MODEL(r).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(r.RequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
