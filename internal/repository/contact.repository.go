package repository

import (
	"fmt"
	"time"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ContactRepository interface {
	// use db here bc this doesn't belong in application logic tx.
	// should be committed instantly
	Add(db qrm.Executable, c model.ContactMessage) error
}

type ContactRepositoryHandler struct{}

func (h ContactRepositoryHandler) Add(db qrm.Executable, c model.ContactMessage) error {
	c.MessageID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	query := table.ContactMessage.
		INSERT(table.ContactMessage.AllColumns).
		MODEL(c)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}

	return nil
}
