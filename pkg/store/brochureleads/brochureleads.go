package brochureleads

import (
	"context"

	"github.com/monginis/export-api/pkg/constants"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"
	"github.com/jmoiron/sqlx"
)

type brochureLeadStore struct {
	db     core.DB
	logger lumber.Logger
}

// New returns a new BrochureLeadStore
func New(db core.DB, logger lumber.Logger) core.BrochureLeadStore {
	return &brochureLeadStore{db: db, logger: logger}
}

func (b *brochureLeadStore) Create(ctx context.Context, lead *core.BrochureLead) error {
	return b.db.ExecuteTransactionWithRetry(ctx,
		constants.DefaultTxRetries,
		constants.DefaultTxRetryDelay,
		constants.DefaultTxRetryJitter,
		"failed to insert brochure lead",
		func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, insertBrochureLeadQuery, lead); err != nil {
				return errors.SQLError(err)
			}
			return nil
		})
}

func (b *brochureLeadStore) FindAll(ctx context.Context) ([]*core.BrochureLead, error) {
	leads := []*core.BrochureLead{}
	err := b.db.Execute(func(db *sqlx.DB) error {
		if err := db.SelectContext(ctx, &leads, findAllBrochureLeadsQuery); err != nil {
			return errors.SQLError(err)
		}
		return nil
	})
	return leads, err
}

const insertBrochureLeadQuery = `
INSERT
	INTO
	brochure_leads(id,
	name,
	email,
	phone,
	language,
	created_at)
VALUES (:id,
		:name,
		:email,
		:phone,
		:language,
		:created_at)
`

const findAllBrochureLeadsQuery = `
SELECT
	id,
	name,
	email,
	phone,
	language,
	created_at
FROM
	brochure_leads
ORDER BY created_at DESC, id DESC
`
