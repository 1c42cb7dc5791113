package inquiries

import (
	"context"

	"github.com/monginis/export-api/pkg/constants"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/errors"
	"github.com/monginis/export-api/pkg/lumber"
	"github.com/jmoiron/sqlx"
)

type inquiryStore struct {
	db     core.DB
	logger lumber.Logger
}

// New returns a new InquiryStore
func New(db core.DB, logger lumber.Logger) core.InquiryStore {
	return &inquiryStore{db: db, logger: logger}
}

func (i *inquiryStore) Create(ctx context.Context, inquiry *core.Inquiry) error {
	return i.db.ExecuteTransactionWithRetry(ctx,
		constants.DefaultTxRetries,
		constants.DefaultTxRetryDelay,
		constants.DefaultTxRetryJitter,
		"failed to insert inquiry",
		func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, insertInquiryQuery, inquiry); err != nil {
				return errors.SQLError(err)
			}
			return nil
		})
}

func (i *inquiryStore) FindAll(ctx context.Context) ([]*core.Inquiry, error) {
	inquiries := []*core.Inquiry{}
	err := i.db.Execute(func(db *sqlx.DB) error {
		if err := db.SelectContext(ctx, &inquiries, findAllInquiriesQuery); err != nil {
			return errors.SQLError(err)
		}
		return nil
	})
	return inquiries, err
}

const insertInquiryQuery = `
INSERT
	INTO
	inquiries(id,
	name,
	email,
	phone,
	inform,
	country,
	business_details,
	message,
	language,
	created_at)
VALUES (:id,
		:name,
		:email,
		:phone,
		:inform,
		:country,
		:business_details,
		:message,
		:language,
		:created_at)
`

const findAllInquiriesQuery = `
SELECT
	id,
	name,
	email,
	phone,
	inform,
	country,
	business_details,
	message,
	language,
	created_at
FROM
	inquiries
ORDER BY created_at DESC, id DESC
`
