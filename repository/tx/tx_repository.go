package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out transactions for multi-statement flows such as
// store review and inventory assignment.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewTxRepository(conn *sqlx.DB) TxRepository {
	return &SQL{conn: conn}
}

func (s *SQL) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	// FOR UPDATE row locks inside these transactions rely on repeatable
	// read or stricter, which is the MySQL default
	return s.conn.BeginTxx(ctx, &sql.TxOptions{})
}

func (s *SQL) CommitTx(tx *sqlx.Tx) error {
	if tx == nil {
		return nil
	}
	return tx.Commit()
}

func (s *SQL) RollbackTx(tx *sqlx.Tx) error {
	if tx == nil {
		return nil
	}
	return tx.Rollback()
}
