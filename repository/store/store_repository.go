package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
)

type SQL struct {
	conn *sqlx.DB
}

type StoreRepository interface {
	Create(ctx context.Context, data *model.StoreLocation) (*model.StoreLocation, error)
	GetByID(ctx context.Context, id uint64) (*model.StoreLocation, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.StoreLocation, error)
	ListByStatus(ctx context.Context, status constant.StoreStatus) ([]model.StoreLocation, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StoreLocation, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.StoreStatus) error
}

func NewStoreRepository(conn *sqlx.DB) StoreRepository {
	return &SQL{conn: conn}
}

const (
	insertStoreQuery = `INSERT INTO store (owner_id, name, address, latitude, longitude, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`

	// owner_email is joined in so the review flow can notify without a
	// second round-trip
	getStoreBase = `SELECT s.id, s.owner_id, s.name, s.address, s.latitude, s.longitude, s.status, s.created_at, s.updated_at, u.email AS owner_email
FROM store s
JOIN user u ON s.owner_id = u.id`
)

func (s *SQL) Create(ctx context.Context, data *model.StoreLocation) (*model.StoreLocation, error) {
	result, err := s.conn.ExecContext(ctx, insertStoreQuery, data.OwnerID, data.Name, data.Address, data.Latitude, data.Longitude, data.Status)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.StoreLocation, error) {
	var entity model.StoreLocation
	query := getStoreBase + " WHERE s.id = ?"
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByOwner(ctx context.Context, ownerID uint64) ([]model.StoreLocation, error) {
	query := getStoreBase + " WHERE s.owner_id = ? ORDER BY s.id"
	return s.list(ctx, query, ownerID)
}

func (s *SQL) ListByStatus(ctx context.Context, status constant.StoreStatus) ([]model.StoreLocation, error) {
	query := getStoreBase + " WHERE s.status = ? ORDER BY s.id"
	return s.list(ctx, query, status)
}

func (s *SQL) list(ctx context.Context, query string, args ...any) ([]model.StoreLocation, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]model.StoreLocation, 0)
	for rows.Next() {
		var entity model.StoreLocation
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		stores = append(stores, entity)
	}
	return stores, rows.Err()
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StoreLocation, error) {
	var entity model.StoreLocation
	query := getStoreBase + " WHERE s.id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.StoreStatus) error {
	result, err := tx.ExecContext(ctx, "UPDATE store SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
