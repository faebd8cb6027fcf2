package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
)

type SQL struct {
	conn *sqlx.DB
}

type InventoryRepository interface {
	AssignTx(ctx context.Context, tx *sqlx.Tx, row *model.InventoryRow) (uint64, error)
	GetAssignmentTx(ctx context.Context, tx *sqlx.Tx, storeID, productID uint64) (*model.InventoryRow, error)
	Update(ctx context.Context, storeID, productID uint64, req *model.UpdateInventoryRequest) error
	Remove(ctx context.Context, storeID, productID uint64) error
	ListByStore(ctx context.Context, storeID uint64) ([]model.InventoryRow, error)
	ListAvailabilityByBarcode(ctx context.Context, barcode string) ([]model.AvailabilityRecord, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	insertInventoryQuery = `INSERT INTO store_inventory (store_id, product_id, price, stock, available, created_at) VALUES (?, ?, ?, ?, ?, NOW())`

	getAssignmentQuery = `SELECT si.id, si.store_id, si.product_id, p.barcode, si.price, si.stock, si.available
FROM store_inventory si
JOIN product p ON si.product_id = p.id
WHERE si.store_id = ? AND si.product_id = ? FOR UPDATE`

	listByStoreQuery = `SELECT si.id, si.store_id, si.product_id, p.barcode, si.price, si.stock, si.available
FROM store_inventory si
JOIN product p ON si.product_id = p.id
WHERE si.store_id = ? ORDER BY si.id`

	// LEFT JOIN on store: the availability row may outlive its store and
	// the ranking layer is the one that decides what to drop
	listAvailabilityQuery = `SELECT p.barcode, si.price, si.stock, si.available,
	s.id AS store_id, s.owner_id, s.name AS store_name, s.address, s.latitude, s.longitude, s.status, s.created_at
FROM store_inventory si
JOIN product p ON si.product_id = p.id
LEFT JOIN store s ON si.store_id = s.id
WHERE p.barcode = ?`
)

func (s *SQL) AssignTx(ctx context.Context, tx *sqlx.Tx, row *model.InventoryRow) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertInventoryQuery, row.StoreID, row.ProductID, row.Price, row.Stock, row.Available)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetAssignmentTx(ctx context.Context, tx *sqlx.Tx, storeID, productID uint64) (*model.InventoryRow, error) {
	var row model.InventoryRow
	if err := tx.QueryRowxContext(ctx, getAssignmentQuery, storeID, productID).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *SQL) Update(ctx context.Context, storeID, productID uint64, req *model.UpdateInventoryRequest) error {
	query := "UPDATE store_inventory SET updated_at = NOW()"
	args := make([]any, 0, 5)

	if req.Price != nil {
		query += ", price = ?"
		args = append(args, *req.Price)
	}
	if req.Stock != nil {
		query += ", stock = ?"
		args = append(args, *req.Stock)
	}
	if req.Available != nil {
		query += ", available = ?"
		args = append(args, *req.Available)
	}

	query += " WHERE store_id = ? AND product_id = ?"
	args = append(args, storeID, productID)

	result, err := s.conn.ExecContext(ctx, query, args...)
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

func (s *SQL) Remove(ctx context.Context, storeID, productID uint64) error {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM store_inventory WHERE store_id = ? AND product_id = ?", storeID, productID)
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

func (s *SQL) ListByStore(ctx context.Context, storeID uint64) ([]model.InventoryRow, error) {
	rows, err := s.conn.QueryxContext(ctx, listByStoreQuery, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InventoryRow, 0)
	for rows.Next() {
		var row model.InventoryRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

func (s *SQL) ListAvailabilityByBarcode(ctx context.Context, barcode string) ([]model.AvailabilityRecord, error) {
	rows, err := s.conn.QueryxContext(ctx, listAvailabilityQuery, barcode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type joinRow struct {
		Barcode   string                `db:"barcode"`
		Price     *float64              `db:"price"`
		Stock     *int64                `db:"stock"`
		Available *bool                 `db:"available"`
		StoreID   *uint64               `db:"store_id"`
		OwnerID   *uint64               `db:"owner_id"`
		StoreName *string               `db:"store_name"`
		Address   *string               `db:"address"`
		Latitude  *float64              `db:"latitude"`
		Longitude *float64              `db:"longitude"`
		Status    *constant.StoreStatus `db:"status"`
		CreatedAt *time.Time            `db:"created_at"`
	}

	records := make([]model.AvailabilityRecord, 0)
	for rows.Next() {
		var jr joinRow
		if err := rows.StructScan(&jr); err != nil {
			return nil, err
		}

		rec := model.AvailabilityRecord{
			ProductBarcode: jr.Barcode,
			Price:          jr.Price,
			Stock:          jr.Stock,
			Available:      jr.Available,
		}
		// Partial store rows keep their zero id and get dropped by the
		// ranking validation filter downstream.
		if jr.StoreID != nil {
			rec.Store = model.StoreLocation{
				ID:        *jr.StoreID,
				Name:      deref(jr.StoreName),
				Address:   deref(jr.Address),
				Latitude:  jr.Latitude,
				Longitude: jr.Longitude,
			}
			if jr.OwnerID != nil {
				rec.Store.OwnerID = *jr.OwnerID
			}
			if jr.Status != nil {
				rec.Store.Status = *jr.Status
			}
			if jr.CreatedAt != nil {
				rec.Store.CreatedAt = *jr.CreatedAt
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
