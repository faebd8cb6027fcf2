package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/storescout/storescout/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.ProductEntity, error)
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery = `INSERT INTO product (barcode, name, description) VALUES (?, ?, ?)`

	getProductByBarcode = `SELECT id, barcode, name, description FROM product WHERE barcode = ?`

	listProductsBase = `SELECT id, barcode, name FROM product`

	countProductsQuery = `SELECT COUNT(*) FROM product`
)

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery, data.Barcode, data.Name, data.Description)
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

func (s *SQL) GetByBarcode(ctx context.Context, barcode string) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductByBarcode, barcode).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
