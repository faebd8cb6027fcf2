package model

// AssignProductRequest puts a product on a store's shelf
type AssignProductRequest struct {
	Barcode   string  `json:"barcode" validate:"required,barcode"`
	Price     float64 `json:"price" validate:"min=0"`
	Stock     *int64  `json:"stock,omitempty"`
	Available *bool   `json:"available,omitempty"`
}

// UpdateInventoryRequest mutates price/stock/availability of an assignment
type UpdateInventoryRequest struct {
	Price     *float64 `json:"price,omitempty"`
	Stock     *int64   `json:"stock,omitempty"`
	Available *bool    `json:"available,omitempty"`
}

// InventoryRow is one store-inventory assignment as stored
type InventoryRow struct {
	ID        uint64   `db:"id" json:"id"`
	StoreID   uint64   `db:"store_id" json:"store_id"`
	ProductID uint64   `db:"product_id" json:"product_id"`
	Barcode   string   `db:"barcode" json:"barcode"`
	Price     *float64 `db:"price" json:"price,omitempty"`
	Stock     *int64   `db:"stock" json:"stock,omitempty"`
	Available *bool    `db:"available" json:"available,omitempty"`
}
