package model

// ProductEntity represents the product table entity
type ProductEntity struct {
	ID          uint64 `db:"id" json:"id"`
	Barcode     string `db:"barcode" json:"barcode"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
}

type ProductListItem struct {
	ID      uint64 `db:"id" json:"id"`
	Barcode string `db:"barcode" json:"barcode"`
	Name    string `db:"name" json:"name"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

// CreateProductRequest registers a product in the catalog
type CreateProductRequest struct {
	Barcode     string `json:"barcode" validate:"required,barcode"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
