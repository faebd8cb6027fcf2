package model

import "math"

// UnknownDistance is the sort sentinel used when the user position is not
// available. It must never be rendered as a numeric distance.
var UnknownDistance = math.Inf(1)

// AvailabilityRecord is one product-to-store join row as returned by the
// data source. Price, Stock and Available are nullable on the wire; Store
// may be partial when the join hits a deleted or revoked store.
type AvailabilityRecord struct {
	ProductBarcode string        `db:"barcode" json:"barcode"`
	Price          *float64      `db:"price" json:"price,omitempty"`
	Stock          *int64        `db:"stock" json:"stock,omitempty"`
	Available      *bool         `db:"available" json:"available,omitempty"`
	Store          StoreLocation `json:"store"`
}

// IsAvailable resolves the availability flag, falling back to a positive
// stock check when the source field is absent.
func (r *AvailabilityRecord) IsAvailable() bool {
	if r.Available != nil {
		return *r.Available
	}
	return r.Stock != nil && *r.Stock > 0
}

// RankedResult is an availability record enriched with the computed distance
// from the user. Produced fresh per query, never persisted.
type RankedResult struct {
	ProductBarcode string        `json:"barcode"`
	Price          *float64      `json:"price,omitempty"`
	Stock          *int64        `json:"stock,omitempty"`
	Available      bool          `json:"available"`
	Store          StoreLocation `json:"store"`
	DistanceKm     float64       `json:"-"`
}

// HasDistance reports whether DistanceKm holds a real value rather than the
// unknown-position sentinel.
func (r *RankedResult) HasDistance() bool {
	return !math.IsInf(r.DistanceKm, 1)
}

// SearchResultItem is the wire form of one ranked result
type SearchResultItem struct {
	Barcode    string   `json:"barcode"`
	Price      *float64 `json:"price,omitempty"`
	Stock      *int64   `json:"stock,omitempty"`
	Available  bool     `json:"available"`
	StoreID    uint64   `json:"store_id"`
	StoreName  string   `json:"store_name"`
	Address    string   `json:"address"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
}
