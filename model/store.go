package model

import (
	"time"

	"github.com/storescout/storescout/constant"
)

// StoreLocation represents the store table entity
type StoreLocation struct {
	ID         uint64               `db:"id" json:"id"`
	OwnerID    uint64               `db:"owner_id" json:"owner_id"`
	Name       string               `db:"name" json:"name"`
	Address    string               `db:"address" json:"address"`
	Latitude   *float64             `db:"latitude" json:"latitude,omitempty"`
	Longitude  *float64             `db:"longitude" json:"longitude,omitempty"`
	Status     constant.StoreStatus `db:"status" json:"-"`
	OwnerEmail string               `db:"owner_email" json:"-"`
	CreatedAt  time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

// Coordinate returns the store position, or false when either component is missing
func (s *StoreLocation) Coordinate() (Coordinate, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: *s.Latitude, Longitude: *s.Longitude}, true
}

// RegisterStoreRequest for store owners registering a new store
type RegisterStoreRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type RegisterStoreResponse struct {
	StoreID uint64 `json:"store_id"`
	Status  string `json:"status"`
}

// ReviewStoreRequest is the admin approve/reject payload
type ReviewStoreRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty"`
}

type StoreResponse struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Status    string   `json:"status"`
}
