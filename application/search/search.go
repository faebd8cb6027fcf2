package search

import (
	"context"

	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	inventoryrepo "github.com/storescout/storescout/repository/inventory"
	"github.com/storescout/storescout/ranking"
	"github.com/storescout/storescout/utils/errors"
	"github.com/storescout/storescout/utils/logger"
	"go.uber.org/zap"
)

type SearchApp interface {
	// SearchByBarcode is the list-view query: every approved store
	// stocking the product, sorted by distance when a position is given.
	SearchByBarcode(ctx context.Context, barcode string, userPos *model.Coordinate) (*model.SearchResponse, error)
	// SearchNearby is the map-view query: same as SearchByBarcode but
	// stores beyond radiusKm are dropped. With no position the radius is
	// a no-op rather than an error.
	SearchNearby(ctx context.Context, barcode string, userPos *model.Coordinate, radiusKm float64) (*model.SearchResponse, error)
}

type searchAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewSearchApp(inventoryRepo inventoryrepo.InventoryRepository) SearchApp {
	return &searchAppImpl{inventoryRepo: inventoryRepo}
}

func (s *searchAppImpl) SearchByBarcode(ctx context.Context, barcode string, userPos *model.Coordinate) (*model.SearchResponse, error) {
	records, err := s.load(ctx, barcode, userPos)
	if err != nil {
		return nil, err
	}
	return toResponse(ranking.Rank(records, userPos)), nil
}

func (s *searchAppImpl) SearchNearby(ctx context.Context, barcode string, userPos *model.Coordinate, radiusKm float64) (*model.SearchResponse, error) {
	if radiusKm <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	records, err := s.load(ctx, barcode, userPos)
	if err != nil {
		return nil, err
	}
	return toResponse(ranking.RankWithinRadius(records, userPos, radiusKm)), nil
}

func (s *searchAppImpl) load(ctx context.Context, barcode string, userPos *model.Coordinate) ([]model.AvailabilityRecord, error) {
	if barcode == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if userPos != nil && !userPos.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	records, err := s.inventoryRepo.ListAvailabilityByBarcode(ctx, barcode)
	if err != nil {
		logger.Error("[search] err inventoryRepo.ListAvailabilityByBarcode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

func toResponse(results []model.RankedResult) *model.SearchResponse {
	items := make([]model.SearchResultItem, 0, len(results))
	for i := range results {
		r := &results[i]
		item := model.SearchResultItem{
			Barcode:   r.ProductBarcode,
			Price:     r.Price,
			Stock:     r.Stock,
			Available: r.Available,
			StoreID:   r.Store.ID,
			StoreName: r.Store.Name,
			Address:   r.Store.Address,
			Latitude:  r.Store.Latitude,
			Longitude: r.Store.Longitude,
		}
		// Unknown distance is rendered as absent, not as a number
		if r.HasDistance() {
			d := r.DistanceKm
			item.DistanceKm = &d
		}
		items = append(items, item)
	}
	return &model.SearchResponse{Items: items}
}
