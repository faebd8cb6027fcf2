// Package ranking turns raw product-to-store join rows into the sorted,
// distance-annotated view the search endpoints serve. It is a pure
// function over its inputs: malformed rows are dropped, never reported,
// and the output order does not depend on the input order.
package ranking

import (
	"sort"

	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/geo"
	"github.com/storescout/storescout/model"
)

// Rank is the list-view entry point: no radius filter is applied.
func Rank(records []model.AvailabilityRecord, userPos *model.Coordinate) []model.RankedResult {
	return rank(records, userPos, nil)
}

// RankWithinRadius is the map-view entry point. Records farther than
// radiusKm from the user are dropped. When the user position is unknown
// the radius filter is a no-op and every valid record passes.
func RankWithinRadius(records []model.AvailabilityRecord, userPos *model.Coordinate, radiusKm float64) []model.RankedResult {
	return rank(records, userPos, &radiusKm)
}

func rank(records []model.AvailabilityRecord, userPos *model.Coordinate, radiusKm *float64) []model.RankedResult {
	results := make([]model.RankedResult, 0, len(records))

	for i := range records {
		rec := &records[i]

		// Backend-trust boundary: the join may surface deleted stores,
		// revoked approvals or rows without a position. Those never
		// reach the caller as valid results.
		coord, ok := rec.Store.Coordinate()
		if rec.Store.ID == 0 || !ok || !coord.Valid() {
			continue
		}
		if rec.Store.Status != constant.StoreStatusApproved {
			continue
		}

		distance := model.UnknownDistance
		if userPos != nil {
			distance = geo.DistanceKm(*userPos, coord)
			if radiusKm != nil && distance > *radiusKm {
				continue
			}
		}

		results = append(results, model.RankedResult{
			ProductBarcode: rec.ProductBarcode,
			Price:          rec.Price,
			Stock:          rec.Stock,
			Available:      rec.IsAvailable(),
			Store:          rec.Store,
			DistanceKm:     distance,
		})
	}

	// Store id breaks distance ties so equal-distance results always come
	// back in the same order. Unknown distances sort last (+Inf sentinel).
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Store.ID < results[j].Store.ID
	})

	return results
}
