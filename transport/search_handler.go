package transport

import (
	"net/http"
	"strconv"

	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	"github.com/storescout/storescout/utils/errors"
)

// Search handler (list view)
// @Summary Find stores stocking a product
// @Description Approved stores stocking the barcode, sorted by distance when lat/lon are given
// @Tags Search
// @Produce json
// @Param barcode query string true "Product barcode"
// @Param lat query number false "User latitude"
// @Param lon query number false "User longitude"
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} errors.CustomError
// @Router /search [get]
func (s *RestHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userPos, err := parsePosition(q.Get("lat"), q.Get("lon"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SearchApp.SearchByBarcode(ctx, q.Get("barcode"), userPos)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchNearby handler (map view)
// @Summary Find stores stocking a product within a radius
// @Tags Search
// @Produce json
// @Param barcode query string true "Product barcode"
// @Param lat query number false "User latitude"
// @Param lon query number false "User longitude"
// @Param radius_km query number true "Radius in kilometers"
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} errors.CustomError
// @Router /search/nearby [get]
func (s *RestHandler) SearchNearby(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userPos, err := parsePosition(q.Get("lat"), q.Get("lon"))
	if err != nil {
		writeError(w, err)
		return
	}

	radiusKm, err := strconv.ParseFloat(q.Get("radius_km"), 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SearchApp.SearchNearby(ctx, q.Get("barcode"), userPos, radiusKm)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// parsePosition turns optional lat/lon params into a position. Both
// absent means the client could not provide one (permission denied,
// location off) and search degrades to unknown distances.
func parsePosition(latStr, lonStr string) (*model.Coordinate, error) {
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	coord := model.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &coord, nil
}
