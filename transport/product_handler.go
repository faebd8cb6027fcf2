package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	"github.com/storescout/storescout/utils/errors"
	validatorx "github.com/storescout/storescout/utils/validator"
)

// LookupProduct handler
// @Summary Lookup product by barcode
// @Description Resolve a scanned barcode to a product
// @Tags Product
// @Produce json
// @Param barcode path string true "Product barcode"
// @Success 200 {object} model.ProductEntity
// @Failure 400 {object} errors.CustomError
// @Router /products/{barcode} [get]
func (s *RestHandler) LookupProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	barcode := mux.Vars(r)["barcode"]

	product, err := s.ProductApp.LookupByBarcode(ctx, barcode)
	if err != nil {
		writeError(w, err)
		return
	}
	if product == nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	writeSuccess(w, product)
}

// ListProducts handler
// @Summary List products
// @Tags Product
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.ListProducts(ctx, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Register a product in the catalog
// @Tags Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 200 {object} model.ProductEntity
// @Failure 400 {object} errors.CustomError
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest).WithDetail(validatorx.Reason(err)))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PurgeProductCache drops the cached lookup entry for a barcode. Used by
// back-office catalog tooling after out-of-band edits.
func (s *RestHandler) PurgeProductCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	barcode := mux.Vars(r)["barcode"]

	if err := s.ProductApp.InvalidateCache(ctx, barcode); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
