package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	utilsContext "github.com/storescout/storescout/utils/context"
	"github.com/storescout/storescout/utils/errors"
	validatorx "github.com/storescout/storescout/utils/validator"
)

// AssignProduct handler
// @Summary Put a product on a store's shelf
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeID path int true "Store ID"
// @Param request body model.AssignProductRequest true "Assign Product Request"
// @Success 200 {object} model.InventoryRow
// @Failure 400 {object} errors.CustomError
// @Router /stores/{storeID}/inventory [post]
func (s *RestHandler) AssignProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	storeID, err := strconv.ParseUint(mux.Vars(r)["storeID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AssignProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest).WithDetail(validatorx.Reason(err)))
		return
	}

	res, err := s.InventoryApp.AssignProduct(ctx, userID, storeID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateInventory handler
// @Summary Update price, stock or availability of an assignment
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeID path int true "Store ID"
// @Param productID path int true "Product ID"
// @Param request body model.UpdateInventoryRequest true "Update Inventory Request"
// @Success 200 {object} nil
// @Failure 400 {object} errors.CustomError
// @Router /stores/{storeID}/inventory/{productID} [put]
func (s *RestHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	storeID, productID, err := pathIDs(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.InventoryApp.UpdateInventory(ctx, userID, storeID, productID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RemoveProduct handler
// @Summary Take a product off a store's shelf
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param storeID path int true "Store ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} nil
// @Failure 400 {object} errors.CustomError
// @Router /stores/{storeID}/inventory/{productID} [delete]
func (s *RestHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	storeID, productID, err := pathIDs(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.InventoryApp.RemoveProduct(ctx, userID, storeID, productID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListInventory handler
// @Summary List a store's inventory
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param storeID path int true "Store ID"
// @Success 200 {array} model.InventoryRow
// @Failure 400 {object} errors.CustomError
// @Router /stores/{storeID}/inventory [get]
func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	storeID, err := strconv.ParseUint(mux.Vars(r)["storeID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.ListInventory(ctx, userID, storeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathIDs(r *http.Request) (storeID, productID uint64, err error) {
	vars := mux.Vars(r)
	storeID, err = strconv.ParseUint(vars["storeID"], 10, 64)
	if err != nil {
		return 0, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	productID, err = strconv.ParseUint(vars["productID"], 10, 64)
	if err != nil {
		return 0, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return storeID, productID, nil
}
