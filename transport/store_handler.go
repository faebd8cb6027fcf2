package transport

import (
	"context"
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

// RegisterStore handler
// @Summary Register a store
// @Description Store owners submit a store for admin review
// @Tags Store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterStoreRequest true "Register Store Request"
// @Success 200 {object} model.RegisterStoreResponse
// @Failure 400 {object} errors.CustomError
// @Router /stores [post]
func (s *RestHandler) RegisterStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.RegisterStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest).WithDetail(validatorx.Reason(err)))
		return
	}

	res, err := s.StoreApp.RegisterStore(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListOwnStores handler
// @Summary List the caller's stores
// @Tags Store
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.StoreResponse
// @Router /stores/mine [get]
func (s *RestHandler) ListOwnStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.StoreApp.ListOwnStores(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPendingStores handler
// @Summary List stores awaiting review
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.StoreResponse
// @Failure 403 {object} errors.CustomError
// @Router /admin/stores/pending [get]
func (s *RestHandler) ListPendingStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !isAdmin(ctx) {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	res, err := s.StoreApp.ListPendingStores(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReviewStore handler
// @Summary Approve or reject a pending store
// @Description Approval makes the store visible to shoppers; either outcome emails the owner
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeID path int true "Store ID"
// @Param request body model.ReviewStoreRequest true "Review Request"
// @Success 200 {object} nil
// @Failure 400 {object} errors.CustomError
// @Failure 403 {object} errors.CustomError
// @Router /admin/stores/{storeID}/review [post]
func (s *RestHandler) ReviewStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !isAdmin(ctx) {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	storeID, err := strconv.ParseUint(mux.Vars(r)["storeID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ReviewStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.StoreApp.ReviewStore(ctx, storeID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func isAdmin(ctx context.Context) bool {
	role, ok := utilsContext.GetUserRole(ctx)
	return ok && role == constant.RoleAdmin
}
