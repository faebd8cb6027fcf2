package store

import (
	"context"

	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	storerepo "github.com/storescout/storescout/repository/store"
	txrepo "github.com/storescout/storescout/repository/tx"
	"github.com/storescout/storescout/thirdparty/rabbitmq"
	"github.com/storescout/storescout/utils/errors"
	"github.com/storescout/storescout/utils/logger"
	"go.uber.org/zap"
)

// ReviewPublisher is the slice of the message publisher the store app
// needs; satisfied by *rabbitmq.Publisher
type ReviewPublisher interface {
	PublishStoreReview(msg rabbitmq.StoreReviewMessage) error
}

type StoreApp interface {
	RegisterStore(ctx context.Context, ownerID uint64, req *model.RegisterStoreRequest) (*model.RegisterStoreResponse, error)
	ListOwnStores(ctx context.Context, ownerID uint64) ([]model.StoreResponse, error)
	ListPendingStores(ctx context.Context) ([]model.StoreResponse, error)
	ReviewStore(ctx context.Context, storeID uint64, req *model.ReviewStoreRequest) error
}

type storeAppImpl struct {
	txRepo    txrepo.TxRepository
	storeRepo storerepo.StoreRepository
	publisher ReviewPublisher
}

func NewStoreApp(txRepo txrepo.TxRepository, storeRepo storerepo.StoreRepository, publisher ReviewPublisher) StoreApp {
	return &storeAppImpl{
		txRepo:    txRepo,
		storeRepo: storeRepo,
		publisher: publisher,
	}
}

func (s *storeAppImpl) RegisterStore(ctx context.Context, ownerID uint64, req *model.RegisterStoreRequest) (*model.RegisterStoreResponse, error) {
	coord := model.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if !coord.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	lat, lon := req.Latitude, req.Longitude
	entity := &model.StoreLocation{
		OwnerID:   ownerID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  &lat,
		Longitude: &lon,
		Status:    constant.StoreStatusPending,
	}

	entity, err := s.storeRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[RegisterStore] err storeRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterStoreResponse{
		StoreID: entity.ID,
		Status:  constant.StoreStatusLabel[entity.Status],
	}, nil
}

func (s *storeAppImpl) ListOwnStores(ctx context.Context, ownerID uint64) ([]model.StoreResponse, error) {
	stores, err := s.storeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("[ListOwnStores] err storeRepo.ListByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toResponses(stores), nil
}

func (s *storeAppImpl) ListPendingStores(ctx context.Context) ([]model.StoreResponse, error) {
	stores, err := s.storeRepo.ListByStatus(ctx, constant.StoreStatusPending)
	if err != nil {
		logger.Error("[ListPendingStores] err storeRepo.ListByStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toResponses(stores), nil
}

// ReviewStore approves or rejects a pending store. The status flip is
// transactional against a locked row so two admins cannot both decide
// the same registration; the owner notification goes out after commit.
func (s *storeAppImpl) ReviewStore(ctx context.Context, storeID uint64, req *model.ReviewStoreRequest) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReviewStore] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	store, err := s.storeRepo.GetByIDTx(ctx, tx, storeID)
	if err != nil {
		logger.Error("[ReviewStore] get store", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if store == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if store.Status != constant.StoreStatusPending {
		return errors.SetCustomError(constant.ErrStoreNotPending)
	}

	status := constant.StoreStatusRejected
	if req.Approve {
		status = constant.StoreStatusApproved
	}

	if err := s.storeRepo.UpdateStatusTx(ctx, tx, storeID, status); err != nil {
		logger.Error("[ReviewStore] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReviewStore] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Notification failure must not undo a committed decision
	msg := rabbitmq.StoreReviewMessage{
		StoreID:    store.ID,
		StoreName:  store.Name,
		OwnerEmail: store.OwnerEmail,
		Approved:   req.Approve,
		Reason:     req.Reason,
	}
	if err := s.publisher.PublishStoreReview(msg); err != nil {
		logger.Error("[ReviewStore] publish review", zap.String("error", err.Error()))
	}

	return nil
}

func toResponses(stores []model.StoreLocation) []model.StoreResponse {
	out := make([]model.StoreResponse, 0, len(stores))
	for i := range stores {
		st := &stores[i]
		out = append(out, model.StoreResponse{
			ID:        st.ID,
			Name:      st.Name,
			Address:   st.Address,
			Latitude:  st.Latitude,
			Longitude: st.Longitude,
			Status:    constant.StoreStatusLabel[st.Status],
		})
	}
	return out
}
