package inventory

import (
	"context"
	"database/sql"

	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	inventoryrepo "github.com/storescout/storescout/repository/inventory"
	productrepo "github.com/storescout/storescout/repository/product"
	storerepo "github.com/storescout/storescout/repository/store"
	txrepo "github.com/storescout/storescout/repository/tx"
	"github.com/storescout/storescout/utils/errors"
	"github.com/storescout/storescout/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	AssignProduct(ctx context.Context, ownerID, storeID uint64, req *model.AssignProductRequest) (*model.InventoryRow, error)
	UpdateInventory(ctx context.Context, ownerID, storeID, productID uint64, req *model.UpdateInventoryRequest) error
	RemoveProduct(ctx context.Context, ownerID, storeID, productID uint64) error
	ListInventory(ctx context.Context, ownerID, storeID uint64) ([]model.InventoryRow, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	storeRepo     storerepo.StoreRepository
	productRepo   productrepo.ProductRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewInventoryApp(txRepo txrepo.TxRepository, storeRepo storerepo.StoreRepository, productRepo productrepo.ProductRepository, inventoryRepo inventoryrepo.InventoryRepository) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		storeRepo:     storeRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *inventoryAppImpl) AssignProduct(ctx context.Context, ownerID, storeID uint64, req *model.AssignProductRequest) (*model.InventoryRow, error) {
	if err := s.checkOwnership(ctx, ownerID, storeID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByBarcode(ctx, req.Barcode)
	if err != nil {
		logger.Error("[AssignProduct] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AssignProduct] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.inventoryRepo.GetAssignmentTx(ctx, tx, storeID, product.ID)
	if err != nil {
		logger.Error("[AssignProduct] get assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrInventoryExists)
	}

	price := req.Price
	row := &model.InventoryRow{
		StoreID:   storeID,
		ProductID: product.ID,
		Barcode:   product.Barcode,
		Price:     &price,
		Stock:     req.Stock,
		Available: req.Available,
	}

	rowID, err := s.inventoryRepo.AssignTx(ctx, tx, row)
	if err != nil {
		logger.Error("[AssignProduct] insert assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	row.ID = rowID

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AssignProduct] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return row, nil
}

func (s *inventoryAppImpl) UpdateInventory(ctx context.Context, ownerID, storeID, productID uint64, req *model.UpdateInventoryRequest) error {
	if req.Price == nil && req.Stock == nil && req.Available == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.checkOwnership(ctx, ownerID, storeID); err != nil {
		return err
	}

	if err := s.inventoryRepo.Update(ctx, storeID, productID, req); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateInventory] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *inventoryAppImpl) RemoveProduct(ctx context.Context, ownerID, storeID, productID uint64) error {
	if err := s.checkOwnership(ctx, ownerID, storeID); err != nil {
		return err
	}

	if err := s.inventoryRepo.Remove(ctx, storeID, productID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[RemoveProduct] remove", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *inventoryAppImpl) ListInventory(ctx context.Context, ownerID, storeID uint64) ([]model.InventoryRow, error) {
	if err := s.checkOwnership(ctx, ownerID, storeID); err != nil {
		return nil, err
	}

	rows, err := s.inventoryRepo.ListByStore(ctx, storeID)
	if err != nil {
		logger.Error("[ListInventory] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *inventoryAppImpl) checkOwnership(ctx context.Context, ownerID, storeID uint64) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		logger.Error("[checkOwnership] get store", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if store == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if store.OwnerID != ownerID {
		return errors.SetCustomError(constant.ErrNotStoreOwner)
	}
	return nil
}
