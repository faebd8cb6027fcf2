package inventory_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/storescout/storescout/application/inventory"
	"github.com/storescout/storescout/constant"
	inventorymocks "github.com/storescout/storescout/mocks/repository/inventory"
	productmocks "github.com/storescout/storescout/mocks/repository/product"
	storemocks "github.com/storescout/storescout/mocks/repository/store"
	txmocks "github.com/storescout/storescout/mocks/repository/tx"
	"github.com/storescout/storescout/model"
	cerr "github.com/storescout/storescout/utils/errors"
	"github.com/stretchr/testify/mock"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

type fixture struct {
	txRepo        *txmocks.TxRepository
	storeRepo     *storemocks.StoreRepository
	productRepo   *productmocks.ProductRepository
	inventoryRepo *inventorymocks.InventoryRepository
}

func newFixture(t *testing.T) fixture {
	return fixture{
		txRepo:        txmocks.NewTxRepository(t),
		storeRepo:     storemocks.NewStoreRepository(t),
		productRepo:   productmocks.NewProductRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
	}
}

func (f fixture) app() appinventory.InventoryApp {
	return appinventory.NewInventoryApp(f.txRepo, f.storeRepo, f.productRepo, f.inventoryRepo)
}

func (f fixture) ownedStore(ownerID, storeID uint64) {
	f.storeRepo.
		On("GetByID", mock.Anything, storeID).
		Return(&model.StoreLocation{ID: storeID, OwnerID: ownerID, Status: constant.StoreStatusApproved}, nil).
		Once()
}

func TestInventoryApp_AssignProduct(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  uint64
		storeID  uint64
		req      *model.AssignProductRequest
		mockCall func(f fixture)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: assign product to owned store",
			ownerID: 11,
			storeID: 42,
			req: &model.AssignProductRequest{
				Barcode: "4800016641503",
				Price:   52.50,
				Stock:   i64(12),
			},
			mockCall: func(f fixture) {
				f.ownedStore(11, 42)
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(&model.ProductEntity{ID: 7, Barcode: "4800016641503"}, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.inventoryRepo.
					On("GetAssignmentTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42), uint64(7)).
					Return(nil, nil).
					Once()
				f.inventoryRepo.
					On("AssignTx", mock.Anything, (*sqlx.Tx)(nil), mock.MatchedBy(func(row *model.InventoryRow) bool {
						return row.StoreID == 42 && row.ProductID == 7 &&
							row.Price != nil && *row.Price == 52.50 &&
							row.Stock != nil && *row.Stock == 12
					})).
					Return(uint64(100), nil).
					Once()
				f.txRepo.On("CommitTx", (*sqlx.Tx)(nil)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:    "error: store belongs to someone else",
			ownerID: 11,
			storeID: 42,
			req:     &model.AssignProductRequest{Barcode: "4800016641503", Price: 52.50},
			mockCall: func(f fixture) {
				f.storeRepo.
					On("GetByID", mock.Anything, uint64(42)).
					Return(&model.StoreLocation{ID: 42, OwnerID: 99}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotStoreOwner,
		},
		{
			name:    "error: store does not exist",
			ownerID: 11,
			storeID: 42,
			req:     &model.AssignProductRequest{Barcode: "4800016641503", Price: 52.50},
			mockCall: func(f fixture) {
				f.storeRepo.
					On("GetByID", mock.Anything, uint64(42)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: unknown barcode",
			ownerID: 11,
			storeID: 42,
			req:     &model.AssignProductRequest{Barcode: "0000000000000", Price: 52.50},
			mockCall: func(f fixture) {
				f.ownedStore(11, 42)
				f.productRepo.
					On("GetByBarcode", mock.Anything, "0000000000000").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name:    "error: product already assigned",
			ownerID: 11,
			storeID: 42,
			req:     &model.AssignProductRequest{Barcode: "4800016641503", Price: 52.50},
			mockCall: func(f fixture) {
				f.ownedStore(11, 42)
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(&model.ProductEntity{ID: 7, Barcode: "4800016641503"}, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.inventoryRepo.
					On("GetAssignmentTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42), uint64(7)).
					Return(&model.InventoryRow{ID: 100, StoreID: 42, ProductID: 7}, nil).
					Once()
				f.txRepo.On("RollbackTx", (*sqlx.Tx)(nil)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInventoryExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().AssignProduct(context.Background(), tt.ownerID, tt.storeID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AssignProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID == 0 {
				t.Fatal("AssignProduct() returned row without an id")
			}
		})
	}
}

func TestInventoryApp_UpdateInventory(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.UpdateInventoryRequest
		mockCall func(f fixture)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: update stock",
			req:  &model.UpdateInventoryRequest{Stock: i64(3)},
			mockCall: func(f fixture) {
				f.ownedStore(11, 42)
				f.inventoryRepo.
					On("Update", mock.Anything, uint64(42), uint64(7), &model.UpdateInventoryRequest{Stock: i64(3)}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:    "error: no fields to update",
			req:     &model.UpdateInventoryRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: assignment does not exist",
			req:  &model.UpdateInventoryRequest{Price: f64(49.00)},
			mockCall: func(f fixture) {
				f.ownedStore(11, 42)
				f.inventoryRepo.
					On("Update", mock.Anything, uint64(42), uint64(7), &model.UpdateInventoryRequest{Price: f64(49.00)}).
					Return(sql.ErrNoRows).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := f.app().UpdateInventory(context.Background(), 11, 42, 7, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateInventory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestInventoryApp_RemoveProduct(t *testing.T) {
	f := newFixture(t)
	f.ownedStore(11, 42)
	f.inventoryRepo.
		On("Remove", mock.Anything, uint64(42), uint64(7)).
		Return(nil).
		Once()

	if err := f.app().RemoveProduct(context.Background(), 11, 42, 7); err != nil {
		t.Fatalf("RemoveProduct() error = %v", err)
	}
}

func TestInventoryApp_ListInventory(t *testing.T) {
	f := newFixture(t)
	f.ownedStore(11, 42)
	f.inventoryRepo.
		On("ListByStore", mock.Anything, uint64(42)).
		Return([]model.InventoryRow{
			{ID: 100, StoreID: 42, ProductID: 7, Barcode: "4800016641503", Price: f64(52.50), Stock: i64(12)},
		}, nil).
		Once()

	rows, err := f.app().ListInventory(context.Background(), 11, 42)
	if err != nil {
		t.Fatalf("ListInventory() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Barcode != "4800016641503" {
		t.Fatalf("ListInventory() = %+v, want one row for 4800016641503", rows)
	}
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}
