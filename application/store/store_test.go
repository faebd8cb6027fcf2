package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	appstore "github.com/storescout/storescout/application/store"
	"github.com/storescout/storescout/constant"
	publishermocks "github.com/storescout/storescout/mocks/application/store"
	storemocks "github.com/storescout/storescout/mocks/repository/store"
	txmocks "github.com/storescout/storescout/mocks/repository/tx"
	"github.com/storescout/storescout/model"
	"github.com/storescout/storescout/thirdparty/rabbitmq"
	cerr "github.com/storescout/storescout/utils/errors"
	"github.com/stretchr/testify/mock"
)

func f64(v float64) *float64 { return &v }

func TestStoreApp_RegisterStore(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		storeRepo *storemocks.StoreRepository
		publisher *publishermocks.ReviewPublisher
	}
	type args struct {
		ownerID uint64
		req     *model.RegisterStoreRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterStoreResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register pending store",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				ownerID: 11,
				req: &model.RegisterStoreRequest{
					Name:      "Aling Nena Sari-Sari",
					Address:   "123 Quezon Ave",
					Latitude:  14.5995,
					Longitude: 120.9842,
				},
			},
			mockCall: func(f fields) {
				f.storeRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.StoreLocation) bool {
						return ent.OwnerID == 11 &&
							ent.Name == "Aling Nena Sari-Sari" &&
							ent.Status == constant.StoreStatusPending &&
							ent.Latitude != nil && *ent.Latitude == 14.5995
					})).
					Return(&model.StoreLocation{
						ID:      42,
						OwnerID: 11,
						Name:    "Aling Nena Sari-Sari",
						Status:  constant.StoreStatusPending,
					}, nil).
					Once()
			},
			want: &model.RegisterStoreResponse{
				StoreID: 42,
				Status:  "pending",
			},
			wantErr: false,
		},
		{
			name: "error: latitude out of domain",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				ownerID: 11,
				req: &model.RegisterStoreRequest{
					Name:      "Nowhere",
					Address:   "off the map",
					Latitude:  95.0,
					Longitude: 120.9842,
				},
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: repository Create fails",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				ownerID: 11,
				req: &model.RegisterStoreRequest{
					Name:      "Aling Nena Sari-Sari",
					Address:   "123 Quezon Ave",
					Latitude:  14.5995,
					Longitude: 120.9842,
				},
			},
			mockCall: func(f fields) {
				f.storeRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.StoreLocation")).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstore.NewStoreApp(tt.fields.txRepo, tt.fields.storeRepo, tt.fields.publisher)

			got, err := app.RegisterStore(context.Background(), tt.args.ownerID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterStore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("RegisterStore() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStoreApp_ReviewStore(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		storeRepo *storemocks.StoreRepository
		publisher *publishermocks.ReviewPublisher
	}
	type args struct {
		storeID uint64
		req     *model.ReviewStoreRequest
	}

	pendingStore := &model.StoreLocation{
		ID:         42,
		OwnerID:    11,
		Name:       "Aling Nena Sari-Sari",
		Status:     constant.StoreStatusPending,
		OwnerEmail: "owner@example.com",
	}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: approve publishes notification",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				storeID: 42,
				req:     &model.ReviewStoreRequest{Approve: true},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.storeRepo.
					On("GetByIDTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42)).
					Return(pendingStore, nil).
					Once()
				f.storeRepo.
					On("UpdateStatusTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42), constant.StoreStatusApproved).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", (*sqlx.Tx)(nil)).Return(nil).Once()
				f.publisher.
					On("PublishStoreReview", rabbitmq.StoreReviewMessage{
						StoreID:    42,
						StoreName:  "Aling Nena Sari-Sari",
						OwnerEmail: "owner@example.com",
						Approved:   true,
					}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: reject carries the reason",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				storeID: 42,
				req:     &model.ReviewStoreRequest{Approve: false, Reason: "address could not be verified"},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.storeRepo.
					On("GetByIDTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42)).
					Return(pendingStore, nil).
					Once()
				f.storeRepo.
					On("UpdateStatusTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42), constant.StoreStatusRejected).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", (*sqlx.Tx)(nil)).Return(nil).Once()
				f.publisher.
					On("PublishStoreReview", mock.MatchedBy(func(msg rabbitmq.StoreReviewMessage) bool {
						return !msg.Approved && msg.Reason == "address could not be verified"
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: publish failure does not undo the decision",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				storeID: 42,
				req:     &model.ReviewStoreRequest{Approve: true},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.storeRepo.
					On("GetByIDTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42)).
					Return(pendingStore, nil).
					Once()
				f.storeRepo.
					On("UpdateStatusTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42), constant.StoreStatusApproved).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", (*sqlx.Tx)(nil)).Return(nil).Once()
				f.publisher.
					On("PublishStoreReview", mock.AnythingOfType("rabbitmq.StoreReviewMessage")).
					Return(errors.New("broker unavailable")).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: store not found rolls back",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				storeID: 99,
				req:     &model.ReviewStoreRequest{Approve: true},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.storeRepo.
					On("GetByIDTx", mock.Anything, (*sqlx.Tx)(nil), uint64(99)).
					Return(nil, nil).
					Once()
				f.txRepo.On("RollbackTx", (*sqlx.Tx)(nil)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: already decided store",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				storeID: 42,
				req:     &model.ReviewStoreRequest{Approve: true},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.storeRepo.
					On("GetByIDTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42)).
					Return(&model.StoreLocation{ID: 42, Status: constant.StoreStatusApproved}, nil).
					Once()
				f.txRepo.On("RollbackTx", (*sqlx.Tx)(nil)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStoreNotPending,
		},
		{
			name: "error: status update fails and rolls back",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				storeRepo: storemocks.NewStoreRepository(t),
				publisher: publishermocks.NewReviewPublisher(t),
			},
			args: args{
				storeID: 42,
				req:     &model.ReviewStoreRequest{Approve: true},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.storeRepo.
					On("GetByIDTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42)).
					Return(pendingStore, nil).
					Once()
				f.storeRepo.
					On("UpdateStatusTx", mock.Anything, (*sqlx.Tx)(nil), uint64(42), constant.StoreStatusApproved).
					Return(errors.New("db error")).
					Once()
				f.txRepo.On("RollbackTx", (*sqlx.Tx)(nil)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstore.NewStoreApp(tt.fields.txRepo, tt.fields.storeRepo, tt.fields.publisher)

			err := app.ReviewStore(context.Background(), tt.args.storeID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReviewStore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestStoreApp_ListOwnStores(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	storeRepo := storemocks.NewStoreRepository(t)
	publisher := publishermocks.NewReviewPublisher(t)

	storeRepo.
		On("ListByOwner", mock.Anything, uint64(11)).
		Return([]model.StoreLocation{
			{ID: 1, OwnerID: 11, Name: "First", Address: "A St", Latitude: f64(14.5), Longitude: f64(121.0), Status: constant.StoreStatusApproved},
			{ID: 2, OwnerID: 11, Name: "Second", Address: "B St", Status: constant.StoreStatusPending},
		}, nil).
		Once()

	app := appstore.NewStoreApp(txRepo, storeRepo, publisher)
	got, err := app.ListOwnStores(context.Background(), 11)
	if err != nil {
		t.Fatalf("ListOwnStores() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListOwnStores() returned %d stores, want 2", len(got))
	}
	if got[0].Status != "approved" || got[1].Status != "pending" {
		t.Fatalf("statuses = [%s %s], want [approved pending]", got[0].Status, got[1].Status)
	}
}

func TestStoreApp_ListPendingStores(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	storeRepo := storemocks.NewStoreRepository(t)
	publisher := publishermocks.NewReviewPublisher(t)

	storeRepo.
		On("ListByStatus", mock.Anything, constant.StoreStatusPending).
		Return([]model.StoreLocation{
			{ID: 3, OwnerID: 12, Name: "Waiting", Status: constant.StoreStatusPending},
		}, nil).
		Once()

	app := appstore.NewStoreApp(txRepo, storeRepo, publisher)
	got, err := app.ListPendingStores(context.Background())
	if err != nil {
		t.Fatalf("ListPendingStores() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("ListPendingStores() = %+v, want one store with id 3", got)
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
