package product_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	appproduct "github.com/storescout/storescout/application/product"
	"github.com/storescout/storescout/cmd/config"
	"github.com/storescout/storescout/constant"
	productmocks "github.com/storescout/storescout/mocks/repository/product"
	redismocks "github.com/storescout/storescout/mocks/repository/redis"
	"github.com/storescout/storescout/model"
	cerr "github.com/storescout/storescout/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{ProductTTL: 10 * time.Minute},
	}
}

func TestProductApp_CreateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CreateProductRequest
		mockCall func(f fields)
		want     *model.ProductEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create product and drop stale cache",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			req: &model.CreateProductRequest{
				Barcode: "4800016641503",
				Name:    "Instant Noodles",
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(nil, nil).
					Once()
				f.productRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ProductEntity) bool {
						return ent.Barcode == "4800016641503" && ent.Name == "Instant Noodles"
					})).
					Return(&model.ProductEntity{ID: 7, Barcode: "4800016641503", Name: "Instant Noodles"}, nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, "product:barcode:4800016641503").
					Return(nil).
					Once()
			},
			want:    &model.ProductEntity{ID: 7, Barcode: "4800016641503", Name: "Instant Noodles"},
			wantErr: false,
		},
		{
			name: "error: barcode already registered",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			req: &model.CreateProductRequest{
				Barcode: "4800016641503",
				Name:    "Instant Noodles",
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(&model.ProductEntity{ID: 7, Barcode: "4800016641503"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "success: cache delete failure is not fatal",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			req: &model.CreateProductRequest{
				Barcode: "4800016641503",
				Name:    "Instant Noodles",
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(nil, nil).
					Once()
				f.productRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ProductEntity")).
					Return(&model.ProductEntity{ID: 7, Barcode: "4800016641503", Name: "Instant Noodles"}, nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, "product:barcode:4800016641503").
					Return(errors.New("redis down")).
					Once()
			},
			want:    &model.ProductEntity{ID: 7, Barcode: "4800016641503", Name: "Instant Noodles"},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			got, err := app.CreateProduct(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_LookupByBarcode(t *testing.T) {
	entity := &model.ProductEntity{ID: 7, Barcode: "4800016641503", Name: "Instant Noodles"}
	cached, _ := json.Marshal(entity)

	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		barcode  string
		mockCall func(f fields)
		want     *model.ProductEntity
		wantErr  bool
	}{
		{
			name: "success: cache hit skips the database",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			barcode: "4800016641503",
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:barcode:4800016641503").
					Return(string(cached), nil).
					Once()
			},
			want:    entity,
			wantErr: false,
		},
		{
			name: "success: cache miss falls through and fills the cache",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			barcode: "4800016641503",
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:barcode:4800016641503").
					Return("", errors.New("redis: nil")).
					Once()
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(entity, nil).
					Once()
				f.redisRepo.
					On("SetWithTTL", mock.Anything, "product:barcode:4800016641503", string(cached), 10*time.Minute).
					Return(nil).
					Once()
			},
			want:    entity,
			wantErr: false,
		},
		{
			name: "success: unknown barcode returns nil without error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			barcode: "0000000000000",
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:barcode:0000000000000").
					Return("", errors.New("redis: nil")).
					Once()
				f.productRepo.
					On("GetByBarcode", mock.Anything, "0000000000000").
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: false,
		},
		{
			name: "error: empty barcode",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			barcode: "",
			want:    nil,
			wantErr: true,
		},
		{
			name: "error: database failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			barcode: "4800016641503",
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:barcode:4800016641503").
					Return("", errors.New("redis: nil")).
					Once()
				f.productRepo.
					On("GetByBarcode", mock.Anything, "4800016641503").
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			got, err := app.LookupByBarcode(context.Background(), tt.barcode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupByBarcode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("LookupByBarcode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_InvalidateCache(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	redisRepo := redismocks.NewRepository(t)

	redisRepo.
		On("Delete", mock.Anything, "product:barcode:4800016641503").
		Return(nil).
		Once()

	app := appproduct.NewProductApp(testConfig(), productRepo, redisRepo)
	if err := app.InvalidateCache(context.Background(), "4800016641503"); err != nil {
		t.Fatalf("InvalidateCache() error = %v", err)
	}

	if err := app.InvalidateCache(context.Background(), ""); err == nil {
		t.Fatal("InvalidateCache() with empty barcode, want error")
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	redisRepo := redismocks.NewRepository(t)

	items := []model.ProductListItem{
		{ID: 1, Barcode: "4800016641503", Name: "Instant Noodles"},
		{ID: 2, Barcode: "4800016641504", Name: "Canned Tuna"},
	}
	// page and perPage fall back to defaults when out of range
	productRepo.
		On("List", mock.Anything, 1, 10).
		Return(items, int64(2), nil).
		Once()

	app := appproduct.NewProductApp(testConfig(), productRepo, redisRepo)
	got, err := app.ListProducts(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if got.Page != 1 || got.PerPage != 10 || got.TotalCount != 2 {
		t.Fatalf("ListProducts() meta = page %d perPage %d total %d, want 1 10 2", got.Page, got.PerPage, got.TotalCount)
	}
	if !reflect.DeepEqual(got.Items, items) {
		t.Fatalf("ListProducts() items = %+v, want %+v", got.Items, items)
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
