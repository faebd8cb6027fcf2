package product

import (
	"context"
	"encoding/json"

	"github.com/storescout/storescout/cmd/config"
	"github.com/storescout/storescout/constant"
	"github.com/storescout/storescout/model"
	productrepo "github.com/storescout/storescout/repository/product"
	redisrepo "github.com/storescout/storescout/repository/redis"
	"github.com/storescout/storescout/utils/errors"
	"github.com/storescout/storescout/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error)
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	// LookupByBarcode returns (nil, nil) when the barcode is unknown; the
	// scan session treats that as a NotFound outcome, not a failure.
	LookupByBarcode(ctx context.Context, barcode string) (*model.ProductEntity, error)
	InvalidateCache(ctx context.Context, barcode string) error
}

type productAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(config *config.Config, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{
		config:      config,
		productRepo: productRepo,
		redisRepo:   redisRepo,
	}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error) {
	existing, err := s.productRepo.GetByBarcode(ctx, req.Barcode)
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.GetByBarcode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.ProductEntity{
		Barcode:     req.Barcode,
		Name:        req.Name,
		Description: req.Description,
	}
	entity, err = s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Drop any stale negative cache for this barcode
	if err := s.redisRepo.Delete(ctx, productCacheKey(req.Barcode)); err != nil {
		logger.Warn("[CreateProduct] err cache delete", zap.String("error", err.Error()))
	}

	return entity, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) LookupByBarcode(ctx context.Context, barcode string) (*model.ProductEntity, error) {
	if barcode == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Cache-aside: a hit skips the database entirely. Cache failures
	// only cost us the shortcut.
	key := productCacheKey(barcode)
	if cached, err := s.redisRepo.Get(ctx, key); err == nil && cached != "" {
		var entity model.ProductEntity
		if err := json.Unmarshal([]byte(cached), &entity); err == nil {
			return &entity, nil
		}
	}

	entity, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		logger.Error("[LookupByBarcode] err productRepo.GetByBarcode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, nil
	}

	if raw, err := json.Marshal(entity); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(raw), s.config.Cache.ProductTTL); err != nil {
			logger.Warn("[LookupByBarcode] err cache set", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}

func (s *productAppImpl) InvalidateCache(ctx context.Context, barcode string) error {
	if barcode == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.redisRepo.Delete(ctx, productCacheKey(barcode)); err != nil {
		logger.Error("[InvalidateCache] err cache delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func productCacheKey(barcode string) string {
	return "product:barcode:" + barcode
}
