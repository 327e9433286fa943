package product

import (
	"context"

	"go.uber.org/zap"

	variantapp "github.com/muhammadheryan/variant-catalog/application/variant"
	"github.com/muhammadheryan/variant-catalog/cmd/config"
	"github.com/muhammadheryan/variant-catalog/constant"
	"github.com/muhammadheryan/variant-catalog/model"
	productRepo "github.com/muhammadheryan/variant-catalog/repository/product"
	"github.com/muhammadheryan/variant-catalog/resolver"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
	"github.com/muhammadheryan/variant-catalog/utils/logger"
)

const (
	defaultPerPage      = 10
	stockSourceVariants = "variants"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

type productAppImpl struct {
	config      *config.Config
	resolver    *resolver.Resolver
	productRepo productRepo.ProductRepository
	variantApp  variantapp.VariantApp
}

func NewProductApp(config *config.Config, resolver *resolver.Resolver, productRepo productRepo.ProductRepository, variantApp variantapp.VariantApp) ProductApp {
	return &productAppImpl{
		config:      config,
		resolver:    resolver,
		productRepo: productRepo,
		variantApp:  variantApp,
	}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = s.config.Catalog.DefaultPerPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for i := range items {
		it := &items[i]
		own := s.resolver.ResolveStock(it.StockFields)
		if own > 0 {
			it.ResolvedStock = own
			continue
		}

		// own stock says nothing, the variants decide
		variants, err := s.variantApp.GetVariants(ctx, it.ID, false)
		if err != nil {
			return nil, err
		}
		it.ResolvedStock = s.resolver.TotalStock(it.StockFields, variants)
		it.OutOfStock = s.resolver.IsOutOfStock(it.StockFields, variants)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	variants, err := s.variantApp.GetVariants(ctx, id, false)
	if err != nil {
		return nil, err
	}

	own, source := s.resolver.StockSource(result.StockFields)
	if own <= 0 && len(variants) > 0 {
		source = stockSourceVariants
	}
	result.StockSource = source
	result.Variants = variants
	result.Colors = resolver.Colors(variants)
	result.Sizes = resolver.Sizes(variants)
	result.ResolvedStock = s.resolver.TotalStock(result.StockFields, variants)
	result.OutOfStock = s.resolver.IsOutOfStock(result.StockFields, variants)

	return result, nil
}
