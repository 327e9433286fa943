package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	appproduct "github.com/muhammadheryan/variant-catalog/application/product"
	"github.com/muhammadheryan/variant-catalog/cmd/config"
	"github.com/muhammadheryan/variant-catalog/constant"
	variantappmocks "github.com/muhammadheryan/variant-catalog/mocks/application/variant"
	productmocks "github.com/muhammadheryan/variant-catalog/mocks/repository/product"
	"github.com/muhammadheryan/variant-catalog/model"
	"github.com/muhammadheryan/variant-catalog/resolver"
	cerr "github.com/muhammadheryan/variant-catalog/utils/errors"
)

func i64(v int64) *int64 { return &v }

var (
	black = model.Attribute{ID: 1, Name: "Black"}
	white = model.Attribute{ID: 2, Name: "White"}
	sizeM = model.Attribute{ID: 10, Name: "M"}
)

func variants(stocks ...int64) []model.Variant {
	colors := []model.Attribute{black, white}
	out := make([]model.Variant, 0, len(stocks))
	for i, s := range stocks {
		out = append(out, model.Variant{
			ID:          uint64(i + 1),
			ProductID:   2,
			Attributes:  model.VariantAttributes{Color: colors[i%2], Size: sizeM},
			StockFields: model.StockFields{Stock: i64(s)},
		})
	}
	return out
}

func newApp(productRepo *productmocks.ProductRepository, variantApp *variantappmocks.VariantApp) appproduct.ProductApp {
	cfg := &config.Config{Catalog: config.CatalogConfig{DefaultPerPage: 20}}
	return appproduct.NewProductApp(cfg, resolver.New(resolver.PolicyAuthoritative), productRepo, variantApp)
}

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		variantApp  *variantappmocks.VariantApp
	}
	type args struct {
		ctx     context.Context
		page    int
		perPage int
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  bool
	}{
		{
			name: "success: own stock decides, variants only consulted when it is empty",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), page: 1, perPage: 10},
			mockCall: func(f fields) {
				items := []model.ProductListItem{
					{ID: 1, Name: "Tee", ShopName: "Shop A", Price: 50000, StockFields: model.StockFields{StockQuantity: i64(8)}},
					{ID: 2, Name: "Hoodie", ShopName: "Shop A", Price: 90000, StockFields: model.StockFields{StockQuantity: i64(0)}},
					{ID: 3, Name: "Cap", ShopName: "Shop B", Price: 20000},
				}
				f.productRepo.On("List", mock.Anything, 1, 10).Return(items, int64(3), nil).Once()
				f.variantApp.On("GetVariants", mock.Anything, uint64(2), false).Return(variants(0, 4), nil).Once()
				f.variantApp.On("GetVariants", mock.Anything, uint64(3), false).Return([]model.Variant{}, nil).Once()
			},
			want: &model.ProductListResponse{
				Items: []model.ProductListItem{
					{ID: 1, Name: "Tee", ShopName: "Shop A", Price: 50000, ResolvedStock: 8, StockFields: model.StockFields{StockQuantity: i64(8)}},
					{ID: 2, Name: "Hoodie", ShopName: "Shop A", Price: 90000, ResolvedStock: 4, StockFields: model.StockFields{StockQuantity: i64(0)}},
					{ID: 3, Name: "Cap", ShopName: "Shop B", Price: 20000, ResolvedStock: 0, OutOfStock: true},
				},
				TotalCount: 3,
				Page:       1,
				PerPage:    10,
			},
		},
		{
			name: "success: default page and perPage when zero or negative",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), page: -1, perPage: 0},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, 1, 20).Return([]model.ProductListItem{}, int64(0), nil).Once()
			},
			want: &model.ProductListResponse{
				Items:      []model.ProductListItem{},
				TotalCount: 0,
				Page:       1,
				PerPage:    20,
			},
		},
		{
			name: "error: repository List returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), page: 1, perPage: 10},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, 1, 10).Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
		{
			name: "error: variant batch cannot be loaded",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), page: 1, perPage: 10},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, 1, 10).Return([]model.ProductListItem{{ID: 2}}, int64(1), nil).Once()
				f.variantApp.On("GetVariants", mock.Anything, uint64(2), false).Return(nil, cerr.SetCustomError(constant.ErrInternal)).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields.productRepo, tt.fields.variantApp)

			got, err := app.ListProducts(tt.args.ctx, tt.args.page, tt.args.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		variantApp  *variantappmocks.VariantApp
	}
	type args struct {
		ctx context.Context
		id  uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProductDetail
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: stock comes from variants",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), id: 2},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.ProductDetail{
					ID:       2,
					Name:     "Hoodie",
					ShopID:   10,
					ShopName: "Shop A",
					Price:    90000,
				}, nil).Once()
				f.variantApp.On("GetVariants", mock.Anything, uint64(2), false).Return(variants(0, 4), nil).Once()
			},
			want: &model.ProductDetail{
				ID:            2,
				Name:          "Hoodie",
				ShopID:        10,
				ShopName:      "Shop A",
				Price:         90000,
				ResolvedStock: 4,
				StockSource:   "variants",
				Variants:      variants(0, 4),
				Colors:        []model.Attribute{black, white},
				Sizes:         []model.Attribute{sizeM},
			},
		},
		{
			name: "success: own stock field named as source",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), id: 1},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductDetail{
					ID:          1,
					Name:        "Tee",
					StockFields: model.StockFields{Quantity: i64(6)},
				}, nil).Once()
				f.variantApp.On("GetVariants", mock.Anything, uint64(1), false).Return([]model.Variant{}, nil).Once()
			},
			want: &model.ProductDetail{
				ID:            1,
				Name:          "Tee",
				ResolvedStock: 6,
				StockSource:   "quantity",
				Variants:      []model.Variant{},
				Colors:        []model.Attribute{},
				Sizes:         []model.Attribute{},
				StockFields:   model.StockFields{Quantity: i64(6)},
			},
		},
		{
			name: "success: nothing in stock anywhere",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), id: 3},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.ProductDetail{ID: 3}, nil).Once()
				f.variantApp.On("GetVariants", mock.Anything, uint64(3), false).Return([]model.Variant{}, nil).Once()
			},
			want: &model.ProductDetail{
				ID:         3,
				OutOfStock: true,
				Variants:   []model.Variant{},
				Colors:     []model.Attribute{},
				Sizes:      []model.Attribute{},
			},
		},
		{
			name: "error: product not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), id: 999},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository GetByID returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				variantApp:  variantappmocks.NewVariantApp(t),
			},
			args: args{ctx: context.Background(), id: 999},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := newApp(tt.fields.productRepo, tt.fields.variantApp)

			got, err := app.GetProduct(tt.args.ctx, tt.args.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
