package variant_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/muhammadheryan/variant-catalog/model"
	variantrepo "github.com/muhammadheryan/variant-catalog/repository/variant"
)

var listColumns = []string{
	"id", "product_id", "color_id", "color_name", "size_id", "size_name", "price", "image_url",
	"stock_quantity", "stock", "quantity", "available_quantity", "inventory_count",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func i64(v int64) *int64 { return &v }

func TestSQL_ListByProduct(t *testing.T) {
	tests := []struct {
		name     string
		filter   *model.VariantFilter
		mockCall func(mock sqlmock.Sqlmock)
		want     []model.Variant
		wantErr  bool
	}{
		{
			name:   "success: scans variants with nullable stock columns",
			filter: nil,
			mockCall: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(listColumns).
					AddRow(1, 7, 1, "Black", 10, "M", 99.5, "black-m.png", 5, nil, nil, nil, nil).
					AddRow(2, 7, 1, "Black", 11, "L", 99.5, "", nil, nil, nil, nil, 3)
				mock.ExpectQuery(`SELECT (.+) FROM product_variant v JOIN attribute_value c ON c.id = v.color_id JOIN attribute_value s ON s.id = v.size_id WHERE v.product_id = \? ORDER BY v.id`).
					WithArgs(uint64(7)).
					WillReturnRows(rows)
			},
			want: []model.Variant{
				{
					ID:          1,
					ProductID:   7,
					Attributes:  model.VariantAttributes{Color: model.Attribute{ID: 1, Name: "Black"}, Size: model.Attribute{ID: 10, Name: "M"}},
					Price:       99.5,
					ImageURL:    "black-m.png",
					StockFields: model.StockFields{StockQuantity: i64(5)},
				},
				{
					ID:          2,
					ProductID:   7,
					Attributes:  model.VariantAttributes{Color: model.Attribute{ID: 1, Name: "Black"}, Size: model.Attribute{ID: 11, Name: "L"}},
					Price:       99.5,
					StockFields: model.StockFields{InventoryCount: i64(3)},
				},
			},
		},
		{
			name:   "success: color and size filters are applied",
			filter: &model.VariantFilter{ColorID: 1, SizeID: 10},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE v.product_id = \? AND v.color_id = \? AND v.size_id = \?`).
					WithArgs(uint64(7), uint64(1), uint64(10)).
					WillReturnRows(sqlmock.NewRows(listColumns))
			},
			want: []model.Variant{},
		},
		{
			name: "error: query fails",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM product_variant`).WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockCall(mock)

			repo := variantrepo.NewVariantRepository(db)
			got, err := repo.ListByProduct(context.Background(), 7, tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListByProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListByProduct() = %+v, want %+v", got, tt.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestSQL_ReplaceByProductTx(t *testing.T) {
	variants := []model.Variant{
		{
			Attributes:  model.VariantAttributes{Color: model.Attribute{ID: 1}, Size: model.Attribute{ID: 10}},
			Price:       10,
			StockFields: model.StockFields{Stock: i64(4)},
		},
		{
			Attributes: model.VariantAttributes{Color: model.Attribute{ID: 2}, Size: model.Attribute{ID: 10}},
			Price:      12,
			ImageURL:   "white-m.png",
		},
	}

	tests := []struct {
		name     string
		variants []model.Variant
		mockCall func(mock sqlmock.Sqlmock)
		wantErr  bool
	}{
		{
			name:     "success: delete then multi-row insert",
			variants: variants,
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM product_variant WHERE product_id = \?`).
					WithArgs(uint64(7)).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec(`INSERT INTO product_variant \(product_id,color_id,size_id,price,image_url,stock_quantity,stock,quantity,available_quantity,inventory_count\) VALUES`).
					WithArgs(
						uint64(7), uint64(1), uint64(10), float64(10), "", nil, int64(4), nil, nil, nil,
						uint64(7), uint64(2), uint64(10), float64(12), "white-m.png", nil, nil, nil, nil, nil,
					).
					WillReturnResult(sqlmock.NewResult(1, 2))
			},
		},
		{
			name:     "success: empty batch only deletes",
			variants: nil,
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM product_variant`).
					WithArgs(uint64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name:     "error: delete fails",
			variants: variants,
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM product_variant`).WillReturnError(errors.New("lock wait timeout"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockCall(mock)

			tx, err := db.BeginTxx(context.Background(), nil)
			if err != nil {
				t.Fatalf("BeginTxx() error = %v", err)
			}

			repo := variantrepo.NewVariantRepository(db)
			err = repo.ReplaceByProductTx(context.Background(), tx, 7, tt.variants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReplaceByProductTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}
