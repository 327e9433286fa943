package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/muhammadheryan/variant-catalog/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, p.name, p.price, COALESCE(p.image_url, '') as image_url, s.name as shop_name,
p.stock_quantity, p.stock, p.quantity, p.available_quantity, p.inventory_count
FROM product p
JOIN shop s ON p.shop_id = s.id`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	getProductDetail = `SELECT p.id, p.name, COALESCE(p.description, '') as description, p.price, COALESCE(p.image_url, '') as image_url,
s.id as shop_id, s.name as shop_name,
p.stock_quantity, p.stock, p.quantity, p.available_quantity, p.inventory_count
FROM product p
JOIN shop s ON p.shop_id = s.id
WHERE p.id = ?`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// get total count
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetByID returns nil, nil when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
