package variant

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/muhammadheryan/variant-catalog/model"
)

type SQL struct {
	conn *sqlx.DB
}

type VariantRepository interface {
	ListByProduct(ctx context.Context, productID uint64, filter *model.VariantFilter) ([]model.Variant, error)
	ReplaceByProductTx(ctx context.Context, tx *sqlx.Tx, productID uint64, variants []model.Variant) error
}

func NewVariantRepository(conn *sqlx.DB) VariantRepository {
	return &SQL{conn: conn}
}

var variantColumns = []string{
	"v.id",
	"v.product_id",
	"v.color_id",
	"c.name AS color_name",
	"v.size_id",
	"s.name AS size_name",
	"v.price",
	"COALESCE(v.image_url, '') AS image_url",
	"v.stock_quantity",
	"v.stock",
	"v.quantity",
	"v.available_quantity",
	"v.inventory_count",
}

var variantInsertColumns = []string{
	"product_id", "color_id", "size_id", "price", "image_url",
	"stock_quantity", "stock", "quantity", "available_quantity", "inventory_count",
}

type variantRow struct {
	ID        uint64  `db:"id"`
	ProductID uint64  `db:"product_id"`
	ColorID   uint64  `db:"color_id"`
	ColorName string  `db:"color_name"`
	SizeID    uint64  `db:"size_id"`
	SizeName  string  `db:"size_name"`
	Price     float64 `db:"price"`
	ImageURL  string  `db:"image_url"`
	model.StockFields
}

func (r variantRow) toModel() model.Variant {
	return model.Variant{
		ID:        r.ID,
		ProductID: r.ProductID,
		Attributes: model.VariantAttributes{
			Color: model.Attribute{ID: r.ColorID, Name: r.ColorName},
			Size:  model.Attribute{ID: r.SizeID, Name: r.SizeName},
		},
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		StockFields: r.StockFields,
	}
}

func (s *SQL) ListByProduct(ctx context.Context, productID uint64, filter *model.VariantFilter) ([]model.Variant, error) {
	q := sq.Select(variantColumns...).
		From("product_variant v").
		Join("attribute_value c ON c.id = v.color_id").
		Join("attribute_value s ON s.id = v.size_id").
		Where(sq.Eq{"v.product_id": productID}).
		OrderBy("v.id")
	if filter != nil {
		if filter.ColorID != 0 {
			q = q.Where(sq.Eq{"v.color_id": filter.ColorID})
		}
		if filter.SizeID != 0 {
			q = q.Where(sq.Eq{"v.size_id": filter.SizeID})
		}
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := make([]model.Variant, 0)
	for rows.Next() {
		var row variantRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		variants = append(variants, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return variants, nil
}

func (s *SQL) ReplaceByProductTx(ctx context.Context, tx *sqlx.Tx, productID uint64, variants []model.Variant) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM product_variant WHERE product_id = ?", productID); err != nil {
		return err
	}
	if len(variants) == 0 {
		return nil
	}

	ins := sq.Insert("product_variant").Columns(variantInsertColumns...)
	for _, v := range variants {
		ins = ins.Values(
			productID,
			v.Attributes.Color.ID,
			v.Attributes.Size.ID,
			v.Price,
			v.ImageURL,
			v.StockQuantity,
			v.Stock,
			v.Quantity,
			v.AvailableQuantity,
			v.InventoryCount,
		)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
