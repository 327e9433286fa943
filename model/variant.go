package model

// Attribute is one option value of a variant dimension, e.g. color "Black" or size "XL".
// Two attributes are equal when their IDs match; the name is display only.
type Attribute struct {
	ID   uint64 `json:"id" validate:"required"`
	Name string `json:"name"`
}

// StockFields holds every stock-bearing column a product or variant may carry.
// A nil pointer means the field is missing or null.
type StockFields struct {
	StockQuantity     *int64 `db:"stock_quantity" json:"stock_quantity,omitempty"`
	Stock             *int64 `db:"stock" json:"stock,omitempty"`
	Quantity          *int64 `db:"quantity" json:"quantity,omitempty"`
	AvailableQuantity *int64 `db:"available_quantity" json:"available_quantity,omitempty"`
	InventoryCount    *int64 `db:"inventory_count" json:"inventory_count,omitempty"`
}

type VariantAttributes struct {
	Color Attribute `json:"color" validate:"required"`
	Size  Attribute `json:"size" validate:"required"`
}

// Variant is one purchasable (product, color, size) combination.
type Variant struct {
	ID         uint64            `json:"id"`
	ProductID  uint64            `json:"product_id"`
	Attributes VariantAttributes `json:"attributes" validate:"required"`
	Price      float64           `json:"price" validate:"gte=0"`
	ImageURL   string            `json:"image_url"`
	StockFields
}

// VariantFilter narrows a variant query; zero values are ignored.
type VariantFilter struct {
	ColorID uint64
	SizeID  uint64
}

type ReplaceVariantsRequest struct {
	Variants []Variant `json:"variants" validate:"dive"`
}

type VariantListResponse struct {
	ProductID uint64      `json:"product_id"`
	Variants  []Variant   `json:"variants"`
	Colors    []Attribute `json:"colors"`
	Sizes     []Attribute `json:"sizes"`
}

// DuplicatePair reports a (color, size) pair shared by more than one variant.
type DuplicatePair struct {
	ColorID    uint64   `json:"color_id"`
	SizeID     uint64   `json:"size_id"`
	VariantIDs []uint64 `json:"variant_ids"`
}
