package model

type ProductListItem struct {
	ID            uint64  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	ShopName      string  `db:"shop_name" json:"shop_name"`
	Price         float64 `db:"price" json:"price"`
	ImageURL      string  `db:"image_url" json:"image_url"`
	ResolvedStock int64   `db:"-" json:"resolved_stock"`
	OutOfStock    bool    `db:"-" json:"out_of_stock"`
	StockFields
}

type ProductDetail struct {
	ID            uint64      `db:"id" json:"id"`
	Name          string      `db:"name" json:"name"`
	Description   string      `db:"description" json:"description,omitempty"`
	ShopID        uint64      `db:"shop_id" json:"shop_id"`
	ShopName      string      `db:"shop_name" json:"shop_name"`
	Price         float64     `db:"price" json:"price"`
	ImageURL      string      `db:"image_url" json:"image_url"`
	ResolvedStock int64       `db:"-" json:"resolved_stock"`
	StockSource   string      `db:"-" json:"stock_source,omitempty"`
	OutOfStock    bool        `db:"-" json:"out_of_stock"`
	Variants      []Variant   `db:"-" json:"variants"`
	Colors        []Attribute `db:"-" json:"colors"`
	Sizes         []Attribute `db:"-" json:"sizes"`
	StockFields
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
