package model

// Selection is a partial color/size choice while browsing one product.
// Zero IDs mean "not chosen".
type Selection struct {
	ColorID uint64 `json:"color_id,omitempty"`
	SizeID  uint64 `json:"size_id,omitempty"`
}

// Resolution is the outcome of resolving a selection against a variant batch.
// MatchedVariant is nil when no single variant matches.
type Resolution struct {
	MatchedVariant  *Variant    `json:"matched_variant"`
	AvailableSizes  []Attribute `json:"available_sizes"`
	AvailableColors []Attribute `json:"available_colors"`
	Ambiguous       bool        `json:"ambiguous,omitempty"`
}

type ResolveResponse struct {
	ProductID  uint64     `json:"product_id"`
	Selection  Selection  `json:"selection"`
	Resolution Resolution `json:"resolution"`
	OutOfStock bool       `json:"out_of_stock"`
}

type SelectionView struct {
	ProductID   uint64     `json:"product_id"`
	Selection   Selection  `json:"selection"`
	Resolution  Resolution `json:"resolution"`
	SizeCleared bool       `json:"size_cleared"`
	OutOfStock  bool       `json:"out_of_stock"`
}

type ChooseColorRequest struct {
	ColorID uint64 `json:"color_id" validate:"required"`
}

type ChooseSizeRequest struct {
	SizeID uint64 `json:"size_id" validate:"required"`
}
