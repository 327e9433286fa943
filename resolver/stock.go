// Package resolver holds the pure variant resolution and stock availability logic.
// Nothing in this package performs I/O or keeps state between calls.
package resolver

import (
	"fmt"
	"math"
	"strings"

	"github.com/muhammadheryan/variant-catalog/model"
)

// StockPolicy decides how an explicit zero in a higher-priority stock field
// interacts with the lower-priority fields.
type StockPolicy int

const (
	// PolicyAuthoritative stops at the first present field. An explicit 0 means
	// "out of stock" and the lower-priority fields are not consulted.
	PolicyAuthoritative StockPolicy = iota
	// PolicyFallthrough takes the first field strictly greater than zero.
	// Explicit zeros are skipped like missing fields.
	PolicyFallthrough
)

func (p StockPolicy) String() string {
	switch p {
	case PolicyAuthoritative:
		return "authoritative"
	case PolicyFallthrough:
		return "fallthrough"
	}
	return fmt.Sprintf("StockPolicy(%d)", int(p))
}

// ParsePolicy maps a configuration value to a StockPolicy. Empty means authoritative.
func ParsePolicy(s string) (StockPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "authoritative":
		return PolicyAuthoritative, nil
	case "fallthrough":
		return PolicyFallthrough, nil
	}
	return PolicyAuthoritative, fmt.Errorf("unknown stock policy %q", s)
}

type stockAccessor struct {
	name string
	get  func(model.StockFields) *int64
}

// stockPriority is the fixed evaluation order of stock-bearing fields.
var stockPriority = []stockAccessor{
	{name: "stock_quantity", get: func(f model.StockFields) *int64 { return f.StockQuantity }},
	{name: "stock", get: func(f model.StockFields) *int64 { return f.Stock }},
	{name: "quantity", get: func(f model.StockFields) *int64 { return f.Quantity }},
	{name: "available_quantity", get: func(f model.StockFields) *int64 { return f.AvailableQuantity }},
	{name: "inventory_count", get: func(f model.StockFields) *int64 { return f.InventoryCount }},
}

// StockFieldNames returns the stock field names in priority order.
func StockFieldNames() []string {
	names := make([]string, 0, len(stockPriority))
	for _, a := range stockPriority {
		names = append(names, a.name)
	}
	return names
}

// Resolver evaluates stock signals under one StockPolicy.
type Resolver struct {
	policy StockPolicy
}

func New(policy StockPolicy) *Resolver {
	return &Resolver{policy: policy}
}

func (r *Resolver) Policy() StockPolicy {
	return r.policy
}

// ResolveStock returns the stock count of an entity, never negative.
func (r *Resolver) ResolveStock(f model.StockFields) int64 {
	v, _ := r.StockSource(f)
	return v
}

// StockSource returns the resolved stock and the name of the field it came from.
// The name is empty when no field produced the value.
func (r *Resolver) StockSource(f model.StockFields) (int64, string) {
	for _, a := range stockPriority {
		v := a.get(f)
		if v == nil {
			continue
		}
		switch r.policy {
		case PolicyFallthrough:
			if *v > 0 {
				return *v, a.name
			}
		default:
			if *v < 0 {
				return 0, a.name
			}
			return *v, a.name
		}
	}
	return 0, ""
}

// IsOutOfStock reports whether a product with the given own stock fields and
// variants cannot be ordered: own stock resolves to zero and so does every variant.
func (r *Resolver) IsOutOfStock(own model.StockFields, variants []model.Variant) bool {
	if r.ResolveStock(own) > 0 {
		return false
	}
	for _, v := range variants {
		if r.ResolveStock(v.StockFields) > 0 {
			return false
		}
	}
	return true
}

func (r *Resolver) VariantOutOfStock(v model.Variant) bool {
	return r.IsOutOfStock(v.StockFields, nil)
}

// TotalStock is the product's own stock when positive, else the variant sum
// capped at math.MaxInt64.
func (r *Resolver) TotalStock(own model.StockFields, variants []model.Variant) int64 {
	if s := r.ResolveStock(own); s > 0 {
		return s
	}
	var total int64
	for _, v := range variants {
		s := r.ResolveStock(v.StockFields)
		if s > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += s
	}
	return total
}

// SelectionOutOfStock reports whether nothing is orderable for a selection.
// A complete pair is judged by its variant (no variant means out of stock);
// a partial selection is judged by every variant it still admits.
func (r *Resolver) SelectionOutOfStock(batch []model.Variant, sel model.Selection) bool {
	if sel.ColorID != 0 && sel.SizeID != 0 {
		res := ResolveVariant(batch, sel)
		if res.MatchedVariant == nil {
			return true
		}
		return r.VariantOutOfStock(*res.MatchedVariant)
	}

	admitted := make([]model.Variant, 0, len(batch))
	for _, v := range batch {
		if sel.ColorID != 0 && v.Attributes.Color.ID != sel.ColorID {
			continue
		}
		if sel.SizeID != 0 && v.Attributes.Size.ID != sel.SizeID {
			continue
		}
		admitted = append(admitted, v)
	}
	return r.IsOutOfStock(model.StockFields{}, admitted)
}
