package resolver

import "github.com/muhammadheryan/variant-catalog/model"

// Colors returns the distinct colors of a batch in order of first appearance.
func Colors(batch []model.Variant) []model.Attribute {
	return distinct(batch, func(v model.Variant) model.Attribute { return v.Attributes.Color }, nil)
}

// Sizes returns the distinct sizes of a batch in order of first appearance.
func Sizes(batch []model.Variant) []model.Attribute {
	return distinct(batch, func(v model.Variant) model.Attribute { return v.Attributes.Size }, nil)
}

// SizesForColor returns the sizes for which a variant with the given color exists.
func SizesForColor(batch []model.Variant, colorID uint64) []model.Attribute {
	return distinct(batch, func(v model.Variant) model.Attribute { return v.Attributes.Size }, func(v model.Variant) bool {
		return v.Attributes.Color.ID == colorID
	})
}

func distinct(batch []model.Variant, pick func(model.Variant) model.Attribute, keep func(model.Variant) bool) []model.Attribute {
	out := make([]model.Attribute, 0)
	seen := make(map[uint64]struct{})
	for _, v := range batch {
		if keep != nil && !keep(v) {
			continue
		}
		a := pick(v)
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}

// SelectColor previews the first variant of a color and the sizes still selectable for it.
func SelectColor(batch []model.Variant, colorID uint64) model.Resolution {
	return ResolveVariant(batch, model.Selection{ColorID: colorID})
}

// SelectSize never resolves a single variant; the candidate lists stay complete.
func SelectSize(batch []model.Variant, sizeID uint64) model.Resolution {
	return ResolveVariant(batch, model.Selection{SizeID: sizeID})
}

// ResolveVariant matches a selection against a batch.
//
// With color and size chosen it returns the variant for that pair. With only a
// color it returns the first variant of that color. Otherwise nothing is
// matched. Duplicated pairs resolve to the first variant and set Ambiguous.
func ResolveVariant(batch []model.Variant, sel model.Selection) model.Resolution {
	res := model.Resolution{
		AvailableColors: Colors(batch),
		AvailableSizes:  Sizes(batch),
	}
	if sel.ColorID == 0 {
		return res
	}

	res.AvailableSizes = SizesForColor(batch, sel.ColorID)

	matches := 0
	for i := range batch {
		v := batch[i]
		if v.Attributes.Color.ID != sel.ColorID {
			continue
		}
		if sel.SizeID != 0 && v.Attributes.Size.ID != sel.SizeID {
			continue
		}
		if res.MatchedVariant == nil {
			matched := v
			res.MatchedVariant = &matched
		}
		matches++
		// a color-only preview never counts as ambiguous
		if sel.SizeID == 0 {
			break
		}
	}
	res.Ambiguous = matches > 1
	return res
}

// DuplicatePairs lists (color, size) pairs carried by more than one variant,
// in order of first appearance.
func DuplicatePairs(batch []model.Variant) []model.DuplicatePair {
	type pair struct{ color, size uint64 }
	index := make(map[pair]int)
	groups := make([]model.DuplicatePair, 0)
	for _, v := range batch {
		k := pair{v.Attributes.Color.ID, v.Attributes.Size.ID}
		if i, ok := index[k]; ok {
			groups[i].VariantIDs = append(groups[i].VariantIDs, v.ID)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, model.DuplicatePair{ColorID: k.color, SizeID: k.size, VariantIDs: []uint64{v.ID}})
	}

	dups := make([]model.DuplicatePair, 0)
	for _, g := range groups {
		if len(g.VariantIDs) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

// SameProduct reports whether every variant belongs to productID.
func SameProduct(batch []model.Variant, productID uint64) bool {
	for _, v := range batch {
		if v.ProductID != productID {
			return false
		}
	}
	return true
}
