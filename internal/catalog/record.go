// Package catalog models the product table: records keyed by normalized
// column names, pipe-delimited list fields, and the parent/variant grouping
// rules shared by the resolver and the page builder.
package catalog

import (
	"strings"

	"github.com/jamarko/catalogbuilder/internal/format"
	"github.com/jamarko/catalogbuilder/internal/util/sets"
)

// Canonical column names of the product table.
const (
	FieldProductID         = "product_id"
	FieldParentProductID   = "parent_product_id"
	FieldProductName       = "product_name"
	FieldSKU               = "sku"
	FieldVariantOptions    = "variant_options"
	FieldPrice             = "price"
	FieldCurrency          = "currency"
	FieldQuantityAvailable = "quantity_available"
	FieldStockStatus       = "stock_availability_status"
	FieldRestockThreshold  = "restock_threshold"
	FieldProductType       = "product_type"
	FieldURLSlug           = "product_url_slug"
	FieldShortDescription  = "product_short_description"
	FieldDescription       = "product_description"
	FieldImages            = "product_images"
	FieldMetaTitle         = "meta_title"
	FieldMetaDescription   = "meta_description"
	FieldPrimaryKeyword    = "primary_keyword"
	FieldImageAltText      = "image_alt_text"
	FieldRating            = "product_rating"
	FieldReviewCount       = "review_count"
	FieldDiscountPrice     = "discount_price"
	FieldCostPrice         = "cost_price"
	FieldReturnPolicy      = "return_policy"
	FieldDimensions        = "product_dimensions"
	FieldWeight            = "product_weight"
	FieldStockLocation     = "stock_location"
	FieldSupplierName      = "supplier_name"
	FieldAdditionalDetails = "additional_details"
	FieldShippingCost      = "shipping_cost"
	FieldShippingETA       = "shipping_time_eta"
	FieldShippingRegions   = "shipping_regions"
)

// Columns is the canonical column order of the product table. The generator
// writes it and the validator falls back to it when no schema file is given.
var Columns = []string{
	FieldProductID, FieldParentProductID, FieldProductName, FieldSKU,
	FieldVariantOptions, FieldPrice, FieldCurrency, FieldQuantityAvailable,
	FieldStockStatus, FieldRestockThreshold, FieldProductType, FieldURLSlug,
	FieldShortDescription, FieldDescription, FieldImages, FieldMetaTitle,
	FieldMetaDescription, FieldPrimaryKeyword, FieldImageAltText, FieldRating,
	FieldReviewCount, FieldDiscountPrice, FieldCostPrice, FieldReturnPolicy,
	FieldDimensions, FieldWeight, FieldStockLocation, FieldSupplierName,
	FieldAdditionalDetails, FieldShippingCost, FieldShippingETA,
	FieldShippingRegions,
}

// CostFields are the fields whose values always pass through the currency
// formatter. The two primary price fields are excluded from the cost
// breakdown fragment but included here for context formatting.
var CostFields = sets.New(
	FieldPrice,
	FieldDiscountPrice,
	FieldShippingCost,
	"tax_amount",
	"handling_fee",
)

// Record is one row of the product table keyed by normalized column name.
type Record map[string]string

// Get returns the value of a field; missing fields read as empty.
func (r Record) Get(field string) string { return r[field] }

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether the column exists on this record (even when empty).
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// ID returns the record's own identifier.
func (r Record) ID() string { return r[FieldProductID] }

// ParentID returns the parent identifier; empty for parent records.
func (r Record) ParentID() string { return r[FieldParentProductID] }

// PageSlug derives the record's page slug: the URL slug field when present,
// else the product name, else the formatter's fallback slug.
func (r Record) PageSlug() string {
	source := r[FieldURLSlug]
	if source == "" {
		source = r[FieldProductName]
	}
	return format.Slugify(source)
}

// GroupKey is the single variant-grouping rule: a record groups under its
// parent identifier, or under its own identifier when it has no parent.
// A parent row and its children therefore share the same key.
func GroupKey(r Record) string {
	if pid := r.ParentID(); pid != "" {
		return pid
	}
	return r.ID()
}

// SplitList parses a pipe-delimited field into trimmed items, dropping
// empties. Returns nil for blank input.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			items = append(items, t)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// JoinList is the inverse of SplitList for storage form (no padding).
func JoinList(items []string) string { return strings.Join(items, "|") }
