// Package render builds the HTML fragments and the substitution context for
// one product page, and performs the placeholder substitution itself.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jamarko/catalogbuilder/internal/catalog"
	"github.com/jamarko/catalogbuilder/internal/format"
)

// GalleryThumbnails renders one lazily-loaded thumbnail per image URL, in
// table order, all sharing the same alt text.
func GalleryThumbnails(images []string, altText string) string {
	lines := make([]string, 0, len(images))
	for _, img := range images {
		lines = append(lines, fmt.Sprintf(
			`<img src="%s" class="thumbnail" alt="%s" loading="lazy" data-thumb />`,
			img, altText))
	}
	return strings.Join(lines, "\n")
}

// PriceHTML renders the price block: a discounted price followed by the
// original when a discount is present, a single price element otherwise.
func PriceHTML(r catalog.Record, prices *format.PriceFormatter) string {
	currency := r.Get(catalog.FieldCurrency)
	if strings.TrimSpace(r.Get(catalog.FieldDiscountPrice)) != "" {
		return fmt.Sprintf(
			`<span class="price-discount">%s</span><span class="price-original">%s</span>`,
			prices.Format(r.Get(catalog.FieldDiscountPrice), currency),
			prices.Format(r.Get(catalog.FieldPrice), currency))
	}
	return fmt.Sprintf(`<span class="price">%s</span>`,
		prices.Format(r.Get(catalog.FieldPrice), currency))
}

// VariantsHTML renders the variant selector, or an empty string when the
// record has no variants. Each option carries the variant's slug, SKU, and
// price as metadata; the change hook name is fixed and matched by the site's
// JavaScript.
func VariantsHTML(variants []catalog.Variant) string {
	if len(variants) == 0 {
		return ""
	}
	options := make([]string, 0, len(variants))
	for _, v := range variants {
		name := v.Name
		if name == "" {
			name = "Option"
		}
		name = strings.ReplaceAll(name, `"`, "&quot;")
		options = append(options, fmt.Sprintf(
			`<option value="%s" data-sku="%s" data-price="%s">%s</option>`,
			v.Slug, v.SKU, v.Price, name))
	}
	return `<select class="product-variants" id="variantSelect" onchange="onVariantChange(this)">` +
		"\n" + strings.Join(options, "\n") + "\n</select>"
}

// CostBreakdown renders one labeled row per non-empty cost field, excluding
// the two primary price fields. Rows are ordered by field name so output is
// deterministic.
func CostBreakdown(r catalog.Record, prices *format.PriceFormatter) string {
	currency := r.Get(catalog.FieldCurrency)

	fields := make([]string, 0, catalog.CostFields.Len())
	for _, f := range catalog.CostFields.Values() {
		if f == catalog.FieldPrice || f == catalog.FieldDiscountPrice {
			continue
		}
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var rows []string
	for _, field := range fields {
		value := r.Get(field)
		if strings.TrimSpace(value) == "" {
			continue
		}
		rows = append(rows, fmt.Sprintf(
			"<div class='cost-row'><span>%s</span><span>%s</span></div>",
			format.Humanize(field), prices.Format(value, currency)))
	}
	return strings.Join(rows, "\n")
}
