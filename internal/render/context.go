package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/jamarko/catalogbuilder/internal/catalog"
	"github.com/jamarko/catalogbuilder/internal/format"
)

// Context is the flat key-value table substituted into one page template.
// Keys are dotted, e.g. "product.price". Built fresh per page.
type Context map[string]string

// ContextInput bundles everything needed to build one page's context.
type ContextInput struct {
	Record   catalog.Record
	Slug     string
	Images   []string
	Variants []catalog.Variant
	Prices   *format.PriceFormatter
}

// BuildContext maps a record and its derived data into the substitution
// table. Every raw field is exposed as "product.<field>" (cost fields pass
// through the currency formatter, everything else is the raw value); the
// computed keys are overlaid afterwards and win over raw fields of the same
// name.
func BuildContext(in ContextInput) Context {
	r := in.Record
	currency := r.Get(catalog.FieldCurrency)

	ctx := make(Context, len(r)+12)
	for field, value := range r {
		if catalog.CostFields.Has(field) {
			ctx["product."+field] = in.Prices.Format(value, currency)
		} else {
			ctx["product."+field] = value
		}
	}

	mainImage := ""
	if len(in.Images) > 0 {
		mainImage = in.Images[0]
	}

	ctx["product.slug"] = in.Slug
	ctx["product.main_image"] = mainImage
	ctx["product.gallery_images"] = catalog.JoinList(in.Images)
	ctx["product.gallery_thumbnails"] = GalleryThumbnails(in.Images, r.Get(catalog.FieldImageAltText))
	ctx["product.price_html"] = PriceHTML(r, in.Prices)
	ctx["product.availability"] = format.AvailabilityLabel(r.Get(catalog.FieldStockStatus))
	ctx["product.variants_html"] = VariantsHTML(in.Variants)
	ctx["product.cost_breakdown"] = CostBreakdown(r, in.Prices)
	ctx["product.description_html"] = markdownHTML(r.Get(catalog.FieldDescription))
	ctx["product.details_html"] = markdownHTML(r.Get(catalog.FieldAdditionalDetails))

	return ctx
}

var md = goldmark.New()

// markdownHTML renders a markdown-bearing field to HTML. Empty fields stay
// empty; a conversion failure degrades to the raw text.
func markdownHTML(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return src
	}
	return strings.TrimSpace(buf.String())
}
