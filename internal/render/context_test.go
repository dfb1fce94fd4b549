package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamarko/catalogbuilder/internal/catalog"
)

func TestBuildContext(t *testing.T) {
	r := catalog.Record{
		catalog.FieldProductID:    "bx001",
		catalog.FieldProductName:  "Box",
		catalog.FieldPrice:        "9.99",
		catalog.FieldCurrency:     "usd",
		catalog.FieldShippingCost: "4.5",
		catalog.FieldStockStatus:  "In Stock",
		catalog.FieldImageAltText: "box image",
		catalog.FieldSKU:          "bx-001",
	}
	ctx := BuildContext(ContextInput{
		Record: r,
		Slug:   "boxes-1",
		Images: []string{"https://img/1.png", "https://img/2.png"},
		Variants: []catalog.Variant{
			{Name: "size:small", SKU: "bx-001-s", Price: "8.99", Slug: "boxes-1-small"},
		},
		Prices: testPrices(),
	})

	t.Run("raw fields pass through", func(t *testing.T) {
		assert.Equal(t, "bx001", ctx["product.product_id"])
		assert.Equal(t, "Box", ctx["product.product_name"])
		assert.Equal(t, "bx-001", ctx["product.sku"])
	})

	t.Run("cost fields are currency formatted", func(t *testing.T) {
		assert.Equal(t, "$9.99", ctx["product.price"])
		assert.Equal(t, "$4.50", ctx["product.shipping_cost"])
	})

	t.Run("computed keys", func(t *testing.T) {
		assert.Equal(t, "boxes-1", ctx["product.slug"])
		assert.Equal(t, "https://img/1.png", ctx["product.main_image"])
		assert.Equal(t, "https://img/1.png|https://img/2.png", ctx["product.gallery_images"])
		assert.Contains(t, ctx["product.gallery_thumbnails"], `alt="box image"`)
		assert.Contains(t, ctx["product.price_html"], "$9.99")
		assert.Equal(t, "Availability: In Stock", ctx["product.availability"])
		assert.Contains(t, ctx["product.variants_html"], "boxes-1-small")
		assert.Contains(t, ctx["product.cost_breakdown"], "Shipping Cost")
	})
}

func TestBuildContextOverlayWins(t *testing.T) {
	// A raw column named "slug" must lose to the computed slug key.
	r := catalog.Record{
		catalog.FieldProductID: "x1",
		"slug":                 "raw-column-value",
	}
	ctx := BuildContext(ContextInput{Record: r, Slug: "computed-slug", Prices: testPrices()})
	assert.Equal(t, "computed-slug", ctx["product.slug"])
}

func TestBuildContextMissingEverything(t *testing.T) {
	ctx := BuildContext(ContextInput{Record: catalog.Record{}, Slug: "product", Prices: testPrices()})

	assert.Equal(t, "", ctx["product.main_image"])
	assert.Equal(t, "", ctx["product.gallery_images"])
	assert.Equal(t, "", ctx["product.variants_html"])
	assert.Equal(t, "", ctx["product.cost_breakdown"])
	assert.Equal(t, "Availability: Unknown", ctx["product.availability"])
	// No price value renders as an empty price element, never a raw zero.
	assert.Equal(t, `<span class="price"></span>`, ctx["product.price_html"])
}

func TestBuildContextMarkdownFields(t *testing.T) {
	r := catalog.Record{
		catalog.FieldDescription:       "A **sturdy** box.",
		catalog.FieldAdditionalDetails: "- Material: paper\n- Weight: 1 lb",
	}
	ctx := BuildContext(ContextInput{Record: r, Slug: "s", Prices: testPrices()})

	assert.Contains(t, ctx["product.description_html"], "<strong>sturdy</strong>")
	assert.Contains(t, ctx["product.details_html"], "<li>Material: paper</li>")

	empty := BuildContext(ContextInput{Record: catalog.Record{}, Slug: "s", Prices: testPrices()})
	assert.Equal(t, "", empty["product.description_html"])
}
