package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	ctx := Context{
		"product.name":       "Box",
		"product.price":      "$9.99",
		"product.price_html": `<span class="price">$9.99</span>`,
	}

	t.Run("substitutes known placeholders", func(t *testing.T) {
		out := RenderTemplate("# {{ product.name }}\n\n{{ product.price }}", ctx)
		assert.Equal(t, "# Box\n\n$9.99", out)
	})

	t.Run("no placeholders is a no-op", func(t *testing.T) {
		tpl := "plain text, no tokens at all"
		assert.Equal(t, tpl, RenderTemplate(tpl, ctx))
	})

	t.Run("unmatched placeholders stay verbatim", func(t *testing.T) {
		out := RenderTemplate("{{ product.name }} {{ product.unknown }}", ctx)
		assert.Equal(t, "Box {{ product.unknown }}", out)
	})

	t.Run("prefix keys cannot clobber longer placeholders", func(t *testing.T) {
		// product.price is a prefix of product.price_html; token scanning must
		// resolve each placeholder independently.
		out := RenderTemplate("{{ product.price_html }}|{{ product.price }}", ctx)
		assert.Equal(t, `<span class="price">$9.99</span>|$9.99`, out)
	})

	t.Run("empty value substitutes to nothing", func(t *testing.T) {
		out := RenderTemplate("[{{ product.empty }}]", Context{"product.empty": ""})
		assert.Equal(t, "[]", out)
	})

	t.Run("strict delimiter form required", func(t *testing.T) {
		// No single-space padding means no token.
		out := RenderTemplate("{{product.name}}", ctx)
		assert.Equal(t, "{{product.name}}", out)
	})

	t.Run("unterminated open delimiter stays verbatim", func(t *testing.T) {
		out := RenderTemplate("{{ product.name }} and {{ dangling", ctx)
		assert.Equal(t, "Box and {{ dangling", out)
	})

	t.Run("nested open before close", func(t *testing.T) {
		out := RenderTemplate("{{ outer {{ product.name }}", ctx)
		assert.Equal(t, "{{ outer Box", out)
	})

	t.Run("empty template", func(t *testing.T) {
		assert.Equal(t, "", RenderTemplate("", ctx))
	})
}
