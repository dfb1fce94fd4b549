package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jamarko/catalogbuilder/internal/config"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"basic", "Paper Bags", "paper-bags"},
		{"underscores", "photo_frames_3", "photo-frames-3"},
		{"punctuation removed", "Box! (large)", "box-large"},
		{"diacritics stripped", "Crème Brûlée", "creme-brulee"},
		{"mixed separators", "a _- b", "a-b"},
		{"leading and trailing junk", "--hello world--", "hello-world"},
		{"empty", "", FallbackSlug},
		{"whitespace only", "   ", FallbackSlug},
		{"symbols only", "!!!", FallbackSlug},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}

func TestSlugifyProperties(t *testing.T) {
	inputs := []string{"Paper Bags", "a _- b", "", "!!!", "boxes-1", "Crème", "已经", "x  y\tz"}
	for _, in := range inputs {
		slug := Slugify(in)
		assert.NotEmpty(t, slug, "input %q", in)
		assert.Equal(t, slug, Slugify(slug), "idempotence for %q", in)
		assert.False(t, strings.HasPrefix(slug, "-"), "leading hyphen for %q", in)
		assert.False(t, strings.HasSuffix(slug, "-"), "trailing hyphen for %q", in)
		assert.NotContains(t, slug, " ", "whitespace for %q", in)
	}
}

func TestPriceFormatterEmpty(t *testing.T) {
	f := NewPriceFormatter(config.DefaultCurrencies(), "npr")
	for _, code := range []string{"usd", "npr", "eur", "nope", ""} {
		assert.Empty(t, f.Format("", code))
		assert.Empty(t, f.Format("   ", code))
	}
}

func TestPriceFormatterLocales(t *testing.T) {
	f := NewPriceFormatter(config.DefaultCurrencies(), "npr")

	t.Run("usd grouping", func(t *testing.T) {
		assert.Equal(t, "$1,234.50", f.Format("1234.5", "usd"))
	})

	t.Run("eur german convention", func(t *testing.T) {
		assert.Equal(t, "€1.234,50", f.Format("1234.5", "EUR"))
	})

	t.Run("two fraction digits always", func(t *testing.T) {
		assert.Equal(t, "$5.00", f.Format("5", "usd"))
	})

	t.Run("unknown code uses default currency", func(t *testing.T) {
		got := f.Format("10", "zzz")
		assert.True(t, strings.HasPrefix(got, "रू"), "got %q", got)
	})

	t.Run("non-numeric degrades to symbol plus raw", func(t *testing.T) {
		assert.Equal(t, "$free", f.Format("free", "usd"))
	})

	t.Run("bad locale falls back to english grouping", func(t *testing.T) {
		table := config.CurrencyTable{"bad": {Symbol: "#", Locale: "not a tag"}}
		bad := NewPriceFormatter(table, "bad")
		assert.Equal(t, "#1,000.00", bad.Format("1000", "bad"))
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{0, "0.00s"},
		{90 * time.Second, "1m 30.00s"},
		{61*time.Minute + 5*time.Second, "1h 1m 5.00s"},
		{3 * time.Hour, "3h 0m 0.00s"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.d))
	}
}

func TestAvailabilityLabel(t *testing.T) {
	assert.Equal(t, "Availability: In Stock", AvailabilityLabel("In Stock"))
	assert.Equal(t, "Availability: Unknown", AvailabilityLabel(""))
	assert.Equal(t, "Availability: Unknown", AvailabilityLabel("  "))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Shipping Cost", Humanize("shipping_cost"))
	assert.Equal(t, "Handling Fee", Humanize("handling_fee"))
	assert.Equal(t, "Price", Humanize("price"))
}
