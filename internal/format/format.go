// Package format holds the pure display-formatting helpers used across page
// generation: slugs, prices, durations, and availability labels. Everything
// here is tolerant of missing or malformed input and never returns an error.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jamarko/catalogbuilder/internal/config"
)

// FallbackSlug is used when no usable slug source exists.
const FallbackSlug = "product"

// stripMarks decomposes text and removes combining marks, so "café" slugs as "cafe".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes text into a URL-safe slug: lowercase, diacritics
// stripped, non-word characters removed, whitespace/underscore/hyphen runs
// collapsed to single hyphens, no leading or trailing hyphens.
// Empty input (or input that normalizes to nothing) yields FallbackSlug.
// Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	if strings.TrimSpace(text) == "" {
		return FallbackSlug
	}

	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range stripped {
		switch {
		case unicode.IsSpace(r), r == '_', r == '-':
			pendingHyphen = true
		case unicode.IsLetter(r), unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		}
		// Anything else is dropped without forcing a separator.
	}

	if b.Len() == 0 {
		return FallbackSlug
	}
	return b.String()
}

// PriceFormatter formats monetary values for display. Locale handling is
// explicit per instance; there is no process-wide locale state.
type PriceFormatter struct {
	currencies  config.CurrencyTable
	defaultCode string
}

// NewPriceFormatter builds a formatter over a currency table. Codes absent
// from the table resolve to defaultCode's configuration.
func NewPriceFormatter(currencies config.CurrencyTable, defaultCode string) *PriceFormatter {
	if len(currencies) == 0 {
		currencies = config.DefaultCurrencies()
	}
	return &PriceFormatter{currencies: currencies, defaultCode: defaultCode}
}

// Format renders a raw price value under the given currency code.
// Empty values yield an empty string. Unknown currency codes use the default
// currency configuration. A locale that fails to parse falls back to English
// grouping (symbol + thousands separators + exactly two fraction digits), and
// a value that is not numeric degrades to symbol + raw value.
func (f *PriceFormatter) Format(value, currencyCode string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	cur := f.currencies.Lookup(currencyCode, f.defaultCode)

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return cur.Symbol + value
	}

	tag, err := language.Parse(cur.Locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return cur.Symbol + p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDuration renders elapsed time as "Hh Mm S.SSs", omitting leading
// zero-valued units. Seconds always carry two decimal places.
func FormatDuration(d time.Duration) string {
	total := d.Seconds()
	mins := int(total) / 60
	secs := total - float64(mins)*60
	hours := mins / 60
	mins %= 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %.2fs", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%dm %.2fs", mins, secs)
	default:
		return fmt.Sprintf("%.2fs", secs)
	}
}

// AvailabilityLabel renders a stock status for display.
func AvailabilityLabel(status string) string {
	if strings.TrimSpace(status) == "" {
		return "Availability: Unknown"
	}
	return "Availability: " + status
}

var titleCaser = cases.Title(language.English)

// Humanize turns a field name into a display label: underscores become
// spaces and each word is title-cased (shipping_cost -> "Shipping Cost").
func Humanize(field string) string {
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}
