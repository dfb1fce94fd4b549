package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCategory   = "category"
	KeySlug       = "slug"
	KeyProductID  = "product_id"
	KeyPath       = "path"
	KeyRecords    = "records"
	KeyPages      = "pages"
	KeyCategories = "categories"
	KeyVariants   = "variants"
	KeyRows       = "rows"
	KeySeed       = "seed"
	KeyField      = "field"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func ProductID(id string) slog.Attr   { return slog.String(KeyProductID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Records(n int) slog.Attr         { return slog.Int(KeyRecords, n) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Categories(n int) slog.Attr      { return slog.Int(KeyCategories, n) }
func Variants(n int) slog.Attr        { return slog.Int(KeyVariants, n) }
func Rows(n int) slog.Attr            { return slog.Int(KeyRows, n) }
func Seed(s uint64) slog.Attr         { return slog.Uint64(KeySeed, s) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
