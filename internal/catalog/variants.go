package catalog

import "strings"

// Variant is the compact descriptor of one sibling row, derived on demand.
type Variant struct {
	Name  string // variant option values joined with " | "
	SKU   string
	Price string
	Slug  string
}

// Variants resolves every sibling row of the record's group: all rows whose
// parent identifier equals GroupKey(r), in table order. A parent row itself
// never matches (its parent field is empty), so a record with no children
// yields nil. Sibling sets are identical for every member of the group.
func (t *Table) Variants(r Record) []Variant {
	key := GroupKey(r)
	if key == "" {
		return nil
	}

	var out []Variant
	for _, row := range t.Records {
		if row.Get(FieldParentProductID) != key {
			continue
		}
		out = append(out, Variant{
			Name:  strings.Join(SplitList(row.Get(FieldVariantOptions)), " | "),
			SKU:   row.Get(FieldSKU),
			Price: row.Get(FieldPrice),
			Slug:  row.PageSlug(),
		})
	}
	return out
}
