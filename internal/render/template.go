package render

import "strings"

const (
	openDelim  = "{{ "
	closeDelim = " }}"
)

// RenderTemplate substitutes context values into a page template in a single
// left-to-right scan. A token of the exact form "{{ name }}" is replaced by
// ctx[name] when the key exists; tokens with no matching key are left
// verbatim, as is an unterminated open delimiter. Scanning by token rather
// than replacing key-by-key means one key being a prefix of another can
// never clobber a longer placeholder.
func RenderTemplate(template string, ctx Context) string {
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		i := strings.Index(rest, openDelim)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		j := strings.Index(rest[i+len(openDelim):], closeDelim)
		if j < 0 {
			b.WriteString(rest)
			break
		}
		name := rest[i+len(openDelim) : i+len(openDelim)+j]
		if k := strings.Index(name, openDelim); k >= 0 {
			// A nested open before the close: emit up to the inner open and rescan there.
			b.WriteString(rest[:i+len(openDelim)+k])
			rest = rest[i+len(openDelim)+k:]
			continue
		}
		b.WriteString(rest[:i])
		if value, ok := ctx[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[i : i+len(openDelim)+j+len(closeDelim)])
		}
		rest = rest[i+len(openDelim)+j+len(closeDelim):]
	}
	return b.String()
}
