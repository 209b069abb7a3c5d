package hxajax

import "strings"

// EscapeIDSelector turns an element id into a CSS id selector.
//
// Dot, colon and square brackets are valid in ids but meaningful in
// selectors, so each is prefixed with a backslash:
//
//	EscapeIDSelector("a.b")  // `#a\.b`
//	EscapeIDSelector("a[0]") // `#a\[0\]`
//
// The compilers only call this for non-blank ids; an empty id yields "#".
func EscapeIDSelector(id string) string {
	var sb strings.Builder
	sb.Grow(len(id) + 1)
	sb.WriteByte('#')
	for i := 0; i < len(id); i++ {
		switch c := id[i]; c {
		case '.', ':', '[', ']':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// escapeLiteral escapes single quotes for a single-quoted script literal.
// Nothing else is escaped.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// isBlank reports whether s is empty or only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
