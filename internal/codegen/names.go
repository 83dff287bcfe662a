package codegen

import "strings"

// ToMacro converts a declaration name to the upper-snake form used for C
// constants: "ItemIter" and "item_iter" both become "ITEM_ITER".
func ToMacro(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
			prevLower = true
		case r >= 'A' && r <= 'Z':
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			prevLower = false
		case r == '-' || r == ' ':
			b.WriteByte('_')
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = false
		}
	}
	return b.String()
}
