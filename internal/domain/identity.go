package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ItemIdentity derives the deduplication key for a configured item: two
// configurations with the same product, dimensions and option set map to
// the same cart line. Options are joined sorted by name so insertion
// order never matters. Option names are compared as-is; "Color" and
// "color" are distinct keys.
func ItemIdentity(productID string, width, height float64, options map[string]string) string {
	var b strings.Builder
	b.WriteString(productID)
	if width > 0 && height > 0 {
		fmt.Fprintf(&b, "-%gx%g", width, height)
	}
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "-%s:%s", name, options[name])
	}
	return b.String()
}
