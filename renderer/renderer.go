// Package renderer turns engine results into markdown reports.
package renderer

import (
	"fmt"
	"strings"
)

// section writes a level-one title.
func section(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, "# "+format+"\n\n", args...)
}
