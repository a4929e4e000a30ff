package catv

import (
	"fmt"
	"strings"
)

// EntryWidth is the number of columns a formatted entry is right-aligned in.
const EntryWidth = 10

// FormatEntry right-aligns v in EntryWidth columns using six significant
// digits, falling back to three when that would not fit.
func FormatEntry(v float32) string {
	s := fmt.Sprintf("%*.6g", EntryWidth, v)
	if len(s) > EntryWidth {
		s = fmt.Sprintf("%*.3g", EntryWidth, v)
	}
	return s
}

// writeRow writes each value with FormatEntry followed by one space.
func writeRow(b *strings.Builder, row []float32) {
	for _, v := range row {
		b.WriteString(FormatEntry(v))
		b.WriteByte(' ')
	}
}
