package printer

import (
	"fmt"
	"math"
	"strings"

	"github.com/gradelang/gradelang/values"
)

// FormatPercent renders a raw float64 as a percentage to 2 decimal places,
// or "undef" for NaN — grounded on original_source/main.cpp's fmtPercent.
func FormatPercent(v float64) string {
	if math.IsNaN(v) {
		return "undef"
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

// FormatValue renders a runtime Value the way the reference REPL does:
// Grade and Integer as a percentage (an Integer is passed through the same
// *100 formatting as a Grade, matching printValueAsPercent's TYPE_INTEGER
// case verbatim), and List as a bracketed, comma-separated sequence with a
// ":weight" suffix on any element whose weight isn't exactly 1.0.
func FormatValue(v values.Value) string {
	switch v.Kind() {
	case values.Grade:
		return FormatPercent(v.AsGrade())
	case values.Integer:
		return FormatPercent(float64(v.AsInteger()))
	case values.List:
		return formatList(v)
	default:
		return "<unknown>"
	}
}

func formatList(v values.Value) string {
	items := v.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		s := FormatPercent(it.Value)
		if it.Weight != 1.0 {
			s += fmt.Sprintf(":%.2f", it.Weight)
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
