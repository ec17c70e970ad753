// printer.go — language-level stringification of values and types.
//
// displayString is the rule shared by the paneer.bol built-in and string
// concatenation: scalars render plainly (no quotes), arrays render as
// "[elem, elem, ...]" one level deep with nested arrays collapsed to a
// placeholder. Type.String renders the surface type grammar, so its output
// re-parses to an equal Type.
package paneerlang

import (
	"strconv"
	"strings"
)

func (t Type) String() string {
	switch t.Kind {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeArray:
		return "array<" + t.Elem.String() + ">"
	default:
		return "unknown"
	}
}

// displayString renders a value for printing and concatenation.
func displayString(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		return formatFloat(v.Data.(float64))
	case VTString:
		return v.Data.(string)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTArray:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i, x := range xs {
			if x.Tag == VTArray {
				parts[i] = "[nested array]"
				continue
			}
			parts[i] = displayString(x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<unknown>"
	}
}

// formatFloat renders the shortest decimal form that round-trips, without
// an exponent, so 3.0 prints as "3".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String renders a debug representation: like displayString, except strings
// are quoted and nested arrays render in full.
func (v Value) String() string {
	switch v.Tag {
	case VTString:
		return strconv.Quote(v.Data.(string))
	case VTArray:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = x.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return displayString(v)
	}
}
