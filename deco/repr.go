package deco

import (
	"fmt"
	"strings"
)

// Repr renders v the way it appears inside an argument listing.
//
// Strings are single-quoted (double-quoted when they contain a single quote
// and no double quote), nil is None and booleans are True / False.
// Everything else uses fmt's default format.
func Repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return quote(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(x)
	}
}

// Str renders v for display: like Repr, but strings are left unquoted.
func Str(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return Repr(v)
	}
}

func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
