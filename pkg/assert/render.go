package assert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValueToString renders v the way assertion messages quote values: strings
// in double quotes, booleans as true/false, nil as null, collections as
// "array" and any other value through its default format.
func ValueToString(v any) string {
	if v == nil {
		return "null"
	}

	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "array"
	case reflect.Pointer:
		if reflect.ValueOf(v).IsNil() {
			return "null"
		}
		return fmt.Sprintf("%T", v)
	case reflect.Struct:
		return fmt.Sprintf("%T", v)
	default:
		return fmt.Sprint(v)
	}
}

// render substitutes args into the %s placeholders of tmpl in order, using
// ValueToString for everything but raw. Surplus placeholders are left
// untouched and surplus args are ignored.
func render(tmpl string, args ...any) string {
	var b strings.Builder
	rest := tmpl
	for _, arg := range args {
		i := strings.Index(rest, "%s")
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		if r, ok := arg.(raw); ok {
			b.WriteString(string(r))
		} else {
			b.WriteString(ValueToString(arg))
		}
		rest = rest[i+2:]
	}
	b.WriteString(rest)
	return b.String()
}

// raw marks a message argument that is inserted verbatim.
type raw string
