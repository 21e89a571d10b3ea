package tourdb

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// RenderSQL inlines args into the ? placeholders of query for display. The
// output is for humans reading a dry run, not for execution.
func RenderSQL(query string, args []any) string {
	var b strings.Builder
	b.Grow(len(query) + len(args)*8)
	next := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		if next < len(args) {
			b.WriteString(literal(args[next]))
		} else {
			b.WriteRune(r)
		}
		next++
	}
	return b.String()
}

func literal(v any) string {
	if v == nil {
		return "NULL"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "NULL"
		}
		return literal(rv.Elem().Interface())
	}
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}
