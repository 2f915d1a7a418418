package locale

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// NullText is substituted for nil arguments.
const NullText = "(null)"

var tokenRE = regexp.MustCompile(`%@([0-9]+)?`)

// Format substitutes args into template.
//
// "%@" takes the next positional argument; "%@N" takes argument N (1-based)
// without advancing the positional counter. A nil argument, including a typed
// nil pointer, map, slice, func or channel, renders as NullText. A missing
// argument renders as the empty string.
//
//	Format("Hello %@ %@", "John", "Smith")   // "Hello John Smith"
//	Format("Hello %@2 %@1", "John", "Smith") // "Hello Smith John"
func Format(template string, args ...any) string {
	return format(template, args, fmt.Sprint)
}

func format(template string, args []any, display func(...any) string) string {
	matches := tokenRE.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	next := 0
	last := 0
	for _, m := range matches {
		b.WriteString(template[last:m[0]])
		last = m[1]

		idx := next
		if m[2] >= 0 {
			n, err := strconv.Atoi(template[m[2]:m[3]])
			if err != nil {
				continue // index overflows int: no such argument
			}
			idx = n - 1
		} else {
			next++
		}

		if idx < 0 || idx >= len(args) {
			continue
		}
		if isNil(args[idx]) {
			b.WriteString(NullText)
			continue
		}
		b.WriteString(display(args[idx]))
	}
	b.WriteString(template[last:])
	return b.String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Loc looks key up in lookup and formats the result with args. Keys that are
// absent or map to an empty string are formatted as-is.
func Loc(lookup Lookup, key string, args ...any) string {
	return format(resolve(lookup, key), args, fmt.Sprint)
}

func resolve(lookup Lookup, key string) string {
	if lookup == nil {
		return key
	}
	if s, ok := lookup.Lookup(key); ok && s != "" {
		return s
	}
	return key
}
