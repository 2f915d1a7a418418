package locale

import (
	"strconv"
	"testing"
)

type point struct{ x, y int }

func (p point) String() string { return "(" + strconv.Itoa(p.x) + "," + strconv.Itoa(p.y) + ")" }

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"positional", "Hello %@ %@", []any{"John", "Smith"}, "Hello John Smith"},
		{"explicit index", "Hello %@2 %@1", []any{"John", "Smith"}, "Hello Smith John"},
		{"explicit does not advance", "Hello %@2 %@", []any{"John", "Smith"}, "Hello Smith John"},
		{"repeated explicit", "%@1 and %@1", []any{"echo"}, "echo and echo"},
		{"no tokens", "plain text", []any{"ignored"}, "plain text"},
		{"percent alone", "100%", nil, "100%"},
		{"nil argument", "data: %@", []any{nil}, "data: (null)"},
		{"missing argument", "data: %@", nil, "data: "},
		{"index past end", "Hello %@3", []any{"John", "Smith"}, "Hello "},
		{"index zero", "[%@0]", []any{"John"}, "[]"},
		{"index overflow", "[%@99999999999999999999]", []any{"John"}, "[]"},
		{"integer", "count: %@", []any{42}, "count: 42"},
		{"bool", "ok=%@", []any{true}, "ok=true"},
		{"stringer", "at %@", []any{point{1, 2}}, "at (1,2)"},
		{"leading zero index", "%@01", []any{"first"}, "first"},
		{"adjacent tokens", "%@%@", []any{"a", "b"}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.template, tt.args...); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.template, tt.args, got, tt.want)
			}
		})
	}
}

// TestFormat_DegradesGracefully checks that missing and nil arguments are
// rendered as placeholders instead of failing.
func TestFormat_DegradesGracefully(t *testing.T) {
	got := Format("%@ %@ %@", "a", nil)
	if got != "a (null) " {
		t.Errorf("Format = %q, want %q", got, "a (null) ")
	}
}

func TestFormat_TypedNil(t *testing.T) {
	var (
		ptr    *int
		m      map[string]int
		slice  []string
		fn     func()
		ch     chan int
		stamp  *point
		zeroPt point
	)
	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"nil pointer", ptr, "(null)"},
		{"nil map", m, "(null)"},
		{"nil slice", slice, "(null)"},
		{"nil func", fn, "(null)"},
		{"nil chan", ch, "(null)"},
		{"nil stringer pointer", stamp, "(null)"},
		{"zero struct", zeroPt, "(0,0)"},
		{"empty string", "", ""},
		{"zero int", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format("[%@]", tt.arg); got != "["+tt.want+"]" {
				t.Errorf("Format(%#v) = %q, want %q", tt.arg, got, "["+tt.want+"]")
			}
		})
	}
}

func TestLoc(t *testing.T) {
	table := NewTable(map[string]string{
		"greeting": "Hello %@",
		"empty":    "",
		"swap":     "%@2, %@1",
	})

	tests := []struct {
		name   string
		lookup Lookup
		key    string
		args   []any
		want   string
	}{
		{"found", table, "greeting", []any{"John"}, "Hello John"},
		{"absent falls back to key", table, "Goodbye %@", []any{"John"}, "Goodbye John"},
		{"empty value falls back to key", table, "empty", nil, "empty"},
		{"explicit order", table, "swap", []any{"John", "Smith"}, "Smith, John"},
		{"nil lookup", nil, "raw %@", []any{1}, "raw 1"},
		{"lookup func", LookupFunc(func(key string) (string, bool) {
			return "<" + key + ">", true
		}), "k", nil, "<k>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Loc(tt.lookup, tt.key, tt.args...); got != tt.want {
				t.Errorf("Loc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
