package locale

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	if err := c.Register(language.English, NewTable(map[string]string{
		"greeting": "Hello %@",
	})); err != nil {
		t.Fatalf("register en: %v", err)
	}
	if err := c.Register(language.German, NewTable(map[string]string{
		"greeting": "Hallo %@",
	})); err != nil {
		t.Fatalf("register de: %v", err)
	}
	return c
}

func TestCatalog_Register(t *testing.T) {
	c := newTestCatalog(t)

	err := c.Register(language.English, NewTable(nil))
	if !errors.Is(err, ErrDuplicateLanguage) {
		t.Errorf("expected ErrDuplicateLanguage, got %v", err)
	}

	if err := c.Register(language.French, nil); !errors.Is(err, ErrNilLookup) {
		t.Errorf("expected ErrNilLookup, got %v", err)
	}

	langs := c.Languages()
	if len(langs) != 2 || langs[0] != language.English || langs[1] != language.German {
		t.Errorf("Languages = %v, want [en de]", langs)
	}
}

func TestCatalog_Localizer(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name    string
		prefs   []language.Tag
		wantTag language.Tag
		want    string
	}{
		{"exact", []language.Tag{language.German}, language.German, "Hallo John"},
		{"regional variant", []language.Tag{language.MustParse("de-CH")}, language.German, "Hallo John"},
		{"second preference", []language.Tag{language.Japanese, language.German}, language.German, "Hallo John"},
		{"no match falls back", []language.Tag{language.Japanese}, language.English, "Hello John"},
		{"no preference", nil, language.English, "Hello John"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := c.Localizer(tt.prefs...)
			if l.Tag() != tt.wantTag {
				t.Errorf("Tag = %v, want %v", l.Tag(), tt.wantTag)
			}
			if got := l.Loc("greeting", "John"); got != tt.want {
				t.Errorf("Loc = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalog_EmptyLocalizer(t *testing.T) {
	l := NewCatalog().Localizer(language.English)

	if l.Tag() != language.Und {
		t.Errorf("Tag = %v, want und", l.Tag())
	}
	if got := l.Loc("Hi %@", nil); got != "Hi (null)" {
		t.Errorf("Loc = %q, want %q", got, "Hi (null)")
	}
}
