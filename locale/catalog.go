package locale

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog holds one Lookup per language.
type Catalog struct {
	mu      sync.RWMutex
	lookups map[language.Tag]Lookup
	order   []language.Tag // registration order; the first is the fallback
	matcher language.Matcher
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{lookups: make(map[language.Tag]Lookup)}
}

// Register adds the strings for tag.
func (c *Catalog) Register(tag language.Tag, lookup Lookup) error {
	if lookup == nil {
		return ErrNilLookup
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.lookups[tag]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLanguage, tag)
	}
	c.lookups[tag] = lookup
	c.order = append(c.order, tag)
	c.matcher = language.NewMatcher(c.order)
	return nil
}

// Languages returns the registered languages in registration order.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tags := make([]language.Tag, len(c.order))
	copy(tags, c.order)
	return tags
}

// Localizer returns a Localizer for the registered language that best
// matches prefs. Without a match it uses the first registered language.
func (c *Catalog) Localizer(prefs ...language.Tag) *Localizer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.order) == 0 {
		return NewLocalizer(language.Und, nil)
	}

	idx := 0
	if len(prefs) > 0 {
		_, idx, _ = c.matcher.Match(prefs...)
	}
	tag := c.order[idx]
	return NewLocalizer(tag, c.lookups[tag])
}

// Localizer formats localized strings for a single language.
//
// Arguments are rendered with a golang.org/x/text/message printer, so
// numbers follow the language's conventions.
type Localizer struct {
	tag    language.Tag
	lookup Lookup
}

// NewLocalizer creates a Localizer over lookup. A nil lookup resolves every
// key to itself.
func NewLocalizer(tag language.Tag, lookup Lookup) *Localizer {
	return &Localizer{tag: tag, lookup: lookup}
}

// Tag returns the localizer's language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Loc resolves key and formats it with args. See Format for token rules.
func (l *Localizer) Loc(key string, args ...any) string {
	p := message.NewPrinter(l.tag)
	return format(resolve(l.lookup, key), args, p.Sprint)
}
