package inflect

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Go's \s and . differ from the identifier rules these transforms follow:
// whitespace includes the Unicode space separators and BOM, and a wildcard
// never matches a line terminator.
const (
	spaceChars = `\t\n\x0B\f\r \x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`
	anyChar    = `[^\n\r\x{2028}\x{2029}]`
	sepChars   = `\-_.` + spaceChars
)

var (
	decamelizeRE = regexp.MustCompile(`([a-z\d])([A-Z])`)
	dasherizeRE  = regexp.MustCompile(`[ _]+`)

	camelizeSepRE   = regexp.MustCompile(`[` + sepChars + `]+(` + anyChar + `)?`)
	camelizeFirstRE = regexp.MustCompile(`(^|/)([A-Z])`)

	classifyLeadRE  = regexp.MustCompile(`^[\-_]+(` + anyChar + `)?`)
	classifySepRE   = regexp.MustCompile(`(` + anyChar + `)[` + sepChars + `]+(` + anyChar + `)?`)
	classifyFirstRE = regexp.MustCompile(`(^|/|\.)([a-z])`)

	underscoreCaseRE = regexp.MustCompile(`([a-z\d])([A-Z]+)`)
	underscoreSepRE  = regexp.MustCompile(`-|[` + spaceChars + `]+`)

	capitalizeRE = regexp.MustCompile(`(^|/)([a-z\x{C0}-\x{24F}])`)

	wordsRE = regexp.MustCompile(`[` + spaceChars + `]+`)
)

// Casers hold state and are not safe for concurrent use, so each call
// builds its own. Transforms only run on cache misses.
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func decamelize(s string) string {
	return lower(decamelizeRE.ReplaceAllString(s, "${1}_${2}"))
}

func dasherize(s string) string {
	return dasherizeRE.ReplaceAllString(decamelize(s), "-")
}

func camelize(s string) string {
	s = replaceSubmatches(camelizeSepRE, s, func(g []string) string {
		return upper(g[1])
	})
	return replaceSubmatches(camelizeFirstRE, s, func(g []string) string {
		return lower(g[0])
	})
}

func classify(s string) string {
	parts := strings.Split(s, "/")
	for i, part := range parts {
		part = replaceSubmatches(classifyLeadRE, part, func(g []string) string {
			if g[1] == "" {
				return ""
			}
			return "_" + upper(g[1])
		})
		parts[i] = replaceSubmatches(classifySepRE, part, func(g []string) string {
			return g[1] + upper(g[2])
		})
	}
	return replaceSubmatches(classifyFirstRE, strings.Join(parts, "/"), func(g []string) string {
		return upper(g[0])
	})
}

func underscore(s string) string {
	s = underscoreCaseRE.ReplaceAllString(s, "${1}_${2}")
	return lower(underscoreSepRE.ReplaceAllString(s, "_"))
}

func capitalize(s string) string {
	return replaceSubmatches(capitalizeRE, s, func(g []string) string {
		return upper(g[0])
	})
}

// replaceSubmatches replaces every match of re in s with repl(groups), where
// groups[0] is the whole match and unmatched optional groups are empty.
func replaceSubmatches(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	groups := make([]string, re.NumSubexp()+1)
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		for i := range groups {
			groups[i] = ""
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
