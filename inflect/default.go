package inflect

// Default is the process-wide Inflector behind the package-level functions.
var Default = New()

// Decamelize calls Default.Decamelize.
func Decamelize(s string) string { return Default.Decamelize(s) }

// Dasherize calls Default.Dasherize.
func Dasherize(s string) string { return Default.Dasherize(s) }

// Camelize calls Default.Camelize.
func Camelize(s string) string { return Default.Camelize(s) }

// Classify calls Default.Classify.
func Classify(s string) string { return Default.Classify(s) }

// Underscore calls Default.Underscore.
func Underscore(s string) string { return Default.Underscore(s) }

// Capitalize calls Default.Capitalize.
func Capitalize(s string) string { return Default.Capitalize(s) }

// W splits s on runs of whitespace and drops empty fragments.
//
//	W("alpha  beta gamma") -> ["alpha" "beta" "gamma"]
func W(s string) []string {
	fields := wordsRE.Split(s, -1)
	words := fields[:0]
	for _, f := range fields {
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}
