// Package locale formats and localizes template strings.
//
// Format substitutes positional ("%@") and explicitly indexed ("%@2")
// tokens. Loc first resolves a key through a Lookup, the externally owned
// string registry, falling back to the key itself:
//
//	strings := locale.NewTable(map[string]string{
//	    "greeting": "Hello %@",
//	})
//	locale.Loc(strings, "greeting", "John") // "Hello John"
//
// Tables can be loaded from YAML with LoadYAML, and a Catalog selects the
// best table for a list of preferred languages.
//
// Formatting never fails: nil arguments render as "(null)" and missing
// arguments render as the empty string.
package locale
