// Package inflect provides cached string inflections for identifiers.
//
// The six transforms (Decamelize, Dasherize, Camelize, Classify, Underscore,
// Capitalize) are pure functions over strings. Each is backed by its own
// bounded FIFO cache from package cache, owned by an Inflector. Callers that
// want explicit ownership build their own:
//
//	in := inflect.New(inflect.WithCapacity(500))
//	in.Classify("private-docs/owner-invoice") // "PrivateDocs/OwnerInvoice"
//
// The package-level functions share Default, built once at init.
//
// Transforms treat "/" as a path separator: Camelize, Classify and
// Capitalize operate on each segment. Letter case changes use full Unicode
// case mapping via golang.org/x/text/cases.
package inflect
