// Package generate produces Go source from *.go.tpl templates by literal
// string substitution. Occurrences of "ZZ" are replaced with a prefix,
// occurrences of "PACKAGE" with a package name, and each user supplied
// from=to define is applied afterwards in the order given.
//
// The Generator type holds the run configuration and writes the result
// via the Generate method, which prepends a "DO NOT EDIT" banner that
// records the invocation.
package generate
