// Package config defines the format-agnostic definition model shared by all
// loaders and consumed by the graph builder.
//
// A definition source, regardless of syntax, boils down to two kinds of
// statements: unit declarations and relation declarations. Each loader
// (textdef, hcl, yamldef) parses its own syntax and emits a Model; the graph
// package never sees a concrete file format. This mirrors the split between
// parsing and semantics: a DefinitionError raised here or by a loader always
// points at the offending statement via its Position.
package config
