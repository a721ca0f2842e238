// Package gen derives tuid.Kind implementations from a declarative YAML
// manifest describing closed kind enumerations. It runs at build time,
// never at run time: the emitted source assigns each member a positional
// tag and an acronym-aware default name, and the manifest shape is
// exhaustively validated before anything is written – no partial
// descriptor is ever emitted.
package gen
