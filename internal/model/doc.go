// Package model defines the validated, immutable library model produced by
// the builder package: types, declarations, definitions, and the Library
// aggregate that backend generators walk to emit target-language source.
//
// Nothing in this package mutates after construction. Values here are only
// ever created by internal/builder, which is responsible for enforcing the
// cross-entity invariants (name uniqueness, referential closure, ordering).
package model
