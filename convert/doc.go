// Package convert translates biological design documents between the
// SBOL2 and SBOL3 generations of the Synthetic Biology Open Language, in
// both directions, without losing information either schema cannot
// express natively.
//
// Each direction walks the source document with a per-kind visitor and
// builds a fresh target document. Attributes both schemas share map
// field to field; vocabulary terms that differ between the generations
// (biochemical entity types, sequence encodings) translate through the
// remap tables in the vocabulary package; everything the target schema
// has no field for rides along verbatim as extension properties.
//
// Two bookkeeping properties make round trips lossless. An SBOL2
// version string survives a trip through SBOL3 as the backport version
// property, and an SBOL3 namespace survives a trip through SBOL2 as the
// backport namespace property. A document converted there and back
// compares equal to the original, extension properties byte for byte.
//
// Conversions never mutate their input and fail loudly: a construct the
// engine cannot yet translate produces an UnsupportedError naming it,
// and a malformed document produces a StructuralError, rather than
// silently dropping data.
package convert
