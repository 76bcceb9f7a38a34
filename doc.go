// Package sbolconvert provides bidirectional conversion between SBOL2 and
// SBOL3 documents, two generations of the Synthetic Biology Open Language
// that share an ontology but diverge in object shape, type vocabularies,
// encoding vocabularies, and identity-assignment rules.
//
// # Architecture
//
// The module is organized as a small set of flat packages:
//
//	┌─────────────────────────────────────┐
//	│            convert                  │  Forward/reverse visitors,
//	│  (ToSBOL2, ToSBOL3, remap pass)     │  namespace + identity logic
//	└─────────────────────────────────────┘
//	           ↓ traverses
//	┌─────────────────────────────────────┐
//	│      types/sbol2, types/sbol3       │  In-memory document models,
//	│   (documents, top-levels, features) │  N-Triples codec
//	└─────────────────────────────────────┘
//	           ↓ shared terms from
//	┌─────────────────────────────────────┐
//	│           vocabulary                │  Namespace IRIs, remap
//	│    (namespaces, remap tables)       │  tables, bookkeeping terms
//	└─────────────────────────────────────┘
//
// The convert package is the public entry point:
//
//	doc2, err := convert.ToSBOL2(doc3, config.Default())
//	doc3, err := convert.ToSBOL3(doc2, opts)
//
// # Conversion Model
//
// Each direction is a single-dispatch visitor over the kinds of top-level
// object a document can own. Supported kinds (Collection, Component,
// Sequence, Activity, Implementation) are converted structurally; type and
// encoding vocabulary terms are translated through fixed bidirectional
// remap tables; every property neither schema understands natively is
// carried through verbatim as an extension property so that a round trip
// is lossless.
//
// Two converter-private bookkeeping properties, recorded under
// http://sboltools.org/backport#, make round trips exact: the SBOL2
// version string survives a trip through SBOL3, and the SBOL3 namespace
// survives a trip through SBOL2 even when it is not a prefix of the
// object's identity.
//
// Kinds not yet convertible in a given direction fail loudly with a
// per-kind errors.UnsupportedError; broken structural assumptions (for
// example an Activity with more than one process type, which SBOL2
// cannot represent) fail with errors.StructuralError. The engine never
// silently drops or truncates data.
//
// # Concurrency
//
// A conversion is one synchronous, deterministic call with no shared
// mutable state between invocations; independent documents may be
// converted concurrently.
package sbolconvert
