// Package errors provides standardized error handling for the conversion
// engine.
//
// # Overview
//
// Two error kinds dominate conversion failures:
//
//   - UnsupportedError: an object or feature kind the engine cannot yet
//     convert in a given direction. Raised per kind, never as a blanket
//     "unsupported document" error, so callers know exactly which branch
//     failed.
//   - StructuralError: a broken assumption the converter depends on, such
//     as a bookkeeping property holding other than exactly one value or a
//     type cardinality the target schema cannot represent.
//
// Both kinds are fatal to the conversion of the enclosing document. The
// engine is a pure, deterministic transformation, so no error it raises
// is retryable; retry and backoff belong to external collaborators.
//
// # Classification
//
// Classification uses errors.As through arbitrary wrapping chains:
//
//	if err := convert.ToSBOL2(doc3, opts); err != nil {
//	    if errors.IsUnsupported(err) {
//	        // the document uses a construct this version cannot backport
//	    }
//	    if errors.IsStructural(err) {
//	        // the document is malformed; do not retry
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// applied via Wrap. This keeps log lines parseable and preserves the
// classification of the underlying error through the chain.
package errors
