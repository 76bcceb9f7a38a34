// Package errors provides standardized error handling for the conversion
// engine. It defines the two error kinds the engine raises, classification
// helpers, and consistent error wrapping across packages.
package errors

import (
	"errors"
	"fmt"
)

// Direction identifies which way a conversion was running when an error
// was raised.
type Direction int

const (
	// DirectionUnknown is the zero value; errors should carry a real direction.
	DirectionUnknown Direction = iota
	// SBOL3ToSBOL2 is the forward conversion, current schema to legacy.
	SBOL3ToSBOL2
	// SBOL2ToSBOL3 is the reverse conversion, legacy schema to current.
	SBOL2ToSBOL3
)

// String returns the string representation of Direction.
func (d Direction) String() string {
	switch d {
	case SBOL3ToSBOL2:
		return "SBOL3 to SBOL2"
	case SBOL2ToSBOL3:
		return "SBOL2 to SBOL3"
	default:
		return "unknown direction"
	}
}

// Standard error variables for common document-model conditions
var (
	// Document construction errors
	ErrDuplicateIdentity = errors.New("duplicate identity in document")
	ErrMissingIdentity   = errors.New("object identity cannot be empty")
	ErrInvalidIdentity   = errors.New("object identity must be an absolute URI")

	// Serialization errors
	ErrMalformedTriples = errors.New("malformed triple serialization")
)

// UnsupportedError reports that a document carries an object or feature
// kind the engine cannot yet convert in the given direction. It is always
// fatal to the conversion of the enclosing document; no partial document
// is returned unless the caller explicitly skips the branch.
type UnsupportedError struct {
	// Construct names the object or feature kind, e.g. "Interaction".
	Construct string
	// Object is the identity of the offending object, if known.
	Object string
	// Direction is the conversion direction that cannot handle it.
	Direction Direction
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("conversion of %s %s from %s not yet implemented", e.Construct, e.Object, e.Direction)
	}
	return fmt.Sprintf("conversion of %s from %s not yet implemented", e.Construct, e.Direction)
}

// NewUnsupported creates an UnsupportedError for the named construct.
func NewUnsupported(construct string, direction Direction) *UnsupportedError {
	return &UnsupportedError{Construct: construct, Direction: direction}
}

// NewUnsupportedObject creates an UnsupportedError naming the offending
// object's identity.
func NewUnsupportedObject(construct, object string, direction Direction) *UnsupportedError {
	return &UnsupportedError{Construct: construct, Object: object, Direction: direction}
}

// IsUnsupported checks whether an error, anywhere in its chain, is an
// UnsupportedError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}

// StructuralError reports that an assumption the converter depends on is
// broken: a bookkeeping property holding other than exactly one value, a
// type cardinality the target schema cannot represent, or similar. The
// document is malformed from the converter's point of view and the error
// is always fatal.
type StructuralError struct {
	// Object is the identity of the offending object, if known.
	Object string
	// Reason describes the broken assumption.
	Reason string
	// Err is an optional underlying cause.
	Err error
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("structural violation in %s: %s", e.Object, e.Reason)
	}
	return fmt.Sprintf("structural violation: %s", e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *StructuralError) Unwrap() error {
	return e.Err
}

// NewStructural creates a StructuralError for the given object identity.
func NewStructural(object, reason string) *StructuralError {
	return &StructuralError{Object: object, Reason: reason}
}

// WrapStructural wraps an underlying error as a StructuralError.
func WrapStructural(err error, object, reason string) *StructuralError {
	return &StructuralError{Object: object, Reason: reason, Err: err}
}

// IsStructural checks whether an error, anywhere in its chain, is a
// StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Re-exported so callers don't need a second errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
// Re-exported so callers don't need a second errors import.
func New(text string) error {
	return errors.New(text)
}
