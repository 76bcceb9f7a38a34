package sbol3

import (
	"fmt"
	"strings"

	"github.com/c360/sbolconvert/errors"
)

// Document is an SBOL3 document: an unordered collection of top-level
// objects uniquely keyed by identity. Insertion order is retained so that
// serialization and conversion traversal are deterministic.
type Document struct {
	objects    []Object
	byIdentity map[string]Object
}

// NewDocument creates an empty SBOL3 document.
func NewDocument() *Document {
	return &Document{byIdentity: make(map[string]Object)}
}

// Add adds a top-level object to the document. Identities must be
// non-empty absolute URIs and unique within the document.
func (d *Document) Add(obj Object) error {
	identity := obj.Base().Identity
	if identity == "" {
		return errors.ErrMissingIdentity
	}
	if !strings.Contains(identity, "://") {
		return errors.WrapStructural(errors.ErrInvalidIdentity, identity, "identity is not an absolute URI")
	}
	if d.byIdentity == nil {
		d.byIdentity = make(map[string]Object)
	}
	if _, exists := d.byIdentity[identity]; exists {
		return errors.WrapStructural(errors.ErrDuplicateIdentity, identity, "identity already present in document")
	}
	d.byIdentity[identity] = obj
	d.objects = append(d.objects, obj)
	return nil
}

// Objects returns the document's top-level objects in insertion order.
func (d *Document) Objects() []Object {
	return d.objects
}

// Find returns the top-level object with the given identity, or nil.
func (d *Document) Find(identity string) Object {
	return d.byIdentity[identity]
}

// Len returns the number of top-level objects in the document.
func (d *Document) Len() int {
	return len(d.objects)
}

// Validate checks document-level structural invariants and returns one
// error per violation. A nil result means the document is clean.
func (d *Document) Validate() []error {
	var report []error
	for _, obj := range d.objects {
		tl := obj.Base()
		if tl.Identity == "" {
			report = append(report, errors.ErrMissingIdentity)
			continue
		}
		if !strings.Contains(tl.Identity, "://") {
			report = append(report, errors.NewStructural(tl.Identity, "identity is not an absolute URI"))
		}
		if comp, ok := obj.(*Component); ok {
			report = append(report, validateFeatures(comp)...)
		}
	}
	return report
}

func validateFeatures(comp *Component) []error {
	var report []error
	seen := make(map[string]struct{}, len(comp.Features))
	for _, f := range comp.Features {
		base := f.Base()
		if base.Identity == "" {
			report = append(report, errors.NewStructural(comp.Identity, "feature has no identity"))
			continue
		}
		if _, dup := seen[base.Identity]; dup {
			report = append(report, errors.NewStructural(base.Identity,
				fmt.Sprintf("duplicate feature identity within %s", comp.Identity)))
		}
		seen[base.Identity] = struct{}{}
		if sub, ok := f.(*SubComponent); ok && sub.InstanceOf == "" {
			report = append(report, errors.NewStructural(base.Identity, "sub-component has no instanceOf reference"))
		}
	}
	return report
}
