// Package sbol3 provides an in-memory object model for SBOL3 documents,
// the current generation of the Synthetic Biology Open Language.
//
// The model covers the shared Identified/TopLevel attribute layer, the
// top-level kinds and Component feature variants the conversion engine
// understands, stub shapes for those it does not, and a generic property
// store for extension annotations. Documents round-trip losslessly
// through the N-Triples codec (Write/Read), which the identity remap
// pass in the convert package depends on.
package sbol3

import (
	"sort"

	"github.com/cayleygraph/quad"
)

// Identified is the attribute layer shared by every SBOL3 object. Identity
// is an absolute URI unique within the owning document.
type Identified struct {
	Identity    string
	DisplayID   string
	Name        string
	Description string

	// DerivedFrom and GeneratedBy are provenance links to other objects,
	// by identity.
	DerivedFrom []string
	GeneratedBy []string

	// Measures attaches OM measurements to the object.
	Measures []Measure

	// Properties holds every property the core schema has no field for:
	// extension annotations and converter bookkeeping, keyed by property
	// URI with ordered values.
	Properties map[string][]quad.Value
}

// SetProperty replaces the values recorded for a property URI.
func (i *Identified) SetProperty(uri string, values ...quad.Value) {
	if i.Properties == nil {
		i.Properties = make(map[string][]quad.Value)
	}
	i.Properties[uri] = values
}

// Property returns the values recorded for a property URI, or nil.
func (i *Identified) Property(uri string) []quad.Value {
	return i.Properties[uri]
}

// PropertyURIs returns the property URIs present on the object, sorted
// for deterministic iteration.
func (i *Identified) PropertyURIs() []string {
	uris := make([]string, 0, len(i.Properties))
	for uri := range i.Properties {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

// Measure is an OM measurement attached to an object. Measures are not
// yet convertible to SBOL2; their presence makes a forward conversion
// fail rather than drop data.
type Measure struct {
	Value float64
	Unit  string
	Types []string
}

// TopLevel is the attribute layer shared by every object a Document owns
// directly.
type TopLevel struct {
	Identified

	// Namespace is the URI prefix under which the object's identity was
	// minted. Every SBOL3 top-level object declares an owning namespace;
	// an empty value defers to the document's default behavior.
	Namespace string

	// Attachments references Attachment objects by identity.
	Attachments []string
}

// Object is implemented by every kind of top-level object a Document can
// own.
type Object interface {
	// Base returns the shared top-level attribute layer.
	Base() *TopLevel
	// TypeIRI returns the rdf:type class IRI for the object's kind.
	TypeIRI() string
}
