// Package sbol2 provides an in-memory object model for SBOL2 documents,
// the legacy generation of the Synthetic Biology Open Language.
//
// The model covers the shared Identified/TopLevel attribute layer, the
// top-level kinds the conversion engine understands structurally, stub
// shapes for the kinds it does not, and a generic property store that
// carries every annotation the core schema has no field for. Documents
// are persist-able to N-Triples via Write.
package sbol2

import (
	"sort"

	"github.com/cayleygraph/quad"
)

// Identified is the attribute layer shared by every SBOL2 object, whether
// top-level or nested. Identity is an absolute URI unique within the
// owning document.
type Identified struct {
	Identity    string
	DisplayID   string
	Version     string
	Name        string
	Description string

	// WasDerivedFrom and WasGeneratedBy are provenance links to other
	// objects, by identity.
	WasDerivedFrom []string
	WasGeneratedBy []string

	// Properties is the generic property store: property URI to ordered
	// values. SBOL2 expresses titles, descriptions and every extension
	// annotation through this mechanism.
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

// TopLevel is the attribute layer shared by every object a Document owns
// directly.
type TopLevel struct {
	Identified

	// Attachments references Attachment objects by identity.
	Attachments []string
}

// SourceRange is a region of a referenced sequence, used by sub-instance
// source locations.
type SourceRange struct {
	Start       int
	End         int
	Orientation string
}
