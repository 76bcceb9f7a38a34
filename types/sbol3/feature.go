package sbol3

import "github.com/c360/sbolconvert/vocabulary"

// Feature is a sub-object of a Component describing a part, reference, or
// constraint nested within it. Features are owned exclusively by their
// parent Component; identities are assigned by Component.AddFeature,
// nested under the parent's identity.
type Feature interface {
	// Base returns the shared feature attribute layer.
	Base() *FeatureBase
	// TypeIRI returns the rdf:type class IRI for the feature variant.
	TypeIRI() string
}

// FeatureBase is the attribute layer shared by all feature variants.
type FeatureBase struct {
	Identified

	Roles       []string
	Orientation string
}

// Base returns the shared feature attribute layer.
func (f *FeatureBase) Base() *FeatureBase { return f }

// SourceRange is a region of a referenced sequence, used by sub-component
// source locations.
type SourceRange struct {
	Start       int
	End         int
	Orientation string
}

// SubComponent is a structural sub-instance of another Component.
type SubComponent struct {
	FeatureBase

	// InstanceOf is the identity of the instantiated Component. Other
	// parts of the graph point at the SubComponent through this relation,
	// which is why the identity remap pass is scoped to it.
	InstanceOf string
	// RoleIntegration states how instance roles combine with the
	// definition's roles.
	RoleIntegration string
	// SourceLocations restrict the instance to regions of the source
	// sequence.
	SourceLocations []SourceRange
}

// TypeIRI returns the SubComponent class IRI.
func (f *SubComponent) TypeIRI() string { return vocabulary.SBOL3SubComponent }

// ComponentReference refers to a feature nested inside another
// sub-component. Not yet convertible to SBOL2.
type ComponentReference struct {
	FeatureBase

	InChildOf string
	RefersTo  string
}

// TypeIRI returns the ComponentReference class IRI.
func (f *ComponentReference) TypeIRI() string { return vocabulary.SBOL3ComponentReference }

// LocalSubComponent is a locally defined part with no external
// definition. Not yet convertible to SBOL2.
type LocalSubComponent struct {
	FeatureBase

	Types []string
}

// TypeIRI returns the LocalSubComponent class IRI.
func (f *LocalSubComponent) TypeIRI() string { return vocabulary.SBOL3LocalSubComponent }

// ExternallyDefined is a feature defined by reference to an external
// ontology term. Not yet convertible to SBOL2.
type ExternallyDefined struct {
	FeatureBase

	Types      []string
	Definition string
}

// TypeIRI returns the ExternallyDefined class IRI.
func (f *ExternallyDefined) TypeIRI() string { return vocabulary.SBOL3ExternallyDefined }

// SequenceFeature marks a region of the parent's sequence. Not yet
// convertible to SBOL2.
type SequenceFeature struct {
	FeatureBase

	Locations []Location
}

// TypeIRI returns the SequenceFeature class IRI.
func (f *SequenceFeature) TypeIRI() string { return vocabulary.SBOL3SequenceFeature }

// VariableFeature describes a variable position in a combinatorial
// design. Not yet convertible to SBOL2.
type VariableFeature struct {
	FeatureBase

	Cardinality string
	Variable    string
}

// TypeIRI returns the VariableFeature class IRI.
func (f *VariableFeature) TypeIRI() string { return vocabulary.SBOL3VariableFeature }

// Location is a region specifier owned by a SequenceFeature.
type Location interface {
	// TypeIRI returns the rdf:type class IRI for the location variant.
	TypeIRI() string
}

// Range is a start/end region of a sequence.
type Range struct {
	Start       int
	End         int
	Orientation string
}

// TypeIRI returns the Range class IRI.
func (l *Range) TypeIRI() string { return vocabulary.SBOL3RangeLocation }

// Cut is a zero-length position between two residues.
type Cut struct {
	At          int
	Orientation string
}

// TypeIRI returns the Cut class IRI.
func (l *Cut) TypeIRI() string { return vocabulary.SBOL3CutLocation }

// EntireSequence designates the whole of the referenced sequence.
type EntireSequence struct {
	Orientation string
}

// TypeIRI returns the EntireSequence class IRI.
func (l *EntireSequence) TypeIRI() string { return vocabulary.SBOL3EntireSequenceLocation }
