package sbol3

import "github.com/c360/sbolconvert/vocabulary"

// Sequence holds the elements of a molecular sequence in a declared
// notation.
type Sequence struct {
	TopLevel

	// Elements is the sequence body, e.g. "acgt".
	Elements string
	// Encoding identifies the notation the elements use.
	Encoding string
}

// Base returns the shared top-level attribute layer.
func (s *Sequence) Base() *TopLevel { return &s.TopLevel }

// TypeIRI returns the Sequence class IRI.
func (s *Sequence) TypeIRI() string { return vocabulary.SBOL3Sequence }

// Collection groups other top-level objects by reference.
type Collection struct {
	TopLevel

	// Members references the collected objects by identity.
	Members []string
}

// Base returns the shared top-level attribute layer.
func (c *Collection) Base() *TopLevel { return &c.TopLevel }

// TypeIRI returns the Collection class IRI.
func (c *Collection) TypeIRI() string { return vocabulary.SBOL3Collection }

// Activity is a provenance record of a process that produced or used
// other objects. Unlike SBOL2, SBOL3 activities may declare any number of
// process types.
type Activity struct {
	TopLevel

	Types []string

	StartTime string
	EndTime   string

	Usage       []*Usage
	Association []*Association
}

// Base returns the shared top-level attribute layer.
func (a *Activity) Base() *TopLevel { return &a.TopLevel }

// TypeIRI returns the prov:Activity class IRI.
func (a *Activity) TypeIRI() string { return vocabulary.ProvActivity }

// Usage links an Activity to an entity it consumed.
type Usage struct {
	Identified

	Entity string
	Roles  []string
}

// Association links an Activity to the agent that ran it.
type Association struct {
	Identified

	Agent string
	Plan  string
	Roles []string
}

// Implementation is a record of a physical build of a design.
type Implementation struct {
	TopLevel

	// Built references the Component realized by the build.
	Built string
}

// Base returns the shared top-level attribute layer.
func (i *Implementation) Base() *TopLevel { return &i.TopLevel }

// TypeIRI returns the Implementation class IRI.
func (i *Implementation) TypeIRI() string { return vocabulary.SBOL3Implementation }

// Agent is a provenance record of the person or software that ran an
// activity. Not yet convertible to SBOL2.
type Agent struct {
	TopLevel
}

// Base returns the shared top-level attribute layer.
func (a *Agent) Base() *TopLevel { return &a.TopLevel }

// TypeIRI returns the prov:Agent class IRI.
func (a *Agent) TypeIRI() string { return vocabulary.ProvAgent }

// Plan is a provenance record of the protocol an activity followed.
// Not yet convertible to SBOL2.
type Plan struct {
	TopLevel
}

// Base returns the shared top-level attribute layer.
func (p *Plan) Base() *TopLevel { return &p.TopLevel }

// TypeIRI returns the prov:Plan class IRI.
func (p *Plan) TypeIRI() string { return vocabulary.ProvPlan }

// Attachment references an external file attached to a top-level object.
// Not yet convertible to SBOL2.
type Attachment struct {
	TopLevel

	Source string
	Format string
}

// Base returns the shared top-level attribute layer.
func (a *Attachment) Base() *TopLevel { return &a.TopLevel }

// TypeIRI returns the Attachment class IRI.
func (a *Attachment) TypeIRI() string { return vocabulary.SBOL3Attachment }

// CombinatorialDerivation describes a combinatorial design space.
// Not yet convertible to SBOL2.
type CombinatorialDerivation struct {
	TopLevel

	Template string
	Strategy string
}

// Base returns the shared top-level attribute layer.
func (c *CombinatorialDerivation) Base() *TopLevel { return &c.TopLevel }

// TypeIRI returns the CombinatorialDerivation class IRI.
func (c *CombinatorialDerivation) TypeIRI() string { return vocabulary.SBOL3CombinatorialDeriv }

// Experiment groups experimental data records. Not yet convertible to
// SBOL2.
type Experiment struct {
	TopLevel

	Members []string
}

// Base returns the shared top-level attribute layer.
func (e *Experiment) Base() *TopLevel { return &e.TopLevel }

// TypeIRI returns the Experiment class IRI.
func (e *Experiment) TypeIRI() string { return vocabulary.SBOL3Experiment }

// ExperimentalData is a record of measured data. Not yet convertible to
// SBOL2.
type ExperimentalData struct {
	TopLevel
}

// Base returns the shared top-level attribute layer.
func (e *ExperimentalData) Base() *TopLevel { return &e.TopLevel }

// TypeIRI returns the ExperimentalData class IRI.
func (e *ExperimentalData) TypeIRI() string { return vocabulary.SBOL3ExperimentalData }

// Model references an external computational model. Not yet convertible
// to SBOL2.
type Model struct {
	TopLevel

	Source    string
	Language  string
	Framework string
}

// Base returns the shared top-level attribute layer.
func (m *Model) Base() *TopLevel { return &m.TopLevel }

// TypeIRI returns the Model class IRI.
func (m *Model) TypeIRI() string { return vocabulary.SBOL3Model }
