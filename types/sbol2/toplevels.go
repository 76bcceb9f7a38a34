package sbol2

// ComponentDefinition describes a biological design entity: a stretch of
// DNA, an RNA, a protein, a small molecule, or a complex.
type ComponentDefinition struct {
	TopLevel

	// Types holds biochemical entity class terms (BioPAX vocabulary for
	// the common cases, arbitrary ontology terms otherwise).
	Types []string
	// Roles holds functional role terms (promoter, CDS, ...).
	Roles []string
	// Sequences references Sequence objects by identity.
	Sequences []string

	// Components are the nested sub-instances of other definitions.
	Components []*Component

	// SequenceAnnotations and SequenceConstraints are carried by the
	// model but not yet convertible to SBOL3.
	SequenceAnnotations []*SequenceAnnotation
	SequenceConstraints []*SequenceConstraint
}

// Component is a sub-instance nested inside a ComponentDefinition,
// referencing another definition as its instantiated type. Its identity
// is caller-meaningful: other parts of the graph point at it directly.
type Component struct {
	Identified

	// Definition is the identity of the instantiated ComponentDefinition.
	Definition string
	// Roles optionally refine the definition's roles for this instance.
	Roles []string
	// RoleIntegration states how instance roles combine with definition roles.
	RoleIntegration string
	// SourceLocations restrict the instance to regions of the source sequence.
	SourceLocations []SourceRange
}

// SequenceAnnotation marks a region of a definition's sequence.
// Not yet convertible to SBOL3.
type SequenceAnnotation struct {
	Identified

	Component string
	Roles     []string
}

// SequenceConstraint asserts an ordering relation between two sub-instances.
// Not yet convertible to SBOL3.
type SequenceConstraint struct {
	Identified

	Restriction string
	Subject     string
	Object      string
}

// Sequence holds the elements of a molecular sequence in a declared
// notation.
type Sequence struct {
	TopLevel

	// Elements is the sequence body, e.g. "acgt".
	Elements string
	// Encoding identifies the notation the elements use.
	Encoding string
}

// Collection groups other top-level objects by reference.
type Collection struct {
	TopLevel

	// Members references the collected objects by identity.
	Members []string
}

// Activity is a provenance record of a process that produced or used
// other objects. SBOL2 activities declare at most one process type.
type Activity struct {
	TopLevel

	// Type is the single declared process type, empty when undeclared.
	Type string

	StartedAtTime string
	EndedAtTime   string

	Usages       []*Usage
	Associations []*Association
}

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

	// Built references the ComponentDefinition realized by the build.
	Built string
}

// ModuleDefinition describes a functional module. Not yet convertible to
// SBOL3.
type ModuleDefinition struct {
	TopLevel

	Roles []string
}

// Model references an external computational model. Not yet convertible
// to SBOL3.
type Model struct {
	TopLevel

	Source    string
	Language  string
	Framework string
}

// Plan is a provenance record of the protocol an activity followed.
// Not yet convertible to SBOL3.
type Plan struct {
	TopLevel
}

// Agent is a provenance record of the person or software that ran an
// activity. Not yet convertible to SBOL3.
type Agent struct {
	TopLevel
}

// Attachment references an external file attached to a top-level object.
// Not yet convertible to SBOL3.
type Attachment struct {
	TopLevel

	Source string
	Format string
}

// CombinatorialDerivation describes a combinatorial design space.
// Not yet convertible to SBOL3.
type CombinatorialDerivation struct {
	TopLevel

	Template string
	Strategy string
}

// Experiment groups experimental data records. Not yet convertible to
// SBOL3.
type Experiment struct {
	TopLevel

	ExperimentalData []string
}

// ExperimentalData is a record of measured data. Not yet convertible to
// SBOL3.
type ExperimentalData struct {
	TopLevel
}
