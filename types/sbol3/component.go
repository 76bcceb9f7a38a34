package sbol3

import (
	"fmt"
	"strings"

	"github.com/c360/sbolconvert/vocabulary"
)

// Component describes a biological design entity: a stretch of DNA, an
// RNA, a protein, a small molecule, or a complex, together with its
// nested features.
type Component struct {
	TopLevel

	// Types holds biochemical entity class terms (SBO vocabulary for the
	// common cases, arbitrary ontology terms otherwise).
	Types []string
	// Roles holds functional role terms (promoter, CDS, ...).
	Roles []string
	// Sequences references Sequence objects by identity.
	Sequences []string

	// Features are the nested sub-objects. Append through AddFeature so
	// identities are assigned; features appended directly are assumed to
	// carry a valid nested identity already.
	Features []Feature

	// Interactions, Constraints, Interface and Models are carried by the
	// model but not yet convertible to SBOL2.
	Interactions []*Interaction
	Constraints  []*Constraint
	Interface    *Interface
	Models       []string

	featureSeq map[string]int
}

// Base returns the shared top-level attribute layer.
func (c *Component) Base() *TopLevel { return &c.TopLevel }

// TypeIRI returns the Component class IRI.
func (c *Component) TypeIRI() string { return vocabulary.SBOL3Component }

// AddFeature appends a feature and assigns its identity, nested under the
// parent's identity with a per-variant counter: <parent>/SubComponent1,
// <parent>/SubComponent2, and so on. The assignment happens at
// construction time and cannot be overridden; callers needing a feature
// to carry an externally meaningful identity must remap it afterward
// (see the convert package's identity remap pass).
func (c *Component) AddFeature(f Feature) Feature {
	kind := strings.TrimPrefix(f.TypeIRI(), vocabulary.SBOL3NS)
	if c.featureSeq == nil {
		c.featureSeq = make(map[string]int)
	}
	c.featureSeq[kind]++

	base := f.Base()
	base.DisplayID = fmt.Sprintf("%s%d", kind, c.featureSeq[kind])
	base.Identity = c.Identity + "/" + base.DisplayID
	c.Features = append(c.Features, f)
	return f
}

// Interaction describes a functional relationship among features.
// Not yet convertible to SBOL2.
type Interaction struct {
	Identified

	Types          []string
	Participations []*Participation
}

// Participation names a feature's role within an Interaction.
type Participation struct {
	Identified

	Roles       []string
	Participant string
}

// Constraint asserts a structural relation between two features.
// Not yet convertible to SBOL2.
type Constraint struct {
	Identified

	Restriction string
	Subject     string
	Object      string
}

// Interface declares a Component's input/output features.
// Not yet convertible to SBOL2.
type Interface struct {
	Identified

	Inputs  []string
	Outputs []string
}
