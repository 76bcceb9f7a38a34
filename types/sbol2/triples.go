package sbol2

import (
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/vocabulary"
)

// Triples returns the document as a flat triple set in the fixed bucket
// order, suitable for persistence to any triple store or serialization.
func (d *Document) Triples() []quad.Quad {
	var quads []quad.Quad
	for _, cd := range d.componentDefinitions {
		quads = append(quads, componentDefinitionQuads(cd)...)
	}
	for _, md := range d.moduleDefinitions {
		quads = append(quads, topLevelQuads(&md.TopLevel, vocabulary.SBOL2ModuleDefinition)...)
	}
	for _, m := range d.models {
		quads = append(quads, topLevelQuads(&m.TopLevel, vocabulary.SBOL2Model)...)
	}
	for _, s := range d.sequences {
		quads = append(quads, sequenceQuads(s)...)
	}
	for _, c := range d.collections {
		quads = append(quads, collectionQuads(c)...)
	}
	for _, a := range d.activities {
		quads = append(quads, activityQuads(a)...)
	}
	for _, p := range d.plans {
		quads = append(quads, topLevelQuads(&p.TopLevel, vocabulary.ProvPlan)...)
	}
	for _, a := range d.agents {
		quads = append(quads, topLevelQuads(&a.TopLevel, vocabulary.ProvAgent)...)
	}
	for _, a := range d.attachments {
		quads = append(quads, topLevelQuads(&a.TopLevel, vocabulary.SBOL2Attachment)...)
	}
	for _, cd := range d.combinatorialDerivations {
		quads = append(quads, topLevelQuads(&cd.TopLevel, vocabulary.SBOL2CombinatorialDeriv)...)
	}
	for _, i := range d.implementations {
		quads = append(quads, implementationQuads(i)...)
	}
	for _, e := range d.experiments {
		quads = append(quads, topLevelQuads(&e.TopLevel, vocabulary.SBOL2Experiment)...)
	}
	for _, e := range d.experimentalData {
		quads = append(quads, topLevelQuads(&e.TopLevel, vocabulary.SBOL2ExperimentalData)...)
	}
	return quads
}

// Write serializes the document as N-Triples.
func (d *Document) Write(w io.Writer) error {
	qw := nquads.NewWriter(w)
	for _, q := range d.Triples() {
		if err := qw.WriteQuad(q); err != nil {
			return errors.Wrap(err, "Document", "Write", "triple serialization")
		}
	}
	if err := qw.Close(); err != nil {
		return errors.Wrap(err, "Document", "Write", "writer close")
	}
	return nil
}

func triple(subject, predicate string, object quad.Value) quad.Quad {
	return quad.Quad{
		Subject:   quad.IRI(subject),
		Predicate: quad.IRI(predicate),
		Object:    object,
	}
}

// identifiedQuads serializes the shared Identified attribute layer. Name
// and description are expressed through Dublin Core terms, which is how
// SBOL2's generic annotation mechanism records them; the corresponding
// Properties keys are skipped to avoid emitting them twice.
func identifiedQuads(id *Identified) []quad.Quad {
	s := id.Identity
	var quads []quad.Quad
	if id.DisplayID != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2DisplayID, quad.String(id.DisplayID)))
	}
	if id.Version != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2Version, quad.String(id.Version)))
	}
	if id.Name != "" {
		quads = append(quads, triple(s, vocabulary.DCTermsTitle, quad.String(id.Name)))
	}
	if id.Description != "" {
		quads = append(quads, triple(s, vocabulary.DCTermsDescription, quad.String(id.Description)))
	}
	for _, ref := range id.WasDerivedFrom {
		quads = append(quads, triple(s, vocabulary.ProvWasDerivedFrom, quad.IRI(ref)))
	}
	for _, ref := range id.WasGeneratedBy {
		quads = append(quads, triple(s, vocabulary.ProvWasGeneratedBy, quad.IRI(ref)))
	}
	for _, uri := range id.PropertyURIs() {
		if uri == vocabulary.DCTermsTitle || uri == vocabulary.DCTermsDescription {
			continue
		}
		for _, v := range id.Properties[uri] {
			quads = append(quads, triple(s, uri, v))
		}
	}
	return quads
}

func topLevelQuads(tl *TopLevel, typeIRI string) []quad.Quad {
	quads := []quad.Quad{triple(tl.Identity, vocabulary.RDFType, quad.IRI(typeIRI))}
	quads = append(quads, identifiedQuads(&tl.Identified)...)
	for _, ref := range tl.Attachments {
		quads = append(quads, triple(tl.Identity, vocabulary.SBOL2AttachmentRef, quad.IRI(ref)))
	}
	return quads
}

func componentDefinitionQuads(cd *ComponentDefinition) []quad.Quad {
	s := cd.Identity
	quads := topLevelQuads(&cd.TopLevel, vocabulary.SBOL2ComponentDefinition)
	for _, t := range cd.Types {
		quads = append(quads, triple(s, vocabulary.SBOL2Type, quad.IRI(t)))
	}
	for _, r := range cd.Roles {
		quads = append(quads, triple(s, vocabulary.SBOL2Role, quad.IRI(r)))
	}
	for _, ref := range cd.Sequences {
		quads = append(quads, triple(s, vocabulary.SBOL2SequenceRef, quad.IRI(ref)))
	}
	for _, c := range cd.Components {
		quads = append(quads, triple(s, vocabulary.SBOL2ComponentRef, quad.IRI(c.Identity)))
		quads = append(quads, componentQuads(c)...)
	}
	return quads
}

func componentQuads(c *Component) []quad.Quad {
	s := c.Identity
	quads := []quad.Quad{triple(s, vocabulary.RDFType, quad.IRI(vocabulary.SBOL2Component))}
	quads = append(quads, identifiedQuads(&c.Identified)...)
	if c.Definition != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2Definition, quad.IRI(c.Definition)))
	}
	for _, r := range c.Roles {
		quads = append(quads, triple(s, vocabulary.SBOL2Role, quad.IRI(r)))
	}
	if c.RoleIntegration != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2RoleIntegration, quad.IRI(c.RoleIntegration)))
	}
	for n, loc := range c.SourceLocations {
		locID := fmt.Sprintf("%s/SourceLocation%d", s, n+1)
		quads = append(quads,
			triple(s, vocabulary.SBOL2SourceLocation, quad.IRI(locID)),
			triple(locID, vocabulary.SBOL2Start, quad.Int(loc.Start)),
			triple(locID, vocabulary.SBOL2End, quad.Int(loc.End)),
		)
		if loc.Orientation != "" {
			quads = append(quads, triple(locID, vocabulary.SBOL2OrientationProp, quad.IRI(loc.Orientation)))
		}
	}
	return quads
}

func sequenceQuads(seq *Sequence) []quad.Quad {
	s := seq.Identity
	quads := topLevelQuads(&seq.TopLevel, vocabulary.SBOL2Sequence)
	if seq.Elements != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2Elements, quad.String(seq.Elements)))
	}
	if seq.Encoding != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2Encoding, quad.IRI(seq.Encoding)))
	}
	return quads
}

func collectionQuads(c *Collection) []quad.Quad {
	quads := topLevelQuads(&c.TopLevel, vocabulary.SBOL2Collection)
	for _, ref := range c.Members {
		quads = append(quads, triple(c.Identity, vocabulary.SBOL2Member, quad.IRI(ref)))
	}
	return quads
}

func activityQuads(a *Activity) []quad.Quad {
	s := a.Identity
	quads := topLevelQuads(&a.TopLevel, vocabulary.ProvActivity)
	if a.Type != "" {
		quads = append(quads, triple(s, vocabulary.SBOL2Type, quad.IRI(a.Type)))
	}
	if a.StartedAtTime != "" {
		quads = append(quads, triple(s, vocabulary.ProvStartedAtTime, quad.String(a.StartedAtTime)))
	}
	if a.EndedAtTime != "" {
		quads = append(quads, triple(s, vocabulary.ProvEndedAtTime, quad.String(a.EndedAtTime)))
	}
	return quads
}

func implementationQuads(i *Implementation) []quad.Quad {
	quads := topLevelQuads(&i.TopLevel, vocabulary.SBOL2Implementation)
	if i.Built != "" {
		quads = append(quads, triple(i.Identity, vocabulary.SBOL2Built, quad.IRI(i.Built)))
	}
	return quads
}
