package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360/sbolconvert/config"
	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/types/sbol2"
	"github.com/c360/sbolconvert/types/sbol3"
	"github.com/c360/sbolconvert/vocabulary"
)

// forwardVisitor maps every object in an SBOL3 document into an empty
// SBOL2 document, one case per object kind.
type forwardVisitor struct {
	doc2 *sbol2.Document
	opts config.Options
	log  *slog.Logger
}

func newForwardVisitor(opts config.Options, log *slog.Logger) *forwardVisitor {
	return &forwardVisitor{doc2: sbol2.NewDocument(), opts: opts, log: log}
}

func (v *forwardVisitor) visitDocument(doc3 *sbol3.Document) error {
	for _, obj := range doc3.Objects() {
		if err := v.visitObject(obj); err != nil {
			return err
		}
	}
	return nil
}

func (v *forwardVisitor) visitObject(obj sbol3.Object) error {
	switch o := obj.(type) {
	case *sbol3.Collection:
		return v.visitCollection(o)
	case *sbol3.Component:
		return v.visitComponent(o)
	case *sbol3.Sequence:
		return v.visitSequence(o)
	case *sbol3.Activity:
		return v.visitActivity(o)
	case *sbol3.Implementation:
		return v.visitImplementation(o)
	case *sbol3.Agent:
		return errors.NewUnsupportedObject("Agent", o.Identity, errors.SBOL3ToSBOL2)
	case *sbol3.Attachment:
		return errors.NewUnsupportedObject("Attachment", o.Identity, errors.SBOL3ToSBOL2)
	case *sbol3.CombinatorialDerivation:
		return errors.NewUnsupportedObject("CombinatorialDerivation", o.Identity, errors.SBOL3ToSBOL2)
	case *sbol3.Experiment:
		return errors.NewUnsupportedObject("Experiment", o.Identity, errors.SBOL3ToSBOL2)
	case *sbol3.ExperimentalData:
		return errors.NewUnsupportedObject("ExperimentalData", o.Identity, errors.SBOL3ToSBOL2)
	case *sbol3.Model:
		return errors.NewUnsupportedObject("Model", o.Identity, errors.SBOL3ToSBOL2)
	case *sbol3.Plan:
		return errors.NewUnsupportedObject("Plan", o.Identity, errors.SBOL3ToSBOL2)
	default:
		return errors.NewUnsupportedObject(fmt.Sprintf("%T", obj), obj.Base().Identity, errors.SBOL3ToSBOL2)
	}
}

// convertIdentified maps the shared attribute layer and the extension
// properties. A name or description expressed only through the Dublin
// Core generic annotation falls back into the native field, matching how
// SBOL2 consumers read those terms.
func (v *forwardVisitor) convertIdentified(src *sbol3.Identified, dst *sbol2.Identified) error {
	copyExtensionProperties(src.Properties, sbol3CorePrefixes, dst.SetProperty)
	dst.DisplayID = src.DisplayID
	dst.Name = valueOrProperty(src, src.Name, vocabulary.DCTermsTitle)
	dst.Description = valueOrProperty(src, src.Description, vocabulary.DCTermsDescription)
	dst.WasDerivedFrom = copyStrings(src.DerivedFrom)
	dst.WasGeneratedBy = copyStrings(src.GeneratedBy)
	if len(src.Measures) > 0 {
		return errors.NewUnsupportedObject("Measure", src.Identity, errors.SBOL3ToSBOL2)
	}
	return nil
}

// valueOrProperty prefers the native field, falling back to a generic
// property only when it holds exactly one value.
func valueOrProperty(src *sbol3.Identified, value, propertyURI string) string {
	if value != "" {
		return value
	}
	if values := src.Property(propertyURI); len(values) == 1 {
		return valueString(values[0])
	}
	return value
}

// convertTopLevel maps the attributes shared by all top-level objects and
// records the SBOL3 namespace under the bookkeeping property so a later
// reverse conversion recovers it exactly.
func (v *forwardVisitor) convertTopLevel(src *sbol3.TopLevel, dst *sbol2.TopLevel) error {
	if err := v.convertIdentified(&src.Identified, &dst.Identified); err != nil {
		return err
	}
	dst.Attachments = copyStrings(src.Attachments)
	if src.Namespace != "" {
		dst.SetProperty(vocabulary.BackportSBOL3Namespace, quad.IRI(src.Namespace))
	}
	return nil
}

// sbol2Version recovers the version string recorded by a prior reverse
// conversion, defaulting to the configured version when the object never
// carried one. More than one recorded value means the document is
// malformed.
func (v *forwardVisitor) sbol2Version(src *sbol3.Identified) (string, error) {
	values := src.Property(vocabulary.BackportSBOL2Version)
	switch len(values) {
	case 0:
		return v.opts.DefaultVersion, nil
	case 1:
		return valueString(values[0]), nil
	default:
		return "", errors.NewStructural(src.Identity,
			fmt.Sprintf("backport version property must hold exactly one value, found %d", len(values)))
	}
}

func (v *forwardVisitor) visitCollection(coll3 *sbol3.Collection) error {
	version, err := v.sbol2Version(&coll3.Identified)
	if err != nil {
		return err
	}
	coll2 := &sbol2.Collection{}
	coll2.Identity = coll3.Identity
	coll2.Version = version
	coll2.Members = copyStrings(coll3.Members)
	if err := v.doc2.AddCollection(coll2); err != nil {
		return err
	}
	v.log.Debug("converted collection", "identity", coll3.Identity)
	return v.convertTopLevel(&coll3.TopLevel, &coll2.TopLevel)
}

func (v *forwardVisitor) visitComponent(comp3 *sbol3.Component) error {
	version, err := v.sbol2Version(&comp3.Identified)
	if err != nil {
		return err
	}
	cd2 := &sbol2.ComponentDefinition{}
	cd2.Identity = comp3.Identity
	cd2.Version = version
	cd2.Types = vocabulary.ComponentTypeToSBOL2.RemapAll(comp3.Types)
	cd2.Roles = copyStrings(comp3.Roles)
	cd2.Sequences = copyStrings(comp3.Sequences)
	if err := v.doc2.AddComponentDefinition(cd2); err != nil {
		return err
	}

	for _, feature := range comp3.Features {
		switch f := feature.(type) {
		case *sbol3.SubComponent:
			v.visitSubComponent(f, cd2)
		case *sbol3.ComponentReference:
			// Surfaced but not fatal; the structural skeleton still converts.
			v.log.Warn("skipping feature that cannot be backported",
				"feature", f.Identity,
				"error", errors.NewUnsupportedObject("ComponentReference", f.Identity, errors.SBOL3ToSBOL2))
		default:
			return errors.NewUnsupportedObject(featureKind(feature), feature.Base().Identity, errors.SBOL3ToSBOL2)
		}
	}
	for _, interaction := range comp3.Interactions {
		v.log.Warn("skipping interaction that cannot be backported",
			"interaction", interaction.Identity,
			"error", errors.NewUnsupportedObject("Interaction", interaction.Identity, errors.SBOL3ToSBOL2))
	}
	for _, constraint := range comp3.Constraints {
		v.log.Warn("skipping constraint that cannot be backported",
			"constraint", constraint.Identity,
			"error", errors.NewUnsupportedObject("Constraint", constraint.Identity, errors.SBOL3ToSBOL2))
	}
	if comp3.Interface != nil {
		return errors.NewUnsupportedObject("Interface", comp3.Identity, errors.SBOL3ToSBOL2)
	}
	if len(comp3.Models) > 0 {
		return errors.NewUnsupportedObject("Component model reference", comp3.Identity, errors.SBOL3ToSBOL2)
	}

	v.log.Debug("converted component", "identity", comp3.Identity, "features", len(cd2.Components))
	return v.convertTopLevel(&comp3.TopLevel, &cd2.TopLevel)
}

// visitSubComponent maps a nested sub-instance onto an SBOL2 Component.
// The SBOL2 constructor takes the identity directly, so the feature's
// caller-meaningful identity carries over without correction.
func (v *forwardVisitor) visitSubComponent(sub3 *sbol3.SubComponent, cd2 *sbol2.ComponentDefinition) {
	comp2 := &sbol2.Component{}
	comp2.Identity = sub3.Identity
	comp2.DisplayID = sub3.DisplayID
	comp2.Definition = sub3.InstanceOf
	comp2.Roles = copyStrings(sub3.Roles)
	comp2.RoleIntegration = sub3.RoleIntegration
	for _, loc := range sub3.SourceLocations {
		comp2.SourceLocations = append(comp2.SourceLocations, sbol2.SourceRange{
			Start:       loc.Start,
			End:         loc.End,
			Orientation: loc.Orientation,
		})
	}
	cd2.Components = append(cd2.Components, comp2)
}

func (v *forwardVisitor) visitSequence(seq3 *sbol3.Sequence) error {
	version, err := v.sbol2Version(&seq3.Identified)
	if err != nil {
		return err
	}
	seq2 := &sbol2.Sequence{}
	seq2.Identity = seq3.Identity
	seq2.Version = version
	seq2.Elements = seq3.Elements
	seq2.Encoding = vocabulary.SequenceEncodingToSBOL2.Remap(seq3.Encoding)
	if err := v.doc2.AddSequence(seq2); err != nil {
		return err
	}
	v.log.Debug("converted sequence", "identity", seq3.Identity)
	return v.convertTopLevel(&seq3.TopLevel, &seq2.TopLevel)
}

func (v *forwardVisitor) visitActivity(act3 *sbol3.Activity) error {
	version, err := v.sbol2Version(&act3.Identified)
	if err != nil {
		return err
	}
	// SBOL2 activities declare exactly one process type; never truncate
	// a multi-type activity to its first type.
	if len(act3.Types) > 1 {
		return errors.NewStructural(act3.Identity,
			fmt.Sprintf("activity declares %d process types, SBOL2 supports at most one", len(act3.Types)))
	}
	act2 := &sbol2.Activity{}
	act2.Identity = act3.Identity
	act2.Version = version
	if len(act3.Types) == 1 {
		act2.Type = act3.Types[0]
	}
	act2.StartedAtTime = act3.StartTime
	act2.EndedAtTime = act3.EndTime
	if len(act3.Usage) > 0 {
		return errors.NewUnsupportedObject("Usage", act3.Identity, errors.SBOL3ToSBOL2)
	}
	if len(act3.Association) > 0 {
		return errors.NewUnsupportedObject("Association", act3.Identity, errors.SBOL3ToSBOL2)
	}
	if err := v.doc2.AddActivity(act2); err != nil {
		return err
	}
	v.log.Debug("converted activity", "identity", act3.Identity)
	return v.convertTopLevel(&act3.TopLevel, &act2.TopLevel)
}

func (v *forwardVisitor) visitImplementation(imp3 *sbol3.Implementation) error {
	version, err := v.sbol2Version(&imp3.Identified)
	if err != nil {
		return err
	}
	imp2 := &sbol2.Implementation{}
	imp2.Identity = imp3.Identity
	imp2.Version = version
	imp2.Built = imp3.Built
	if err := v.doc2.AddImplementation(imp2); err != nil {
		return err
	}
	v.log.Debug("converted implementation", "identity", imp3.Identity)
	return v.convertTopLevel(&imp3.TopLevel, &imp2.TopLevel)
}

// featureKind names a feature variant by its class IRI fragment.
func featureKind(f sbol3.Feature) string {
	return strings.TrimPrefix(f.TypeIRI(), vocabulary.SBOL3NS)
}
