package convert

import (
	"log/slog"

	"github.com/cayleygraph/quad"

	"github.com/c360/sbolconvert/config"
	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/types/sbol2"
	"github.com/c360/sbolconvert/types/sbol3"
	"github.com/c360/sbolconvert/vocabulary"
)

// reverseVisitor maps every object in an SBOL2 document into an empty
// SBOL3 document. Feature identities assigned at construction time are
// recorded in identities so the remap pass can restore the legacy
// document's caller-meaningful identities afterward.
type reverseVisitor struct {
	doc3       *sbol3.Document
	opts       config.Options
	log        *slog.Logger
	identities identityMap
}

func newReverseVisitor(opts config.Options, log *slog.Logger) *reverseVisitor {
	return &reverseVisitor{
		doc3:       sbol3.NewDocument(),
		opts:       opts,
		log:        log,
		identities: make(identityMap),
	}
}

// visitDocument walks the document bucket by bucket in the model's fixed
// order, so two conversions of the same document always produce the same
// output, construction-assigned identities included.
func (v *reverseVisitor) visitDocument(doc2 *sbol2.Document) error {
	for _, cd := range doc2.ComponentDefinitions() {
		if err := v.visitComponentDefinition(cd); err != nil {
			return err
		}
	}
	if mods := doc2.ModuleDefinitions(); len(mods) > 0 {
		return errors.NewUnsupportedObject("ModuleDefinition", mods[0].Identity, errors.SBOL2ToSBOL3)
	}
	if models := doc2.Models(); len(models) > 0 {
		return errors.NewUnsupportedObject("Model", models[0].Identity, errors.SBOL2ToSBOL3)
	}
	for _, seq := range doc2.Sequences() {
		if err := v.visitSequence(seq); err != nil {
			return err
		}
	}
	for _, coll := range doc2.Collections() {
		if err := v.visitCollection(coll); err != nil {
			return err
		}
	}
	for _, act := range doc2.Activities() {
		if err := v.visitActivity(act); err != nil {
			return err
		}
	}
	if plans := doc2.Plans(); len(plans) > 0 {
		return errors.NewUnsupportedObject("Plan", plans[0].Identity, errors.SBOL2ToSBOL3)
	}
	if agents := doc2.Agents(); len(agents) > 0 {
		return errors.NewUnsupportedObject("Agent", agents[0].Identity, errors.SBOL2ToSBOL3)
	}
	if atts := doc2.Attachments(); len(atts) > 0 {
		return errors.NewUnsupportedObject("Attachment", atts[0].Identity, errors.SBOL2ToSBOL3)
	}
	if derivs := doc2.CombinatorialDerivations(); len(derivs) > 0 {
		return errors.NewUnsupportedObject("CombinatorialDerivation", derivs[0].Identity, errors.SBOL2ToSBOL3)
	}
	for _, imp := range doc2.Implementations() {
		if err := v.visitImplementation(imp); err != nil {
			return err
		}
	}
	if exps := doc2.Experiments(); len(exps) > 0 {
		return errors.NewUnsupportedObject("Experiment", exps[0].Identity, errors.SBOL2ToSBOL3)
	}
	if data := doc2.ExperimentalData(); len(data) > 0 {
		return errors.NewUnsupportedObject("ExperimentalData", data[0].Identity, errors.SBOL2ToSBOL3)
	}
	return nil
}

// convertIdentified maps the shared attribute layer, the extension
// properties, and records the legacy version under the bookkeeping
// property so a later forward conversion recovers it exactly. SBOL3 has
// no version attribute of its own.
func (v *reverseVisitor) convertIdentified(src *sbol2.Identified, dst *sbol3.Identified) {
	copyExtensionProperties(src.Properties, sbol2CorePrefixes, dst.SetProperty)
	dst.DisplayID = src.DisplayID
	dst.Name = src.Name
	dst.Description = src.Description
	dst.DerivedFrom = copyStrings(src.WasDerivedFrom)
	dst.GeneratedBy = copyStrings(src.WasGeneratedBy)
	if src.Version != "" {
		dst.SetProperty(vocabulary.BackportSBOL2Version, quad.String(src.Version))
	}
}

// convertTopLevel maps the attributes shared by all top-level objects and
// resolves the owning namespace.
func (v *reverseVisitor) convertTopLevel(src *sbol2.TopLevel, dst *sbol3.TopLevel) error {
	v.convertIdentified(&src.Identified, &dst.Identified)
	dst.Attachments = copyStrings(src.Attachments)
	ns, err := v.namespaceFor(src)
	if err != nil {
		return err
	}
	dst.Namespace = ns
	return nil
}

func (v *reverseVisitor) visitComponentDefinition(cd2 *sbol2.ComponentDefinition) error {
	if len(cd2.SequenceAnnotations) > 0 {
		return errors.NewUnsupportedObject("SequenceAnnotation", cd2.Identity, errors.SBOL2ToSBOL3)
	}
	if len(cd2.SequenceConstraints) > 0 {
		return errors.NewUnsupportedObject("SequenceConstraint", cd2.Identity, errors.SBOL2ToSBOL3)
	}

	comp3 := &sbol3.Component{}
	comp3.Identity = cd2.Identity
	comp3.Types = vocabulary.ComponentTypeToSBOL3.RemapAll(cd2.Types)
	comp3.Roles = copyStrings(cd2.Roles)
	comp3.Sequences = copyStrings(cd2.Sequences)
	if err := v.doc3.Add(comp3); err != nil {
		return err
	}

	for _, sub2 := range cd2.Components {
		v.visitSubInstance(sub2, comp3)
	}

	v.log.Debug("converted component definition", "identity", cd2.Identity, "features", len(cd2.Components))
	return v.convertTopLevel(&cd2.TopLevel, &comp3.TopLevel)
}

// visitSubInstance maps a nested SBOL2 sub-instance onto an SBOL3
// SubComponent. The construction API assigns the sub-component's identity
// from the parent and a counter, so the legacy identity cannot be set
// here; the assignment is recorded for the remap pass instead.
func (v *reverseVisitor) visitSubInstance(sub2 *sbol2.Component, comp3 *sbol3.Component) {
	sub3 := &sbol3.SubComponent{}
	sub3.InstanceOf = sub2.Definition
	sub3.Roles = copyStrings(sub2.Roles)
	sub3.RoleIntegration = sub2.RoleIntegration
	for _, loc := range sub2.SourceLocations {
		sub3.SourceLocations = append(sub3.SourceLocations, sbol3.SourceRange{
			Start:       loc.Start,
			End:         loc.End,
			Orientation: loc.Orientation,
		})
	}
	comp3.AddFeature(sub3)
	v.identities[sub3.Identity] = sub2.Identity

	assignedDisplayID := sub3.DisplayID
	v.convertIdentified(&sub2.Identified, &sub3.Identified)
	if sub3.DisplayID == "" {
		sub3.DisplayID = assignedDisplayID
	}
}

func (v *reverseVisitor) visitSequence(seq2 *sbol2.Sequence) error {
	seq3 := &sbol3.Sequence{}
	seq3.Identity = seq2.Identity
	seq3.Elements = seq2.Elements
	seq3.Encoding = vocabulary.SequenceEncodingToSBOL3.Remap(seq2.Encoding)
	if err := v.doc3.Add(seq3); err != nil {
		return err
	}
	v.log.Debug("converted sequence", "identity", seq2.Identity)
	return v.convertTopLevel(&seq2.TopLevel, &seq3.TopLevel)
}

func (v *reverseVisitor) visitCollection(coll2 *sbol2.Collection) error {
	coll3 := &sbol3.Collection{}
	coll3.Identity = coll2.Identity
	coll3.Members = copyStrings(coll2.Members)
	if err := v.doc3.Add(coll3); err != nil {
		return err
	}
	v.log.Debug("converted collection", "identity", coll2.Identity)
	return v.convertTopLevel(&coll2.TopLevel, &coll3.TopLevel)
}

func (v *reverseVisitor) visitActivity(act2 *sbol2.Activity) error {
	if len(act2.Usages) > 0 {
		return errors.NewUnsupportedObject("Usage", act2.Identity, errors.SBOL2ToSBOL3)
	}
	if len(act2.Associations) > 0 {
		return errors.NewUnsupportedObject("Association", act2.Identity, errors.SBOL2ToSBOL3)
	}
	act3 := &sbol3.Activity{}
	act3.Identity = act2.Identity
	if act2.Type != "" {
		act3.Types = []string{act2.Type}
	}
	act3.StartTime = act2.StartedAtTime
	act3.EndTime = act2.EndedAtTime
	if err := v.doc3.Add(act3); err != nil {
		return err
	}
	v.log.Debug("converted activity", "identity", act2.Identity)
	return v.convertTopLevel(&act2.TopLevel, &act3.TopLevel)
}

func (v *reverseVisitor) visitImplementation(imp2 *sbol2.Implementation) error {
	imp3 := &sbol3.Implementation{}
	imp3.Identity = imp2.Identity
	imp3.Built = imp2.Built
	if err := v.doc3.Add(imp3); err != nil {
		return err
	}
	v.log.Debug("converted implementation", "identity", imp2.Identity)
	return v.convertTopLevel(&imp2.TopLevel, &imp3.TopLevel)
}
