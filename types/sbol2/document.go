package sbol2

import (
	"strings"

	"github.com/c360/sbolconvert/errors"
)

// Document is an SBOL2 document: kind-bucketed collections of top-level
// objects, each uniquely keyed by identity. The bucket layout matches the
// SBOL2 data model and fixes the traversal order conversion passes rely
// on for determinism.
type Document struct {
	componentDefinitions     []*ComponentDefinition
	moduleDefinitions        []*ModuleDefinition
	models                   []*Model
	sequences                []*Sequence
	collections              []*Collection
	activities               []*Activity
	plans                    []*Plan
	agents                   []*Agent
	attachments              []*Attachment
	combinatorialDerivations []*CombinatorialDerivation
	implementations          []*Implementation
	experiments              []*Experiment
	experimentalData         []*ExperimentalData

	identities map[string]struct{}
}

// NewDocument creates an empty SBOL2 document.
func NewDocument() *Document {
	return &Document{identities: make(map[string]struct{})}
}

// track enforces identity presence and uniqueness for a new top-level
// object.
func (d *Document) track(identity string) error {
	if identity == "" {
		return errors.ErrMissingIdentity
	}
	if !strings.Contains(identity, "://") {
		return errors.WrapStructural(errors.ErrInvalidIdentity, identity, "identity is not an absolute URI")
	}
	if d.identities == nil {
		d.identities = make(map[string]struct{})
	}
	if _, exists := d.identities[identity]; exists {
		return errors.WrapStructural(errors.ErrDuplicateIdentity, identity, "identity already present in document")
	}
	d.identities[identity] = struct{}{}
	return nil
}

// Len returns the number of top-level objects in the document.
func (d *Document) Len() int {
	return len(d.identities)
}

// Contains reports whether the document owns an object with the identity.
func (d *Document) Contains(identity string) bool {
	_, ok := d.identities[identity]
	return ok
}

// AddComponentDefinition adds a ComponentDefinition to the document.
func (d *Document) AddComponentDefinition(cd *ComponentDefinition) error {
	if err := d.track(cd.Identity); err != nil {
		return err
	}
	d.componentDefinitions = append(d.componentDefinitions, cd)
	return nil
}

// AddModuleDefinition adds a ModuleDefinition to the document.
func (d *Document) AddModuleDefinition(md *ModuleDefinition) error {
	if err := d.track(md.Identity); err != nil {
		return err
	}
	d.moduleDefinitions = append(d.moduleDefinitions, md)
	return nil
}

// AddModel adds a Model to the document.
func (d *Document) AddModel(m *Model) error {
	if err := d.track(m.Identity); err != nil {
		return err
	}
	d.models = append(d.models, m)
	return nil
}

// AddSequence adds a Sequence to the document.
func (d *Document) AddSequence(s *Sequence) error {
	if err := d.track(s.Identity); err != nil {
		return err
	}
	d.sequences = append(d.sequences, s)
	return nil
}

// AddCollection adds a Collection to the document.
func (d *Document) AddCollection(c *Collection) error {
	if err := d.track(c.Identity); err != nil {
		return err
	}
	d.collections = append(d.collections, c)
	return nil
}

// AddActivity adds an Activity to the document.
func (d *Document) AddActivity(a *Activity) error {
	if err := d.track(a.Identity); err != nil {
		return err
	}
	d.activities = append(d.activities, a)
	return nil
}

// AddPlan adds a Plan to the document.
func (d *Document) AddPlan(p *Plan) error {
	if err := d.track(p.Identity); err != nil {
		return err
	}
	d.plans = append(d.plans, p)
	return nil
}

// AddAgent adds an Agent to the document.
func (d *Document) AddAgent(a *Agent) error {
	if err := d.track(a.Identity); err != nil {
		return err
	}
	d.agents = append(d.agents, a)
	return nil
}

// AddAttachment adds an Attachment to the document.
func (d *Document) AddAttachment(a *Attachment) error {
	if err := d.track(a.Identity); err != nil {
		return err
	}
	d.attachments = append(d.attachments, a)
	return nil
}

// AddCombinatorialDerivation adds a CombinatorialDerivation to the document.
func (d *Document) AddCombinatorialDerivation(cd *CombinatorialDerivation) error {
	if err := d.track(cd.Identity); err != nil {
		return err
	}
	d.combinatorialDerivations = append(d.combinatorialDerivations, cd)
	return nil
}

// AddImplementation adds an Implementation to the document.
func (d *Document) AddImplementation(i *Implementation) error {
	if err := d.track(i.Identity); err != nil {
		return err
	}
	d.implementations = append(d.implementations, i)
	return nil
}

// AddExperiment adds an Experiment to the document.
func (d *Document) AddExperiment(e *Experiment) error {
	if err := d.track(e.Identity); err != nil {
		return err
	}
	d.experiments = append(d.experiments, e)
	return nil
}

// AddExperimentalData adds an ExperimentalData record to the document.
func (d *Document) AddExperimentalData(e *ExperimentalData) error {
	if err := d.track(e.Identity); err != nil {
		return err
	}
	d.experimentalData = append(d.experimentalData, e)
	return nil
}

// ComponentDefinitions returns the document's component definitions in
// insertion order.
func (d *Document) ComponentDefinitions() []*ComponentDefinition {
	return d.componentDefinitions
}

// ModuleDefinitions returns the document's module definitions in
// insertion order.
func (d *Document) ModuleDefinitions() []*ModuleDefinition {
	return d.moduleDefinitions
}

// Models returns the document's models in insertion order.
func (d *Document) Models() []*Model {
	return d.models
}

// Sequences returns the document's sequences in insertion order.
func (d *Document) Sequences() []*Sequence {
	return d.sequences
}

// Collections returns the document's collections in insertion order.
func (d *Document) Collections() []*Collection {
	return d.collections
}

// Activities returns the document's activities in insertion order.
func (d *Document) Activities() []*Activity {
	return d.activities
}

// Plans returns the document's plans in insertion order.
func (d *Document) Plans() []*Plan {
	return d.plans
}

// Agents returns the document's agents in insertion order.
func (d *Document) Agents() []*Agent {
	return d.agents
}

// Attachments returns the document's attachments in insertion order.
func (d *Document) Attachments() []*Attachment {
	return d.attachments
}

// CombinatorialDerivations returns the document's combinatorial
// derivations in insertion order.
func (d *Document) CombinatorialDerivations() []*CombinatorialDerivation {
	return d.combinatorialDerivations
}

// Implementations returns the document's implementations in insertion
// order.
func (d *Document) Implementations() []*Implementation {
	return d.implementations
}

// Experiments returns the document's experiments in insertion order.
func (d *Document) Experiments() []*Experiment {
	return d.experiments
}

// ExperimentalData returns the document's experimental data records in
// insertion order.
func (d *Document) ExperimentalData() []*ExperimentalData {
	return d.experimentalData
}
