package sbol3

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/vocabulary"
)

// The N-Triples codec round-trips the object kinds the conversion engine
// produces: every supported top-level kind, SubComponent features with
// their source locations, and arbitrary extension properties. Kinds the
// engine cannot produce (interactions, constraints, interfaces, measures,
// non-SubComponent features) are outside the codec's contract.

// Triples returns the document as a flat triple set in insertion order.
func (d *Document) Triples() []quad.Quad {
	var quads []quad.Quad
	for _, obj := range d.objects {
		quads = append(quads, objectQuads(obj)...)
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

// WriteFile serializes the document as N-Triples to a file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "Document", "WriteFile", "file creation")
	}
	defer f.Close()
	return d.Write(f)
}

// Read parses an N-Triples serialization into a new document. Subjects
// with no recognized rdf:type, and subjects reachable only through
// rewritten statements, are ignored.
func Read(r io.Reader) (*Document, error) {
	nodes, order, err := collectNodes(r)
	if err != nil {
		return nil, err
	}

	// Subjects owned by other subjects are not top-level objects.
	owned := make(map[string]bool)
	for _, n := range nodes {
		for _, pred := range []string{vocabulary.SBOL3HasFeature, vocabulary.SBOL3SourceLocation, vocabulary.SBOL3HasLocation} {
			for _, v := range n.preds[pred] {
				if ref, ok := asIRI(v); ok {
					owned[ref] = true
				}
			}
		}
	}

	doc := NewDocument()
	for _, subject := range order {
		n := nodes[subject]
		if owned[subject] || n.typeIRI == "" {
			continue
		}
		obj, err := buildTopLevel(n, nodes)
		if err != nil {
			return nil, err
		}
		if obj == nil {
			continue // unrecognized class, not part of the codec contract
		}
		if err := doc.Add(obj); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ReadFile parses an N-Triples file into a new document.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "Document", "ReadFile", "file open")
	}
	defer f.Close()
	return Read(f)
}

// --- serialization ---

func triple(subject, predicate string, object quad.Value) quad.Quad {
	return quad.Quad{
		Subject:   quad.IRI(subject),
		Predicate: quad.IRI(predicate),
		Object:    object,
	}
}

func identifiedQuads(id *Identified) []quad.Quad {
	s := id.Identity
	var quads []quad.Quad
	if id.DisplayID != "" {
		quads = append(quads, triple(s, vocabulary.SBOL3DisplayID, quad.String(id.DisplayID)))
	}
	if id.Name != "" {
		quads = append(quads, triple(s, vocabulary.SBOL3Name, quad.String(id.Name)))
	}
	if id.Description != "" {
		quads = append(quads, triple(s, vocabulary.SBOL3Description, quad.String(id.Description)))
	}
	for _, ref := range id.DerivedFrom {
		quads = append(quads, triple(s, vocabulary.ProvWasDerivedFrom, quad.IRI(ref)))
	}
	for _, ref := range id.GeneratedBy {
		quads = append(quads, triple(s, vocabulary.ProvWasGeneratedBy, quad.IRI(ref)))
	}
	for _, uri := range id.PropertyURIs() {
		for _, v := range id.Properties[uri] {
			quads = append(quads, triple(s, uri, v))
		}
	}
	return quads
}

func topLevelQuads(tl *TopLevel, typeIRI string) []quad.Quad {
	quads := []quad.Quad{triple(tl.Identity, vocabulary.RDFType, quad.IRI(typeIRI))}
	quads = append(quads, identifiedQuads(&tl.Identified)...)
	if tl.Namespace != "" {
		quads = append(quads, triple(tl.Identity, vocabulary.SBOL3HasNamespace, quad.IRI(tl.Namespace)))
	}
	for _, ref := range tl.Attachments {
		quads = append(quads, triple(tl.Identity, vocabulary.SBOL3HasAttachment, quad.IRI(ref)))
	}
	return quads
}

func objectQuads(obj Object) []quad.Quad {
	switch o := obj.(type) {
	case *Component:
		return componentQuads(o)
	case *Sequence:
		s := o.Identity
		quads := topLevelQuads(&o.TopLevel, o.TypeIRI())
		if o.Elements != "" {
			quads = append(quads, triple(s, vocabulary.SBOL3Elements, quad.String(o.Elements)))
		}
		if o.Encoding != "" {
			quads = append(quads, triple(s, vocabulary.SBOL3Encoding, quad.IRI(o.Encoding)))
		}
		return quads
	case *Collection:
		quads := topLevelQuads(&o.TopLevel, o.TypeIRI())
		for _, ref := range o.Members {
			quads = append(quads, triple(o.Identity, vocabulary.SBOL3Member, quad.IRI(ref)))
		}
		return quads
	case *Activity:
		s := o.Identity
		quads := topLevelQuads(&o.TopLevel, o.TypeIRI())
		for _, t := range o.Types {
			quads = append(quads, triple(s, vocabulary.SBOL3Type, quad.IRI(t)))
		}
		if o.StartTime != "" {
			quads = append(quads, triple(s, vocabulary.ProvStartedAtTime, quad.String(o.StartTime)))
		}
		if o.EndTime != "" {
			quads = append(quads, triple(s, vocabulary.ProvEndedAtTime, quad.String(o.EndTime)))
		}
		return quads
	case *Implementation:
		quads := topLevelQuads(&o.TopLevel, o.TypeIRI())
		if o.Built != "" {
			quads = append(quads, triple(o.Identity, vocabulary.SBOL3Built, quad.IRI(o.Built)))
		}
		return quads
	default:
		return topLevelQuads(obj.Base(), obj.TypeIRI())
	}
}

func componentQuads(c *Component) []quad.Quad {
	s := c.Identity
	quads := topLevelQuads(&c.TopLevel, c.TypeIRI())
	for _, t := range c.Types {
		quads = append(quads, triple(s, vocabulary.SBOL3Type, quad.IRI(t)))
	}
	for _, r := range c.Roles {
		quads = append(quads, triple(s, vocabulary.SBOL3Role, quad.IRI(r)))
	}
	for _, ref := range c.Sequences {
		quads = append(quads, triple(s, vocabulary.SBOL3HasSequence, quad.IRI(ref)))
	}
	for _, ref := range c.Models {
		quads = append(quads, triple(s, vocabulary.SBOL3HasModel, quad.IRI(ref)))
	}
	for _, f := range c.Features {
		quads = append(quads, triple(s, vocabulary.SBOL3HasFeature, quad.IRI(f.Base().Identity)))
		quads = append(quads, featureQuads(f)...)
	}
	return quads
}

func featureQuads(f Feature) []quad.Quad {
	base := f.Base()
	s := base.Identity
	quads := []quad.Quad{triple(s, vocabulary.RDFType, quad.IRI(f.TypeIRI()))}
	quads = append(quads, identifiedQuads(&base.Identified)...)
	for _, r := range base.Roles {
		quads = append(quads, triple(s, vocabulary.SBOL3Role, quad.IRI(r)))
	}
	if base.Orientation != "" {
		quads = append(quads, triple(s, vocabulary.SBOL3Orientation, quad.IRI(base.Orientation)))
	}
	sub, ok := f.(*SubComponent)
	if !ok {
		return quads
	}
	if sub.InstanceOf != "" {
		quads = append(quads, triple(s, vocabulary.SBOL3InstanceOf, quad.IRI(sub.InstanceOf)))
	}
	if sub.RoleIntegration != "" {
		quads = append(quads, triple(s, vocabulary.SBOL3RoleIntegration, quad.IRI(sub.RoleIntegration)))
	}
	for n, loc := range sub.SourceLocations {
		locID := fmt.Sprintf("%s/SourceLocation%d", s, n+1)
		quads = append(quads,
			triple(s, vocabulary.SBOL3SourceLocation, quad.IRI(locID)),
			triple(locID, vocabulary.RDFType, quad.IRI(vocabulary.SBOL3RangeLocation)),
			triple(locID, vocabulary.SBOL3Start, quad.Int(loc.Start)),
			triple(locID, vocabulary.SBOL3End, quad.Int(loc.End)),
		)
		if loc.Orientation != "" {
			quads = append(quads, triple(locID, vocabulary.SBOL3Orientation, quad.IRI(loc.Orientation)))
		}
	}
	return quads
}

// --- parsing ---

// node accumulates the statements sharing one subject, preserving both
// predicate first-seen order and per-predicate value order.
type node struct {
	subject string
	typeIRI string
	preds   map[string][]quad.Value
	order   []string
}

func collectNodes(r io.Reader) (map[string]*node, []string, error) {
	nodes := make(map[string]*node)
	var order []string

	rd := nquads.NewReader(r, false)
	for {
		q, err := rd.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.WrapStructural(err, "", "triple parse failure")
		}
		subject, ok := asIRI(q.Subject)
		if !ok {
			return nil, nil, errors.WrapStructural(errors.ErrMalformedTriples, q.Subject.String(),
				"subject is not an IRI")
		}
		predicate, ok := asIRI(q.Predicate)
		if !ok {
			return nil, nil, errors.WrapStructural(errors.ErrMalformedTriples, subject,
				"predicate is not an IRI")
		}

		n := nodes[subject]
		if n == nil {
			n = &node{subject: subject, preds: make(map[string][]quad.Value)}
			nodes[subject] = n
			order = append(order, subject)
		}
		if predicate == vocabulary.RDFType {
			if t, ok := asIRI(q.Object); ok && n.typeIRI == "" {
				n.typeIRI = t
			}
			continue
		}
		if _, seen := n.preds[predicate]; !seen {
			n.order = append(n.order, predicate)
		}
		n.preds[predicate] = append(n.preds[predicate], q.Object)
	}
	return nodes, order, nil
}

func asIRI(v quad.Value) (string, bool) {
	iri, ok := v.(quad.IRI)
	return string(iri), ok
}

func literalOf(v quad.Value) string {
	switch t := v.(type) {
	case quad.String:
		return string(t)
	case quad.TypedString:
		return string(t.Value)
	case quad.LangString:
		return string(t.Value)
	case quad.IRI:
		return string(t)
	default:
		return v.String()
	}
}

// rangeBound reads one integer boundary off a location node. An absent
// boundary is zero; a non-integer value is a structural error.
func rangeBound(n *node, pred string) (int, error) {
	v := firstValue(n, pred)
	if v == nil {
		return 0, nil
	}
	switch t := v.(type) {
	case quad.Int:
		return int(t), nil
	case quad.TypedString:
		b, err := strconv.Atoi(string(t.Value))
		if err != nil {
			return 0, errors.WrapStructural(err, n.subject, "location boundary is not an integer")
		}
		return b, nil
	case quad.String:
		b, err := strconv.Atoi(string(t))
		if err != nil {
			return 0, errors.WrapStructural(err, n.subject, "location boundary is not an integer")
		}
		return b, nil
	default:
		return 0, errors.NewStructural(n.subject,
			fmt.Sprintf("location boundary %s is not an integer literal", v.String()))
	}
}

// popLiteral removes a predicate from the node and returns its single
// literal value, or "" when absent.
func (n *node) popLiteral(pred string) string {
	values := n.preds[pred]
	if len(values) == 0 {
		return ""
	}
	n.drop(pred)
	return literalOf(values[0])
}

// popIRIs removes a predicate from the node and returns its IRI values in
// order.
func (n *node) popIRIs(pred string) []string {
	values := n.preds[pred]
	if len(values) == 0 {
		return nil
	}
	n.drop(pred)
	refs := make([]string, 0, len(values))
	for _, v := range values {
		if ref, ok := asIRI(v); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (n *node) popIRI(pred string) string {
	refs := n.popIRIs(pred)
	if len(refs) == 0 {
		return ""
	}
	return refs[0]
}

func (n *node) drop(pred string) {
	delete(n.preds, pred)
	for i, p := range n.order {
		if p == pred {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// buildIdentified consumes the shared attribute predicates; everything
// left on the node afterward lands in Properties verbatim.
func buildIdentified(n *node, id *Identified) {
	id.Identity = n.subject
	id.DisplayID = n.popLiteral(vocabulary.SBOL3DisplayID)
	id.Name = n.popLiteral(vocabulary.SBOL3Name)
	id.Description = n.popLiteral(vocabulary.SBOL3Description)
	id.DerivedFrom = n.popIRIs(vocabulary.ProvWasDerivedFrom)
	id.GeneratedBy = n.popIRIs(vocabulary.ProvWasGeneratedBy)

	if len(n.order) == 0 {
		return
	}
	id.Properties = make(map[string][]quad.Value, len(n.order))
	for _, pred := range n.order {
		id.Properties[pred] = n.preds[pred]
	}
}

func buildTopLevel(n *node, nodes map[string]*node) (Object, error) {
	var obj Object
	switch n.typeIRI {
	case vocabulary.SBOL3Component:
		comp := &Component{}
		comp.Types = n.popIRIs(vocabulary.SBOL3Type)
		comp.Roles = n.popIRIs(vocabulary.SBOL3Role)
		comp.Sequences = n.popIRIs(vocabulary.SBOL3HasSequence)
		comp.Models = n.popIRIs(vocabulary.SBOL3HasModel)
		for _, ref := range n.popIRIs(vocabulary.SBOL3HasFeature) {
			fn := nodes[ref]
			if fn == nil {
				return nil, errors.NewStructural(n.subject,
					fmt.Sprintf("feature %s referenced but not present", ref))
			}
			f, err := buildFeature(fn, nodes)
			if err != nil {
				return nil, err
			}
			comp.Features = append(comp.Features, f)
		}
		restoreFeatureCounters(comp)
		obj = comp
	case vocabulary.SBOL3Sequence:
		seq := &Sequence{}
		seq.Elements = n.popLiteral(vocabulary.SBOL3Elements)
		seq.Encoding = n.popIRI(vocabulary.SBOL3Encoding)
		obj = seq
	case vocabulary.SBOL3Collection:
		coll := &Collection{}
		coll.Members = n.popIRIs(vocabulary.SBOL3Member)
		obj = coll
	case vocabulary.ProvActivity:
		act := &Activity{}
		act.Types = n.popIRIs(vocabulary.SBOL3Type)
		act.StartTime = n.popLiteral(vocabulary.ProvStartedAtTime)
		act.EndTime = n.popLiteral(vocabulary.ProvEndedAtTime)
		obj = act
	case vocabulary.SBOL3Implementation:
		impl := &Implementation{}
		impl.Built = n.popIRI(vocabulary.SBOL3Built)
		obj = impl
	case vocabulary.ProvAgent:
		obj = &Agent{}
	case vocabulary.ProvPlan:
		obj = &Plan{}
	case vocabulary.SBOL3Attachment:
		obj = &Attachment{}
	case vocabulary.SBOL3CombinatorialDeriv:
		obj = &CombinatorialDerivation{}
	case vocabulary.SBOL3Experiment:
		obj = &Experiment{}
	case vocabulary.SBOL3ExperimentalData:
		obj = &ExperimentalData{}
	case vocabulary.SBOL3Model:
		obj = &Model{}
	default:
		return nil, nil
	}

	tl := obj.Base()
	tl.Namespace = n.popIRI(vocabulary.SBOL3HasNamespace)
	tl.Attachments = n.popIRIs(vocabulary.SBOL3HasAttachment)
	buildIdentified(n, &tl.Identified)
	return obj, nil
}

func buildFeature(n *node, nodes map[string]*node) (Feature, error) {
	if n.typeIRI != vocabulary.SBOL3SubComponent {
		return nil, errors.NewStructural(n.subject,
			fmt.Sprintf("feature class %s is outside the codec contract", n.typeIRI))
	}
	sub := &SubComponent{}
	sub.InstanceOf = n.popIRI(vocabulary.SBOL3InstanceOf)
	sub.RoleIntegration = n.popIRI(vocabulary.SBOL3RoleIntegration)
	sub.Roles = n.popIRIs(vocabulary.SBOL3Role)
	sub.Orientation = n.popIRI(vocabulary.SBOL3Orientation)
	for _, ref := range n.popIRIs(vocabulary.SBOL3SourceLocation) {
		ln := nodes[ref]
		if ln == nil {
			continue
		}
		start, err := rangeBound(ln, vocabulary.SBOL3Start)
		if err != nil {
			return nil, err
		}
		end, err := rangeBound(ln, vocabulary.SBOL3End)
		if err != nil {
			return nil, err
		}
		sub.SourceLocations = append(sub.SourceLocations, SourceRange{
			Start:       start,
			End:         end,
			Orientation: ln.popIRI(vocabulary.SBOL3Orientation),
		})
	}
	buildIdentified(n, &sub.Identified)
	return sub, nil
}

func firstValue(n *node, pred string) quad.Value {
	values := n.preds[pred]
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// restoreFeatureCounters rebuilds the per-variant sequence counters from
// parsed display IDs so that AddFeature keeps numbering where the
// original construction left off.
func restoreFeatureCounters(c *Component) {
	for _, f := range c.Features {
		kind := strings.TrimPrefix(f.TypeIRI(), vocabulary.SBOL3NS)
		if c.featureSeq == nil {
			c.featureSeq = make(map[string]int)
		}
		c.featureSeq[kind]++
	}
}
