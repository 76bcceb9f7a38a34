package sbol3

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/vocabulary"
)

func buildTestDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument()

	seq := &Sequence{}
	seq.Identity = "https://example.org/seq1"
	seq.Namespace = "https://example.org"
	seq.Elements = "acgtacgt"
	seq.Encoding = vocabulary.EncodingIUPACDna
	require.NoError(t, doc.Add(seq))

	comp := &Component{}
	comp.Identity = "https://example.org/device1"
	comp.Namespace = "https://example.org"
	comp.Name = "device"
	comp.Types = []string{vocabulary.SBODna}
	comp.Roles = []string{"http://identifiers.org/so/SO:0000804"}
	comp.Sequences = []string{seq.Identity}
	comp.SetProperty("http://example.org/app#tag", quad.String("alpha"), quad.String("beta"))
	sub := &SubComponent{InstanceOf: "https://example.org/promoter"}
	sub.SourceLocations = []SourceRange{{Start: 1, End: 50, Orientation: "http://sbols.org/v3#inline"}}
	comp.AddFeature(sub)
	require.NoError(t, doc.Add(comp))

	coll := &Collection{}
	coll.Identity = "https://example.org/library"
	coll.Members = []string{comp.Identity}
	require.NoError(t, doc.Add(coll))

	act := &Activity{}
	act.Identity = "https://example.org/build1"
	act.Types = []string{"http://sbols.org/v3#build"}
	act.StartTime = "2017-06-01T10:00:00Z"
	require.NoError(t, doc.Add(act))

	imp := &Implementation{}
	imp.Identity = "https://example.org/sample1"
	imp.Built = comp.Identity
	require.NoError(t, doc.Add(imp))

	return doc
}

func TestDocument_WriteReadRoundTrip(t *testing.T) {
	doc := buildTestDocument(t)

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))

	parsed, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, doc.Len(), parsed.Len())

	seq, ok := parsed.Find("https://example.org/seq1").(*Sequence)
	require.True(t, ok)
	assert.Equal(t, "https://example.org", seq.Namespace)
	assert.Equal(t, "acgtacgt", seq.Elements)
	assert.Equal(t, vocabulary.EncodingIUPACDna, seq.Encoding)

	comp, ok := parsed.Find("https://example.org/device1").(*Component)
	require.True(t, ok)
	assert.Equal(t, "device", comp.Name)
	assert.Equal(t, []string{vocabulary.SBODna}, comp.Types)
	assert.Equal(t, []string{"http://identifiers.org/so/SO:0000804"}, comp.Roles)
	assert.Equal(t, []string{"https://example.org/seq1"}, comp.Sequences)
	assert.Equal(t, []quad.Value{quad.String("alpha"), quad.String("beta")},
		comp.Property("http://example.org/app#tag"))

	require.Len(t, comp.Features, 1)
	sub, ok := comp.Features[0].(*SubComponent)
	require.True(t, ok)
	assert.Equal(t, "https://example.org/device1/SubComponent1", sub.Identity)
	assert.Equal(t, "https://example.org/promoter", sub.InstanceOf)
	assert.Equal(t, []SourceRange{{Start: 1, End: 50, Orientation: "http://sbols.org/v3#inline"}},
		sub.SourceLocations)

	coll, ok := parsed.Find("https://example.org/library").(*Collection)
	require.True(t, ok)
	assert.Equal(t, []string{"https://example.org/device1"}, coll.Members)

	act, ok := parsed.Find("https://example.org/build1").(*Activity)
	require.True(t, ok)
	assert.Equal(t, []string{"http://sbols.org/v3#build"}, act.Types)
	assert.Equal(t, "2017-06-01T10:00:00Z", act.StartTime)

	imp, ok := parsed.Find("https://example.org/sample1").(*Implementation)
	require.True(t, ok)
	assert.Equal(t, "https://example.org/device1", imp.Built)
}

func TestDocument_WriteFileReadFile(t *testing.T) {
	doc := buildTestDocument(t)
	path := filepath.Join(t.TempDir(), "document.nt")

	require.NoError(t, doc.WriteFile(path))
	parsed, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Len(), parsed.Len())
}

// Feature counters must survive a serialization round trip so identities
// assigned after a reparse don't collide with parsed ones.
func TestRead_RestoresFeatureCounters(t *testing.T) {
	doc := NewDocument()
	comp := &Component{}
	comp.Identity = "https://example.org/device1"
	comp.AddFeature(&SubComponent{InstanceOf: "https://example.org/promoter"})
	comp.AddFeature(&SubComponent{InstanceOf: "https://example.org/cds"})
	require.NoError(t, doc.Add(comp))

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	parsed, err := Read(&buf)
	require.NoError(t, err)

	got := parsed.Find(comp.Identity).(*Component)
	added := got.AddFeature(&SubComponent{InstanceOf: "https://example.org/terminator"})
	assert.Equal(t, "https://example.org/device1/SubComponent3", added.Base().Identity)
}

func TestRead_UnknownFeatureClassRejected(t *testing.T) {
	doc := NewDocument()
	comp := &Component{}
	comp.Identity = "https://example.org/device1"
	comp.AddFeature(&SequenceFeature{})
	require.NoError(t, doc.Add(comp))

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))

	_, err := Read(&buf)
	require.Error(t, err)
	assert.True(t, errors.IsStructural(err))
}

func TestRead_IgnoresUntypedSubjects(t *testing.T) {
	input := "<https://example.org/library> <" + vocabulary.RDFType + "> <" + vocabulary.SBOL3Collection + "> .\n" +
		"<https://example.org/stray> <http://example.org/app#tag> \"orphan\" .\n"

	doc, err := Read(bytes.NewReader([]byte(input)))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())
	assert.NotNil(t, doc.Find("https://example.org/library"))
}

func TestRead_NonNumericRangeBoundaryRejected(t *testing.T) {
	input := "<https://example.org/device1> <" + vocabulary.RDFType + "> <" + vocabulary.SBOL3Component + "> .\n" +
		"<https://example.org/device1> <" + vocabulary.SBOL3HasFeature + "> <https://example.org/device1/SubComponent1> .\n" +
		"<https://example.org/device1/SubComponent1> <" + vocabulary.RDFType + "> <" + vocabulary.SBOL3SubComponent + "> .\n" +
		"<https://example.org/device1/SubComponent1> <" + vocabulary.SBOL3InstanceOf + "> <https://example.org/promoter> .\n" +
		"<https://example.org/device1/SubComponent1> <" + vocabulary.SBOL3SourceLocation + "> <https://example.org/device1/SubComponent1/SourceLocation1> .\n" +
		"<https://example.org/device1/SubComponent1/SourceLocation1> <" + vocabulary.RDFType + "> <" + vocabulary.SBOL3RangeLocation + "> .\n" +
		"<https://example.org/device1/SubComponent1/SourceLocation1> <" + vocabulary.SBOL3Start + "> \"upstream\" .\n" +
		"<https://example.org/device1/SubComponent1/SourceLocation1> <" + vocabulary.SBOL3End + "> \"42\" .\n"

	_, err := Read(bytes.NewReader([]byte(input)))
	require.Error(t, err)
	assert.True(t, errors.IsStructural(err))
	assert.Contains(t, err.Error(), "boundary")
}

func TestRead_MalformedInput(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("this is not a triple\n")))
	require.Error(t, err)
}
