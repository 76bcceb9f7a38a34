package sbol2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/sbolconvert/errors"
)

func TestDocument_Add(t *testing.T) {
	doc := NewDocument()

	cd := &ComponentDefinition{}
	cd.Identity = "https://example.org/designs/device1"
	require.NoError(t, doc.AddComponentDefinition(cd))

	seq := &Sequence{}
	seq.Identity = "https://example.org/designs/seq1"
	require.NoError(t, doc.AddSequence(seq))

	assert.Equal(t, 2, doc.Len())
	assert.True(t, doc.Contains(cd.Identity))
	assert.True(t, doc.Contains(seq.Identity))
	assert.False(t, doc.Contains("https://example.org/designs/absent"))
	assert.Equal(t, []*ComponentDefinition{cd}, doc.ComponentDefinitions())
	assert.Equal(t, []*Sequence{seq}, doc.Sequences())
}

func TestDocument_AddRejectsBadIdentities(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		sentinel error
	}{
		{
			name:     "empty identity",
			identity: "",
			sentinel: errors.ErrMissingIdentity,
		},
		{
			name:     "relative identity",
			identity: "designs/device1",
			sentinel: errors.ErrInvalidIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			coll := &Collection{}
			coll.Identity = tt.identity
			err := doc.AddCollection(coll)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestDocument_AddRejectsDuplicateIdentity(t *testing.T) {
	doc := NewDocument()
	coll := &Collection{}
	coll.Identity = "https://example.org/designs/library"
	require.NoError(t, doc.AddCollection(coll))

	// Identity uniqueness holds across kind buckets, not just within one.
	seq := &Sequence{}
	seq.Identity = coll.Identity
	err := doc.AddSequence(seq)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateIdentity))
	assert.Equal(t, 1, doc.Len())
}

func TestDocument_InsertionOrderPreserved(t *testing.T) {
	doc := NewDocument()
	for _, id := range []string{"https://example.org/a", "https://example.org/b", "https://example.org/c"} {
		cd := &ComponentDefinition{}
		cd.Identity = id
		require.NoError(t, doc.AddComponentDefinition(cd))
	}

	got := make([]string, 0, 3)
	for _, cd := range doc.ComponentDefinitions() {
		got = append(got, cd.Identity)
	}
	assert.Equal(t, []string{"https://example.org/a", "https://example.org/b", "https://example.org/c"}, got)
}
