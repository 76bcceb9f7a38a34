package sbol3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/sbolconvert/errors"
)

func TestDocument_Add(t *testing.T) {
	doc := NewDocument()

	comp := &Component{}
	comp.Identity = "https://example.org/designs/device1"
	require.NoError(t, doc.Add(comp))
	seq := &Sequence{}
	seq.Identity = "https://example.org/designs/seq1"
	require.NoError(t, doc.Add(seq))

	assert.Equal(t, 2, doc.Len())
	assert.Same(t, comp, doc.Find(comp.Identity))
	assert.Same(t, seq, doc.Find(seq.Identity))
	assert.Nil(t, doc.Find("https://example.org/designs/absent"))
	require.Len(t, doc.Objects(), 2)
	assert.Same(t, comp, doc.Objects()[0])
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
			comp := &Component{}
			comp.Identity = tt.identity
			err := doc.Add(comp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestDocument_AddRejectsDuplicateIdentity(t *testing.T) {
	doc := NewDocument()
	comp := &Component{}
	comp.Identity = "https://example.org/designs/device1"
	require.NoError(t, doc.Add(comp))

	seq := &Sequence{}
	seq.Identity = comp.Identity
	err := doc.Add(seq)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateIdentity))
	assert.Equal(t, 1, doc.Len())
}

func TestDocument_Validate(t *testing.T) {
	t.Run("well-formed document has no findings", func(t *testing.T) {
		doc := NewDocument()
		comp := &Component{}
		comp.Identity = "https://example.org/device1"
		comp.AddFeature(&SubComponent{InstanceOf: "https://example.org/promoter"})
		require.NoError(t, doc.Add(comp))
		assert.Empty(t, doc.Validate())
	})

	t.Run("sub-component without an instantiated definition is flagged", func(t *testing.T) {
		doc := NewDocument()
		comp := &Component{}
		comp.Identity = "https://example.org/device1"
		comp.AddFeature(&SubComponent{})
		require.NoError(t, doc.Add(comp))

		findings := doc.Validate()
		require.Len(t, findings, 1)
		assert.True(t, errors.IsStructural(findings[0]))
	})

	t.Run("colliding feature identities are flagged", func(t *testing.T) {
		doc := NewDocument()
		comp := &Component{}
		comp.Identity = "https://example.org/device1"
		sub1 := &SubComponent{InstanceOf: "https://example.org/promoter"}
		sub1.Identity = "https://example.org/device1/sub"
		sub2 := &SubComponent{InstanceOf: "https://example.org/cds"}
		sub2.Identity = "https://example.org/device1/sub"
		comp.Features = append(comp.Features, sub1, sub2)
		require.NoError(t, doc.Add(comp))

		findings := doc.Validate()
		require.NotEmpty(t, findings)
		assert.True(t, errors.IsStructural(findings[0]))
	})
}

func TestComponent_AddFeature(t *testing.T) {
	comp := &Component{}
	comp.Identity = "https://example.org/device1"

	sub1 := comp.AddFeature(&SubComponent{InstanceOf: "https://example.org/promoter"})
	sub2 := comp.AddFeature(&SubComponent{InstanceOf: "https://example.org/cds"})
	ref := comp.AddFeature(&ComponentReference{RefersTo: "https://example.org/cds"})

	assert.Equal(t, "https://example.org/device1/SubComponent1", sub1.Base().Identity)
	assert.Equal(t, "SubComponent1", sub1.Base().DisplayID)
	assert.Equal(t, "https://example.org/device1/SubComponent2", sub2.Base().Identity)

	// Counters are per feature variant, not shared.
	assert.Equal(t, "https://example.org/device1/ComponentReference1", ref.Base().Identity)
	assert.Len(t, comp.Features, 3)
}
