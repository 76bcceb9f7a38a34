package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapTable_Remap(t *testing.T) {
	tests := []struct {
		name     string
		table    RemapTable
		term     string
		expected string
	}{
		{
			name:     "DNA maps to BioPAX DnaRegion",
			table:    ComponentTypeToSBOL2,
			term:     SBODna,
			expected: BioPAXDna,
		},
		{
			name:     "protein maps to BioPAX Protein",
			table:    ComponentTypeToSBOL2,
			term:     SBOProtein,
			expected: BioPAXProtein,
		},
		{
			name:     "alternate BioPAX Dna spelling maps to SBO DNA",
			table:    ComponentTypeToSBOL3,
			term:     BioPAXDnaAlt,
			expected: SBODna,
		},
		{
			name:     "IUPAC DNA encoding maps to SBOL2 IUPAC URL",
			table:    SequenceEncodingToSBOL2,
			term:     EncodingIUPACDna,
			expected: SBOL2EncodingIUPAC,
		},
		{
			name:     "uncovered term passes through unchanged",
			table:    ComponentTypeToSBOL2,
			term:     "https://identifiers.org/SBO:0000241",
			expected: "https://identifiers.org/SBO:0000241",
		},
		{
			name:     "empty term passes through unchanged",
			table:    SequenceEncodingToSBOL3,
			term:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.table.Remap(tt.term))
		})
	}
}

// Every covered term must survive a trip through a table and its inverse.
// The alternate BioPAX spellings are deliberately one-way and excluded.
func TestRemapTables_AreInverses(t *testing.T) {
	oneWay := map[string]bool{
		BioPAXDnaAlt: true,
		BioPAXRnaAlt: true,
	}

	t.Run("component types forward then back", func(t *testing.T) {
		for term2, term3 := range ComponentTypeToSBOL3 {
			if oneWay[term2] {
				continue
			}
			assert.Equal(t, term2, ComponentTypeToSBOL2.Remap(term3),
				"term %s did not invert", term2)
		}
	})

	t.Run("component types back then forward", func(t *testing.T) {
		for term3, term2 := range ComponentTypeToSBOL2 {
			assert.Equal(t, term3, ComponentTypeToSBOL3.Remap(term2),
				"term %s did not invert", term3)
		}
	})

	t.Run("sequence encodings forward then back", func(t *testing.T) {
		for term2, term3 := range SequenceEncodingToSBOL3 {
			assert.Equal(t, term2, SequenceEncodingToSBOL2.Remap(term3),
				"encoding %s did not invert", term2)
		}
	})

	t.Run("sequence encodings back then forward", func(t *testing.T) {
		for term3, term2 := range SequenceEncodingToSBOL2 {
			assert.Equal(t, term3, SequenceEncodingToSBOL3.Remap(term2),
				"encoding %s did not invert", term3)
		}
	})
}

func TestRemapTable_RemapAll(t *testing.T) {
	t.Run("preserves order and passes unknown terms through", func(t *testing.T) {
		input := []string{SBODna, "http://example.org/custom#term", SBOProtein}
		expected := []string{BioPAXDna, "http://example.org/custom#term", BioPAXProtein}

		result := ComponentTypeToSBOL2.RemapAll(input)

		assert.Equal(t, expected, result)
		assert.Equal(t, []string{SBODna, "http://example.org/custom#term", SBOProtein}, input,
			"input slice must not be mutated")
	})

	t.Run("nil input yields nil", func(t *testing.T) {
		assert.Nil(t, ComponentTypeToSBOL2.RemapAll(nil))
	})

	t.Run("empty input yields empty", func(t *testing.T) {
		assert.Empty(t, ComponentTypeToSBOL2.RemapAll([]string{}))
	})
}

func TestRemapTable_Covers(t *testing.T) {
	assert.True(t, ComponentTypeToSBOL2.Covers(SBODna))
	assert.False(t, ComponentTypeToSBOL2.Covers(BioPAXDna))
	assert.True(t, ComponentTypeToSBOL3.Covers(BioPAXDnaAlt))
}
