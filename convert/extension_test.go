package convert

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"

	"github.com/c360/sbolconvert/vocabulary"
)

func TestIsExtensionProperty(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		prefixes []string
		want     bool
	}{
		{
			name:     "SBOL3 core predicate is not an extension",
			uri:      vocabulary.SBOL3DisplayID,
			prefixes: sbol3CorePrefixes,
			want:     false,
		},
		{
			name:     "bookkeeping property is never an extension",
			uri:      vocabulary.BackportSBOL2Version,
			prefixes: sbol3CorePrefixes,
			want:     false,
		},
		{
			name:     "provenance predicate is not an extension",
			uri:      vocabulary.ProvWasDerivedFrom,
			prefixes: sbol3CorePrefixes,
			want:     false,
		},
		{
			name:     "application namespace is an extension",
			uri:      "http://example.org/app#tag",
			prefixes: sbol3CorePrefixes,
			want:     true,
		},
		{
			name:     "dcterms title is core only on the SBOL2 side",
			uri:      vocabulary.DCTermsTitle,
			prefixes: sbol3CorePrefixes,
			want:     true,
		},
		{
			name:     "dcterms title is not an extension on the SBOL2 side",
			uri:      vocabulary.DCTermsTitle,
			prefixes: sbol2CorePrefixes,
			want:     false,
		},
		{
			name:     "unrelated dcterms term is an extension even on the SBOL2 side",
			uri:      "http://purl.org/dc/terms/creator",
			prefixes: sbol2CorePrefixes,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isExtensionProperty(tt.uri, tt.prefixes))
		})
	}
}

func TestCopyExtensionProperties(t *testing.T) {
	src := map[string][]quad.Value{
		"http://example.org/app#tag":       {quad.String("alpha"), quad.String("beta")},
		vocabulary.SBOL3DisplayID:          {quad.String("device1")},
		vocabulary.BackportSBOL3Namespace:  {quad.IRI("https://example.org")},
		"http://example.org/app#reference": {quad.IRI("http://example.org/app/ref1")},
	}

	dst := make(map[string][]quad.Value)
	copyExtensionProperties(src, sbol3CorePrefixes, func(uri string, values ...quad.Value) {
		dst[uri] = values
	})

	assert.Equal(t, map[string][]quad.Value{
		"http://example.org/app#tag":       {quad.String("alpha"), quad.String("beta")},
		"http://example.org/app#reference": {quad.IRI("http://example.org/app/ref1")},
	}, dst)

	// Copies are independent of the source slices.
	dst["http://example.org/app#tag"][0] = quad.String("mutated")
	assert.Equal(t, quad.String("alpha"), src["http://example.org/app#tag"][0])
}
