package convert

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360/sbolconvert/vocabulary"
)

// Core property prefixes on the SBOL3 side: properties under the shared
// standard ontologies and the converter's own bookkeeping namespace are
// mapped explicitly; everything else is an extension property and copies
// through untouched.
var sbol3CorePrefixes = []string{
	vocabulary.SBOL3NS,
	vocabulary.SBOL2NS,
	vocabulary.RDFNS,
	vocabulary.ProvNS,
	vocabulary.OmNS,
	vocabulary.BackportNS,
}

// The SBOL2 side additionally treats the Dublin Core title and
// description terms as core, because SBOL2's generic-property mechanism
// stores names and descriptions under them.
var sbol2CorePrefixes = append([]string{
	vocabulary.DCTermsTitle,
	vocabulary.DCTermsDescription,
}, sbol3CorePrefixes...)

// isExtensionProperty reports whether a property URI falls outside the
// given core prefix set. Bookkeeping properties are always core.
func isExtensionProperty(uri string, corePrefixes []string) bool {
	for _, prefix := range corePrefixes {
		if strings.HasPrefix(uri, prefix) {
			return false
		}
	}
	return true
}

// copyExtensionProperties copies every extension property from src into
// dst verbatim: same values, same per-property order, no interpretation.
// Each value slice is freshly allocated so the documents never share
// mutable state.
func copyExtensionProperties(src map[string][]quad.Value, corePrefixes []string, set func(uri string, values ...quad.Value)) {
	for uri, values := range src {
		if !isExtensionProperty(uri, corePrefixes) {
			continue
		}
		set(uri, append([]quad.Value(nil), values...)...)
	}
}

// valueString extracts the bare string of a property value, whether it
// was recorded as an IRI or a literal.
func valueString(v quad.Value) string {
	switch t := v.(type) {
	case quad.IRI:
		return string(t)
	case quad.String:
		return string(t)
	case quad.TypedString:
		return string(t.Value)
	case quad.LangString:
		return string(t.Value)
	default:
		return v.String()
	}
}

// copyStrings clones a string slice, preserving nil.
func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}
