package convert

import (
	"github.com/c360/sbolconvert/types/sbol3"
)

// identityMap records, for each feature constructed during an SBOL2-to-
// SBOL3 conversion, the identity the construction API assigned against
// the externally meaningful identity the legacy document used. Other
// statements in the graph point at features through the instance-of
// relation, so the features must be renamed back before the conversion
// completes.
type identityMap map[string]string

// applyIdentityRemap renames features carrying a construction-assigned
// identity back to the identity the legacy document used. The rename
// happens on the feature node itself, so the owning component's feature
// reference, the feature's class statement, and its instance-of link
// stay coherent. Statements that merely mention an assigned identity
// elsewhere in the graph are left alone. This is a workaround for the
// construction-time identity assignment in the sbol3 object model, not
// a general graph-rewrite facility.
func applyIdentityRemap(doc3 *sbol3.Document, mappings identityMap) {
	if len(mappings) == 0 {
		return
	}
	for _, obj := range doc3.Objects() {
		comp, ok := obj.(*sbol3.Component)
		if !ok {
			continue
		}
		for _, f := range comp.Features {
			base := f.Base()
			if desired, ok := mappings[base.Identity]; ok {
				base.Identity = desired
			}
		}
	}
}
