package convert

import (
	"fmt"
	"strings"

	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/types/sbol2"
	"github.com/c360/sbolconvert/vocabulary"
)

// namespaceFor determines which namespace prefix owns an SBOL2 object
// being converted to SBOL3, a schema that requires every top-level object
// to declare one. Resolution order, first match wins:
//
//  1. The bookkeeping property written by a prior SBOL3-to-SBOL2
//     conversion, verbatim. This recovers the original namespace exactly,
//     even when it is not a prefix of the identity.
//  2. The first caller-supplied candidate prefix that literally prefixes
//     the object's identity.
//  3. None: the empty string defers to the target model's default
//     namespace behavior.
//
// A bookkeeping property holding anything other than exactly one value
// means the document is malformed; the conversion aborts rather than
// guesses.
func (v *reverseVisitor) namespaceFor(obj2 *sbol2.TopLevel) (string, error) {
	if values, present := obj2.Properties[vocabulary.BackportSBOL3Namespace]; present {
		if len(values) != 1 {
			return "", errors.NewStructural(obj2.Identity,
				fmt.Sprintf("backport namespace property must hold exactly one value, found %d", len(values)))
		}
		return valueString(values[0]), nil
	}

	for _, ns := range v.opts.Namespaces {
		if strings.HasPrefix(obj2.Identity, ns) {
			return ns, nil
		}
	}

	return "", nil
}
