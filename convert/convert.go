package convert

import (
	"github.com/google/uuid"

	"github.com/c360/sbolconvert/config"
	"github.com/c360/sbolconvert/errors"
	"github.com/c360/sbolconvert/types/sbol2"
	"github.com/c360/sbolconvert/types/sbol3"
)

// ToSBOL2 converts an SBOL3 document into a new SBOL2 document. The input
// document is never modified. Names, descriptions, provenance links,
// attachments and extension properties carry over; the SBOL3 namespace of
// each top-level object is recorded under a bookkeeping property so a
// later ToSBOL3 call recovers it exactly.
//
// Objects of a kind the engine cannot yet express in SBOL2 fail the
// conversion with an UnsupportedError rather than being dropped.
func ToSBOL2(doc3 *sbol3.Document, opts config.Options) (*sbol2.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.LoggerOrDefault().With(
		"conversion", uuid.NewString(),
		"direction", errors.SBOL3ToSBOL2.String(),
	)

	v := newForwardVisitor(opts, log)
	if err := v.visitDocument(doc3); err != nil {
		log.Error("conversion failed", "error", err)
		return nil, err
	}
	log.Info("conversion complete", "objects", v.doc2.Len())
	return v.doc2, nil
}

// ToSBOL3 converts an SBOL2 document into a new SBOL3 document. The input
// document is never modified. Each legacy version string is recorded
// under a bookkeeping property, and each object's owning namespace is
// resolved from the bookkeeping namespace property or the candidate
// prefixes in opts.Namespaces.
//
// Nested sub-instances receive construction-assigned identities during
// the walk; a final remap pass renames them back to the identities the
// legacy document used, so references elsewhere in the graph resolve.
func ToSBOL3(doc2 *sbol2.Document, opts config.Options) (*sbol3.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.LoggerOrDefault().With(
		"conversion", uuid.NewString(),
		"direction", errors.SBOL2ToSBOL3.String(),
	)

	v := newReverseVisitor(opts, log)
	if err := v.visitDocument(doc2); err != nil {
		log.Error("conversion failed", "error", err)
		return nil, err
	}

	applyIdentityRemap(v.doc3, v.identities)
	log.Info("conversion complete", "objects", v.doc3.Len(), "remapped", len(v.identities))
	return v.doc3, nil
}
