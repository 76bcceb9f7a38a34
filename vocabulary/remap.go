package vocabulary

// RemapTable is a fixed, one-directional translation of controlled
// vocabulary terms from one SBOL generation to the other. Terms absent
// from a table pass through unchanged: both schemas permit arbitrary
// ontology terms beyond the commonly remapped set, so an unknown term is
// not an error.
type RemapTable map[string]string

// Remap translates a single term, returning the input unchanged when the
// table does not cover it.
func (t RemapTable) Remap(term string) string {
	if mapped, ok := t[term]; ok {
		return mapped
	}
	return term
}

// RemapAll translates a list of terms, preserving order. The result is a
// fresh slice; the input is never mutated. A nil input yields nil.
func (t RemapTable) RemapAll(terms []string) []string {
	if terms == nil {
		return nil
	}
	mapped := make([]string, len(terms))
	for i, term := range terms {
		mapped[i] = t.Remap(term)
	}
	return mapped
}

// Covers reports whether the table has an explicit entry for term.
func (t RemapTable) Covers(term string) bool {
	_, ok := t[term]
	return ok
}

// ComponentTypeToSBOL2 translates SBO biochemical entity classes used by
// SBOL3 components into the BioPAX classes SBOL2 component definitions
// expect.
var ComponentTypeToSBOL2 = RemapTable{
	SBODna:                BioPAXDna,
	SBORna:                BioPAXRna,
	SBOProtein:            BioPAXProtein,
	SBOSimpleChemical:     BioPAXSmallMolecule,
	SBONonCovalentComplex: BioPAXComplex,
}

// ComponentTypeToSBOL3 is the inverse of ComponentTypeToSBOL2 over the
// canonical BioPAX classes, plus forward-only entries for the alternate
// BioPAX spellings that appear in older SBOL2 documents.
var ComponentTypeToSBOL3 = RemapTable{
	BioPAXDna:           SBODna,
	BioPAXRna:           SBORna,
	BioPAXProtein:       SBOProtein,
	BioPAXSmallMolecule: SBOSimpleChemical,
	BioPAXComplex:       SBONonCovalentComplex,

	// One-way aliases: remapping these loses the alternate spelling.
	BioPAXDnaAlt: SBODna,
	BioPAXRnaAlt: SBORna,
}

// SequenceEncodingToSBOL2 translates EDAM sequence-notation terms used by
// SBOL3 into the encoding URLs SBOL2 sequences expect.
var SequenceEncodingToSBOL2 = RemapTable{
	EncodingIUPACDna:     SBOL2EncodingIUPAC,
	EncodingIUPACProtein: SBOL2EncodingIUPACProtein,
	EncodingSMILES:       SBOL2EncodingSMILES,
}

// SequenceEncodingToSBOL3 is the exact inverse of SequenceEncodingToSBOL2.
var SequenceEncodingToSBOL3 = RemapTable{
	SBOL2EncodingIUPAC:        EncodingIUPACDna,
	SBOL2EncodingIUPACProtein: EncodingIUPACProtein,
	SBOL2EncodingSMILES:       EncodingSMILES,
}
