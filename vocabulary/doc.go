// Package vocabulary provides the namespace IRIs, class and predicate
// terms, and vocabulary remap tables shared by both SBOL generations.
//
// # Namespaces
//
// Constants cover the SBOL2 and SBOL3 core namespaces, the standard
// ontologies both build on (RDF, PROV-O, OM, Dublin Core terms), and the
// converter's private bookkeeping namespace under
// http://sboltools.org/backport#.
//
// # Remap Tables
//
// Two controlled vocabularies diverge between the generations and are
// translated through fixed tables:
//
//   - Component types: SBO biochemical entity classes (SBOL3) versus
//     BioPAX classes (SBOL2): DNA, RNA, protein, small molecule, complex.
//   - Sequence encodings: EDAM format terms (SBOL3) versus notation URLs
//     (SBOL2): IUPAC nucleotide, IUPAC protein, SMILES.
//
// Lookup is O(1) and a missing key returns the input unchanged, because
// both schemas permit arbitrary ontology terms beyond the remapped set:
//
//	types2 := vocabulary.ComponentTypeToSBOL2.RemapAll(comp.Types)
//
// The forward and reverse tables are true inverses for every canonical
// term they cover; the SBOL2-to-SBOL3 type table additionally folds two
// alternate BioPAX spellings into their SBO terms one-way.
package vocabulary
