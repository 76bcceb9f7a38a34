package vocabulary

// Standard Namespace IRIs
//
// These constants provide the namespace prefixes of the ontologies both
// SBOL generations build on. Property IRIs under any of these prefixes are
// part of an object's core schema; anything else a document carries is an
// extension property and passes through conversion untouched.
//
// References:
// - SBOL2: https://sbolstandard.org/docs/SBOL2.3.0.pdf
// - SBOL3: https://sbolstandard.org/docs/SBOL3.1.pdf
// - PROV-O: https://www.w3.org/TR/prov-o/
// - OM: http://www.ontology-of-units-of-measure.org/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
const (
	// SBOL2NS is the SBOL 2 core namespace.
	SBOL2NS = "http://sbols.org/v2#"

	// SBOL3NS is the SBOL 3 core namespace.
	SBOL3NS = "http://sbols.org/v3#"

	// RDFNS is the RDF syntax namespace (rdf:type and friends).
	RDFNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// ProvNS is the W3C provenance ontology namespace.
	ProvNS = "http://www.w3.org/ns/prov#"

	// OmNS is the Ontology of units of Measure namespace.
	OmNS = "http://www.ontology-of-units-of-measure.org/resource/om-2/"

	// DCTermsNS is the Dublin Core terms namespace. SBOL2 expresses
	// titles and descriptions through dcterms via its generic
	// annotation mechanism rather than through dedicated properties.
	DCTermsNS = "http://purl.org/dc/terms/"
)

// Converter Bookkeeping IRIs
//
// The converter records two private properties under its own namespace so
// that a conversion round trip is lossless. Neither property is ever
// classified as an extension property.
const (
	// BackportNS is the namespace owned by the conversion engine.
	BackportNS = "http://sboltools.org/backport#"

	// BackportSBOL2Version records an SBOL2 object's version string on
	// its SBOL3 counterpart, so a later trip back to SBOL2 restores it.
	BackportSBOL2Version = BackportNS + "sbol2version"

	// BackportSBOL3Namespace records an SBOL3 object's owning namespace
	// on its SBOL2 counterpart. SBOL2 has no namespace concept, and the
	// namespace is not always a prefix of the identity, so this is the
	// only way a round trip can recover it exactly.
	BackportSBOL3Namespace = BackportNS + "sbol3namespace"
)

// RDF Predicate IRIs
const (
	// RDFType is the rdf:type predicate.
	RDFType = RDFNS + "type"
)

// PROV-O Term IRIs shared by both schemas.
const (
	ProvActivity       = ProvNS + "Activity"
	ProvAgent          = ProvNS + "Agent"
	ProvPlan           = ProvNS + "Plan"
	ProvUsage          = ProvNS + "Usage"
	ProvAssociation    = ProvNS + "Association"
	ProvWasDerivedFrom = ProvNS + "wasDerivedFrom"
	ProvWasGeneratedBy = ProvNS + "wasGeneratedBy"
	ProvStartedAtTime  = ProvNS + "startedAtTime"
	ProvEndedAtTime    = ProvNS + "endedAtTime"
)

// Dublin Core Term IRIs used by the SBOL2 generic-annotation mechanism.
const (
	DCTermsTitle       = DCTermsNS + "title"
	DCTermsDescription = DCTermsNS + "description"
)

// SBOL2 Class IRIs
const (
	SBOL2ComponentDefinition = SBOL2NS + "ComponentDefinition"
	SBOL2ModuleDefinition    = SBOL2NS + "ModuleDefinition"
	SBOL2Model               = SBOL2NS + "Model"
	SBOL2Sequence            = SBOL2NS + "Sequence"
	SBOL2Collection          = SBOL2NS + "Collection"
	SBOL2Attachment          = SBOL2NS + "Attachment"
	SBOL2CombinatorialDeriv  = SBOL2NS + "CombinatorialDerivation"
	SBOL2Implementation      = SBOL2NS + "Implementation"
	SBOL2Experiment          = SBOL2NS + "Experiment"
	SBOL2ExperimentalData    = SBOL2NS + "ExperimentalData"
	SBOL2Component           = SBOL2NS + "Component"
)

// SBOL2 Predicate IRIs
const (
	SBOL2DisplayID       = SBOL2NS + "displayId"
	SBOL2Version         = SBOL2NS + "version"
	SBOL2Type            = SBOL2NS + "type"
	SBOL2Role            = SBOL2NS + "role"
	SBOL2SequenceRef     = SBOL2NS + "sequence"
	SBOL2ComponentRef    = SBOL2NS + "component"
	SBOL2Definition      = SBOL2NS + "definition"
	SBOL2RoleIntegration = SBOL2NS + "roleIntegration"
	SBOL2SourceLocation  = SBOL2NS + "sourceLocation"
	SBOL2Elements        = SBOL2NS + "elements"
	SBOL2Encoding        = SBOL2NS + "encoding"
	SBOL2Member          = SBOL2NS + "member"
	SBOL2Built           = SBOL2NS + "built"
	SBOL2AttachmentRef   = SBOL2NS + "attachment"
	SBOL2Start           = SBOL2NS + "start"
	SBOL2End             = SBOL2NS + "end"
	SBOL2OrientationProp = SBOL2NS + "orientation"
)

// SBOL3 Class IRIs
const (
	SBOL3Component              = SBOL3NS + "Component"
	SBOL3Sequence               = SBOL3NS + "Sequence"
	SBOL3Collection             = SBOL3NS + "Collection"
	SBOL3Implementation         = SBOL3NS + "Implementation"
	SBOL3Attachment             = SBOL3NS + "Attachment"
	SBOL3CombinatorialDeriv     = SBOL3NS + "CombinatorialDerivation"
	SBOL3Experiment             = SBOL3NS + "Experiment"
	SBOL3ExperimentalData       = SBOL3NS + "ExperimentalData"
	SBOL3Model                  = SBOL3NS + "Model"
	SBOL3SubComponent           = SBOL3NS + "SubComponent"
	SBOL3ComponentReference     = SBOL3NS + "ComponentReference"
	SBOL3LocalSubComponent      = SBOL3NS + "LocalSubComponent"
	SBOL3ExternallyDefined      = SBOL3NS + "ExternallyDefined"
	SBOL3SequenceFeature        = SBOL3NS + "SequenceFeature"
	SBOL3VariableFeature        = SBOL3NS + "VariableFeature"
	SBOL3RangeLocation          = SBOL3NS + "Range"
	SBOL3CutLocation            = SBOL3NS + "Cut"
	SBOL3EntireSequenceLocation = SBOL3NS + "EntireSequence"
)

// SBOL3 Predicate IRIs
const (
	SBOL3DisplayID       = SBOL3NS + "displayId"
	SBOL3Name            = SBOL3NS + "name"
	SBOL3Description     = SBOL3NS + "description"
	SBOL3HasNamespace    = SBOL3NS + "hasNamespace"
	SBOL3HasAttachment   = SBOL3NS + "hasAttachment"
	SBOL3Type            = SBOL3NS + "type"
	SBOL3Role            = SBOL3NS + "role"
	SBOL3HasSequence     = SBOL3NS + "hasSequence"
	SBOL3HasFeature      = SBOL3NS + "hasFeature"
	SBOL3HasModel        = SBOL3NS + "hasModel"
	SBOL3HasLocation     = SBOL3NS + "hasLocation"
	SBOL3SourceLocation  = SBOL3NS + "sourceLocation"
	SBOL3Elements        = SBOL3NS + "elements"
	SBOL3Encoding        = SBOL3NS + "encoding"
	SBOL3Member          = SBOL3NS + "member"
	SBOL3Built           = SBOL3NS + "built"
	SBOL3RoleIntegration = SBOL3NS + "roleIntegration"
	SBOL3Orientation     = SBOL3NS + "orientation"
	SBOL3Start           = SBOL3NS + "start"
	SBOL3End             = SBOL3NS + "end"
	SBOL3At              = SBOL3NS + "at"

	// SBOL3InstanceOf links a SubComponent to the Component it
	// instantiates. The identity remap pass rewrites subjects of
	// exactly this predicate and nothing else.
	SBOL3InstanceOf = SBOL3NS + "instanceOf"
)

// Biochemical Entity Class IRIs
//
// SBOL3 classifies components with Systems Biology Ontology terms; SBOL2
// used BioPAX classes for the same distinctions. Both vocabularies are
// open-ended, so only the commonly used terms are remapped and everything
// else passes through unchanged.
const (
	// SBO terms (SBOL3 component types)
	SBODna                = "https://identifiers.org/SBO:0000251"
	SBORna                = "https://identifiers.org/SBO:0000250"
	SBOProtein            = "https://identifiers.org/SBO:0000252"
	SBOSimpleChemical     = "https://identifiers.org/SBO:0000247"
	SBONonCovalentComplex = "https://identifiers.org/SBO:0000253"
	SBOFunctionalEntity   = "https://identifiers.org/SBO:0000241"

	// BioPAX classes (SBOL2 component-definition types)
	BioPAXDna           = "http://www.biopax.org/release/biopax-level3.owl#DnaRegion"
	BioPAXRna           = "http://www.biopax.org/release/biopax-level3.owl#RnaRegion"
	BioPAXProtein       = "http://www.biopax.org/release/biopax-level3.owl#Protein"
	BioPAXSmallMolecule = "http://www.biopax.org/release/biopax-level3.owl#SmallMolecule"
	BioPAXComplex       = "http://www.biopax.org/release/biopax-level3.owl#Complex"

	// Alternate BioPAX spellings found in the wild. These convert to
	// SBOL3 but are never produced when converting back, which makes
	// the type remap tables inverse only over their canonical terms.
	BioPAXDnaAlt = "http://www.biopax.org/release/biopax-level3.owl#Dna"
	BioPAXRnaAlt = "http://www.biopax.org/release/biopax-level3.owl#Rna"
)

// Sequence Encoding IRIs
//
// SBOL3 identifies sequence notations with EDAM format terms; SBOL2 used
// ad-hoc URLs pointing at the notation definitions.
const (
	// EDAM terms (SBOL3 sequence encodings)
	EncodingIUPACDna     = "https://identifiers.org/edam:format_1207"
	EncodingIUPACProtein = "https://identifiers.org/edam:format_1208"
	EncodingSMILES       = "https://identifiers.org/edam:format_1196"

	// SBOL2 sequence encodings
	SBOL2EncodingIUPAC        = "http://www.chem.qmul.ac.uk/iubmb/misc/naseq.html"
	SBOL2EncodingIUPACProtein = "http://www.chem.qmul.ac.uk/iupac/AminoAcid/"
	SBOL2EncodingSMILES       = "http://www.opensmiles.org/opensmiles.html"
)
