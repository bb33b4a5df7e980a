package amlchecker

// Buffers holds the three byte streams a verifier run consumes: Gamma
// declares the axiom set, Claims declares the proof obligations, and
// Proof is checked against both. Any of the three may be nil or empty.
type Buffers struct {
	Gamma  []byte
	Claims []byte
	Proof  []byte
}
