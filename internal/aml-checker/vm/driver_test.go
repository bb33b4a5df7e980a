package vm

import "testing"

// These byte sequences encode the standard combinator proof of A -> A
// (from Prop1 and Prop2 alone, via two Modus Ponens steps), for a
// concrete symbol A = Symbol(0). Each step is commented with the theorem
// it leaves on top of the stack.
//
//  1. Prop2[phi0:=A, phi1:=A->A, phi2:=A]:
//       (A -> ((A->A)->A)) -> ((A -> (A->A)) -> (A->A))
//  2. Prop1[phi0:=A, phi1:=A->A]:
//       A -> ((A->A)->A)
//  3. ModusPonens(1, 2):
//       (A -> (A->A)) -> (A->A)
//  4. Prop1[phi0:=A, phi1:=A]:
//       A -> (A->A)
//  5. ModusPonens(3, 4):
//       A -> A
func noLimits() Limits { return Limits{} }

func symbolBytes(id byte) []byte { return []byte{byte(OpSymbol), id} }

func implicationBytes() []byte { return []byte{byte(OpImplication)} }

func aToABytes() []byte {
	// push left=A, push right=A, Implication => A -> A
	return append(append([]byte{}, symbolBytes(0)...), append(symbolBytes(0), implicationBytes()...)...)
}

func instantiateBytes(ids ...byte) []byte {
	return append([]byte{byte(OpInstantiate), byte(len(ids))}, ids...)
}

func concatBytes(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func proofOfAImpliesA() []byte {
	return concatBytes(
		// Prop2[0:=A, 1:=A->A, 2:=A]
		symbolBytes(0), aToABytes(), symbolBytes(0),
		[]byte{byte(OpProp2)},
		instantiateBytes(0, 1, 2),

		// Prop1[0:=A, 1:=A->A]
		aToABytes(), symbolBytes(0),
		[]byte{byte(OpProp1)},
		instantiateBytes(0, 1),

		// ModusPonens: combine the two into (A->(A->A))->(A->A)
		[]byte{byte(OpModusPonens)},

		// Prop1[0:=A, 1:=A]
		symbolBytes(0), symbolBytes(0),
		[]byte{byte(OpProp1)},
		instantiateBytes(0, 1),

		// ModusPonens: combine into A -> A
		[]byte{byte(OpModusPonens)},

		// Publish: discharge the pending claim against the proved theorem
		[]byte{byte(OpPublish)},
	)
}

func claimOfAImpliesA() []byte {
	return concatBytes(aToABytes(), []byte{byte(OpPublish)})
}

func TestExecuteProvesAImpliesA(t *testing.T) {
	var gamma []byte
	claims := claimOfAImpliesA()
	proof := proofOfAImpliesA()

	if err := Execute(gamma, claims, proof, noLimits(), 0); err != nil {
		t.Fatalf("expected the standard A -> A proof to verify, got: %v", err)
	}
}

func TestExecuteRejectsMismatchedClaim(t *testing.T) {
	// Claim something unrelated: the bare symbol A, not A -> A.
	claims := concatBytes(symbolBytes(0), []byte{byte(OpPublish)})
	proof := proofOfAImpliesA()

	if err := Execute(nil, claims, proof, noLimits(), 0); err == nil {
		t.Fatal("expected a mismatched claim to be rejected")
	}
}

func TestExecuteRejectsUndischargedClaim(t *testing.T) {
	claims := claimOfAImpliesA()
	// An empty proof buffer never discharges the claim.
	if err := Execute(nil, claims, nil, noLimits(), 0); err == nil {
		t.Fatal("expected an undischarged claim to be rejected")
	}
}

func TestExecuteRejectsUnknownOpcode(t *testing.T) {
	proof := []byte{250}
	if err := Execute(nil, nil, proof, noLimits(), 0); err == nil {
		t.Fatal("expected an unrecognized opcode to be rejected")
	}
}

func TestExecuteRejectsOversizedBuffer(t *testing.T) {
	proof := make([]byte, 16)
	if err := Execute(nil, nil, proof, noLimits(), 8); err == nil {
		t.Fatal("expected a buffer exceeding the configured size limit to be rejected")
	}
}

func TestExecuteEnforcesStackDepth(t *testing.T) {
	// Ten EVar pushes against a stack depth limit of five must overflow.
	var proof []byte
	for i := 0; i < 10; i++ {
		proof = append(proof, byte(OpEVar), byte(i))
	}
	limits := Limits{MaxStackDepth: 5}
	if err := Execute(nil, nil, proof, limits, 0); err == nil {
		t.Fatal("expected exceeding the configured stack depth to be rejected")
	}
}
