package amlchecker

import (
	"errors"
	"testing"
)

func TestVerifyAcceptsAMinimalProof(t *testing.T) {
	// Claim A -> A and prove it from Prop1/Prop2/ModusPonens/Instantiate
	// alone, for the concrete symbol A = Symbol(0). Opcode values mirror
	// internal/aml-checker/vm's wire format exactly.
	const (
		opSymbol      = 4
		opImplication = 5
		opProp1       = 12
		opProp2       = 13
		opModusPonens = 21
		opInstantiate = 26
		opPublish     = 30
	)

	aToA := func() []byte {
		return []byte{opSymbol, 0, opSymbol, 0, opImplication}
	}

	claims := append(aToA(), opPublish)

	proof := []byte{}
	proof = append(proof, opSymbol, 0)
	proof = append(proof, aToA()...)
	proof = append(proof, opSymbol, 0)
	proof = append(proof, opProp2)
	proof = append(proof, opInstantiate, 3, 0, 1, 2)
	proof = append(proof, aToA()...)
	proof = append(proof, opSymbol, 0)
	proof = append(proof, opProp1)
	proof = append(proof, opInstantiate, 2, 0, 1)
	proof = append(proof, opModusPonens)
	proof = append(proof, opSymbol, 0, opSymbol, 0)
	proof = append(proof, opProp1)
	proof = append(proof, opInstantiate, 2, 0, 1)
	proof = append(proof, opModusPonens)
	proof = append(proof, opPublish)

	ok, err := Verify(Buffers{Claims: claims, Proof: proof})
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("Verify returned false for a valid proof")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ok, err := Verify(Buffers{Proof: []byte{254}})
	if err == nil {
		t.Fatal("expected an error for an unrecognized opcode")
	}
	if ok {
		t.Fatal("expected ok=false alongside a non-nil error")
	}
	var ve *VerifierError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a *VerifierError, got %T", err)
	}
	if ve.Code != ErrDecode {
		t.Fatalf("got code %v, want ErrDecode", ve.Code)
	}
}

func TestVerifyAcceptsNilConfig(t *testing.T) {
	ok, err := VerifyWithConfig(Buffers{}, nil)
	// An empty gamma, empty claims, and empty proof verify trivially:
	// there is nothing to discharge.
	if err != nil {
		t.Fatalf("unexpected error on empty buffers: %v", err)
	}
	if !ok {
		t.Fatal("expected empty buffers to verify trivially")
	}
}
