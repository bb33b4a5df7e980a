package vm

import "fmt"

// Execute runs the three-phase proof checking pipeline: gamma populates
// the axiom set, claims populates the obligations a proof must discharge,
// and proof is executed against those axioms as its initial memory. It
// returns nil only if every obligation claims raised was discharged by
// the time the proof buffer runs out. maxBufferBytes bounds the size of
// each of the three buffers; zero disables the check.
func Execute(gamma, claimsBuf, proof []byte, limits Limits, maxBufferBytes int) error {
	if err := checkBufferSize("gamma", gamma, maxBufferBytes); err != nil {
		return err
	}
	if err := checkBufferSize("claims", claimsBuf, maxBufferBytes); err != nil {
		return err
	}
	if err := checkBufferSize("proof", proof, maxBufferBytes); err != nil {
		return err
	}

	gammaState := newState(PhaseGamma, limits)
	if err := run(gammaState, gamma); err != nil {
		return fmt.Errorf("gamma phase: %w", err)
	}

	claimState := newState(PhaseClaim, limits)
	if err := run(claimState, claimsBuf); err != nil {
		return fmt.Errorf("claims phase: %w", err)
	}

	proofState := newState(PhaseProof, limits)
	proofState.Memory = gammaState.Axioms
	proofState.Claims = claimState.Claims
	if err := run(proofState, proof); err != nil {
		return fmt.Errorf("proof phase: %w", err)
	}

	if !proofState.Claims.empty() {
		return fmt.Errorf("proof phase: %w", ErrJournalNotExhausted)
	}
	return nil
}

func checkBufferSize(name string, buf []byte, maxBufferBytes int) error {
	if maxBufferBytes > 0 && len(buf) > maxBufferBytes {
		return fmt.Errorf("%s buffer: %w", name, ErrBufferTooLarge)
	}
	return nil
}
