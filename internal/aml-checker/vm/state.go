package vm

// Phase names which of the three buffers is currently executing. Publish's
// behavior, and what the initial Memory is seeded with, both depend on it.
type Phase uint8

const (
	// PhaseGamma executes the gamma buffer. Publish here appends the
	// popped pattern to Axioms as a proved fact.
	PhaseGamma Phase = iota
	// PhaseClaim executes the claims buffer. Publish here appends the
	// popped pattern to Claims, to be discharged during PhaseProof.
	PhaseClaim
	// PhaseProof executes the proof buffer, seeded with the axioms
	// PhaseGamma collected as its initial Memory. Publish here pops one
	// claim and one proved theorem and requires them to match exactly.
	PhaseProof
)

// Limits bounds the resources one phase's execution may consume. It is
// the kernel's own view of config.Config: the two packages are kept
// independent so the kernel never has to import the ambient config type.
type Limits struct {
	MaxStackDepth    int
	MaxMemoryEntries int
}

// State holds everything one phase's execution reads and mutates: the
// working Stack, the named-result Memory, the pending proof obligations
// in Claims, and (PhaseGamma only) the Axioms accumulator that seeds the
// next phase's Memory.
type State struct {
	Phase  Phase
	Stack  stack
	Memory memory
	Claims claims
	Axioms memory
}

func newState(phase Phase, limits Limits) *State {
	return &State{
		Phase:  phase,
		Stack:  stack{maxDepth: limits.MaxStackDepth},
		Memory: memory{maxEntries: limits.MaxMemoryEntries},
		Axioms: memory{maxEntries: limits.MaxMemoryEntries},
	}
}

// run drives one phase to completion: decode and execute instructions from
// buf until the buffer is exhausted, or a fatal condition is raised.
func run(st *State, buf []byte) error {
	r := newReader(buf)
	for {
		opByte, ok := r.next()
		if !ok {
			return nil
		}
		op := Opcode(opByte)
		if !op.Known() {
			return ErrDecodeUnknownOpcode
		}
		if op.Unimplemented() {
			return ErrUnimplementedOpcode
		}
		if err := dispatch(st, r, op); err != nil {
			return err
		}
		if st.Stack.maxDepth > 0 && len(st.Stack.items) > st.Stack.maxDepth {
			return ErrStackOverflow
		}
		if st.Memory.maxEntries > 0 && len(st.Memory.items) > st.Memory.maxEntries {
			return ErrMemoryOverflow
		}
		if st.Axioms.maxEntries > 0 && len(st.Axioms.items) > st.Axioms.maxEntries {
			return ErrMemoryOverflow
		}
	}
}
