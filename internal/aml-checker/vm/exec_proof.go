package vm

import "github.com/mlproof/aml-checker/internal/aml-checker/pattern"

func execProp1(st *State, _ *reader) error {
	st.Stack.push(Term{Tag: TagProved, Pattern: schemaProp1()})
	return nil
}

func execProp2(st *State, _ *reader) error {
	st.Stack.push(Term{Tag: TagProved, Pattern: schemaProp2()})
	return nil
}

func execProp3(st *State, _ *reader) error {
	st.Stack.push(Term{Tag: TagProved, Pattern: schemaProp3()})
	return nil
}

func execQuantifier(st *State, _ *reader) error {
	st.Stack.push(Term{Tag: TagProved, Pattern: schemaQuantifier()})
	return nil
}

func execExistence(st *State, _ *reader) error {
	st.Stack.push(Term{Tag: TagProved, Pattern: schemaExistence()})
	return nil
}

// execModusPonens pops the antecedent theorem, then the implication
// theorem, and requires the implication's left side to match the
// antecedent exactly.
func execModusPonens(st *State, _ *reader) error {
	antecedent, err := st.Stack.popProved()
	if err != nil {
		return err
	}
	implication, err := st.Stack.popProved()
	if err != nil {
		return err
	}
	if implication.Kind != pattern.KindImplication {
		return ErrInferenceMismatch
	}
	if !pattern.Equal(implication.Left, antecedent) {
		return ErrInferenceMismatch
	}
	st.Stack.push(Term{Tag: TagProved, Pattern: implication.Right})
	return nil
}

// execGeneralization pops phi1 -> phi2 and, requiring evar 0 to be fresh
// in phi2, produces (exists 0 . phi1) -> phi2.
func execGeneralization(st *State, _ *reader) error {
	implication, err := st.Stack.popProved()
	if err != nil {
		return err
	}
	if implication.Kind != pattern.KindImplication {
		return ErrInferenceMismatch
	}
	const boundEvar = 0
	if !pattern.EFresh(implication.Right, boundEvar) {
		return ErrInferenceMismatch
	}
	st.Stack.push(Term{
		Tag:     TagProved,
		Pattern: pattern.Implies(pattern.Exists(boundEvar, implication.Left), implication.Right),
	})
	return nil
}

// execFrame implements the framing inference rule: given phi1 -> phi2 and
// a fixed application context, lifts the implication under that context.
// A one-byte operand selects which side of the application the premise
// occupies: 0 for the left, 1 for the right.
func execFrame(st *State, r *reader) error {
	side, err := r.byteOrErr("frame side")
	if err != nil {
		return err
	}
	ctx, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	implication, err := st.Stack.popProved()
	if err != nil {
		return err
	}
	if implication.Kind != pattern.KindImplication {
		return ErrInferenceMismatch
	}

	var left, right *pattern.Pattern
	switch side {
	case 0:
		left = pattern.App(implication.Left, ctx)
		right = pattern.App(implication.Right, ctx)
	case 1:
		left = pattern.App(ctx, implication.Left)
		right = pattern.App(ctx, implication.Right)
	default:
		return ErrInferenceMismatch
	}
	st.Stack.push(Term{Tag: TagProved, Pattern: pattern.Implies(left, right)})
	return nil
}

// execSubstitution is the proof-level analogue of the SSubst pattern
// builder: it pops a plug, then a proved metatheorem, and pushes the
// result of substituting the plug for svar_id in that theorem, applying
// the same redundancy short-circuit as the builder opcode.
func execSubstitution(st *State, r *reader) error {
	svarID, err := r.byteOrErr("substitution svar id")
	if err != nil {
		return err
	}
	plug, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	theorem, err := st.Stack.popProved()
	if err != nil {
		return err
	}
	if !isSubstitutable(theorem) {
		return ErrConcreteSubst
	}

	wrapped := pattern.SSubst(theorem, svarID, plug)
	if !pattern.WellFormed(wrapped) {
		st.Stack.push(Term{Tag: TagProved, Pattern: theorem})
	} else {
		st.Stack.push(Term{Tag: TagProved, Pattern: wrapped})
	}
	return nil
}

// execKnasterTarski implements the pre-fixpoint elimination rule: given a
// proved phi[psi/X] -> psi and the pattern mu X . phi, produces
// mu X . phi -> psi.
func execKnasterTarski(st *State, _ *reader) error {
	mu, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	if mu.Kind != pattern.KindMu {
		return ErrInferenceMismatch
	}
	premise, err := st.Stack.popProved()
	if err != nil {
		return err
	}
	if premise.Kind != pattern.KindImplication {
		return ErrInferenceMismatch
	}
	expected := pattern.ApplySSubst(mu.Sub, mu.Id, premise.Right)
	if !pattern.Equal(premise.Left, expected) {
		return ErrInferenceMismatch
	}
	st.Stack.push(Term{Tag: TagProved, Pattern: pattern.Implies(mu, premise.Right)})
	return nil
}

// execInstantiate pops the meta-term (pattern or proved), then n (id,
// plug) pairs in that order — each pair contributes one id byte followed
// by popping one more pattern off the stack — and pushes the
// simultaneously instantiated result carrying the same tag it started
// with.
func execInstantiate(st *State, r *reader) error {
	n, err := r.byteOrErr("instantiate count")
	if err != nil {
		return err
	}
	metaTerm, err := st.Stack.pop()
	if err != nil {
		return err
	}

	ids := make(pattern.IdList, 0, n)
	plugs := make([]*pattern.Pattern, 0, n)
	for i := 0; i < int(n); i++ {
		id, err := r.byteOrErr("instantiate id")
		if err != nil {
			return err
		}
		plug, err := st.Stack.popPattern()
		if err != nil {
			return err
		}
		ids = append(ids, id)
		plugs = append(plugs, plug)
	}

	result, err := pattern.Instantiate(metaTerm.Pattern, ids, plugs)
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: metaTerm.Tag, Pattern: result})
	return nil
}

func execPop(st *State, _ *reader) error {
	_, err := st.Stack.pop()
	return err
}

func execSave(st *State, _ *reader) error {
	top, err := st.Stack.last()
	if err != nil {
		return err
	}
	st.Memory.save(top)
	return nil
}

func execLoad(st *State, r *reader) error {
	index, err := r.byteOrErr("load index")
	if err != nil {
		return err
	}
	e, err := st.Memory.load(index)
	if err != nil {
		return err
	}
	st.Stack.push(e)
	return nil
}

// execPublish behaves differently in each phase: in PhaseGamma it records
// a new axiom, in PhaseClaim it records a new proof obligation, and in
// PhaseProof it discharges the next pending obligation by requiring it to
// equal the proved theorem on the stack.
func execPublish(st *State, _ *reader) error {
	switch st.Phase {
	case PhaseGamma:
		p, err := st.Stack.popPattern()
		if err != nil {
			return err
		}
		st.Axioms.save(Term{Tag: TagProved, Pattern: p})
		return nil
	case PhaseClaim:
		p, err := st.Stack.popPattern()
		if err != nil {
			return err
		}
		st.Claims.push(p)
		return nil
	case PhaseProof:
		claim, err := st.Claims.pop()
		if err != nil {
			return err
		}
		theorem, err := st.Stack.popProved()
		if err != nil {
			return err
		}
		if !pattern.Equal(claim, theorem) {
			return ErrInferenceMismatch
		}
		return nil
	default:
		return ErrInferenceMismatch
	}
}

// dispatch routes one already-identified, already-known opcode to its
// handler. Builder opcodes and proof opcodes are split across two files
// purely for readability; this switch is the single source of truth for
// which function handles which byte.
func dispatch(st *State, r *reader, op Opcode) error {
	switch op {
	case OpEVar:
		return execEVar(st, r)
	case OpSVar:
		return execSVar(st, r)
	case OpSymbol:
		return execSymbol(st, r)
	case OpImplication:
		return execImplication(st, r)
	case OpApplication:
		return execApplication(st, r)
	case OpMu:
		return execMu(st, r)
	case OpExists:
		return execExists(st, r)
	case OpMetaVar:
		return execMetaVar(st, r)
	case OpESubst:
		return execESubst(st, r)
	case OpSSubst:
		return execSSubst(st, r)

	case OpProp1:
		return execProp1(st, r)
	case OpProp2:
		return execProp2(st, r)
	case OpProp3:
		return execProp3(st, r)
	case OpQuantifier:
		return execQuantifier(st, r)
	case OpExistence:
		return execExistence(st, r)

	case OpModusPonens:
		return execModusPonens(st, r)
	case OpGeneralization:
		return execGeneralization(st, r)
	case OpFrame:
		return execFrame(st, r)
	case OpSubstitution:
		return execSubstitution(st, r)
	case OpKnasterTarski:
		return execKnasterTarski(st, r)

	case OpInstantiate:
		return execInstantiate(st, r)

	case OpPop:
		return execPop(st, r)
	case OpSave:
		return execSave(st, r)
	case OpLoad:
		return execLoad(st, r)
	case OpPublish:
		return execPublish(st, r)

	case OpCleanMetaVar:
		return execCleanMetaVar(st, r)

	case OpEOF:
		return nil

	default:
		// Known() and Unimplemented() are checked by the caller before
		// dispatch is ever invoked, so reaching here means every case
		// above is missing a branch for an opcode info claims to know.
		return ErrDecodeUnknownOpcode
	}
}
