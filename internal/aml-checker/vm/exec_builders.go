package vm

import "github.com/mlproof/aml-checker/internal/aml-checker/pattern"

// execEVar, execSVar, and execSymbol all read a single id byte and push
// the corresponding concrete pattern.

func execEVar(st *State, r *reader) error {
	id, err := r.byteOrErr("evar id")
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.EVar(id)})
	return nil
}

func execSVar(st *State, r *reader) error {
	id, err := r.byteOrErr("svar id")
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.SVar(id)})
	return nil
}

func execSymbol(st *State, r *reader) error {
	id, err := r.byteOrErr("symbol id")
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.Symbol(id)})
	return nil
}

// execMetaVar reads an id followed by five length-prefixed id lists
// (e_fresh, s_fresh, positive, negative, app_ctx_holes, in that order),
// constructs the meta-variable, and requires the result to be well-formed
// before it reaches the stack.
func execMetaVar(st *State, r *reader) error {
	id, err := r.byteOrErr("metavar id")
	if err != nil {
		return err
	}
	eFresh, err := r.idList("e_fresh")
	if err != nil {
		return err
	}
	sFresh, err := r.idList("s_fresh")
	if err != nil {
		return err
	}
	positive, err := r.idList("positive")
	if err != nil {
		return err
	}
	negative, err := r.idList("negative")
	if err != nil {
		return err
	}
	appCtxHoles, err := r.idList("app_ctx_holes")
	if err != nil {
		return err
	}

	mv := pattern.MetaVar(id, eFresh, sFresh, positive, negative, appCtxHoles)
	if !pattern.WellFormed(mv) {
		return ErrIllFormedMetaVar
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: mv})
	return nil
}

// execCleanMetaVar reads only an id byte and pushes an unconstrained
// meta-variable: the wire-format shortcut for a MetaVar whose five
// constraint lists are all empty, skipping their five length-prefix
// bytes entirely.
func execCleanMetaVar(st *State, r *reader) error {
	id, err := r.byteOrErr("clean metavar id")
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.MetaVarUnconstrained(id)})
	return nil
}

func execImplication(st *State, _ *reader) error {
	right, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	left, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.Implies(left, right)})
	return nil
}

func execApplication(st *State, _ *reader) error {
	right, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	left, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.App(left, right)})
	return nil
}

func execExists(st *State, r *reader) error {
	id, err := r.byteOrErr("exists binder id")
	if err != nil {
		return err
	}
	sub, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: pattern.Exists(id, sub)})
	return nil
}

func execMu(st *State, r *reader) error {
	id, err := r.byteOrErr("mu binder id")
	if err != nil {
		return err
	}
	sub, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	mu := pattern.Mu(id, sub)
	if !pattern.WellFormed(mu) {
		return ErrIllFormedMu
	}
	st.Stack.push(Term{Tag: TagPattern, Pattern: mu})
	return nil
}

// isSubstitutable reports whether a pattern is the kind of node ESubst and
// SSubst are allowed to wrap: a meta-variable or another pending
// substitution. Wrapping a concrete node would never be resolved by a
// later instantiation, since nothing ever introduces a meta-variable
// inside one.
func isSubstitutable(p *pattern.Pattern) bool {
	switch p.Kind {
	case pattern.KindMetaVar, pattern.KindESubst, pattern.KindSSubst:
		return true
	default:
		return false
	}
}

// execESubst and execSSubst pop the plug, then the pattern beneath it, and
// build an explicit substitution node over that pattern. The two opcodes
// check the freshly built node's well-formedness with opposite polarity:
// ESubst pushes the original pattern when the node is well-formed (the
// evar occurs free in the pattern) and the wrapper otherwise; SSubst
// pushes the wrapper when the node is well-formed (the svar occurs free in
// the pattern) and the original pattern otherwise.
func execESubst(st *State, r *reader) error {
	evarID, err := r.byteOrErr("esubst evar id")
	if err != nil {
		return err
	}
	plug, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	body, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	if !isSubstitutable(body) {
		return ErrConcreteSubst
	}

	wrapped := pattern.ESubst(body, evarID, plug)
	if pattern.WellFormed(wrapped) {
		st.Stack.push(Term{Tag: TagPattern, Pattern: body})
	} else {
		st.Stack.push(Term{Tag: TagPattern, Pattern: wrapped})
	}
	return nil
}

func execSSubst(st *State, r *reader) error {
	svarID, err := r.byteOrErr("ssubst svar id")
	if err != nil {
		return err
	}
	plug, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	body, err := st.Stack.popPattern()
	if err != nil {
		return err
	}
	if !isSubstitutable(body) {
		return ErrConcreteSubst
	}

	wrapped := pattern.SSubst(body, svarID, plug)
	if !pattern.WellFormed(wrapped) {
		st.Stack.push(Term{Tag: TagPattern, Pattern: body})
	} else {
		st.Stack.push(Term{Tag: TagPattern, Pattern: wrapped})
	}
	return nil
}
