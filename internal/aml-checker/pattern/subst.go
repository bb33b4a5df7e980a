package pattern

import "fmt"

// ConstraintError reports that instantiating a meta-variable with a given
// plug would violate one of its declared freshness or polarity
// constraints. It is always fatal to the run that raised it.
type ConstraintError struct {
	MetaVarID Id
	Kind      string // "e_fresh", "s_fresh", "positive", or "negative"
	Violating Id
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("instantiation of meta-variable %d breaks a %s constraint on %d",
		e.MetaVarID, e.Kind, e.Violating)
}

// ApplyESubst performs one capture-avoiding element-variable substitution
// step, pushing the substitution through every constructor that is not
// itself opaque to it. MetaVar, ESubst, and SSubst nodes are opaque: the
// substitution is wrapped around them instead, to be resolved later once
// they are themselves instantiated.
func ApplyESubst(p *Pattern, evarID Id, plug *Pattern) *Pattern {
	wrap := func() *Pattern { return ESubst(p, evarID, plug) }

	switch p.Kind {
	case KindEVar:
		if p.Id == evarID {
			return plug
		}
		return p
	case KindImplication:
		return Implies(ApplyESubst(p.Left, evarID, plug), ApplyESubst(p.Right, evarID, plug))
	case KindApplication:
		return App(ApplyESubst(p.Left, evarID, plug), ApplyESubst(p.Right, evarID, plug))
	case KindExists:
		if p.Id == evarID {
			return p
		}
		return Exists(p.Id, ApplyESubst(p.Sub, evarID, plug))
	case KindMu:
		return Mu(p.Id, ApplyESubst(p.Sub, evarID, plug))
	case KindESubst, KindSSubst, KindMetaVar:
		return wrap()
	default:
		return p
	}
}

// ApplySSubst performs one capture-avoiding set-variable substitution step.
func ApplySSubst(p *Pattern, svarID Id, plug *Pattern) *Pattern {
	wrap := func() *Pattern { return SSubst(p, svarID, plug) }

	switch p.Kind {
	case KindSVar:
		if p.Id == svarID {
			return plug
		}
		return p
	case KindImplication:
		return Implies(ApplySSubst(p.Left, svarID, plug), ApplySSubst(p.Right, svarID, plug))
	case KindApplication:
		return App(ApplySSubst(p.Left, svarID, plug), ApplySSubst(p.Right, svarID, plug))
	case KindExists:
		return Exists(p.Id, ApplySSubst(p.Sub, svarID, plug))
	case KindMu:
		if p.Id == svarID {
			return p
		}
		return Mu(p.Id, ApplySSubst(p.Sub, svarID, plug))
	case KindESubst, KindSSubst, KindMetaVar:
		return wrap()
	default:
		return p
	}
}

// Instantiate performs capture-avoiding simultaneous substitution of the
// meta-variables named in vars with the corresponding patterns in plugs.
// The two slices are positional and of equal intended length; the first
// occurrence of a given meta-variable id in vars wins if it repeats, and
// an id in vars with no occurrence anywhere in p is simply never looked
// up. It is an error for plugs to be shorter than the position at which a
// present meta-variable is found, and for a plug to violate any of that
// meta-variable's declared constraints.
func Instantiate(p *Pattern, vars []Id, plugs []*Pattern) (*Pattern, error) {
	switch p.Kind {
	case KindEVar, KindSVar, KindSymbol:
		return p, nil
	case KindMetaVar:
		pos := -1
		for i, v := range vars {
			if v == p.Id {
				pos = i
				break
			}
		}
		if pos < 0 {
			return p, nil
		}
		if pos >= len(plugs) {
			return nil, fmt.Errorf("instantiation of meta-variable %d has no corresponding plug", p.Id)
		}
		plug := plugs[pos]
		for _, evar := range p.EFresh {
			if !EFresh(plug, evar) {
				return nil, &ConstraintError{MetaVarID: p.Id, Kind: "e_fresh", Violating: evar}
			}
		}
		for _, svar := range p.SFresh {
			if !SFresh(plug, svar) {
				return nil, &ConstraintError{MetaVarID: p.Id, Kind: "s_fresh", Violating: svar}
			}
		}
		for _, svar := range p.Positive {
			if !Positive(plug, svar) {
				return nil, &ConstraintError{MetaVarID: p.Id, Kind: "positive", Violating: svar}
			}
		}
		for _, svar := range p.Negative {
			if !Negative(plug, svar) {
				return nil, &ConstraintError{MetaVarID: p.Id, Kind: "negative", Violating: svar}
			}
		}
		return plug, nil
	case KindImplication:
		left, err := Instantiate(p.Left, vars, plugs)
		if err != nil {
			return nil, err
		}
		right, err := Instantiate(p.Right, vars, plugs)
		if err != nil {
			return nil, err
		}
		return Implies(left, right), nil
	case KindApplication:
		left, err := Instantiate(p.Left, vars, plugs)
		if err != nil {
			return nil, err
		}
		right, err := Instantiate(p.Right, vars, plugs)
		if err != nil {
			return nil, err
		}
		return App(left, right), nil
	case KindExists:
		sub, err := Instantiate(p.Sub, vars, plugs)
		if err != nil {
			return nil, err
		}
		return Exists(p.Id, sub), nil
	case KindMu:
		sub, err := Instantiate(p.Sub, vars, plugs)
		if err != nil {
			return nil, err
		}
		return Mu(p.Id, sub), nil
	case KindESubst:
		body, err := Instantiate(p.Body, vars, plugs)
		if err != nil {
			return nil, err
		}
		plug, err := Instantiate(p.Plug, vars, plugs)
		if err != nil {
			return nil, err
		}
		return ApplyESubst(body, p.Id, plug), nil
	case KindSSubst:
		body, err := Instantiate(p.Body, vars, plugs)
		if err != nil {
			return nil, err
		}
		plug, err := Instantiate(p.Plug, vars, plugs)
		if err != nil {
			return nil, err
		}
		return ApplySSubst(body, p.Id, plug), nil
	default:
		return nil, fmt.Errorf("instantiate: unhandled pattern kind %s", p.Kind)
	}
}
