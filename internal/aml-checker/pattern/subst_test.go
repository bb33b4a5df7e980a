package pattern

import "testing"

func mustInstantiate(t *testing.T, p *Pattern, vars []Id, plugs []*Pattern) *Pattern {
	t.Helper()
	out, err := Instantiate(p, vars, plugs)
	if err != nil {
		t.Fatalf("Instantiate returned unexpected error: %v", err)
	}
	return out
}

func TestInstantiateConcretePatternsAreUnaffected(t *testing.T) {
	x0 := EVar(0)
	big0 := SVar(0)
	c0 := Symbol(0)

	if got := mustInstantiate(t, x0, []Id{0}, []*Pattern{big0}); !Equal(got, x0) {
		t.Fatal("evar must be unaffected by instantiate regardless of a matching id")
	}
	if got := mustInstantiate(t, big0, []Id{0}, []*Pattern{x0}); !Equal(got, big0) {
		t.Fatal("svar must be unaffected by instantiate")
	}
	if got := mustInstantiate(t, c0, []Id{0}, []*Pattern{x0}); !Equal(got, c0) {
		t.Fatal("symbol must be unaffected by instantiate")
	}
}

func TestInstantiateMetaVar(t *testing.T) {
	x0 := EVar(0)
	big0 := SVar(0)
	phi0 := MetaVarUnconstrained(0)

	existsX0Phi0 := Exists(0, phi0)
	existsX0X0 := Exists(0, x0)
	if got := mustInstantiate(t, existsX0Phi0, []Id{0}, []*Pattern{x0}); !Equal(got, existsX0X0) {
		t.Fatal("instantiating the only occurring metavar id must substitute it")
	}
	if got := mustInstantiate(t, existsX0Phi0, []Id{1}, []*Pattern{x0}); !Equal(got, existsX0Phi0) {
		t.Fatal("instantiating an id that does not occur must be a no-op")
	}

	muX0Phi0 := Mu(0, phi0)
	muX0X0 := Mu(0, x0)
	if got := mustInstantiate(t, muX0Phi0, []Id{0}, []*Pattern{x0}); !Equal(got, muX0X0) {
		t.Fatal("instantiate must recurse under Mu")
	}

	// Simultaneous instantiation: empty substitutions (ids that don't occur
	// anywhere in the pattern) have no effect regardless of order.
	if got := mustInstantiate(t, existsX0Phi0, []Id{1, 2}, []*Pattern{x0, big0}); !Equal(got, existsX0Phi0) {
		t.Fatal("substitutions for absent ids must not affect the pattern")
	}
	if got := mustInstantiate(t, existsX0Phi0, []Id{2, 1}, []*Pattern{x0, big0}); !Equal(got, existsX0Phi0) {
		t.Fatal("order of absent substitutions must not matter")
	}
}

func TestInstantiateOrderMattersWhenPositionsDiffer(t *testing.T) {
	x0 := EVar(0)
	big0 := SVar(0)
	phi0 := MetaVarUnconstrained(0)
	existsX0Phi0 := Exists(0, phi0)
	existsX0X0 := Exists(0, x0)
	existsX0Big0 := Exists(0, big0)

	// vars=[1,0] means phi0 (id 0) binds to plugs[1] = big0.
	got := mustInstantiate(t, existsX0Phi0, []Id{1, 0}, []*Pattern{x0, big0})
	if !Equal(got, existsX0Big0) {
		t.Fatal("the first matching position in vars determines the plug")
	}

	got = mustInstantiate(t, existsX0Phi0, []Id{0, 1}, []*Pattern{x0, big0})
	if !Equal(got, existsX0X0) {
		t.Fatal("swapping vars order must change which plug is selected")
	}
}

func TestInstantiateConstraintViolationIsFatal(t *testing.T) {
	big0 := SVar(0)
	// A metavar declaring both positive(0) and negative(0) can never be
	// satisfied by plugging in the bare svar(0) itself, since svar(0) is
	// positive but not negative in itself.
	phi0SFresh0 := MetaVar(0, nil, IdList{0}, IdList{0}, IdList{0}, nil)

	_, err := Instantiate(phi0SFresh0, []Id{0}, []*Pattern{big0})
	if err == nil {
		t.Fatal("expected a constraint violation error, got nil")
	}
	var cerr *ConstraintError
	if ce, ok := err.(*ConstraintError); ok {
		cerr = ce
	}
	if cerr == nil {
		t.Fatalf("expected *ConstraintError, got %T: %v", err, err)
	}
}

func TestInstantiateMissingPlugIsFatal(t *testing.T) {
	phi0 := MetaVarUnconstrained(0)
	_, err := Instantiate(phi0, []Id{0}, nil)
	if err == nil {
		t.Fatal("expected an error when no plug corresponds to a present meta-variable")
	}
}
