package vm

import "github.com/mlproof/aml-checker/internal/aml-checker/pattern"

// The fixed axiom schemas are built fresh on every reference rather than
// shared as package-level values: patterns are conceptually immutable, so
// this costs nothing but avoids ever having to reason about whether two
// axiom occurrences across different phases alias the same node.

func schemaProp1() *pattern.Pattern {
	phi0 := pattern.MetaVarUnconstrained(0)
	phi1 := pattern.MetaVarUnconstrained(1)
	return pattern.Implies(phi0, pattern.Implies(phi1, phi0))
}

func schemaProp2() *pattern.Pattern {
	phi0 := pattern.MetaVarUnconstrained(0)
	phi1 := pattern.MetaVarUnconstrained(1)
	phi2 := pattern.MetaVarUnconstrained(2)
	return pattern.Implies(
		pattern.Implies(phi0, pattern.Implies(phi1, phi2)),
		pattern.Implies(pattern.Implies(phi0, phi1), pattern.Implies(phi0, phi2)),
	)
}

func schemaProp3() *pattern.Pattern {
	phi0 := pattern.MetaVarUnconstrained(0)
	return pattern.Implies(pattern.Not(pattern.Not(phi0)), phi0)
}

func schemaQuantifier() *pattern.Pattern {
	phi0 := pattern.MetaVarUnconstrained(0)
	return pattern.Implies(
		pattern.ESubst(phi0, 0, pattern.EVar(1)),
		pattern.Exists(0, pattern.MetaVarUnconstrained(0)),
	)
}

func schemaExistence() *pattern.Pattern {
	return pattern.Exists(0, pattern.EVar(0))
}
