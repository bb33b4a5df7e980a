// Package pattern implements the matching logic pattern algebra: the tagged
// term representation, its smart constructors, the structural freshness and
// polarity predicates, and capture-avoiding simultaneous instantiation.
package pattern

import "fmt"

// Id identifies an element variable, set variable, symbol, or meta-variable.
// The wire format allots one byte per identifier, so Id is bounded to that
// range by construction everywhere an Id is decoded from proof bytes.
type Id = uint8

// IdList is a list of Ids carried by a MetaVar's freshness/polarity
// constraints or an application-context hole list. Constraint checks only
// test membership, with Contains; Equal compares two lists element by
// element, so there the order does matter.
type IdList []Id

// Contains reports whether id appears anywhere in the list.
func (l IdList) Contains(id Id) bool {
	for _, x := range l {
		if x == id {
			return true
		}
	}
	return false
}

// Kind discriminates the variant a Pattern holds. Go has no algebraic data
// type, so Pattern is one struct wide enough for every variant's fields,
// tagged by Kind; fields unused by a given Kind stay at their zero value.
type Kind uint8

const (
	KindEVar Kind = iota
	KindSVar
	KindSymbol
	KindImplication
	KindApplication
	KindExists
	KindMu
	KindMetaVar
	KindESubst
	KindSSubst
)

func (k Kind) String() string {
	switch k {
	case KindEVar:
		return "EVar"
	case KindSVar:
		return "SVar"
	case KindSymbol:
		return "Symbol"
	case KindImplication:
		return "Implication"
	case KindApplication:
		return "Application"
	case KindExists:
		return "Exists"
	case KindMu:
		return "Mu"
	case KindMetaVar:
		return "MetaVar"
	case KindESubst:
		return "ESubst"
	case KindSSubst:
		return "SSubst"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Pattern is a matching logic pattern node. It is always accessed through a
// *Pattern; patterns are immutable once constructed and freely shared by
// pointer, mirroring the reference-counted sharing of the kernel this was
// ported from.
type Pattern struct {
	Kind Kind

	// Id holds the variable/symbol/meta-variable identifier for EVar, SVar,
	// Symbol, MetaVar, and the bound variable of Exists and Mu.
	Id Id

	// Left/Right hold the two operands of Implication and Application.
	Left  *Pattern
	Right *Pattern

	// Sub holds the body of Exists and Mu.
	Sub *Pattern

	// Below: MetaVar's constraint sets. Unconstrained unless populated.
	EFresh      IdList
	SFresh      IdList
	Positive    IdList
	Negative    IdList
	AppCtxHoles IdList

	// Below: ESubst and SSubst. Body is the pattern being substituted into,
	// Plug is the replacement, and Id (above) is the bound evar_id/svar_id.
	Body *Pattern
	Plug *Pattern
}

// EVar constructs a bound element variable occurrence.
func EVar(id Id) *Pattern { return &Pattern{Kind: KindEVar, Id: id} }

// SVar constructs a bound set variable occurrence.
func SVar(id Id) *Pattern { return &Pattern{Kind: KindSVar, Id: id} }

// Symbol constructs a symbol occurrence.
func Symbol(id Id) *Pattern { return &Pattern{Kind: KindSymbol, Id: id} }

// MetaVarUnconstrained constructs a meta-variable with no freshness,
// polarity, or application-context-hole constraints.
func MetaVarUnconstrained(id Id) *Pattern {
	return &Pattern{Kind: KindMetaVar, Id: id}
}

// MetaVar constructs a fully constrained meta-variable.
func MetaVar(id Id, eFresh, sFresh, positive, negative, appCtxHoles IdList) *Pattern {
	return &Pattern{
		Kind:        KindMetaVar,
		Id:          id,
		EFresh:      eFresh,
		SFresh:      sFresh,
		Positive:    positive,
		Negative:    negative,
		AppCtxHoles: appCtxHoles,
	}
}

// Exists constructs an existential binder over var.
func Exists(v Id, sub *Pattern) *Pattern {
	return &Pattern{Kind: KindExists, Id: v, Sub: sub}
}

// Mu constructs a least-fixpoint binder over var. It performs no
// well-formedness check; callers that need one call WellFormed explicitly,
// matching the construction opcode's own behavior.
func Mu(v Id, sub *Pattern) *Pattern {
	return &Pattern{Kind: KindMu, Id: v, Sub: sub}
}

// ESubst constructs an explicit element-variable substitution node.
func ESubst(body *Pattern, evarID Id, plug *Pattern) *Pattern {
	return &Pattern{Kind: KindESubst, Id: evarID, Body: body, Plug: plug}
}

// SSubst constructs an explicit set-variable substitution node.
func SSubst(body *Pattern, svarID Id, plug *Pattern) *Pattern {
	return &Pattern{Kind: KindSSubst, Id: svarID, Body: body, Plug: plug}
}

// Implies constructs an implication.
func Implies(left, right *Pattern) *Pattern {
	return &Pattern{Kind: KindImplication, Left: left, Right: right}
}

// App constructs an application.
func App(left, right *Pattern) *Pattern {
	return &Pattern{Kind: KindApplication, Left: left, Right: right}
}

// Bot is the canonical bottom pattern, mu X . X with no free occurrence of
// X escaping the fixpoint.
func Bot() *Pattern { return Mu(0, SVar(0)) }

// Not is notation for logical negation: phi -> bot.
func Not(p *Pattern) *Pattern { return Implies(p, Bot()) }

// Forall is notation for the universal quantifier as double negation of
// Exists.
func Forall(evar Id, p *Pattern) *Pattern { return Not(Exists(evar, Not(p))) }

// Equal reports whether two patterns are structurally identical. Nil
// patterns are never equal to anything, including each other, since no
// valid construction path ever produces a nil Pattern on the stack.
func Equal(a, b *Pattern) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindEVar, KindSVar, KindSymbol:
		return a.Id == b.Id
	case KindImplication, KindApplication:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case KindExists, KindMu:
		return a.Id == b.Id && Equal(a.Sub, b.Sub)
	case KindMetaVar:
		return a.Id == b.Id &&
			idListEqual(a.EFresh, b.EFresh) &&
			idListEqual(a.SFresh, b.SFresh) &&
			idListEqual(a.Positive, b.Positive) &&
			idListEqual(a.Negative, b.Negative) &&
			idListEqual(a.AppCtxHoles, b.AppCtxHoles)
	case KindESubst, KindSSubst:
		return a.Id == b.Id && Equal(a.Body, b.Body) && Equal(a.Plug, b.Plug)
	default:
		return false
	}
}

func idListEqual(a, b IdList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
