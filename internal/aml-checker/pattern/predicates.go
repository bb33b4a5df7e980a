package pattern

// EFresh reports whether evar has no free occurrence in p. Freshness is
// defined structurally, assuming every ESubst/SSubst node encountered is
// well-formed (the plug is assumed to actually occur in the result).
func EFresh(p *Pattern, evar Id) bool {
	switch p.Kind {
	case KindEVar:
		return p.Id != evar
	case KindSVar, KindSymbol:
		return true
	case KindMetaVar:
		return p.EFresh.Contains(evar)
	case KindImplication, KindApplication:
		return EFresh(p.Left, evar) && EFresh(p.Right, evar)
	case KindExists:
		return evar == p.Id || EFresh(p.Sub, evar)
	case KindMu:
		return EFresh(p.Sub, evar)
	case KindESubst:
		if evar == p.Id {
			// All free instances of the substituted variable are gone;
			// freshness depends only on what replaced them.
			return EFresh(p.Plug, evar)
		}
		return EFresh(p.Body, evar) && EFresh(p.Plug, evar)
	case KindSSubst:
		// evar can never equal an svar_id, so freshness always depends on
		// both the body and the plug.
		return EFresh(p.Body, evar) && EFresh(p.Plug, evar)
	default:
		return false
	}
}

// SFresh reports whether svar has no free occurrence in p.
func SFresh(p *Pattern, svar Id) bool {
	switch p.Kind {
	case KindEVar, KindSymbol:
		return true
	case KindSVar:
		return p.Id != svar
	case KindMetaVar:
		return p.SFresh.Contains(svar)
	case KindImplication, KindApplication:
		return SFresh(p.Left, svar) && SFresh(p.Right, svar)
	case KindExists:
		return SFresh(p.Sub, svar)
	case KindMu:
		return svar == p.Id || SFresh(p.Sub, svar)
	case KindESubst:
		// svar can never equal an evar_id.
		return SFresh(p.Body, svar) && SFresh(p.Plug, svar)
	case KindSSubst:
		if svar == p.Id {
			return SFresh(p.Plug, svar)
		}
		return SFresh(p.Body, svar) && SFresh(p.Plug, svar)
	default:
		return false
	}
}

// Positive reports whether svar occurs only positively in p.
func Positive(p *Pattern, svar Id) bool {
	switch p.Kind {
	case KindEVar, KindSVar, KindSymbol:
		return true
	case KindMetaVar:
		return p.Positive.Contains(svar)
	case KindImplication:
		return Negative(p.Left, svar) && Positive(p.Right, svar)
	case KindApplication:
		return Positive(p.Left, svar) && Positive(p.Right, svar)
	case KindExists:
		return Positive(p.Sub, svar)
	case KindMu:
		return svar == p.Id || Positive(p.Sub, svar)
	case KindESubst:
		// Best-effort approximation, mirroring the reference kernel: a
		// substitution preserves positivity when the plug does not
		// mention svar at all.
		return Positive(p.Body, svar) && SFresh(p.Plug, svar)
	case KindSSubst:
		plugPositive := SFresh(p.Plug, svar) ||
			(Positive(p.Body, p.Id) && Positive(p.Plug, svar)) ||
			(Negative(p.Body, p.Id) && Negative(p.Plug, svar))
		if svar == p.Id {
			return plugPositive
		}
		return Positive(p.Body, svar) && plugPositive
	default:
		return false
	}
}

// Negative reports whether svar occurs only negatively in p.
func Negative(p *Pattern, svar Id) bool {
	switch p.Kind {
	case KindEVar, KindSymbol:
		return true
	case KindSVar:
		return p.Id != svar
	case KindMetaVar:
		return p.Negative.Contains(svar)
	case KindImplication:
		return Positive(p.Left, svar) && Negative(p.Right, svar)
	case KindApplication:
		return Negative(p.Left, svar) && Negative(p.Right, svar)
	case KindExists:
		// Deliberately s_fresh, not negative: an existential binder over
		// an unrelated evar cannot flip svar's polarity, but it also
		// cannot inherit the body's negativity directly once a binder is
		// crossed, so the reference kernel falls back to the stronger
		// freshness check here.
		return SFresh(p.Sub, svar)
	case KindMu:
		return svar == p.Id || Negative(p.Sub, svar)
	case KindESubst:
		return Negative(p.Body, svar) && SFresh(p.Plug, svar)
	case KindSSubst:
		plugNegative := SFresh(p.Plug, svar) ||
			(Positive(p.Body, p.Id) && Negative(p.Plug, svar)) ||
			(Negative(p.Body, p.Id) && Positive(p.Plug, svar))
		if svar == p.Id {
			return plugNegative
		}
		return Negative(p.Body, svar) && plugNegative
	default:
		return false
	}
}

// WellFormed checks a single node's own well-formedness, assuming its
// children are already well-formed. Every construction path that can
// produce an ill-formed node calls this immediately; it is never applied
// recursively top-down.
func WellFormed(p *Pattern) bool {
	switch p.Kind {
	case KindMetaVar:
		for _, hole := range p.AppCtxHoles {
			if p.EFresh.Contains(hole) {
				return false
			}
		}
		return true
	case KindMu:
		return Positive(p.Sub, p.Id)
	case KindESubst:
		// The bound evar must actually occur free in the body; otherwise
		// the substitution has nothing to do.
		return !EFresh(p.Body, p.Id)
	case KindSSubst:
		return !SFresh(p.Body, p.Id)
	default:
		// Concrete constructors (EVar, SVar, Symbol, Implication,
		// Application, Exists) are well-formed by construction: there is
		// no constraint a smart constructor could violate.
		return true
	}
}
