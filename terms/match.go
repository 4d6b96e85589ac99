package terms

// Match attempts to extend s so that pattern becomes syntactically equal to
// instance under s. Only pattern-side variables are bound; variables of the
// instance are treated as constants. On failure s may be left partially
// extended, so callers take a checkpoint first and roll back themselves.
//
// Pattern and instance may share variables (they do, during condensation
// and subsumption within one clause family). A pattern variable that is
// already bound only matches a syntactically identical instance subterm.
func Match(pattern, instance *Term, s *Subst) bool {
	if pattern.IsVar() {
		if b := s.Get(pattern); b != nil {
			return b == instance
		}
		s.Bind(pattern, instance)
		return true
	}
	if instance.IsVar() {
		return false
	}
	if pattern.Fun != instance.Fun {
		return false
	}
	for i := range pattern.Args {
		if !Match(pattern.Args[i], instance.Args[i], s) {
			return false
		}
	}
	return true
}

// Unify attempts to extend s to a most general unifier of a and b.
// Both sides may be instantiated; an occurs check keeps the binding graph
// acyclic. On failure s may be left partially extended, like Match.
func Unify(a, b *Term, s *Subst) bool {
	a = s.Deref(a)
	b = s.Deref(b)
	if a == b {
		return true
	}
	if a.IsVar() {
		return bindChecked(a, b, s)
	}
	if b.IsVar() {
		return bindChecked(b, a, s)
	}
	if a.Fun != b.Fun {
		return false
	}
	for i := range a.Args {
		if !Unify(a.Args[i], b.Args[i], s) {
			return false
		}
	}
	return true
}

// bindChecked binds v to t unless v occurs in t modulo the current bindings.
func bindChecked(v, t *Term, s *Subst) bool {
	if occurs(v, t, s) {
		return false
	}
	s.Bind(v, t)
	return true
}

func occurs(v, t *Term, s *Subst) bool {
	t = s.Deref(t)
	if t == v {
		return true
	}
	for _, arg := range t.Args {
		if occurs(v, arg, s) {
			return true
		}
	}
	return false
}
