package terms

// A Subst is a set of variable bindings built up during unification and
// matching trials. Every binding is recorded on a trail, so a caller can
// take a checkpoint before a trial and roll back to it afterwards.
// Checkpoints are strictly nested: rolling back to an older checkpoint
// also undoes everything bound after it.
type Subst struct {
	bindings map[*Term]*Term
	trail    []*Term
}

// NewSubst returns an empty substitution.
func NewSubst() *Subst {
	return &Subst{bindings: make(map[*Term]*Term)}
}

// Bind binds the variable v to t. v must be unbound.
func (s *Subst) Bind(v, t *Term) {
	if !v.IsVar() {
		panic("binding a non-variable")
	}
	if _, ok := s.bindings[v]; ok {
		panic("rebinding a bound variable")
	}
	s.bindings[v] = t
	s.trail = append(s.trail, v)
}

// Get returns the binding of v, or nil if v is unbound.
func (s *Subst) Get(v *Term) *Term {
	return s.bindings[v]
}

// Len returns the number of current bindings.
func (s *Subst) Len() int {
	return len(s.trail)
}

// Checkpoint returns a mark for the current trail position.
func (s *Subst) Checkpoint() int {
	return len(s.trail)
}

// Backtrack undoes all bindings made since the given checkpoint.
func (s *Subst) Backtrack(cp int) {
	for i := len(s.trail) - 1; i >= cp; i-- {
		delete(s.bindings, s.trail[i])
	}
	s.trail = s.trail[:cp]
}

// BoundSince returns the variables bound since the given checkpoint,
// oldest first. The returned slice aliases the trail and is only valid
// until the next Bind or Backtrack.
func (s *Subst) BoundSince(cp int) []*Term {
	return s.trail[cp:]
}

// Deref follows bindings from t until it reaches an unbound variable or
// an application.
func (s *Subst) Deref(t *Term) *Term {
	for t.IsVar() {
		b := s.bindings[t]
		if b == nil {
			return t
		}
		t = b
	}
	return t
}

// Apply returns t with the current bindings applied exhaustively, i.e. the
// normal form of t under the substitution. The result is interned in bank.
// The binding graph must be acyclic.
func (s *Subst) Apply(bank *Bank, t *Term) *Term {
	if t.IsVar() {
		if b := s.bindings[t]; b != nil {
			return s.Apply(bank, b)
		}
		return t
	}
	if len(t.Args) == 0 {
		return t
	}
	args := make([]*Term, len(t.Args))
	changed := false
	for i, arg := range t.Args {
		args[i] = s.Apply(bank, arg)
		if args[i] != arg {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return bank.Fun(t.Fun, args...)
}
