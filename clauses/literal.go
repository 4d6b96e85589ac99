package clauses

import (
	"github.com/petarvukmirovic/eprover-condensation/terms"
)

// A Literal is an oriented equation Lhs=Rhs with a polarity. Predicate
// atoms p(t1,...,tn) use the standard equational encoding p(t1,...,tn)=$true.
// Literals are owned by exactly one clause at a time; taking a flat copy of
// a clause shares the literal pointers.
type Literal struct {
	Lhs, Rhs *terms.Term
	Positive bool
}

// NewLiteral returns a literal with the given polarity and sides.
func NewLiteral(positive bool, lhs, rhs *terms.Term) *Literal {
	return &Literal{Lhs: lhs, Rhs: rhs, Positive: positive}
}

// IsPredicate is true iff l encodes a predicate atom rather than a real
// equation, i.e. its right-hand side is $true.
func (l *Literal) IsPredicate() bool {
	return l.Rhs.IsTrueConst()
}

// IsEquation is true iff l relates two real terms, so that its sides are
// semantically interchangeable.
func (l *Literal) IsEquation() bool {
	return !l.IsPredicate()
}

// Trivial is true iff both sides of l are the same term. A trivial negative
// literal is false and can be dropped from its clause; a trivial positive
// literal makes the clause a tautology.
func (l *Literal) Trivial() bool {
	return l.Lhs == l.Rhs
}

// Equal is true iff m is the same literal as l: same polarity, same sides.
func (l *Literal) Equal(m *Literal) bool {
	return l.Positive == m.Positive && l.Lhs == m.Lhs && l.Rhs == m.Rhs
}

// EqualModuloSymmetry is like Equal but also accepts the mirrored equation.
func (l *Literal) EqualModuloSymmetry(m *Literal) bool {
	if l.Equal(m) {
		return true
	}
	return l.IsEquation() && l.Positive == m.Positive && l.Lhs == m.Rhs && l.Rhs == m.Lhs
}

// Weight returns the standard weight of l: function symbols weigh 2,
// variables weigh 1, both sides counted.
func (l *Literal) Weight() int {
	return l.Lhs.Weight(2, 1) + l.Rhs.Weight(2, 1)
}

// Instantiate returns l with subst applied to both sides. The literal is
// returned unchanged if no variable of l is bound.
func (l *Literal) Instantiate(bank *terms.Bank, s *terms.Subst) *Literal {
	lhs := s.Apply(bank, l.Lhs)
	rhs := s.Apply(bank, l.Rhs)
	if lhs == l.Lhs && rhs == l.Rhs {
		return l
	}
	return &Literal{Lhs: lhs, Rhs: rhs, Positive: l.Positive}
}

// Compare defines the canonical subsumption order on literals:
// lighter (more general) literals first, negative before positive at equal
// weight, then a structural tie-break on the interned sides. The order is
// total on literals from one bank.
func (l *Literal) Compare(m *Literal) int {
	if d := l.Weight() - m.Weight(); d != 0 {
		return d
	}
	if l.Positive != m.Positive {
		if m.Positive {
			return -1
		}
		return 1
	}
	if d := l.Lhs.Compare(m.Lhs); d != 0 {
		return d
	}
	return l.Rhs.Compare(m.Rhs)
}

func (l *Literal) String() string {
	if l.IsPredicate() {
		if l.Positive {
			return l.Lhs.String()
		}
		return "~" + l.Lhs.String()
	}
	op := "="
	if !l.Positive {
		op = "!="
	}
	return l.Lhs.String() + op + l.Rhs.String()
}

// UnifyOneWay attempts to extend s so that the instance literal is an
// instance of the pattern literal, or of its mirrored equation if swap is
// set. Bindings flow from the pattern side only. A successful merge must
// leave the instance literal itself untouched: a trial that binds a
// variable occurring in the instance is rejected, since applying such
// bindings would move the literal the merge is supposed to absorb.
// On failure s may be partially extended; callers roll back.
func UnifyOneWay(pattern, instance *Literal, s *terms.Subst, swap bool) bool {
	if pattern.Positive != instance.Positive {
		return false
	}
	ilhs, irhs := instance.Lhs, instance.Rhs
	if swap {
		if !instance.IsEquation() {
			return false
		}
		ilhs, irhs = irhs, ilhs
	}
	cp := s.Checkpoint()
	if !terms.Match(pattern.Lhs, ilhs, s) || !terms.Match(pattern.Rhs, irhs, s) {
		return false
	}
	for _, v := range s.BoundSince(cp) {
		if instance.Lhs.HasVar(v) || instance.Rhs.HasVar(v) {
			return false
		}
	}
	return true
}

// UnifySides attempts to extend s to a unifier of the two sides of l.
// Under such a unifier a negative equation becomes trivially false, which
// is what makes a literal mergeable with itself.
func UnifySides(l *Literal, s *terms.Subst) bool {
	if !l.IsEquation() {
		return false
	}
	return terms.Unify(l.Lhs, l.Rhs, s)
}
