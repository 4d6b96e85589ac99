package clauses

import (
	"github.com/petarvukmirovic/eprover-condensation/terms"
)

// An ExclusionSet transiently removes literal positions of the subsumption
// target from consideration, without touching the clause that owns them.
// It holds positions rather than literal pointers: instantiation shares
// ground literals, so a clause may hold the same pointer at two positions,
// and each position must be excludable on its own. A nil set excludes
// nothing.
type ExclusionSet map[int]struct{}

// NewExclusionSet returns an empty exclusion set.
func NewExclusionSet() ExclusionSet {
	return make(ExclusionSet)
}

// Add puts position i into the set.
func (e ExclusionSet) Add(i int) {
	e[i] = struct{}{}
}

// Remove takes position i out of the set.
func (e ExclusionSet) Remove(i int) {
	delete(e, i)
}

// Has is true iff position i is in the set.
func (e ExclusionSet) Has(i int) bool {
	if e == nil {
		return false
	}
	_, ok := e[i]
	return ok
}

// Subsumes reports whether a subsumes b: a single substitution maps every
// literal of a onto a distinct literal of b. The mapping is injective, so a
// clause with more literals than b never subsumes it. Equation literals may
// match in either orientation. Both clauses must be in canonical
// subsumption order.
func Subsumes(a, b *Clause) bool {
	if len(a.Lits) > len(b.Lits) {
		return false
	}
	used := make([]bool, len(b.Lits))
	return subsumeFrom(0, a, b, nil, used, true, terms.NewSubst())
}

// SubsumesModuloExcluded reports whether a single substitution maps every
// literal of a onto some literal of b whose position is not in excl. Unlike
// Subsumes the mapping need not be injective: several literals of a may
// land on the same literal of b, which is exactly what a merge looks like.
// Equation orientation is not considered.
func SubsumesModuloExcluded(a, b *Clause, excl ExclusionSet) bool {
	return subsumeFrom(0, a, b, excl, nil, false, terms.NewSubst())
}

// SubsumesModuloExcludedEq is SubsumesModuloExcluded with equation sides
// treated as interchangeable.
func SubsumesModuloExcludedEq(a, b *Clause, excl ExclusionSet) bool {
	return subsumeFrom(0, a, b, excl, nil, true, terms.NewSubst())
}

// subsumeFrom maps a.Lits[i:] onto b under the bindings accumulated in s.
// used tracks injective target consumption and is nil for set semantics.
func subsumeFrom(i int, a, b *Clause, excl ExclusionSet, used []bool, eqSwap bool, s *terms.Subst) bool {
	if i == len(a.Lits) {
		return true
	}
	al := a.Lits[i]
	for j, bl := range b.Lits {
		if excl.Has(j) {
			continue
		}
		if used != nil && used[j] {
			continue
		}
		swaps := 1
		if eqSwap && al.IsEquation() {
			swaps = 2
		}
		for swap := 0; swap < swaps; swap++ {
			cp := s.Checkpoint()
			if matchLiteral(al, bl, s, swap == 1) {
				if used != nil {
					used[j] = true
				}
				if subsumeFrom(i+1, a, b, excl, used, eqSwap, s) {
					return true
				}
				if used != nil {
					used[j] = false
				}
			}
			s.Backtrack(cp)
		}
	}
	return false
}

// matchLiteral extends s so that pattern maps onto target, matching the
// mirrored target equation if swap is set.
func matchLiteral(pattern, target *Literal, s *terms.Subst, swap bool) bool {
	if pattern.Positive != target.Positive {
		return false
	}
	tlhs, trhs := target.Lhs, target.Rhs
	if swap {
		if !target.IsEquation() {
			return false
		}
		tlhs, trhs = trhs, tlhs
	}
	return terms.Match(pattern.Lhs, tlhs, s) && terms.Match(pattern.Rhs, trhs, s)
}
