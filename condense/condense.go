package condense

import (
	"go.uber.org/zap"

	"github.com/petarvukmirovic/eprover-condensation/clauses"
	"github.com/petarvukmirovic/eprover-condensation/terms"
)

// An Oracle decides clause subsumption. The engine commits a reduction only
// after the oracle confirms that the reduced clause subsumes the original.
// The clauses package provides the standard implementation; tests may
// substitute their own.
type Oracle interface {
	// Subsumes reports whether a subsumes b.
	Subsumes(a, b *clauses.Clause) bool
	// SubsumesModuloExcluded is Subsumes with the literal positions of b
	// in excl treated as absent and the injectivity requirement dropped.
	SubsumesModuloExcluded(a, b *clauses.Clause, excl clauses.ExclusionSet) bool
	// SubsumesModuloExcludedEq is SubsumesModuloExcluded with equation
	// sides treated as interchangeable.
	SubsumesModuloExcludedEq(a, b *clauses.Clause, excl clauses.ExclusionSet) bool
}

// stdOracle delegates to the clauses package.
type stdOracle struct{}

func (stdOracle) Subsumes(a, b *clauses.Clause) bool {
	return clauses.Subsumes(a, b)
}

func (stdOracle) SubsumesModuloExcluded(a, b *clauses.Clause, excl clauses.ExclusionSet) bool {
	return clauses.SubsumesModuloExcluded(a, b, excl)
}

func (stdOracle) SubsumesModuloExcludedEq(a, b *clauses.Clause, excl clauses.ExclusionSet) bool {
	return clauses.SubsumesModuloExcludedEq(a, b, excl)
}

// Stats count condensation activity. Attempts is bumped once per entry
// point call, Successes once per clause that actually shrank, no matter
// how many individual merges the fixpoint performed.
type Stats struct {
	Attempts  int
	Successes int
}

// An Engine applies condensation to clauses. An engine is not safe for
// concurrent use: it assumes exclusive access to the clause for the
// duration of a call, and its counters are unsynchronized.
type Engine struct {
	bank   *terms.Bank
	oracle Oracle
	log    *zap.Logger

	Stats Stats // Statistics about condensation activity.
}

// NewEngine returns an engine building candidate terms in the given bank,
// using the standard subsumption oracle and no logging.
func NewEngine(bank *terms.Bank) *Engine {
	return &Engine{bank: bank, oracle: stdOracle{}, log: zap.NewNop()}
}

// SetOracle replaces the subsumption oracle.
func (e *Engine) SetOracle(o Oracle) {
	e.oracle = o
}

// SetLogger makes the engine trace committed reductions at debug level.
func (e *Engine) SetLogger(log *zap.Logger) {
	e.log = log
}

// Condense condenses c as much as possible and reports whether c changed.
// A clause with at most one positive and at most one negative literal has
// nothing to merge and is returned unchanged.
func (e *Engine) Condense(c *clauses.Clause) bool {
	return e.drive(c, e.condenseOnce)
}

// CondenseSet is Condense with the extended pair enumeration of
// condenseOnceSet and the equation-symmetric subsumption gate. It never
// condenses less than Condense.
func (e *Engine) CondenseSet(c *clauses.Clause) bool {
	return e.drive(c, e.condenseOnceSet)
}

// drive runs one of the single-pass procedures to a fixpoint and does the
// shared bookkeeping.
func (e *Engine) drive(c *clauses.Clause, once func(*clauses.Clause) bool) bool {
	e.Stats.Attempts++
	if c.PosLitNo <= 1 && c.NegLitNo <= 1 {
		return false
	}
	c.Weight = c.StandardWeight()
	c.SortForSubsumption()

	res := false
	for once(c) {
		res = true
	}
	if res {
		e.commit(c)
	}
	return res
}

// condenseOnce tries to shrink c by a single literal merge. The literals of
// c must be in canonical subsumption order. If a merge passes the
// subsumption gate the reduced literal sequence replaces c's and true is
// returned; otherwise c is unchanged and false is returned.
//
// The canonical order puts more general literals first, so the earlier
// literal of a pair acts as the pattern and the later one as the instance
// that gets absorbed. The candidate keeps the remaining literals with the
// merge bindings applied; the bindings themselves are rolled back before
// the gate runs.
func (e *Engine) condenseOnce(c *clauses.Clause) bool {
	subst := terms.NewSubst()
	for i, l1 := range c.Lits {
		for j := i + 1; j < len(c.Lits); j++ {
			l2 := c.Lits[j]
			for swap := 0; swap < 2; swap++ {
				cp := subst.Checkpoint()
				if !clauses.UnifyOneWay(l1, l2, subst, swap == 1) {
					subst.Backtrack(cp)
					continue
				}
				cand := c.CopyExcept(j, e.bank, subst)
				subst.Backtrack(cp)
				if e.gate(cand, c, false) {
					return true
				}
			}
		}
	}
	return false
}

// condenseOnceSet is condenseOnce with two extensions: a negative literal
// may merge with itself when its two sides unify (the merged literal
// becomes trivially false and drops out), and the gate takes equational
// symmetry into account.
func (e *Engine) condenseOnceSet(c *clauses.Clause) bool {
	subst := terms.NewSubst()
	for i, l1 := range c.Lits {
		start := i + 1
		if !l1.Positive {
			start = i
		}
		for j := start; j < len(c.Lits); j++ {
			l2 := c.Lits[j]
			swapStart := 0
			if j == i {
				swapStart = 1
			}
			for swap := swapStart; swap < 2; swap++ {
				cp := subst.Checkpoint()
				var ok bool
				if j == i {
					ok = clauses.UnifySides(l1, subst)
				} else {
					ok = clauses.UnifyOneWay(l1, l2, subst, swap == 1)
				}
				if !ok {
					subst.Backtrack(cp)
					continue
				}
				cand := c.CopyExcept(j, e.bank, subst)
				subst.Backtrack(cp)
				if e.gate(cand, c, true) {
					return true
				}
			}
		}
	}
	return false
}

// gate cleans up the candidate, re-weights and re-sorts it, and commits it
// into c iff it subsumes c. Reports whether the commit happened.
func (e *Engine) gate(cand, c *clauses.Clause, eqSym bool) bool {
	cand.RemoveDuplicates()
	cand.RemoveResolved()
	cand.Weight = cand.StandardWeight()
	cand.SortForSubsumption()
	var ok bool
	if eqSym {
		ok = e.oracle.SubsumesModuloExcludedEq(cand, c, nil)
	} else {
		ok = e.oracle.Subsumes(cand, c)
	}
	if !ok {
		return false
	}
	c.ReplaceLits(cand.Lits)
	return true
}

// CondenseLinear condenses c with O(n) subsumption tests and reports
// whether c changed. It keeps an untouched reference copy, visits every
// live literal once in canonical order, transiently excludes its position,
// and makes the exclusion permanent iff the reference copy still maps onto
// the remaining literals. The exclusion set stands in for the property flag
// the literals would otherwise carry, so literals shared with the reference
// copy are never mutated. Exclusion is by position: a ground literal can sit
// at two positions of c as the same pointer, and only the visited occurrence
// may be hidden from the oracle.
func (e *Engine) CondenseLinear(c *clauses.Clause) bool {
	e.Stats.Attempts++
	if c.PosLitNo <= 1 && c.NegLitNo <= 1 {
		return false
	}
	c.Weight = c.StandardWeight()
	c.SortForSubsumption()

	ref := c.FlatCopy()
	excl := clauses.NewExclusionSet()
	res := false
	for i := 0; i < len(c.Lits); {
		excl.Add(i)
		if e.oracle.SubsumesModuloExcludedEq(ref, c, excl) {
			excl.Remove(i)
			c.RemoveLitAt(i)
			res = true
		} else {
			excl.Remove(i)
			i++
		}
	}
	if res {
		c.Weight = c.StandardWeight()
		e.commit(c)
	}
	return res
}

func (e *Engine) commit(c *clauses.Clause) {
	e.Stats.Successes++
	c.PushDerivation(clauses.DCCondense)
	e.log.Debug("clause condensed",
		zap.Stringer("clause", c),
		zap.Int("literals", c.LitCount()))
}
