package clauses

import (
	"sort"
	"strings"

	"github.com/petarvukmirovic/eprover-condensation/terms"
)

// A DerivCode tags one step in a clause's derivation.
type DerivCode byte

const (
	// DCInput marks a clause read from the input problem.
	DCInput = DerivCode(iota)
	// DCCondense marks a condensation step. Condensation has no side
	// premises: the clause is its own justification.
	DCCondense
)

func (d DerivCode) String() string {
	switch d {
	case DCInput:
		return "input"
	case DCCondense:
		return "condense"
	default:
		panic("invalid derivation code")
	}
}

// A DerivStep records one inference applied to a clause.
type DerivStep struct {
	Op DerivCode
}

// A Clause is a sequence of literals with cached literal counts and weight.
// The literal order carries no meaning but is load-bearing for subsumption:
// SortForSubsumption must have been called before any subsumption test.
// PosLitNo and NegLitNo always equal the number of positive and negative
// literals; they are recomputed after every structural change. Weight is
// stale after a structural change until recomputed.
type Clause struct {
	Lits     []*Literal
	PosLitNo int
	NegLitNo int
	Weight   int

	derivation []DerivStep
}

// New returns a clause over the given literals, with literal counts set.
// The clause takes ownership of the slice.
func New(lits []*Literal) *Clause {
	c := &Clause{Lits: lits}
	c.RecomputeLitCounts()
	return c
}

// LitCount returns the number of literals in c.
func (c *Clause) LitCount() int {
	return len(c.Lits)
}

// IsEmpty is true iff c has no literals.
func (c *Clause) IsEmpty() bool {
	return len(c.Lits) == 0
}

// FlatCopy returns a copy of c sharing the literal pointers. The copy gets
// its own literal slice, counts and weight, but no derivation history.
func (c *Clause) FlatCopy() *Clause {
	lits := make([]*Literal, len(c.Lits))
	copy(lits, c.Lits)
	return &Clause{
		Lits:     lits,
		PosLitNo: c.PosLitNo,
		NegLitNo: c.NegLitNo,
		Weight:   c.Weight,
	}
}

// CopyExcept returns a clause holding every literal of c but the one at
// position skip, each instantiated under s. Literals untouched by s are
// shared with c.
func (c *Clause) CopyExcept(skip int, bank *terms.Bank, s *terms.Subst) *Clause {
	lits := make([]*Literal, 0, len(c.Lits)-1)
	for i, l := range c.Lits {
		if i == skip {
			continue
		}
		lits = append(lits, l.Instantiate(bank, s))
	}
	return New(lits)
}

// RecomputeLitCounts re-establishes the PosLitNo/NegLitNo invariant.
func (c *Clause) RecomputeLitCounts() {
	c.PosLitNo = 0
	c.NegLitNo = 0
	for _, l := range c.Lits {
		if l.Positive {
			c.PosLitNo++
		} else {
			c.NegLitNo++
		}
	}
}

// StandardWeight returns the standard symbol-count weight of c.
func (c *Clause) StandardWeight() int {
	w := 0
	for _, l := range c.Lits {
		w += l.Weight()
	}
	return w
}

// SortForSubsumption sorts the literals of c into the canonical subsumption
// order. The order is total and deterministic, so sorting an already sorted
// clause is a no-op.
func (c *Clause) SortForSubsumption() {
	sort.SliceStable(c.Lits, func(i, j int) bool {
		return c.Lits[i].Compare(c.Lits[j]) < 0
	})
}

// RemoveDuplicates drops repeated literals, keeping the first occurrence.
// Literal counts are updated.
func (c *Clause) RemoveDuplicates() {
	kept := c.Lits[:0]
	for _, l := range c.Lits {
		dup := false
		for _, k := range kept {
			if l.Equal(k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, l)
		}
	}
	if len(kept) != len(c.Lits) {
		c.Lits = kept
		c.RecomputeLitCounts()
	}
}

// RemoveResolved drops trivially false literals, i.e. negative literals
// whose two sides are the same term. Literal counts are updated.
func (c *Clause) RemoveResolved() {
	kept := c.Lits[:0]
	for _, l := range c.Lits {
		if !l.Positive && l.Trivial() {
			continue
		}
		kept = append(kept, l)
	}
	if len(kept) != len(c.Lits) {
		c.Lits = kept
		c.RecomputeLitCounts()
	}
}

// IsTautology is true iff c contains a trivially true literal or a literal
// together with its complement.
func (c *Clause) IsTautology() bool {
	for i, l := range c.Lits {
		if l.Positive && l.Trivial() {
			return true
		}
		for _, m := range c.Lits[i+1:] {
			if l.Positive != m.Positive && l.Lhs == m.Lhs && l.Rhs == m.Rhs {
				return true
			}
		}
	}
	return false
}

// RemoveLitAt deletes the literal at position i, keeping the literal order
// and updating the counts.
func (c *Clause) RemoveLitAt(i int) {
	l := c.Lits[i]
	c.Lits = append(c.Lits[:i], c.Lits[i+1:]...)
	if l.Positive {
		c.PosLitNo--
	} else {
		c.NegLitNo--
	}
}

// ReplaceLits swaps in a new literal sequence, dropping the old one, and
// re-establishes counts and weight. The derivation history is kept.
func (c *Clause) ReplaceLits(lits []*Literal) {
	c.Lits = lits
	c.RecomputeLitCounts()
	c.Weight = c.StandardWeight()
}

// PushDerivation appends a derivation step. The derivation is append-only.
func (c *Clause) PushDerivation(op DerivCode) {
	c.derivation = append(c.derivation, DerivStep{Op: op})
}

// Derivation returns the derivation steps of c, oldest first.
func (c *Clause) Derivation() []DerivStep {
	return c.derivation
}

func (c *Clause) String() string {
	if len(c.Lits) == 0 {
		return "$false"
	}
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}
