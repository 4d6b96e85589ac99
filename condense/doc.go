/*
Package condense implements the condensation simplification rule for
first-order clauses.

Condensation removes redundant literals from a clause: if two literals can
be merged through a one-way unifier and the clause that remains after the
merge still subsumes the original, the original is replaced by the smaller,
logically equivalent clause. Saturation provers apply the rule to every
freshly derived clause, since smaller clauses mean cheaper indexing and
fewer redundant inferences downstream.

The entry points compute the same reductions at different cost profiles:

  - Condense scans literal pairs, builds an explicit reduced candidate for
    every merge and gates it through plain subsumption. Worst case it runs
    O(n²) subsumption tests per pass and O(n) passes. CondenseSet is the
    same scan extended with a self-merge trial for negative equations whose
    two sides unify.

  - CondenseLinear visits every literal exactly once, transiently excludes
    it, and asks the subsumption oracle whether the remaining literals
    still cover an untouched reference copy. This needs only O(n)
    subsumption tests.

All entry points mutate the clause in place and report whether it changed:

	bank := terms.NewBank()
	eng := condense.NewEngine(bank)
	if eng.Condense(c) {
		// c now holds the condensed literal sequence
	}

Nothing is ever committed without the subsumption gate: a reduction either
fully replaces the clause with a re-weighted, canonically sorted equivalent
or leaves it completely untouched.
*/
package condense
