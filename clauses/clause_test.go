package clauses_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/petarvukmirovic/eprover-condensation/clauses"
	"github.com/petarvukmirovic/eprover-condensation/parse"
	"github.com/petarvukmirovic/eprover-condensation/terms"
)

func mustClause(t *testing.T, bank *terms.Bank, input string) *clauses.Clause {
	t.Helper()
	c, err := parse.ParseClause(bank, input)
	require.NoError(t, err, "parsing %q", input)
	return c
}

func litStrings(c *clauses.Clause) []string {
	res := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		res[i] = l.String()
	}
	return res
}

func TestLitCountInvariant(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "p(a) | ~q(b) | p(X) | ~q(Y) | a=b.")
	require.Equal(t, 3, c.PosLitNo)
	require.Equal(t, 2, c.NegLitNo)
	require.Equal(t, c.LitCount(), c.PosLitNo+c.NegLitNo)

	c.RemoveLitAt(0)
	require.Equal(t, c.LitCount(), c.PosLitNo+c.NegLitNo)
	c.RemoveLitAt(1)
	require.Equal(t, c.LitCount(), c.PosLitNo+c.NegLitNo)
}

func TestStandardWeight(t *testing.T) {
	bank := terms.NewBank()
	// Function symbols weigh 2, variables 1, the $true side counts too.
	tests := []struct {
		input string
		want  int
	}{
		{"p(a).", 6},
		{"p(X).", 5},
		{"a=b.", 4},
		{"p(a) | a=b.", 10},
	}
	for _, tt := range tests {
		c := mustClause(t, bank, tt.input)
		if got := c.StandardWeight(); got != tt.want {
			t.Errorf("weight of %q: got %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSortForSubsumptionDeterministic(t *testing.T) {
	bank := terms.NewBank()
	c1 := mustClause(t, bank, "p(a) | p(X) | ~q(b).")
	c2 := mustClause(t, bank, "~q(b) | p(a) | p(Y).")
	c1.SortForSubsumption()
	c2.SortForSubsumption()
	// Same literal multiset up to variable names, same order after sorting.
	require.Equal(t, len(c1.Lits), len(c2.Lits))
	for i := range c1.Lits {
		require.Equal(t, c1.Lits[i].Positive, c2.Lits[i].Positive, "polarity at %d", i)
		require.Equal(t, c1.Lits[i].Weight(), c2.Lits[i].Weight(), "weight at %d", i)
	}

	before := litStrings(c1)
	c1.SortForSubsumption()
	if diff := cmp.Diff(before, litStrings(c1)); diff != "" {
		t.Errorf("sorting twice changed the clause (-first +second):\n%s", diff)
	}
}

func TestSortGeneralFirst(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "p(a) | p(X).")
	c.SortForSubsumption()
	require.Equal(t, []string{"p(X0)", "p(a)"}, litStrings(c))
}

func TestRemoveDuplicates(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "p(a) | p(a) | ~q(b) | p(a).")
	c.RemoveDuplicates()
	require.Equal(t, []string{"p(a)", "~q(b)"}, litStrings(c))
	require.Equal(t, c.LitCount(), c.PosLitNo+c.NegLitNo)
}

func TestRemoveResolved(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "a!=a | p(b) | c!=c.")
	c.RemoveResolved()
	require.Equal(t, []string{"p(b)"}, litStrings(c))

	// Positive trivial literals stay: they make the clause a tautology
	// instead.
	c = mustClause(t, bank, "a=a | p(b).")
	c.RemoveResolved()
	require.Equal(t, 2, c.LitCount())
	require.True(t, c.IsTautology())
}

func TestIsTautology(t *testing.T) {
	bank := terms.NewBank()
	require.True(t, mustClause(t, bank, "p(a) | ~p(a).").IsTautology())
	require.False(t, mustClause(t, bank, "p(a) | ~p(b).").IsTautology())
	require.False(t, mustClause(t, bank, "p(a) | ~q(a).").IsTautology())
}

func TestFlatCopyIndependence(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "p(a) | p(X).")
	cpy := c.FlatCopy()
	require.Equal(t, litStrings(c), litStrings(cpy))

	c.RemoveLitAt(0)
	require.Equal(t, 2, cpy.LitCount(), "copy shrank with the original")
	require.Equal(t, cpy.LitCount(), cpy.PosLitNo+cpy.NegLitNo)
}

func TestDerivationAppendOnly(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "p(a) | p(X).")
	require.Len(t, c.Derivation(), 1)
	require.Equal(t, clauses.DCInput, c.Derivation()[0].Op)

	c.PushDerivation(clauses.DCCondense)
	require.Len(t, c.Derivation(), 2)
	require.Equal(t, clauses.DCCondense, c.Derivation()[1].Op)
}

func TestClauseString(t *testing.T) {
	bank := terms.NewBank()
	c := mustClause(t, bank, "p(X) | ~q(a) | f(X)=b | a!=b.")
	require.Equal(t, "p(X0) | ~q(a) | f(X0)=b | a!=b", c.String())
	require.Equal(t, "$false", clauses.New(nil).String())
}
