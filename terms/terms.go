package terms

import (
	"fmt"
	"strconv"
	"strings"
)

// A Symbol identifies a function or predicate symbol. Symbols are compared
// by value: two symbols are the same iff name and arity are the same.
type Symbol struct {
	Name  string
	Arity int
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s/%d", s.Name, s.Arity)
}

// TrueSym is the distinguished constant used as the right-hand side of
// predicate literals: the atom p(t1,...,tn) is stored as p(t1,...,tn)=$true.
var TrueSym = Symbol{Name: "$true", Arity: 0}

// A Term is either a variable or the application of a function symbol to
// argument terms. Terms are interned in a Bank and immutable afterwards,
// so two terms built in the same bank are syntactically equal iff they are
// the same pointer.
type Term struct {
	Fun   Symbol // function symbol; zero value if the term is a variable
	VarNo int    // variable number, -1 for applications
	Args  []*Term
	id    int // intern id, unique per bank
}

// IsVar is true iff t is a variable.
func (t *Term) IsVar() bool { return t.VarNo >= 0 }

// IsTrueConst is true iff t is the $true constant.
func (t *Term) IsTrueConst() bool { return !t.IsVar() && t.Fun == TrueSym }

// HasVar is true iff v occurs in t. v must be a variable.
func (t *Term) HasVar(v *Term) bool {
	if t == v {
		return true
	}
	for _, arg := range t.Args {
		if arg.HasVar(v) {
			return true
		}
	}
	return false
}

// Weight returns the standard symbol-count weight of t: function symbols
// count fweight, variables count vweight.
func (t *Term) Weight(fweight, vweight int) int {
	if t.IsVar() {
		return vweight
	}
	w := fweight
	for _, arg := range t.Args {
		w += arg.Weight(fweight, vweight)
	}
	return w
}

func (t *Term) String() string {
	if t.IsVar() {
		return "X" + strconv.Itoa(t.VarNo)
	}
	if len(t.Args) == 0 {
		return t.Fun.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Fun.Name)
	sb.WriteByte('(')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Compare defines a total order on interned terms: variables before
// applications, then by variable number or intern id.
// Only meaningful for terms from the same bank.
func (t *Term) Compare(u *Term) int {
	if t == u {
		return 0
	}
	if t.IsVar() != u.IsVar() {
		if t.IsVar() {
			return -1
		}
		return 1
	}
	if t.IsVar() {
		return t.VarNo - u.VarNo
	}
	return t.id - u.id
}

// A Bank interns terms. All terms of a proof state live in a single bank;
// the bank is what makes pointer comparison a valid equality test.
type Bank struct {
	apps map[string]*Term
	vars map[int]*Term
	next int
}

// NewBank returns an empty term bank.
func NewBank() *Bank {
	return &Bank{
		apps: make(map[string]*Term),
		vars: make(map[int]*Term),
	}
}

// Var returns the interned variable with the given number.
func (b *Bank) Var(no int) *Term {
	if t, ok := b.vars[no]; ok {
		return t
	}
	t := &Term{VarNo: no, id: b.next}
	b.next++
	b.vars[no] = t
	return t
}

// Fun returns the interned application of sym to args. The arity of sym
// must match the number of arguments.
func (b *Bank) Fun(sym Symbol, args ...*Term) *Term {
	if sym.Arity != len(args) {
		panic(fmt.Sprintf("arity mismatch for %s: got %d args", sym, len(args)))
	}
	var sb strings.Builder
	sb.WriteString(sym.Name)
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(sym.Arity))
	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(arg.id))
	}
	key := sb.String()
	if t, ok := b.apps[key]; ok {
		return t
	}
	t := &Term{Fun: sym, VarNo: -1, Args: args, id: b.next}
	b.next++
	b.apps[key] = t
	return t
}

// Const is shorthand for a 0-ary application.
func (b *Bank) Const(name string) *Term {
	return b.Fun(Symbol{Name: name})
}

// True returns the interned $true constant.
func (b *Bank) True() *Term {
	return b.Fun(TrueSym)
}
