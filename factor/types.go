// Package factor defines core types and sentinel errors for the
// factor subpackage of github.com/katalvlaran/lvlprob.
package factor

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for factor operations.
var (
	// ErrEmptyName indicates a variable was declared with an empty name.
	ErrEmptyName = errors.New("factor: variable name must be non-empty")
	// ErrBadDomain indicates a variable was declared with domain size < 1.
	ErrBadDomain = errors.New("factor: variable domain size must be at least 1")
	// ErrDuplicateVariable indicates two variables in one scope share a name.
	ErrDuplicateVariable = errors.New("factor: duplicate variable name in scope")
	// ErrScopeMismatch indicates a table entry whose assignment names do not
	// equal the factor's variable names exactly.
	ErrScopeMismatch = errors.New("factor: assignment names do not match factor scope")
	// ErrVariableNotFound indicates an operation referenced a variable
	// outside the factor's scope.
	ErrVariableNotFound = errors.New("factor: variable not in factor scope")
	// ErrDomainMismatch indicates two factors share a variable name with
	// different declared domain sizes. Detected before any enumeration.
	ErrDomainMismatch = errors.New("factor: variables share a name but declare different domain sizes")
	// ErrDegenerateFactor indicates Normalize found a zero total weight.
	ErrDegenerateFactor = errors.New("factor: weights sum to zero, cannot normalize")
	// ErrWeightCount indicates FromWeights received a weight slice whose
	// length differs from the scope's joint-state count.
	ErrWeightCount = errors.New("factor: weight count must equal the scope's joint-state count")
)

// Variable is a named discrete random quantity with the finite domain 1..R.
// It is a pure value type: two variables are the same variable, for join
// purposes, exactly when their names are equal. Product validates that equal
// names also declare equal domain sizes.
type Variable struct {
	// Name uniquely identifies the variable within any one scope.
	Name string
	// R is the domain size; the variable takes integer values 1..R inclusive.
	R int
}

// NewVariable constructs a validated Variable.
// Returns ErrEmptyName if name is empty, ErrBadDomain if r < 1.
// Complexity: O(1).
func NewVariable(name string, r int) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}
	if r < 1 {
		return Variable{}, ErrBadDomain
	}

	return Variable{Name: name, R: r}, nil
}

// Assignment is an immutable mapping from variable names to one concrete
// domain value each. Equality and table hashing are content-based and
// independent of construction order: pairs are held sorted by name and a
// canonical string key ("a=1;b=2") is precomputed on construction.
//
// Values are trusted to lie in 1..R for their variable's declared domain;
// the algebra does not re-check ranges on every access.
type Assignment struct {
	names  []string // sorted ascending
	values []int    // aligned with names
	key    string   // canonical "name=value;..." encoding
}

// NewAssignment builds an Assignment from a name→value mapping.
// The input map is copied; later mutation of it does not affect the result.
// Complexity: O(k log k) for k pairs.
func NewAssignment(values map[string]int) Assignment {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	vals := make([]int, len(names))
	for i, name := range names {
		vals[i] = values[name]
	}

	return newSortedAssignment(names, vals)
}

// newSortedAssignment assembles an Assignment from pre-sorted parallel
// slices. Callers must not retain or mutate the slices afterwards.
func newSortedAssignment(names []string, values []int) Assignment {
	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(values[i]))
	}

	return Assignment{names: names, values: values, key: sb.String()}
}

// Len returns the number of (name, value) pairs.
func (a Assignment) Len() int { return len(a.names) }

// Value returns the value assigned to name and whether name is present.
// Callers are expected to query only names the assignment was built over.
// Complexity: O(log k).
func (a Assignment) Value(name string) (int, bool) {
	i := sort.SearchStrings(a.names, name)
	if i < len(a.names) && a.names[i] == name {
		return a.values[i], true
	}

	return 0, false
}

// Key returns the canonical order-independent encoding of the assignment.
// Two assignments are equal iff their keys are equal.
func (a Assignment) Key() string { return a.key }

// Names returns a copy of the assignment's variable names, sorted ascending.
func (a Assignment) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)

	return out
}

// Equal reports content equality, independent of construction order.
func (a Assignment) Equal(b Assignment) bool { return a.key == b.key }

// Project returns the sub-assignment over the given names.
// Names absent from the assignment are silently skipped, so projecting onto
// a factor's scope always yields a key that the factor's table understands.
// Complexity: O(n log k) for n requested names.
func (a Assignment) Project(names []string) Assignment {
	keep := make([]string, 0, len(names))
	vals := make([]int, 0, len(names))
	for _, name := range names {
		if v, ok := a.Value(name); ok {
			keep = append(keep, name)
			vals = append(vals, v)
		}
	}
	sort.Sort(&pairSorter{names: keep, values: vals})

	return newSortedAssignment(keep, vals)
}

// Without returns a copy of the assignment with one name removed.
// Removing an absent name returns an identical assignment.
// Complexity: O(k).
func (a Assignment) Without(name string) Assignment {
	keep := make([]string, 0, len(a.names))
	vals := make([]int, 0, len(a.names))
	for i, n := range a.names {
		if n == name {
			continue
		}
		keep = append(keep, n)
		vals = append(vals, a.values[i])
	}

	return newSortedAssignment(keep, vals)
}

// String renders the assignment as "{a=1;b=2}".
func (a Assignment) String() string { return "{" + a.key + "}" }

// pairSorter sorts parallel name/value slices by name.
type pairSorter struct {
	names  []string
	values []int
}

func (p *pairSorter) Len() int           { return len(p.names) }
func (p *pairSorter) Less(i, j int) bool { return p.names[i] < p.names[j] }
func (p *pairSorter) Swap(i, j int) {
	p.names[i], p.names[j] = p.names[j], p.names[i]
	p.values[i], p.values[j] = p.values[j], p.values[i]
}
