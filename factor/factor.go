// Package factor implements a small discrete factor algebra: tables mapping
// joint assignments of named finite-domain variables to real weights, with
// enumeration, product, marginalization, restriction, and normalization.
//
// Every table lookup that may miss resolves to weight 0.0, never to an
// error; absent entries and explicit zeros are indistinguishable. The one
// in-place operation is Normalize — everything else returns a new Factor
// and leaves its operands untouched.
//
// The dominant cost everywhere is combinatorial: enumeration, product, and
// marginalization all touch the full Cartesian product of the involved
// domains. There is no lazy or incremental materialization.
package factor

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one stored table row: a full-scope assignment and its weight.
type Entry struct {
	Assignment Assignment
	Weight     float64
}

// Factor owns an ordered variable scope and a weight table keyed by
// canonical assignment keys. A Factor need not be normalized; it may
// represent an unnormalized weight table, a probability distribution, or a
// conditional probability table.
//
// A zero-variable scope is legal: it has exactly one joint state, the empty
// assignment, and arises from marginalizing or restricting away the last
// variable.
type Factor struct {
	vars  []Variable
	table map[string]Entry
}

// New constructs a Factor from an ordered variable scope and optional
// initial entries.
//
// Validation: every variable must have a non-empty name and domain size ≥ 1
// (ErrEmptyName, ErrBadDomain), names must be unique within the scope
// (ErrDuplicateVariable), and every entry's name-set must equal the scope's
// name-set exactly (ErrScopeMismatch). Entry values are trusted to lie in
// their variables' domains.
//
// Complexity: O(v + e·v) for v scope variables and e entries.
func New(vars []Variable, entries ...Entry) (*Factor, error) {
	scope := make([]Variable, len(vars))
	copy(scope, vars)
	seen := make(map[string]struct{}, len(scope))
	for _, v := range scope {
		if v.Name == "" {
			return nil, ErrEmptyName
		}
		if v.R < 1 {
			return nil, ErrBadDomain
		}
		if _, dup := seen[v.Name]; dup {
			return nil, ErrDuplicateVariable
		}
		seen[v.Name] = struct{}{}
	}

	f := &Factor{vars: scope, table: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if err := f.Set(e.Assignment, e.Weight); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// FromWeights constructs a Factor whose table covers the complete joint
// state space, taking weights in enumeration order: the first variable in
// vars varies slowest, the last varies fastest.
// Returns ErrWeightCount if len(weights) differs from the joint-state count.
// Complexity: O(S·v) where S is the joint-state count.
func FromWeights(vars []Variable, weights []float64) (*Factor, error) {
	f, err := New(vars)
	if err != nil {
		return nil, err
	}
	if len(weights) != f.Size() {
		return nil, ErrWeightCount
	}
	for i, w := range weights {
		a := f.AssignmentAt(i)
		f.table[a.Key()] = Entry{Assignment: a, Weight: w}
	}

	return f, nil
}

// Variables returns a copy of the factor's ordered variable scope.
func (f *Factor) Variables() []Variable {
	out := make([]Variable, len(f.vars))
	copy(out, f.vars)

	return out
}

// names returns the scope's variable names in scope order.
func (f *Factor) names() []string {
	out := make([]string, len(f.vars))
	for i, v := range f.vars {
		out[i] = v.Name
	}

	return out
}

// Weight returns the stored weight for a, or 0.0 when no entry exists.
// This get-or-default access is the only way the algebra reads the table;
// a missing combination is a zero contribution, never an error.
// Complexity: O(1).
func (f *Factor) Weight(a Assignment) float64 {
	if e, ok := f.table[a.Key()]; ok {
		return e.Weight
	}

	return 0.0
}

// Set stores weight w for assignment a, replacing any previous entry.
// Returns ErrScopeMismatch unless a's name-set equals the scope's name-set.
// Complexity: O(v).
func (f *Factor) Set(a Assignment, w float64) error {
	if a.Len() != len(f.vars) {
		return ErrScopeMismatch
	}
	for _, v := range f.vars {
		if _, ok := a.Value(v.Name); !ok {
			return ErrScopeMismatch
		}
	}
	f.table[a.Key()] = Entry{Assignment: a, Weight: w}

	return nil
}

// Len returns the number of stored table entries (zeros included if stored).
func (f *Factor) Len() int { return len(f.table) }

// Sum returns the total of all stored weights.
// Complexity: O(e) over stored entries.
func (f *Factor) Sum() float64 {
	var total float64
	for _, e := range f.table {
		total += e.Weight
	}

	return total
}

// Clone returns a deep copy: mutating the copy (or normalizing it) never
// affects the original.
func (f *Factor) Clone() *Factor {
	table := make(map[string]Entry, len(f.table))
	for k, e := range f.table {
		table[k] = e
	}
	vars := make([]Variable, len(f.vars))
	copy(vars, f.vars)

	return &Factor{vars: vars, table: table}
}

// Entries returns all stored table rows sorted in enumeration order
// (first scope variable slowest). The slice is a snapshot; mutating it does
// not affect the factor. Deterministic across runs, suitable for exact
// comparison in tests.
// Complexity: O(e·v + e log e).
func (f *Factor) Entries() []Entry {
	out := make([]Entry, 0, len(f.table))
	for _, e := range f.table {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return f.indexOf(out[i].Assignment) < f.indexOf(out[j].Assignment)
	})

	return out
}

// String renders a deterministic dump: the ordered variable-name list
// followed by one line per stored entry in enumeration order.
func (f *Factor) String() string {
	var sb strings.Builder
	sb.WriteString("Factor(")
	sb.WriteString(strings.Join(f.names(), ","))
	sb.WriteString(")")
	for _, e := range f.Entries() {
		sb.WriteString(fmt.Sprintf("\n  %s -> %g", e.Assignment, e.Weight))
	}

	return sb.String()
}
