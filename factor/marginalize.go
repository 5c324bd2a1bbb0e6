package factor

// Marginalize sums target out of the factor: it returns a new Factor over
// the scope minus target whose weight at each reduced assignment is the sum
// of the original weights over every value of target. Missing source entries
// contribute zero.
//
// Guarantees: the output table's key set equals exactly the Cartesian
// product of the remaining variables' domains (zero-filled where the source
// had no mass), and total mass is preserved — Sum of the result equals Sum
// of the receiver. Marginalizing the last variable yields the zero-scope
// factor carrying total mass under the empty assignment.
//
// Returns ErrVariableNotFound when target's name is outside the scope.
// Complexity: O(S·v) over the receiver's joint-state count S.
func (f *Factor) Marginalize(target Variable) (*Factor, error) {
	remaining, found := scopeWithout(f.vars, target.Name)
	if !found {
		return nil, ErrVariableNotFound
	}

	out, err := New(remaining)
	if err != nil {
		return nil, err
	}
	size := f.Size()
	for i := 0; i < size; i++ {
		a := f.AssignmentAt(i)
		reduced := a.Without(target.Name)
		e, ok := out.table[reduced.Key()]
		if !ok {
			e = Entry{Assignment: reduced}
		}
		e.Weight += f.Weight(a)
		out.table[reduced.Key()] = e
	}

	return out, nil
}

// Restrict conditions the factor on evidence: it returns a new Factor over
// the scope minus the evidence names, keeping exactly the entries consistent
// with every evidence value. Each remaining joint assignment gets a stored
// entry (the weight of its unique consistent extension, zero when the source
// had none).
//
// The result is unnormalized; chain with Normalize to obtain a conditional
// distribution.
//
// Returns ErrVariableNotFound when an evidence name is outside the scope.
// Complexity: O(S·v) over the receiver's joint-state count S.
func (f *Factor) Restrict(evidence Assignment) (*Factor, error) {
	remaining := make([]Variable, 0, len(f.vars))
	for _, v := range f.vars {
		if _, ok := evidence.Value(v.Name); ok {
			continue
		}
		remaining = append(remaining, v)
	}
	if len(f.vars)-len(remaining) != evidence.Len() {
		return nil, ErrVariableNotFound
	}

	out, err := New(remaining)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(remaining))
	for i, v := range remaining {
		names[i] = v.Name
	}
	size := f.Size()
	for i := 0; i < size; i++ {
		a := f.AssignmentAt(i)
		if !consistent(a, evidence) {
			continue
		}
		reduced := a.Project(names)
		out.table[reduced.Key()] = Entry{Assignment: reduced, Weight: f.Weight(a)}
	}

	return out, nil
}

// Normalize rescales the table in place so the weights sum to 1, turning an
// unnormalized weight table into a probability distribution. This is the one
// mutating operation in the algebra; every other operation returns a new
// Factor.
//
// A zero total is a degenerate factor: the table is left unchanged and
// ErrDegenerateFactor is returned so the caller can inspect it. Normalize is
// idempotent up to floating-point rounding.
// Complexity: O(e) over stored entries.
func (f *Factor) Normalize() error {
	total := f.Sum()
	if total == 0 {
		return ErrDegenerateFactor
	}
	for k, e := range f.table {
		e.Weight /= total
		f.table[k] = e
	}

	return nil
}

// scopeWithout returns scope minus the named variable, reporting whether the
// name was present.
func scopeWithout(scope []Variable, name string) ([]Variable, bool) {
	out := make([]Variable, 0, len(scope))
	found := false
	for _, v := range scope {
		if v.Name == name {
			found = true
			continue
		}
		out = append(out, v)
	}

	return out, found
}

// consistent reports whether a agrees with every (name, value) pair of
// evidence. Names absent from a are ignored.
func consistent(a, evidence Assignment) bool {
	for _, name := range evidence.Names() {
		want, _ := evidence.Value(name)
		if got, ok := a.Value(name); ok && got != want {
			return false
		}
	}

	return true
}
