package factor

// Product returns the factor product (join) of f and other: a new Factor
// over the union of both scopes whose weight at every joint assignment is
// the product of each operand's weight at that assignment's projection onto
// the operand's own scope.
//
// Scope union order: f's variables first, in their original order, followed
// by any of other's variables whose name is not already present. Variable
// identity is by name; a shared name declaring a different domain size fails
// fast with ErrDomainMismatch before any enumeration begins.
//
// Lookups are outer-join-with-zero: a combination absent from either
// operand's table contributes a factor of zero to that joint entry, never an
// error. The result is fully materialized — every joint assignment of the
// union scope gets a stored entry, zeros included.
//
// Pointwise the operation is commutative: f.Product(g) and g.Product(f)
// assign equal weights to equal joint assignments; only the resulting
// variable ordering differs.
//
// Complexity: O(S·v) time and memory, where S is the product of the union
// scope's domain sizes and v its variable count.
func (f *Factor) Product(other *Factor) (*Factor, error) {
	byName := make(map[string]Variable, len(f.vars))
	union := make([]Variable, 0, len(f.vars)+len(other.vars))
	for _, v := range f.vars {
		byName[v.Name] = v
		union = append(union, v)
	}
	for _, v := range other.vars {
		prev, ok := byName[v.Name]
		if !ok {
			byName[v.Name] = v
			union = append(union, v)
			continue
		}
		if prev.R != v.R {
			return nil, ErrDomainMismatch
		}
	}

	out, err := New(union)
	if err != nil {
		return nil, err
	}
	leftNames, rightNames := f.names(), other.names()
	size := out.Size()
	for i := 0; i < size; i++ {
		joint := out.AssignmentAt(i)
		w := f.Weight(joint.Project(leftNames)) * other.Weight(joint.Project(rightNames))
		out.table[joint.Key()] = Entry{Assignment: joint, Weight: w}
	}

	return out, nil
}
