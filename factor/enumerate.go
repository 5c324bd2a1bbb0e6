package factor

import "sort"

// Size returns the joint-state count of the scope: the product of all
// domain sizes. The empty scope has exactly one joint state (the empty
// assignment). Size is the dominant cost driver for every enumeration-based
// operation in this package.
// Complexity: O(v).
func (f *Factor) Size() int {
	size := 1
	for _, v := range f.vars {
		size *= v.R
	}

	return size
}

// AssignmentAt decodes joint-state index i into its Assignment using a
// mixed-radix counter over the scope's domain sizes: the first variable in
// the scope varies slowest, the last varies fastest. Valid for 0 ≤ i < Size.
// Complexity: O(v log v) per call (canonical key construction).
func (f *Factor) AssignmentAt(i int) Assignment {
	names := make([]string, len(f.vars))
	values := make([]int, len(f.vars))
	rem := i
	for j := len(f.vars) - 1; j >= 0; j-- {
		v := f.vars[j]
		names[j] = v.Name
		values[j] = rem%v.R + 1
		rem /= v.R
	}
	sort.Sort(&pairSorter{names: names, values: values})

	return newSortedAssignment(names, values)
}

// indexOf is the inverse of AssignmentAt: it encodes a full-scope
// assignment back into its mixed-radix joint-state index. Assignments that
// miss a scope variable encode that position as value 1.
// Complexity: O(v log v).
func (f *Factor) indexOf(a Assignment) int {
	idx := 0
	for _, v := range f.vars {
		val, ok := a.Value(v.Name)
		if !ok {
			val = 1
		}
		idx = idx*v.R + (val - 1)
	}

	return idx
}

// Assignments produces the complete, deterministic sequence of all joint
// assignments over the scope: the Cartesian product of every domain 1..R,
// first scope variable slowest, last fastest. Pure and restartable — each
// call rebuilds the same sequence.
// Complexity: O(S·v) time and memory for S = Size().
func (f *Factor) Assignments() []Assignment {
	size := f.Size()
	out := make([]Assignment, size)
	for i := 0; i < size; i++ {
		out[i] = f.AssignmentAt(i)
	}

	return out
}
