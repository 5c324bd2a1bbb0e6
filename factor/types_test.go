package factor_test

import (
	"testing"

	"github.com/katalvlaran/lvlprob/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewVariable_Validation verifies constructor guards for names and
// domain sizes.
func TestNewVariable_Validation(t *testing.T) {
	_, err := factor.NewVariable("", 2)
	assert.ErrorIs(t, err, factor.ErrEmptyName, "empty name must error")

	_, err = factor.NewVariable("x", 0)
	assert.ErrorIs(t, err, factor.ErrBadDomain, "domain size 0 must error")

	v, err := factor.NewVariable("x", 3)
	require.NoError(t, err)
	assert.Equal(t, "x", v.Name)
	assert.Equal(t, 3, v.R)
}

// TestAssignment_OrderIndependence verifies that equality and the canonical
// key ignore pair order entirely.
func TestAssignment_OrderIndependence(t *testing.T) {
	a := factor.NewAssignment(map[string]int{"x": 1, "y": 2, "z": 3})
	b := factor.NewAssignment(map[string]int{"z": 3, "x": 1, "y": 2})

	assert.True(t, a.Equal(b), "content-equal assignments must compare equal")
	assert.Equal(t, a.Key(), b.Key(), "canonical keys must match")
	assert.Equal(t, "x=1;y=2;z=3", a.Key(), "key must be sorted by name")
}

// TestAssignment_Value verifies lookup of present and absent names.
func TestAssignment_Value(t *testing.T) {
	a := factor.NewAssignment(map[string]int{"x": 1, "y": 2})

	v, ok := a.Value("y")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = a.Value("q")
	assert.False(t, ok, "absent name must report ok=false")
}

// TestAssignment_ProjectAndWithout verifies scope reduction helpers.
func TestAssignment_ProjectAndWithout(t *testing.T) {
	a := factor.NewAssignment(map[string]int{"x": 1, "y": 2, "z": 3})

	p := a.Project([]string{"z", "x"})
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "x=1;z=3", p.Key(), "projection keeps only requested names")

	w := a.Without("y")
	assert.True(t, w.Equal(p), "Without(y) equals Project(x,z)")

	same := a.Without("missing")
	assert.True(t, same.Equal(a), "removing an absent name is a no-op")
}

// TestAssignment_Empty verifies the zero-pair assignment used by zero-scope
// factors.
func TestAssignment_Empty(t *testing.T) {
	e := factor.NewAssignment(nil)
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, "", e.Key())
	assert.Equal(t, "{}", e.String())
}
