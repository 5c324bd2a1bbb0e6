package bayes_test

import (
	"testing"

	"github.com/katalvlaran/lvlprob/bayes"
	"github.com/katalvlaran/lvlprob/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagnosisFactors builds the reference medical-diagnosis pair:
// prior P(D) = {1: 0.01, 2: 0.99} and likelihood P(T|D) with sensitivity
// 0.95 and false-positive rate 0.1.
func diagnosisFactors(t *testing.T) (*factor.Factor, *factor.Factor) {
	t.Helper()
	d, err := factor.NewVariable("D", 2)
	require.NoError(t, err)
	tv, err := factor.NewVariable("T", 2)
	require.NoError(t, err)

	prior, err := factor.FromWeights([]factor.Variable{d}, []float64{0.01, 0.99})
	require.NoError(t, err)
	likelihood, err := factor.FromWeights([]factor.Variable{d, tv},
		[]float64{0.95, 0.05, 0.1, 0.9})
	require.NoError(t, err)

	return prior, likelihood
}

// TestPosterior_MedicalDiagnosis checks the worked example: a positive test
// lifts P(D=1) from 0.01 to roughly 0.08756.
func TestPosterior_MedicalDiagnosis(t *testing.T) {
	prior, likelihood := diagnosisFactors(t)

	post, err := bayes.Posterior(prior, likelihood,
		factor.NewAssignment(map[string]int{"T": 1}))
	require.NoError(t, err)

	require.Len(t, post.Variables(), 1)
	assert.InDelta(t, 0.0095/0.1085, post.Weight(factor.NewAssignment(map[string]int{"D": 1})), 1e-9)
	assert.InDelta(t, 0.099/0.1085, post.Weight(factor.NewAssignment(map[string]int{"D": 2})), 1e-9)
	assert.InDelta(t, 1.0, post.Sum(), 1e-9, "posterior must be normalized")
}

// TestPosterior_NegativeEvidence checks the complementary observation:
// a negative test pushes P(D=1) below the prior.
func TestPosterior_NegativeEvidence(t *testing.T) {
	prior, likelihood := diagnosisFactors(t)

	post, err := bayes.Posterior(prior, likelihood,
		factor.NewAssignment(map[string]int{"T": 2}))
	require.NoError(t, err)

	pD1 := post.Weight(factor.NewAssignment(map[string]int{"D": 1}))
	assert.Less(t, pD1, 0.01, "negative evidence must lower the prior")
	assert.InDelta(t, 0.0005/0.8915, pD1, 1e-9)
}

// TestPosterior_OperandsUntouched verifies purity: the inputs keep their raw
// weights after the call.
func TestPosterior_OperandsUntouched(t *testing.T) {
	prior, likelihood := diagnosisFactors(t)

	_, err := bayes.Posterior(prior, likelihood,
		factor.NewAssignment(map[string]int{"T": 1}))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, prior.Sum(), 1e-12)
	assert.InDelta(t, 2.0, likelihood.Sum(), 1e-12, "CPT rows each sum to 1")
}

// TestPosterior_DomainMismatch propagates the algebra's fail-fast identity
// check.
func TestPosterior_DomainMismatch(t *testing.T) {
	d2, err := factor.NewVariable("D", 2)
	require.NoError(t, err)
	d3, err := factor.NewVariable("D", 3)
	require.NoError(t, err)
	tv, err := factor.NewVariable("T", 2)
	require.NoError(t, err)

	prior, err := factor.FromWeights([]factor.Variable{d2}, []float64{0.5, 0.5})
	require.NoError(t, err)
	likelihood, err := factor.New([]factor.Variable{d3, tv})
	require.NoError(t, err)

	_, err = bayes.Posterior(prior, likelihood,
		factor.NewAssignment(map[string]int{"T": 1}))
	assert.ErrorIs(t, err, factor.ErrDomainMismatch)
}

// TestPosterior_ZeroMassEvidence verifies that impossible evidence surfaces
// as a degenerate factor instead of a silent division by zero.
func TestPosterior_ZeroMassEvidence(t *testing.T) {
	d, err := factor.NewVariable("D", 2)
	require.NoError(t, err)
	tv, err := factor.NewVariable("T", 2)
	require.NoError(t, err)

	prior, err := factor.FromWeights([]factor.Variable{d}, []float64{1, 0})
	require.NoError(t, err)
	// T=1 is impossible under D=1, and D=2 has no prior mass.
	likelihood, err := factor.FromWeights([]factor.Variable{d, tv},
		[]float64{0, 1, 0.5, 0.5})
	require.NoError(t, err)

	_, err = bayes.Posterior(prior, likelihood,
		factor.NewAssignment(map[string]int{"T": 1}))
	assert.ErrorIs(t, err, factor.ErrDegenerateFactor)
}

// TestPosterior_UnknownEvidence propagates the scope check from Restrict.
func TestPosterior_UnknownEvidence(t *testing.T) {
	prior, likelihood := diagnosisFactors(t)

	_, err := bayes.Posterior(prior, likelihood,
		factor.NewAssignment(map[string]int{"Q": 1}))
	assert.ErrorIs(t, err, factor.ErrVariableNotFound)
}
