// Package bayes computes posterior distributions from discrete factors:
// a prior times a likelihood, restricted to observed evidence and
// renormalized, is the posterior over the unobserved variables.
//
// The package is a thin composition over the factor algebra — it adds no
// state and no invariants of its own. All errors originate in the algebra:
//
//	factor.ErrDomainMismatch    - prior and likelihood disagree on a shared
//	                              variable's domain size.
//	factor.ErrVariableNotFound  - evidence names a variable outside the
//	                              joint scope.
//	factor.ErrDegenerateFactor  - the evidence carries zero prior mass, so
//	                              no conditional distribution exists.
package bayes

import (
	"github.com/katalvlaran/lvlprob/factor"
)

// Posterior conditions prior × likelihood on evidence and returns the
// normalized distribution over the remaining variables.
//
// The classic use: prior over a hypothesis H, likelihood over (H, E),
// evidence fixing E — the result is P(H | E).
//
// The operands are never mutated; the returned factor is freshly built.
// Complexity: O(S·v) over the joint scope's state count S — the product
// dominates.
func Posterior(prior, likelihood *factor.Factor, evidence factor.Assignment) (*factor.Factor, error) {
	joint, err := prior.Product(likelihood)
	if err != nil {
		return nil, err
	}
	cond, err := joint.Restrict(evidence)
	if err != nil {
		return nil, err
	}
	if err = cond.Normalize(); err != nil {
		return nil, err
	}

	return cond, nil
}
