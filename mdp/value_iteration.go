package mdp

import (
	"math"
)

// Solution holds the converged value function and its greedy policy.
type Solution struct {
	grid   *Grid
	values []float64 // row-major, one per cell
	policy []Action  // row-major; meaningful for non-wall, non-goal cells
	// Iterations is the number of sweeps performed until convergence.
	Iterations int
}

// ValueIteration solves the grid by synchronous Bellman sweeps:
//
//	V(s) = StepReward + γ · max over actions of V(move(s, a))
//
// with V(goal) fixed at GoalReward and walls never updated. Iteration stops
// once the sup-norm change of a sweep drops below Epsilon; hitting
// MaxIterations first returns ErrNoConvergence. Option invariants are
// validated before any sweep (ErrBadDiscount, ErrBadEpsilon,
// ErrBadIterations).
//
// The greedy policy picks, per cell, the action whose destination has the
// highest converged value; ties break deterministically in N, E, S, W order.
//
// Complexity: O(W×H×4) per sweep; the sweep count is governed by the
// discount's contraction rate and Epsilon.
func ValueIteration(g *Grid, opts Options) (*Solution, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := g.Width * g.Height
	values := make([]float64, n)
	values[g.goal] = opts.GoalReward

	for it := 1; it <= opts.MaxIterations; it++ {
		next := make([]float64, n)
		next[g.goal] = opts.GoalReward
		delta := 0.0
		for idx := 0; idx < n; idx++ {
			if idx == g.goal {
				continue
			}
			x, y := g.Coordinate(idx)
			if g.IsWall(x, y) {
				continue
			}
			best := math.Inf(-1)
			for a := range actionOffsets {
				if v := values[g.move(idx, Action(a))]; v > best {
					best = v
				}
			}
			v := opts.StepReward + opts.Discount*best
			next[idx] = v
			if d := math.Abs(v - values[idx]); d > delta {
				delta = d
			}
		}
		values = next
		if delta < opts.Epsilon {
			return &Solution{
				grid:       g,
				values:     values,
				policy:     greedyPolicy(g, values),
				Iterations: it,
			}, nil
		}
	}

	return nil, ErrNoConvergence
}

// greedyPolicy extracts the argmax action per cell from a converged value
// function, ties broken in N, E, S, W order.
func greedyPolicy(g *Grid, values []float64) []Action {
	n := g.Width * g.Height
	policy := make([]Action, n)
	for idx := 0; idx < n; idx++ {
		x, y := g.Coordinate(idx)
		if g.IsWall(x, y) || idx == g.goal {
			continue
		}
		best, bestValue := North, math.Inf(-1)
		for a := range actionOffsets {
			if v := values[g.move(idx, Action(a))]; v > bestValue {
				best, bestValue = Action(a), v
			}
		}
		policy[idx] = best
	}

	return policy
}

// ValueAt returns the converged value of cell (x,y).
func (s *Solution) ValueAt(x, y int) float64 {
	return s.values[s.grid.index(x, y)]
}

// PolicyAt returns the greedy action at cell (x,y). The result is undefined
// for walls and the goal cell.
func (s *Solution) PolicyAt(x, y int) Action {
	return s.policy[s.grid.index(x, y)]
}

// PathFromStart follows the greedy policy from the start cell and returns
// the visited coordinates, start and goal included. The walk is capped at
// Width×Height steps; failing to reach the goal within the cap (a cycle, or
// a start sealed off by walls) returns ErrNoPath.
// Complexity: O(W×H).
func (s *Solution) PathFromStart() ([][2]int, error) {
	limit := s.grid.Width * s.grid.Height
	idx := s.grid.start
	path := make([][2]int, 0, limit)
	for step := 0; step <= limit; step++ {
		x, y := s.grid.Coordinate(idx)
		path = append(path, [2]int{x, y})
		if idx == s.grid.goal {
			return path, nil
		}
		next := s.grid.move(idx, s.policy[idx])
		if next == idx {
			return nil, ErrNoPath
		}
		idx = next
	}

	return nil, ErrNoPath
}
