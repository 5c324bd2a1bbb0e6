// Package mdp defines core types, options, and sentinel errors for the
// mdp subpackage of github.com/katalvlaran/lvlprob.
package mdp

import (
	"errors"
)

// Sentinel errors for mdp operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("mdp: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mdp: all rows must have the same length")
	// ErrBadCell indicates a cell code outside Free/Wall/Start/Goal.
	ErrBadCell = errors.New("mdp: unknown cell code")
	// ErrNoStart indicates the grid contains no start cell.
	ErrNoStart = errors.New("mdp: grid must contain a start cell")
	// ErrManyStarts indicates the grid contains more than one start cell.
	ErrManyStarts = errors.New("mdp: grid must contain exactly one start cell")
	// ErrNoGoal indicates the grid contains no goal cell.
	ErrNoGoal = errors.New("mdp: grid must contain a goal cell")
	// ErrManyGoals indicates the grid contains more than one goal cell.
	ErrManyGoals = errors.New("mdp: grid must contain exactly one goal cell")
	// ErrBadDiscount indicates a discount outside the open interval (0, 1).
	ErrBadDiscount = errors.New("mdp: discount must lie strictly between 0 and 1")
	// ErrBadEpsilon indicates a non-positive convergence tolerance.
	ErrBadEpsilon = errors.New("mdp: epsilon must be positive")
	// ErrBadIterations indicates a non-positive iteration cap.
	ErrBadIterations = errors.New("mdp: max iterations must be positive")
	// ErrNoConvergence indicates value iteration hit the iteration cap
	// before the sup-norm change dropped below epsilon.
	ErrNoConvergence = errors.New("mdp: value iteration did not converge within max iterations")
	// ErrNoPath indicates the greedy policy does not lead from start to goal.
	ErrNoPath = errors.New("mdp: no policy path from start to goal")
)

// Cell codes accepted by NewGrid.
const (
	// Free is a traversable cell.
	Free int = iota
	// Wall blocks movement; stepping into it leaves the agent in place.
	Wall
	// Start marks the single starting cell (traversable).
	Start
	// Goal marks the single terminal cell; its value is fixed at GoalReward.
	Goal
)

// Action is one of the four orthogonal moves.
type Action int

const (
	// North moves one cell up (y-1).
	North Action = iota
	// East moves one cell right (x+1).
	East
	// South moves one cell down (y+1).
	South
	// West moves one cell left (x-1).
	West
)

// actionOffsets lists (dx, dy) per Action in N, E, S, W order. This order is
// also the deterministic tie-break for greedy policy extraction.
var actionOffsets = [...][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// String returns the action's compass name.
func (a Action) String() string {
	switch a {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Options contains tunable parameters for value iteration.
type Options struct {
	// Discount is the Bellman discount factor γ, strictly between 0 and 1.
	Discount float64
	// StepReward is the reward collected on every non-terminal step
	// (typically a small negative living cost).
	StepReward float64
	// GoalReward is the terminal value fixed at the goal cell.
	GoalReward float64
	// Epsilon is the sup-norm change below which iteration stops.
	Epsilon float64
	// MaxIterations caps the number of sweeps before ErrNoConvergence.
	MaxIterations int
}

// DefaultOptions returns an Options with default settings:
// Discount=0.9, StepReward=-0.04, GoalReward=1, Epsilon=1e-9,
// MaxIterations=1000.
func DefaultOptions() Options {
	return Options{
		Discount:      0.9,
		StepReward:    -0.04,
		GoalReward:    1.0,
		Epsilon:       1e-9,
		MaxIterations: 1000,
	}
}

// validate checks option invariants before any sweep begins.
func (o Options) validate() error {
	if o.Discount <= 0 || o.Discount >= 1 {
		return ErrBadDiscount
	}
	if o.Epsilon <= 0 {
		return ErrBadEpsilon
	}
	if o.MaxIterations < 1 {
		return ErrBadIterations
	}

	return nil
}
