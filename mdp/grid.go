// Package mdp solves small deterministic Markov decision processes on
// rectangular grids by Bellman fixed-point (value) iteration. It supports:
//
//   - Grids of Free, Wall, Start and Goal cells
//   - Four orthogonal actions; bumping a wall or the border stays in place
//   - A terminal goal with fixed reward and a per-step living cost
//   - Greedy policy extraction and start→goal path reconstruction
//
// The state space is the set of grid cells; everything is fully
// materialized, so grids are expected to stay small.
package mdp

// Grid is an immutable rectangular MDP arena. Width and Height define
// dimensions; cells[y][x] holds the cell code. Exactly one Start and one
// Goal cell exist by construction.
type Grid struct {
	Width, Height int
	cells         [][]int
	start, goal   int // row-major indices
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of cell
// codes. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell, or the start/goal
// cardinality errors.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	start, goal := -1, -1
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
		for x, c := range row {
			switch c {
			case Free, Wall:
			case Start:
				if start >= 0 {
					return nil, ErrManyStarts
				}
				start = y*w + x
			case Goal:
				if goal >= 0 {
					return nil, ErrManyGoals
				}
				goal = y*w + x
			default:
				return nil, ErrBadCell
			}
		}
	}
	if start < 0 {
		return nil, ErrNoStart
	}
	if goal < 0 {
		return nil, ErrNoGoal
	}

	return &Grid{Width: w, Height: h, cells: cells, start: start, goal: goal}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWall reports whether (x,y) is a wall cell. Out-of-bounds coordinates
// count as walls, so movement logic needs no separate border case.
// Complexity: O(1).
func (g *Grid) IsWall(x, y int) bool {
	return !g.InBounds(x, y) || g.cells[y][x] == Wall
}

// Start returns the coordinates of the start cell.
func (g *Grid) Start() (x, y int) { return g.Coordinate(g.start) }

// Goal returns the coordinates of the goal cell.
func (g *Grid) Goal() (x, y int) { return g.Coordinate(g.goal) }

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// move applies action a to the cell at idx and returns the resulting cell
// index. Deterministic transitions: stepping into a wall or off the grid
// leaves the agent in place.
// Complexity: O(1).
func (g *Grid) move(idx int, a Action) int {
	x, y := g.Coordinate(idx)
	d := actionOffsets[a]
	nx, ny := x+d[0], y+d[1]
	if g.IsWall(nx, ny) {
		return idx
	}

	return g.index(nx, ny)
}
