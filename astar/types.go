package astar

// Adapter exposes a graph over node ids 0..numNodes-1.
type Adapter interface {
	// Neighbors appends the successors of node to buf and returns it.
	Neighbors(node int, buf []int) []int
	// Cost returns the non-negative cost of the edge from → to.
	Cost(from, to int) float64
	// Heuristic estimates the remaining cost from node to goal.
	Heuristic(node, goal int) float64
}

// Status is the state of an Incremental search.
type Status uint8

const (
	// Pending means the step budget ran out; call Step again.
	Pending Status = iota
	// Completed means the goal was reached; Path is available.
	Completed
	// NotFound means the search failed for good.
	NotFound
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	case NotFound:
		return "not found"
	}

	return "unknown"
}

// DefaultMaxIterations is the budget used by callers without their own.
const DefaultMaxIterations = 100000
