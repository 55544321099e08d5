package bfs

// Verdict is the visitor's decision for an accepted node.
type Verdict uint8

const (
	// Expand accepts the node and enqueues its valid neighbours.
	Expand Verdict = iota
	// Reject marks the node visited without expanding it.
	Reject
	// Stop ends the search, returning the visitor's value.
	Stop
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Expand:
		return "expand"
	case Reject:
		return "reject"
	case Stop:
		return "stop"
	}

	return "unknown"
}

// IsValidFunc reports whether a neighbour may be enqueued.
type IsValidFunc func(node int) bool

// VisitFunc inspects an accepted node at distance dist from the start.
type VisitFunc[T any] func(node, dist int) (T, Verdict)
