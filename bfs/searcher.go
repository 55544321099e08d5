package bfs

// Searcher holds reusable BFS scratch state for up to numNodes nodes.
type Searcher struct {
	stamp   uint32
	visited []uint32
	dist    []int32
	queue   []int32
}

// NewSearcher allocates scratch state for grids of at most numNodes nodes.
func NewSearcher(numNodes int) *Searcher {
	numNodes = max(numNodes, 0)

	return &Searcher{
		stamp:   1,
		visited: make([]uint32, numNodes),
		dist:    make([]int32, numNodes),
		queue:   make([]int32, numNodes),
	}
}

// Len returns the node capacity.
func (s *Searcher) Len() int { return len(s.visited) }

// nextStamp returns the stamp of a new search, zeroing visited on wrap-around.
func (s *Searcher) nextStamp() uint32 {
	stamp := s.stamp
	s.stamp++
	if s.stamp == 0 {
		clear(s.visited)
		s.stamp = 1
	}

	return stamp
}

// Search runs a BFS from start over a width×height grid.
//
// Nodes whose distance exceeds maxDistance are dequeued but neither visited
// nor expanded. isValid filters neighbours before they are enqueued; start
// itself is never filtered. The search returns (value, true) when visit
// answers Stop and (zero, false) when the queue empties.
//
// Preconditions: width*height <= s.Len() and 0 <= start < width*height.
func Search[T any](s *Searcher, width, height, start, maxDistance int, isValid IsValidFunc, visit VisitFunc[T]) (T, bool) {
	var zero T
	if start < 0 || start >= width*height || width*height > len(s.visited) {
		return zero, false
	}

	stamp := s.nextStamp()
	lastRowStart := (height - 1) * width
	visited, dist, queue := s.visited, s.dist, s.queue

	head, tail := 0, 0
	visited[start] = stamp
	dist[start] = 0
	queue[tail] = int32(start)
	tail++

	enqueue := func(n int, d int32) {
		if visited[n] != stamp && isValid(n) {
			visited[n] = stamp
			dist[n] = d
			queue[tail] = int32(n)
			tail++
		}
	}

	for head < tail {
		node := int(queue[head])
		head++
		d := dist[node]
		if int(d) > maxDistance {
			continue
		}

		value, verdict := visit(node, int(d))
		switch verdict {
		case Stop:
			return value, true
		case Reject:
			continue
		}

		next := d + 1
		if node >= width {
			enqueue(node-width, next) // north
		}
		if node < lastRowStart {
			enqueue(node+width, next) // south
		}
		x := node % width
		if x != 0 {
			enqueue(node-1, next) // west
		}
		if x != width-1 {
			enqueue(node+1, next) // east
		}
	}

	return zero, false
}
