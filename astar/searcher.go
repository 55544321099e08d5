package astar

// Searcher holds reusable A* scratch state for up to numNodes nodes.
type Searcher struct {
	stamp    uint32
	cur      uint32
	closed   []uint32
	gStamp   []uint32
	g        []float64
	cameFrom []int32
	open     minHeap
	nbuf     []int
}

// outcome of one bounded run of the main loop
type outcome uint8

const (
	reached outcome = iota
	drained
	exhausted
)

// NewSearcher allocates scratch state for graphs of at most numNodes nodes.
func NewSearcher(numNodes int) *Searcher {
	numNodes = max(numNodes, 0)

	return &Searcher{
		stamp:    1,
		closed:   make([]uint32, numNodes),
		gStamp:   make([]uint32, numNodes),
		g:        make([]float64, numNodes),
		cameFrom: make([]int32, numNodes),
		open:     make(minHeap, 0, 64),
		nbuf:     make([]int, 0, 8),
	}
}

// Len returns the node capacity.
func (s *Searcher) Len() int { return len(s.closed) }

// Search returns the node path from start to goal, both included, or nil if
// goal is not reached within maxIterations heap pops.
func (s *Searcher) Search(start, goal int, a Adapter, maxIterations int) []int {
	if !s.valid(start) || !s.valid(goal) {
		return nil
	}
	s.begin(start, goal, a)
	if s.run(goal, a, maxIterations) != reached {
		return nil
	}

	return s.reconstruct(start, goal)
}

func (s *Searcher) valid(n int) bool { return n >= 0 && n < len(s.closed) }

// nextStamp returns the stamp of a new search, zeroing the stamp arrays on
// wrap-around.
func (s *Searcher) nextStamp() uint32 {
	stamp := s.stamp
	s.stamp++
	if s.stamp == 0 {
		clear(s.closed)
		clear(s.gStamp)
		s.stamp = 1
	}

	return stamp
}

// begin resets the open set and seeds it with start.
func (s *Searcher) begin(start, goal int, a Adapter) {
	s.cur = s.nextStamp()
	s.open = s.open[:0]
	s.g[start] = 0
	s.gStamp[start] = s.cur
	s.cameFrom[start] = -1
	s.open.push(int32(start), a.Heuristic(start, goal))
}

// run pops at most budget nodes from the open set.
func (s *Searcher) run(goal int, a Adapter, budget int) outcome {
	stamp := s.cur
	for iterations := 0; len(s.open) > 0; iterations++ {
		if iterations >= budget {
			return exhausted
		}
		current := int(s.open.pop())
		if s.closed[current] == stamp {
			continue
		}
		s.closed[current] = stamp
		if current == goal {
			return reached
		}

		s.nbuf = a.Neighbors(current, s.nbuf[:0])
		gCur := s.g[current]
		for _, nb := range s.nbuf {
			if s.closed[nb] == stamp {
				continue
			}
			tentative := gCur + a.Cost(current, nb)
			if s.gStamp[nb] != stamp || tentative < s.g[nb] {
				s.cameFrom[nb] = int32(current)
				s.g[nb] = tentative
				s.gStamp[nb] = stamp
				s.open.push(int32(nb), tentative+a.Heuristic(nb, goal))
			}
		}
	}

	return drained
}

// reconstruct walks cameFrom back from goal.
func (s *Searcher) reconstruct(start, goal int) []int {
	n := 1
	for cur := goal; cur != start; n++ {
		cur = int(s.cameFrom[cur])
		if cur < 0 {
			return []int{}
		}
	}
	path := make([]int, n)
	for i, cur := n-1, goal; i >= 0; i-- {
		path[i] = cur
		if i > 0 {
			cur = int(s.cameFrom[cur])
		}
	}

	return path
}
