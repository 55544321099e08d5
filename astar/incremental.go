package astar

// Incremental is a resumable A* search. Each Step pops at most iterations
// nodes; after maxTries Steps without reaching the goal it reports NotFound.
//
// It borrows the scratch state of a Searcher. Running any other search on
// that Searcher between Steps restarts this one from scratch.
type Incremental struct {
	s          *Searcher
	a          Adapter
	start      int
	goal       int
	iterations int
	maxTries   int
	tries      int
	stamp      uint32
	status     Status
	path       []int
}

// NewIncremental prepares a search from start to goal on s. Nothing runs until
// the first Step.
func NewIncremental(s *Searcher, start, goal int, a Adapter, iterations, maxTries int) *Incremental {
	in := &Incremental{
		s:          s,
		a:          a,
		start:      start,
		goal:       goal,
		iterations: max(iterations, 1),
		maxTries:   max(maxTries, 1),
		status:     Pending,
	}
	if !s.valid(start) || !s.valid(goal) {
		in.status = NotFound
		return in
	}
	s.begin(start, goal, a)
	in.stamp = s.cur

	return in
}

// Step advances the search and returns its status. Once Completed or
// NotFound the status no longer changes.
func (in *Incremental) Step() Status {
	if in.status != Pending {
		return in.status
	}
	if in.s.cur != in.stamp {
		in.s.begin(in.start, in.goal, in.a)
		in.stamp = in.s.cur
	}

	in.tries++
	switch in.s.run(in.goal, in.a, in.iterations) {
	case reached:
		in.status = Completed
		in.path = in.s.reconstruct(in.start, in.goal)
	case drained:
		in.status = NotFound
	case exhausted:
		if in.tries >= in.maxTries {
			in.status = NotFound
		}
	}

	return in.status
}

// Status returns the last status without advancing.
func (in *Incremental) Status() Status { return in.status }

// Tries returns the number of Steps that ran the search.
func (in *Incremental) Tries() int { return in.tries }

// Path returns the node path once Completed, nil otherwise.
func (in *Incremental) Path() []int {
	if in.status != Completed {
		return nil
	}

	return in.path
}
