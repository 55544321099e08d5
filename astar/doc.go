// Package astar implements A* over graphs whose nodes are the integers
// 0..numNodes-1, tuned for many short searches without garbage.
//
// What
//
//   - Adapter: the graph contract (neighbours, edge cost, heuristic).
//   - Searcher.Search: one-shot A* with an iteration budget.
//   - Incremental: a resumable A* that spreads one search over several Step
//     calls, each bounded by an iteration budget, giving up after maxTries.
//
// How
//
//   - Binary min-heap keyed by f = g + h, reused across searches.
//   - Stamped g-score and closed arrays: an entry is valid only if its stamp
//     equals the current search's stamp, so nothing is cleared between calls.
//     When the stamp counter wraps, both stamp arrays are zeroed once.
//   - Lazy deletion: a node may sit in the heap several times; entries popped
//     after the node was closed are skipped.
//
// Admissibility
//
//	Heuristic must never overestimate the true remaining cost; Manhattan
//	distance over a uniform-cost 4-connected grid qualifies.
//
// Complexity (V visited nodes, E relaxed edges)
//
//   - Time:   O((V + E) log E)
//   - Memory: O(numNodes) scratch allocated in NewSearcher, plus a heap that
//     grows to the largest open set seen and is then reused.
//
// Failure
//
//	Search returns nil when the budget runs out or the open set empties
//	before the goal is reached. Search(start, start) returns [start].
//
// A Searcher is not safe for concurrent use.
package astar
