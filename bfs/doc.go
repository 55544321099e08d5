// Package bfs provides an allocation-free breadth-first search over a
// 4-connected W×H grid of integer node ids (id = y*W + x).
//
// What
//
//   - Searcher owns fixed-size scratch arrays (visited stamps, distances, a
//     queue) sized once for the largest grid it will serve.
//   - Search explores nodes in non-decreasing distance from start and hands
//     every accepted node to a visitor that decides the fate of the search:
//   - Expand: accept the node and enqueue its valid neighbours.
//   - Reject: keep the node visited but do not expand it.
//   - Stop:   end the search and return the visitor's value.
//
// Why
//
//	Gateway lookup and gateway-to-gateway distance discovery run thousands of
//	short searches. Folding "is this the answer" and "may I pass through
//	here" into one callback avoids a second filtering pass, and the stamp
//	arrays avoid clearing or reallocating state between calls.
//
// Stamps
//
//	Each search takes a fresh generation number. A node counts as visited
//	iff visited[node] equals the current stamp, so nothing is cleared between
//	searches. When the counter wraps, the visited array is zeroed once.
//
// Determinism
//
//	Neighbours are enqueued North, South, West, East, so the visit order is
//	fully reproducible.
//
// Complexity (N = nodes reached)
//
//   - Time:   O(N)
//   - Memory: O(numNodes), allocated once in NewSearcher.
//
// Usage
//
//	s := bfs.NewSearcher(w * h)
//	tile, ok := bfs.Search(s, w, h, start, 64,
//	    func(n int) bool { return isWater(n) },
//	    func(n, d int) (int, bfs.Verdict) {
//	        if isGateway(n) {
//	            return n, bfs.Stop
//	        }
//	        return 0, bfs.Expand
//	    })
//
// A Searcher is not safe for concurrent use.
package bfs
