package astar

// entry is one open-set record. f is captured at push time.
type entry struct {
	node int32
	f    float64
}

// minHeap is a binary min-heap over entries keyed by f.
type minHeap []entry

func (h *minHeap) push(node int32, f float64) {
	*h = append(*h, entry{node: node, f: f})
	a := *h
	i := len(a) - 1
	for i > 0 {
		parent := (i - 1) >> 1
		if a[parent].f <= a[i].f {
			break
		}
		a[parent], a[i] = a[i], a[parent]
		i = parent
	}
}

func (h *minHeap) pop() int32 {
	a := *h
	top := a[0].node
	last := len(a) - 1
	a[0] = a[last]
	a = a[:last]
	*h = a

	i := 0
	for {
		left := i<<1 + 1
		right := left + 1
		smallest := i
		if left < last && a[left].f < a[smallest].f {
			smallest = left
		}
		if right < last && a[right].f < a[smallest].f {
			smallest = right
		}
		if smallest == i {
			break
		}
		a[smallest], a[i] = a[i], a[smallest]
		i = smallest
	}

	return top
}
