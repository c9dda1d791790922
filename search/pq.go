package search

// entry is one frontier element. seq is the strictly increasing insertion
// index assigned at push time; it breaks score ties FIFO so traversal
// order among equal-score cells is deterministic. g records the cell's
// g at enqueue time: a popped entry whose g no longer matches the cell's
// live value has been superseded by a later improvement and is discarded.
type entry struct {
	idx   int // row-major cell index
	score int
	g     int
	seq   uint64
}

// frontier is a min-heap of entries ordered by (score, seq) ascending.
// It follows the lazy-decrease-key pattern: improvements push fresh
// entries rather than re-keying existing ones.
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by score, then by insertion sequence for stable FIFO ties.
func (f frontier) Less(i, j int) bool {
	if f[i].score != f[j].score {
		return f[i].score < f[j].score
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
