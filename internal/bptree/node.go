package bptree

// Record is the value-carrying cell a leaf slot points to. A record is owned
// by exactly one leaf slot at a time; it moves between leaves during splits,
// coalesces, and redistribution but is never duplicated.
type Record struct {
	Value  int
	serial uint64
}

// node is the shared shape for both leaf and internal nodes: a node holds up
// to order-1 keys plus either order child links (internal) or order-1
// records and a sibling link (leaf). Using one struct for both roles, rather
// than a tagged Internal/Leaf pair, mirrors the fused node layout spec.md §9
// sanctions as an implementation alternative.
type node struct {
	isLeaf   bool
	numKeys  int
	keys     [][]byte
	children []*node   // internal only, len == order
	records  []*Record // leaf only, len == order-1
	next     *node     // leaf only: sibling chain link
	parent   *node
	serial   uint64 // stable per-node identity for verbose diagnostics
}

func (t *Tree) newLeaf() *node {
	t.serial++
	return &node{
		isLeaf:  true,
		keys:    make([][]byte, t.order-1),
		records: make([]*Record, t.order-1),
		serial:  t.serial,
	}
}

func (t *Tree) newInternal() *node {
	t.serial++
	return &node{
		keys:     make([][]byte, t.order-1),
		children: make([]*node, t.order),
		serial:   t.serial,
	}
}

func (t *Tree) nextRecordSerial() uint64 {
	t.serial++
	return t.serial
}

// cloneKey returns a fresh, independently-owned copy of k. Keys copied into
// the tree from a caller, or copied between levels as separators, go through
// this; keys shifted between slots during splits, merges and borrows are
// moved rather than copied. Either way no two live node slots alias the same
// backing array — see SPEC_FULL.md §8.
func cloneKey(k []byte) []byte {
	c := make([]byte, len(k))
	copy(c, k)
	return c
}
