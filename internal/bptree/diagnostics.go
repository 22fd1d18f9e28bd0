package bptree

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// identity renders a deterministic, reproducible stand-in for the node
// pointer original_source prints in verbose mode. A raw Go pointer is not a
// useful diagnostic (spec.md §9 says the printed identity "need not be
// bit-reproduced"), so this hashes the node's monotonic creation serial
// instead: stable across runs, distinct per node, good enough to tell two
// nodes apart in a trace without promising anything about memory layout.
func (n *node) identity() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n.serial)
	return xxhash.Sum64(buf[:])
}

// Height reports the number of edges from the root to a leaf (0 for an
// empty tree or a tree with only a root leaf), walking the leftmost path as
// original_source's height() does.
func (t *Tree) Height() int {
	h := 0
	n := t.root
	for n != nil && !n.isLeaf {
		n = n.children[0]
		h++
	}
	return h
}

// PrintLeaves writes the leaf chain, in order, one line of "key:value"
// pairs separated by " | " per leaf, to w. An empty tree prints nothing.
func (t *Tree) PrintLeaves(w io.Writer) {
	if t.root == nil {
		return
	}
	n := t.root
	for !n.isLeaf {
		n = n.children[0]
	}
	for n != nil {
		for i := 0; i < n.numKeys; i++ {
			if i > 0 {
				fmt.Fprint(w, " | ")
			}
			fmt.Fprintf(w, "%s:%d", keyString(n.keys[i]), n.records[i].Value)
		}
		if t.verbose {
			fmt.Fprintf(w, " (leaf#%d)", n.identity())
		}
		fmt.Fprintln(w)
		n = n.next
	}
}

// PrintTree writes the tree level by level, one line per level, to w —
// a level-order traversal grounded on original_source's print_tree, which
// threads a FIFO queue through the node's otherwise-unused sibling link; Go
// lets this just be a slice-backed queue instead.
func (t *Tree) PrintTree(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "(empty tree)")
		return
	}

	queue := []*node{t.root}
	currentRank := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		rank := t.nodeRank(n)
		if rank > currentRank {
			currentRank = rank
			fmt.Fprintln(w)
		}

		for i := 0; i < n.numKeys; i++ {
			fmt.Fprintf(w, "%s ", keyString(n.keys[i]))
		}
		if t.verbose {
			fmt.Fprintf(w, "(node#%d) ", n.identity())
		}
		fmt.Fprint(w, "| ")

		if !n.isLeaf {
			for i := 0; i <= n.numKeys; i++ {
				queue = append(queue, n.children[i])
			}
		}
	}
	fmt.Fprintln(w)
}

// nodeRank walks n's parent chain to the root, counting edges, so PrintTree
// can tell when the BFS frontier has advanced a level.
func (t *Tree) nodeRank(n *node) int {
	r := 0
	for n.parent != nil {
		n = n.parent
		r++
	}
	return r
}

// FindAndPrint writes the result of looking up key to w: the record's value
// if found, or a not-found notice otherwise.
func (t *Tree) FindAndPrint(w io.Writer, key []byte) {
	rec, ok := t.FindKey(key)
	if !ok {
		fmt.Fprintf(w, "Key %s not found.\n", keyString(key))
		return
	}
	fmt.Fprintf(w, "Key %s, value %d found.\n", keyString(key), rec.Value)
}

// FindAndPrintInt is FindAndPrint for an integer key.
func (t *Tree) FindAndPrintInt(w io.Writer, key int) {
	t.FindAndPrint(w, t.encodeInt(key))
}

// keyString renders a stored key buffer for display, trimming the trailing
// sentinel byte and any padding introduced by encodeInt so printed output
// reads like the caller's original decimal key rather than a fixed-width
// buffer dump.
func keyString(k []byte) string {
	end := len(k)
	for end > 0 && k[end-1] == 0 {
		end--
	}
	trimmed := k[:end]
	start := 0
	for start < len(trimmed)-1 && trimmed[start] == '0' {
		start++
	}
	s := string(trimmed[start:])
	if s == "" {
		return "0"
	}
	if _, err := strconv.Atoi(s); err == nil {
		return s
	}
	return s
}
