// Package bptree implements an in-memory B+ tree mapping fixed-width byte
// string keys to integer-valued records.
//
// The tree supports point insert, point lookup, point delete, full
// destruction, and level-order / leaf-chain diagnostic traversals. It is not
// safe for concurrent use; callers that need concurrent access must
// serialize their own calls (see SPEC_FULL.md §8).
package bptree

import "bytes"

// Order and key-length bounds, matching spec.md §6.
const (
	MinOrder         = 3
	MaxOrder         = 30
	DefaultOrder     = 4
	DefaultKeyLength = 4
)

// Config holds the construction-time parameters of a Tree. Order is the
// branching factor (children per internal node); KeyLength is the nominal
// key width callers reason about, before the tree adds one internal byte for
// the storage sentinel (see encodeInt and spec.md §3's key_length note).
type Config struct {
	Order     int
	KeyLength int
}

// Tree is an in-memory B+ tree. The zero value is not usable; construct one
// with New or NewDefault.
type Tree struct {
	root         *node
	order        int
	storageWidth int // KeyLength + 1, includes the trailing sentinel byte
	verbose      bool
	serial       uint64
}

// New constructs a Tree from cfg, clamping out-of-range parameters rather
// than rejecting them (spec.md §4.5, §7: InvalidConfig is never fatal).
func New(cfg Config) *Tree {
	order := cfg.Order
	if order < MinOrder {
		order = MinOrder
	}
	if order > MaxOrder {
		order = MaxOrder
	}

	keyLength := cfg.KeyLength
	if keyLength <= 0 {
		keyLength = DefaultKeyLength
	}

	return &Tree{
		order:        order,
		storageWidth: keyLength + 1,
	}
}

// NewDefault constructs a Tree with DefaultOrder and DefaultKeyLength.
func NewDefault() *Tree {
	return New(Config{Order: DefaultOrder, KeyLength: DefaultKeyLength})
}

// Order reports the tree's configured branching factor.
func (t *Tree) Order() int { return t.order }

// KeyLength reports the nominal key width the tree was configured with
// (excluding the internal sentinel byte).
func (t *Tree) KeyLength() int { return t.storageWidth - 1 }

// SetVerbose toggles the extra identity output PrintTree and PrintLeaves
// include (see diagnostics.go).
func (t *Tree) SetVerbose(v bool) { t.verbose = v }

// Verbose reports whether verbose diagnostic output is currently enabled.
func (t *Tree) Verbose() bool { return t.verbose }

// EncodeKey renders an integer key as the tree's fixed-width, sentinel
// terminated storage encoding — the external adapter spec.md §6 describes,
// exposed so callers (cmd/cli, internal/netproto) can build wire-ready keys
// without duplicating the padding convention.
func (t *Tree) EncodeKey(key int) []byte {
	return t.encodeInt(key)
}

// IsEmpty reports whether the tree currently holds no records.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// InsertKey inserts value under key, a pre-padded key_length-wide byte
// string. A duplicate key is a silent no-op (spec.md §7: DuplicateKey is
// non-fatal).
func (t *Tree) InsertKey(key []byte, value int) {
	k := cloneKey(key)

	if t.root == nil {
		leaf := t.newLeaf()
		leaf.keys[0] = k
		leaf.records[0] = &Record{Value: value, serial: t.nextRecordSerial()}
		leaf.numKeys = 1
		t.root = leaf
		return
	}

	leaf := t.findLeaf(k)
	for i := 0; i < leaf.numKeys; i++ {
		if bytes.Equal(leaf.keys[i], k) {
			return
		}
	}

	rec := &Record{Value: value, serial: t.nextRecordSerial()}
	if leaf.numKeys < t.order-1 {
		insertIntoLeaf(leaf, k, rec)
		return
	}
	t.splitLeafInsert(leaf, k, rec)
}

// InsertInt is InsertKey for an integer key, encoded via encodeInt.
func (t *Tree) InsertInt(key int, value int) {
	t.InsertKey(t.encodeInt(key), value)
}

// FindKey looks up key and reports whether it is present.
func (t *Tree) FindKey(key []byte) (*Record, bool) {
	leaf := t.findLeaf(key)
	if leaf == nil {
		return nil, false
	}
	for i := 0; i < leaf.numKeys; i++ {
		if bytes.Equal(leaf.keys[i], key) {
			return leaf.records[i], true
		}
	}
	return nil, false
}

// FindInt is FindKey for an integer key, encoded via encodeInt.
func (t *Tree) FindInt(key int) (*Record, bool) {
	return t.FindKey(t.encodeInt(key))
}

// DeleteKey removes key if present; it is a silent no-op otherwise
// (spec.md §7: NotFound is non-fatal).
func (t *Tree) DeleteKey(key []byte) {
	leaf := t.findLeaf(key)
	if leaf == nil {
		return
	}
	idx := -1
	for i := 0; i < leaf.numKeys; i++ {
		if bytes.Equal(leaf.keys[i], key) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	rec := leaf.records[idx]
	t.deleteEntry(leaf, leaf.keys[idx], nil, rec)
}

// DeleteInt is DeleteKey for an integer key, encoded via encodeInt.
func (t *Tree) DeleteInt(key int) {
	t.DeleteKey(t.encodeInt(key))
}

// Destroy drops the tree's root, releasing every node and record to the
// garbage collector. The tree is empty and reusable afterward.
func (t *Tree) Destroy() {
	t.root = nil
}
