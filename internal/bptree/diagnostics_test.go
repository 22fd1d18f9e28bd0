package bptree

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeightGrowsWithInserts(t *testing.T) {
	tr := New(Config{Order: 3, KeyLength: DefaultKeyLength})
	if tr.Height() != 0 {
		t.Errorf("empty tree height = %d, want 0", tr.Height())
	}
	tr.InsertInt(1, 1)
	if tr.Height() != 0 {
		t.Errorf("single-leaf tree height = %d, want 0", tr.Height())
	}
	for i := 2; i <= 20; i++ {
		tr.InsertInt(i, i)
	}
	if h := tr.Height(); h == 0 {
		t.Error("expected height > 0 after enough inserts to split the root")
	}
}

func TestPrintLeavesEmptyTree(t *testing.T) {
	tr := NewDefault()
	var buf bytes.Buffer
	tr.PrintLeaves(&buf)
	if buf.Len() != 0 {
		t.Errorf("PrintLeaves on empty tree wrote %q, want nothing", buf.String())
	}
}

func TestPrintTreeEmptyTree(t *testing.T) {
	tr := NewDefault()
	var buf bytes.Buffer
	tr.PrintTree(&buf)
	if !strings.Contains(buf.String(), "empty") {
		t.Errorf("PrintTree on empty tree = %q, want an empty-tree notice", buf.String())
	}
}

func TestFindAndPrint(t *testing.T) {
	tr := NewDefault()
	tr.InsertInt(5, 55)

	var buf bytes.Buffer
	tr.FindAndPrintInt(&buf, 5)
	if !strings.Contains(buf.String(), "55") {
		t.Errorf("FindAndPrint found key output = %q, want it to mention the value", buf.String())
	}

	buf.Reset()
	tr.FindAndPrintInt(&buf, 6)
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("FindAndPrint missing key output = %q, want a not-found notice", buf.String())
	}
}

func TestVerboseOutputIncludesIdentity(t *testing.T) {
	tr := New(Config{Order: 3, KeyLength: DefaultKeyLength})
	for i := 0; i < 10; i++ {
		tr.InsertInt(i, i)
	}
	tr.SetVerbose(true)

	var leaves, tree bytes.Buffer
	tr.PrintLeaves(&leaves)
	tr.PrintTree(&tree)

	if !strings.Contains(leaves.String(), "leaf#") {
		t.Error("verbose PrintLeaves should include node identity markers")
	}
	if !strings.Contains(tree.String(), "node#") {
		t.Error("verbose PrintTree should include node identity markers")
	}
}

func TestVerboseIdentityIsDeterministic(t *testing.T) {
	tr1 := New(Config{Order: 4, KeyLength: DefaultKeyLength})
	tr2 := New(Config{Order: 4, KeyLength: DefaultKeyLength})
	for i := 0; i < 30; i++ {
		tr1.InsertInt(i, i)
		tr2.InsertInt(i, i)
	}
	tr1.SetVerbose(true)
	tr2.SetVerbose(true)

	var b1, b2 bytes.Buffer
	tr1.PrintTree(&b1)
	tr2.PrintTree(&b2)
	if b1.String() != b2.String() {
		t.Error("identical insert sequences should produce identical verbose traces")
	}
}
