package bptree

import "testing"

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	tr := NewDefault()
	tr.InsertInt(1, 1)
	tr.DeleteInt(999)
	if _, ok := tr.FindInt(1); !ok {
		t.Error("deleting a missing key should not disturb existing entries")
	}
}

func TestDeleteSingleLeafEmptiesTree(t *testing.T) {
	tr := NewDefault()
	tr.InsertInt(1, 1)
	tr.DeleteInt(1)
	if !tr.IsEmpty() {
		t.Error("deleting the only key should empty the tree")
	}
	if _, ok := tr.FindInt(1); ok {
		t.Error("deleted key should not be found")
	}
}

func TestInsertDeleteAllInOrder(t *testing.T) {
	tr := New(Config{Order: 4, KeyLength: DefaultKeyLength})
	const n = 100
	for i := 0; i < n; i++ {
		tr.InsertInt(i, i)
	}
	for i := 0; i < n; i++ {
		tr.DeleteInt(i)
		if _, ok := tr.FindInt(i); ok {
			t.Fatalf("key %d still found after delete", i)
		}
		for j := i + 1; j < n; j++ {
			if _, ok := tr.FindInt(j); !ok {
				t.Fatalf("key %d missing after deleting %d", j, i)
			}
		}
	}
	if !tr.IsEmpty() {
		t.Error("tree should be empty after deleting every key")
	}
}

func TestInsertDeleteReverseOrderTriggersCoalesce(t *testing.T) {
	tr := New(Config{Order: 3, KeyLength: DefaultKeyLength})
	const n = 60
	for i := 0; i < n; i++ {
		tr.InsertInt(i, i*2)
	}
	for i := n - 1; i >= 0; i-- {
		tr.DeleteInt(i)
		for j := 0; j < i; j++ {
			if rec, ok := tr.FindInt(j); !ok || rec.Value != j*2 {
				t.Fatalf("key %d corrupted after deleting down to %d", j, i)
			}
		}
	}
	if !tr.IsEmpty() {
		t.Error("tree should be empty after deleting every key")
	}
}

func TestInsertDeleteRandomOrderSurvivesMixedWorkload(t *testing.T) {
	tr := New(Config{Order: 5, KeyLength: DefaultKeyLength})
	insertOrder := []int{5, 1, 9, 3, 7, 0, 8, 2, 6, 4, 15, 11, 13, 10, 14, 12}
	for _, k := range insertOrder {
		tr.InsertInt(k, k+1000)
	}

	deleteOrder := []int{1, 9, 0, 14, 5, 11}
	deleted := map[int]bool{}
	for _, k := range deleteOrder {
		tr.DeleteInt(k)
		deleted[k] = true
	}

	for _, k := range insertOrder {
		rec, ok := tr.FindInt(k)
		if deleted[k] {
			if ok {
				t.Errorf("key %d should have been deleted", k)
			}
			continue
		}
		if !ok {
			t.Errorf("key %d should still be present", k)
			continue
		}
		if rec.Value != k+1000 {
			t.Errorf("key %d: value = %d, want %d", k, rec.Value, k+1000)
		}
	}
}

func TestDeleteThenReinsertSameKey(t *testing.T) {
	tr := NewDefault()
	tr.InsertInt(3, 1)
	tr.DeleteInt(3)
	tr.InsertInt(3, 2)
	rec, ok := tr.FindInt(3)
	if !ok || rec.Value != 2 {
		t.Error("key should be re-insertable with a new value after deletion")
	}
}
