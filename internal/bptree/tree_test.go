package bptree

import "testing"

func TestNewClampsOrder(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{in: 1, want: MinOrder},
		{in: 2, want: MinOrder},
		{in: MinOrder, want: MinOrder},
		{in: 4, want: 4},
		{in: MaxOrder, want: MaxOrder},
		{in: MaxOrder + 5, want: MaxOrder},
	}
	for _, c := range cases {
		tr := New(Config{Order: c.in, KeyLength: DefaultKeyLength})
		if got := tr.Order(); got != c.want {
			t.Errorf("Order=%d: got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNewClampsKeyLength(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultKeyLength},
		{in: -3, want: DefaultKeyLength},
		{in: 8, want: 8},
	}
	for _, c := range cases {
		tr := New(Config{Order: DefaultOrder, KeyLength: c.in})
		if got := tr.KeyLength(); got != c.want {
			t.Errorf("KeyLength=%d: got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNewDefault(t *testing.T) {
	tr := NewDefault()
	if tr.Order() != DefaultOrder {
		t.Errorf("Order = %d, want %d", tr.Order(), DefaultOrder)
	}
	if tr.KeyLength() != DefaultKeyLength {
		t.Errorf("KeyLength = %d, want %d", tr.KeyLength(), DefaultKeyLength)
	}
	if !tr.IsEmpty() {
		t.Error("new tree should be empty")
	}
}

func TestDestroyEmptiesAndIsReusable(t *testing.T) {
	tr := NewDefault()
	for i := 0; i < 50; i++ {
		tr.InsertInt(i, i*i)
	}
	if tr.IsEmpty() {
		t.Fatal("tree should not be empty after inserts")
	}
	tr.Destroy()
	if !tr.IsEmpty() {
		t.Fatal("tree should be empty after Destroy")
	}
	if _, ok := tr.FindInt(0); ok {
		t.Error("Destroy should drop all records")
	}
	tr.InsertInt(1, 1)
	if v, ok := tr.FindInt(1); !ok || v.Value != 1 {
		t.Error("tree should be usable after Destroy")
	}
}
