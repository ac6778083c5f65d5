package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestResizeGrowZeroesNewTail(t *testing.T) {
	b := New(2)
	b.Samples()[0] = 1
	b.Samples()[1] = 2
	b.Resize(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if b.Samples()[2] != 0 || b.Samples()[3] != 0 {
		t.Fatal("Resize did not zero new elements")
	}
}

func TestResizeWithinCapacityPreservesData(t *testing.T) {
	b := New(4)
	b.Resize(2)
	b.Samples()[0] = 1
	b.Samples()[1] = 2
	b.Resize(3)
	if b.Samples()[0] != 1 || b.Samples()[1] != 2 {
		t.Fatal("Resize within capacity should preserve existing data")
	}
	if b.Samples()[2] != 0 {
		t.Fatal("Resize did not zero the re-exposed element")
	}
}

func TestResizeShrinkThenGrowZeroesStale(t *testing.T) {
	b := New(4)
	for i := range b.Samples() {
		b.Samples()[i] = float64(i + 1)
	}
	b.Resize(2)
	b.Resize(4)
	if b.Samples()[2] != 0 || b.Samples()[3] != 0 {
		t.Fatal("re-grown elements should be zeroed, not stale")
	}
}

func TestZero(t *testing.T) {
	b := New(3)
	for i := range b.Samples() {
		b.Samples()[i] = 7
	}
	b.Zero()
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}
