package dynarray

import (
	"errors"
	"testing"

	"github.com/pavanmanishd/linear"
)

func TestNew(t *testing.T) {
	a := New[int]()
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
	if a.Cap() != DefaultCapacity {
		t.Errorf("Cap = %d, want %d", a.Cap(), DefaultCapacity)
	}
	if !a.Empty() {
		t.Error("new array not empty")
	}
}

func TestNewWithCapacity(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"explicit capacity", 32, 32},
		{"zero capacity", 0, 0},
		{"negative capacity", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewWithCapacity[string](tt.n)
			if a.Cap() != tt.want {
				t.Errorf("Cap = %d, want %d", a.Cap(), tt.want)
			}
			if a.Len() != 0 {
				t.Errorf("Len = %d, want 0", a.Len())
			}
		})
	}
}

func TestOf(t *testing.T) {
	a := Of(3, 1, 4, 1, 5)
	if a.Len() != 5 {
		t.Fatalf("Len = %d, want 5", a.Len())
	}
	if a.Cap() != 5 {
		t.Errorf("Cap = %d, want 5", a.Cap())
	}
	for i, want := range []int{3, 1, 4, 1, 5} {
		if got := *a.Index(i); got != want {
			t.Errorf("element %d = %d, want %d", i, got, want)
		}
	}
}

func TestZeroValueUsable(t *testing.T) {
	var a Array[int]
	if err := a.Push(7); err != nil {
		t.Fatalf("Push on zero value error: %v", err)
	}
	if a.Len() != 1 || a.Cap() != DefaultCapacity {
		t.Errorf("Len, Cap = %d, %d; want 1, %d", a.Len(), a.Cap(), DefaultCapacity)
	}
}

func TestReserve(t *testing.T) {
	a := New[int]()
	for i := 0; i < 4; i++ {
		a.Push(i)
	}

	if err := a.Reserve(100); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if a.Cap() != 100 {
		t.Errorf("Cap = %d, want 100", a.Cap())
	}
	if a.Len() != 4 {
		t.Errorf("Len = %d, want 4", a.Len())
	}
	for i := 0; i < 4; i++ {
		if *a.Index(i) != i {
			t.Errorf("element %d lost by Reserve: %d", i, *a.Index(i))
		}
	}

	// Reserving at or below the current capacity is a no-op.
	if err := a.Reserve(10); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if a.Cap() != 100 {
		t.Errorf("Cap after smaller Reserve = %d, want 100", a.Cap())
	}
}

// The growth policy: 0 -> DefaultCapacity, then floor(cap*1.5)+1.
func TestGrowthPolicy(t *testing.T) {
	a := New[int]()
	for i := 0; i < 9; i++ {
		if err := a.Push(i); err != nil {
			t.Fatalf("Push(%d) error: %v", i, err)
		}
	}
	if a.Len() != 9 {
		t.Errorf("Len = %d, want 9", a.Len())
	}
	if a.Cap() != 13 {
		t.Errorf("Cap after growing past 8 = %d, want 13", a.Cap())
	}
}

func TestGrowthFromZeroCapacity(t *testing.T) {
	a := NewWithCapacity[int](0)
	if err := a.Push(1); err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if a.Cap() != DefaultCapacity {
		t.Errorf("Cap = %d, want %d", a.Cap(), DefaultCapacity)
	}
}

// Capacity never decreases except through ShrinkToFit.
func TestCapacityMonotonic(t *testing.T) {
	a := New[int]()
	prevCap := a.Cap()
	for i := 0; i < 100; i++ {
		a.Push(i)
		if a.Cap() < prevCap {
			t.Fatalf("capacity shrank from %d to %d during Push", prevCap, a.Cap())
		}
		prevCap = a.Cap()
	}
	for i := 0; i < 50; i++ {
		a.Pop()
		if a.Cap() != prevCap {
			t.Fatalf("Pop changed capacity: %d -> %d", prevCap, a.Cap())
		}
	}
}

func TestPushFailureLeavesArrayUnchanged(t *testing.T) {
	arena := linear.NewArena(make([]byte, 64))
	a, err := NewInArenaCapacity[int64](arena, 4, false)
	if err != nil {
		t.Fatalf("NewInArenaCapacity error: %v", err)
	}
	// A later allocation rules out in-place growth of the array's storage.
	if _, err := linear.AllocSlice[byte](arena, 8); err != nil {
		t.Fatalf("AllocSlice error: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := a.Push(int64(i)); err != nil {
			t.Fatalf("Push(%d) error: %v", i, err)
		}
	}

	// Growing to 7 slots needs a fresh 56-byte region; the arena is spent.
	err = a.Push(99)
	if !errors.Is(err, linear.ErrOutOfMemory) {
		t.Fatalf("Push error = %v, want linear.ErrOutOfMemory", err)
	}
	if a.Len() != 4 || a.Cap() != 4 {
		t.Errorf("failed Push changed the array: Len=%d Cap=%d, want 4, 4", a.Len(), a.Cap())
	}
	for i := 0; i < 4; i++ {
		if *a.Index(i) != int64(i) {
			t.Errorf("element %d corrupted: %d", i, *a.Index(i))
		}
	}
}
