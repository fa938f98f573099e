package summary

import (
	"testing"

	"github.com/threadlens/threadlens/pkg/event"
)

func TestDisplayOrder(t *testing.T) {
	threads := []event.Thread{
		{ID: 3},
		{ID: 2, Current: true},
		{ID: 9, Crashed: true},
		{ID: 1},
	}

	ordered := DisplayOrder(threads)

	wantIDs := []int64{9, 2, 1, 3}
	if len(ordered) != len(wantIDs) {
		t.Fatalf("DisplayOrder() returned %d threads, want %d", len(ordered), len(wantIDs))
	}
	for i, want := range wantIDs {
		if ordered[i].ID != want {
			t.Errorf("ordered[%d].ID = %d, want %d", i, ordered[i].ID, want)
		}
	}

	// The input order is preserved.
	if threads[0].ID != 3 {
		t.Error("DisplayOrder() modified its input")
	}
}

func TestDisplayOrder_Empty(t *testing.T) {
	if got := DisplayOrder(nil); len(got) != 0 {
		t.Errorf("DisplayOrder(nil) = %v, want empty", got)
	}
}
