package summary

import (
	"sort"

	"github.com/threadlens/threadlens/pkg/event"
)

// DisplayOrder returns the threads of an event in list display order:
// crashed threads first, then the current thread, then ascending id.
// The input slice is not modified.
func DisplayOrder(threads []event.Thread) []event.Thread {
	ordered := make([]event.Thread, len(threads))
	copy(ordered, threads)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := &ordered[i], &ordered[j]
		if a.Crashed != b.Crashed {
			return a.Crashed
		}
		if a.Current != b.Current {
			return a.Current
		}
		return a.ID < b.ID
	})
	return ordered
}
