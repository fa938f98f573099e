package summary

import "github.com/threadlens/threadlens/pkg/event"

// RelevantFrame returns the frame most representative of where the thread
// was, for a human glancing at a thread list.
//
// Frames are ordered outermost-first, so the scan runs from the innermost
// end. Ranking: the innermost in-app frame wins; failing that, the innermost
// frame with any identifying attribute; failing that, the innermost frame.
// Total over any non-empty trace.
func RelevantFrame(st *event.Stacktrace) *event.Frame {
	frames := st.Frames

	var identified *event.Frame
	for i := len(frames) - 1; i >= 0; i-- {
		f := &frames[i]
		if f.InApp != nil && *f.InApp {
			return f
		}
		if identified == nil && identifiable(f) {
			identified = f
		}
	}
	if identified != nil {
		return identified
	}
	return &frames[len(frames)-1]
}

// identifiable reports whether the frame carries anything a label or
// filename could be derived from.
func identifiable(f *event.Frame) bool {
	return f.Function != nil || f.Package != nil || f.Module != nil || f.Filename != nil
}
