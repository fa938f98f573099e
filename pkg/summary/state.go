package summary

import "strings"

// Canonical display states for a thread.
const (
	StateRunnable     = "Runnable"
	StateTimedWaiting = "Timed waiting"
	StateBlocked      = "Blocked"
	StateWaiting      = "Waiting"
	StateNew          = "New"
	StateTerminated   = "Terminated"
)

// stateAliases maps uppercased platform state strings to canonical display
// states. Covers the JVM thread states plus the common Apple/NDK spellings.
var stateAliases = map[string]string{
	"RUNNABLE":      StateRunnable,
	"RUNNING":       StateRunnable,
	"TIMED_WAITING": StateTimedWaiting,
	"TIMED WAITING": StateTimedWaiting,
	"SLEEPING":      StateTimedWaiting,
	"BLOCKED":       StateBlocked,
	"WAITING":       StateWaiting,
	"PARKED":        StateWaiting,
	"NEW":           StateNew,
	"TERMINATED":    StateTerminated,
	"STOPPED":       StateTerminated,
	"DEAD":          StateTerminated,
}

// DisplayState normalizes a raw platform thread state to one of the
// canonical display states. Unrecognized states pass through unchanged.
func DisplayState(raw string) string {
	if mapped, ok := stateAliases[strings.ToUpper(raw)]; ok {
		return mapped
	}
	return raw
}
