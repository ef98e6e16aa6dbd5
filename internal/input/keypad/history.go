package keypad

// HistorySize is the number of recent presses kept per controller.
const HistorySize = 16

// History records the most recent press signals of a controller, newest
// first. Unused slots hold None. Only presses are ever recorded; releases
// and no-signal events never touch the history.
type History struct {
	entries [HistorySize]Signal
}

// Push records a press at the front, shifting older entries back and
// dropping the oldest when full.
func (h *History) Push(sig Signal) {
	copy(h.entries[1:], h.entries[:HistorySize-1])
	h.entries[0] = sig
}

// At returns the entry at position i, 0 being the newest. Out-of-range
// positions return None.
func (h *History) At(i int) Signal {
	if i < 0 || i >= HistorySize {
		return None
	}
	return h.entries[i]
}

// Reset clears all entries.
func (h *History) Reset() {
	h.entries = [HistorySize]Signal{}
}

// Matches reports whether the most recent presses equal seq in
// chronological order: seq[0] is the oldest compared entry and the final
// element of seq is the newest press. Sequences longer than the history
// capacity never match. An empty sequence matches trivially.
func (h *History) Matches(seq []Signal) bool {
	if len(seq) > HistorySize {
		return false
	}
	for i, sig := range seq {
		if h.entries[len(seq)-1-i] != sig {
			return false
		}
	}
	return true
}
