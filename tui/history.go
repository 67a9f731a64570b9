// Package tui provides a Bubble Tea terminal UI for the Wick engine.
package tui

// inputHistory holds recent player commands for up/down recall.
type inputHistory struct {
	entries []string
	max     int
	cursor  int // -1 means not navigating
}

func newInputHistory(max int) *inputHistory {
	return &inputHistory{max: max, cursor: -1}
}

// Add records a command. Repeats of the most recent entry are dropped.
func (h *inputHistory) Add(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// Older moves the cursor toward older entries and returns the entry there.
func (h *inputHistory) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Newer moves the cursor toward newer entries. Past the newest entry it
// returns ("", false) and leaves navigation.
func (h *inputHistory) Newer() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// Reset leaves navigation mode.
func (h *inputHistory) Reset() {
	h.cursor = -1
}
