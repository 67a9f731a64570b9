package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mseward/wick/engine/scope"
)

// renderStatusBar produces a full-width inverted status line showing
// current location, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	w := m.engine.World()
	loc := w.PlayerLocation()

	locName := w.Name(loc)
	if !scope.IsLit(w, loc) {
		locName = "Darkness"
	}

	dirs := make([]string, 0, 4)
	for dir := range w.Exits(loc) {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	exitStr := strings.Join(dirs, ",")

	carried := w.Carried()

	left := fmt.Sprintf(" %s | Exits: %s", locName, exitStr)
	right := fmt.Sprintf("T:%d ", w.Turn)

	// Show inventory items if they fit, otherwise just count.
	if len(carried) > 0 {
		names := make([]string, 0, len(carried))
		for _, id := range carried {
			names = append(names, w.Name(id))
		}
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), w.Turn)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(carried), w.Turn)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
