package tui

// History holds committed input lines and a browsing cursor over them. The
// cursor is either live (editing a fresh line) or browsing an entry; the enum
// is explicit rather than encoded in a sentinel index. While browsing, the
// line that was being edited is stashed and comes back on the way down past
// the newest entry.
type History struct {
	entries  []string
	browsing bool
	index    int // valid only while browsing
	stash    string
}

// Append records a committed line and returns the cursor to live.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
	h.browsing = false
	h.stash = ""
}

// Up moves toward older entries. From live it stashes the current line and
// selects the newest entry. At the oldest entry it stays put. The returned
// string is the entry to display; ok is false when there is nothing to show.
func (h *History) Up(live string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.browsing {
		h.stash = live
		h.browsing = true
		h.index = len(h.entries) - 1
		return h.entries[h.index], true
	}
	if h.index > 0 {
		h.index--
	}
	return h.entries[h.index], true
}

// Down moves toward newer entries. Past the newest it restores the stashed
// live line and returns the cursor to live. From live it does nothing.
func (h *History) Down() (string, bool) {
	if !h.browsing {
		return "", false
	}
	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], true
	}
	h.browsing = false
	s := h.stash
	h.stash = ""
	return s, true
}

// PageUp moves up to n entries toward the oldest.
func (h *History) PageUp(live string, n int) (string, bool) {
	s, ok := "", false
	for i := 0; i < n; i++ {
		t, moved := h.Up(live)
		if !moved {
			break
		}
		s, ok = t, true
	}
	return s, ok
}

// PageDown moves up to n entries toward the newest, restoring the stash if
// it runs past the end.
func (h *History) PageDown(n int) (string, bool) {
	s, ok := "", false
	for i := 0; i < n; i++ {
		t, moved := h.Down()
		if !moved {
			break
		}
		s, ok = t, true
	}
	return s, ok
}

// Clear drops all entries and returns the cursor to live.
func (h *History) Clear() {
	h.entries = nil
	h.browsing = false
	h.stash = ""
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Browsing reports whether the cursor is on a history entry rather than the
// live line.
func (h *History) Browsing() bool {
	return h.browsing
}
