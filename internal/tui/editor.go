package tui

// Editor is a single-line editor over a rune buffer. The cursor sits between
// runes, so it ranges from 0 to len(buffer) inclusive.
type Editor struct {
	buf []rune
	cur int
}

// Insert places r at the cursor and advances past it.
func (e *Editor) Insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cur+1:], e.buf[e.cur:])
	e.buf[e.cur] = r
	e.cur++
}

// InsertString inserts each rune of s at the cursor.
func (e *Editor) InsertString(s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

// Backspace removes the rune before the cursor. At the start of the buffer
// it does nothing.
func (e *Editor) Backspace() {
	if e.cur == 0 {
		return
	}
	e.buf = append(e.buf[:e.cur-1], e.buf[e.cur:]...)
	e.cur--
}

// Delete removes the rune under the cursor. At the end of the buffer it does
// nothing.
func (e *Editor) Delete() {
	if e.cur == len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cur], e.buf[e.cur+1:]...)
}

// Left moves the cursor one rune toward the start, clamping at 0.
func (e *Editor) Left() {
	if e.cur > 0 {
		e.cur--
	}
}

// Right moves the cursor one rune toward the end, clamping at the end.
func (e *Editor) Right() {
	if e.cur < len(e.buf) {
		e.cur++
	}
}

// Home moves the cursor to the start of the buffer.
func (e *Editor) Home() {
	e.cur = 0
}

// End moves the cursor past the last rune.
func (e *Editor) End() {
	e.cur = len(e.buf)
}

// Set replaces the buffer with s and puts the cursor at the end.
func (e *Editor) Set(s string) {
	e.buf = append(e.buf[:0], []rune(s)...)
	e.cur = len(e.buf)
}

// Clear empties the buffer and resets the cursor.
func (e *Editor) Clear() {
	e.buf = e.buf[:0]
	e.cur = 0
}

// String returns the buffer contents.
func (e *Editor) String() string {
	return string(e.buf)
}

// Cursor returns the cursor position in runes from the start.
func (e *Editor) Cursor() int {
	return e.cur
}

// Len returns the buffer length in runes.
func (e *Editor) Len() int {
	return len(e.buf)
}
