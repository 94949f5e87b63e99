package ui

// Stats is the per-frame state the HUD displays.
type Stats struct {
	Generation uint64
	Population int
	CursorX    int
	CursorY    int
	Running    bool
}
