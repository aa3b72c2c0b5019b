package editor

// Screen is the drawing sink the editor paints frames into.
// Primitives are queued in order and become visible together on Flush.
type Screen interface {
	Size() (width, height int)
	HideCursor()
	ShowCursor()
	MoveTo(x, y int)
	ClearLine()
	Print(s string)
	Flush() error
}
