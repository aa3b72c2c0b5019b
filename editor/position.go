package editor

import (
	"fmt"
	"strings"
)

// Position is a zero-indexed column/row pair, used for both document and screen coordinates
type Position struct {
	X int
	Y int
}

// ToScreen converts a document position to screen coordinates for the given viewport offset
func ToScreen(doc, offset Position) Position {
	return Position{X: doc.X - offset.X, Y: doc.Y - offset.Y}
}

// ToDocument converts a screen position back to document coordinates
func ToDocument(screen, offset Position) Position {
	return Position{X: screen.X + offset.X, Y: screen.Y + offset.Y}
}

// Bounds selects what the cursor is clamped against
type Bounds uint8

const (
	// BoundsScreen clamps to the terminal size; the viewport never scrolls
	BoundsScreen Bounds = iota
	// BoundsDocument clamps to the document's rows and row widths, scrolling the viewport
	BoundsDocument
)

var boundsNames = map[string]Bounds{
	"screen":   BoundsScreen,
	"document": BoundsDocument,
}

func (b Bounds) String() string {
	switch b {
	case BoundsScreen:
		return "screen"
	case BoundsDocument:
		return "document"
	}
	return fmt.Sprintf("Bounds(%d)", uint8(b))
}

// ParseBounds resolves a bounds name as used in config and flags
func ParseBounds(name string) (Bounds, error) {
	b, ok := boundsNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown bounds %q (expected screen or document)", name)
	}
	return b, nil
}
