package document

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RenderOptions controls how a row's stored text is projected for painting.
// The zero value renders text verbatim.
type RenderOptions struct {
	// TabStop expands tabs to the next multiple of TabStop columns; 0 leaves tabs as-is
	TabStop int
	// EscapeControl rewrites C0 controls and DEL to caret notation (^[, ^?)
	EscapeControl bool
}

// Row is one line of a document.
// stored is the text as read; rendered is the form painted to screen. Rows are immutable.
type Row struct {
	stored   string
	rendered string

	// Display column where each visible grapheme cluster starts, followed by the total width
	stops []int
}

// NewRow builds a row, deriving the rendered form from s
func NewRow(s string, opts RenderOptions) *Row {
	rendered := render(s, opts)
	return &Row{
		stored:   s,
		rendered: rendered,
		stops:    clusterStops(rendered),
	}
}

// Stored returns the line as read from the source
func (r *Row) Stored() string {
	return r.stored
}

// Rendered returns the line as painted
func (r *Row) Rendered() string {
	return r.rendered
}

// Width returns the display width of the rendered line in terminal columns
func (r *Row) Width() int {
	return r.stops[len(r.stops)-1]
}

// NextColumn returns the start column of the first cluster after col, or Width at the end
func (r *Row) NextColumn(col int) int {
	for _, s := range r.stops {
		if s > col {
			return s
		}
	}
	return r.Width()
}

// PrevColumn returns the start column of the last cluster before col, or 0
func (r *Row) PrevColumn(col int) int {
	prev := 0
	for _, s := range r.stops {
		if s >= col {
			break
		}
		prev = s
	}
	return prev
}

// SnapColumn moves col back to the start of the cluster covering it, clamped to [0, Width]
func (r *Row) SnapColumn(col int) int {
	if col <= 0 {
		return 0
	}
	snapped := 0
	for _, s := range r.stops {
		if s > col {
			break
		}
		snapped = s
	}
	return snapped
}

// Slice returns the rendered text starting at display column start, at most width columns wide.
// Cuts fall on grapheme cluster boundaries; a wide cluster straddling either edge is dropped.
// Raw controls left in the rendered form occupy no column and are never painted.
func (r *Row) Slice(start, width int) string {
	if width <= 0 || r.rendered == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	end := start + width

	var sb strings.Builder
	col := 0
	g := uniseg.NewGraphemes(r.rendered)
	for g.Next() {
		if col >= end {
			break
		}
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 && strings.IndexFunc(cluster, isControl) >= 0 {
			continue
		}
		if col >= start && col+w <= end {
			sb.WriteString(cluster)
		}
		col += w
	}
	return sb.String()
}

func clusterStops(s string) []int {
	stops := make([]int, 0, len(s)+1)
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			continue
		}
		stops = append(stops, col)
		col += w
	}
	return append(stops, col)
}

func render(s string, opts RenderOptions) string {
	if !needsRender(s, opts) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	col := 0
	for _, c := range s {
		switch {
		case c == '\t' && opts.TabStop > 0:
			n := opts.TabStop - col%opts.TabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case opts.EscapeControl && isControl(c):
			sb.WriteByte('^')
			sb.WriteByte(byte(c) ^ 0x40)
			col += 2
		default:
			sb.WriteRune(c)
			col += runewidth.RuneWidth(c)
		}
	}
	return sb.String()
}

func needsRender(s string, opts RenderOptions) bool {
	if opts.TabStop <= 0 && !opts.EscapeControl {
		return false
	}
	for _, c := range s {
		if c == '\t' && opts.TabStop > 0 {
			return true
		}
		if opts.EscapeControl && isControl(c) {
			return true
		}
	}
	return false
}

// isControl reports C0 controls and DEL. Tab counts as a control only when not expanded.
func isControl(c rune) bool {
	return c < 0x20 || c == 0x7f
}
