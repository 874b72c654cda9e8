package planning

// Viewport models the grid's split layout: a frozen left pane of row labels
// that never moves horizontally, and a scrollable right region shared by the
// header row, the body, and the totals footer. OffsetX is the single source
// of truth for horizontal position: header and footer render shifted by the
// same offset the body uses, never by independent scroll state, so the three
// panes cannot desynchronize. OffsetY scrolls the body rows only; header and
// footer stay pinned.
//
// All measures are in layout cells. Horizontal cell coordinates are relative
// to the start of the scrollable content (the frozen pane is not part of the
// scrollable coordinate space, only an exclusion zone of the visible width).
type Viewport struct {
	// FrozenWidth is the width of the frozen label pane.
	FrozenWidth int

	// Width is the total visible width, frozen pane included.
	Width int

	// Height is the number of body rows visible at once.
	Height int

	// OffsetX is the horizontal scroll position of the right region.
	OffsetX int

	// OffsetY is the index of the first visible body row.
	OffsetY int
}

// InnerWidth returns the visible width of the scrollable right region.
func (v *Viewport) InnerWidth() int {
	w := v.Width - v.FrozenWidth
	if w < 0 {
		return 0
	}
	return w
}

// Clamp bounds both offsets against the given content extents.
func (v *Viewport) Clamp(contentWidth, contentRows int) {
	if max := contentWidth - v.InnerWidth(); v.OffsetX > max {
		v.OffsetX = max
	}
	if v.OffsetX < 0 {
		v.OffsetX = 0
	}
	if max := contentRows - v.Height; v.OffsetY > max {
		v.OffsetY = max
	}
	if v.OffsetY < 0 {
		v.OffsetY = 0
	}
}

// EnsureVisible scrolls just far enough that the cell spanning
// [cellLeft, cellLeft+cellWidth) in scrollable coordinates, on body row
// rowIndex, is fully visible. Each offset moves by exactly the overlap
// amount. A cell hidden behind the frozen pane scrolls left until its left
// edge clears it, a cell past the right edge scrolls right until its right
// edge fits, and likewise for rows against the body viewport top and bottom.
// Cells already visible leave the offsets untouched.
func (v *Viewport) EnsureVisible(cellLeft, cellWidth, rowIndex int) {
	inner := v.InnerWidth()
	if cellLeft < v.OffsetX {
		v.OffsetX = cellLeft
	} else if right := cellLeft + cellWidth; right > v.OffsetX+inner {
		v.OffsetX = right - inner
	}
	if v.OffsetX < 0 {
		v.OffsetX = 0
	}

	if rowIndex < v.OffsetY {
		v.OffsetY = rowIndex
	} else if v.Height > 0 && rowIndex >= v.OffsetY+v.Height {
		v.OffsetY = rowIndex - v.Height + 1
	}
	if v.OffsetY < 0 {
		v.OffsetY = 0
	}
}
