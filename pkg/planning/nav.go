package planning

// NavKey is a directional input applied to the grid's editable cells.
type NavKey int

// Directional inputs. NavEnter implements the row-major "continue typing"
// flow: one cell right, or column 0 of the next row from a row's last cell.
const (
	NavUp NavKey = iota
	NavDown
	NavLeft
	NavRight
	NavEnter
)

// Position addresses a cell in the editable index space: Row counts item
// rows only (section headers and subtotal rows are not navigable), Col
// counts unit columns.
type Position struct {
	Row int
	Col int
}

// Navigate returns the cell focus moves to when key is pressed at p, in a
// grid of rows editable rows and cols unit columns. Movement clamps at the
// grid edges; Left/Right never wrap to adjacent rows, and Up/Left from the
// top-left cell stay put. An empty grid returns p unchanged.
func Navigate(p Position, key NavKey, rows, cols int) Position {
	if rows <= 0 || cols <= 0 {
		return p
	}
	p = clamp(p, rows, cols)
	switch key {
	case NavUp:
		p.Row--
	case NavDown:
		p.Row++
	case NavLeft:
		p.Col--
	case NavRight:
		p.Col++
	case NavEnter:
		if p.Col == cols-1 {
			if p.Row < rows-1 {
				p.Row++
				p.Col = 0
			}
		} else {
			p.Col++
		}
	}
	return clamp(p, rows, cols)
}

func clamp(p Position, rows, cols int) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > rows-1 {
		p.Row = rows - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > cols-1 {
		p.Col = cols - 1
	}
	return p
}
