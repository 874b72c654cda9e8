package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigate(t *testing.T) {
	const rows, cols = 3, 4

	tests := []struct {
		name string
		from Position
		key  NavKey
		want Position
	}{
		{name: "right moves within row", from: Position{0, 0}, key: NavRight, want: Position{0, 1}},
		{name: "right clamps at last column", from: Position{0, 3}, key: NavRight, want: Position{0, 3}},
		{name: "left clamps at column zero", from: Position{1, 0}, key: NavLeft, want: Position{1, 0}},
		{name: "left never wraps to previous row", from: Position{2, 0}, key: NavLeft, want: Position{2, 0}},
		{name: "down moves within column", from: Position{0, 2}, key: NavDown, want: Position{1, 2}},
		{name: "down clamps at last row", from: Position{2, 2}, key: NavDown, want: Position{2, 2}},
		{name: "up clamps at row zero", from: Position{0, 1}, key: NavUp, want: Position{0, 1}},
		{name: "enter moves one right", from: Position{1, 1}, key: NavEnter, want: Position{1, 2}},
		{name: "enter wraps to next row at last column", from: Position{1, 3}, key: NavEnter, want: Position{2, 0}},
		{name: "enter stays on final cell", from: Position{2, 3}, key: NavEnter, want: Position{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Navigate(tt.from, tt.key, rows, cols))
		})
	}
}

func TestNavigateNeverLeavesGrid(t *testing.T) {
	// From the top-left cell, no sequence of Up/Left presses may move focus
	// outside the grid.
	p := Position{0, 0}
	for i := 0; i < 50; i++ {
		key := NavUp
		if i%2 == 1 {
			key = NavLeft
		}
		p = Navigate(p, key, 5, 3)
		assert.Equal(t, Position{0, 0}, p)
	}

	// Walking every key from every cell stays in bounds.
	for row := 0; row < 5; row++ {
		for col := 0; col < 3; col++ {
			for _, key := range []NavKey{NavUp, NavDown, NavLeft, NavRight, NavEnter} {
				got := Navigate(Position{row, col}, key, 5, 3)
				assert.GreaterOrEqual(t, got.Row, 0)
				assert.Less(t, got.Row, 5)
				assert.GreaterOrEqual(t, got.Col, 0)
				assert.Less(t, got.Col, 3)
			}
		}
	}
}

func TestNavigateEmptyGrid(t *testing.T) {
	p := Position{0, 0}
	assert.Equal(t, p, Navigate(p, NavDown, 0, 0))
	assert.Equal(t, p, Navigate(p, NavEnter, 3, 0))
}

func TestNavigateEnterTraversesRowMajor(t *testing.T) {
	// Enter alone must visit every cell in reading order.
	const rows, cols = 2, 3
	p := Position{0, 0}
	var visited []Position
	for i := 0; i < rows*cols-1; i++ {
		visited = append(visited, p)
		p = Navigate(p, NavEnter, rows, cols)
	}
	visited = append(visited, p)

	assert.Equal(t, []Position{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, visited)
}
