package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportEnsureVisibleHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		offsetX  int
		cellLeft int
		cellW    int
		want     int
	}{
		{name: "already visible untouched", offsetX: 10, cellLeft: 15, cellW: 12, want: 10},
		{name: "hidden behind frozen pane scrolls left by overlap", offsetX: 30, cellLeft: 24, cellW: 12, want: 24},
		{name: "past right edge scrolls right by overlap", offsetX: 0, cellLeft: 60, cellW: 12, want: 12},
		{name: "exactly at right edge untouched", offsetX: 0, cellLeft: 48, cellW: 12, want: 0},
		{name: "first cell resets to origin", offsetX: 36, cellLeft: 0, cellW: 12, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 80 wide with a 20-wide frozen pane: 60 cells of scrollable view.
			v := &Viewport{FrozenWidth: 20, Width: 80, Height: 10, OffsetX: tt.offsetX}
			v.EnsureVisible(tt.cellLeft, tt.cellW, 0)
			assert.Equal(t, tt.want, v.OffsetX)
		})
	}
}

func TestViewportEnsureVisibleVertical(t *testing.T) {
	tests := []struct {
		name    string
		offsetY int
		row     int
		want    int
	}{
		{name: "visible row untouched", offsetY: 2, row: 5, want: 2},
		{name: "row above viewport scrolls up to it", offsetY: 4, row: 1, want: 1},
		{name: "row below viewport scrolls down by overlap", offsetY: 0, row: 12, want: 3},
		{name: "last visible row untouched", offsetY: 0, row: 9, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Viewport{FrozenWidth: 20, Width: 80, Height: 10, OffsetY: tt.offsetY}
			v.EnsureVisible(0, 1, tt.row)
			assert.Equal(t, tt.want, v.OffsetY)
		})
	}
}

func TestViewportClamp(t *testing.T) {
	v := &Viewport{FrozenWidth: 20, Width: 80, Height: 10, OffsetX: 999, OffsetY: 999}
	v.Clamp(100, 25)
	assert.Equal(t, 40, v.OffsetX) // 100 content - 60 inner
	assert.Equal(t, 15, v.OffsetY)

	v.OffsetX, v.OffsetY = -3, -1
	v.Clamp(100, 25)
	assert.Equal(t, 0, v.OffsetX)
	assert.Equal(t, 0, v.OffsetY)

	// Content narrower than the view pins the offset at zero.
	v.OffsetX = 5
	v.Clamp(30, 25)
	assert.Equal(t, 0, v.OffsetX)
}

func TestViewportInnerWidth(t *testing.T) {
	v := &Viewport{FrozenWidth: 20, Width: 80}
	assert.Equal(t, 60, v.InnerWidth())

	v = &Viewport{FrozenWidth: 50, Width: 30}
	assert.Equal(t, 0, v.InnerWidth())
}
