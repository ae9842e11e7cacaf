package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func rects(n int) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, n)
	for i := 0; i < n; i++ {
		objects = append(objects, canvas.NewRectangle(nil))
	}
	return objects
}

func TestCardGridLayout_PerRow(t *testing.T) {
	tests := []struct {
		cell     float32
		width    float32
		expected int
	}{
		{281.6667, 875, 3}, // planned row of three
		{430, 875, 2},
		{875, 875, 1},
		{265, 600, 2},
		{300, 100, 1}, // never zero
	}

	for _, test := range tests {
		l := newCardGridLayout(fyne.NewSize(test.cell, 120), 15, test.width)
		if got := l.perRow(test.width); got != test.expected {
			t.Errorf("perRow(%v) with cell %v = %d, expected %d", test.width, test.cell, got, test.expected)
		}
	}
}

func TestCardGridLayout_Layout(t *testing.T) {
	l := newCardGridLayout(fyne.NewSize(100, 50), 10, 0)
	objects := rects(4)

	l.Layout(objects, fyne.NewSize(320, 200))

	expected := []fyne.Position{
		fyne.NewPos(0, 0),
		fyne.NewPos(110, 0),
		fyne.NewPos(220, 0),
		fyne.NewPos(0, 60),
	}
	for i, o := range objects {
		if o.Position() != expected[i] {
			t.Errorf("object %d at %v, expected %v", i, o.Position(), expected[i])
		}
		if o.Size() != fyne.NewSize(100, 50) {
			t.Errorf("object %d size %v, expected 100x50", i, o.Size())
		}
	}
}

func TestCardGridLayout_MinSize(t *testing.T) {
	l := newCardGridLayout(fyne.NewSize(100, 50), 10, 320)

	minSize := l.MinSize(rects(4))
	if minSize.Height != 110 {
		t.Errorf("MinSize height = %v, expected 110 for two rows", minSize.Height)
	}
	if minSize.Width != 100 {
		t.Errorf("MinSize width = %v, expected one cell", minSize.Width)
	}

	if got := l.MinSize(nil); got != fyne.NewSize(0, 0) {
		t.Errorf("MinSize of no objects = %v, expected zero", got)
	}
}

func TestCardGridLayout_SkipsHidden(t *testing.T) {
	test.NewApp()
	l := newCardGridLayout(fyne.NewSize(100, 50), 10, 320)
	objects := rects(4)
	objects[0].Hide()

	l.Layout(objects, fyne.NewSize(320, 200))
	if objects[1].Position() != fyne.NewPos(0, 0) {
		t.Errorf("first visible object at %v, expected origin", objects[1].Position())
	}
	if h := l.MinSize(objects).Height; h != 50 {
		t.Errorf("MinSize height = %v, expected a single row", h)
	}
}

func TestWidthReportingLayout(t *testing.T) {
	var reported []float32
	l := newWidthReportingLayout(func(w float32) {
		reported = append(reported, w)
	})
	objects := rects(2)

	l.Layout(objects, fyne.NewSize(500, 300))
	l.Layout(objects, fyne.NewSize(500.5, 300)) // below threshold
	l.Layout(objects, fyne.NewSize(600, 300))
	l.Layout(objects, fyne.NewSize(0, 0))

	if len(reported) != 2 || reported[0] != 500 || reported[1] != 600 {
		t.Errorf("reported widths = %v, expected [500 600]", reported)
	}
	for i, o := range objects {
		if o.Size() != fyne.NewSize(0, 0) {
			t.Errorf("object %d size %v, expected to follow the container", i, o.Size())
		}
	}
}
