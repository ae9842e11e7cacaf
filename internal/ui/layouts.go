package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// cardGridLayout wraps equally sized cards into rows with a fixed gap. Unlike
// GridWrap the gap is the planner's gap rather than the theme padding, so a
// planned row of three fills the container exactly.
type cardGridLayout struct {
	cellSize fyne.Size
	gap      float32

	// widthHint is the width rows are planned for before the first Layout call
	widthHint float32
}

func newCardGridLayout(cellSize fyne.Size, gap, widthHint float32) *cardGridLayout {
	return &cardGridLayout{cellSize: cellSize, gap: gap, widthHint: widthHint}
}

// perRow returns how many cells fit in width; always at least one
func (l *cardGridLayout) perRow(width float32) int {
	if l.cellSize.Width <= 0 {
		return 1
	}
	// Half a pixel of slack absorbs float error in planned widths
	n := int(math.Floor(float64((width + l.gap + 0.5) / (l.cellSize.Width + l.gap))))
	if n < 1 {
		return 1
	}
	return n
}

// Layout places cells left to right, wrapping onto new rows
func (l *cardGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size.Width > 0 {
		l.widthHint = size.Width
	}
	cols := l.perRow(l.widthHint)

	i := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		row, col := i/cols, i%cols
		o.Move(fyne.NewPos(
			float32(col)*(l.cellSize.Width+l.gap),
			float32(row)*(l.cellSize.Height+l.gap),
		))
		o.Resize(l.cellSize)
		i++
	}
}

// MinSize is one cell wide and as tall as the rows needed at the current width
func (l *cardGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := 0
	for _, o := range objects {
		if o.Visible() {
			visible++
		}
	}
	if visible == 0 {
		return fyne.NewSize(0, 0)
	}

	cols := l.perRow(l.widthHint)
	rows := (visible + cols - 1) / cols
	height := float32(rows)*l.cellSize.Height + float32(rows-1)*l.gap
	return fyne.NewSize(l.cellSize.Width, height)
}

// widthReportingLayout stacks its objects like a max layout and reports width
// changes of the container, which is how the catalog learns its live width
type widthReportingLayout struct {
	onWidth   func(float32)
	lastWidth float32
}

func newWidthReportingLayout(onWidth func(float32)) *widthReportingLayout {
	return &widthReportingLayout{onWidth: onWidth}
}

// Layout resizes every object to fill the container
func (l *widthReportingLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}

	if size.Width <= 0 {
		return
	}
	delta := size.Width - l.lastWidth
	if delta < 0 {
		delta = -delta
	}
	if delta < WidthChangeThreshold {
		return
	}
	l.lastWidth = size.Width
	if l.onWidth != nil {
		l.onWidth(size.Width)
	}
}

// MinSize returns the largest minimum size of the objects
func (l *widthReportingLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}
