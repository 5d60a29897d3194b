package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"

	defaultViewport = 80
)

// TerminalRenderer rasterizes a vertex buffer onto a character grid. Only the
// top-left Viewport×Viewport window of the grid is drawn.
type TerminalRenderer struct {
	Out      io.Writer
	Viewport uint32
}

// NewTerminalRenderer writes to stdout with the default viewport
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Viewport: defaultViewport}
}

// Display draws every quad in vertices for a grid of the given dimension
func (r *TerminalRenderer) Display(vertices []float32, size uint32) error {
	view := size
	if r.Viewport > 0 && r.Viewport < view {
		view = r.Viewport
	}

	rows := make([][]bool, view)
	for i := range rows {
		rows[i] = make([]bool, view)
	}
	cellSize := 2.0 / float32(size)
	for _, q := range QuadsFromVertices(vertices) {
		c := q.Cell(cellSize)
		if c.X < view && c.Y < view {
			rows[c.Y][c.X] = true
		}
	}

	w := bufio.NewWriter(r.Writer())
	for _, row := range rows {
		for _, alive := range row {
			if alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Writer(), ansiClear)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}

// Writer returns the destination of rendered frames, stdout when unset
func (r *TerminalRenderer) Writer() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
