// Package pattern reads plain-text seed files. Each line is a row; a '*' at
// column j of line i marks the living cell (i, j). Any other character is dead.
package pattern

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
)

const aliveMarker = '*'

// ErrPatternTooLarge is returned by Fit in strict mode when a cell falls outside the grid
var ErrPatternTooLarge = errors.New("pattern larger than grid")

// Parse reads a pattern and returns its living cells in file order
func Parse(r io.Reader) ([]model.Cell, error) {
	var (
		cells   []model.Cell
		scanner = bufio.NewScanner(r)
		row     uint32
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		var col uint32
		for _, ch := range scanner.Text() {
			if ch == aliveMarker {
				cells = append(cells, model.Cell{X: row, Y: col})
			}
			col++
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "[Parse] failed to read pattern at line %d", row+1)
	}
	return cells, nil
}

// Load parses the pattern file at filename
func Load(filename string) ([]model.Cell, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open pattern: %+v", filename)
	}
	defer f.Close()

	cells, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to parse pattern: %+v", filename)
	}
	return cells, nil
}

// Fit prepares parsed cells for an n×n grid. In strict mode any cell outside
// the grid is an error; otherwise such cells are dropped and counted.
func Fit(cells []model.Cell, n uint32, strict bool) ([]model.Cell, int, error) {
	kept := make([]model.Cell, 0, len(cells))
	dropped := 0
	for _, c := range cells {
		if c.X < n && c.Y < n {
			kept = append(kept, c)
			continue
		}
		if strict {
			return nil, 0, errors.Wrapf(ErrPatternTooLarge, "[Fit] cell (%d,%d) outside %dx%d grid", c.X, c.Y, n, n)
		}
		dropped++
	}
	return kept, dropped, nil
}

// Bounds returns the number of rows and columns spanned by cells
func Bounds(cells []model.Cell) (rows, cols uint32) {
	for _, c := range cells {
		rows = max(rows, c.X+1)
		cols = max(cols, c.Y+1)
	}
	return rows, cols
}
