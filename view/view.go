// Package view hosts the window renderers that draw the engine's vertex
// buffer. The ebiten renderer needs the `ebiten` build tag and the OpenGL one
// needs `gl`; without them the Run functions return ErrRendererUnavailable.
package view

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
)

// ErrRendererUnavailable is returned when a renderer was not compiled in
var ErrRendererUnavailable = errors.New("renderer not compiled in")

// Simulation is what a window driver needs from the engine
type Simulation interface {
	Advance()
	EmitMesh() []float32
	Population() int
	Generation() int
}

// WindowOptions configures a windowed run
type WindowOptions struct {
	Title                string
	Size                 int
	GenerationsPerSecond int
	MaxGenerations       int
}

// background matches a (0.3, 0.3, 0.5) clear color
var background = [4]float32{0.3, 0.3, 0.5, 1.0}

// maxCellsPerBatch keeps one draw call's vertex indices within uint16
const maxCellsPerBatch = (1<<16 - 1) / model.VerticesPerCell

// toScreen maps a normalized device coordinate onto a w×h pixel surface with
// y growing downwards
func toScreen(x, y float32, w, h int) (float32, float32) {
	return (x + 1) / 2 * float32(w), (1 - y) / 2 * float32(h)
}

// batches splits cells into runs of at most maxCellsPerBatch and returns the
// [start, end) cell ranges
func batches(cells int) [][2]int {
	var out [][2]int
	for start := 0; start < cells; start += maxCellsPerBatch {
		out = append(out, [2]int{start, min(start+maxCellsPerBatch, cells)})
	}
	return out
}

func done(sim Simulation, maxGenerations int) bool {
	return maxGenerations > 0 && sim.Generation() >= maxGenerations
}
