package model

import "math"

const (
	// FloatsPerVertex is the number of components in each emitted vertex (x, y, z)
	FloatsPerVertex = 3
	// VerticesPerCell is two triangles per living cell
	VerticesPerCell = 6
	// FloatsPerCell is the length of one cell's run in the vertex buffer
	FloatsPerCell = FloatsPerVertex * VerticesPerCell
)

// Quad is the axis-aligned square covering one cell in normalized device coordinates
type Quad struct {
	X1, Y1 float32
	X2, Y2 float32
}

// QuadAt maps a cell onto the [-1, 1] square
func QuadAt(c Cell, cellSize float32) Quad {
	x1 := float32(c.X)*cellSize - 1.0
	y1 := float32(c.Y)*cellSize - 1.0
	return Quad{X1: x1, Y1: y1, X2: x1 + cellSize, Y2: y1 + cellSize}
}

// AppendTriangles appends the quad as (x1,y1) (x2,y2) (x2,y1) and
// (x2,y2) (x1,y2) (x1,y1), all with z = 0.
func (q Quad) AppendTriangles(buf []float32) []float32 {
	return append(buf,
		q.X1, q.Y1, 0,
		q.X2, q.Y2, 0,
		q.X2, q.Y1, 0,

		q.X2, q.Y2, 0,
		q.X1, q.Y2, 0,
		q.X1, q.Y1, 0,
	)
}

// Cell recovers the grid coordinate the quad was built from
func (q Quad) Cell(cellSize float32) Cell {
	x := math.Round(float64((q.X1 + 1.0) / cellSize))
	y := math.Round(float64((q.Y1 + 1.0) / cellSize))
	return Cell{X: uint32(max(x, 0)), Y: uint32(max(y, 0))}
}

// QuadsFromVertices splits a vertex buffer produced by EmitMesh back into quads.
// A trailing partial run is ignored.
func QuadsFromVertices(vertices []float32) []Quad {
	quads := make([]Quad, 0, len(vertices)/FloatsPerCell)
	for i := 0; i+FloatsPerCell <= len(vertices); i += FloatsPerCell {
		run := vertices[i : i+FloatsPerCell]
		quads = append(quads, Quad{X1: run[0], Y1: run[1], X2: run[3], Y2: run[4]})
	}
	return quads
}
