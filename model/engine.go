package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/rules"
)

// Options controls how the initial living set is built
type Options struct {
	// RandomFillProbability is the chance that each grid position starts alive
	// in addition to the seed. Zero disables the fill.
	RandomFillProbability float64
	// RandomSeed makes the random fill reproducible
	RandomSeed int64
}

// Engine runs Conway's Game of Life on an N×N toroidal grid and emits a
// triangle mesh of the living cells. It is not safe for concurrent use.
type Engine struct {
	size     uint32
	cellSize float32

	living     LivingSet
	order      []Cell // living cells in emission order, rebuilt on every swap
	generation int

	tallies  *TallyPool
	vertices []float32
}

// New creates an engine for an n×n grid seeded with the provided cells
func New(n uint32, seed []Cell, opts Options) (*Engine, error) {
	if n == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "[New] dimension must be positive")
	}
	e := &Engine{
		size:     n,
		cellSize: 2.0 / float32(n),
		tallies:  NewTallyPool(),
	}
	if err := e.Reset(seed, opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards the current state and rebuilds the living set from seed and opts.
// On error the engine keeps its previous state.
func (e *Engine) Reset(seed []Cell, opts Options) error {
	p := opts.RandomFillProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "[Reset] random fill probability %v outside [0, 1]", p)
	}

	living := make(LivingSet, len(seed))
	for _, c := range seed {
		if c.X >= e.size || c.Y >= e.size {
			return errors.Wrapf(ErrSeedOutOfBounds, "[Reset] cell (%d,%d) outside %dx%d grid", c.X, c.Y, e.size, e.size)
		}
		living.Add(c)
	}
	fillRandom(living, e.size, p, opts.RandomSeed)

	e.swap(living)
	e.generation = 0
	return nil
}

// Size returns the grid dimension N
func (e *Engine) Size() uint32 {
	return e.size
}

// CellSize returns the edge length of one cell in normalized device coordinates
func (e *Engine) CellSize() float32 {
	return e.cellSize
}

// Generation returns how many times Advance has run since the last reset
func (e *Engine) Generation() int {
	return e.generation
}

// Population returns the number of living cells
func (e *Engine) Population() int {
	return len(e.living)
}

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (e *Engine) Alive(x, y uint32) bool {
	return e.living.Contains(Cell{X: x % e.size, Y: y % e.size})
}

// Cells returns a copy of the living cells ordered by row, then column
func (e *Engine) Cells() []Cell {
	return append([]Cell(nil), e.order...)
}

func (e *Engine) prev(v uint32) uint32 {
	if v == 0 {
		return e.size - 1
	}
	return v - 1
}

func (e *Engine) next(v uint32) uint32 {
	if v == e.size-1 {
		return 0
	}
	return v + 1
}

// tally counts, for every cell adjacent to a living cell, how many living
// neighbors it has. Cells with no living neighbors never appear.
func (e *Engine) tally(t NeighborTally) {
	for c := range e.living {
		left, right := e.prev(c.X), e.next(c.X)
		top, bottom := e.prev(c.Y), e.next(c.Y)

		t[Cell{left, top}]++
		t[Cell{c.X, top}]++
		t[Cell{right, top}]++
		t[Cell{left, c.Y}]++
		t[Cell{right, c.Y}]++
		t[Cell{left, bottom}]++
		t[Cell{c.X, bottom}]++
		t[Cell{right, bottom}]++
	}
}

// Advance computes the next generation and replaces the living set with it
func (e *Engine) Advance() {
	t := e.tallies.Get()
	defer e.tallies.Put(t)
	e.tally(t)

	next := make(LivingSet, len(e.living))
	for c, n := range t {
		if rules.ApplyConwayRules(int(n), e.living.Contains(c)) {
			next.Add(c)
		}
	}
	// Living cells missing from the tally have zero neighbors.
	for c := range e.living {
		if _, ok := t[c]; ok {
			continue
		}
		if rules.ApplyConwayRules(0, true) {
			next.Add(c)
		}
	}

	e.swap(next)
	e.generation++
}

func (e *Engine) swap(living LivingSet) {
	e.living = living
	e.order = living.Sorted()
}

// EmitMesh returns two triangles per living cell as a flat xyz vertex list.
// The backing array is reused, so the slice is only valid until the next call.
func (e *Engine) EmitMesh() []float32 {
	e.vertices = e.vertices[:0]
	for _, c := range e.order {
		e.vertices = QuadAt(c, e.cellSize).AppendTriangles(e.vertices)
	}
	return e.vertices
}

// Hash returns an MD5 digest of the living set, stable across runs
func (e *Engine) Hash() string {
	h := md5.New()
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf, e.size)
	h.Write(buf[:4])
	for _, c := range e.order {
		binary.BigEndian.PutUint32(buf[:4], c.X)
		binary.BigEndian.PutUint32(buf[4:], c.Y)
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
