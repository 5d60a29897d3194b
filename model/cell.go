package model

import (
	"cmp"
	"slices"
)

// Cell is a coordinate on the toroidal grid. Both components lie in [0, N).
type Cell struct {
	X uint32
	Y uint32
}

// LivingSet holds the coordinates of every living cell
type LivingSet map[Cell]struct{}

// NewLivingSet builds a set from the provided cells, dropping duplicates
func NewLivingSet(cells ...Cell) LivingSet {
	s := make(LivingSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add marks a cell as alive
func (s LivingSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Contains reports whether the cell is alive
func (s LivingSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population of the set
func (s LivingSet) Len() int {
	return len(s)
}

// Sorted returns the cells ordered by row, then column
func (s LivingSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
