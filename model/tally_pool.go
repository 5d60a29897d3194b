package model

import "sync"

// NeighborTally maps a cell to the number of living cells around it for one generation
type NeighborTally map[Cell]uint8

// TallyPool recycles tally maps between generations so Advance does not
// reallocate the hash table every step
type TallyPool struct {
	pool sync.Pool
}

func NewTallyPool() *TallyPool {
	return &TallyPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(NeighborTally)
			},
		},
	}
}

// Get retrieves an empty tally from the pool
func (p *TallyPool) Get() NeighborTally {
	return p.pool.Get().(NeighborTally)
}

// Put returns a tally to the pool, clearing its entries
func (p *TallyPool) Put(t NeighborTally) {
	if t == nil {
		return
	}
	clear(t)
	p.pool.Put(t)
}
