package model

import "math/rand/v2"

// fillRandom marks every grid position alive with probability p using a
// deterministic PCG source seeded from seed.
func fillRandom(s LivingSet, n uint32, p float64, seed int64) {
	if p <= 0 {
		return
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for x := range n {
		for y := range n {
			if rng.Float64() < p {
				s.Add(Cell{X: x, Y: y})
			}
		}
	}
}
