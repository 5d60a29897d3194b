package rules

// Neighbor counts for the B3/S23 rule.
const (
	BirthNeighbors      = 3
	MinSurviveNeighbors = 2
	MaxSurviveNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly three living neighbors is born. A living cell with two or three
living neighbors survives. Every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinSurviveNeighbors && neighbors <= MaxSurviveNeighbors
	}
	return neighbors == BirthNeighbors
}
