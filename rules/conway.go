package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with two or three live neighbors, a dead cell is born with exactly three,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Flips reports whether a cell changes state between this generation and the next.
func Flips(neighbors int, alive bool) bool {
	return ApplyConwayRules(neighbors, alive) != alive
}
