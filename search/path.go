package search

// Coord identifies a grid cell by row and column. Coords compare by value.
type Coord struct {
	Row int
	Col int
}

// Tile is a grid cell together with the cost of stepping onto it.
// Tiles are produced by the Grid; agents never mutate them.
type Tile struct {
	Pos  Coord
	Cost int
}

// Path is an ordered route through the grid, start first, goal last.
// An empty Path is the "no route found" sentinel.
type Path []Coord

// IsEmpty reports whether the path contains no coordinates.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Start returns the first coordinate. Panics on an empty path.
func (p Path) Start() Coord {
	return p[0]
}

// Goal returns the last coordinate. Panics on an empty path.
func (p Path) Goal() Coord {
	return p[len(p)-1]
}

// TotalCost sums the entry cost of every tile on the path, including the
// start tile. An empty path costs 0.
func (p Path) TotalCost(g Grid) int {
	total := 0
	for _, c := range p {
		total += g.Get(c.Row, c.Col).Cost
	}
	return total
}

// contains reports whether c already appears on the path. Linear scan:
// candidate paths stay short on the grid sizes this engine targets, and the
// scan preserves the self-avoidance rule exactly.
func (p Path) contains(c Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// extend returns a fresh path consisting of p followed by c. The receiver is
// never aliased: frontier candidates own their paths exclusively.
func (p Path) extend(c Coord) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, c)
}
