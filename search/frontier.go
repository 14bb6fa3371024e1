package search

// candidate is a partial path on the frontier, tagged with its accumulated
// cost g and heuristic estimate h (h is 0 for uninformed search).
type candidate struct {
	path Path
	g    int
	h    int
}

// frontier is a min-heap of candidates ordered by (g+h, path length): cheapest
// first, shorter partial paths winning ties. The tie-break matters — it is
// part of each agent's observable selection order.
type frontier []candidate

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi, fj := f[i].g+f[i].h, f[j].g+f[j].h
	if fi != fj {
		return fi < fj
	}
	return len(f[i].path) < len(f[j].path)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(candidate))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = candidate{}
	*f = old[:n-1]
	return item
}
