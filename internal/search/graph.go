package search

import "github.com/flywise/flywise/internal/model"

// Graph maps each airport code to its outbound flights, in schedule order.
// Airports with no outbound flights have no entry. The graph is read-only
// once built, so any number of searches may run against it concurrently.
type Graph map[string][]model.Flight

// BuildGraph indexes flights by origin. The relative order of flights
// sharing an origin matches the input order, which keeps tie-breaking in
// the searches deterministic for a given schedule file. Flights are
// trusted as ingested; no validation happens here.
func BuildGraph(flights []model.Flight) Graph {
	g := make(Graph)
	for _, f := range flights {
		g[f.Origin] = append(g[f.Origin], f)
	}
	return g
}
