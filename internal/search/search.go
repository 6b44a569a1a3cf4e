// Package search finds optimal itineraries over a flight schedule graph.
//
// Both searches are Dijkstra-style priority traversals with a lazy
// decrease-key heap: frontier entries are pushed freely and stale ones
// discarded on pop against a per-airport visited map. The first pop of the
// destination is optimal because edge costs (arrival-time deltas, fares)
// are non-negative. What sets this apart from textbook Dijkstra is the
// admissibility rule on every edge: a connecting flight must depart at
// least MinLayoverMinutes after the current arrival, so each frontier
// entry tracks its arrival time even when the priority key is price.
package search

import (
	"container/heap"

	"github.com/flywise/flywise/internal/model"
)

// MinLayoverMinutes is the minimum connection time between two legs.
// It does not apply to the first leg, which only has to depart at or
// after the query's earliest departure.
const MinLayoverMinutes = 60

// Query identifies a route request. Origin and Destination are canonical
// (upper-case) airport codes; DepartAfter is the earliest allowed
// departure for the first leg.
type Query struct {
	Origin      string
	Destination string
	DepartAfter model.Clock
}

// leg is one node of a persistent path: frontier entries share their
// prefix instead of copying the whole flight list on every extension.
type leg struct {
	flight model.Flight
	prev   *leg
}

func (l *leg) itinerary() model.Itinerary {
	n := 0
	for cur := l; cur != nil; cur = cur.prev {
		n++
	}
	flights := make([]model.Flight, n)
	for cur := l; cur != nil; cur = cur.prev {
		n--
		flights[n] = cur.flight
	}
	return model.Itinerary{Flights: flights}
}

// entry is one frontier state: the priority cost under the active
// criterion, the time we are standing at airport, and the path taken.
// A nil path marks the synthetic start entry at the query origin.
type entry struct {
	cost    int
	arrival model.Clock
	airport string
	path    *leg
}

// frontier is a min-heap of entries under a criterion-specific ordering.
type frontier struct {
	items []entry
	less  func(a, b entry) bool
}

func (f *frontier) Len() int           { return len(f.items) }
func (f *frontier) Less(i, j int) bool { return f.less(f.items[i], f.items[j]) }
func (f *frontier) Swap(i, j int)      { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(entry)) }

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]
	return item
}

// extendFunc computes the cost of taking flight f from cur, or reports
// ok=false when f is inadmissible under the criterion (e.g. the flight
// does not carry the requested cabin). The shared layover rule has
// already been checked when extendFunc runs.
type extendFunc func(cur entry, f model.Flight) (cost int, ok bool)

// connectable applies the layover rule: the first leg only has to depart
// at or after the current time, a connection needs MinLayoverMinutes on
// top of it.
func connectable(cur entry, f model.Flight) bool {
	if cur.path == nil {
		return f.Depart >= cur.arrival
	}
	return f.Depart >= cur.arrival+MinLayoverMinutes
}

// traverse is the generic priority traversal behind both searches. The
// visited map records the best finalized cost per airport; popped entries
// at or above it cannot improve the result and are dropped. It returns
// ok=false when the frontier empties before the destination is reached
// by at least one flight.
func traverse(g Graph, q Query, less func(a, b entry) bool, startCost int, extend extendFunc) (model.Itinerary, bool) {
	fr := &frontier{less: less}
	heap.Init(fr)
	heap.Push(fr, entry{cost: startCost, arrival: q.DepartAfter, airport: q.Origin})

	visited := make(map[string]int, len(g))
	for fr.Len() > 0 {
		cur := heap.Pop(fr).(entry)
		if cur.airport == q.Destination && cur.path != nil {
			return cur.path.itinerary(), true
		}
		if best, seen := visited[cur.airport]; seen && best <= cur.cost {
			continue
		}
		visited[cur.airport] = cur.cost

		for _, f := range g[cur.airport] {
			if !connectable(cur, f) {
				continue
			}
			cost, ok := extend(cur, f)
			if !ok {
				continue
			}
			heap.Push(fr, entry{
				cost:    cost,
				arrival: f.Arrive,
				airport: f.Destination,
				path:    &leg{flight: f, prev: cur.path},
			})
		}
	}
	return model.Itinerary{}, false
}

// EarliestArrival finds the itinerary arriving at q.Destination as early
// as possible, departing no earlier than q.DepartAfter. The frontier is
// ordered by arrival time with the airport code as a deterministic
// secondary key. ok=false means the destination is unreachable under the
// layover rule.
func EarliestArrival(g Graph, q Query) (model.Itinerary, bool) {
	less := func(a, b entry) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return a.airport < b.airport
	}
	extend := func(cur entry, f model.Flight) (int, bool) {
		return int(f.Arrive), true
	}
	return traverse(g, q, less, int(q.DepartAfter), extend)
}

// CheapestFare finds the itinerary with the lowest total fare in the
// given cabin, under the same departure and layover rules. The frontier
// is ordered by accumulated price, then by arrival time: price alone does
// not decide which onward departures are admissible, so time rides along.
// Flights that do not carry the cabin are skipped, not errors.
func CheapestFare(g Graph, q Query, cabin model.Cabin) (model.Itinerary, bool) {
	less := func(a, b entry) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return a.arrival < b.arrival
	}
	extend := func(cur entry, f model.Flight) (int, bool) {
		p, ok := f.Price(cabin)
		if !ok {
			return 0, false
		}
		return cur.cost + p, true
	}
	return traverse(g, q, less, 0, extend)
}
