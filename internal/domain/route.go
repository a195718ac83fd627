package domain

import (
	"fmt"
	"iter"
	"strings"
)

// node is one arena slot. Stops are linked into the ring through id handles
// rather than pointers, so a splice or delete never invalidates anything a
// caller holds (callers only ever hold ids or names).
type node struct {
	stop Stop
	prev int
	next int
}

// Route is an ordered, circular sequence of stops: the successor of the last
// stop is the designated first stop, and the predecessor of the first is the
// last. An empty route is valid.
//
// The route exclusively owns its stops. Lookup and mutation methods accept
// names (case-insensitive, first match in ring order) or ids; they never
// accept or return live references into the ring. A Route value assumes a
// single mutator; callers embedding it in a concurrent host must serialize
// access externally.
type Route struct {
	nodes  map[int]*node
	first  int // id of the designated first stop; 0 when empty
	nextID int // ids are monotonic for the lifetime of the route, never reused
}

// New returns an empty route.
func New() *Route {
	return &Route{nodes: make(map[int]*node), nextID: 1}
}

// Len returns the number of stops on the route.
func (r *Route) Len() int { return len(r.nodes) }

// Stops yields value copies of the stops in ring order starting from the
// designated first stop. The sequence is restartable and yields nothing for
// an empty route.
func (r *Route) Stops() iter.Seq[Stop] {
	return func(yield func(Stop) bool) {
		if r.first == 0 {
			return
		}
		id := r.first
		for {
			n := r.nodes[id]
			if !yield(n.stop) {
				return
			}
			id = n.next
			if id == r.first {
				return
			}
		}
	}
}

// Records returns an ordered snapshot of the route, suitable for handing to
// a persistence adapter.
func (r *Route) Records() []Stop {
	out := make([]Stop, 0, len(r.nodes))
	for s := range r.Stops() {
		out = append(out, s)
	}
	return out
}

// FindByName returns the first stop in ring order whose name matches,
// ignoring case. The second result is false when no stop matches.
func (r *Route) FindByName(name string) (Stop, bool) {
	n, ok := r.findNode(name)
	if !ok {
		return Stop{}, false
	}
	return n.stop, true
}

// FindByID returns the stop with the given id, if present.
func (r *Route) FindByID(id int) (Stop, bool) {
	n, ok := r.nodes[id]
	if !ok {
		return Stop{}, false
	}
	return n.stop, true
}

// InsertEnd appends a new stop after the current last stop, immediately
// before the designated first. On an empty route the stop becomes the sole
// element, its own successor and predecessor.
func (r *Route) InsertEnd(d StopDetails) Stop {
	n := r.mint(d)
	r.linkBeforeFirst(n)
	return n.stop
}

// InsertAfter splices a new stop immediately after the first stop matching
// the given name. When no stop matches, the new stop is appended at the end
// instead; the second result reports whether the anchor was found. The
// fallback keeps a mistyped anchor from losing the insertion.
func (r *Route) InsertAfter(after string, d StopDetails) (Stop, bool) {
	anchor, ok := r.findNode(after)
	if !ok {
		return r.InsertEnd(d), false
	}
	n := r.mint(d)
	r.linkAfter(anchor, n)
	return n.stop, true
}

// InsertAt places a new stop at a 1-based position counted from the
// designated first stop. Position 1 (or lower) makes the new stop the
// designated first; a position beyond the current length appends at the end;
// anything else lands the stop exactly at that position, shifting the
// previous occupant forward.
func (r *Route) InsertAt(pos int, d StopDetails) Stop {
	if r.first == 0 || pos <= 1 {
		n := r.mint(d)
		r.linkBeforeFirst(n)
		r.first = n.stop.ID
		return n.stop
	}

	// Walk to the stop currently at pos-1 and splice in after it.
	cur := r.nodes[r.first]
	for idx := 1; cur.next != r.first && idx < pos-1; idx++ {
		cur = r.nodes[cur.next]
	}
	n := r.mint(d)
	r.linkAfter(cur, n)
	return n.stop
}

// DeleteByName removes the first stop in ring order matching the given name,
// ignoring case. Deleting the designated first stop promotes its successor;
// deleting the sole remaining stop empties the route. Returns false without
// mutation when no stop matches.
func (r *Route) DeleteByName(name string) bool {
	n, ok := r.findNode(name)
	if !ok {
		return false
	}

	id := n.stop.ID
	if n.next == id {
		// sole stop, self-looped
		delete(r.nodes, id)
		r.first = 0
		return true
	}

	prev := r.nodes[n.prev]
	next := r.nodes[n.next]
	prev.next = n.next
	next.prev = n.prev
	if r.first == id {
		r.first = n.next
	}
	delete(r.nodes, id)
	return true
}

// Clear removes every stop. The id counter is not reset: ids stay unique for
// the lifetime of the route, so stops created after a clear can never collide
// with ids seen before it.
func (r *Route) Clear() {
	r.nodes = make(map[int]*node)
	r.first = 0
}

// Replace swaps the route's entire contents for the given sequence, appending
// each record in order with a freshly minted id. Ids carried by the records
// are ignored; reusing them could collide with stops created later.
func (r *Route) Replace(records []StopDetails) {
	r.Clear()
	for _, d := range records {
		r.InsertEnd(d)
	}
}

// Total sums every stop's outgoing edge weights over one full traversal of
// the ring. An empty route totals to zero.
func (r *Route) Total() Leg {
	var total Leg
	for s := range r.Stops() {
		total.DistanceKM += s.DistanceKM
		total.TimeMinutes += s.TimeMinutes
	}
	return total
}

// Between accumulates edge weights walking forward from the first stop
// matching from until reaching the first stop matching to, including the
// final edge into the target. Matching is case-insensitive. When either name
// resolves to nothing the result is ErrUnreachable; when both resolve to the
// same stop the result is a zero Leg with no traversal.
//
// On an intact ring a forward walk always reaches any other member stop, so
// returning to the start without hitting the target is reported as an
// InvariantError rather than ErrUnreachable.
func (r *Route) Between(from, to string) (Leg, error) {
	start, ok := r.findNode(from)
	if !ok {
		return Leg{}, fmt.Errorf("between %q and %q: %w", from, to, ErrUnreachable)
	}
	target, ok := r.findNode(to)
	if !ok {
		return Leg{}, fmt.Errorf("between %q and %q: %w", from, to, ErrUnreachable)
	}
	if start == target {
		return Leg{}, nil
	}

	var acc Leg
	cur := start
	for hops := 0; hops <= len(r.nodes); hops++ {
		acc.DistanceKM += cur.stop.DistanceKM
		acc.TimeMinutes += cur.stop.TimeMinutes
		next := r.nodes[cur.next]
		if next == nil {
			return Leg{}, &InvariantError{Op: "between", Detail: fmt.Sprintf("dangling successor id %d after %q", cur.next, cur.stop.Name)}
		}
		cur = next
		if cur == target {
			return acc, nil
		}
		if cur == start {
			return Leg{}, &InvariantError{
				Op:     "between",
				Detail: fmt.Sprintf("walked the full ring from %q without reaching %q", start.stop.Name, target.stop.Name),
			}
		}
	}
	return Leg{}, &InvariantError{Op: "between", Detail: "successor chain does not close"}
}

// mint allocates a stop with the next id and registers it in the arena,
// not yet linked into the ring.
func (r *Route) mint(d StopDetails) *node {
	n := &node{stop: Stop{
		ID:          r.nextID,
		Name:        d.Name,
		Passengers:  d.Passengers,
		DistanceKM:  d.DistanceKM,
		TimeMinutes: d.TimeMinutes,
	}}
	r.nextID++
	r.nodes[n.stop.ID] = n
	return n
}

// linkBeforeFirst attaches n between the current last stop and the designated
// first, making it the new last. On an empty route n becomes a self-loop.
func (r *Route) linkBeforeFirst(n *node) {
	if r.first == 0 {
		r.first = n.stop.ID
		n.next = n.stop.ID
		n.prev = n.stop.ID
		return
	}
	first := r.nodes[r.first]
	last := r.nodes[first.prev]
	n.prev = last.stop.ID
	n.next = r.first
	last.next = n.stop.ID
	first.prev = n.stop.ID
}

// linkAfter splices n immediately after anchor. Also correct when anchor is a
// self-looped sole stop.
func (r *Route) linkAfter(anchor, n *node) {
	next := r.nodes[anchor.next]
	n.prev = anchor.stop.ID
	n.next = next.stop.ID
	anchor.next = n.stop.ID
	next.prev = n.stop.ID
}

// findNode returns the first node in ring order whose stop name matches,
// ignoring case.
func (r *Route) findNode(name string) (*node, bool) {
	if r.first == 0 {
		return nil, false
	}
	id := r.first
	for {
		n := r.nodes[id]
		if strings.EqualFold(n.stop.Name, name) {
			return n, true
		}
		id = n.next
		if id == r.first {
			return nil, false
		}
	}
}
