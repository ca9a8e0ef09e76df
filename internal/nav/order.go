// Package nav defines the fixed tab order used by swipe navigation and the
// jump command.
package nav

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Order is a fixed, read-only sequence of route identifiers. Routes outside
// the order (detail screens and the like) are not swipeable. Stepping never
// wraps around the edges.
type Order struct {
	routes []string
	index  map[string]int
}

func NewOrder(routes ...string) Order {
	idx := make(map[string]int, len(routes))
	for i, r := range routes {
		idx[r] = i
	}
	return Order{routes: slices.Clone(routes), index: idx}
}

func (o Order) Len() int { return len(o.routes) }

func (o Order) Routes() []string { return slices.Clone(o.routes) }

// IndexOf returns the position of id in the order, or -1 when absent.
func (o Order) IndexOf(id string) int {
	if i, ok := o.index[id]; ok {
		return i
	}
	return -1
}

// Prev returns the route before id. ok is false at the left edge and for
// routes outside the order.
func (o Order) Prev(id string) (string, bool) {
	i := o.IndexOf(id)
	if i <= 0 {
		return "", false
	}
	return o.routes[i-1], true
}

// Next returns the route after id. ok is false at the right edge and for
// routes outside the order.
func (o Order) Next(id string) (string, bool) {
	i := o.IndexOf(id)
	if i < 0 || i >= len(o.routes)-1 {
		return "", false
	}
	return o.routes[i+1], true
}

// ResolveApprox matches user input to a route: exact match first, then a
// unique prefix, then the closest route within two edits.
func (o Order) ResolveApprox(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}
	if _, ok := o.index[in]; ok {
		return in, true
	}
	var prefixed []string
	for _, r := range o.routes {
		if strings.HasPrefix(r, in) {
			prefixed = append(prefixed, r)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], true
	}
	best := ""
	bestDist := 3
	for _, r := range o.routes {
		if d := levenshtein.ComputeDistance(in, r); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, best != ""
}
