package converter

import (
	"context"

	"github.com/vk/unitgridgo/internal/ctxlog"
	"github.com/vk/unitgridgo/internal/graph"
)

// Convert translates value from one unit into another by depth-first search
// over the unit graph, composing the relation factors along the first path
// that reaches the destination.
//
// The visited set is local to the call, so the graph stays reusable across
// sequential conversions. The search stops as soon as the destination is
// reached; on graphs where several paths with differing composed factors
// connect the two units, the result is whichever path the relation ordering
// discovers first (see package graph).
func Convert(ctx context.Context, g *graph.Graph, value float64, fromID, toID string) (float64, error) {
	logger := ctxlog.FromContext(ctx)

	from, ok := g.Find(fromID)
	if !ok {
		return 0, &UnknownUnitError{ID: fromID}
	}
	to, ok := g.Find(toID)
	if !ok {
		return 0, &UnknownUnitError{ID: toID}
	}

	s := &search{
		target:  to,
		visited: make(map[*graph.Unit]bool, g.Len()),
	}
	result, found, err := s.walk(from, value)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, &UnreachableError{From: fromID, To: toID}
	}

	logger.Debug("Conversion complete.",
		"value", value, "from", fromID, "to", toID,
		"result", result, "units_visited", len(s.visited))
	return result, nil
}

// search carries the per-query state of one depth-first traversal. Each unit
// moves from unvisited to visited exactly once; no unit is revisited.
type search struct {
	target  *graph.Unit
	visited map[*graph.Unit]bool
}

// walk explores the graph from u with accumulated value acc. It returns the
// composed value and true once the target is reached; false means the whole
// reachable component was exhausted without finding it.
func (s *search) walk(u *graph.Unit, acc float64) (float64, bool, error) {
	if u == s.target {
		return acc, true, nil
	}
	s.visited[u] = true

	for _, rel := range u.Relations() {
		if s.visited[rel.To] {
			continue
		}

		var next float64
		if rel.Invert {
			if acc == 0 {
				return 0, false, &ZeroValueError{From: u.ID, To: rel.To.ID}
			}
			next = rel.Factor / acc
		} else {
			next = rel.Factor * acc
		}

		result, found, err := s.walk(rel.To, next)
		if err != nil || found {
			return result, found, err
		}
	}

	return 0, false, nil
}
