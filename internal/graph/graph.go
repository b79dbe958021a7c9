package graph

import (
	"context"

	"github.com/vk/unitgridgo/internal/config"
	"github.com/vk/unitgridgo/internal/ctxlog"
)

// Unit is a single named measurement unit acting as a graph node. The
// identifier is the unique, case-sensitive key; the long name is descriptive
// only. Units are immutable once declared, except for the relation list that
// grows while the graph is being populated.
type Unit struct {
	ID       string
	LongName string

	// relations holds the outgoing conversion links in reverse declaration
	// order: new relations are prepended, and the converter walks them in
	// this order. Changing the order changes which path wins on ambiguous
	// graphs, so it is part of the observable behavior.
	relations []Relation
}

// Relations returns the unit's outgoing relations in traversal order.
func (u *Unit) Relations() []Relation {
	return u.relations
}

// Relation is a directed conversion link to another unit. With Invert false
// a value is multiplied by Factor when the relation is walked; with Invert
// true the Factor is divided by the value instead.
type Relation struct {
	To     *Unit
	Factor float64
	Invert bool
}

// Graph is the set of all declared units and their relations. It is built
// once from a definition model and then queried; it carries no per-query
// state, so sequential conversions may share one instance.
type Graph struct {
	// units maps identifiers to nodes for O(1) lookup.
	units map[string]*Unit
	// order keeps declaration order for stable listing output.
	order []*Unit
}

// New creates an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		units: make(map[string]*Unit),
	}
}

// DeclareUnit adds a unit to the graph. A duplicate identifier is not an
// error: the declaration is ignored with a warning and the original unit is
// retained.
func (g *Graph) DeclareUnit(ctx context.Context, id, longName string) {
	if _, ok := g.units[id]; ok {
		ctxlog.FromContext(ctx).Warn("Unit is already defined, ignoring duplicate declaration.", "unit", id)
		return
	}

	u := &Unit{ID: id, LongName: longName}
	g.units[id] = u
	g.order = append(g.order, u)
}

// DeclareRelation adds the bidirectional pair of relations described by the
// declaration. The reverse relation mirrors the forward one: a NOINVERT
// factor f becomes 1/f, while an INVERT factor stays f because x -> f/x is
// its own inverse.
func (g *Graph) DeclareRelation(ctx context.Context, decl *config.RelationDecl) error {
	if decl.Factor == 0 {
		return config.NewDefinitionError(decl.Pos, "conversion factor from %s to %s is zero", decl.From, decl.To)
	}
	if decl.From == decl.To {
		return config.NewDefinitionError(decl.Pos, "relation from %s to itself is not allowed", decl.From)
	}

	from, ok := g.units[decl.From]
	if !ok {
		return config.NewDefinitionError(decl.Pos, "relation references undeclared unit %q", decl.From)
	}
	to, ok := g.units[decl.To]
	if !ok {
		return config.NewDefinitionError(decl.Pos, "relation references undeclared unit %q", decl.To)
	}

	from.prepend(Relation{To: to, Factor: decl.Factor, Invert: decl.Invert})

	reverse := decl.Factor
	if !decl.Invert {
		reverse = 1.0 / decl.Factor
	}
	to.prepend(Relation{To: from, Factor: reverse, Invert: decl.Invert})

	ctxlog.FromContext(ctx).Debug("Relation declared.",
		"from", decl.From, "to", decl.To, "factor", decl.Factor, "invert", decl.Invert)
	return nil
}

// Find looks up a unit by its exact identifier. No case folding, no partial
// matching.
func (g *Graph) Find(id string) (*Unit, bool) {
	u, ok := g.units[id]
	return u, ok
}

// Units returns all declared units in declaration order.
func (g *Graph) Units() []*Unit {
	return g.order
}

// Len reports the number of declared units.
func (g *Graph) Len() int {
	return len(g.units)
}

func (u *Unit) prepend(r Relation) {
	u.relations = append([]Relation{r}, u.relations...)
}
