package graph

import (
	"context"

	"github.com/vk/unitgridgo/internal/config"
	"github.com/vk/unitgridgo/internal/ctxlog"
)

// Build constructs a populated unit graph from a definition model.
//
// All units are declared before any relation, so the statement order inside
// a definition file does not matter. A relation naming a unit that appears
// nowhere in the model still fails with a DefinitionError.
func Build(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")

	g := New()
	for _, u := range model.Units {
		g.DeclareUnit(ctx, u.ID, u.LongName)
	}
	logger.Debug("Build: unit declaration complete.", "unit_count", g.Len())

	for _, r := range model.Relations {
		if err := g.DeclareRelation(ctx, r); err != nil {
			return nil, err
		}
	}
	logger.Debug("Build: relation declaration complete.", "relation_count", len(model.Relations))

	return g, nil
}
