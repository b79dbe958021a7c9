package app

import (
	"context"
	"fmt"

	"github.com/vk/unitgridgo/internal/converter"
	"github.com/vk/unitgridgo/internal/ctxlog"
	"github.com/vk/unitgridgo/internal/fsutil"
	"github.com/vk/unitgridgo/internal/graph"
)

// Run executes one invocation: resolve the definition file, build the unit
// graph, then either print the unit listing or perform the conversion.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	defsPath, err := fsutil.LocateDefinitions(ctx, a.config.DefsPath)
	if err != nil {
		return err
	}

	model, err := a.loaderFor(defsPath).Load(ctx, defsPath)
	if err != nil {
		return err
	}

	g, err := graph.Build(ctx, model)
	if err != nil {
		return err
	}
	a.logger.Debug("Unit graph built.", "unit_count", g.Len())

	if a.config.List {
		a.printListing(defsPath, g)
		return nil
	}

	result, err := converter.Convert(ctx, g, a.config.Value, a.config.FromUnit, a.config.ToUnit)
	if err != nil {
		return err
	}

	// Both numbers are printed with 8 significant digits.
	fmt.Fprintf(a.outW, " %.8g %s = %.8g %s\n",
		a.config.Value, a.config.FromUnit, result, a.config.ToUnit)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printListing prints the usage reminder, the active definition file and the
// declared units, identifier left-aligned in a 12-character column.
func (a *App) printListing(defsPath string, g *graph.Graph) {
	fmt.Fprintln(a.outW, " unitgridgo: unit conversions")
	fmt.Fprintf(a.outW, " Current definition file is %s\n", defsPath)
	fmt.Fprintln(a.outW, " use: unitgridgo [options] <value> <from_unit> <to_unit>")
	fmt.Fprintln(a.outW, " allowed units are:")
	for _, u := range g.Units() {
		fmt.Fprintf(a.outW, " %-12s%s\n", u.ID, u.LongName)
	}
}
