// Package textdef loads the classic line-oriented definition format used by
// hand-edited convert.def style files.
package textdef

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vk/unitgridgo/internal/config"
	"github.com/vk/unitgridgo/internal/ctxlog"
)

// Loader reads the classic line-oriented definition format:
//
//	# comment
//	node <short_id> <long_name>
//	edge <unit_a> <factor> <unit_b> <INVERT|NOINVERT>
type Loader struct{}

// NewLoader creates a text definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the definition file at path into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading text definitions.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open definition file: %w", err)
	}
	defer f.Close()

	model := &config.Model{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		pos := config.Position{File: path, Line: lineNo}

		// Comment lines start with '#' in column one.
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "node":
			decl, err := parseNode(fields, pos)
			if err != nil {
				return nil, err
			}
			model.Units = append(model.Units, decl)
		case "edge":
			decl, err := parseEdge(fields, pos)
			if err != nil {
				return nil, err
			}
			model.Relations = append(model.Relations, decl)
		default:
			return nil, config.NewDefinitionError(pos, "invalid type in definition file: %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	logger.Debug("Text definitions loaded.",
		"path", path, "units", len(model.Units), "relations", len(model.Relations))
	return model, nil
}

// parseNode handles `node <short_id> <long_name>`. Tokens beyond the
// identifier are joined into the long name so descriptive names may contain
// spaces.
func parseNode(fields []string, pos config.Position) (*config.UnitDecl, error) {
	if len(fields) < 3 {
		return nil, config.NewDefinitionError(pos, "node declaration needs an identifier and a long name")
	}
	return &config.UnitDecl{
		ID:       fields[1],
		LongName: strings.Join(fields[2:], " "),
		Pos:      pos,
	}, nil
}

// parseEdge handles `edge <unit_a> <factor> <unit_b> <INVERT|NOINVERT>`.
func parseEdge(fields []string, pos config.Position) (*config.RelationDecl, error) {
	if len(fields) != 5 {
		return nil, config.NewDefinitionError(pos, "edge declaration needs unit, factor, unit and inversion flag")
	}

	factor, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, config.NewDefinitionError(pos, "invalid conversion factor %q", fields[2])
	}

	var invert bool
	switch fields[4] {
	case "INVERT":
		invert = true
	case "NOINVERT":
		invert = false
	default:
		return nil, config.NewDefinitionError(pos, "inversion flag must be INVERT or NOINVERT, got %q", fields[4])
	}

	return &config.RelationDecl{
		From:   fields[1],
		Factor: factor,
		To:     fields[3],
		Invert: invert,
		Pos:    pos,
	}, nil
}
