// Package yamldef loads unit definitions written in YAML:
//
//	units:
//	  - id: meV
//	    name: milli-electron-volt
//	relations:
//	  - {from: meV, factor: 0.001, to: eV}
//	  - {from: A, factor: 2.0, to: B, invert: true}
package yamldef

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/unitgridgo/internal/config"
	"github.com/vk/unitgridgo/internal/ctxlog"
)

// yamlDefFile is the top-level structure of a YAML definition file.
type yamlDefFile struct {
	Units     []yamlUnit     `yaml:"units"`
	Relations []yamlRelation `yaml:"relations"`
}

type yamlUnit struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type yamlRelation struct {
	From   string  `yaml:"from"`
	Factor float64 `yaml:"factor"`
	To     string  `yaml:"to"`
	Invert bool    `yaml:"invert"`
}

// Loader reads unit definitions written in YAML.
type Loader struct{}

// NewLoader creates a YAML definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the YAML file at path and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML definitions.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open definition file: %w", err)
	}

	var parsed yamlDefFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	pos := config.Position{File: path}
	model := &config.Model{}
	for _, u := range parsed.Units {
		if u.ID == "" {
			return nil, config.NewDefinitionError(pos, "unit entry is missing an id")
		}
		model.Units = append(model.Units, &config.UnitDecl{
			ID:       u.ID,
			LongName: u.Name,
			Pos:      pos,
		})
	}
	for _, r := range parsed.Relations {
		if r.From == "" || r.To == "" {
			return nil, config.NewDefinitionError(pos, "relation entry needs both from and to units")
		}
		model.Relations = append(model.Relations, &config.RelationDecl{
			From:   r.From,
			Factor: r.Factor,
			To:     r.To,
			Invert: r.Invert,
			Pos:    pos,
		})
	}

	logger.Debug("YAML definitions loaded.",
		"path", path, "units", len(model.Units), "relations", len(model.Relations))
	return model, nil
}
