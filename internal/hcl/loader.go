package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/unitgridgo/internal/config"
	"github.com/vk/unitgridgo/internal/ctxlog"
)

// hclDefFile is the top-level structure of an HCL definition file.
type hclDefFile struct {
	Units     []*hclUnit     `hcl:"unit,block"`
	Relations []*hclRelation `hcl:"relation,block"`
}

// hclUnit is a `unit "<id>" { name = "..." }` block.
type hclUnit struct {
	ID   string `hcl:"id,label"`
	Name string `hcl:"name"`
}

// hclRelation is a `relation { from = ..., factor = ..., to = ... }` block.
// The factor stays an expression so definition files may use constant
// arithmetic like `factor = 1.0 / 137.036`.
type hclRelation struct {
	From   string         `hcl:"from"`
	Factor hcl.Expression `hcl:"factor"`
	To     string         `hcl:"to"`
	Invert bool           `hcl:"invert,optional"`
}

// Loader reads unit definitions written in HCL.
type Loader struct{}

// NewLoader creates an HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the HCL file at path and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL definitions.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclDefFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := &config.Model{}
	for _, u := range parsed.Units {
		model.Units = append(model.Units, &config.UnitDecl{
			ID:       u.ID,
			LongName: u.Name,
			Pos:      config.Position{File: path},
		})
	}
	for _, r := range parsed.Relations {
		decl, err := l.translateRelation(r, path)
		if err != nil {
			return nil, err
		}
		model.Relations = append(model.Relations, decl)
	}

	logger.Debug("HCL definitions loaded.",
		"path", path, "units", len(model.Units), "relations", len(model.Relations))
	return model, nil
}

// translateRelation evaluates the factor expression and converts the block
// into the agnostic model.
func (l *Loader) translateRelation(r *hclRelation, path string) (*config.RelationDecl, error) {
	pos := config.Position{File: path, Line: r.Factor.Range().Start.Line}

	val, diags := r.Factor.Value(nil)
	if diags.HasErrors() {
		return nil, config.NewDefinitionError(pos, "cannot evaluate factor: %s", diags.Error())
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil || num.IsNull() {
		return nil, config.NewDefinitionError(pos, "factor must be a number, got %s", val.Type().FriendlyName())
	}
	factor, _ := num.AsBigFloat().Float64()

	return &config.RelationDecl{
		From:   r.From,
		Factor: factor,
		To:     r.To,
		Invert: r.Invert,
		Pos:    pos,
	}, nil
}
