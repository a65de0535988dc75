package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/settings"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translatePipeline converts a raw pipeline block into the config model.
func translatePipeline(ctx context.Context, b *PipelineBlock, file string) (*config.Pipeline, error) {
	p := &config.Pipeline{Name: b.Name, Source: file}
	if b.SubGraph != nil {
		p.SubGraph = *b.SubGraph
	}

	stages, err := decodeStages(ctx, b.Stages)
	if err != nil {
		return nil, fmt.Errorf("in pipeline '%s' (%s): %w", b.Name, file, err)
	}

	for _, sb := range b.Stage {
		if v, dup := stages[sb.Label]; dup && v != sb.Enabled {
			return nil, fmt.Errorf("in pipeline '%s' (%s): stage '%s' is set to %t in stages but %t in its stage block", b.Name, file, sb.Label, v, sb.Enabled)
		}
		stages[sb.Label] = sb.Enabled
	}

	p.Stages = settings.New(stages)
	return p, nil
}

// decodeStages evaluates the `stages` attribute into a label->bool map. An
// omitted attribute yields an empty map.
func decodeStages(ctx context.Context, expr hcl.Expression) (map[string]bool, error) {
	out := make(map[string]bool)
	if !isExprDefined(ctx, expr, "stages") {
		return out, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid stages value: %w", diags)
	}
	if val.IsNull() {
		return out, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.Bool))
	if err != nil {
		return nil, fmt.Errorf("stages must be a map of stage label to bool: %w", err)
	}
	if !converted.IsWhollyKnown() {
		return nil, fmt.Errorf("stages must be known at load time")
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("failed to bind stages: %w", err)
	}
	return out, nil
}

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional attributes with zero-width
// expression objects, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	isDefined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
