package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Pipelines []*PipelineBlock `hcl:"pipeline,block"`
}

// PipelineBlock is the raw form of a `pipeline "name" { ... }` block.
type PipelineBlock struct {
	Name     string         `hcl:"name,label"`
	SubGraph *string        `hcl:"sub_graph,optional"`
	Stages   hcl.Expression `hcl:"stages,optional"`
	Stage    []*StageBlock  `hcl:"stage,block"`
}

// StageBlock is the raw form of a `stage "label" { enabled = bool }` block.
type StageBlock struct {
	Label   string `hcl:"label,label"`
	Enabled bool   `hcl:"enabled"`
}
