package preview

import (
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

// Params is what the preview renderer consumes for one pipeline. Flags are
// already decoded to real booleans.
type Params struct {
	Topology         Value
	DepthClamp       bool
	PolygonMode      Value
	LineWidth        float32
	CullMode         Value
	FrontFace        Value
	DepthTest        bool
	DepthWrite       Value
	DepthCompareOp   Value
	SampleShading    bool
	SampleCount      Value
	ColorMask        [4]bool
	BlendEnable      bool
	SrcColorFactor   Value
	DstColorFactor   Value
	ColorBlendOp     Value
	LogicOpEnable    bool
	LogicOp          Value
	BlendConstants   [4]float32
	MinSampleShading float32
}

// CullEnabled reports whether the preview should enable face culling at all.
func (p Params) CullEnabled() bool {
	return p.CullMode != glNone
}

// ParamsFor builds the preview input of a record.
func ParamsFor(r pipeline.Record) Params {
	p := Params{
		Topology:         ToPreviewValue(metadata.FamilyTopology, string(r.Topology)),
		DepthClamp:       bool(r.DepthClamp),
		PolygonMode:      ToPreviewValue(metadata.FamilyPolygonMode, string(r.PolygonMode)),
		LineWidth:        float32(r.LineWidth.Value()),
		CullMode:         ToPreviewValue(metadata.FamilyCullMode, string(r.CullMode)),
		FrontFace:        ToPreviewValue(metadata.FamilyFrontFace, string(r.FrontFace)),
		DepthTest:        bool(r.DepthTest),
		DepthWrite:       glBool(r.DepthWrite),
		DepthCompareOp:   ToPreviewValue(metadata.FamilyCompareOp, string(r.DepthCompareOp)),
		SampleShading:    bool(r.SampleShading),
		SampleCount:      ToPreviewValue(metadata.FamilySampleCount, string(r.RasterizationSamples)),
		ColorMask:        ColorMask(r.ColorWriteMask),
		BlendEnable:      bool(r.BlendEnable),
		SrcColorFactor:   ToPreviewValue(metadata.FamilyBlendFactor, string(r.SrcColorBlendFactor)),
		DstColorFactor:   ToPreviewValue(metadata.FamilyBlendFactor, string(r.DstColorBlendFactor)),
		ColorBlendOp:     ToPreviewValue(metadata.FamilyBlendOp, string(r.ColorBlendOp)),
		LogicOpEnable:    bool(r.LogicOpEnable),
		LogicOp:          ToPreviewValue(metadata.FamilyLogicOp, string(r.LogicOp)),
		MinSampleShading: float32(r.MinSampleShading.Value()),
	}
	for i, c := range r.BlendConstants {
		p.BlendConstants[i] = float32(c.Value())
	}
	return p
}
