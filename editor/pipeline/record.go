package pipeline

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/math"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

// Human labels of the shader inputs, as reported in missing-input notices.
const (
	LabelVertexShaderFile         = "Vertex Shader File"
	LabelFragmentShaderFile       = "Fragment Shader File"
	LabelVertexShaderEntryPoint   = "Vertex Shader Entry Function Name"
	LabelFragmentShaderEntryPoint = "Fragment Shader Entry Function Name"
)

const DefaultShaderEntryPoint = "main"

// Color attachment bounds; 8 is the maxColorAttachments most devices report.
const (
	MinAttachmentCount = 1
	MaxAttachmentCount = 8
)

// Record is the fixed-function configuration of one graphics pipeline plus
// its shader bindings. Field order follows the persisted schema; see schema.go.
type Record struct {
	// input assembly
	Topology         metadata.Topology
	PrimitiveRestart metadata.Bool

	// rasterizer
	DepthClamp        metadata.Bool
	RasterizerDiscard metadata.Bool
	PolygonMode       metadata.PolygonMode
	LineWidth         metadata.Float
	CullMode          metadata.CullMode
	FrontFace         metadata.FrontFace
	DepthBiasEnable   metadata.Bool
	DepthBiasSlope    metadata.Float
	DepthBiasConstant metadata.Float
	DepthBiasClamp    metadata.Float

	// depth and stencil
	DepthTest       metadata.Bool
	DepthWrite      metadata.Bool
	DepthCompareOp  metadata.CompareOp
	DepthBoundsTest metadata.Bool
	DepthBoundsMin  metadata.Float
	DepthBoundsMax  metadata.Float
	StencilTest     metadata.Bool

	// multisampling
	SampleShading        metadata.Bool
	RasterizationSamples metadata.SampleCount
	MinSampleShading     metadata.Float
	AlphaToCoverage      metadata.Bool
	AlphaToOne           metadata.Bool

	// color blend attachment
	ColorWriteMask      metadata.ColorWriteMask
	BlendEnable         metadata.Bool
	SrcColorBlendFactor metadata.BlendFactor
	DstColorBlendFactor metadata.BlendFactor
	ColorBlendOp        metadata.BlendOp
	SrcAlphaBlendFactor metadata.BlendFactor
	DstAlphaBlendFactor metadata.BlendFactor
	AlphaBlendOp        metadata.BlendOp

	// global color blending
	LogicOpEnable   metadata.Bool
	LogicOp         metadata.LogicOp
	AttachmentCount uint32
	BlendConstants  [4]metadata.Float

	// shaders
	VertexShaderPath   string
	VertexEntryPoint   string
	FragmentShaderPath string
	FragmentEntryPoint string

	// generation flags
	ReduceCodeSize     metadata.Bool
	UseIndexedVertices metadata.Bool
}

// DefaultRecord returns the values a freshly opened pipeline form starts with.
func DefaultRecord() Record {
	return Record{
		Topology:    metadata.TopologyTriangleList,
		PolygonMode: metadata.PolygonModeFill,
		LineWidth:   metadata.NewFloat(1),
		CullMode:    metadata.CullModeBack,
		FrontFace:   metadata.FrontFaceCounterClockwise,

		DepthBiasSlope:    metadata.NewFloat(0),
		DepthBiasConstant: metadata.NewFloat(0),
		DepthBiasClamp:    metadata.NewFloat(0),

		DepthTest:      true,
		DepthWrite:     true,
		DepthCompareOp: metadata.CompareOpLess,
		DepthBoundsMin: metadata.NewFloat(0),
		DepthBoundsMax: metadata.NewFloat(1),

		RasterizationSamples: metadata.SampleCount1,
		MinSampleShading:     metadata.NewFloat(1),

		ColorWriteMask:      metadata.ColorWriteMaskAll,
		SrcColorBlendFactor: metadata.BlendFactorOne,
		DstColorBlendFactor: metadata.BlendFactorZero,
		ColorBlendOp:        metadata.BlendOpAdd,
		SrcAlphaBlendFactor: metadata.BlendFactorOne,
		DstAlphaBlendFactor: metadata.BlendFactorZero,
		AlphaBlendOp:        metadata.BlendOpAdd,

		LogicOp:         metadata.LogicOpCopy,
		AttachmentCount: 1,
		BlendConstants: [4]metadata.Float{
			metadata.NewFloat(0), metadata.NewFloat(0), metadata.NewFloat(0), metadata.NewFloat(0),
		},

		VertexEntryPoint:   DefaultShaderEntryPoint,
		FragmentEntryPoint: DefaultShaderEntryPoint,
	}
}

// Validate lists every empty shader input. All four are checked so one pass
// reports everything.
func (r Record) Validate(displayName string) []core.MissingField {
	var missing []core.MissingField
	check := func(value, label string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, core.MissingField{Pipeline: displayName, Field: label})
		}
	}
	check(r.VertexShaderPath, LabelVertexShaderFile)
	check(r.FragmentShaderPath, LabelFragmentShaderFile)
	check(r.VertexEntryPoint, LabelVertexShaderEntryPoint)
	check(r.FragmentEntryPoint, LabelFragmentShaderEntryPoint)
	return missing
}

// CheckRanges reports numeric fields the generated project cannot accept.
func (r Record) CheckRanges() error {
	if !math.InRange(r.AttachmentCount, MinAttachmentCount, MaxAttachmentCount) {
		return fmt.Errorf("attachment count %d out of range [%d, %d]", r.AttachmentCount, MinAttachmentCount, MaxAttachmentCount)
	}
	return nil
}

// Equal is full structural equality. Floats compare by value, so "1,5" and
// "1.5" are the same line width.
func (r Record) Equal(other Record) bool {
	return r.canonical() == other.canonical()
}

func (r Record) canonical() Record {
	c := r
	c.LineWidth = metadata.NewFloat(r.LineWidth.Value())
	c.DepthBiasSlope = metadata.NewFloat(r.DepthBiasSlope.Value())
	c.DepthBiasConstant = metadata.NewFloat(r.DepthBiasConstant.Value())
	c.DepthBiasClamp = metadata.NewFloat(r.DepthBiasClamp.Value())
	c.DepthBoundsMin = metadata.NewFloat(r.DepthBoundsMin.Value())
	c.DepthBoundsMax = metadata.NewFloat(r.DepthBoundsMax.Value())
	c.MinSampleShading = metadata.NewFloat(r.MinSampleShading.Value())
	for i := range c.BlendConstants {
		c.BlendConstants[i] = metadata.NewFloat(r.BlendConstants[i].Value())
	}
	return c
}
