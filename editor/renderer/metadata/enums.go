package metadata

import "golang.org/x/exp/slices"

// Family identifies one closed vocabulary of canonical Vulkan enum names.
type Family int

const (
	FamilyTopology Family = iota
	FamilyPolygonMode
	FamilyCullMode
	FamilyFrontFace
	FamilyCompareOp
	FamilySampleCount
	FamilyBlendFactor
	FamilyBlendOp
	FamilyLogicOp
	FamilyImageUsage
	FamilyPresentMode
	FamilyFormat
	FamilyColorSpace
)

func (f Family) String() string {
	switch f {
	case FamilyTopology:
		return "topology"
	case FamilyPolygonMode:
		return "polygon mode"
	case FamilyCullMode:
		return "cull mode"
	case FamilyFrontFace:
		return "front face"
	case FamilyCompareOp:
		return "compare op"
	case FamilySampleCount:
		return "sample count"
	case FamilyBlendFactor:
		return "blend factor"
	case FamilyBlendOp:
		return "blend op"
	case FamilyLogicOp:
		return "logic op"
	case FamilyImageUsage:
		return "image usage"
	case FamilyPresentMode:
		return "present mode"
	case FamilyFormat:
		return "format"
	case FamilyColorSpace:
		return "color space"
	}
	return "unknown"
}

type (
	Topology    string
	PolygonMode string
	CullMode    string
	FrontFace   string
	CompareOp   string
	SampleCount string
	BlendFactor string
	BlendOp     string
	LogicOp     string
	ImageUsage  string
	PresentMode string
	Format      string
	ColorSpace  string
)

const (
	TopologyPointList                  Topology = "VK_PRIMITIVE_TOPOLOGY_POINT_LIST"
	TopologyLineList                   Topology = "VK_PRIMITIVE_TOPOLOGY_LINE_LIST"
	TopologyLineStrip                  Topology = "VK_PRIMITIVE_TOPOLOGY_LINE_STRIP"
	TopologyTriangleList               Topology = "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST"
	TopologyTriangleStrip              Topology = "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP"
	TopologyTriangleFan                Topology = "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN"
	TopologyLineListWithAdjacency      Topology = "VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY"
	TopologyLineStripWithAdjacency     Topology = "VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY"
	TopologyTriangleListWithAdjacency  Topology = "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY"
	TopologyTriangleStripWithAdjacency Topology = "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY"
	TopologyPatchList                  Topology = "VK_PRIMITIVE_TOPOLOGY_PATCH_LIST"
)

const (
	PolygonModeFill  PolygonMode = "VK_POLYGON_MODE_FILL"
	PolygonModeLine  PolygonMode = "VK_POLYGON_MODE_LINE"
	PolygonModePoint PolygonMode = "VK_POLYGON_MODE_POINT"
)

const (
	CullModeNone         CullMode = "VK_CULL_MODE_NONE"
	CullModeFront        CullMode = "VK_CULL_MODE_FRONT_BIT"
	CullModeBack         CullMode = "VK_CULL_MODE_BACK_BIT"
	CullModeFrontAndBack CullMode = "VK_CULL_MODE_FRONT_AND_BACK"
)

const (
	FrontFaceCounterClockwise FrontFace = "VK_FRONT_FACE_COUNTER_CLOCKWISE"
	FrontFaceClockwise        FrontFace = "VK_FRONT_FACE_CLOCKWISE"
)

const (
	CompareOpNever          CompareOp = "VK_COMPARE_OP_NEVER"
	CompareOpLess           CompareOp = "VK_COMPARE_OP_LESS"
	CompareOpEqual          CompareOp = "VK_COMPARE_OP_EQUAL"
	CompareOpLessOrEqual    CompareOp = "VK_COMPARE_OP_LESS_OR_EQUAL"
	CompareOpGreater        CompareOp = "VK_COMPARE_OP_GREATER"
	CompareOpNotEqual       CompareOp = "VK_COMPARE_OP_NOT_EQUAL"
	CompareOpGreaterOrEqual CompareOp = "VK_COMPARE_OP_GREATER_OR_EQUAL"
	CompareOpAlways         CompareOp = "VK_COMPARE_OP_ALWAYS"
)

const (
	SampleCount1  SampleCount = "VK_SAMPLE_COUNT_1_BIT"
	SampleCount2  SampleCount = "VK_SAMPLE_COUNT_2_BIT"
	SampleCount4  SampleCount = "VK_SAMPLE_COUNT_4_BIT"
	SampleCount8  SampleCount = "VK_SAMPLE_COUNT_8_BIT"
	SampleCount16 SampleCount = "VK_SAMPLE_COUNT_16_BIT"
	SampleCount32 SampleCount = "VK_SAMPLE_COUNT_32_BIT"
	SampleCount64 SampleCount = "VK_SAMPLE_COUNT_64_BIT"
)

const (
	BlendFactorZero                  BlendFactor = "VK_BLEND_FACTOR_ZERO"
	BlendFactorOne                   BlendFactor = "VK_BLEND_FACTOR_ONE"
	BlendFactorSrcColor              BlendFactor = "VK_BLEND_FACTOR_SRC_COLOR"
	BlendFactorOneMinusSrcColor      BlendFactor = "VK_BLEND_FACTOR_ONE_MINUS_SRC_COLOR"
	BlendFactorDstColor              BlendFactor = "VK_BLEND_FACTOR_DST_COLOR"
	BlendFactorOneMinusDstColor      BlendFactor = "VK_BLEND_FACTOR_ONE_MINUS_DST_COLOR"
	BlendFactorSrcAlpha              BlendFactor = "VK_BLEND_FACTOR_SRC_ALPHA"
	BlendFactorOneMinusSrcAlpha      BlendFactor = "VK_BLEND_FACTOR_ONE_MINUS_SRC_ALPHA"
	BlendFactorDstAlpha              BlendFactor = "VK_BLEND_FACTOR_DST_ALPHA"
	BlendFactorOneMinusDstAlpha      BlendFactor = "VK_BLEND_FACTOR_ONE_MINUS_DST_ALPHA"
	BlendFactorConstantColor         BlendFactor = "VK_BLEND_FACTOR_CONSTANT_COLOR"
	BlendFactorOneMinusConstantColor BlendFactor = "VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR"
	BlendFactorConstantAlpha         BlendFactor = "VK_BLEND_FACTOR_CONSTANT_ALPHA"
	BlendFactorOneMinusConstantAlpha BlendFactor = "VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA"
	BlendFactorSrcAlphaSaturate      BlendFactor = "VK_BLEND_FACTOR_SRC_ALPHA_SATURATE"
)

const (
	BlendOpAdd             BlendOp = "VK_BLEND_OP_ADD"
	BlendOpSubtract        BlendOp = "VK_BLEND_OP_SUBTRACT"
	BlendOpReverseSubtract BlendOp = "VK_BLEND_OP_REVERSE_SUBTRACT"
	BlendOpMin             BlendOp = "VK_BLEND_OP_MIN"
	BlendOpMax             BlendOp = "VK_BLEND_OP_MAX"
)

const (
	LogicOpClear        LogicOp = "VK_LOGIC_OP_CLEAR"
	LogicOpAnd          LogicOp = "VK_LOGIC_OP_AND"
	LogicOpAndReverse   LogicOp = "VK_LOGIC_OP_AND_REVERSE"
	LogicOpCopy         LogicOp = "VK_LOGIC_OP_COPY"
	LogicOpAndInverted  LogicOp = "VK_LOGIC_OP_AND_INVERTED"
	LogicOpNoOp         LogicOp = "VK_LOGIC_OP_NO_OP"
	LogicOpXor          LogicOp = "VK_LOGIC_OP_XOR"
	LogicOpOr           LogicOp = "VK_LOGIC_OP_OR"
	LogicOpNor          LogicOp = "VK_LOGIC_OP_NOR"
	LogicOpEquivalent   LogicOp = "VK_LOGIC_OP_EQUIVALENT"
	LogicOpInvert       LogicOp = "VK_LOGIC_OP_INVERT"
	LogicOpOrReverse    LogicOp = "VK_LOGIC_OP_OR_REVERSE"
	LogicOpCopyInverted LogicOp = "VK_LOGIC_OP_COPY_INVERTED"
	LogicOpOrInverted   LogicOp = "VK_LOGIC_OP_OR_INVERTED"
	LogicOpNand         LogicOp = "VK_LOGIC_OP_NAND"
	LogicOpSet          LogicOp = "VK_LOGIC_OP_SET"
)

const (
	ImageUsageColorAttachment        ImageUsage = "VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT"
	ImageUsageDepthStencilAttachment ImageUsage = "VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT"
	ImageUsageSampled                ImageUsage = "VK_IMAGE_USAGE_SAMPLED_BIT"
	ImageUsageTransferDst            ImageUsage = "VK_IMAGE_USAGE_TRANSFER_DST_BIT"
	ImageUsageTransferSrc            ImageUsage = "VK_IMAGE_USAGE_TRANSFER_SRC_BIT"
)

const (
	PresentModeImmediate   PresentMode = "VK_PRESENT_MODE_IMMEDIATE_KHR"
	PresentModeMailbox     PresentMode = "VK_PRESENT_MODE_MAILBOX_KHR"
	PresentModeFifo        PresentMode = "VK_PRESENT_MODE_FIFO_KHR"
	PresentModeFifoRelaxed PresentMode = "VK_PRESENT_MODE_FIFO_RELAXED_KHR"
)

const (
	FormatB8G8R8A8SRGB  Format = "VK_FORMAT_B8G8R8A8_SRGB"
	FormatR8G8B8A8SRGB  Format = "VK_FORMAT_R8G8B8A8_SRGB"
	FormatB8G8R8A8UNorm Format = "VK_FORMAT_B8G8R8A8_UNORM"
	FormatR8G8B8A8UNorm Format = "VK_FORMAT_R8G8B8A8_UNORM"
)

const (
	ColorSpaceSRGBNonlinear ColorSpace = "VK_COLORSPACE_SRGB_NONLINEAR_KHR"
)

// Ordered tables of every accepted name per family. These are what a form
// layer offers in its drop-downs.
var (
	Topologies = []Topology{
		TopologyPointList, TopologyLineList, TopologyLineStrip,
		TopologyTriangleList, TopologyTriangleStrip, TopologyTriangleFan,
		TopologyLineListWithAdjacency, TopologyLineStripWithAdjacency,
		TopologyTriangleListWithAdjacency, TopologyTriangleStripWithAdjacency,
		TopologyPatchList,
	}
	PolygonModes = []PolygonMode{PolygonModeFill, PolygonModeLine, PolygonModePoint}
	CullModes    = []CullMode{CullModeNone, CullModeFront, CullModeBack, CullModeFrontAndBack}
	FrontFaces   = []FrontFace{FrontFaceCounterClockwise, FrontFaceClockwise}
	CompareOps   = []CompareOp{
		CompareOpNever, CompareOpLess, CompareOpEqual, CompareOpLessOrEqual,
		CompareOpGreater, CompareOpNotEqual, CompareOpGreaterOrEqual, CompareOpAlways,
	}
	SampleCounts = []SampleCount{
		SampleCount1, SampleCount2, SampleCount4, SampleCount8,
		SampleCount16, SampleCount32, SampleCount64,
	}
	BlendFactors = []BlendFactor{
		BlendFactorZero, BlendFactorOne,
		BlendFactorSrcColor, BlendFactorOneMinusSrcColor,
		BlendFactorDstColor, BlendFactorOneMinusDstColor,
		BlendFactorSrcAlpha, BlendFactorOneMinusSrcAlpha,
		BlendFactorDstAlpha, BlendFactorOneMinusDstAlpha,
		BlendFactorConstantColor, BlendFactorOneMinusConstantColor,
		BlendFactorConstantAlpha, BlendFactorOneMinusConstantAlpha,
		BlendFactorSrcAlphaSaturate,
	}
	BlendOps = []BlendOp{BlendOpAdd, BlendOpSubtract, BlendOpReverseSubtract, BlendOpMin, BlendOpMax}
	LogicOps = []LogicOp{
		LogicOpClear, LogicOpAnd, LogicOpAndReverse, LogicOpCopy,
		LogicOpAndInverted, LogicOpNoOp, LogicOpXor, LogicOpOr,
		LogicOpNor, LogicOpEquivalent, LogicOpInvert, LogicOpOrReverse,
		LogicOpCopyInverted, LogicOpOrInverted, LogicOpNand, LogicOpSet,
	}
	ImageUsages = []ImageUsage{
		ImageUsageColorAttachment, ImageUsageDepthStencilAttachment,
		ImageUsageSampled, ImageUsageTransferDst, ImageUsageTransferSrc,
	}
	PresentModes = []PresentMode{PresentModeImmediate, PresentModeMailbox, PresentModeFifo, PresentModeFifoRelaxed}
	Formats      = []Format{FormatB8G8R8A8SRGB, FormatR8G8B8A8SRGB, FormatB8G8R8A8UNorm, FormatR8G8B8A8UNorm}
	ColorSpaces  = []ColorSpace{ColorSpaceSRGBNonlinear}
)

func (v Topology) Known() bool    { return slices.Contains(Topologies, v) }
func (v PolygonMode) Known() bool { return slices.Contains(PolygonModes, v) }
func (v CullMode) Known() bool    { return slices.Contains(CullModes, v) }
func (v FrontFace) Known() bool   { return slices.Contains(FrontFaces, v) }
func (v CompareOp) Known() bool   { return slices.Contains(CompareOps, v) }
func (v SampleCount) Known() bool { return slices.Contains(SampleCounts, v) }
func (v BlendFactor) Known() bool { return slices.Contains(BlendFactors, v) }
func (v BlendOp) Known() bool     { return slices.Contains(BlendOps, v) }
func (v LogicOp) Known() bool     { return slices.Contains(LogicOps, v) }
func (v ImageUsage) Known() bool  { return slices.Contains(ImageUsages, v) }
func (v PresentMode) Known() bool { return slices.Contains(PresentModes, v) }
func (v Format) Known() bool      { return slices.Contains(Formats, v) }
func (v ColorSpace) Known() bool  { return slices.Contains(ColorSpaces, v) }

// Names lists the canonical names of a family in table order.
func Names(f Family) []string {
	switch f {
	case FamilyTopology:
		return toStrings(Topologies)
	case FamilyPolygonMode:
		return toStrings(PolygonModes)
	case FamilyCullMode:
		return toStrings(CullModes)
	case FamilyFrontFace:
		return toStrings(FrontFaces)
	case FamilyCompareOp:
		return toStrings(CompareOps)
	case FamilySampleCount:
		return toStrings(SampleCounts)
	case FamilyBlendFactor:
		return toStrings(BlendFactors)
	case FamilyBlendOp:
		return toStrings(BlendOps)
	case FamilyLogicOp:
		return toStrings(LogicOps)
	case FamilyImageUsage:
		return toStrings(ImageUsages)
	case FamilyPresentMode:
		return toStrings(PresentModes)
	case FamilyFormat:
		return toStrings(Formats)
	case FamilyColorSpace:
		return toStrings(ColorSpaces)
	}
	return nil
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
