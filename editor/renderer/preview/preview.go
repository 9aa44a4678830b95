// Package preview translates pipeline settings into the OpenGL subset the
// editor's live preview draws with. Every lookup is total: names the preview
// cannot show map to InvalidEnum (or -1 for sample counts) so a bad value
// degrades the preview instead of failing it.
package preview

import (
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

// Value is an OpenGL enum or, for sample counts, a plain number.
type Value int32

// InvalidEnum is GL_INVALID_ENUM.
const InvalidEnum Value = 0x0500

// UnknownSampleCount is returned for sample counts outside the table.
const UnknownSampleCount Value = -1

const (
	glZero  Value = 0
	glOne   Value = 1
	glNone  Value = 0
	glFalse Value = 0
	glTrue  Value = 1

	glPoints                 Value = 0x0000
	glLines                  Value = 0x0001
	glLineStrip              Value = 0x0003
	glTriangles              Value = 0x0004
	glTriangleStrip          Value = 0x0005
	glTriangleFan            Value = 0x0006
	glLinesAdjacency         Value = 0x000A
	glLineStripAdjacency     Value = 0x000B
	glTrianglesAdjacency     Value = 0x000C
	glTriangleStripAdjacency Value = 0x000D
	glPatches                Value = 0x000E

	glPoint Value = 0x1B00
	glLine  Value = 0x1B01
	glFill  Value = 0x1B02

	glFront        Value = 0x0404
	glBack         Value = 0x0405
	glFrontAndBack Value = 0x0408

	glCW  Value = 0x0900
	glCCW Value = 0x0901

	glNever    Value = 0x0200
	glLess     Value = 0x0201
	glEqual    Value = 0x0202
	glLEqual   Value = 0x0203
	glGreater  Value = 0x0204
	glNotEqual Value = 0x0205
	glGEqual   Value = 0x0206
	glAlways   Value = 0x0207

	glSrcColor              Value = 0x0300
	glOneMinusSrcColor      Value = 0x0301
	glSrcAlpha              Value = 0x0302
	glOneMinusSrcAlpha      Value = 0x0303
	glDstAlpha              Value = 0x0304
	glOneMinusDstAlpha      Value = 0x0305
	glDstColor              Value = 0x0306
	glOneMinusDstColor      Value = 0x0307
	glSrcAlphaSaturate      Value = 0x0308
	glConstantColor         Value = 0x8001
	glOneMinusConstantColor Value = 0x8002
	glConstantAlpha         Value = 0x8003
	glOneMinusConstantAlpha Value = 0x8004

	glFuncAdd             Value = 0x8006
	glMin                 Value = 0x8007
	glMax                 Value = 0x8008
	glFuncSubtract        Value = 0x800A
	glFuncReverseSubtract Value = 0x800B

	glClear        Value = 0x1500
	glAnd          Value = 0x1501
	glAndReverse   Value = 0x1502
	glCopy         Value = 0x1503
	glAndInverted  Value = 0x1504
	glNoop         Value = 0x1505
	glXor          Value = 0x1506
	glOr           Value = 0x1507
	glNor          Value = 0x1508
	glEquiv        Value = 0x1509
	glInvert       Value = 0x150A
	glOrReverse    Value = 0x150B
	glCopyInverted Value = 0x150C
	glOrInverted   Value = 0x150D
	glNand         Value = 0x150E
	glSet          Value = 0x150F
)

type entry struct {
	name  string
	value Value
}

// Ordered so the reverse lookup is deterministic where GL reuses a value.
var tables = map[metadata.Family][]entry{
	metadata.FamilyTopology: {
		{string(metadata.TopologyPointList), glPoints},
		{string(metadata.TopologyLineList), glLines},
		{string(metadata.TopologyLineStrip), glLineStrip},
		{string(metadata.TopologyTriangleList), glTriangles},
		{string(metadata.TopologyTriangleStrip), glTriangleStrip},
		{string(metadata.TopologyTriangleFan), glTriangleFan},
		{string(metadata.TopologyLineListWithAdjacency), glLinesAdjacency},
		{string(metadata.TopologyLineStripWithAdjacency), glLineStripAdjacency},
		{string(metadata.TopologyTriangleListWithAdjacency), glTrianglesAdjacency},
		{string(metadata.TopologyTriangleStripWithAdjacency), glTriangleStripAdjacency},
		{string(metadata.TopologyPatchList), glPatches},
	},
	metadata.FamilyPolygonMode: {
		{string(metadata.PolygonModeFill), glFill},
		{string(metadata.PolygonModeLine), glLine},
		{string(metadata.PolygonModePoint), glPoint},
	},
	metadata.FamilyCullMode: {
		{string(metadata.CullModeNone), glNone},
		{string(metadata.CullModeFront), glFront},
		{string(metadata.CullModeBack), glBack},
		{string(metadata.CullModeFrontAndBack), glFrontAndBack},
	},
	metadata.FamilyFrontFace: {
		{string(metadata.FrontFaceCounterClockwise), glCCW},
		{string(metadata.FrontFaceClockwise), glCW},
	},
	metadata.FamilyCompareOp: {
		{string(metadata.CompareOpNever), glNever},
		{string(metadata.CompareOpLess), glLess},
		{string(metadata.CompareOpEqual), glEqual},
		{string(metadata.CompareOpLessOrEqual), glLEqual},
		{string(metadata.CompareOpGreater), glGreater},
		{string(metadata.CompareOpNotEqual), glNotEqual},
		{string(metadata.CompareOpGreaterOrEqual), glGEqual},
		{string(metadata.CompareOpAlways), glAlways},
	},
	metadata.FamilySampleCount: {
		{string(metadata.SampleCount1), 1},
		{string(metadata.SampleCount2), 2},
		{string(metadata.SampleCount4), 4},
		{string(metadata.SampleCount8), 8},
		{string(metadata.SampleCount16), 16},
		{string(metadata.SampleCount32), 32},
		{string(metadata.SampleCount64), 64},
	},
	metadata.FamilyBlendFactor: {
		{string(metadata.BlendFactorZero), glZero},
		{string(metadata.BlendFactorOne), glOne},
		{string(metadata.BlendFactorSrcColor), glSrcColor},
		{string(metadata.BlendFactorOneMinusSrcColor), glOneMinusSrcColor},
		{string(metadata.BlendFactorDstColor), glDstColor},
		{string(metadata.BlendFactorOneMinusDstColor), glOneMinusDstColor},
		{string(metadata.BlendFactorSrcAlpha), glSrcAlpha},
		{string(metadata.BlendFactorOneMinusSrcAlpha), glOneMinusSrcAlpha},
		{string(metadata.BlendFactorDstAlpha), glDstAlpha},
		{string(metadata.BlendFactorOneMinusDstAlpha), glOneMinusDstAlpha},
		{string(metadata.BlendFactorConstantColor), glConstantColor},
		{string(metadata.BlendFactorOneMinusConstantColor), glOneMinusConstantColor},
		{string(metadata.BlendFactorConstantAlpha), glConstantAlpha},
		{string(metadata.BlendFactorOneMinusConstantAlpha), glOneMinusConstantAlpha},
		{string(metadata.BlendFactorSrcAlphaSaturate), glSrcAlphaSaturate},
	},
	metadata.FamilyBlendOp: {
		{string(metadata.BlendOpAdd), glFuncAdd},
		{string(metadata.BlendOpSubtract), glFuncSubtract},
		{string(metadata.BlendOpReverseSubtract), glFuncReverseSubtract},
		{string(metadata.BlendOpMin), glMin},
		{string(metadata.BlendOpMax), glMax},
	},
	metadata.FamilyLogicOp: {
		{string(metadata.LogicOpClear), glClear},
		{string(metadata.LogicOpAnd), glAnd},
		{string(metadata.LogicOpAndReverse), glAndReverse},
		{string(metadata.LogicOpCopy), glCopy},
		{string(metadata.LogicOpAndInverted), glAndInverted},
		{string(metadata.LogicOpNoOp), glNoop},
		{string(metadata.LogicOpXor), glXor},
		{string(metadata.LogicOpOr), glOr},
		{string(metadata.LogicOpNor), glNor},
		{string(metadata.LogicOpEquivalent), glEquiv},
		{string(metadata.LogicOpInvert), glInvert},
		{string(metadata.LogicOpOrReverse), glOrReverse},
		{string(metadata.LogicOpCopyInverted), glCopyInverted},
		{string(metadata.LogicOpOrInverted), glOrInverted},
		{string(metadata.LogicOpNand), glNand},
		{string(metadata.LogicOpSet), glSet},
	},
}

// ToPreviewValue maps a canonical Vulkan name to its preview value. It never
// fails: unknown names, unknown families and the empty string all land on the
// family's fallback.
func ToPreviewValue(family metadata.Family, name string) Value {
	for _, e := range tables[family] {
		if e.name == name {
			return e.value
		}
	}
	if family == metadata.FamilySampleCount {
		return UnknownSampleCount
	}
	return InvalidEnum
}

// FromPreviewValue is the reverse lookup. It returns the first canonical name
// in table order that maps to v.
func FromPreviewValue(family metadata.Family, v Value) (string, bool) {
	for _, e := range tables[family] {
		if e.value == v {
			return e.name, true
		}
	}
	return "", false
}

// ColorMask spreads a write mask into the four glColorMask flags.
func ColorMask(mask metadata.ColorWriteMask) [4]bool {
	return [4]bool{
		mask.Has(metadata.ColorComponentR),
		mask.Has(metadata.ColorComponentG),
		mask.Has(metadata.ColorComponentB),
		mask.Has(metadata.ColorComponentA),
	}
}

// glBool converts a model flag to GL_TRUE/GL_FALSE.
func glBool(b metadata.Bool) Value {
	if b {
		return glTrue
	}
	return glFalse
}
