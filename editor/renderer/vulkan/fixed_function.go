package vulkan

import (
	"errors"
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

// FixedFunction holds the create-info structures a renderer would chain into
// a vk.GraphicsPipelineCreateInfo for one pipeline record.
type FixedFunction struct {
	InputAssembly   vk.PipelineInputAssemblyStateCreateInfo
	Rasterization   vk.PipelineRasterizationStateCreateInfo
	DepthStencil    vk.PipelineDepthStencilStateCreateInfo
	Multisample     vk.PipelineMultisampleStateCreateInfo
	BlendAttachment vk.PipelineColorBlendAttachmentState
	ColorBlend      vk.PipelineColorBlendStateCreateInfo
}

var topologies = map[metadata.Topology]vk.PrimitiveTopology{
	metadata.TopologyPointList:                  vk.PrimitiveTopologyPointList,
	metadata.TopologyLineList:                   vk.PrimitiveTopologyLineList,
	metadata.TopologyLineStrip:                  vk.PrimitiveTopologyLineStrip,
	metadata.TopologyTriangleList:               vk.PrimitiveTopologyTriangleList,
	metadata.TopologyTriangleStrip:              vk.PrimitiveTopologyTriangleStrip,
	metadata.TopologyTriangleFan:                vk.PrimitiveTopologyTriangleFan,
	metadata.TopologyLineListWithAdjacency:      vk.PrimitiveTopologyLineListWithAdjacency,
	metadata.TopologyLineStripWithAdjacency:     vk.PrimitiveTopologyLineStripWithAdjacency,
	metadata.TopologyTriangleListWithAdjacency:  vk.PrimitiveTopologyTriangleListWithAdjacency,
	metadata.TopologyTriangleStripWithAdjacency: vk.PrimitiveTopologyTriangleStripWithAdjacency,
	metadata.TopologyPatchList:                  vk.PrimitiveTopologyPatchList,
}

var polygonModes = map[metadata.PolygonMode]vk.PolygonMode{
	metadata.PolygonModeFill:  vk.PolygonModeFill,
	metadata.PolygonModeLine:  vk.PolygonModeLine,
	metadata.PolygonModePoint: vk.PolygonModePoint,
}

var cullModes = map[metadata.CullMode]vk.CullModeFlagBits{
	metadata.CullModeNone:         vk.CullModeNone,
	metadata.CullModeFront:        vk.CullModeFrontBit,
	metadata.CullModeBack:         vk.CullModeBackBit,
	metadata.CullModeFrontAndBack: vk.CullModeFrontAndBack,
}

var frontFaces = map[metadata.FrontFace]vk.FrontFace{
	metadata.FrontFaceCounterClockwise: vk.FrontFaceCounterClockwise,
	metadata.FrontFaceClockwise:        vk.FrontFaceClockwise,
}

var compareOps = map[metadata.CompareOp]vk.CompareOp{
	metadata.CompareOpNever:          vk.CompareOpNever,
	metadata.CompareOpLess:           vk.CompareOpLess,
	metadata.CompareOpEqual:          vk.CompareOpEqual,
	metadata.CompareOpLessOrEqual:    vk.CompareOpLessOrEqual,
	metadata.CompareOpGreater:        vk.CompareOpGreater,
	metadata.CompareOpNotEqual:       vk.CompareOpNotEqual,
	metadata.CompareOpGreaterOrEqual: vk.CompareOpGreaterOrEqual,
	metadata.CompareOpAlways:         vk.CompareOpAlways,
}

var sampleCounts = map[metadata.SampleCount]vk.SampleCountFlagBits{
	metadata.SampleCount1:  vk.SampleCount1Bit,
	metadata.SampleCount2:  vk.SampleCount2Bit,
	metadata.SampleCount4:  vk.SampleCount4Bit,
	metadata.SampleCount8:  vk.SampleCount8Bit,
	metadata.SampleCount16: vk.SampleCount16Bit,
	metadata.SampleCount32: vk.SampleCount32Bit,
	metadata.SampleCount64: vk.SampleCount64Bit,
}

var blendFactors = map[metadata.BlendFactor]vk.BlendFactor{
	metadata.BlendFactorZero:                  vk.BlendFactorZero,
	metadata.BlendFactorOne:                   vk.BlendFactorOne,
	metadata.BlendFactorSrcColor:              vk.BlendFactorSrcColor,
	metadata.BlendFactorOneMinusSrcColor:      vk.BlendFactorOneMinusSrcColor,
	metadata.BlendFactorDstColor:              vk.BlendFactorDstColor,
	metadata.BlendFactorOneMinusDstColor:      vk.BlendFactorOneMinusDstColor,
	metadata.BlendFactorSrcAlpha:              vk.BlendFactorSrcAlpha,
	metadata.BlendFactorOneMinusSrcAlpha:      vk.BlendFactorOneMinusSrcAlpha,
	metadata.BlendFactorDstAlpha:              vk.BlendFactorDstAlpha,
	metadata.BlendFactorOneMinusDstAlpha:      vk.BlendFactorOneMinusDstAlpha,
	metadata.BlendFactorConstantColor:         vk.BlendFactorConstantColor,
	metadata.BlendFactorOneMinusConstantColor: vk.BlendFactorOneMinusConstantColor,
	metadata.BlendFactorConstantAlpha:         vk.BlendFactorConstantAlpha,
	metadata.BlendFactorOneMinusConstantAlpha: vk.BlendFactorOneMinusConstantAlpha,
	metadata.BlendFactorSrcAlphaSaturate:      vk.BlendFactorSrcAlphaSaturate,
}

var blendOps = map[metadata.BlendOp]vk.BlendOp{
	metadata.BlendOpAdd:             vk.BlendOpAdd,
	metadata.BlendOpSubtract:        vk.BlendOpSubtract,
	metadata.BlendOpReverseSubtract: vk.BlendOpReverseSubtract,
	metadata.BlendOpMin:             vk.BlendOpMin,
	metadata.BlendOpMax:             vk.BlendOpMax,
}

var logicOps = map[metadata.LogicOp]vk.LogicOp{
	metadata.LogicOpClear:        vk.LogicOpClear,
	metadata.LogicOpAnd:          vk.LogicOpAnd,
	metadata.LogicOpAndReverse:   vk.LogicOpAndReverse,
	metadata.LogicOpCopy:         vk.LogicOpCopy,
	metadata.LogicOpAndInverted:  vk.LogicOpAndInverted,
	metadata.LogicOpNoOp:         vk.LogicOpNoOp,
	metadata.LogicOpXor:          vk.LogicOpXor,
	metadata.LogicOpOr:           vk.LogicOpOr,
	metadata.LogicOpNor:          vk.LogicOpNor,
	metadata.LogicOpEquivalent:   vk.LogicOpEquivalent,
	metadata.LogicOpInvert:       vk.LogicOpInvert,
	metadata.LogicOpOrReverse:    vk.LogicOpOrReverse,
	metadata.LogicOpCopyInverted: vk.LogicOpCopyInverted,
	metadata.LogicOpOrInverted:   vk.LogicOpOrInverted,
	metadata.LogicOpNand:         vk.LogicOpNand,
	metadata.LogicOpSet:          vk.LogicOpSet,
}

// resolver collects every unknown name instead of stopping at the first.
type resolver struct {
	errs []error
}

func resolve[K ~string, V any](r *resolver, table map[K]V, family metadata.Family, name K) V {
	v, ok := table[name]
	if !ok {
		r.errs = append(r.errs, fmt.Errorf("%w: %s %q", core.ErrUnknownEnum, family, string(name)))
	}
	return v
}

func toBool32(b metadata.Bool) vk.Bool32 {
	if b {
		return vk.True
	}
	return vk.False
}

func colorWriteMask(m metadata.ColorWriteMask) vk.ColorComponentFlags {
	var flags vk.ColorComponentFlags
	if m.Has(metadata.ColorComponentR) {
		flags |= vk.ColorComponentFlags(vk.ColorComponentRBit)
	}
	if m.Has(metadata.ColorComponentG) {
		flags |= vk.ColorComponentFlags(vk.ColorComponentGBit)
	}
	if m.Has(metadata.ColorComponentB) {
		flags |= vk.ColorComponentFlags(vk.ColorComponentBBit)
	}
	if m.Has(metadata.ColorComponentA) {
		flags |= vk.ColorComponentFlags(vk.ColorComponentABit)
	}
	return flags
}

// FixedFunctionState translates a record into native Vulkan state. Every
// unknown enum name is reported, joined into one error wrapping
// core.ErrUnknownEnum, together with an out-of-range attachment count.
func FixedFunctionState(rec pipeline.Record) (*FixedFunction, error) {
	r := &resolver{}
	out := &FixedFunction{}

	out.InputAssembly = vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               resolve(r, topologies, metadata.FamilyTopology, rec.Topology),
		PrimitiveRestartEnable: toBool32(rec.PrimitiveRestart),
	}

	out.Rasterization = vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        toBool32(rec.DepthClamp),
		RasterizerDiscardEnable: toBool32(rec.RasterizerDiscard),
		PolygonMode:             resolve(r, polygonModes, metadata.FamilyPolygonMode, rec.PolygonMode),
		LineWidth:               float32(rec.LineWidth.Value()),
		CullMode:                vk.CullModeFlags(resolve(r, cullModes, metadata.FamilyCullMode, rec.CullMode)),
		FrontFace:               resolve(r, frontFaces, metadata.FamilyFrontFace, rec.FrontFace),
		DepthBiasEnable:         toBool32(rec.DepthBiasEnable),
		DepthBiasConstantFactor: float32(rec.DepthBiasConstant.Value()),
		DepthBiasClamp:          float32(rec.DepthBiasClamp.Value()),
		DepthBiasSlopeFactor:    float32(rec.DepthBiasSlope.Value()),
	}

	out.DepthStencil = vk.PipelineDepthStencilStateCreateInfo{
		SType:                 vk.StructureTypePipelineDepthStencilStateCreateInfo,
		DepthTestEnable:       toBool32(rec.DepthTest),
		DepthWriteEnable:      toBool32(rec.DepthWrite),
		DepthCompareOp:        resolve(r, compareOps, metadata.FamilyCompareOp, rec.DepthCompareOp),
		DepthBoundsTestEnable: toBool32(rec.DepthBoundsTest),
		MinDepthBounds:        float32(rec.DepthBoundsMin.Value()),
		MaxDepthBounds:        float32(rec.DepthBoundsMax.Value()),
		StencilTestEnable:     toBool32(rec.StencilTest),
	}

	out.Multisample = vk.PipelineMultisampleStateCreateInfo{
		SType:                 vk.StructureTypePipelineMultisampleStateCreateInfo,
		SampleShadingEnable:   toBool32(rec.SampleShading),
		RasterizationSamples:  resolve(r, sampleCounts, metadata.FamilySampleCount, rec.RasterizationSamples),
		MinSampleShading:      float32(rec.MinSampleShading.Value()),
		AlphaToCoverageEnable: toBool32(rec.AlphaToCoverage),
		AlphaToOneEnable:      toBool32(rec.AlphaToOne),
	}

	out.BlendAttachment = vk.PipelineColorBlendAttachmentState{
		BlendEnable:         toBool32(rec.BlendEnable),
		SrcColorBlendFactor: resolve(r, blendFactors, metadata.FamilyBlendFactor, rec.SrcColorBlendFactor),
		DstColorBlendFactor: resolve(r, blendFactors, metadata.FamilyBlendFactor, rec.DstColorBlendFactor),
		ColorBlendOp:        resolve(r, blendOps, metadata.FamilyBlendOp, rec.ColorBlendOp),
		SrcAlphaBlendFactor: resolve(r, blendFactors, metadata.FamilyBlendFactor, rec.SrcAlphaBlendFactor),
		DstAlphaBlendFactor: resolve(r, blendFactors, metadata.FamilyBlendFactor, rec.DstAlphaBlendFactor),
		AlphaBlendOp:        resolve(r, blendOps, metadata.FamilyBlendOp, rec.AlphaBlendOp),
		ColorWriteMask:      colorWriteMask(rec.ColorWriteMask),
	}

	// every attachment shares the single configured blend state
	var attachments []vk.PipelineColorBlendAttachmentState
	if err := rec.CheckRanges(); err != nil {
		r.errs = append(r.errs, err)
	} else {
		attachments = make([]vk.PipelineColorBlendAttachmentState, rec.AttachmentCount)
	}
	for i := range attachments {
		attachments[i] = out.BlendAttachment
	}
	out.ColorBlend = vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   toBool32(rec.LogicOpEnable),
		LogicOp:         resolve(r, logicOps, metadata.FamilyLogicOp, rec.LogicOp),
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
	}
	for i, c := range rec.BlendConstants {
		out.ColorBlend.BlendConstants[i] = float32(c.Value())
	}

	if len(r.errs) > 0 {
		err := errors.Join(r.errs...)
		core.LogError(err.Error())
		return nil, err
	}
	return out, nil
}
