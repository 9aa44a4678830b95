package header

import (
	"strings"
	"text/template"
)

var cppString = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func quote(s string) string {
	return `"` + cppString.Replace(s) + `"`
}

var tpl = template.Must(template.New("").Funcs(template.FuncMap{
	"quote": quote,
	"join":  strings.Join,
}).Parse(`
{{- define "header" -}}
// This header includes all changeable but constant variables for the VulkanProject Header.
// Change values here so the VulkanProject sources can stay untouched.
// DO NOT TOUCH THIS FILE. Any changes will be overridden on next save of Graphical Vulkan Editor.


#pragma once

namespace {{ .Namespace }} {

	// Instance
	const char* APPLICATION_NAME = {{ quote .Instance.ApplicationName }};
	const bool SHOW_VALIDATION_LAYER_DEBUG_INFO = {{ .Instance.ShowValidationLayerDebugInfo.Token }};
	const bool RUN_ON_MACOS = {{ .Instance.RunOnMacOS.Token }};

	// Physical Device
	const bool CHOOSE_GPU_ON_STARTUP = {{ .PhysicalDevice.ChooseGPUOnStartup.Token }};

	// Device
	const std::vector<const char*> DEVICE_EXTENSIONS {
		{{ join .Extensions ", " }}
	};

	// Swapchain
	const uint32_t WIDTH = {{ .Swapchain.Width }};
	const uint32_t HEIGHT = {{ .Swapchain.Height }};
	VkClearColorValue CLEAR_COLOR = { {
		{{- range $i, $c := .Swapchain.ClearColor }}{{ if $i }}, {{ end }}{{ $c.Literal }}{{ end -}}
	} };
	const int MAX_FRAMES_IN_FLIGHT = {{ .Swapchain.FramesInFlight }};
	const bool LOCK_WINDOW_SIZE = {{ .Swapchain.LockWindowSize.Token }};
	const VkImageUsageFlagBits IMAGE_USAGE = {{ .Swapchain.ImageUsage }};
	const VkPresentModeKHR PRESENTATION_MODE = {{ .Swapchain.PresentationMode }};
	const bool SAVE_ENERGY_FOR_MOBILE = {{ .Swapchain.SaveEnergyForMobile.Token }};
	const VkFormat IMAGE_FORMAT = {{ .Swapchain.ImageFormat }};
	const VkColorSpaceKHR IMAGE_COLOR_SPACE = {{ .Swapchain.ImageColorSpace }};

	// Model
	const std::string MODEL_FILE = {{ quote .Model.ModelFile }};
	const std::string TEXTURE_FILE = {{ quote .Model.TextureFile }};

	// Graphics Pipeline
	const bool USE_INDEXED_VERTICES = {{ .Graphics.UseIndexedVertices.Token }};
	const bool REDUCE_SPIRV_CODE_SIZE = {{ .Graphics.ReduceSpirvCodeSize.Token }};

{{ template "structs" }}

		// Functional Parameters
{{- range .Pipelines }}
{{ template "fixedFunction" . }}
{{- end }}

		// Shader Parameters
{{- range .Pipelines }}
{{ template "shaders" . }}
{{- end }}

		const std::vector<FixedFunctionStageParameters> PIPELINE_PARAMETERS{ {{ join .ParameterNames ", " }} };

		const std::vector<ShaderStageParameters> PIPELINE_SHADERS{ {{ join .ShaderNames ", " }} };

		const int PIPELINE_COUNT = PIPELINE_PARAMETERS.size();


	// To be implemented
	const bool MIPMAP_LEVEL = 0;
	const VkBool32 ENABLE_ANISOTRIPIC_FILTER = VK_TRUE;

}
{{ end }}

{{- define "structs" -}}
		// Pipeline
		struct FixedFunctionStageParameters {

			//////////////////////// INPUT ASSEMBLY
			const VkPrimitiveTopology inputAssemblyInfo_topology;
			const VkBool32 inputAssemblyInfo_primitiveRestartEnable;

			//////////////////////// RASTERIZER
			const VkBool32 rasterizerInfo_depthClampEnable;
			const VkBool32 rasterizerInfo_rasterizerDiscardEnable;
			const VkPolygonMode rasterizerInfo_polygonMode;
			const float rasterizerInfo_lineWidth;
			const VkCullModeFlagBits rasterizerInfo_cullMode;
			const VkFrontFace rasterizerInfo_frontFace;
			const VkBool32 rasterizerInfo_depthBiasEnable;
			const float rasterizerInfo_depthBiasConstantFactor;
			const float rasterizerInfo_depthBiasClamp;
			const float rasterizerInfo_depthBiasSlopeFactor;

			//////////////////////// DEPTH AND STENCIL
			const VkBool32 depthStencilInfo_depthTestEnable;
			const VkBool32 depthStencilInfo_depthWriteEnable;
			const VkCompareOp depthStencilInfo_depthCompareOp;
			const VkBool32 depthStencilInfo_depthBoundsTestEnable;
			const float depthStencilInfo_minDepthBounds;
			const float depthStencilInfo_maxDepthBounds;
			const VkBool32 depthStencilInfo_stencilTestEnable;

			//////////////////////// MULTISAMPLING
			const VkBool32 multisamplingInfo_sampleShadingEnable;
			const VkSampleCountFlagBits multisamplingInfo_rasterizationSamples;
			const float multisamplingInfo_minSampleShading;
			const VkBool32 multisamplingInfo_alphaToCoverageEnable;
			const VkBool32 multisamplingInfo_alphaToOneEnable;

			//////////////////////// COLOR BLENDING
			const VkColorComponentFlags colorBlendAttachment_colorWriteMask;
			const VkBool32 colorBlendAttachment_blendEnable;
			const VkBlendFactor colorBlendAttachment_srcColorBlendFactor;
			const VkBlendFactor colorBlendAttachment_dstColorBlendFactor;
			const VkBlendOp colorBlendAttachment_colorBlendOp;
			const VkBlendFactor colorBlendAttachment_srcAlphaBlendFactor;
			const VkBlendFactor colorBlendAttachment_dstAlphaBlendFactor;
			const VkBlendOp colorBlendAttachment_alphaBlendOp;

			const VkBool32 colorBlendingInfo_logicOpEnable;
			const VkLogicOp colorBlendingInfo_logicOp;
			const uint32_t colorBlendingInfo_attachmentCount;
			const float colorBlendingInfo_blendConstants_0;
			const float colorBlendingInfo_blendConstants_1;
			const float colorBlendingInfo_blendConstants_2;
			const float colorBlendingInfo_blendConstants_3;
		};
		struct ShaderStageParameters {
			const std::string vertexShaderText;
			const std::string fragmentShaderText;
			const char* vertexShaderEntryFunctionName;
			const char* fragmentShaderEntryFunctionName;
		};
{{- end }}

{{- define "fixedFunction" }}
		FixedFunctionStageParameters {{ .Ident }}{
			//////////////////////// INPUT ASSEMBLY
			{{ .R.Topology }}, // inputAssemblyInfo_topology
			{{ .R.PrimitiveRestart.Token }}, // inputAssemblyInfo_primitiveRestartEnable

			//////////////////////// RASTERIZER
			{{ .R.DepthClamp.Token }}, // rasterizerInfo_depthClampEnable
			{{ .R.RasterizerDiscard.Token }}, // rasterizerInfo_rasterizerDiscardEnable
			{{ .R.PolygonMode }}, // rasterizerInfo_polygonMode
			{{ .R.LineWidth.Literal }}, // rasterizerInfo_lineWidth
			{{ .R.CullMode }}, // rasterizerInfo_cullMode
			{{ .R.FrontFace }}, // rasterizerInfo_frontFace
			{{ .R.DepthBiasEnable.Token }}, // rasterizerInfo_depthBiasEnable
			{{ .R.DepthBiasConstant.Literal }}, // rasterizerInfo_depthBiasConstantFactor
			{{ .R.DepthBiasClamp.Literal }}, // rasterizerInfo_depthBiasClamp
			{{ .R.DepthBiasSlope.Literal }}, // rasterizerInfo_depthBiasSlopeFactor

			//////////////////////// DEPTH AND STENCIL
			{{ .R.DepthTest.Token }}, // depthStencilInfo_depthTestEnable
			{{ .R.DepthWrite.Token }}, // depthStencilInfo_depthWriteEnable
			{{ .R.DepthCompareOp }}, // depthStencilInfo_depthCompareOp
			{{ .R.DepthBoundsTest.Token }}, // depthStencilInfo_depthBoundsTestEnable
			{{ .R.DepthBoundsMin.Literal }}, // depthStencilInfo_minDepthBounds
			{{ .R.DepthBoundsMax.Literal }}, // depthStencilInfo_maxDepthBounds
			{{ .R.StencilTest.Token }}, // depthStencilInfo_stencilTestEnable

			//////////////////////// MULTISAMPLING
			{{ .R.SampleShading.Token }}, // multisamplingInfo_sampleShadingEnable
			{{ .R.RasterizationSamples }}, // multisamplingInfo_rasterizationSamples
			{{ .R.MinSampleShading.Literal }}, // multisamplingInfo_minSampleShading
			{{ .R.AlphaToCoverage.Token }}, // multisamplingInfo_alphaToCoverageEnable
			{{ .R.AlphaToOne.Token }}, // multisamplingInfo_alphaToOneEnable

			//////////////////////// COLOR BLENDING
			{{ .R.ColorWriteMask.Expand }}, // colorBlendAttachment_colorWriteMask
			{{ .R.BlendEnable.Token }}, // colorBlendAttachment_blendEnable
			{{ .R.SrcColorBlendFactor }}, // colorBlendAttachment_srcColorBlendFactor
			{{ .R.DstColorBlendFactor }}, // colorBlendAttachment_dstColorBlendFactor
			{{ .R.ColorBlendOp }}, // colorBlendAttachment_colorBlendOp
			{{ .R.SrcAlphaBlendFactor }}, // colorBlendAttachment_srcAlphaBlendFactor
			{{ .R.DstAlphaBlendFactor }}, // colorBlendAttachment_dstAlphaBlendFactor
			{{ .R.AlphaBlendOp }}, // colorBlendAttachment_alphaBlendOp

			{{ .R.LogicOpEnable.Token }}, // colorBlendingInfo_logicOpEnable
			{{ .R.LogicOp }}, // colorBlendingInfo_logicOp
			{{ .R.AttachmentCount }}, // colorBlendingInfo_attachmentCount
			{{- range $i, $c := .R.BlendConstants }}
			{{ $c.Literal }}{{ if lt $i 3 }},{{ end }} // colorBlendingInfo_blendConstants_{{ $i }}
			{{- end }}
		};
{{- end }}

{{- define "shaders" }}
		ShaderStageParameters {{ .Ident }}_shaders{
			{{ quote .R.VertexShaderPath }}, // vertexShaderText
			{{ quote .R.FragmentShaderPath }}, // fragmentShaderText
			{{ quote .R.VertexEntryPoint }}, // vertexShaderEntryFunctionName
			{{ quote .R.FragmentEntryPoint }} // fragmentShaderEntryFunctionName
		};
{{- end }}
`))
