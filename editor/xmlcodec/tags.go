package xmlcodec

// Element names of the project document. Scalar elements repeat their own
// tag in a name attribute.
const (
	tagRoot = "GraphicalVulkanEditor"

	tagInstance                     = "instance"
	tagApplicationName              = "applicationNameInput"
	tagShowValidationLayerDebugInfo = "showValidationLayerDebugInfoCheckBox"
	tagRunOnMacOS                   = "runOnMacosCheckBox"

	tagPhysicalDevice     = "physicalDevice"
	tagChooseGPUOnStartup = "chooseGPUOnStartupCheckBox"

	tagLogicalDevice        = "logicalDevice"
	tagDeviceExtensionsList = "deviceExtensionsList"
	tagExtension            = "extension"

	tagSwapchain           = "swapchain"
	tagImageDimensions     = "imageDimensions"
	tagImageHeight         = "imageHeightInput"
	tagImageWidth          = "imageWidthInput"
	tagLockWindowSize      = "lockWindowSizeCheckBox"
	tagImageClearColor     = "imageClearColor"
	tagFramesInFlight      = "framesInFlightInput"
	tagSaveEnergyForMobile = "saveEnergyForMobileCheckBox"
	tagImageUsage          = "imageUsageInput"
	tagPresentationMode    = "presentationModeInput"
	tagImageFormat         = "imageFormatInput"
	tagImageColorSpace     = "imageColorSpaceInput"

	tagModel       = "model"
	tagModelFile   = "modelFileInput"
	tagTextureFile = "textureFileInput"

	tagGraphicsPipeline    = "graphicsPipeline"
	tagUseIndexedVertices  = "useIndexedVerticesCheckBox"
	tagReduceSpirvCodeSize = "reduceSpirvCodeSizeCheckBox"
	tagGraphicsPipelines   = "graphicsPipelines"
	tagPipeline            = "pipeline"

	attrName = "name"
)

var tagClearColor = [4]string{"clearColorRInput", "clearColorGInput", "clearColorBInput", "clearColorAInput"}
