package project

import (
	"fmt"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/math"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

const (
	MinImageDimension = 1
	MaxImageDimension = 16384
	MinFramesInFlight = 1
	MaxFramesInFlight = 16
)

type Instance struct {
	ApplicationName              string
	ShowValidationLayerDebugInfo metadata.Bool
	RunOnMacOS                   metadata.Bool
}

type PhysicalDevice struct {
	ChooseGPUOnStartup metadata.Bool
}

// Extension is one device extension the editor knows about. Only selected
// extensions are saved and exported.
type Extension struct {
	Name     string
	Selected bool
}

type LogicalDevice struct {
	Extensions []Extension
}

type Swapchain struct {
	Width               int
	Height              int
	LockWindowSize      metadata.Bool
	ClearColor          [4]metadata.Float
	FramesInFlight      int
	SaveEnergyForMobile metadata.Bool
	ImageUsage          metadata.ImageUsage
	PresentationMode    metadata.PresentMode
	ImageFormat         metadata.Format
	ImageColorSpace     metadata.ColorSpace
}

type Model struct {
	ModelFile   string
	TextureFile string
}

type Graphics struct {
	UseIndexedVertices  metadata.Bool
	ReduceSpirvCodeSize metadata.Bool
}

// Project is the complete editable state of one Vulkan project.
type Project struct {
	Instance       Instance
	PhysicalDevice PhysicalDevice
	LogicalDevice  LogicalDevice
	Swapchain      Swapchain
	Model          Model
	Graphics       Graphics
	Pipelines      *pipeline.Collection

	state State
	// DefaultExtensions are injected by PrepareExport when nothing is selected.
	DefaultExtensions []string
}

// New returns a project with the editor's start-up values.
func New() *Project {
	return &Project{
		Swapchain: Swapchain{
			Width:  800,
			Height: 800,
			ClearColor: [4]metadata.Float{
				metadata.NewFloat(0), metadata.NewFloat(0), metadata.NewFloat(0), metadata.NewFloat(1),
			},
			FramesInFlight:   2,
			ImageUsage:       metadata.ImageUsageColorAttachment,
			PresentationMode: metadata.PresentModeMailbox,
			ImageFormat:      metadata.FormatB8G8R8A8SRGB,
			ImageColorSpace:  metadata.ColorSpaceSRGBNonlinear,
		},
		Pipelines:         pipeline.NewCollection(),
		state:             Incomplete,
		DefaultExtensions: append([]string(nil), core.DefaultDeviceExtensions...),
	}
}

// CheckRanges verifies the numeric swapchain settings are within what the
// generated project accepts.
func (p *Project) CheckRanges() error {
	sc := p.Swapchain
	if !math.InRange(sc.Width, MinImageDimension, MaxImageDimension) {
		return fmt.Errorf("image width %d out of range [%d, %d]", sc.Width, MinImageDimension, MaxImageDimension)
	}
	if !math.InRange(sc.Height, MinImageDimension, MaxImageDimension) {
		return fmt.Errorf("image height %d out of range [%d, %d]", sc.Height, MinImageDimension, MaxImageDimension)
	}
	if !math.InRange(sc.FramesInFlight, MinFramesInFlight, MaxFramesInFlight) {
		return fmt.Errorf("frames in flight %d out of range [%d, %d]", sc.FramesInFlight, MinFramesInFlight, MaxFramesInFlight)
	}
	for i, c := range sc.ClearColor {
		if !math.InRange(c.Value(), 0, 1) {
			return fmt.Errorf("clear color channel %d is %s, expected a value in [0, 1]", i, c)
		}
	}
	for _, e := range p.Pipelines.Entries() {
		if err := e.Record.CheckRanges(); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
	}
	return nil
}

// ClampRanges forces the numeric swapchain settings into range, the way the
// form's spin boxes do.
func (p *Project) ClampRanges() {
	sc := &p.Swapchain
	sc.Width = math.Clamp(sc.Width, MinImageDimension, MaxImageDimension)
	sc.Height = math.Clamp(sc.Height, MinImageDimension, MaxImageDimension)
	sc.FramesInFlight = math.Clamp(sc.FramesInFlight, MinFramesInFlight, MaxFramesInFlight)
	for i, c := range sc.ClearColor {
		if v := math.Clamp(c.Value(), 0, 1); v != c.Value() {
			sc.ClearColor[i] = metadata.NewFloat(v)
		}
	}
	for _, e := range p.Pipelines.Entries() {
		n := math.Clamp(e.Record.AttachmentCount, pipeline.MinAttachmentCount, pipeline.MaxAttachmentCount)
		if n != e.Record.AttachmentCount {
			e.Record.AttachmentCount = n
			_ = p.Pipelines.Update(e.Handle, e.Record)
		}
	}
}
