package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
)

type encoder struct {
	enc *xml.Encoder
	err error
}

func (e *encoder) start(tag string, attrs ...xml.Attr) {
	if e.err != nil {
		return
	}
	e.err = e.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: tag}, Attr: attrs})
}

func (e *encoder) end(tag string) {
	if e.err != nil {
		return
	}
	e.err = e.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: tag}})
}

func (e *encoder) text(s string) {
	if e.err != nil || s == "" {
		return
	}
	e.err = e.enc.EncodeToken(xml.CharData(s))
}

func (e *encoder) group(tag string, named bool, body func()) {
	if named {
		e.start(tag, nameAttr(tag))
	} else {
		e.start(tag)
	}
	body()
	e.end(tag)
}

// scalar writes <tag name="tag">value</tag>.
func (e *encoder) scalar(tag, value string) {
	e.start(tag, nameAttr(tag))
	e.text(value)
	e.end(tag)
}

func nameAttr(value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: attrName}, Value: value}
}

// Encode writes p as an indented project document.
func Encode(w io.Writer, p *project.Project) error {
	x := xml.NewEncoder(w)
	x.Indent("", "  ")
	e := &encoder{enc: x}

	e.start(tagRoot)

	e.group(tagInstance, false, func() {
		e.scalar(tagApplicationName, p.Instance.ApplicationName)
		e.scalar(tagShowValidationLayerDebugInfo, p.Instance.ShowValidationLayerDebugInfo.Token())
		e.scalar(tagRunOnMacOS, p.Instance.RunOnMacOS.Token())
	})

	e.group(tagPhysicalDevice, false, func() {
		e.scalar(tagChooseGPUOnStartup, p.PhysicalDevice.ChooseGPUOnStartup.Token())
	})

	e.group(tagLogicalDevice, false, func() {
		e.group(tagDeviceExtensionsList, true, func() {
			for _, name := range p.SelectedExtensions() {
				e.start(tagExtension)
				e.text(name)
				e.end(tagExtension)
			}
		})
	})

	sc := p.Swapchain
	e.group(tagSwapchain, false, func() {
		e.group(tagImageDimensions, true, func() {
			e.scalar(tagImageHeight, strconv.Itoa(sc.Height))
			e.scalar(tagImageWidth, strconv.Itoa(sc.Width))
		})
		e.scalar(tagLockWindowSize, sc.LockWindowSize.Token())
		e.group(tagImageClearColor, true, func() {
			for i, tag := range tagClearColor {
				e.scalar(tag, sc.ClearColor[i].String())
			}
		})
		e.scalar(tagFramesInFlight, strconv.Itoa(sc.FramesInFlight))
		e.scalar(tagSaveEnergyForMobile, sc.SaveEnergyForMobile.Token())
		e.scalar(tagImageUsage, string(sc.ImageUsage))
		e.scalar(tagPresentationMode, string(sc.PresentationMode))
		e.scalar(tagImageFormat, string(sc.ImageFormat))
		e.scalar(tagImageColorSpace, string(sc.ImageColorSpace))
	})

	e.group(tagModel, false, func() {
		e.scalar(tagModelFile, p.Model.ModelFile)
		e.scalar(tagTextureFile, p.Model.TextureFile)
	})

	e.group(tagGraphicsPipeline, false, func() {
		e.scalar(tagUseIndexedVertices, p.Graphics.UseIndexedVertices.Token())
		e.scalar(tagReduceSpirvCodeSize, p.Graphics.ReduceSpirvCodeSize.Token())
		e.group(tagGraphicsPipelines, false, func() {
			tags := pipeline.Tags(pipeline.LatestRevision)
			for _, entry := range p.Pipelines.Entries() {
				e.start(tagPipeline, nameAttr(entry.Name))
				for i, value := range entry.Record.Fields(pipeline.LatestRevision) {
					e.scalar(tags[i], value)
				}
				e.end(tagPipeline)
			}
		})
	})

	e.end(tagRoot)
	if e.err != nil {
		return e.err
	}
	if err := x.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns the document for p.
func Marshal(p *project.Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
