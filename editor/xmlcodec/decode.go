package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

type scalarHandler func(p *project.Project, text string) error

// Scalars are matched by tag wherever they appear, so both the flat and the
// wrapped graphics pipeline layouts load.
var scalarHandlers = map[string]scalarHandler{
	tagApplicationName: func(p *project.Project, text string) error {
		p.Instance.ApplicationName = text
		return nil
	},
	tagShowValidationLayerDebugInfo: boolHandler(func(p *project.Project) *metadata.Bool { return &p.Instance.ShowValidationLayerDebugInfo }),
	tagRunOnMacOS:                   boolHandler(func(p *project.Project) *metadata.Bool { return &p.Instance.RunOnMacOS }),
	tagChooseGPUOnStartup:           boolHandler(func(p *project.Project) *metadata.Bool { return &p.PhysicalDevice.ChooseGPUOnStartup }),
	tagExtension: func(p *project.Project, text string) error {
		if name := strings.TrimSpace(text); name != "" && p.SelectExtensions(name) {
			core.LogDebug("extension added: %s", name)
		}
		return nil
	},
	tagImageHeight:         intHandler(func(p *project.Project) *int { return &p.Swapchain.Height }),
	tagImageWidth:          intHandler(func(p *project.Project) *int { return &p.Swapchain.Width }),
	tagLockWindowSize:      boolHandler(func(p *project.Project) *metadata.Bool { return &p.Swapchain.LockWindowSize }),
	tagClearColor[0]:       floatHandler(func(p *project.Project) *metadata.Float { return &p.Swapchain.ClearColor[0] }),
	tagClearColor[1]:       floatHandler(func(p *project.Project) *metadata.Float { return &p.Swapchain.ClearColor[1] }),
	tagClearColor[2]:       floatHandler(func(p *project.Project) *metadata.Float { return &p.Swapchain.ClearColor[2] }),
	tagClearColor[3]:       floatHandler(func(p *project.Project) *metadata.Float { return &p.Swapchain.ClearColor[3] }),
	tagFramesInFlight:      intHandler(func(p *project.Project) *int { return &p.Swapchain.FramesInFlight }),
	tagSaveEnergyForMobile: boolHandler(func(p *project.Project) *metadata.Bool { return &p.Swapchain.SaveEnergyForMobile }),
	tagImageUsage:          enumHandler(func(p *project.Project) *metadata.ImageUsage { return &p.Swapchain.ImageUsage }),
	tagPresentationMode:    enumHandler(func(p *project.Project) *metadata.PresentMode { return &p.Swapchain.PresentationMode }),
	tagImageFormat:         enumHandler(func(p *project.Project) *metadata.Format { return &p.Swapchain.ImageFormat }),
	tagImageColorSpace:     enumHandler(func(p *project.Project) *metadata.ColorSpace { return &p.Swapchain.ImageColorSpace }),
	tagModelFile: func(p *project.Project, text string) error {
		p.Model.ModelFile = text
		return nil
	},
	tagTextureFile: func(p *project.Project, text string) error {
		p.Model.TextureFile = text
		return nil
	},
	tagUseIndexedVertices:  boolHandler(func(p *project.Project) *metadata.Bool { return &p.Graphics.UseIndexedVertices }),
	tagReduceSpirvCodeSize: boolHandler(func(p *project.Project) *metadata.Bool { return &p.Graphics.ReduceSpirvCodeSize }),
}

func boolHandler(ptr func(p *project.Project) *metadata.Bool) scalarHandler {
	return func(p *project.Project, text string) error {
		b, err := metadata.ParseBool(text)
		if err != nil {
			return err
		}
		*ptr(p) = b
		return nil
	}
}

func intHandler(ptr func(p *project.Project) *int) scalarHandler {
	return func(p *project.Project, text string) error {
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return &core.ParseError{Value: text, Err: err}
		}
		*ptr(p) = n
		return nil
	}
}

func floatHandler(ptr func(p *project.Project) *metadata.Float) scalarHandler {
	return func(p *project.Project, text string) error {
		f, err := metadata.ParseFloat(text)
		if err != nil {
			return err
		}
		*ptr(p) = f
		return nil
	}
}

func enumHandler[T ~string](ptr func(p *project.Project) *T) scalarHandler {
	return func(p *project.Project, text string) error {
		*ptr(p) = T(strings.TrimSpace(text))
		return nil
	}
}

type decoder struct {
	dec *xml.Decoder
	p   *project.Project
}

// Decode reads a project document written by Encode or by any earlier
// revision of the editor.
func Decode(r io.Reader) (*project.Project, error) {
	d := &decoder{dec: xml.NewDecoder(r), p: project.New()}

	root, err := d.nextStart()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty project document")
		}
		return nil, err
	}
	if root.Name.Local != tagRoot {
		return nil, fmt.Errorf("unexpected root element <%s>, want <%s>", root.Name.Local, tagRoot)
	}
	if err := d.walk(); err != nil {
		return nil, err
	}
	return d.p, nil
}

// Unmarshal decodes a project from data.
func Unmarshal(data []byte) (*project.Project, error) {
	return Decode(bytes.NewReader(data))
}

func (d *decoder) nextStart() (xml.StartElement, error) {
	for {
		t, err := d.dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := t.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// walk consumes tokens up to the end of the current element, dispatching
// every start element by its tag.
func (d *decoder) walk() error {
	for {
		t, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("unexpected end of project document")
			}
			return err
		}
		switch t := t.(type) {
		case xml.StartElement:
			if err := d.element(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (d *decoder) element(start xml.StartElement) error {
	tag := start.Name.Local
	if tag == tagPipeline {
		return d.pipeline(start)
	}
	if handler, ok := scalarHandlers[tag]; ok {
		text, err := d.text()
		if err != nil {
			return err
		}
		if err := handler(d.p, text); err != nil {
			return fieldError(tag, err)
		}
		return nil
	}
	// containers and tags this editor does not know
	return d.walk()
}

// text returns the character data of the current element and consumes its
// end tag. Nested elements are skipped.
func (d *decoder) text() (string, error) {
	var sb strings.Builder
	for {
		t, err := d.dec.Token()
		if err != nil {
			return "", err
		}
		switch t := t.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if err := d.dec.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

func (d *decoder) pipeline(start xml.StartElement) error {
	name := attr(start, attrName)
	values := map[string]string{}
	for {
		t, err := d.dec.Token()
		if err != nil {
			return err
		}
		switch t := t.(type) {
		case xml.StartElement:
			text, err := d.text()
			if err != nil {
				return err
			}
			tag := t.Name.Local
			if !pipeline.IsFieldTag(tag) {
				core.LogWarn("pipeline %s: ignoring unknown element <%s>", name, tag)
				continue
			}
			values[tag] = text
		case xml.EndElement:
			return d.addPipeline(name, values)
		}
	}
}

func (d *decoder) addPipeline(name string, values map[string]string) error {
	record, rev, err := pipeline.RecordFromTags(values)
	if err != nil {
		return fmt.Errorf("pipeline %s: %w", name, err)
	}
	if rev != pipeline.LatestRevision {
		core.LogInfo("pipeline %s migrated from a %d-field layout", name, rev.FieldCount())
	}
	if _, err := d.p.Pipelines.Insert(name, record); err != nil {
		var dup *core.DuplicateError
		if errors.As(err, &dup) {
			core.LogWarn("skipping pipeline %s: %s", name, err)
			return nil
		}
		return err
	}
	return nil
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func fieldError(tag string, err error) error {
	var perr *core.ParseError
	if errors.As(err, &perr) && perr.Field == "" {
		perr.Field = tag
	}
	return fmt.Errorf("element <%s>: %w", tag, err)
}
