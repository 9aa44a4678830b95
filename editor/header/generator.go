package header

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
)

// Namespace wraps every generated declaration.
const Namespace = "GVEProject"

type pipelineView struct {
	Ident string
	R     pipeline.Record
}

type headerView struct {
	Namespace      string
	Instance       project.Instance
	PhysicalDevice project.PhysicalDevice
	Swapchain      project.Swapchain
	Model          project.Model
	Graphics       project.Graphics
	Extensions     []string
	Pipelines      []pipelineView
	ParameterNames []string
	ShaderNames    []string
}

// Identifier is the C++ variable name of a pipeline's parameter block.
func Identifier(displayName string) string {
	return pipeline.Identifier(displayName)
}

// Generate renders the project header. The parameter and shader lists at the
// end follow collection order, so index i of one matches index i of the other.
func Generate(p *project.Project) (string, error) {
	view := headerView{
		Namespace:      Namespace,
		Instance:       p.Instance,
		PhysicalDevice: p.PhysicalDevice,
		Swapchain:      p.Swapchain,
		Model:          p.Model,
		Graphics:       p.Graphics,
		Extensions:     p.SelectedExtensions(),
	}
	for _, e := range p.Pipelines.Entries() {
		ident := Identifier(e.Name)
		view.Pipelines = append(view.Pipelines, pipelineView{Ident: ident, R: e.Record})
		view.ParameterNames = append(view.ParameterNames, ident)
		view.ShaderNames = append(view.ShaderNames, ident+"_shaders")
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "header", view); err != nil {
		return "", fmt.Errorf("render header: %w", err)
	}
	return buf.String(), nil
}

// Write generates the header and replaces the file at path with it.
func Write(path string, p *project.Project) (err error) {
	content, err := Generate(p)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		core.LogError("could not create header %s: %s", path, err)
		return &core.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &core.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		core.LogError("could not write header %s: %s", path, err)
		return &core.IOError{Op: "write", Path: path, Err: err}
	}
	core.LogInfo("header file created under %s", path)
	return nil
}
