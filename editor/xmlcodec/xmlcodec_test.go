package xmlcodec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

func sampleProject(t *testing.T) *project.Project {
	t.Helper()
	p := project.New()
	p.Instance.ApplicationName = "Demo & Friends"
	p.Instance.ShowValidationLayerDebugInfo = true
	p.PhysicalDevice.ChooseGPUOnStartup = true
	p.Swapchain.Width = 1280
	p.Swapchain.Height = 720
	p.Swapchain.ClearColor[0], _ = metadata.ParseFloat("0,25")
	p.Swapchain.PresentationMode = metadata.PresentModeFifo
	p.Model.ModelFile = "models/viking_room.obj"
	p.Model.TextureFile = "textures/viking_room.png"
	p.Graphics.UseIndexedVertices = true
	p.SelectExtensions("VK_KHR_SWAPCHAIN_EXTENSION_NAME", "VK_KHR_MAINTENANCE1_EXTENSION_NAME")

	a := pipeline.DefaultRecord()
	a.VertexShaderPath = "shaders/a.vert"
	a.FragmentShaderPath = "shaders/a.frag"
	a.LineWidth, _ = metadata.ParseFloat("1,5")
	a.ColorWriteMask = metadata.ColorComponentR | metadata.ColorComponentG
	if _, err := p.Pipelines.Add(a); err != nil {
		t.Fatalf("add: %v", err)
	}
	b := pipeline.DefaultRecord()
	b.VertexShaderPath = "shaders/b.vert"
	b.CullMode = metadata.CullModeNone
	b.BlendEnable = true
	b.BlendConstants[2], _ = metadata.ParseFloat("0.75")
	b.UseIndexedVertices = true
	if _, err := p.Pipelines.Add(b); err != nil {
		t.Fatalf("add: %v", err)
	}
	return p
}

func assertProjectsEqual(t *testing.T, want, got *project.Project) {
	t.Helper()
	if want.Instance != got.Instance {
		t.Fatalf("instance: want %+v, got %+v", want.Instance, got.Instance)
	}
	if want.PhysicalDevice != got.PhysicalDevice || want.Model != got.Model || want.Graphics != got.Graphics {
		t.Fatalf("scalar sections differ")
	}
	if want.Swapchain != got.Swapchain {
		t.Fatalf("swapchain: want %+v, got %+v", want.Swapchain, got.Swapchain)
	}
	if strings.Join(want.SelectedExtensions(), ",") != strings.Join(got.SelectedExtensions(), ",") {
		t.Fatalf("extensions: want %v, got %v", want.SelectedExtensions(), got.SelectedExtensions())
	}
	we, ge := want.Pipelines.Entries(), got.Pipelines.Entries()
	if len(we) != len(ge) {
		t.Fatalf("pipeline count: want %d, got %d", len(we), len(ge))
	}
	for i := range we {
		if we[i].Name != ge[i].Name {
			t.Fatalf("pipeline %d name: want %q, got %q", i, we[i].Name, ge[i].Name)
		}
		if we[i].Record != ge[i].Record {
			t.Fatalf("pipeline %s differs:\nwant %+v\n got %+v", we[i].Name, we[i].Record, ge[i].Record)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	p := sampleProject(t)
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	assertProjectsEqual(t, p, back)

	again, err := Marshal(back)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(again) != string(data) {
		t.Fatalf("second save differs from first:\n%s\n---\n%s", data, again)
	}
}

func TestCommaDecimalPreserved(t *testing.T) {
	data, err := Marshal(sampleProject(t))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `<lineWidthInput name="lineWidthInput">1,5</lineWidthInput>`) {
		t.Fatalf("line width text not preserved:\n%s", data)
	}
	if !strings.Contains(string(data), `<clearColorRInput name="clearColorRInput">0,25</clearColorRInput>`) {
		t.Fatalf("clear color text not preserved")
	}
}

func TestOnlySelectedExtensionsSaved(t *testing.T) {
	p := project.New()
	p.SelectExtensions("VK_A", "VK_B")
	p.DeselectExtensions("VK_B")
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "VK_B") {
		t.Fatalf("unselected extension written")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.xml")
	p := sampleProject(t)
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertProjectsEqual(t, p, back)
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.xml")
	if err := os.WriteFile(path, []byte("old contents that are longer than nothing"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p := sampleProject(t)
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertProjectsEqual(t, p, back)

	// a directory in the way makes the final rename fail
	blocked := filepath.Join(dir, "blocked.xml")
	if err := os.MkdirAll(filepath.Join(blocked, "child"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	var ioErr *core.IOError
	if err := Save(blocked, p); !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestPathsKeptVerbatim(t *testing.T) {
	p := sampleProject(t)
	p.Model.ModelFile = " models/viking room.obj "
	p.Model.TextureFile = "textures/a.png  "
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Model != p.Model {
		t.Fatalf("model paths changed: %q", back.Model)
	}
}

func TestPipelineNamesMustFormIdentifiers(t *testing.T) {
	a := pipeline.DefaultRecord()
	b := pipeline.DefaultRecord()
	b.VertexShaderPath = "b.vert"
	doc := `<GraphicalVulkanEditor><graphicsPipelines>` +
		legacyPipeline("Graphics Pipeline 1", pipeline.LatestRevision, a) +
		legacyPipeline("graphics pipeline 1", pipeline.LatestRevision, b) +
		`</graphicsPipelines></GraphicalVulkanEditor>`
	p, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Pipelines.Len() != 1 {
		t.Fatalf("case-only name collision not skipped")
	}

	doc = `<GraphicalVulkanEditor><graphicsPipelines>` +
		legacyPipeline("Pipeline-A", pipeline.LatestRevision, a) +
		`</graphicsPipelines></GraphicalVulkanEditor>`
	var perr *core.ParseError
	if _, err := Unmarshal([]byte(doc)); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for Pipeline-A, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	var ioErr *core.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
}

func legacyPipeline(name string, rev pipeline.Revision, r pipeline.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<pipeline name=%q>`, name)
	tags := pipeline.Tags(rev)
	for i, v := range r.Fields(rev) {
		fmt.Fprintf(&sb, `<%s name=%q>%s</%s>`, tags[i], tags[i], v, tags[i])
	}
	sb.WriteString(`</pipeline>`)
	return sb.String()
}

func TestLegacyFlatLayoutMigrates(t *testing.T) {
	r := pipeline.DefaultRecord()
	r.VertexShaderPath = "old.vert"
	r.FragmentShaderPath = "old.frag"

	doc := `<?xml version="1.0"?>
<GraphicalVulkanEditor>
  <instance><applicationNameInput name="applicationNameInput">Legacy</applicationNameInput></instance>
  <logicalDevice><extension>VK_KHR_SWAPCHAIN_EXTENSION_NAME</extension></logicalDevice>
  <graphicsPipelines>` +
		legacyPipeline("Graphics Pipeline 1", pipeline.Revision39, r) +
		legacyPipeline("Graphics Pipeline 3", pipeline.Revision43, r) +
		`</graphicsPipelines>
</GraphicalVulkanEditor>`

	p, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Instance.ApplicationName != "Legacy" {
		t.Fatalf("application name = %q", p.Instance.ApplicationName)
	}
	entries := p.Pipelines.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 pipelines, got %d", len(entries))
	}
	if entries[0].Record.VertexShaderPath != "" || entries[0].Record.VertexEntryPoint != "" {
		t.Fatalf("39-field pipeline should have empty shader bindings")
	}
	if entries[1].Record.VertexShaderPath != "old.vert" || entries[1].Record.ReduceCodeSize {
		t.Fatalf("43-field pipeline migrated wrongly: %+v", entries[1].Record)
	}
	if p.Pipelines.Counter() != 3 {
		t.Fatalf("counter = %d, want 3", p.Pipelines.Counter())
	}
	if got := p.SelectedExtensions(); len(got) != 1 {
		t.Fatalf("extensions = %v", got)
	}
}

func TestAbsentShaderChildren(t *testing.T) {
	doc := `<GraphicalVulkanEditor><graphicsPipeline><graphicsPipelines>
<pipeline name="Graphics Pipeline 1">
  <vertexTopologyInput name="vertexTopologyInput">VK_PRIMITIVE_TOPOLOGY_LINE_LIST</vertexTopologyInput>
  <vertexShaderFileInput name="vertexShaderFileInput"/>
  <fragmentShaderFileInput name="fragmentShaderFileInput"></fragmentShaderFileInput>
  <somethingNew name="somethingNew">x</somethingNew>
</pipeline>
</graphicsPipelines></graphicsPipeline></GraphicalVulkanEditor>`

	p, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	e := p.Pipelines.Entries()
	if len(e) != 1 {
		t.Fatalf("expected one pipeline")
	}
	r := e[0].Record
	if r.Topology != metadata.TopologyLineList {
		t.Fatalf("topology = %s", r.Topology)
	}
	if r.VertexShaderPath != "" || r.FragmentShaderPath != "" {
		t.Fatalf("absent shader children should decode as empty strings")
	}
	if len(r.Validate(e[0].Name)) != 4 {
		t.Fatalf("expected all four shader inputs missing")
	}
}

func TestDuplicatePipelinesSkipped(t *testing.T) {
	r := pipeline.DefaultRecord()
	doc := `<GraphicalVulkanEditor><graphicsPipelines>` +
		legacyPipeline("Graphics Pipeline 1", pipeline.LatestRevision, r) +
		legacyPipeline("Graphics Pipeline 2", pipeline.LatestRevision, r) +
		`</graphicsPipelines></GraphicalVulkanEditor>`
	p, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Pipelines.Len() != 1 {
		t.Fatalf("duplicate pipeline not skipped")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"empty":      ``,
		"wrong root": `<Other/>`,
		"bad bool":   `<GraphicalVulkanEditor><runOnMacosCheckBox>perhaps</runOnMacosCheckBox></GraphicalVulkanEditor>`,
		"bad int":    `<GraphicalVulkanEditor><imageWidthInput>wide</imageWidthInput></GraphicalVulkanEditor>`,
		"bad float":  `<GraphicalVulkanEditor><clearColorRInput>red</clearColorRInput></GraphicalVulkanEditor>`,
		"truncated":  `<GraphicalVulkanEditor><instance>`,
		"huge float": `<GraphicalVulkanEditor><clearColorRInput>1e39</clearColorRInput></GraphicalVulkanEditor>`,
		"attachments": `<GraphicalVulkanEditor><graphicsPipelines><pipeline name="Graphics Pipeline 1">` +
			`<attachmentCountInput name="attachmentCountInput">268435456</attachmentCountInput>` +
			`</pipeline></graphicsPipelines></GraphicalVulkanEditor>`,
	}
	for name, doc := range cases {
		if _, err := Unmarshal([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	_, err := Unmarshal([]byte(`<GraphicalVulkanEditor><imageWidthInput>wide</imageWidthInput></GraphicalVulkanEditor>`))
	var perr *core.ParseError
	if !errors.As(err, &perr) || perr.Field != "imageWidthInput" {
		t.Fatalf("expected ParseError on imageWidthInput, got %v", err)
	}
}
