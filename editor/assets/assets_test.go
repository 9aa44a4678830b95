package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

const cube = `# cube
v 0 0 0
v 1 0 0
v 1 1 0
vn 0 0 1
vt 0 0
f 1 2 3
`

const vertexShader = `#version 450
layout(location = 0) in vec3 inPos;
void main() {
	gl_Position = vec4(inPos, 1.0);
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestDetermineAssetType(t *testing.T) {
	cases := map[string]metadata.ResourceType{
		"project.xml":         metadata.ResourceTypeProject,
		"models/viking.OBJ":   metadata.ResourceTypeModel,
		"textures/a.png":      metadata.ResourceTypeTexture,
		"textures/a.JPEG":     metadata.ResourceTypeTexture,
		"textures/a.webp":     metadata.ResourceTypeTexture,
		"shaders/shader.vert": metadata.ResourceTypeShader,
		"shaders/shader.frag": metadata.ResourceTypeShader,
		"notes.txt":           metadata.ResourceTypeNone,
		"noext":               metadata.ResourceTypeNone,
	}
	for path, want := range cases {
		if got := determineAssetType(path); got != want {
			t.Errorf("%s: got %s, want %s", path, got, want)
		}
	}
}

func TestLoadAssets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cube.obj", cube)
	writeFile(t, dir, "shader.vert", vertexShader)
	writePNG(t, dir, "tex.png", 4, 2)

	am := NewAssetManager(dir)

	res, err := am.LoadAsset("cube.obj", nil)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	model := res.Data.(*metadata.ModelInfo)
	if model.Vertices != 3 || model.Faces != 1 || model.Normals != 1 || model.TexCoords != 1 {
		t.Fatalf("model counts = %+v", model)
	}

	res, err = am.LoadAsset("tex.png", nil)
	if err != nil {
		t.Fatalf("load texture: %v", err)
	}
	tex := res.Data.(*metadata.TextureInfo)
	if tex.Format != "png" || tex.Width != 4 || tex.Height != 2 {
		t.Fatalf("texture = %+v", tex)
	}

	res, err = am.LoadAsset("shader.vert", &metadata.ShaderParams{EntryPoint: "main"})
	if err != nil {
		t.Fatalf("load shader: %v", err)
	}
	if sh := res.Data.(*metadata.ShaderInfo); sh.Stage != "vertex" {
		t.Fatalf("stage = %s", sh.Stage)
	}
	if _, err := am.LoadAsset("shader.vert", &metadata.ShaderParams{EntryPoint: "mainVS"}); err == nil {
		t.Fatalf("missing entry point should fail")
	}
	if _, err := am.LoadAsset("notes.txt", nil); err == nil {
		t.Fatalf("unknown asset type should fail")
	}
	if got := len(am.Assets()); got != 3 {
		t.Fatalf("expected 3 indexed assets, got %d", got)
	}
}

func TestModelWithoutVertices(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.obj", "# nothing here\n")
	if _, err := NewAssetManager(dir).LoadAsset("empty.obj", nil); err == nil {
		t.Fatalf("expected an error for a model without vertices")
	}
}

func TestCheckProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shader.vert", vertexShader)
	writeFile(t, dir, "shader.frag", "#version 450\nvoid main() {}\n")
	writePNG(t, dir, "tex.png", 1, 1)

	p := project.New()
	p.Model.ModelFile = "missing.obj"
	p.Model.TextureFile = "tex.png"
	rec := pipeline.DefaultRecord()
	rec.VertexShaderPath = "shader.vert"
	rec.FragmentShaderPath = "shader.frag"
	rec.FragmentEntryPoint = "fragMain"
	if _, err := p.Pipelines.Add(rec); err != nil {
		t.Fatalf("add: %v", err)
	}

	am := NewAssetManager(dir)
	errs := am.CheckProject(p)
	if len(errs) != 2 {
		t.Fatalf("expected 2 problems, got %d: %v", len(errs), errs)
	}
	var ioErr *core.IOError
	if !errors.As(errs[0], &ioErr) || !errors.Is(errs[0], fs.ErrNotExist) {
		t.Fatalf("first problem should be the missing model, got %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "Graphics Pipeline 1: fragment shader") {
		t.Fatalf("second problem should name the pipeline, got %v", errs[1])
	}

	am.Index(p)
	if got := len(am.Assets()); got != 3 {
		t.Fatalf("index should hold the 3 existing files, got %d", got)
	}
}

func TestWatchCallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "project.xml", "<GraphicalVulkanEditor/>")

	am := NewAssetManager(dir)
	defer am.Close()

	changed := make(chan string, 16)
	if err := am.Watch(path, func(p string) {
		select {
		case changed <- p:
		default:
		}
	}); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := am.Watch(path, func(string) {}); err == nil {
		t.Fatalf("second watch should fail")
	}

	writeFile(t, dir, "other.xml", "<x/>")
	writeFile(t, dir, "project.xml", "<GraphicalVulkanEditor></GraphicalVulkanEditor>")

	select {
	case got := <-changed:
		if filepath.Base(got) != "project.xml" {
			t.Fatalf("callback for %s", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no callback after writing the watched file")
	}
}
