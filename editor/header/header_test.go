package header

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

func projectWith(t *testing.T, records ...pipeline.Record) *project.Project {
	t.Helper()
	p := project.New()
	p.Instance.ApplicationName = `Say "hi"`
	p.Swapchain.Width = 1024
	p.Swapchain.Height = 600
	p.SelectExtensions("VK_KHR_SWAPCHAIN_EXTENSION_NAME")
	for _, r := range records {
		if _, err := p.Pipelines.Add(r); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return p
}

func record(vertex string) pipeline.Record {
	r := pipeline.DefaultRecord()
	r.VertexShaderPath = vertex
	r.FragmentShaderPath = "shaders/shader.frag"
	return r
}

func TestGenerateSinglePipeline(t *testing.T) {
	r := record("shaders/shader.vert")
	r.LineWidth, _ = metadata.ParseFloat("1,5")
	r.ColorWriteMask = metadata.ParseColorWriteMask("AGBR")
	out, err := Generate(projectWith(t, r))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if n := strings.Count(out, "FixedFunctionStageParameters graphics_pipeline_1{"); n != 1 {
		t.Fatalf("expected one parameter block, got %d", n)
	}
	if n := strings.Count(out, "ShaderStageParameters graphics_pipeline_1_shaders{"); n != 1 {
		t.Fatalf("expected one shader block, got %d", n)
	}
	if !strings.Contains(out, "1.5f, // rasterizerInfo_lineWidth") {
		t.Fatalf("line width not rendered as 1.5f:\n%s", out)
	}
	mask := "VK_COLOR_COMPONENT_R_BIT | VK_COLOR_COMPONENT_G_BIT | VK_COLOR_COMPONENT_B_BIT | VK_COLOR_COMPONENT_A_BIT, // colorBlendAttachment_colorWriteMask"
	if !strings.Contains(out, mask) {
		t.Fatalf("color mask not expanded")
	}
	for _, want := range []string{
		`const char* APPLICATION_NAME = "Say \"hi\"";`,
		"const uint32_t WIDTH = 1024;",
		"const uint32_t HEIGHT = 600;",
		"VkClearColorValue CLEAR_COLOR = { {0.0f, 0.0f, 0.0f, 1.0f} };",
		"VK_KHR_SWAPCHAIN_EXTENSION_NAME",
		"const VkPresentModeKHR PRESENTATION_MODE = VK_PRESENT_MODE_MAILBOX_KHR;",
		"PIPELINE_PARAMETERS{ graphics_pipeline_1 };",
		"PIPELINE_SHADERS{ graphics_pipeline_1_shaders };",
		"0.0f // colorBlendingInfo_blendConstants_3",
		`"main" // fragmentShaderEntryFunctionName`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDepthBiasFieldsByName(t *testing.T) {
	r := record("a.vert")
	r.DepthBiasSlope = metadata.NewFloat(3)
	r.DepthBiasConstant = metadata.NewFloat(1)
	r.DepthBiasClamp = metadata.NewFloat(2)
	out, err := Generate(projectWith(t, r))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"1.0f, // rasterizerInfo_depthBiasConstantFactor",
		"2.0f, // rasterizerInfo_depthBiasClamp",
		"3.0f, // rasterizerInfo_depthBiasSlopeFactor",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestListsFollowCollectionOrder(t *testing.T) {
	p := projectWith(t, record("1.vert"), record("2.vert"), record("3.vert"))
	p.Pipelines.Remove("Graphics Pipeline 2")
	p.Pipelines.Add(record("4.vert"))

	out, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "PIPELINE_PARAMETERS{ graphics_pipeline_1, graphics_pipeline_3, graphics_pipeline_4 };") {
		t.Fatalf("parameter list out of order:\n%s", out)
	}
	if !strings.Contains(out, "PIPELINE_SHADERS{ graphics_pipeline_1_shaders, graphics_pipeline_3_shaders, graphics_pipeline_4_shaders };") {
		t.Fatalf("shader list out of order")
	}
	first := strings.Index(out, "FixedFunctionStageParameters graphics_pipeline_3{")
	second := strings.Index(out, "FixedFunctionStageParameters graphics_pipeline_4{")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("parameter blocks out of order")
	}
}

func TestIdentifier(t *testing.T) {
	if got := Identifier("Graphics Pipeline 12"); got != "graphics_pipeline_12" {
		t.Fatalf("Identifier = %q", got)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "GraphicalVulkanEditorProjectVariables.h")
	if err := os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	p := projectWith(t, record("a.vert"))
	if err := Write(path, p); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want, _ := Generate(p)
	if string(data) != want {
		t.Fatalf("file content differs from Generate output")
	}

	err = Write(filepath.Join(dir, "missing", "out.h"), p)
	var ioErr *core.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
}
