package project

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

func completePipeline() pipeline.Record {
	r := pipeline.DefaultRecord()
	r.VertexShaderPath = "shaders/shader.vert"
	r.FragmentShaderPath = "shaders/shader.frag"
	return r
}

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Swapchain.Width != 800 || p.Swapchain.Height != 800 || p.Swapchain.FramesInFlight != 2 {
		t.Fatalf("unexpected swapchain defaults %+v", p.Swapchain)
	}
	if p.Swapchain.ClearColor[3].Value() != 1 {
		t.Fatalf("clear alpha should default to 1")
	}
	if p.State() != Incomplete {
		t.Fatalf("new project state = %s", p.State())
	}
	if err := p.CheckRanges(); err != nil {
		t.Fatalf("defaults out of range: %v", err)
	}
}

func TestAddExtension(t *testing.T) {
	p := New()
	if err := p.AddExtension("  "); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if err := p.AddExtension("VK_KHR_MAINTENANCE1_EXTENSION_NAME"); err != nil {
		t.Fatalf("add: %v", err)
	}
	var dup *core.DuplicateError
	if err := p.AddExtension("VK_KHR_MAINTENANCE1_EXTENSION_NAME"); !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if got := p.SelectedExtensions(); len(got) != 1 {
		t.Fatalf("selected = %v", got)
	}
}

func TestRemoveExtensionsProtectsDefaults(t *testing.T) {
	p := New()
	p.SelectExtensions("VK_KHR_SWAPCHAIN_EXTENSION_NAME", "VK_EXT_EXTRA")
	removed, err := p.RemoveExtensions("VK_KHR_SWAPCHAIN_EXTENSION_NAME", "VK_EXT_EXTRA")
	if !errors.Is(err, core.ErrProtectedExtension) {
		t.Fatalf("expected ErrProtectedExtension, got %v", err)
	}
	if len(removed) != 1 || removed[0] != "VK_EXT_EXTRA" {
		t.Fatalf("removed = %v", removed)
	}
	if got := p.SelectedExtensions(); len(got) != 1 || got[0] != "VK_KHR_SWAPCHAIN_EXTENSION_NAME" {
		t.Fatalf("selected = %v", got)
	}
}

func TestTwoStepExport(t *testing.T) {
	p := New()
	p.Instance.ApplicationName = "Demo"
	if _, err := p.Pipelines.Add(completePipeline()); err != nil {
		t.Fatalf("add pipeline: %v", err)
	}

	outcome, err := p.PrepareExport()
	if err != nil || outcome != OutcomeNeedsReexport {
		t.Fatalf("first export = %s, %v", outcome, err)
	}
	if p.State() != DefaultsApplied || !p.NeedsReexport() {
		t.Fatalf("state after first export = %s", p.State())
	}
	if got := p.SelectedExtensions(); len(got) != 1 || got[0] != "VK_KHR_SWAPCHAIN_EXTENSION_NAME" {
		t.Fatalf("default extension not injected: %v", got)
	}

	outcome, err = p.PrepareExport()
	if err != nil || outcome != OutcomeReady {
		t.Fatalf("second export = %s, %v", outcome, err)
	}
	if err := p.MarkExported(); err != nil {
		t.Fatalf("MarkExported: %v", err)
	}
	if p.State() != Exported {
		t.Fatalf("state = %s", p.State())
	}
	if err := p.MarkExported(); err == nil {
		t.Fatalf("marking twice should fail")
	}
}

func TestExportRejectsMissingInputs(t *testing.T) {
	p := New()
	p.SelectExtensions("VK_KHR_SWAPCHAIN_EXTENSION_NAME")
	a := completePipeline()
	a.VertexShaderPath = ""
	b := completePipeline()
	b.FragmentShaderPath = "other.frag"
	b.FragmentEntryPoint = ""
	p.Pipelines.Add(a)
	p.Pipelines.Add(b)

	outcome, err := p.PrepareExport()
	if outcome != OutcomeRejected || p.State() != Rejected {
		t.Fatalf("outcome %s, state %s", outcome, p.State())
	}
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != 3 {
		t.Fatalf("expected application name plus two pipeline fields, got %v", verr.Missing)
	}
	if verr.Missing[0].Field != LabelApplicationName {
		t.Fatalf("first missing = %v", verr.Missing[0])
	}
}

func TestExportKeepsInjectedDefaultsOnRejection(t *testing.T) {
	p := New()
	p.Pipelines.Add(pipeline.Record{})
	p.PrepareExport()
	if _, err := p.PrepareExport(); err == nil {
		t.Fatalf("expected rejection")
	}
	if len(p.SelectedExtensions()) != 1 {
		t.Fatalf("injected defaults should persist")
	}
}

func TestCheckRanges(t *testing.T) {
	p := New()
	p.Swapchain.Width = 0
	if err := p.CheckRanges(); err == nil {
		t.Fatalf("width 0 accepted")
	}
	p.Swapchain.Width = 1024
	p.Swapchain.ClearColor[0] = metadata.NewFloat(1.5)
	if err := p.CheckRanges(); err == nil {
		t.Fatalf("clear color 1.5 accepted")
	}
	p.ClampRanges()
	if p.Swapchain.ClearColor[0].Value() != 1 {
		t.Fatalf("clamp did not bring clear color back to 1")
	}
	if err := p.CheckRanges(); err != nil {
		t.Fatalf("clamped project still out of range: %v", err)
	}
}

func TestCheckRangesAttachmentCount(t *testing.T) {
	p := New()
	r := completePipeline()
	r.AttachmentCount = 268435456
	h, err := p.Pipelines.Add(r)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := p.CheckRanges(); err == nil {
		t.Fatalf("attachment count 268435456 accepted")
	}
	p.ClampRanges()
	e, _ := p.Pipelines.Get(h)
	if e.Record.AttachmentCount != pipeline.MaxAttachmentCount {
		t.Fatalf("attachment count clamped to %d", e.Record.AttachmentCount)
	}
	if err := p.CheckRanges(); err != nil {
		t.Fatalf("clamped project still out of range: %v", err)
	}
}

func TestExportWithoutDefaultExtensions(t *testing.T) {
	p := New()
	p.DefaultExtensions = nil
	p.Instance.ApplicationName = "Demo"
	for i := 0; i < 2; i++ {
		outcome, err := p.PrepareExport()
		if outcome != OutcomeRejected || !errors.Is(err, core.ErrEmptyInput) {
			t.Fatalf("attempt %d: got %s, %v", i+1, outcome, err)
		}
	}
	if p.State() != Rejected {
		t.Fatalf("state = %s", p.State())
	}
}
