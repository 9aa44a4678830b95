package editor

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/vkeditor/editor/assets"
	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/header"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
	"github.com/spaghettifunk/vkeditor/editor/renderer/preview"
	"github.com/spaghettifunk/vkeditor/editor/renderer/vulkan"
	"github.com/spaghettifunk/vkeditor/editor/xmlcodec"
)

// ErrNoProjectPath is returned by Save when neither an explicit path nor the
// path the project was opened from is known.
var ErrNoProjectPath = errors.New("no project path")

type Editor struct {
	settings     *core.Settings
	project      *project.Project
	path         string
	assetManager *assets.AssetManager
}

// New returns an editor holding a fresh project. A nil settings value means
// the defaults.
func New(settings *core.Settings) *Editor {
	if settings == nil {
		settings = core.DefaultSettings()
	}
	e := &Editor{
		settings:     settings,
		assetManager: assets.NewAssetManager(settings.ProjectRoot),
	}
	e.setProject(project.New(), "")
	e.assetManager.SetDebounce(settings.WatchDebounce())
	return e
}

func (e *Editor) setProject(p *project.Project, path string) {
	p.DefaultExtensions = append([]string(nil), e.settings.DefaultExtensions...)
	e.project = p
	e.path = path
}

func (e *Editor) Project() *project.Project {
	return e.project
}

func (e *Editor) Settings() *core.Settings {
	return e.settings
}

// Path is the file the project was last opened from or saved to.
func (e *Editor) Path() string {
	return e.path
}

// Open replaces the current project with the one stored at path. On failure
// the current project is kept.
func (e *Editor) Open(path string) error {
	p, err := xmlcodec.Load(path)
	if err != nil {
		return err
	}
	e.setProject(p, path)
	e.assetManager.Index(p)
	core.LogInfo("opened %s with %d graphics pipelines", path, p.Pipelines.Len())
	return nil
}

// Save writes the project to path, or to the path it came from when path is empty.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.path
	}
	if path == "" {
		return ErrNoProjectPath
	}
	if err := xmlcodec.Save(path, e.project); err != nil {
		core.LogError(err.Error())
		return err
	}
	e.path = path
	return nil
}

// Export runs the export checks and, when the project is ready, writes the
// header to the configured output. OutcomeNeedsReexport means defaults were
// filled in and nothing was written yet.
func (e *Editor) Export() (project.ExportOutcome, error) {
	outcome, err := e.project.PrepareExport()
	if err != nil || outcome != project.OutcomeReady {
		return outcome, err
	}
	if err := header.Write(e.settings.HeaderOutput, e.project); err != nil {
		return project.OutcomeRejected, err
	}
	if err := e.project.MarkExported(); err != nil {
		return project.OutcomeRejected, err
	}
	return outcome, nil
}

func (e *Editor) AddPipeline(rec pipeline.Record) (core.Handle, error) {
	h, err := e.project.Pipelines.Add(rec)
	if err != nil {
		core.LogWarn(err.Error())
		return core.InvalidHandle, err
	}
	return h, nil
}

func (e *Editor) UpdatePipeline(handle core.Handle, rec pipeline.Record) error {
	if err := e.project.Pipelines.Update(handle, rec); err != nil {
		core.LogWarn(err.Error())
		return err
	}
	return nil
}

// RemovePipelines removes the named pipelines and returns the names that were
// actually removed.
func (e *Editor) RemovePipelines(names ...string) []string {
	return e.project.Pipelines.Remove(names...)
}

func (e *Editor) entry(handle core.Handle) (pipeline.Entry, error) {
	entry, ok := e.project.Pipelines.Get(handle)
	if !ok {
		return pipeline.Entry{}, fmt.Errorf("%w: %s", core.ErrUnknownPipeline, handle)
	}
	return entry, nil
}

// Preview returns the live preview parameters of a pipeline.
func (e *Editor) Preview(handle core.Handle) (preview.Params, error) {
	entry, err := e.entry(handle)
	if err != nil {
		return preview.Params{}, err
	}
	return preview.ParamsFor(entry.Record), nil
}

// NativeState returns the Vulkan fixed-function state of a pipeline.
func (e *Editor) NativeState(handle core.Handle) (*vulkan.FixedFunction, error) {
	entry, err := e.entry(handle)
	if err != nil {
		return nil, err
	}
	return vulkan.FixedFunctionState(entry.Record)
}

// CheckAssets reports referenced files that are missing or unreadable.
func (e *Editor) CheckAssets() []error {
	return e.assetManager.CheckProject(e.project)
}

// Watch reloads and re-exports the project every time its file changes.
// onExport receives the result of each attempt.
func (e *Editor) Watch(onExport func(project.ExportOutcome, error)) error {
	if e.path == "" {
		return ErrNoProjectPath
	}
	return e.assetManager.Watch(e.path, func(path string) {
		if err := e.Open(path); err != nil {
			onExport(project.OutcomeRejected, err)
			return
		}
		onExport(e.Export())
	})
}

func (e *Editor) Close() error {
	return e.assetManager.Close()
}
