package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/vkeditor/editor/assets/loaders"
	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/project"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the files a project points at and watches the project
// file itself.
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	debounce  time.Duration
	done      chan struct{}
	fsnotify  *fsnotify.Watcher
	closeOnce sync.Once
}

// NewAssetManager resolves relative asset paths against root.
func NewAssetManager(root string) *AssetManager {
	if root == "" {
		root = "."
	}
	am := &AssetManager{
		root:    root,
		assets:  make(map[string]AssetInfo),
		loaders: make(map[metadata.ResourceType]Loader),
		done:    make(chan struct{}),
	}
	am.registerLoader(metadata.ResourceTypeModel, &loaders.ModelLoader{})
	am.registerLoader(metadata.ResourceTypeTexture, &loaders.TextureLoader{})
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	return am
}

// SetDebounce sets how long Watch waits for writes to settle before calling back.
func (am *AssetManager) SetDebounce(d time.Duration) {
	am.debounce = d
}

func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

func (am *AssetManager) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(am.root, path)
}

// reference is one file a project points at.
type reference struct {
	label  string
	path   string
	params interface{}
}

func references(p *project.Project) []reference {
	var refs []reference
	if p.Model.ModelFile != "" {
		refs = append(refs, reference{label: "model", path: p.Model.ModelFile})
	}
	if p.Model.TextureFile != "" {
		refs = append(refs, reference{label: "texture", path: p.Model.TextureFile})
	}
	for _, e := range p.Pipelines.Entries() {
		r := e.Record
		if r.VertexShaderPath != "" {
			refs = append(refs, reference{
				label:  e.Name + ": vertex shader",
				path:   r.VertexShaderPath,
				params: &metadata.ShaderParams{EntryPoint: r.VertexEntryPoint},
			})
		}
		if r.FragmentShaderPath != "" {
			refs = append(refs, reference{
				label:  e.Name + ": fragment shader",
				path:   r.FragmentShaderPath,
				params: &metadata.ShaderParams{EntryPoint: r.FragmentEntryPoint},
			})
		}
	}
	return refs
}

// Index replaces the asset index with the existing files p references.
func (am *AssetManager) Index(p *project.Project) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	am.assets = make(map[string]AssetInfo)
	for _, ref := range references(p) {
		path := am.resolve(ref.path)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		am.assets[path] = AssetInfo{Path: path, Type: determineAssetType(path)}
	}
}

// Assets returns the index sorted by path.
func (am *AssetManager) Assets() []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	out := make([]AssetInfo, 0, len(am.assets))
	for _, a := range am.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// LoadAsset loads path with the loader registered for its extension.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*metadata.Resource, error) {
	path = am.resolve(path)
	assetType := determineAssetType(path)
	loader, ok := am.loaders[assetType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for %s (%s)", path, assetType)
	}
	res, err := loader.Load(path, assetType, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{Path: path, Type: assetType, LastLoaded: time.Now()}
	am.mutex.Unlock()
	return res, nil
}

func (am *AssetManager) UnloadAsset(res *metadata.Resource) error {
	loader, ok := am.loaders[res.Type]
	if !ok {
		return nil
	}
	return loader.Unload(res)
}

// CheckProject loads every file p references and reports each one that is
// missing or unreadable. The result is advisory; exporting never depends on it.
func (am *AssetManager) CheckProject(p *project.Project) []error {
	var errs []error
	for _, ref := range references(p) {
		path := am.resolve(ref.path)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ref.label, &core.IOError{Op: "stat", Path: path, Err: err}))
			continue
		}
		if _, err := am.LoadAsset(path, ref.params); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ref.label, err))
		}
	}
	for _, err := range errs {
		core.LogWarn(err.Error())
	}
	return errs
}

// Watch calls fn each time the file at path is written or replaced. Writes
// closer together than the debounce interval are coalesced; fn always runs on
// the watcher goroutine.
func (am *AssetManager) Watch(path string, fn func(path string)) error {
	if am.fsnotify != nil {
		return errors.New("asset manager is already watching")
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// editors often save by rename, so watch the directory
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return &core.IOError{Op: "watch", Path: target, Err: err}
	}
	am.fsnotify = w
	go am.start(target, fn)
	core.LogInfo("watching %s", target)
	return nil
}

func (am *AssetManager) start(target string, fn func(string)) {
	var fire <-chan time.Time
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != target || e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if am.debounce <= 0 {
				fn(target)
				continue
			}
			fire = time.After(am.debounce)

		case <-fire:
			fire = nil
			fn(target)

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			return
		}
	}
}

// Close stops the watcher, if any.
func (am *AssetManager) Close() error {
	var err error
	am.closeOnce.Do(func() {
		close(am.done)
		if am.fsnotify != nil {
			err = am.fsnotify.Close()
		}
	})
	return err
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return metadata.ResourceTypeProject
	case ".obj":
		return metadata.ResourceTypeModel
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp":
		return metadata.ResourceTypeTexture
	case ".vert", ".frag":
		return metadata.ResourceTypeShader
	default:
		return metadata.ResourceTypeNone
	}
}
