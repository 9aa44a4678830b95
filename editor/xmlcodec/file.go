package xmlcodec

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/project"
)

// Save writes p next to path and renames it over the target, so a failed
// save leaves the previous file intact.
func Save(path string, p *project.Project) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &core.IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := f.Chmod(0o644); err != nil {
		return &core.IOError{Op: "chmod", Path: tmp, Err: err}
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, p); err != nil {
		return &core.IOError{Op: "write", Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &core.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &core.IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &core.IOError{Op: "rename", Path: path, Err: err}
	}
	core.LogInfo("project saved to %s", path)
	return nil
}

// Load reads the project stored at path.
func Load(path string) (*project.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	p, err := Decode(bufio.NewReader(f))
	if err != nil {
		core.LogError("failed to load project %s: %s", path, err)
		return nil, err
	}
	return p, nil
}
