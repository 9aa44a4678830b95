package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// SettingsFileName is looked up in the working directory when no path is given.
	SettingsFileName = "vkeditor.toml"
	// DefaultHeaderOutput is where the generated project header lands, relative
	// to the editor's working directory.
	DefaultHeaderOutput = "../GraphicalVulkanEditorProjectVariables.h"
)

// DefaultDeviceExtensions are injected when an export finds no extension selected.
var DefaultDeviceExtensions = []string{"VK_KHR_SWAPCHAIN_EXTENSION_NAME"}

// Settings holds the editor's own configuration, not the project being edited.
type Settings struct {
	HeaderOutput      string   `toml:"header_output"`
	DefaultExtensions []string `toml:"default_extensions"`
	LogLevel          string   `toml:"log_level"`
	ProjectRoot       string   `toml:"project_root"`
	WatchDebounceMS   int      `toml:"watch_debounce_ms"`
}

func DefaultSettings() *Settings {
	return &Settings{
		HeaderOutput:      DefaultHeaderOutput,
		DefaultExtensions: append([]string(nil), DefaultDeviceExtensions...),
		LogLevel:          "info",
		ProjectRoot:       ".",
		WatchDebounceMS:   250,
	}
}

// LoadSettings reads a TOML settings file. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = SettingsFileName
	}
	settings := DefaultSettings()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			LogDebug("settings file %s not found, using defaults", path)
			return settings, nil
		}
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(settings); err != nil {
		return nil, fmt.Errorf("decode settings %s: %w", path, err)
	}
	if settings.HeaderOutput == "" {
		settings.HeaderOutput = DefaultHeaderOutput
	}
	if len(settings.DefaultExtensions) == 0 {
		settings.DefaultExtensions = append([]string(nil), DefaultDeviceExtensions...)
	}
	if settings.LogLevel != "" {
		if err := SetLogLevel(settings.LogLevel); err != nil {
			return nil, fmt.Errorf("settings %s: log_level: %w", path, err)
		}
	}
	return settings, nil
}

// Save writes the settings as TOML, replacing any existing file.
func (s *Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (s *Settings) WatchDebounce() time.Duration {
	if s.WatchDebounceMS <= 0 {
		return 0
	}
	return time.Duration(s.WatchDebounceMS) * time.Millisecond
}
