package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entry string
	if p, ok := params.(*metadata.ShaderParams); ok && p != nil {
		entry = p.EntryPoint
	}
	if entry != "" && !hasEntryPoint(data, entry) {
		return nil, fmt.Errorf("shader %s has no entry point %q", path, entry)
	}
	return &metadata.Resource{
		Name:     filepath.Base(path),
		FullPath: path,
		Type:     assetType,
		DataSize: uint64(len(data)),
		Data: &metadata.ShaderInfo{
			Stage:      shaderStage(path),
			EntryPoint: entry,
			Source:     data,
		},
	}, nil
}

func (sl *ShaderLoader) Unload(*metadata.Resource) error {
	return nil
}

func hasEntryPoint(src []byte, entry string) bool {
	re := regexp.MustCompile(`\bvoid\s+` + regexp.QuoteMeta(entry) + `\s*\(`)
	return re.Match(src)
}

func shaderStage(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert":
		return "vertex"
	case ".frag":
		return "fragment"
	}
	return "unknown"
}
