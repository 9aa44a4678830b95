package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

type ModelLoader struct{}

// Load scans a Wavefront OBJ file and counts its elements. Materials, groups
// and smoothing statements are ignored.
func (ml *ModelLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	model, size, err := ml.parseModelData(bufio.NewScanner(file))
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return &metadata.Resource{
		Name:     filepath.Base(path),
		FullPath: path,
		Type:     assetType,
		DataSize: size,
		Data:     model,
	}, nil
}

func (ml *ModelLoader) parseModelData(sc *bufio.Scanner) (*metadata.ModelInfo, uint64, error) {
	info := &metadata.ModelInfo{}
	var size uint64
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		size += uint64(len(text)) + 1
		fields := strings.Fields(text)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, 0, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			info.Vertices++
		case "vn":
			info.Normals++
		case "vt":
			info.TexCoords++
		case "f":
			if len(fields) < 4 {
				return nil, 0, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			info.Faces++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	if info.Vertices == 0 {
		return nil, 0, fmt.Errorf("no vertices")
	}
	return info, size, nil
}

func (ml *ModelLoader) Unload(*metadata.Resource) error {
	return nil
}
