package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

type TextureLoader struct{}

// Load only decodes the image header; the generated project loads the pixels
// itself.
func (tl *TextureLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("texture %s has an empty extent %dx%d", path, cfg.Width, cfg.Height)
	}
	return &metadata.Resource{
		Name:     info.Name(),
		FullPath: path,
		Type:     assetType,
		DataSize: uint64(info.Size()),
		Data: &metadata.TextureInfo{
			Format: format,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
	}, nil
}

func (tl *TextureLoader) Unload(*metadata.Resource) error {
	return nil
}
