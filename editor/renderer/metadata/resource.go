package metadata

// ResourceType classifies a file a project references.
type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeProject
	ResourceTypeModel
	ResourceTypeTexture
	ResourceTypeShader
)

func (r ResourceType) String() string {
	switch r {
	case ResourceTypeProject:
		return "project"
	case ResourceTypeModel:
		return "model"
	case ResourceTypeTexture:
		return "texture"
	case ResourceTypeShader:
		return "shader"
	}
	return "none"
}

// Resource is what a loader hands back. Data holds one of the *Info types below.
type Resource struct {
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	Data     interface{}
}

type TextureInfo struct {
	Format string
	Width  int
	Height int
}

type ModelInfo struct {
	Vertices  int
	Normals   int
	TexCoords int
	Faces     int
}

type ShaderInfo struct {
	Stage      string
	EntryPoint string
	Source     []byte
}

// ShaderParams is passed to the shader loader; an empty EntryPoint skips the
// entry point check.
type ShaderParams struct {
	EntryPoint string
}
