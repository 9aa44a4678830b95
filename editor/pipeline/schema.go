package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/renderer/metadata"
)

// Revision is a schema version, named after its field count. Revisions only
// ever append fields.
type Revision int

const (
	Revision39 Revision = 39 // fixed-function state only
	Revision43 Revision = 43 // + shader files and entry points
	Revision45 Revision = 45 // + code generation flags

	LatestRevision = Revision45
)

func (r Revision) FieldCount() int {
	return int(r)
}

func (r Revision) Valid() bool {
	return r == Revision39 || r == Revision43 || r == Revision45
}

type field struct {
	tag string
	get func(r *Record) string
	set func(r *Record, value string) error
}

func boolField(tag string, ptr func(r *Record) *metadata.Bool) field {
	return field{
		tag: tag,
		get: func(r *Record) string { return ptr(r).Token() },
		set: func(r *Record, value string) error {
			b, err := metadata.ParseBool(value)
			if err != nil {
				return err
			}
			*ptr(r) = b
			return nil
		},
	}
}

func floatField(tag string, ptr func(r *Record) *metadata.Float) field {
	return field{
		tag: tag,
		get: func(r *Record) string { return ptr(r).String() },
		set: func(r *Record, value string) error {
			f, err := metadata.ParseFloat(value)
			if err != nil {
				return err
			}
			*ptr(r) = f
			return nil
		},
	}
}

// Enum names are stored as read. Unknown names are caught where they are
// consumed, not here.
func enumField[T ~string](tag string, ptr func(r *Record) *T) field {
	return field{
		tag: tag,
		get: func(r *Record) string { return string(*ptr(r)) },
		set: func(r *Record, value string) error {
			*ptr(r) = T(strings.TrimSpace(value))
			return nil
		},
	}
}

var errAttachmentRange = fmt.Errorf("attachment count must be within [%d, %d]", MinAttachmentCount, MaxAttachmentCount)

// stringField keeps paths and entry points verbatim, padding included.
func stringField(tag string, ptr func(r *Record) *string) field {
	return field{
		tag: tag,
		get: func(r *Record) string { return *ptr(r) },
		set: func(r *Record, value string) error {
			*ptr(r) = value
			return nil
		},
	}
}

// schema is the single position -> tag table shared by every revision.
var schema = []field{
	enumField("vertexTopologyInput", func(r *Record) *metadata.Topology { return &r.Topology }),
	boolField("primitiveRestartInput", func(r *Record) *metadata.Bool { return &r.PrimitiveRestart }),
	boolField("depthClampInput", func(r *Record) *metadata.Bool { return &r.DepthClamp }),
	boolField("rasterizerDiscardInput", func(r *Record) *metadata.Bool { return &r.RasterizerDiscard }),
	enumField("polygonModeInput", func(r *Record) *metadata.PolygonMode { return &r.PolygonMode }),
	floatField("lineWidthInput", func(r *Record) *metadata.Float { return &r.LineWidth }),
	enumField("cullModeInput", func(r *Record) *metadata.CullMode { return &r.CullMode }),
	enumField("frontFaceInput", func(r *Record) *metadata.FrontFace { return &r.FrontFace }),
	boolField("depthBiasEnabledInput", func(r *Record) *metadata.Bool { return &r.DepthBiasEnable }),
	floatField("slopeFactorInput", func(r *Record) *metadata.Float { return &r.DepthBiasSlope }),
	floatField("constantFactorInput", func(r *Record) *metadata.Float { return &r.DepthBiasConstant }),
	floatField("biasClampInput", func(r *Record) *metadata.Float { return &r.DepthBiasClamp }),
	boolField("depthTestInput", func(r *Record) *metadata.Bool { return &r.DepthTest }),
	boolField("depthWriteInput", func(r *Record) *metadata.Bool { return &r.DepthWrite }),
	enumField("depthCompareOperationInput", func(r *Record) *metadata.CompareOp { return &r.DepthCompareOp }),
	boolField("depthBoundsTestInput", func(r *Record) *metadata.Bool { return &r.DepthBoundsTest }),
	floatField("depthBoundsMinInput", func(r *Record) *metadata.Float { return &r.DepthBoundsMin }),
	floatField("depthBoundsMaxInput", func(r *Record) *metadata.Float { return &r.DepthBoundsMax }),
	boolField("stencilTestInput", func(r *Record) *metadata.Bool { return &r.StencilTest }),
	boolField("sampleShadingInput", func(r *Record) *metadata.Bool { return &r.SampleShading }),
	enumField("rasterizationSamplesInput", func(r *Record) *metadata.SampleCount { return &r.RasterizationSamples }),
	floatField("minSampleShadingInput", func(r *Record) *metadata.Float { return &r.MinSampleShading }),
	boolField("alphaToCoverageInput", func(r *Record) *metadata.Bool { return &r.AlphaToCoverage }),
	boolField("alphaToOneInput", func(r *Record) *metadata.Bool { return &r.AlphaToOne }),
	{
		tag: "colorWriteMaskInput",
		get: func(r *Record) string { return r.ColorWriteMask.String() },
		set: func(r *Record, value string) error {
			if !metadata.IsColorWriteMask(value) {
				core.LogWarn("color write mask %q not recognized, writing all channels", value)
			}
			r.ColorWriteMask = metadata.ParseColorWriteMask(value)
			return nil
		},
	},
	boolField("colorBlendInput", func(r *Record) *metadata.Bool { return &r.BlendEnable }),
	enumField("sourceColorBlendFactorInput", func(r *Record) *metadata.BlendFactor { return &r.SrcColorBlendFactor }),
	enumField("destinationColorBlendFactorInput", func(r *Record) *metadata.BlendFactor { return &r.DstColorBlendFactor }),
	enumField("colorBlendOperationInput", func(r *Record) *metadata.BlendOp { return &r.ColorBlendOp }),
	enumField("sourceAlphaBlendFactorInput", func(r *Record) *metadata.BlendFactor { return &r.SrcAlphaBlendFactor }),
	enumField("destinationAlphaBlendFactorInput", func(r *Record) *metadata.BlendFactor { return &r.DstAlphaBlendFactor }),
	enumField("alphaBlendOperationInput", func(r *Record) *metadata.BlendOp { return &r.AlphaBlendOp }),
	boolField("logicOperationEnabledInput", func(r *Record) *metadata.Bool { return &r.LogicOpEnable }),
	enumField("logicOperationInput", func(r *Record) *metadata.LogicOp { return &r.LogicOp }),
	{
		tag: "attachmentCountInput",
		get: func(r *Record) string { return strconv.FormatUint(uint64(r.AttachmentCount), 10) },
		set: func(r *Record, value string) error {
			n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
			if err != nil {
				return &core.ParseError{Value: value, Err: err}
			}
			if n < MinAttachmentCount || n > MaxAttachmentCount {
				return &core.ParseError{Value: value, Err: errAttachmentRange}
			}
			r.AttachmentCount = uint32(n)
			return nil
		},
	},
	floatField("blendConstant0Input", func(r *Record) *metadata.Float { return &r.BlendConstants[0] }),
	floatField("blendConstant1Input", func(r *Record) *metadata.Float { return &r.BlendConstants[1] }),
	floatField("blendConstant2Input", func(r *Record) *metadata.Float { return &r.BlendConstants[2] }),
	floatField("blendConstant3Input", func(r *Record) *metadata.Float { return &r.BlendConstants[3] }),
	// Revision43
	stringField("vertexShaderFileInput", func(r *Record) *string { return &r.VertexShaderPath }),
	stringField("vertexShaderEntryFunctionNameInput", func(r *Record) *string { return &r.VertexEntryPoint }),
	stringField("fragmentShaderFileInput", func(r *Record) *string { return &r.FragmentShaderPath }),
	stringField("fragmentShaderEntryFunctionNameInput", func(r *Record) *string { return &r.FragmentEntryPoint }),
	// Revision45
	boolField("reduceSpirvCodeSizeCheckBox", func(r *Record) *metadata.Bool { return &r.ReduceCodeSize }),
	boolField("useIndexedVerticesCheckBox", func(r *Record) *metadata.Bool { return &r.UseIndexedVertices }),
}

var schemaIndex = func() map[string]int {
	index := make(map[string]int, len(schema))
	for i, f := range schema {
		index[f.tag] = i
	}
	return index
}()

// Tags returns the element names of a revision in schema order.
func Tags(rev Revision) []string {
	n := min(rev.FieldCount(), len(schema))
	tags := make([]string, n)
	for i := 0; i < n; i++ {
		tags[i] = schema[i].tag
	}
	return tags
}

// IsFieldTag reports whether tag names a pipeline field in any revision.
func IsFieldTag(tag string) bool {
	_, ok := schemaIndex[tag]
	return ok
}

// Fields returns the record in its positional text form for rev.
func (r Record) Fields(rev Revision) []string {
	n := min(rev.FieldCount(), len(schema))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = schema[i].get(&r)
	}
	return out
}

// baseRecord is what fields absent from an older revision migrate to: the
// form defaults with empty shader bindings and cleared generation flags.
func baseRecord() Record {
	r := DefaultRecord()
	r.VertexEntryPoint = ""
	r.FragmentEntryPoint = ""
	return r
}

// RecordFromFields rebuilds a record from a positional tuple of 39, 43 or 45
// values, migrating older revisions forward.
func RecordFromFields(fields []string) (Record, Revision, error) {
	rev := Revision(len(fields))
	if !rev.Valid() {
		return Record{}, 0, fmt.Errorf("unsupported pipeline schema: %d fields", len(fields))
	}
	values := make(map[string]string, len(fields))
	for i, v := range fields {
		values[schema[i].tag] = v
	}
	r, _, err := RecordFromTags(values)
	return r, rev, err
}

// RecordFromTags rebuilds a record from tag -> text pairs. Missing tags keep
// their migration defaults; the returned revision is the oldest one covering
// every tag present.
func RecordFromTags(values map[string]string) (Record, Revision, error) {
	r := baseRecord()
	highest := -1
	for i, f := range schema {
		v, ok := values[f.tag]
		if !ok {
			continue
		}
		if err := f.set(&r, v); err != nil {
			var perr *core.ParseError
			if errors.As(err, &perr) && perr.Field == "" {
				perr.Field = f.tag
			}
			return Record{}, 0, fmt.Errorf("pipeline field %s: %w", f.tag, err)
		}
		highest = i
	}
	rev := Revision39
	switch {
	case highest >= Revision43.FieldCount():
		rev = Revision45
	case highest >= Revision39.FieldCount():
		rev = Revision43
	}
	return r, rev, nil
}
