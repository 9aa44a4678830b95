package metadata

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/core"
)

const (
	TrueToken  = "VK_TRUE"
	FalseToken = "VK_FALSE"
)

var (
	errNotABool   = errors.New("expected VK_TRUE or VK_FALSE")
	errNotAFloat  = errors.New("not a decimal number")
	errFloatRange = errors.New("out of the 32-bit float range")
)

// Bool is a boolean that renders as a Vulkan token in every text output.
type Bool bool

// Token returns VK_TRUE or VK_FALSE.
func (b Bool) Token() string {
	if b {
		return TrueToken
	}
	return FalseToken
}

func (b Bool) String() string {
	return b.Token()
}

// ParseBool accepts VK_TRUE/VK_FALSE and the bare TRUE/FALSE, case-insensitive.
func ParseBool(token string) (Bool, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case TrueToken, "TRUE":
		return true, nil
	case FalseToken, "FALSE":
		return false, nil
	}
	return false, &core.ParseError{Value: token, Err: errNotABool}
}

// NormalizeFloat parses a decimal number written with either ',' or '.' as
// separator. Values outside the float32 range are rejected.
func NormalizeFloat(s string) (float64, error) {
	text := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &core.ParseError{Value: s, Err: errNotAFloat}
	}
	// the header stores every value as a 32-bit float
	if math.Abs(v) > math.MaxFloat32 {
		return 0, &core.ParseError{Value: s, Err: errFloatRange}
	}
	return v, nil
}

// Float keeps the text a user typed next to its numeric value, so saving a
// project writes back exactly what was loaded.
type Float struct {
	text  string
	value float64
}

func NewFloat(v float64) Float {
	return Float{text: strconv.FormatFloat(v, 'f', -1, 64), value: v}
}

func ParseFloat(text string) (Float, error) {
	v, err := NormalizeFloat(text)
	if err != nil {
		return Float{}, err
	}
	return Float{text: strings.TrimSpace(text), value: v}, nil
}

func (f Float) Value() float64 {
	return f.value
}

// String returns the verbatim text.
func (f Float) String() string {
	if f.text == "" {
		return strconv.FormatFloat(f.value, 'f', -1, 64)
	}
	return f.text
}

// Literal renders a C++ float literal: always a decimal point, always the f
// suffix ("1,5" -> "1.5f", "2" -> "2.0f").
func (f Float) Literal() string {
	s := strconv.FormatFloat(f.value, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "f"
}

// Equal compares numerically; "1,5" equals "1.50".
func (f Float) Equal(other Float) bool {
	return f.value == other.value
}

// MarshalYAML emits the verbatim text.
func (f Float) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}
