package metadata

import "strings"

// ColorWriteMask is the set of color channels a pipeline writes.
type ColorWriteMask uint8

const (
	ColorComponentR ColorWriteMask = 1 << iota
	ColorComponentG
	ColorComponentB
	ColorComponentA

	ColorWriteMaskAll = ColorComponentR | ColorComponentG | ColorComponentB | ColorComponentA
)

// UnknownColorWriteMaskPolicy is what ParseColorWriteMask yields for text that
// is not a combination of R, G, B and A. Preview and header output fall back
// to writing every channel.
var UnknownColorWriteMaskPolicy = ColorWriteMaskAll

var colorComponents = []struct {
	bit    ColorWriteMask
	letter byte
	name   string
}{
	{ColorComponentR, 'R', "VK_COLOR_COMPONENT_R_BIT"},
	{ColorComponentG, 'G', "VK_COLOR_COMPONENT_G_BIT"},
	{ColorComponentB, 'B', "VK_COLOR_COMPONENT_B_BIT"},
	{ColorComponentA, 'A', "VK_COLOR_COMPONENT_A_BIT"},
}

// ParseColorWriteMask reads strings such as "RGBA", "AGBR" or "RG". Letter
// order and repetition do not matter. Anything else, the empty string
// included, resolves to UnknownColorWriteMaskPolicy.
func ParseColorWriteMask(s string) ColorWriteMask {
	mask, ok := parseColorWriteMask(s)
	if !ok {
		return UnknownColorWriteMaskPolicy
	}
	return mask
}

// IsColorWriteMask reports whether s parses without the fallback.
func IsColorWriteMask(s string) bool {
	_, ok := parseColorWriteMask(s)
	return ok
}

func parseColorWriteMask(s string) (ColorWriteMask, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	var mask ColorWriteMask
	for i := 0; i < len(s); i++ {
		found := false
		for _, c := range colorComponents {
			if s[i] == c.letter {
				mask |= c.bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return mask, true
}

func (m ColorWriteMask) Has(bit ColorWriteMask) bool {
	return m&bit == bit
}

// String renders the canonical RGBA-ordered letters.
func (m ColorWriteMask) String() string {
	var sb strings.Builder
	for _, c := range colorComponents {
		if m.Has(c.bit) {
			sb.WriteByte(c.letter)
		}
	}
	return sb.String()
}

// Expand renders the mask as an OR of Vulkan component bit names.
func (m ColorWriteMask) Expand() string {
	if m == 0 {
		return "0"
	}
	names := make([]string, 0, len(colorComponents))
	for _, c := range colorComponents {
		if m.Has(c.bit) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, " | ")
}
