package project

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/vkeditor/editor/core"
)

// AddExtension appends a device extension and selects it.
func (p *Project) AddExtension(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.ErrEmptyInput
	}
	if p.findExtension(name) >= 0 {
		return &core.DuplicateError{Kind: "extension", Key: name}
	}
	p.LogicalDevice.Extensions = append(p.LogicalDevice.Extensions, Extension{Name: name, Selected: true})
	p.touch()
	return nil
}

// RemoveExtensions drops the named extensions. The default extensions cannot
// be removed; asking to is reported after the others are gone.
func (p *Project) RemoveExtensions(names ...string) ([]string, error) {
	var removed []string
	var protected []string
	for _, name := range names {
		if slices.Contains(p.DefaultExtensions, name) {
			protected = append(protected, name)
			continue
		}
		if i := p.findExtension(name); i >= 0 {
			p.LogicalDevice.Extensions = slices.Delete(p.LogicalDevice.Extensions, i, i+1)
			removed = append(removed, name)
		}
	}
	if len(removed) > 0 {
		p.touch()
	}
	if len(protected) > 0 {
		return removed, fmt.Errorf("%w: %s", core.ErrProtectedExtension, strings.Join(protected, ", "))
	}
	return removed, nil
}

// SelectExtensions marks the named extensions selected, adding the ones not
// yet known. It reports whether anything was added.
func (p *Project) SelectExtensions(names ...string) bool {
	added := false
	for _, name := range names {
		if i := p.findExtension(name); i >= 0 {
			p.LogicalDevice.Extensions[i].Selected = true
			continue
		}
		p.LogicalDevice.Extensions = append(p.LogicalDevice.Extensions, Extension{Name: name, Selected: true})
		added = true
	}
	p.touch()
	return added
}

// DeselectExtensions clears the selection of the named extensions.
func (p *Project) DeselectExtensions(names ...string) {
	for _, name := range names {
		if i := p.findExtension(name); i >= 0 {
			p.LogicalDevice.Extensions[i].Selected = false
		}
	}
	p.touch()
}

// SelectedExtensions returns the selected extension names in list order.
func (p *Project) SelectedExtensions() []string {
	var out []string
	for _, e := range p.LogicalDevice.Extensions {
		if e.Selected {
			out = append(out, e.Name)
		}
	}
	return out
}

func (p *Project) findExtension(name string) int {
	return slices.IndexFunc(p.LogicalDevice.Extensions, func(e Extension) bool {
		return e.Name == name
	})
}
