package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/core"
)

const displayNamePrefix = "Graphics Pipeline "

var (
	identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	errBadName        = errors.New("display name does not form a C++ identifier")
)

// Entry is one named pipeline of a project.
type Entry struct {
	Handle core.Handle
	Name   string
	Record Record
}

// Collection is the ordered list of a project's pipelines. Records are unique
// by content; display names come from a counter that never goes back, so a
// removed pipeline's number is not handed out again.
type Collection struct {
	entries []Entry
	counter int
}

func NewCollection() *Collection {
	return &Collection{}
}

// DisplayName formats the name of the n-th pipeline ever added.
func DisplayName(n int) string {
	return displayNamePrefix + strconv.Itoa(n)
}

// Identifier turns a display name into the C++ variable name of its
// parameter block: "Graphics Pipeline 2" -> "graphics_pipeline_2".
func Identifier(displayName string) string {
	return strings.ReplaceAll(strings.ToLower(displayName), " ", "_")
}

// Add appends record under the next generated display name.
func (c *Collection) Add(record Record) (core.Handle, error) {
	if err := c.checkDuplicate(record); err != nil {
		return core.InvalidHandle, err
	}
	c.counter++
	for c.identifierTaken(Identifier(DisplayName(c.counter))) {
		c.counter++
	}
	e := Entry{Handle: core.NewHandle(), Name: DisplayName(c.counter), Record: record}
	c.entries = append(c.entries, e)
	core.LogDebug("pipeline added: %s", e.Name)
	return e.Handle, nil
}

// Insert appends record under an existing display name, as read back from a
// saved project. A "Graphics Pipeline N" name moves the counter past N. The
// name must give a valid identifier no other entry already maps to.
func (c *Collection) Insert(name string, record Record) (core.Handle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.Add(record)
	}
	ident := Identifier(name)
	if !identifierPattern.MatchString(ident) {
		return core.InvalidHandle, &core.ParseError{Field: "name", Value: name, Err: errBadName}
	}
	// names differing only in case would collide in the header
	if c.identifierTaken(ident) {
		return core.InvalidHandle, &core.DuplicateError{Kind: "pipeline name", Key: name}
	}
	if err := c.checkDuplicate(record); err != nil {
		return core.InvalidHandle, err
	}
	if n, ok := parseDisplayName(name); ok && n > c.counter {
		c.counter = n
	}
	e := Entry{Handle: core.NewHandle(), Name: name, Record: record}
	c.entries = append(c.entries, e)
	return e.Handle, nil
}

// Update replaces the record behind handle. Unlike Add it does not check the
// new content against the other entries.
func (c *Collection) Update(handle core.Handle, record Record) error {
	i := c.indexOf(handle)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrUnknownPipeline, handle)
	}
	c.entries[i].Record = record
	return nil
}

// Remove deletes the entries with the given display names and returns the
// names that were actually present.
func (c *Collection) Remove(names ...string) []string {
	var removed []string
	for _, name := range names {
		for i := range c.entries {
			if c.entries[i].Name == name {
				c.entries = append(c.entries[:i], c.entries[i+1:]...)
				removed = append(removed, name)
				break
			}
		}
	}
	return removed
}

func (c *Collection) Get(handle core.Handle) (Entry, bool) {
	if i := c.indexOf(handle); i >= 0 {
		return c.entries[i], true
	}
	return Entry{}, false
}

func (c *Collection) Lookup(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entries in insertion order.
func (c *Collection) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

func (c *Collection) Len() int {
	return len(c.entries)
}

// Counter is the number of pipelines ever added, including removed ones.
func (c *Collection) Counter() int {
	return c.counter
}

// Validate collects the missing shader inputs of every entry in one pass.
func (c *Collection) Validate() []core.MissingField {
	var missing []core.MissingField
	for _, e := range c.entries {
		missing = append(missing, e.Record.Validate(e.Name)...)
	}
	return missing
}

func (c *Collection) checkDuplicate(record Record) error {
	for _, e := range c.entries {
		if e.Record.Equal(record) {
			return &core.DuplicateError{Kind: "pipeline", Key: e.Name}
		}
	}
	return nil
}

func (c *Collection) identifierTaken(ident string) bool {
	for _, e := range c.entries {
		if Identifier(e.Name) == ident {
			return true
		}
	}
	return false
}

func (c *Collection) indexOf(handle core.Handle) int {
	for i, e := range c.entries {
		if e.Handle == handle {
			return i
		}
	}
	return -1
}

func parseDisplayName(name string) (int, bool) {
	if !strings.HasPrefix(name, displayNamePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, displayNamePrefix))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
