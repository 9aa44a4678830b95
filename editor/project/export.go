package project

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/vkeditor/editor/core"
)

// State tracks how far the current export attempt got.
type State int

const (
	Incomplete State = iota
	DefaultsApplied
	Ready
	Exported
	Rejected
)

func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case DefaultsApplied:
		return "defaults applied"
	case Ready:
		return "ready"
	case Exported:
		return "exported"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// ExportOutcome tells the caller what to do after PrepareExport.
type ExportOutcome int

const (
	// OutcomeReady means the header can be generated now.
	OutcomeReady ExportOutcome = iota
	// OutcomeNeedsReexport means defaults were filled in; the user must
	// confirm by exporting again.
	OutcomeNeedsReexport
	// OutcomeRejected means inputs are missing; see the returned error.
	OutcomeRejected
)

func (o ExportOutcome) String() string {
	switch o {
	case OutcomeReady:
		return "ready"
	case OutcomeNeedsReexport:
		return "needs re-export"
	case OutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

const LabelApplicationName = "Application Name"

func (p *Project) State() State {
	return p.state
}

// PrepareExport runs the checks that gate header generation.
//
// With no device extension selected, the default extensions are added and
// selected and the export stops there: the caller gets OutcomeNeedsReexport
// and no error. With no defaults to fall back on the export is rejected with
// core.ErrEmptyInput. Otherwise every missing input (application name, shader
// bindings of every pipeline) is reported in a single ValidationError.
// Injected defaults stay in place whatever the outcome.
func (p *Project) PrepareExport() (ExportOutcome, error) {
	if len(p.SelectedExtensions()) == 0 {
		p.SelectExtensions(p.DefaultExtensions...)
		if len(p.SelectedExtensions()) == 0 {
			p.state = Rejected
			err := fmt.Errorf("no device extension selected and no defaults to apply: %w", core.ErrEmptyInput)
			core.LogWarn(err.Error())
			return OutcomeRejected, err
		}
		p.state = DefaultsApplied
		core.LogInfo("no device extension selected, using the defaults: %s; export again to confirm",
			strings.Join(p.DefaultExtensions, ", "))
		return OutcomeNeedsReexport, nil
	}

	var missing []core.MissingField
	if strings.TrimSpace(p.Instance.ApplicationName) == "" {
		missing = append(missing, core.MissingField{Field: LabelApplicationName})
	}
	missing = append(missing, p.Pipelines.Validate()...)
	if len(missing) > 0 {
		p.state = Rejected
		err := &core.ValidationError{Missing: missing}
		core.LogWarn(err.Error())
		return OutcomeRejected, err
	}

	if err := p.CheckRanges(); err != nil {
		p.state = Rejected
		core.LogWarn(err.Error())
		return OutcomeRejected, err
	}

	p.state = Ready
	return OutcomeReady, nil
}

// MarkExported records a successful generation. Only a Ready project can be
// marked.
func (p *Project) MarkExported() error {
	if p.state != Ready {
		return fmt.Errorf("cannot mark project exported from state %s", p.state)
	}
	p.state = Exported
	return nil
}

// NeedsReexport reports whether the last PrepareExport filled in defaults.
func (p *Project) NeedsReexport() bool {
	return p.state == DefaultsApplied
}

func (p *Project) touch() {
	p.state = Incomplete
}
