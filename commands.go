package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/vkeditor/editor"
	"github.com/spaghettifunk/vkeditor/editor/core"
	"github.com/spaghettifunk/vkeditor/editor/pipeline"
	"github.com/spaghettifunk/vkeditor/editor/project"
)

const (
	exitOK = iota
	exitFailure
	exitReexport
)

func open(settings *core.Settings, path string) (*editor.Editor, bool) {
	e := editor.New(settings)
	if err := e.Open(path); err != nil {
		core.LogError(err.Error())
		return nil, false
	}
	return e, true
}

func runNew(settings *core.Settings, args []string) int {
	e := editor.New(settings)
	defer e.Close()
	if err := e.Save(args[0]); err != nil {
		return exitFailure
	}
	return exitOK
}

// runExport saves the project when defaults were filled in, so running the
// command again picks them up.
func runExport(settings *core.Settings, args []string) int {
	e, ok := open(settings, args[0])
	if !ok {
		return exitFailure
	}
	defer e.Close()

	outcome, err := e.Export()
	switch outcome {
	case project.OutcomeNeedsReexport:
		if err := e.Save(""); err != nil {
			return exitFailure
		}
		fmt.Fprintln(os.Stderr, "default device extensions were selected; run export again to confirm")
		return exitReexport
	case project.OutcomeRejected:
		core.LogError(err.Error())
		return exitFailure
	}
	if err != nil {
		core.LogError(err.Error())
		return exitFailure
	}
	return exitOK
}

func runMigrate(settings *core.Settings, args []string) int {
	e, ok := open(settings, args[0])
	if !ok {
		return exitFailure
	}
	defer e.Close()
	if err := e.Save(args[1]); err != nil {
		return exitFailure
	}
	return exitOK
}

func runDump(settings *core.Settings, args []string) int {
	e, ok := open(settings, args[0])
	if !ok {
		return exitFailure
	}
	defer e.Close()

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(dumpProject(e.Project())); err != nil {
		core.LogError(err.Error())
		return exitFailure
	}
	return exitOK
}

func runWatch(settings *core.Settings, args []string) int {
	e, ok := open(settings, args[0])
	if !ok {
		return exitFailure
	}
	defer e.Close()

	report := func(outcome project.ExportOutcome, err error) {
		if err != nil {
			core.LogError("export %s: %s", outcome, err)
			return
		}
		core.LogInfo("export %s", outcome)
	}
	report(e.Export())
	if err := e.Watch(report); err != nil {
		core.LogError(err.Error())
		return exitFailure
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh
	return exitOK
}

func runCheck(settings *core.Settings, args []string) int {
	e, ok := open(settings, args[0])
	if !ok {
		return exitFailure
	}
	defer e.Close()

	errs := e.CheckAssets()
	if len(errs) > 0 {
		return exitFailure
	}
	fmt.Println("all referenced assets are present")
	return exitOK
}

type dumpPipeline struct {
	Name   string     `yaml:"name"`
	Fields *yaml.Node `yaml:"fields"`
}

type dump struct {
	Instance       project.Instance       `yaml:"instance"`
	PhysicalDevice project.PhysicalDevice `yaml:"physical_device"`
	Extensions     []string               `yaml:"extensions"`
	Swapchain      project.Swapchain      `yaml:"swapchain"`
	Model          project.Model          `yaml:"model"`
	Graphics       project.Graphics       `yaml:"graphics"`
	Pipelines      []dumpPipeline         `yaml:"pipelines"`
}

// dumpProject keeps pipeline fields in schema order.
func dumpProject(p *project.Project) dump {
	d := dump{
		Instance:       p.Instance,
		PhysicalDevice: p.PhysicalDevice,
		Extensions:     p.SelectedExtensions(),
		Swapchain:      p.Swapchain,
		Model:          p.Model,
		Graphics:       p.Graphics,
	}
	tags := pipeline.Tags(pipeline.LatestRevision)
	for _, entry := range p.Pipelines.Entries() {
		fields := &yaml.Node{Kind: yaml.MappingNode}
		for i, value := range entry.Record.Fields(pipeline.LatestRevision) {
			fields.Content = append(fields.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: tags[i]},
				&yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: yaml.DoubleQuotedStyle},
			)
		}
		d.Pipelines = append(d.Pipelines, dumpPipeline{Name: entry.Name, Fields: fields})
	}
	return d
}
