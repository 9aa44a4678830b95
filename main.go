/*
vkeditor edits Graphical Vulkan Editor project files and generates the
C++ header the Vulkan project template compiles against.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spaghettifunk/vkeditor/editor/core"
)

type command struct {
	usage string
	args  int
	run   func(settings *core.Settings, args []string) int
}

var commands = map[string]command{
	"new":     {usage: "new <out.xml>", args: 1, run: runNew},
	"export":  {usage: "export <project.xml>", args: 1, run: runExport},
	"migrate": {usage: "migrate <in.xml> <out.xml>", args: 2, run: runMigrate},
	"dump":    {usage: "dump <project.xml>", args: 1, run: runDump},
	"watch":   {usage: "watch <project.xml>", args: 1, run: runWatch},
	"check":   {usage: "check <project.xml>", args: 1, run: runCheck},
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vkeditor [-config vkeditor.toml] [-log-level info] <command> [args]")
	for _, name := range []string{"new", "export", "migrate", "dump", "watch", "check"} {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
}

func main() {
	configPath := flag.String("config", core.SettingsFileName, "editor settings file")
	logLevel := flag.String("log-level", "", "overrides log_level from the settings file")
	flag.Usage = usage
	flag.Parse()

	settings, err := core.LoadSettings(*configPath)
	if err != nil {
		core.LogFatal(err.Error())
	}
	if *logLevel != "" {
		if err := core.SetLogLevel(*logLevel); err != nil {
			core.LogFatal(err.Error())
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[args[0]]
	if !ok || len(args)-1 != cmd.args {
		usage()
		os.Exit(2)
	}
	os.Exit(cmd.run(settings, args[1:]))
}
