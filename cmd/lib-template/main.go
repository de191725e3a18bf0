package main

import (
	"context"
	"os"

	"github.com/bitranox/lib-template/internal/app"
	"github.com/bitranox/lib-template/internal/cli"
	"github.com/bitranox/lib-template/internal/config"
	"github.com/bitranox/lib-template/internal/exitcode"
	"github.com/bitranox/lib-template/internal/logging"
	"github.com/bitranox/lib-template/internal/meta"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	project, err := meta.Load()
	if err != nil {
		logging.Error(err.Error())
		os.Exit(exitcode.Error)
	}
	if version != "dev" {
		project.Version = version
	}
	project.Commit = commit
	project.Date = date

	globals := cli.NewGlobals(config.DefaultSources())
	runner := &app.Runner{
		Root:    cli.NewRootCommand(globals, project),
		Globals: globals,
		Stderr:  os.Stderr,
	}

	code, err := runner.Run(context.Background(), os.Args[1:])
	_ = os.Stdout.Sync()
	if err != nil {
		// Traceback mode: let the runtime print the goroutine trace.
		panic(err)
	}
	os.Exit(code)
}
