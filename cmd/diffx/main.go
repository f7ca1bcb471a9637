// cmd/diffx is the command-line front end (SPEC_FULL.md §6's CLI surface),
// kept as thin as the teacher's main.go: all behavior lives in package
// diffx, main only wires os.Args/os.Stdout/os.Stderr and translates the
// result into a process exit code.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kako-jun/diffx-go/pkg/diffx"
)

// Version information, overridable at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	log := diffx.NewLogger(os.Stderr, logrus.WarnLevel)

	root := diffx.NewRootCommand(os.Stdout, os.Stderr, log)
	root.Version = version + " (" + commit + ")"

	err := root.Execute()
	if err != nil && err.Error() != "" {
		if _, printErr := os.Stderr.WriteString("Error: " + err.Error() + "\n"); printErr != nil {
			log.WithError(printErr).Error("failed to write error output")
		}
	}

	os.Exit(diffx.ExitCodeFor(err))
}
