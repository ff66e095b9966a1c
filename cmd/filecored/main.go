// Command filecored runs the filecore control plane: the actor mesh
// behind a multi-session file browser, plus its HTTP debug/metrics
// surface.
package main

import (
	"fmt"
	"os"

	"github.com/marmos91/filecore/cmd/filecored/commands"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
