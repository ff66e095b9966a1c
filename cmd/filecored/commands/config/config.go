// Package config implements the "filecored config" command group:
// inspecting and generating a schema for the daemon's configuration.
package config

import "github.com/spf13/cobra"

// Cmd is the "config" parent command, attached to the root by the
// top-level commands package.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate filecore configuration",
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(schemaCmd)
}
