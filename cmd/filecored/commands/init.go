package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marmos91/filecore/internal/config"
)

var (
	initForce bool
	initRoot  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample filecore configuration file.

By default, the configuration file is created at
$XDG_CONFIG_HOME/filecore/config.yaml. Use --config to specify a custom
path, and --root to set the filesystem root it points at.

Examples:
  # Initialize with default location
  filecored init --root /srv/shared

  # Initialize with custom path
  filecored init --config /etc/filecore/config.yaml --root /srv/shared

  # Force overwrite an existing config file
  filecored init --root /srv/shared --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite an existing config file")
	initCmd.Flags().StringVar(&initRoot, "root", ".", "Filesystem root the provider serves")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := GetConfigFile()
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s, use --force to overwrite", path)
		}
	}

	cfg := &config.Config{
		Filesystem: config.FilesystemConfig{Root: initRoot},
	}
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the configuration file to customize your setup")
	fmt.Printf("  2. Start the server with: filecored serve --config %s\n", path)
	return nil
}
