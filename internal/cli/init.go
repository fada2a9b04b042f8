package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/settings"
)

// initCommand creates the init command that writes a default settings file.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [settings-file]",
		Short: "Write the default settings to a file",
		Long: `Write the default settings to a file.

The file extension picks the encoding: .json, .toml, .yaml or .yml. Every
key the plot command requires is present, so the file is a complete
starting point for your own figures.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSettingsFile
			if len(args) == 1 {
				path = args[0]
			}
			return writeDefaultSettings(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// writeDefaultSettings writes settings.Default() to path.
func writeDefaultSettings(path string, force bool) error {
	if _, err := settings.FormatFromPath(path); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeIO, "%s already exists (use --force to overwrite)", path)
		}
	}
	if err := settings.Default().Write(path); err != nil {
		return err
	}

	printSuccess("Wrote default settings")
	printFile(path)
	printNextStep("Plot", appName+" plot -f <file> -s "+path)
	return nil
}
