// Package cli provides the command-line interface for Sunsetology.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sunsetology/internal/config"
	"github.com/jmylchreest/sunsetology/internal/version"
)

// globalOptions is shared by every subcommand.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configFile string

	logger hclog.Logger
	config *config.Config
}

// NewRootCmd builds the sunsetology command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "sunsetology",
		Short: "Sunset colour palettes from your photos",
		Long: `Sunsetology extracts a small, visually distinct colour palette from a photo,
favouring the warm tones of a sunset, and turns it into gradients, wallpapers
and shareable cards.

Settings can also come from SUNSETOLOGY_* environment variables or a YAML file
at $XDG_CONFIG_HOME/sunsetology/config.yaml.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/sunsetology/config.yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))

	return rootCmd
}

// setup creates the logger and resolves configuration for cmd.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	level := hclog.Info
	switch {
	case o.verbose:
		level = hclog.Debug
	case o.quiet:
		level = hclog.Error
	}
	o.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "sunsetology",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	cfg, err := config.Load(cmd.Flags(), o.configFile)
	if err != nil {
		return err
	}
	o.config = cfg
	if f := cfg.File(); f != "" {
		o.logger.Debug("loaded config file", "path", f)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
