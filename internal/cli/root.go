// Package cli implements the pint command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/pint/internal/app"
	"github.com/five82/pint/internal/buildinfo"
	"github.com/five82/pint/internal/config"
	"github.com/five82/pint/internal/logging"
)

type flags struct {
	date       bool
	mean       bool
	regexp     bool
	current    bool
	live       bool
	noColour   bool
	repository string
	file       string
	configPath string
	logLevel   string
}

// NewRootCmd builds the pint command.
func NewRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "pint [options] [packages]",
		Short: "Report package install times from the Paludis log",
		Long: `Pint parses a Paludis log file and prints the install time of one or more
packages, defaulting to all packages if none are specified.

Examples:
  pint
  pint -d gcc glibc
  pint -m -r gentoo,testing xorg-server
  pint -c`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}
	cmd.SetVersionTemplate("pint {{.Version}}\n")

	fl := cmd.Flags()
	fl.BoolVarP(&f.date, "date", "d", false, "display install start dates")
	fl.BoolVarP(&f.mean, "mean", "m", false, "calculate arithmetic mean of all matches")
	fl.BoolVarP(&f.regexp, "regexp", "e", false, "allow regular expressions in package names")
	fl.StringVarP(&f.repository, "repository", "r", "", "display packages from comma-separated list of repositories")
	fl.BoolVarP(&f.current, "current", "c", false, "display running time of current install")
	fl.BoolVarP(&f.live, "live", "l", false, "with --current, keep the elapsed time updating")
	fl.BoolVarP(&f.noColour, "no-colour", "C", false, "disable use of colour in program output")
	fl.StringVarP(&f.file, "file", "f", "", "path to the log file (default /var/log/paludis.log)")
	fl.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fl.StringVar(&f.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")

	return cmd
}

// Execute runs the pint command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := resolveOptions(cmd, args, f, cfg)

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = f.logLevel
	}
	logging.Init(cmd.ErrOrStderr(), logging.ParseLevel(level))

	return app.Run(cmd.Context(), opts)
}

// resolveOptions merges config file defaults with explicitly set flags.
func resolveOptions(cmd *cobra.Command, args []string, f *flags, cfg config.Config) app.Options {
	opts := app.Options{
		LogPath:    cfg.LogFile,
		Repository: cfg.Repository,
		Terms:      args,
		ShowDate:   cfg.ShowDate || f.date,
		Mean:       f.mean,
		UseRegex:   f.regexp,
		Current:    f.current,
		Live:       f.live,
		NoColour:   !cfg.Colour || f.noColour,
		Stdout:     cmd.OutOrStdout(),
	}
	if cmd.Flags().Changed("file") {
		opts.LogPath = f.file
	}
	if cmd.Flags().Changed("repository") {
		opts.Repository = f.repository
	}
	return opts
}
