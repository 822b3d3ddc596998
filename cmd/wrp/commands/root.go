// Package commands implements the CLI commands for wrp.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wrp/internal/app"
	"go.trai.ch/wrp/internal/build"
)

// CLI represents the command line interface for wrp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options)

	PrintPrimary(ctx context.Context) error
	PrintPS1(ctx context.Context) error
	PrintColorsJSON(ctx context.Context) error
	PrintPalette(ctx context.Context) error
	InvalidateColors() error
	WatchColors(ctx context.Context) error

	ShowAudio(ctx context.Context) error
	ToggleAudio(ctx context.Context) error
	SetDefaultSink(ctx context.Context, id uint32) error

	Hypr(ctx context.Context, words []string, asJSON bool) error
	ShowMonitors(ctx context.Context) error

	ShowSystem(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wrp",
		Short:         "Wallpaper colors, audio and Hyprland helpers for the desktop",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Report how long each operation took")

	// Registered after the persistent flags so -v stays with --verbose.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		trace, _ := cmd.Flags().GetBool("trace")
		c.app.Configure(app.Options{Verbose: verbose, JSONLogs: jsonLogs, Trace: trace})
	}

	rootCmd.AddCommand(c.newColorsCmd())
	rootCmd.AddCommand(c.newAudioCmd())
	rootCmd.AddCommand(c.newHyprCmd())
	rootCmd.AddCommand(c.newMonitorsCmd())
	rootCmd.AddCommand(c.newSysCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
