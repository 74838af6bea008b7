package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pp-tools/pizza-pulse/pkg/runtime/terminal/commands"
	"github.com/pp-tools/pizza-pulse/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	profilePath string
	reporter    *export.Reporter
	rootCmd     *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	// ProfilePath is the default location of the dataset profiles file.
	ProfilePath string
	Output      io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		profilePath: opts.ProfilePath,
		reporter:    export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pizzapulse",
		Short: "Sales aggregation and reporting tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.profilePath, cli.reporter))
	cmd.AddCommand(commands.NewProfilesCmd(cli.profilePath))

	return cmd
}
