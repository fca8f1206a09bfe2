// Package cli implements the nodesdemo command-line interface.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/nodes"
)

const appName = "nodesdemo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger. The logger also
// receives the nodes and gg library logs.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	c.installLibraryLoggers()
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) installLibraryLoggers() {
	sl := slog.New(c.Logger)
	nodes.SetLogger(sl.With("lib", "nodes"))
	gg.SetLogger(sl.With("lib", "gg"))
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "nodesdemo plays scripted node-graph editor sessions",
		Long:         `nodesdemo runs a scene (nodes, links and a script of mouse input) through the immediate-mode node editor without a window, then renders the last frame or reports what the editor saw.`,
		Version:      nodes.Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.targetsCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printKeyValue(cmd.OutOrStdout(), appName, nodes.Version)
		},
	}
}
