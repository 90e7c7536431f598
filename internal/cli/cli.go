package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartblocks/pkg/buildinfo"
	"github.com/matzehuels/chartblocks/pkg/config"
	errs "github.com/matzehuels/chartblocks/pkg/errors"
	"github.com/matzehuels/chartblocks/pkg/source"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "chartblocks"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	in  io.Reader // answers for the input prompt
	out io.Writer // user-facing output

	configPath string
	verbose    bool
}

// New creates a CLI that prints to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Config: config.Default(),
		in:     os.Stdin,
		out:    out,
	}
}

// SetInput replaces the reader the input prompt reads from.
func (c *CLI) SetInput(r io.Reader) { c.in = r }

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var rootOpts renderOpts
	root := &cobra.Command{
		Use:   appName,
		Short: "Chartblocks turns CSV chart blocks into SVG charts",
		Long: `Chartblocks reads a table holding one or more chart blocks and exports one SVG per block.

Each block starts with a configuration row whose second field selects the mode:
"r" for bar and line charts, "c" for pie and donut charts. The rows that follow
hold one series each: a color, then the samples.

Run without a command, chartblocks asks for the input file name and renders it
like "chartblocks render".`,
		Args:          cobra.NoArgs,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)

			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderArgs(cmd.Context(), nil, rootOpts)
		},
	}
	rootOpts.bind(root)

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/chartblocks/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file named by --config, or the default one if
// it exists.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	path, explicit := c.configPath, true
	if path == "" {
		explicit = false
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config directory", "error", err)
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path, "default_input", cfg.Input.Default, "output_dir", cfg.Output.Dir)
	return nil
}

// =============================================================================
// Input Resolution
// =============================================================================

// openInput resolves name against the configured default input and returns
// the source to read. A missing name falls back to the default with a
// warning; a missing default is a MISSING_RESOURCE error.
func (c *CLI) openInput(name, sheet string) (source.Source, error) {
	path, fellBack, err := source.Resolve(name, c.Config.Input.Default)
	if err != nil {
		return nil, err
	}
	if fellBack {
		c.printWarning("%s not found, using %s", name, path)
		c.Logger.Debug("input fallback", "requested", name, "resolved", path,
			"code", errs.ErrCodeMissingResource)
	}
	if sheet == "" {
		sheet = c.Config.Input.Sheet
	}
	return source.ForPath(path, sheet), nil
}
