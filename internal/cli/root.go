package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/wishlist/internal/config"
	"github.com/Makepad-fr/wishlist/internal/logger"
	"github.com/Makepad-fr/wishlist/internal/store/jsonstore"
	"github.com/Makepad-fr/wishlist/internal/store/memstore"
	"github.com/Makepad-fr/wishlist/internal/ui"
	"github.com/Makepad-fr/wishlist/internal/wishlist"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var Version = "dev"

// exitError carries an exit code. shown is set when the user has already
// seen the message.
type exitError struct {
	code  int
	err   error
	shown bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: ExitUsage, err: err} }

// usageArgs turns argument validation failures into usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageErr(err)
		}
		return nil
	}
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
	bridge  *wishlist.Bridge
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wishlist",
		Short: "Keep track of everything you wish for",
		Long: `wishlist keeps a list of things you wish for in a local JSON file.
Run it without arguments for the interactive view.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		Args:              usageArgs(cobra.NoArgs),
		RunE:              a.runUI,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErr(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("data-dir", "", "directory holding the wishlist file (default: current directory)")
	pf.String("slot", "", `name of the wishlist slot (default "wishlist")`)
	pf.String("theme", "", "color theme: classic, neon or mono")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.Bool("ephemeral", false, "keep the list in memory only")

	root.AddCommand(
		newUICommand(a),
		newAddCommand(a),
		newListCommand(a),
		newDoneCommand(a),
		newRemoveCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return exitCode(root.Execute(), stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.shown {
			ui.Fail(stderr, ee.Error())
		}
		return ee.code
	}
	ui.Fail(stderr, err.Error())
	return ExitError
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return usageErr(err)
	}
	a.cfg = cfg
	ui.SetTheme(cfg.UI.Theme)

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = log.WithFields("command", cmd.Name())

	var slot wishlist.Slot = jsonstore.New(cfg.Data.Dir, cfg.Data.Slot)
	if cfg.Data.Ephemeral {
		slot = memstore.New()
	}

	a.bridge = wishlist.NewBridge(slot, nil, a.log)
	a.bridge.Hydrate()
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.log != nil {
		_ = a.log.Close()
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wishlist version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wishlist %s\n", Version)
		},
	}
}
