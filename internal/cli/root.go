package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/rickgorman/conval/internal/config"
	"github.com/rickgorman/conval/internal/ui"
	"github.com/rickgorman/conval/pkg/console"
	"github.com/rickgorman/conval/pkg/validate"
	"github.com/spf13/cobra"
)

// Version is the conval release, overridable at build time.
var Version = "1.0.0-dev"

// settings is shared by all commands of one invocation.
type settings struct {
	noColor     bool
	debug       bool
	maxAttempts int

	config *config.Config
	logger *slog.Logger
	term   validate.Terminal
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:           "conval",
		Short:         "Read validated values from the terminal",
		Long:          "Prompt for typed values and re-ask in place until the input is valid.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&s.debug, "debug", false, "Log rejected input to stderr")
	root.PersistentFlags().IntVar(&s.maxAttempts, "max-attempts", 0, "Give up after this many rejected lines (0 = never)")

	root.AddCommand(
		newAskCmd(s),
		newEmailCmd(s),
		newColorCmd(s),
		newDateCmd(s),
		newMenuCmd(s),
		newFormCmd(s),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// load resolves configuration, applying flags over .conval/env and the
// environment, and sets up output and logging.
func (s *settings) load(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("no-color") {
		cfg.NoColor = s.noColor
	}
	if flags.Changed("debug") {
		cfg.Debug = s.debug
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = s.maxAttempts
	}
	s.config = cfg

	ui.Out = cmd.ErrOrStderr()
	ui.SetNoColor(cfg.NoColor)

	// Cursor control only on the process's own streams.
	in := cmd.InOrStdin()
	if in == io.Reader(os.Stdin) && ui.Out == io.Writer(os.Stderr) {
		con := console.New()
		ui.Out = con.Out()
		s.term = con
	} else {
		s.term = console.NewWithIO(in, ui.Out)
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(s.logger)
	return nil
}

// reader returns a validate.Reader on the invocation's console.
func (s *settings) reader() *validate.Reader {
	return validate.NewReader(s.term,
		validate.WithLogger(s.logger),
		validate.WithMaxAttempts(s.config.MaxAttempts),
	)
}
