package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/formbuilder/internal/config"
	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
	"github.com/alexisbeaulieu97/formbuilder/internal/session"
	"github.com/alexisbeaulieu97/formbuilder/internal/tui"
)

var errNotInteractive = errors.New("formbuilder needs an interactive terminal; use 'formbuilder replay <script>' for headless runs")

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "formbuilder",
		Short:         "Compose forms by dragging fields onto a canvas",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuilder(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default: user config dir)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newElementsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configuration selected by the persistent flags.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the logger for cfg. w receives entries unless cfg names a
// log file.
func newLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	log, err := logger.New(cfg.LoggerOptions(w))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

func runBuilder(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(os.Stdout) {
		return errNotInteractive
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The screen belongs to bubbletea; log only to a configured file.
	log, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer log.Close()

	initial := cfg.InitialState()
	s := session.New(session.Options{
		Themes:  cfg.Registry(),
		Initial: &initial,
		Logger:  log,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	model := tui.NewModel(tui.Options{Session: s, Logger: log, Unicode: cfg.UI.Unicode})
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		log.Error(err, "builder exited with error")
		return fmt.Errorf("run builder: %w", err)
	}

	log.Info("builder closed", "elements", len(s.Elements()))
	return nil
}

func isTerminal(file *os.File) bool {
	return termIsTerminal(int(file.Fd()))
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
