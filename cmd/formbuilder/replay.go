package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formbuilder/internal/render"
	"github.com/alexisbeaulieu97/formbuilder/internal/script"
	"github.com/alexisbeaulieu97/formbuilder/internal/session"
	"github.com/alexisbeaulieu97/formbuilder/pkg/diff"
)

type replayOptions struct {
	ScriptPath string
	Trace      bool
	Outline    bool
	Width      int
	Unicode    bool

	unicodeSet bool
}

func newReplayCmd(root *rootFlags) *cobra.Command {
	opts := replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script-file>",
		Short: "Build a form headlessly from a YAML event script",
		Long: `Replay applies the events of a script to a fresh session and prints the
resulting screen. Unknown drop and theme tokens are ignored, exactly as they
are in the interactive builder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScriptPath = args[0]
			opts.unicodeSet = cmd.Flags().Changed("unicode")
			return runReplay(cmd.OutOrStdout(), cmd.ErrOrStderr(), root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Print a diff of the screen after every event")
	cmd.Flags().BoolVar(&opts.Outline, "outline", false, "Print a plain outline of the form instead of the screen")
	cmd.Flags().IntVar(&opts.Width, "width", render.DefaultWidth, "Screen width in cells")
	cmd.Flags().BoolVar(&opts.Unicode, "unicode", false, "Use emoji and box glyphs (default: ui.unicode from config)")

	return cmd
}

func runReplay(out, errOut io.Writer, root *rootFlags, opts replayOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if !opts.unicodeSet {
		opts.Unicode = cfg.UI.Unicode
	}
	log, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}
	defer log.Close()

	sc, err := script.Load(opts.ScriptPath)
	if err != nil {
		return err
	}
	log = log.WithFields(map[string]any{"script": opts.ScriptPath})

	initial := cfg.InitialState()
	s := session.New(session.Options{
		Themes:  cfg.Registry(),
		Initial: &initial,
		Logger:  log,
	})

	screen := func() string {
		return render.Render(s.Tree(), s.Style(), render.Options{
			Width:   opts.Width,
			Unicode: opts.Unicode,
			Themes:  s.Themes(),
		}).Output
	}

	events := sc.Events()
	accepted := 0
	before := screen()
	for i, ev := range events {
		ok := s.Dispatch(ev)
		if ok {
			accepted++
		}
		if !opts.Trace {
			continue
		}

		status := "applied"
		if !ok {
			status = "ignored"
		}
		fmt.Fprintf(out, "# event %d: %s (%s)\n", i+1, ev, status)

		after := screen()
		if d, stat := diff.LinesWithStat(before, after, "before", "after"); d != "" {
			fmt.Fprint(out, d)
			fmt.Fprintf(out, "(+%d/-%d lines)\n", stat.Added, stat.Removed)
		} else {
			fmt.Fprintln(out, "(no visual change)")
		}
		before = after
	}

	if opts.Outline {
		fmt.Fprint(out, render.Outline(s.Tree()))
	} else {
		fmt.Fprintln(out, screen())
	}

	if ignored := len(events) - accepted; ignored > 0 {
		log.Warn("script events ignored", "ignored", ignored)
	}
	log.Info("replay finished",
		"events", len(events),
		"accepted", accepted,
		"elements", len(s.Elements()),
		"theme", s.UI().ActiveTheme.String(),
	)
	return nil
}
