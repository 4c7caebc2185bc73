// Command tuidemo exercises the tuicore rendering pipeline end to end: a
// styled header strip, a constraint-based layout split, and a status line that
// reacts to key/mouse/resize/tick events through a TuiRunner.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tuicore"
)

type demoState struct {
	frame   int
	lastKey string
	theme   tuicore.Theme
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tuidemo: loading config:", err)
		os.Exit(1)
	}

	var themeFlag string
	var inlineFlag bool
	var mouseFlag bool

	root := &cobra.Command{
		Use:   "tuidemo",
		Short: "A small demo of the tuicore rendering pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if themeFlag != "" {
				cfg.Theme = themeFlag
			}
			if cmd.Flags().Changed("inline") {
				cfg.Inline = inlineFlag
			}
			if cmd.Flags().Changed("mouse") {
				cfg.Mouse = mouseFlag
			}
			return runDemo(cfg)
		},
	}
	root.Flags().StringVar(&themeFlag, "theme", "", "theme: dark, light, or monochrome")
	root.Flags().BoolVar(&inlineFlag, "inline", false, "render inline instead of the alternate screen")
	root.Flags().BoolVar(&mouseFlag, "mouse", false, "enable mouse tracking")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cfg DemoConfig) error {
	term, err := tuicore.NewTerminal()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	size, err := term.GetSize()
	if err != nil {
		size = tuicore.Size{Cols: 80, Rows: 24}
	}

	profile := tuicore.DetectProfile()
	backend := tuicore.NewBackend(tuicore.NewRect(0, 0, size.Cols, size.Rows), profile)
	backend.Inline = cfg.Inline

	state := &demoState{theme: tuicore.ThemeByName(cfg.Theme)}
	bindings := tuicore.DefaultBindings()

	enc := tuicore.NewEncoder()
	if !cfg.Inline {
		enc.EnterAltScreen()
	}
	enc.EnableBracketedPaste()
	if cfg.Mouse {
		enc.EnableMouse()
	}
	if err := term.Write(enc.Bytes()); err != nil {
		return fmt.Errorf("enabling input modes: %w", err)
	}
	defer func() {
		enc.Reset()
		enc.DisableBracketedPaste()
		if cfg.Mouse {
			enc.DisableMouse()
		}
		if !cfg.Inline {
			enc.LeaveAltScreen()
		}
		term.Write(enc.Bytes())
	}()

	runner := tuicore.NewTuiRunner(term, backend, time.Second/time.Duration(max(cfg.FrameRate, 1)))

	handler := func(ev tuicore.Event, r *tuicore.TuiRunner) bool {
		if ev.IsQuit() || bindings.Matches(ev, "quit") {
			r.Quit()
			return false
		}
		switch ev.Kind {
		case tuicore.EventKey:
			state.lastKey = describeKey(ev.Key)
			return true
		case tuicore.EventTick:
			state.frame = ev.Tick.FrameCount
			return true
		case tuicore.EventResize:
			return true
		}
		return false
	}

	draw := func(f tuicore.Frame) {
		renderDemo(f, state)
	}

	tuicore.Logger.SetLevel(logrus.WarnLevel)
	return runner.Run(handler, draw)
}

func renderDemo(f tuicore.Frame, state *demoState) {
	tuicore.Clear{}.Render(f.Area, f.Buf)

	rows := tuicore.Solve(f.Area, tuicore.Vertical,
		[]tuicore.Constraint{tuicore.Length(3), tuicore.Fill(1), tuicore.Length(1)},
		tuicore.FlexStart, tuicore.Margin{})

	header, body, status := rows[0], rows[1], rows[2]

	f.Buf.SetStyle(header, state.theme.Border)
	f.Buf.SetLine(header.X+1, header.Y+1, []tuicore.Span{
		{Text: "tuicore demo", Style: state.theme.Accent},
	})

	cols := tuicore.Solve(body, tuicore.Horizontal,
		[]tuicore.Constraint{tuicore.Percentage(30), tuicore.Fill(1)},
		tuicore.FlexStart, tuicore.UniformMargin(1))
	sidebar, mainPane := cols[0], cols[1]

	f.Buf.SetLine(sidebar.X, sidebar.Y, []tuicore.Span{
		{Text: fmt.Sprintf("frame %d", state.frame), Style: state.theme.Muted},
	})
	f.Buf.SetLine(mainPane.X, mainPane.Y, []tuicore.Span{
		{Text: "last key: " + state.lastKey, Style: state.theme.Base},
	})

	f.Buf.SetLine(status.X, status.Y, []tuicore.Span{
		{Text: "ctrl+c or esc to quit", Style: state.theme.Muted},
	})
}

func describeKey(k tuicore.KeyEvent) string {
	if k.Code == tuicore.KeyChar {
		return string(k.Codepoint)
	}
	return fmt.Sprintf("code=%d", k.Code)
}
