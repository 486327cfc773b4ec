package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stebalien/rustbox"
)

var (
	driverName string
	inputMode  string
)

var rootCmd = &cobra.Command{
	Use:          "rustbox-demo",
	Short:        "rustbox-demo draws a hello-world screen and echoes input events",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&driverName, "driver", "termbox", "terminal driver (termbox|tcell)")
	rootCmd.Flags().StringVar(&inputMode, "input-mode", "esc", "escape disambiguation (esc|alt)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func options() ([]rustbox.Option, error) {
	var opts []rustbox.Option
	switch driverName {
	case "termbox":
		// default driver
	case "tcell":
		opts = append(opts, rustbox.WithDriver(rustbox.NewTcellDriver()))
	default:
		return nil, fmt.Errorf("unknown driver %q", driverName)
	}
	switch inputMode {
	case "esc":
		opts = append(opts, rustbox.WithInputMode(rustbox.InputEsc))
	case "alt":
		opts = append(opts, rustbox.WithInputMode(rustbox.InputAlt))
	default:
		return nil, fmt.Errorf("unknown input mode %q", inputMode)
	}
	return opts, nil
}

func run() error {
	opts, err := options()
	if err != nil {
		return err
	}
	s, err := rustbox.Open(opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	drawBanner(s)
	for {
		s.Present()
		ev, err := s.PollEvent()
		if err != nil {
			return err
		}
		switch ev.Type {
		case rustbox.EventKey:
			if ev.Ch == 'q' {
				return nil
			}
			drawEvent(s, ev)
		case rustbox.EventResize:
			s.Clear()
			drawBanner(s)
		}
	}
}

func drawBanner(s *rustbox.Session) {
	s.Print(1, 1, rustbox.StyleBold, rustbox.ColorWhite, rustbox.ColorBlack, "Hello, world!")
	s.Print(1, 3, rustbox.StyleBold, rustbox.ColorWhite, rustbox.ColorBlack, "Press 'q' to quit.")
}

func drawEvent(s *rustbox.Session, ev rustbox.Event) {
	var desc string
	switch {
	case ev.Ch != 0:
		desc = fmt.Sprintf("char %q", ev.Ch)
	case rustbox.KeyName(ev.Key) != "":
		desc = "key " + rustbox.KeyName(ev.Key)
	default:
		desc = fmt.Sprintf("key %#04x", uint16(ev.Key))
	}
	if ev.Mod == rustbox.ModAlt {
		desc = "alt+" + desc
	}
	w, _ := s.Size()
	for x := 1; x < w; x++ {
		s.PrintChar(x, 5, rustbox.StyleNormal, rustbox.ColorDefault, rustbox.ColorDefault, ' ')
	}
	s.Print(1, 5, rustbox.StyleNormal, rustbox.ColorCyan, rustbox.ColorDefault, desc)
}
