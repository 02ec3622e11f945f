package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"valuation/internal/layout"
)

var errPickCancelled = errors.New("selection cancelled")

var layoutHelp = map[layout.Name]string{
	layout.Standard: "one table per section, grey headers",
	layout.Compact:  "merged multi-line cells, no page breaks",
	layout.Exact:    "fewer tables with navy section rows",
}

func newPickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a layout with the arrow keys, then generate it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := int(a.stdin.Fd())
			if !term.IsTerminal(fd) {
				return errors.New("pick needs an interactive terminal; use 'valuation generate --layout' instead")
			}

			names, lines := pickItems()
			enableVT()
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("interactive selection not supported on this terminal: %w", err)
			}
			selected, err := selectItem(bufio.NewReader(a.stdin), a.stdout, lines)
			term.Restore(fd, oldState)
			fmt.Fprintln(a.stdout)
			if err != nil {
				return err
			}

			cfg := a.cfg
			cfg.Layouts = []string{names[selected]}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return a.generate(cmd.Context(), cfg)
		},
	}
}

// pickItems returns the selectable layout names and their display lines.
func pickItems() (names, lines []string) {
	for _, n := range layout.Names() {
		names = append(names, string(n))
		lines = append(lines, fmt.Sprintf("%-9s %s", n, layoutHelp[n]))
	}
	names = append(names, "all")
	lines = append(lines, fmt.Sprintf("%-9s %s", "all", "every layout"))
	return names, lines
}

// selectItem lets the user move through lines with the arrow keys (or j/k)
// and returns the index chosen with Enter. r must deliver raw key bytes.
func selectItem(r *bufio.Reader, w io.Writer, lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, errors.New("nothing to select")
	}
	selected := 0

	redraw := func() {
		// Raw mode: move home, clear, and end lines with CRLF.
		fmt.Fprint(w, "\033[H\033[2J")
		for i, l := range lines {
			prefix := "  "
			if i == selected {
				prefix = "> "
			}
			fmt.Fprint(w, prefix+l+"\r\n")
		}
		fmt.Fprint(w, "(↑/↓ to move, Enter to generate, Esc to quit)\r\n")
	}
	up := func() {
		if selected > 0 {
			selected--
			redraw()
		}
	}
	down := func() {
		if selected < len(lines)-1 {
			selected++
			redraw()
		}
	}

	redraw()
	for {
		b1, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errPickCancelled
			}
			return 0, err
		}

		// Windows console arrows arrive as 0 or 224 followed by a scan code.
		if b1 == 0 || b1 == 224 {
			b2, _ := r.ReadByte()
			switch b2 {
			case 72:
				up()
			case 80:
				down()
			}
			continue
		}

		switch b1 {
		case 27:
			if r.Buffered() == 0 {
				return 0, errPickCancelled // bare Esc
			}
			if b2, _ := r.ReadByte(); b2 != '[' || r.Buffered() == 0 {
				continue
			}
			switch b3, _ := r.ReadByte(); b3 {
			case 'A':
				up()
			case 'B':
				down()
			}
		case 'k':
			up()
		case 'j':
			down()
		case '\r', '\n':
			return selected, nil
		case 3, 'q': // Ctrl-C
			return 0, errPickCancelled
		}
	}
}
