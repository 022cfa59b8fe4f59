package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/tui"
)

const defaultWidth = 100

var (
	showExpandAll bool
	showWidth     int
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a recording's call log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width := showWidth
		if width <= 0 {
			width = terminalWidth()
		}
		return printRecording(cmd.OutOrStdout(), args[0], width, showExpandAll)
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showExpandAll, "expand-all", "a", false, "expand every call, including completed ones")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "output width (default: terminal width)")
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func printRecording(out io.Writer, path string, width int, expandAll bool) error {
	rec, err := config.LoadRecording(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n\n",
		styleCommand.Render(rec.Name),
		styleHint.Render(fmt.Sprintf("(%d calls)", len(rec.Calls))),
	)
	if len(rec.Calls) == 0 {
		fmt.Fprintln(out, styleHint.Render("No calls recorded."))
		return nil
	}
	fmt.Fprintln(out, tui.RenderPlain(rec.Calls, width, expandAll))
	return nil
}
