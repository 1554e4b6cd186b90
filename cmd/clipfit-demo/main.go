// clipfit-demo is a small Bubble Tea program showing the paste limiter: a
// single editable field with a maximum length, fed by typing, bracketed
// paste, and the system clipboard.
package main

import (
	"flag"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipfit/clipfit/limiter"
)

type sysClipboard struct{}

func (sysClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (sysClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

func main() {
	maxLength := flag.Int("limit", 140, "maximum document length in characters")
	flag.Parse()

	m := newModel(limiter.New(limiter.Config{MaxLength: *maxLength}), sysClipboard{})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
