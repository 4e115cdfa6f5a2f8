package generator

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// progress prints one human-readable line per finished step. Check marks
// are only used on a terminal; redirected output gets plain "ok".
type progress struct {
	w    io.Writer
	mark string
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w, mark: markFor(w)}
}

func markFor(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "✓"
	}
	return "ok"
}

func (p *progress) done(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.mark, fmt.Sprintf(format, args...))
}

func (p *progress) summary() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "All icons created:")
	fmt.Fprintln(p.w, "   - ic_launcher.png (square)")
	fmt.Fprintln(p.w, "   - ic_launcher_round.png (round)")
}
