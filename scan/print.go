package scan

import (
	"fmt"
	"io"
	"strconv"

	"github.com/betterleaks/rgrep"
	"github.com/charmbracelet/lipgloss"
)

// DefaultHighlightColor is ANSI bright red.
const DefaultHighlightColor = "9"

// Highlighter decorates the matched part of a line.
type Highlighter interface {
	Highlight(s string) string
}

// StyleHighlighter renders matches with a lipgloss style. The renderer
// inspects its output, so output that is not a terminal stays plain text.
type StyleHighlighter struct {
	Style lipgloss.Style
}

func NewStyleHighlighter(r *lipgloss.Renderer, foreground string, bold bool) StyleHighlighter {
	return StyleHighlighter{
		Style: r.NewStyle().
			Foreground(lipgloss.Color(foreground)).
			Bold(bold).
			TabWidth(lipgloss.NoTabConversion),
	}
}

func (h StyleHighlighter) Highlight(s string) string {
	return h.Style.Render(s)
}

// TagHighlighter wraps matches in literal markers, e.g. "<em>" and "</em>".
type TagHighlighter struct {
	Open  string
	Close string
}

func (h TagHighlighter) Highlight(s string) string {
	return h.Open + s + h.Close
}

// Printer writes one line per finding.
type Printer struct {
	Out         io.Writer
	Highlighter Highlighter
}

// PrintFinding writes the finding's line with the match highlighted,
// prefixed by "<line number> " when showLineNumber is set.
func (p *Printer) PrintFinding(f rgrep.Finding, showLineNumber bool) error {
	prefix := ""
	if showLineNumber {
		prefix = strconv.Itoa(f.LineNumber) + " "
	}
	_, err := fmt.Fprintf(p.Out, "%s%s%s%s\n", prefix, f.Before, p.Highlighter.Highlight(f.Matched), f.After)
	return err
}
