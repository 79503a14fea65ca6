// Package report renders solver results for the console.
//
// Two modes share one layout: plain text (pipes, CI, NO_COLOR, golden tests)
// and lipgloss-styled text for terminals.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lineup/lineup"
)

// Color palette.
const (
	colorAccent = "154"
	colorLabel  = "245"
	colorLeft   = "75"
	colorRight  = "209"
	colorWarn   = "220"
)

// Styles holds the lipgloss styles used in styled mode.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Left   lipgloss.Style
	Right  lipgloss.Style
	Warn   lipgloss.Style
}

// defaultStyles builds the styled-mode palette on renderer re.
func defaultStyles(re *lipgloss.Renderer) Styles {
	return Styles{
		Header: re.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		Label:  re.NewStyle().Foreground(lipgloss.Color(colorLabel)),
		Value:  re.NewStyle().Bold(true),
		Left:   re.NewStyle().Foreground(lipgloss.Color(colorLeft)),
		Right:  re.NewStyle().Foreground(lipgloss.Color(colorRight)),
		Warn:   re.NewStyle().Foreground(lipgloss.Color(colorWarn)),
	}
}

// Renderer writes reports to an io.Writer.
type Renderer struct {
	out    io.Writer
	styled bool
	styles Styles
}

// New returns a Renderer for w. color is auto, always or never; auto styles
// output only when w is a terminal and NO_COLOR is unset.
func New(w io.Writer, color string) *Renderer {
	styled := false
	switch color {
	case "always":
		styled = true
	case "never":
		styled = false
	default:
		styled = IsTTY(w) && !DetectNoColor()
	}
	r := &Renderer{out: w, styled: styled}
	if styled {
		r.styles = defaultStyles(lipgloss.NewRenderer(w))
	}

	return r
}

// Styled reports whether the renderer emits styled output.
func (r *Renderer) Styled() bool { return r.styled }

// IsTTY checks if w is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")

	return exists
}

// paint applies st in styled mode and returns s unchanged otherwise.
func (r *Renderer) paint(st lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}

	return st.Render(s)
}

// Summary is one solver run as shown to the user.
type Summary struct {
	// Title names the solver, e.g. "Exhaustive search".
	Title string

	// LineupLen is the requested lineup length.
	LineupLen int

	// Result is the solver output.
	Result lineup.Result

	// Expected is the closed-form leaf count; shown when ShowLeaves is set.
	Expected uint64

	// ShowLeaves prints leaves/expected/pruned (exhaustive search only).
	ShowLeaves bool

	// Shortfall explains a lineup shorter than LineupLen (or none at all);
	// it wraps lineup.ErrNoLineup.
	Shortfall error

	// Stopped carries an early-stop reason (leaf limit), if any.
	Stopped error

	// Elapsed is the wall-clock solver time.
	Elapsed time.Duration
}

// field writes one aligned "label : value" row.
func (r *Renderer) field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s : %s\n", r.paint(r.styles.Label, fmt.Sprintf("%-12s", label)), r.paint(r.styles.Value, value))
}

// summary renders s into b.
func (r *Renderer) summary(b *strings.Builder, s Summary) {
	fmt.Fprintf(b, "%s\n", r.paint(r.styles.Header, "== "+s.Title+" =="))
	r.field(b, "lineup len", fmt.Sprintf("%d", s.LineupLen))

	if !s.Result.Found() {
		msg := fmt.Sprintf("no lineup: roster cannot fill %d slots", s.LineupLen)
		if s.Shortfall != nil {
			msg = "no lineup: " + s.Shortfall.Error()
		}
		fmt.Fprintf(b, "%s\n", r.paint(r.styles.Warn, msg))
	} else {
		for i, p := range s.Result.Lineup {
			hand := r.paint(r.styles.Left, p.Hand.String())
			if p.Hand.String() == "R" {
				hand = r.paint(r.styles.Right, p.Hand.String())
			}
			line := fmt.Sprintf("%2d. %s  %.3f", i+1, hand, p.Rating)
			if p.Name != "" {
				line += "  " + p.Name
			}
			fmt.Fprintf(b, "%s\n", line)
		}
		r.field(b, "score", fmt.Sprintf("%.3f", s.Result.Score))
		r.field(b, "batting avg", fmt.Sprintf("%.3f", s.Result.Average()))
		if s.Shortfall != nil {
			fmt.Fprintf(b, "%s\n", r.paint(r.styles.Warn, "short lineup: "+s.Shortfall.Error()))
		}
	}

	if s.ShowLeaves {
		r.field(b, "leaves", fmt.Sprintf("%d", s.Result.Leaves))
		r.field(b, "expected", fmt.Sprintf("%d", s.Expected))
		r.field(b, "pruned", fmt.Sprintf("%d", s.Result.Pruned))
	}
	if s.Stopped != nil {
		fmt.Fprintf(b, "%s\n", r.paint(r.styles.Warn, "stopped early: "+s.Stopped.Error()))
	}
	r.field(b, "elapsed", s.Elapsed.Round(time.Microsecond).String())
}

// Summary writes one solver report.
func (r *Renderer) Summary(s Summary) error {
	var b strings.Builder
	r.summary(&b, s)
	_, err := io.WriteString(r.out, b.String())

	return err
}

// Compare writes two reports and the score gap between them (a − b).
func (r *Renderer) Compare(a, b Summary) error {
	var sb strings.Builder
	r.summary(&sb, a)
	sb.WriteString("\n")
	r.summary(&sb, b)
	sb.WriteString("\n")
	if a.Result.Found() && b.Result.Found() {
		r.field(&sb, "score gap", fmt.Sprintf("%.3f (%s - %s)", a.Result.Score-b.Result.Score, a.Title, b.Title))
	} else {
		r.field(&sb, "score gap", "n/a")
	}
	_, err := io.WriteString(r.out, sb.String())

	return err
}

// Count writes the closed-form leaf count for a roster shape.
func (r *Renderer) Count(nL, nR, k int, n uint64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.paint(r.styles.Header, "== Leaf count =="))
	r.field(&b, "roster", fmt.Sprintf("%dL %dR", nL, nR))
	r.field(&b, "lineup len", fmt.Sprintf("%d", k))
	r.field(&b, "leaves", fmt.Sprintf("%d", n))
	_, err := io.WriteString(r.out, b.String())

	return err
}
