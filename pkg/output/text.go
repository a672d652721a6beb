// pkg/output/text.go

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
	"github.com/charmbracelet/lipgloss"
)

const (
	Title        = "🔐 Password Strength Meter"
	Farewell     = "Thank you for using the Password Strength Meter! 👋"
	InvalidInput = "Invalid choice. Please try again."
	MenuPrompt   = "Enter your choice (1-3): "
)

// StrengthLabel decorates a rating for display.
func StrengthLabel(s password.Strength) string {
	switch s {
	case password.Strong:
		return "Strong 💪"
	case password.Moderate:
		return "Moderate 🟡"
	default:
		return "Weak 🚨"
	}
}

func statusIcon(s password.Strength) string {
	switch s {
	case password.Strong:
		return "✅"
	case password.Moderate:
		return "⚠️"
	default:
		return "❌"
	}
}

// Printer writes human-readable results to one stream.
type Printer struct {
	w      io.Writer
	styles Styles
	color  bool
}

// NewPrinter returns a Printer for w. With color false no styling is applied at all.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, styles: NewStyles(w), color: color}
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *Printer) println(a ...any) {
	_, _ = fmt.Fprintln(p.w, a...)
}

// Banner prints the title and rule shown once when the menu starts.
func (p *Printer) Banner() {
	p.println(p.paint(p.styles.Title, Title))
	p.println(strings.Repeat("-", 30))
}

// Menu prints the numbered options.
func (p *Printer) Menu() {
	p.println("\nOptions:")
	p.println("1. Check Password Strength")
	p.println("2. Generate Strong Password")
	p.println("3. Exit")
}

// Prompt prints label without a trailing newline.
func (p *Printer) Prompt(label string) {
	_, _ = fmt.Fprint(p.w, label)
}

// InvalidChoice reports an unrecognised menu selection.
func (p *Printer) InvalidChoice() {
	p.println(InvalidInput)
}

// Farewell prints the exit message.
func (p *Printer) Farewell() {
	p.println(Farewell)
}

// Evaluation prints strength, status and any improvement suggestions.
func (p *Printer) Evaluation(res password.Result) {
	style := p.styles.ForStrength(res.Strength)
	p.println("\nStrength: " + p.paint(style, StrengthLabel(res.Strength)))
	p.println(statusIcon(res.Strength) + " " + res.StatusMessage)

	if len(res.Feedback) > 0 {
		p.println("\nImprovement Suggestions:")
		for _, f := range res.Feedback {
			p.println(p.paint(p.styles.Hint, "❌ "+f))
		}
	}
}

// Checks prints the per-rule breakdown and the total score.
func (p *Printer) Checks(res password.Result) error {
	p.println()
	t := NewTableTo(p.w).WithHeaders("CHECK", "RESULT", "POINTS", "DETAIL")
	for _, c := range res.Checks {
		result := "pass"
		if !c.Passed {
			result = "fail"
		}
		t.AddRow(c.Name, result, strconv.Itoa(c.Points), c.Detail)
	}
	if err := t.Render(); err != nil {
		return err
	}
	p.println(p.paint(p.styles.Muted, fmt.Sprintf("Score: %d", res.Score)))
	return nil
}

// Generated prints a generated password and, when res is non-nil, its strength.
func (p *Printer) Generated(pw string, res *password.Result) {
	p.println("\n🎲 Generated Strong Password: " + pw)
	if res != nil {
		p.println("Strength: " + p.paint(p.styles.ForStrength(res.Strength), StrengthLabel(res.Strength)))
	}
}

// PasswordOnly prints a bare password, one per line, for piping.
func (p *Printer) PasswordOnly(pw string) {
	p.println(pw)
}

// Newline ends a dangling prompt line.
func (p *Printer) Newline() {
	p.println()
}

// Warning prints a recoverable problem without leaving the menu.
func (p *Printer) Warning(msg string) {
	p.println(p.paint(p.styles.Hint, msg))
}
