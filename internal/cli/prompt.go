package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

var (
	promptLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	promptCursorStyle = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// PromptModel - Input file name prompt
// =============================================================================

// PromptModel is the bubbletea model asking for the input file name.
// An empty answer selects Default.
type PromptModel struct {
	Default  string
	Value    string
	Done     bool
	Canceled bool
}

// NewPromptModel creates a prompt whose empty answer is def.
func NewPromptModel(def string) PromptModel {
	return PromptModel{Default: def}
}

func (m PromptModel) Init() tea.Cmd {
	return nil
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Canceled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.Done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.Value); len(r) > 0 {
			m.Value = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.Value = ""
	case tea.KeySpace:
		m.Value += " "
	case tea.KeyRunes:
		m.Value += string(key.Runes)
	}
	return m, nil
}

func (m PromptModel) View() string {
	if m.Done || m.Canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptLabelStyle.Render("Input file"))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render("(" + m.Default + ")"))
	b.WriteString(": ")
	b.WriteString(m.Value)
	b.WriteString(promptCursorStyle.Render("█"))
	b.WriteString("\n")
	return b.String()
}

// Answer returns the entered file name, or Default if nothing was entered.
func (m PromptModel) Answer() string {
	if v := strings.TrimSpace(m.Value); v != "" {
		return v
	}
	return m.Default
}

// =============================================================================
// Prompt Runner
// =============================================================================

// promptInput asks for the input file name. When the input is not a
// terminal the answer is the first line read from it; an empty line or an
// exhausted input selects def.
func (c *CLI) promptInput(ctx context.Context, def string) (string, error) {
	if !isTerminal(c.in) {
		return c.readAnswer(def)
	}

	p := tea.NewProgram(NewPromptModel(def),
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errs.Wrap(errs.ErrCodeInternal, err, "input prompt")
	}

	m, ok := final.(PromptModel)
	if !ok {
		return "", errs.New(errs.ErrCodeInternal, "input prompt returned %T", final)
	}
	if m.Canceled {
		return "", context.Canceled
	}
	return m.Answer(), nil
}

func (c *CLI) readAnswer(def string) (string, error) {
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "read input name")
	}
	if answer := strings.TrimSpace(line); answer != "" {
		c.Logger.Debug("input name read from stdin", "input", answer)
		return answer, nil
	}
	c.Logger.Debug("no input name on stdin, using default", "input", def)
	return def, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
