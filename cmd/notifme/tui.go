package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taishingi/notifme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose and send a notification interactively",
	Args:  cobra.NoArgs,
	RunE:  runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("compose requires an interactive terminal")
	}

	_, n, _, err := prepare(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialModel(cmd.Context(), n), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// --- Model ---

const (
	fieldSummary = iota
	fieldBody
	fieldApp
	fieldIcon
	fieldTimeout
	fieldCount
)

var fieldLabels = [fieldCount]string{"Summary", "Body", "App", "Icon", "Timeout (ms)"}

type model struct {
	ctx     context.Context
	note    *notifme.Notification
	inputs  []textinput.Model
	focus   int
	sending bool
	status  string
	err     error
}

type sentMsg struct{ err error }

var (
	labelStyle   = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("240"))
	focusedStyle = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("75")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func initialModel(ctx context.Context, n *notifme.Notification) model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := model{
		ctx:    ctx,
		note:   n,
		inputs: make([]textinput.Model, fieldCount),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 512
		m.inputs[i] = ti
	}
	m.inputs[fieldSummary].Placeholder = "Build finished"
	m.inputs[fieldBody].Placeholder = "All tests passed"
	m.inputs[fieldApp].SetValue(n.AppName())
	m.inputs[fieldIcon].SetValue(n.IconName())
	m.inputs[fieldTimeout].SetValue(strconv.Itoa(n.TimeoutMillis()))
	m.inputs[fieldTimeout].CharLimit = 11
	m.inputs[fieldSummary].Focus()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus < fieldCount-1 {
				return m, m.setFocus(m.focus + 1)
			}
			if m.sending {
				return m, nil
			}
			if err := m.apply(); err != nil {
				m.err = err
				m.status = ""
				return m, nil
			}
			m.sending = true
			m.err = nil
			m.status = "sending..."
			return m, sendCmd(m.ctx, m.note)
		}
	case sentMsg:
		m.sending = false
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("sent %q", m.note.SummaryText())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *model) setFocus(i int) tea.Cmd {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// apply copies the form into the notification.
func (m *model) apply() error {
	ms, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldTimeout].Value()))
	if err != nil {
		return fmt.Errorf("timeout must be an integer: %w", err)
	}
	m.note.
		Summary(m.inputs[fieldSummary].Value()).
		Body(m.inputs[fieldBody].Value()).
		App(m.inputs[fieldApp].Value()).
		Icon(m.inputs[fieldIcon].Value()).
		Timeout(ms)
	return nil
}

func sendCmd(ctx context.Context, n *notifme.Notification) tea.Cmd {
	return func() tea.Msg {
		return sentMsg{err: n.Send(ctx)}
	}
}

func (m model) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		PaddingBottom(1).
		Render("New notification")
	b.WriteString(header + "\n")

	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, style.Render(fieldLabels[i]), in.View()) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(okStyle.Render(m.status) + "\n")
	}

	baseStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			b.String(),
			"  tab/↓: next • shift+tab/↑: prev • enter: send • esc: quit",
		),
	) + "\n"
}
