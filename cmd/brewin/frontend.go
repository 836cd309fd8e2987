package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gosuda/brewin/diag"
)

type model struct {
	app      appConfig
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	status   string
	running  bool
	events   <-chan tea.Msg
	pending  *pendingInput
	history  []string

	// transcript mirrors history without styling, for copying.
	transcript []string
}

var (
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
)

// footerLines is the status bar plus the input line.
const footerLines = 2

func newModel(app appConfig) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.SetValue("")
	return model{
		app:      app,
		viewport: viewport.New(80, 20),
		input:    ti,
		status:   "starting",
	}
}

func startVM(app appConfig) tea.Cmd {
	return func() tea.Msg {
		events := make(chan tea.Msg, 256)
		go runVM(app, events)
		return vmStartedMsg{events: events}
	}
}

func waitVMEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case msg, ok := <-events:
			if !ok {
				return nil
			}
			return msg
		case <-time.After(20 * time.Millisecond):
			return vmPollMsg{}
		}
	}
}

func (m model) Init() tea.Cmd {
	return startVM(m.app)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerLines, 1)
		m.input.Width = max(msg.Width-4, 1)
		m.ready = true
		m.rebuildContent()
		return m, nil

	case vmStartedMsg:
		m.events = msg.events
		m.running = true
		m.status = "running"
		return m, waitVMEvent(m.events)

	case vmOutputMsg:
		m.appendLine(msg.out.Text, msg.out.Text)
		return m, waitVMEvent(m.events)

	case vmPollMsg:
		if m.running && m.pending == nil {
			return m, waitVMEvent(m.events)
		}
		return m, nil

	case vmPromptMsg:
		m.pending = &pendingInput{prompt: msg.prompt, resp: msg.resp}
		m.input.SetValue("")
		m.status = "input wait"
		return m, m.input.Focus()

	case vmDoneMsg:
		m.running = false
		m.pending = nil
		m.input.Blur()
		if msg.err != nil {
			m.status = "failed"
			m.appendLine(diag.Snippet(msg.err, m.app.lines), renderError(msg.err, m.app.lines))
		} else {
			m.status = "done"
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.pending != nil {
				close(m.pending.resp)
				m.pending = nil
			}
			return m, tea.Quit
		}

		if m.pending != nil {
			if msg.Type == tea.KeyEnter {
				val := m.input.Value()
				m.pending.resp <- val
				m.pending = nil
				m.input.Blur()
				m.input.SetValue("")
				m.appendLine(val, echoStyle.Render(val))
				m.status = "running"
				return m, waitVMEvent(m.events)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			if m.running {
				return m, nil
			}
			m.history = nil
			m.transcript = nil
			m.rebuildContent()
			m.status = "restarting"
			return m, startVM(m.app)
		case "y":
			if err := clipboard.WriteAll(strings.Join(m.transcript, "\n")); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = fmt.Sprintf("copied %d lines", len(m.transcript))
			}
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}
	parts := []string{m.viewport.View(), statusStyle.Render(m.statusLine())}
	if m.pending != nil {
		parts = append(parts, inputStyle.Render(m.input.View()))
	}
	return strings.Join(parts, "\n")
}

func (m model) statusLine() string {
	keys := "q quit  r restart  y copy"
	if m.running {
		keys = "ctrl+c quit"
	}
	return fmt.Sprintf("%s | %s | %s", m.app.path, m.status, keys)
}

func (m *model) appendLine(plain, rendered string) {
	m.transcript = append(m.transcript, plain)
	m.history = append(m.history, rendered)
	m.rebuildContent()
}

func (m *model) rebuildContent() {
	content := strings.Join(m.history, "\n")
	if content == "" {
		content = "(no output yet)"
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
