// Package wizard implements the interactive setup flow for a server
// configuration. It renders a single-screen form with the common
// session settings pre-filled, assembles the result through the
// configuration builder, and hands the finished configuration back to
// the command layer.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arma-type-things/reforgerconf/pkg/server"
)

// Form field indices, in screen order.
const (
	fieldName = iota
	fieldBindAddress
	fieldBindPort
	fieldMaxPlayers
	fieldScenario
	fieldAdminPassword
	fieldRCONPassword
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Server name",
	"Bind address",
	"Game port",
	"Player slots",
	"Scenario",
	"Admin password",
	"RCON password",
}

// Model is the Bubble Tea model for the setup form. It renders one
// text input per setting and assembles the configuration on
// submission. The defaults are pre-filled, so confirming straight
// through yields the stock configuration.
type Model struct {
	inputs []textinput.Model
	focus  int
	errMsg string

	cfg     *server.Config
	aborted bool
}

// New creates the setup form with every field pre-filled with its
// default. The name field receives focus; the password fields use
// masked echo.
func New() *Model {
	fields := make([]textinput.Model, fieldCount)
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Width = 44
	}

	fields[fieldName].SetValue(server.DefaultServerName)
	fields[fieldName].CharLimit = 100
	fields[fieldName].Focus()

	fields[fieldBindAddress].SetValue(server.DefaultBindAddress)

	fields[fieldBindPort].SetValue(strconv.Itoa(server.DefaultBindPort))
	fields[fieldBindPort].CharLimit = 5

	fields[fieldMaxPlayers].SetValue(strconv.Itoa(server.DefaultMaxPlayers))
	fields[fieldMaxPlayers].CharLimit = 3

	fields[fieldScenario].SetValue(server.DefaultScenarioID)

	fields[fieldAdminPassword].Placeholder = "empty disables in-game admin"
	fields[fieldAdminPassword].EchoMode = textinput.EchoPassword
	fields[fieldAdminPassword].EchoCharacter = '*'

	fields[fieldRCONPassword].Placeholder = "empty disables RCON"
	fields[fieldRCONPassword].EchoMode = textinput.EchoPassword
	fields[fieldRCONPassword].EchoCharacter = '*'

	return &Model{inputs: fields}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for
// the active input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c: cancel without a configuration
//   - tab, down: focus the next field
//   - shift+tab, up: focus the previous field
//   - enter: advance; on the last field, assemble and finish
//
// All other key events are forwarded to the focused input widget.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.focus < fieldCount-1 {
				m.focusNext()
				return m, nil
			}

			cfg, err := m.buildConfig()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.cfg = cfg
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the form with the focused field
// bracketed, an optional error line, and the key help.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("REFORGER SERVER SETUP"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(fmt.Sprintf("%-16s │ %s\n", fieldLabels[i], input.View()))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field │ enter: confirm │ esc: cancel"))
	b.WriteString("\n")

	return appStyle.Render(b.String())
}

// buildConfig assembles the configuration from the form values.
func (m *Model) buildConfig() (*server.Config, error) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	address := strings.TrimSpace(m.inputs[fieldBindAddress].Value())
	scenario := strings.TrimSpace(m.inputs[fieldScenario].Value())

	port, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldBindPort].Value()))
	if err != nil {
		return nil, fmt.Errorf("game port must be a number")
	}
	players, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldMaxPlayers].Value()))
	if err != nil {
		return nil, fmt.Errorf("player slots must be a number")
	}

	b := server.NewBuilder().
		WithName(name).
		WithBindEndpoint(address, port).
		WithScenario(scenario).
		WithMaxPlayers(players)

	if pass := m.inputs[fieldAdminPassword].Value(); pass != "" {
		b.WithAdminPassword(pass)
	}
	if pass := m.inputs[fieldRCONPassword].Value(); pass != "" {
		b.WithRCON(pass)
	}

	return b.Build()
}

// Config returns the assembled configuration, nil until submission.
func (m *Model) Config() *server.Config {
	return m.cfg
}

// Aborted reports whether the user cancelled the form.
func (m *Model) Aborted() bool {
	return m.aborted
}

func (m *Model) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % fieldCount
	m.inputs[m.focus].Focus()
}

func (m *Model) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

// Run runs the wizard to completion. It returns the assembled
// configuration, or nil if the user cancelled.
func Run() (*server.Config, error) {
	final, err := tea.NewProgram(New()).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	m := final.(*Model)
	if m.Aborted() {
		return nil, nil
	}
	return m.Config(), nil
}
