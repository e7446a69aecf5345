package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// DifficultyOption is one preset offered before a game starts.
type DifficultyOption struct {
	Preset string // value passed to the game's SetDifficultyPreset
	Label  string
	Hint   string
}

// DifficultyOptions lists the presets in menu order. The empty preset keeps
// the game's stock rules.
var DifficultyOptions = []DifficultyOption{
	{Preset: "", Label: "Classic", Hint: "stock rules, no ramp"},
	{Preset: "easy", Label: "Easy", Hint: "starts slow, ramps up"},
	{Preset: "normal", Label: "Normal", Hint: "starts at 30%"},
	{Preset: "hard", Label: "Hard", Hint: "starts at 70%"},
	{Preset: "fixed", Label: "Fixed", Hint: "config level, no ramp"},
}

// DifficultyModel lets users pick a difficulty preset for a game.
type DifficultyModel struct {
	title    string
	cursor   int
	width    int
	height   int
	chosen   *DifficultyOption
	quitting bool
	back     bool
}

// NewDifficultyModel creates a picker for the game with the given title.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{title: title, width: width, height: height}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(DifficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		opt := DifficultyOptions[m.cursor]
		m.chosen = &opt
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back || m.chosen != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(spaced(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range DifficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-8s %s", cursor, opt.Label, opt.Hint), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen option, or nil if none was chosen.
func (m DifficultyModel) Selected() *DifficultyOption {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// spaced letter-spaces an upper-cased title: "Snake" -> "S N A K E".
func spaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

// RunDifficultySelector shows the picker and returns the chosen option, or
// nil when the user went back or quit.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (*DifficultyOption, error) {
	p := tea.NewProgram(NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
