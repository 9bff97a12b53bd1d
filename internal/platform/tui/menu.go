package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// MenuChoice is how the player left the menu.
type MenuChoice int

const (
	MenuStay MenuChoice = iota // still choosing
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuItem is one invaders mode offered by the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Record      storage.Summary
}

// MenuModel picks the mode to play. The cursor wraps, so with the two
// modes either direction toggles between campaign and endless.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	choice MenuChoice
}

// NewMenuModel lists the registered modes with their stored records.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, g := range modes {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			if rec, err := store.Summary(g.ID); err == nil {
				items[i].Record = rec
			}
		}
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

// modeLine formats a menu row: the title, then the best score and deepest
// level once the mode has been played.
func modeLine(item MenuItem) string {
	if item.Record.Runs == 0 {
		return item.Title
	}
	return fmt.Sprintf("%-26s HI %-6d LV %d", item.Title, item.Record.Best, item.Record.BestLevel)
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records the choice. Any choice other than
// staying ends the menu's own program; a session only switches screens.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.move(-1)
		case MenuActionDown:
			m.move(1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.choice = MenuPlay
			}
		case MenuActionScoreboard:
			m.choice = MenuScores
		case MenuActionQuit, MenuActionBack:
			m.choice = MenuQuit
		}
		if m.choice != MenuStay {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *MenuModel) move(step int) {
	if n := len(m.items); n > 0 {
		m.cursor = (m.cursor + step + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuQuit {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	b.WriteString("\n" + centerText(titleStyle.Render(" S P A C E   I N V A D E R S "), w) + "\n\n")
	b.WriteString(centerText("Select a mode", w) + "\n\n")

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, item := range m.items {
		line := "  " + modeLine(item)
		if i == m.cursor {
			line = selectedStyle.Render("> " + modeLine(item))
		}
		b.WriteString(centerText(line, w) + "\n")
	}

	if len(m.items) > 0 {
		mode := m.items[m.cursor]
		dim := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
		if mode.Description != "" {
			b.WriteString("\n" + centerText(dim.Render(mode.Description), w) + "\n")
		}
		b.WriteString(centerText(dim.Render(summaryLine(mode.Record)), w) + "\n")
	}

	b.WriteString("\n" + centerText("up/down: mode   enter: play   tab: scores   q: quit", w) + "\n")
	return b.String()
}

// Choice reports how the menu was left, MenuStay while it is still open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Mode returns the highlighted mode.
func (m MenuModel) Mode() MenuItem {
	if len(m.items) == 0 {
		return MenuItem{}
	}
	return m.items[m.cursor]
}

// Config returns the runtime config with any size change seen by the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what a standalone menu run decided.
type MenuResult struct {
	Choice MenuChoice
	GameID string // set for MenuPlay
	Config core.RuntimeConfig
}

// RunMenu shows the menu in its own program until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuStay {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}
	res := MenuResult{Choice: m.Choice(), Config: m.Config()}
	if res.Choice == MenuPlay {
		res.GameID = m.Mode().GameID
	}
	return res, nil
}
