package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dkoosis/rflaunch/pkg/render"
	"github.com/dkoosis/rflaunch/pkg/suite"
)

// Picker is the full-screen terminal menu.
type Picker struct {
	In  io.Reader
	Out io.Writer
}

// Choose runs a bubbletea list over the catalog.
func (p *Picker) Choose(ctx context.Context, c *suite.Catalog) (string, error) {
	program := tea.NewProgram(
		newPickerModel(c, 0, 0),
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("run menu: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected menu model %T", final)
	}
	return m.result()
}

// result classifies how the picker ended. A quit without a choice counts as
// leaving the menu.
func (m pickerModel) result() (string, error) {
	switch {
	case m.cancelled:
		return "", ErrCancelled
	case m.quit, m.choice == "":
		return "", ErrQuit
	}
	return m.choice, nil
}

// Ask shows a single huh input.
func (p *Picker) Ask(ctx context.Context, question string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(question).Value(&value),
		),
	).WithTheme(huh.ThemeBase16()).WithInput(p.In).WithOutput(p.Out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("prompt: %w", err)
	}
	return strings.TrimSpace(value), nil
}

type pickerItem struct {
	key, title, detail string
}

func (i pickerItem) Title() string       { return i.key + ". " + i.title }
func (i pickerItem) Description() string { return i.detail }
func (i pickerItem) FilterValue() string { return i.key + " " + i.title }

func itemsFor(c *suite.Catalog) []list.Item {
	var items []list.Item
	for _, e := range c.Entries {
		detail := e.Config.TestPath
		if e.Config.TestName != "" {
			detail += " · " + e.Config.TestName
		}
		if len(e.Config.IncludeTags) > 0 {
			detail += " · +" + strings.Join(e.Config.IncludeTags, " +")
		}
		items = append(items, pickerItem{key: e.Key, title: e.Config.Description, detail: detail})
	}
	if c.CustomTagKey != "" {
		items = append(items, pickerItem{key: c.CustomTagKey, title: c.Describe(c.CustomTagKey), detail: "prompts for a tag"})
	}
	if c.TestNameKey != "" {
		items = append(items, pickerItem{key: c.TestNameKey, title: c.Describe(c.TestNameKey), detail: "prompts for a test name"})
	}
	return items
}

type pickerModel struct {
	list      list.Model
	choice    string
	quit      bool
	cancelled bool
}

func newPickerModel(c *suite.Catalog, width, height int) pickerModel {
	l := list.New(itemsFor(c), list.NewDefaultDelegate(), width, height)
	l.Title = render.TitleCase(c.Domain) + " suites"
	l.SetShowStatusBar(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		// While filtering, other keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = it.key
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}
