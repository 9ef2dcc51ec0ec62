package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/rflaunch/pkg/suite"
)

func TestLinePrompter_ListsKeysAndReadsSelection(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  9 \n"), &out)

	key, err := p.Choose(context.Background(), suite.Auth())
	require.NoError(t, err)
	assert.Equal(t, "9", key)

	listing := out.String()
	assert.Contains(t, listing, "Select execution mode:")
	assert.Contains(t, listing, " 1. All Auth Tests\n", "single-digit keys are right-aligned")
	assert.Contains(t, listing, "10. Single Login Test\n")
	assert.Contains(t, listing, "Enter mode (1-10): ")
}

func TestLinePrompter_ReturnsInvalidKeyWithoutReprompt(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("99\n"), io.Discard)

	key, err := p.Choose(context.Background(), suite.Users())
	require.NoError(t, err)
	assert.Equal(t, "99", key, "validation is the caller's job for non-reprompting catalogs")
}

func TestLinePrompter_RepromptsProductsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("42\nabc\n14\n"), &out)

	key, err := p.Choose(context.Background(), suite.Products())
	require.NoError(t, err)
	assert.Equal(t, "14", key)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid option. Please select 0-20."))
	assert.Contains(t, out.String(), " 0. Exit\n")
	assert.Contains(t, out.String(), "19. Execute by custom TAG (user input)\n")
}

func TestLinePrompter_EOFWhileReprompting(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("42\n"), io.Discard)

	_, err := p.Choose(context.Background(), suite.Products())
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("3"), io.Discard)

	key, err := p.Choose(context.Background(), suite.Auth())
	require.NoError(t, err)
	assert.Equal(t, "3", key)
}

func TestLinePrompter_AskSharesBufferedInput(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("19\nregression\n"), &out)

	key, err := p.Choose(context.Background(), suite.Products())
	require.NoError(t, err)
	require.Equal(t, "19", key)

	tag, err := p.Ask(context.Background(), "Enter custom tag to filter by")
	require.NoError(t, err)
	assert.Equal(t, "regression", tag)
	assert.Contains(t, out.String(), "Enter custom tag to filter by: ")
}

func TestLinePrompter_AskEmptyAnswer(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("\n"), io.Discard)

	answer, err := p.Ask(context.Background(), "Enter specific test name")
	require.NoError(t, err)
	assert.Empty(t, answer)
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewLinePrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := p.Choose(ctx, suite.Auth())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNew_PicksImplementation(t *testing.T) {
	_, isLine := New(strings.NewReader(""), io.Discard, false).(*LinePrompter)
	assert.True(t, isLine)
	_, isPicker := New(strings.NewReader(""), io.Discard, true).(*Picker)
	assert.True(t, isPicker)
}

func TestItemsFor_IncludesReservedEntries(t *testing.T) {
	items := itemsFor(suite.Products())
	require.Len(t, items, 20)

	last := items[19].(pickerItem)
	assert.Equal(t, "20", last.key)
	assert.Equal(t, "prompts for a test name", last.Description())

	smoke := items[9].(pickerItem)
	assert.Equal(t, "10. Smoke Tests (Quick Validation)", smoke.Title())
	assert.Contains(t, smoke.Description(), "+smoke")
}

func pressKey(t *testing.T, m pickerModel, msg tea.KeyMsg) pickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(pickerModel)
	require.True(t, ok)
	return pm
}

func TestPickerModel_EnterSelectsHighlightedKey(t *testing.T) {
	m := newPickerModel(suite.Auth(), 80, 40)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "1", m.choice)
	assert.False(t, m.quit)
}

func TestPickerModel_CursorMovesBeforeEnter(t *testing.T) {
	m := newPickerModel(suite.Auth(), 80, 40)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "2", m.choice)
}

func TestPickerModel_QuitAndCancel(t *testing.T) {
	quit := pressKey(t, newPickerModel(suite.Users(), 80, 40), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, quit.quit)
	assert.Empty(t, quit.choice)

	cancelled := pressKey(t, newPickerModel(suite.Users(), 80, 40), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, cancelled.cancelled)
}

func TestPickerModel_CtrlCWhileFilteringCancels(t *testing.T) {
	m := newPickerModel(suite.Products(), 80, 40)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.Equal(t, list.Filtering, m.list.FilterState())

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.cancelled)

	_, err := m.result()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPickerModel_Result(t *testing.T) {
	_, err := pickerModel{}.result()
	assert.ErrorIs(t, err, ErrQuit, "no choice counts as leaving the menu")

	_, err = pickerModel{quit: true}.result()
	assert.ErrorIs(t, err, ErrQuit)

	key, err := pickerModel{choice: "7"}.result()
	require.NoError(t, err)
	assert.Equal(t, "7", key)
}

func TestPickerModel_ViewShowsTitle(t *testing.T) {
	m := newPickerModel(suite.Users(), 80, 40)
	assert.Contains(t, m.View(), "Users suites")
}
