package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

// fakeMovesGame gives the scoreboard a second mode to switch to.
type fakeMovesGame struct{ fakeGame }

func (f *fakeMovesGame) ID() string    { return "fake_moves" }
func (f *fakeMovesGame) Title() string { return "Fake Moves" }

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
	registry.Register("fake_moves", func() registry.Game { return &fakeMovesGame{} })
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	require.NotEmpty(t, m.items, "menu should list registered games")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd, "selecting should end the menu program")

	sel := next.(MenuModel).Selected()
	require.NotNil(t, sel)
	assert.Equal(t, m.items[0].GameID, sel.GameID)
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(runeKey('k'))
	assert.Zero(t, next.(MenuModel).cursor, "cursor should not move above the first item")

	for range len(m.items) + 3 {
		next, _ = next.Update(runeKey('j'))
	}
	assert.Equal(t, len(m.items)-1, next.(MenuModel).cursor)
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), log.New(io.Discard))

	// Tab opens the scoreboard, esc returns to the menu.
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	require.NotNil(t, s.scoreboard, "tab should open the scoreboard")

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	require.Nil(t, s.scoreboard, "esc should close the scoreboard")

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.NotNil(t, s.game, "enter should start the selected game")
	assert.NotNil(t, cmd, "starting a game should schedule the first tick")
	assert.NotEmpty(t, s.View(), "session should render the running game")

	next, _ = s.Update(runeKey('q'))
	assert.True(t, next.(SessionModel).quitting, "q should end the session")
}

func TestScoreboardStats(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveScore("fake", 90, 3)
	require.NoError(t, err)

	sb := NewScoreboardModel(store, 100, 30)
	require.Len(t, sb.scores, 1)
	assert.Contains(t, sb.View(), "Games: 1")
	assert.Contains(t, sb.View(), "Fake Moves", "every mode should have a tab")
}

func TestScoreboardSwitchesModes(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{40, 70} {
		_, err := store.SaveScore("fake_moves", score, 5)
		require.NoError(t, err)
	}

	sb := NewScoreboardModel(store, 100, 30)
	require.Equal(t, "fake", sb.games[sb.current].ID)
	assert.Empty(t, sb.scores)
	assert.Contains(t, sb.View(), "No scores recorded yet")

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyRight})
	sb = next.(ScoreboardModel)
	assert.Equal(t, "fake_moves", sb.games[sb.current].ID)
	require.Len(t, sb.scores, 2)
	assert.Equal(t, 70, sb.scores[0].Score)

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyDown})
	sb = next.(ScoreboardModel)
	assert.Equal(t, 1, sb.table.Cursor())

	// Going back reloads the first mode.
	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb = next.(ScoreboardModel)
	assert.Equal(t, "fake", sb.games[sb.current].ID)
	assert.Empty(t, sb.scores)

	next, cmd := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
	assert.False(t, next.(ScoreboardModel).IsQuitting())
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel(nil, 40, 10)
	assert.Empty(t, sb.scores)
	assert.Contains(t, sb.View(), "No scores recorded yet")

	next, _ := sb.Update(runeKey('q'))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}
