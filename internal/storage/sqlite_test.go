package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("match3", 120, 4)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("match3")
	require.NoError(t, err)
	assert.Equal(t, 120, high)
}

func TestStoreUpgradesScoresWithoutMoves(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	// Schema written by the arcade build before moves were tracked.
	legacy, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('snake', 40), ('match3', 80);
	`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore("match3", 100, 3)
	require.NoError(t, err)

	scores, err := store.TopScores("match3", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 100, scores[0].Score)
	assert.Equal(t, 3, scores[0].Moves)
	assert.Equal(t, 80, scores[1].Score)
	assert.Zero(t, scores[1].Moves, "rows from before the upgrade default to zero moves")

	snake, err := store.HighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 40, snake, "other games' rows survive the upgrade")

	// A second open must not try to add the column again.
	require.NoError(t, store.Close())
	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	stats, err := store.GetGameStats("match3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalMoves)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game         string
		score, moves int
	}{
		{"match3", 100, 5},
		{"match3", 50, 2},
		{"match3", 200, 9},
		{"match3_moves", 500, 30},
	}
	for _, s := range saves {
		_, err := store.SaveScore(s.game, s.score, s.moves)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("match3", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, 9, scores[0].Moves)
	assert.False(t, scores[0].CreatedAt.IsZero(), "CreatedAt should be populated")

	other, err := store.TopScores("match3_moves", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore("match3", (i+1)*100, 10)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("match3", 500, 3)
	require.NoError(t, err)

	scores, err := store.TopScores("match3", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Tied 500s: fewer moves ranks first.
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 3, scores[0].Moves)
	assert.Equal(t, 500, scores[1].Score)
	assert.Equal(t, 400, scores[2].Score)

	defaulted, err := store.TopScores("match3", 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 6, "limit 0 should default to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveScore("match3", score, 1)
		require.NoError(t, err)
	}

	high, err = store.HighScore("match3")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	for _, game := range []string{"match3", "match3", "match3_moves"} {
		_, err := store.SaveScore(game, 100, 1)
		require.NoError(t, err)
	}

	require.NoError(t, store.ClearScores("match3"))

	cleared, err := store.TopScores("match3", 10)
	require.NoError(t, err)
	assert.Empty(t, cleared)

	kept, err := store.TopScores("match3_moves", 10)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "clearing match3 must not touch match3_moves")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	_, err = store.SaveScore("match3", 100, 4)
	require.NoError(t, err)
	_, err = store.SaveScore("match3", 300, 6)
	require.NoError(t, err)

	stats, err := store.GetGameStats("match3")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(10), stats.TotalMoves)
	assert.False(t, stats.LastPlayed.IsZero(), "LastPlayed should be set")
}
