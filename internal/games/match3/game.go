// Package match3 adapts the tile-matching engine to the arcade Game
// interface: cursor and selection handling, cascade playback and the
// end-of-game rules.
package match3

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic plays until no legal move remains.
	ModeClassic Mode = "classic"
	// ModeMoves also ends when the move budget is spent.
	ModeMoves Mode = "moves"
)

// Game implements the match3 puzzle on top of the engine package.
type Game struct {
	mode Mode
	cfg  config.Match3Config
	src  engine.ColorSource
	tick uint64

	board     *engine.Board
	score     int
	movesMade int
	movesLeft int
	hintsLeft int

	cursor    engine.Coord
	selected  engine.Coord
	hasSel    bool
	hint      engine.Move
	showHint  bool
	playback  playback
	status    string
	statusTTL int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver  bool
	endReason string
	failure   error
	paused    bool
	tooSmall  bool
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMoves creates a limited-moves game.
func NewMoves() *Game {
	return &Game{mode: ModeMoves}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_moves", func() registry.Game {
		return NewMoves()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMoves {
		return "match3_moves"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMoves {
		return "Match 3 (Moves)"
	}
	return "Match 3"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, loadErr := config.LoadMatch3(configPath)
	if loadErr != nil {
		cfg = config.DefaultMatch3Config()
	}
	config.ApplyMatch3Preset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.start(engine.NewRandSource(cfg.Board.Colors, rc.Seed))

	if loadErr != nil {
		g.setStatus(fmt.Sprintf("Config ignored: %v", loadErr))
	}
}

// start builds a fresh board from src and clears per-game state.
func (g *Game) start(src engine.ColorSource) {
	g.src = src
	g.tick = 0
	g.score = 0
	g.movesMade = 0
	g.movesLeft = g.cfg.Gameplay.Moves
	g.hintsLeft = g.cfg.Gameplay.Hints
	g.cursor = engine.Coord{}
	g.clearSelection()
	g.playback = playback{}
	g.gameOver = false
	g.endReason = ""
	g.failure = nil
	g.paused = false
	g.status = ""
	g.statusTTL = 0

	board, err := engine.Initialize(g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.Board.Colors, src)
	if err != nil {
		g.fail(err)
		g.checkScreenSize()
		return
	}
	g.board = board
	g.checkScreenSize()
	g.checkEnd()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Width*cellWidth + 2
	if minW < minPanelWidth {
		minW = minPanelWidth
	}
	minH := g.cfg.Board.Height + 2 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new terminal size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.statusTTL > 0 {
		g.statusTTL--
		if g.statusTTL == 0 {
			g.status = ""
		}
	}

	// Input is ignored until the cascade has finished playing.
	if g.playback.active() {
		if !g.playback.advance() {
			g.checkEnd()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	switch {
	case in.Has(core.ActionBack):
		g.clearSelection()
	case in.Has(core.ActionHint):
		g.useHint()
	case in.Has(core.ActionConfirm):
		g.confirm()
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.board.Width()-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.board.Height()-1)
}

// confirm selects the tile under the cursor, or swaps it with the selection.
func (g *Game) confirm() {
	switch {
	case !g.hasSel:
		g.selected = g.cursor
		g.hasSel = true
	case g.selected == g.cursor:
		g.clearSelection()
	default:
		m := engine.Move{From: g.selected, To: g.cursor}
		if !m.IsAdjacent() {
			// Treat a distant pick as a new selection.
			g.selected = g.cursor
			return
		}
		g.trySwap(m)
	}
}

func (g *Game) trySwap(m engine.Move) {
	g.clearSelection()

	result, err := engine.AttemptSwap(g.board, m, g.src)
	switch {
	case errors.Is(err, engine.ErrCascadeDidNotStabilize):
		g.fail(err)
		return
	case err != nil:
		g.setStatus("Invalid move")
		return
	case !result.Accepted:
		g.setStatus("No match - swap undone")
		return
	}

	g.score += result.ScoreDelta
	g.movesMade++
	if g.mode == ModeMoves {
		g.movesLeft--
	}

	passes := len(result.Cascade.Passes)
	if passes > 1 {
		g.setStatus(fmt.Sprintf("+%d  combo x%d", result.ScoreDelta, passes))
	} else {
		g.setStatus(fmt.Sprintf("+%d", result.ScoreDelta))
	}

	g.playback = newPlayback(result.Cascade, g.cfg.Playback.PassTicks)
	if !g.playback.active() {
		g.checkEnd()
	}
}

func (g *Game) useHint() {
	if g.hintsLeft <= 0 {
		g.setStatus("No hints left")
		return
	}
	m, ok := engine.FindLegalMove(g.board)
	if !ok {
		return
	}
	g.hintsLeft--
	g.hint = m
	g.showHint = true
	g.cursor = m.From
	g.selected = m.From
	g.hasSel = true
}

func (g *Game) clearSelection() {
	g.hasSel = false
	g.showHint = false
}

// checkEnd ends the game when the move budget is spent or the board is deadlocked.
func (g *Game) checkEnd() {
	if g.board == nil || g.gameOver {
		return
	}
	switch {
	case g.mode == ModeMoves && g.movesLeft <= 0:
		g.end("Out of moves")
	case !engine.HasAnyLegalMove(g.board):
		g.end("No more moves")
	}
}

func (g *Game) end(reason string) {
	g.gameOver = true
	g.endReason = reason
	g.clearSelection()
}

// fail aborts the game after an engine consistency error.
func (g *Game) fail(err error) {
	g.failure = err
	g.playback = playback{}
	g.end("Engine error")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = g.cfg.Playback.StatusTicks
	if g.statusTTL <= 0 {
		g.statusTTL = 1
	}
}

// Failure returns the engine error that aborted the game, if any.
func (g *Game) Failure() error {
	return g.failure
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.movesMade,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Busy:     g.playback.active(),
	}
}
