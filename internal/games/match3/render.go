package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

const (
	cellWidth     = 3 // " ● " per tile
	hudHeight     = 3
	footerHeight  = 2
	minPanelWidth = 36
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.cfg.Board.Width*cellWidth + 2
	boardH := g.cfg.Board.Height + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderTiles(dst, boardX+1, boardY+1)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and remaining budgets.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	info := fmt.Sprintf("Score: %d   Moves: %d", g.score, g.movesMade)
	if g.mode == ModeMoves {
		info = fmt.Sprintf("Score: %d   Moves left: %d", g.score, g.movesLeft)
	}
	if g.cfg.Gameplay.Hints > 0 {
		info += fmt.Sprintf("   Hints: %d", g.hintsLeft)
	}
	dst.DrawTextCentered(1, info)
}

// renderTiles draws the board, or the current cascade frame while one plays.
func (g *Game) renderTiles(dst *core.Screen, originX, originY int) {
	grid := g.playback.current()
	if grid == nil {
		if g.board == nil {
			return
		}
		grid = g.board.Snapshot()
	}
	interactive := !g.playback.active() && !g.gameOver

	for y, row := range grid {
		for x, id := range row {
			px := originX + x*cellWidth
			dst.SetColored(px+1, originY+y, core.TileGlyph(id), core.TileColor(id))
			if !interactive {
				continue
			}

			c := engine.Coord{X: x, Y: y}
			left, right := ' ', ' '
			switch {
			case g.hasSel && g.selected == c:
				left, right = '<', '>'
			case g.showHint && g.hint.To == c:
				left, right = '(', ')'
			case g.cursor == c:
				left, right = '[', ']'
			}
			dst.SetColored(px, originY+y, left, core.ColorBrightWhite)
			dst.SetColored(px+2, originY+y, right, core.ColorBrightWhite)
		}
	}
}

// renderFooter draws the status line and key hints under the board.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.status != "" {
		dst.DrawTextCentered(y, g.status)
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.failure != nil:
		drawOverlay(dst, centerX, centerY, "GAME ABORTED", g.failure.Error(), "Press R to restart")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			g.endReason,
			fmt.Sprintf("Final score: %d", g.score),
			"Press R to restart",
		)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter: Select/Swap | H: Hint | P: Pause | Q: Quit"
}
