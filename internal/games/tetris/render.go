package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// sidebarWidth is the fixed width of the info column right of the board.
const sidebarWidth = 18

// blockColor maps a board color to a terminal color.
func blockColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorCyan:
		return platformcore.ColorBrightCyan
	case core.ColorBlue:
		return platformcore.ColorBrightBlue
	case core.ColorOrange:
		return platformcore.ColorOrange
	case core.ColorYellow:
		return platformcore.ColorBrightYellow
	case core.ColorGreen:
		return platformcore.ColorBrightGreen
	case core.ColorPurple:
		return platformcore.ColorMagenta
	case core.ColorRed:
		return platformcore.ColorBrightRed
	default:
		return platformcore.ColorWhite
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boardX := (dst.Width() - g.boardWidth() - sidebarWidth) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := g.hudHeight

	g.renderBoard(dst, boardX, boardY)
	g.renderSidebar(dst, boardX+g.boardWidth()+2, boardY)

	switch {
	case g.sim.GameOver() && g.sim.Solved():
		g.renderOverlay(dst, "Puzzle Complete!", fmt.Sprintf("Score: %d, press R to replay", g.sim.Score()))
	case g.sim.GameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.sim.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	var hud string
	if g.mode == ModePuzzle {
		name := ""
		if p := g.sim.Puzzle(); p != nil {
			name = p.Name
		}
		hud = fmt.Sprintf(" Tetris Puzzle: %s  |  Score: %d  Pieces: %d", name, g.sim.Score(), g.sim.PiecesUsed())
	} else {
		hud = fmt.Sprintf(" Tetris  |  Score: %d  Level: %d  Lines: %d", g.sim.Score(), g.sim.Level(), g.sim.Lines())
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the playfield border, settled cells, the ghost
// outline and the falling piece. Each board cell is cellW chars wide.
func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	grid := g.sim.Grid()

	dst.DrawBox(platformcore.NewRect(ox, oy, g.boardWidth(), grid.H+2))

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			cell := grid.Cell(x, y)
			if !cell.Filled {
				continue
			}
			g.drawCell(dst, ox, oy, x, y, '█', blockColor(cell.Color))
		}
	}

	cur := g.sim.Current()
	if cur == nil {
		return
	}

	// Ghost outline at the piece's landing position.
	ghostY := cur.Y + g.sim.DropDistance()
	if ghostY != cur.Y {
		for py, row := range cur.Cells {
			for px, filled := range row {
				if filled {
					g.drawCell(dst, ox, oy, cur.X+px, ghostY+py, '░', platformcore.ColorGray)
				}
			}
		}
	}

	color := blockColor(cur.Color)
	for py, row := range cur.Cells {
		for px, filled := range row {
			if filled {
				g.drawCell(dst, ox, oy, cur.X+px, cur.Y+py, '█', color)
			}
		}
	}
}

// drawCell paints one board cell as a cellW-wide run of the given rune.
// Cells above the visible board (y < 0) are clipped.
func (g *Game) drawCell(dst *platformcore.Screen, ox, oy, x, y int, r rune, c platformcore.Color) {
	if y < 0 {
		return
	}
	for i := 0; i < g.cellW; i++ {
		dst.SetWithColor(ox+1+x*g.cellW+i, oy+1+y, r, c)
	}
}

// renderSidebar draws the next-piece preview and mode-specific stats.
func (g *Game) renderSidebar(dst *platformcore.Screen, ox, oy int) {
	dst.DrawText(ox, oy, "NEXT")
	if next := g.sim.Next(); next != nil {
		color := blockColor(next.Color)
		for py, row := range next.Cells {
			for px, filled := range row {
				if !filled {
					continue
				}
				for i := 0; i < g.cellW; i++ {
					dst.SetWithColor(ox+px*g.cellW+i, oy+2+py, '█', color)
				}
			}
		}
	}

	y := oy + 6
	if g.mode == ModePuzzle {
		y = g.renderGoals(dst, ox, y)
		dst.DrawText(ox, y+1, fmt.Sprintf("Pieces: %d", g.sim.PiecesUsed()))
		dst.DrawText(ox, y+2, fmt.Sprintf("Lines:  %d", g.sim.Lines()))
	} else {
		dst.DrawText(ox, y, fmt.Sprintf("Score: %d", g.sim.Score()))
		dst.DrawText(ox, y+1, fmt.Sprintf("Level: %d", g.sim.Level()))
		dst.DrawText(ox, y+2, fmt.Sprintf("Lines: %d", g.sim.Lines()))
	}
}

// renderGoals lists each goal with its progress, achieved goals in
// green. Returns the y coordinate after the last line.
func (g *Game) renderGoals(dst *platformcore.Screen, ox, y int) int {
	p := g.sim.Puzzle()
	if p == nil {
		return y
	}
	dst.DrawText(ox, y, "GOALS")
	y++
	for i := range p.Goals {
		goal := &p.Goals[i]
		color := platformcore.ColorWhite
		if goal.Achieved() {
			color = platformcore.ColorBrightGreen
		}
		line := fmt.Sprintf("%s %d/%d", goalLabel(goal.Kind), goal.Current, goal.Target)
		dst.DrawTextWithColor(ox, y, line, color)
		y++
	}
	return y
}

// goalLabel returns a short display label for a goal kind.
func goalLabel(k core.GoalKind) string {
	switch k {
	case core.GoalClearLines:
		return "Lines"
	case core.GoalMaxPieces:
		return "Pieces"
	case core.GoalScore:
		return "Score"
	case core.GoalPattern:
		return "Pattern"
	case core.GoalClearAll:
		return "Clear all"
	case core.GoalTime:
		return "Seconds"
	default:
		return "Goal"
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
