package crossing

import (
	"fmt"
	"strconv"
)

// textLine returns the y of text line k counted from the top of the board.
// Negative lines sit above the board.
func (w *World) textLine(k int) float64 {
	th := float64(w.board.TileHeight)
	return float64(k)*th/textLinesPerTile + th/12
}

// boardRight is the pixel x of the board's right edge.
func (w *World) boardRight() float64 {
	return float64(w.board.Columns * w.board.TileWidth)
}

// Draw is the render pass. It reads state and never mutates it.
func (w *World) Draw(r Renderer) {
	w.drawTiles(r)
	w.drawCharms(r)
	w.drawEnemies(r)
	if w.state.Mode() != ModeDemo {
		p := w.player
		r.DrawSprite(p.Sprite, p.X, p.Y, p.Width, float64(w.board.TileHeight), 1)
	}
	w.drawHUD(r)
	w.drawStatus(r)

	switch {
	case w.state.HelpVisible():
		w.drawHelp(r)
	case w.state.GameOverDialog():
		w.drawGameOver(r)
	case w.state.Mode() == ModePlaying && w.state.Paused():
		w.drawDialog(r, "Paused", "space to resume")
	case w.state.Mode() == ModeDemo:
		mid := w.boardRight() / 2
		r.DrawText("Crossing", FontTitle, AlignCenter, mid, w.textLine(1))
	}
}

func (w *World) drawTiles(r Renderer) {
	tw, th := float64(w.board.TileWidth), float64(w.board.TileHeight)
	for row := 0; row < w.board.Rows; row++ {
		sprite := "stone-block"
		switch {
		case w.board.IsWater(row):
			sprite = "water-block"
		case w.board.IsGrass(row):
			sprite = "grass-block"
		}
		for col := 0; col < w.board.Columns; col++ {
			r.DrawSprite(sprite, w.board.ColumnX(col), w.board.RowToY(row, 0), tw, th, 1)
		}
	}
}

func (w *World) drawCharms(r Renderer) {
	half := float64(w.board.TileHeight) / 2
	for i := 0; i < w.charms.Len(); i++ {
		c := w.charms.At(i)
		if !c.Visible {
			continue
		}
		r.DrawSprite(c.Sprite, c.X, c.Y, c.Width, half, w.charms.Alpha(c))
	}
}

func (w *World) drawEnemies(r Renderer) {
	th := float64(w.board.TileHeight)
	for i := 0; i < w.enemies.Len(); i++ {
		e := w.enemies.At(i)
		if e.Row < 0 {
			continue
		}
		r.DrawSprite(e.Sprite, e.X, e.Y, e.Width, th, w.enemies.ZombieAlpha(e))
	}
}

func (w *World) drawHUD(r Renderer) {
	y := w.textLine(-1)
	r.DrawText("Score "+strconv.Itoa(w.tracker.Score()), FontHUD, AlignLeft, 0, y)

	remaining := "--"
	if w.state.Mode() != ModeDemo {
		remaining = strconv.Itoa(w.state.RemainingSeconds())
	}
	timeText := "Time " + remaining
	if w.sound.Muted() {
		timeText = "♪off  " + timeText
	}
	r.DrawText(timeText, FontHUD, AlignRight, w.boardRight(), y)

	// Lives are drawn as small copies of the current skin.
	iconW := float64(w.board.TileWidth) * 0.6
	x := w.boardRight()/2 - iconW*float64(w.tracker.Lives())/2
	for i := 0; i < w.tracker.Lives(); i++ {
		r.DrawSprite(w.tracker.LivesIcon(), x+float64(i)*iconW, y, iconW, float64(w.board.TileHeight)/textLinesPerTile, 1)
	}
}

func (w *World) drawStatus(r Renderer) {
	msg := w.state.Status()
	if msg == "" {
		switch w.state.Mode() {
		case ModeDemo:
			msg = "space: play   h: help   q: quit"
		case ModePlaying:
			msg = "arrows: move   shift+arrows: skin   h: help"
		case ModeGameOver:
			msg = "space: play again   esc: demo"
		}
	}
	r.DrawText(msg, FontBody, AlignCenter, w.boardRight()/2, w.textLine(w.board.Rows*textLinesPerTile))
}

// drawDialog draws a centred panel with a title and body lines.
// The panel is laid out on text lines: border, title, blank, body, border.
func (w *World) drawDialog(r Renderer, title string, body ...string) {
	lines := len(body) + 4
	top := (w.board.Rows*textLinesPerTile - lines) / 2
	tw := float64(w.board.TileWidth)
	lh := float64(w.board.TileHeight) / textLinesPerTile

	rect := PixelRect{X: tw / 4, Y: w.textLine(top), W: w.boardRight() - tw/2, H: float64(lines) * lh}
	r.DrawPanel(rect, 1, true, true)

	mid := w.boardRight() / 2
	r.DrawText(title, FontTitle, AlignCenter, mid, w.textLine(top+1))
	for i, line := range body {
		r.DrawText(line, FontBody, AlignCenter, mid, w.textLine(top+3+i))
	}
}

func (w *World) drawHelp(r Renderer) {
	idx := w.state.HelpIndex()
	screen := HelpScreens[idx]
	body := append([]string{}, screen.Lines...)
	closeKeys := "space to close"
	if w.state.BackClosesHelp() {
		closeKeys = "space/esc to close"
	}
	body = append(body, "", fmt.Sprintf("◀ %d/%d ▶   %s", idx+1, len(HelpScreens), closeKeys))
	w.drawDialog(r, screen.Title, body...)
}

func (w *World) drawGameOver(r Renderer) {
	w.drawDialog(r, "Game over",
		"You ran "+w.state.Reason().String()+".",
		fmt.Sprintf("Final score: %d", w.tracker.Score()),
		"",
		"space: play again   esc: demo",
	)
}
