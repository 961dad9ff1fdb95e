package crossing

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Align positions text relative to its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font selects a text style.
type Font int

const (
	FontBody Font = iota
	FontTitle
	FontHUD
)

// PixelRect is a rectangle in board pixels.
type PixelRect struct {
	X, Y, W, H float64
}

// Renderer draws what the game decides to show. Coordinates are board pixels.
type Renderer interface {
	DrawSprite(ref string, x, y, w, h, alpha float64)
	DrawPanel(r PixelRect, alpha float64, fill, stroke bool)
	DrawText(text string, font Font, align Align, x, y float64)
}

// Sprite is a terminal stand-in for an image.
// Tiles set Fill and cover their whole area; actors set Glyph.
type Sprite struct {
	Glyph string
	Fill  rune
	Color core.Color
}

// AssetResolver maps sprite names to sprites.
type AssetResolver interface {
	Resolve(name string) Sprite
}

// SpriteTable is a static AssetResolver.
type SpriteTable map[string]Sprite

// Resolve returns the named sprite or a visible placeholder.
func (t SpriteTable) Resolve(name string) Sprite {
	if s, ok := t[name]; ok {
		return s
	}
	return Sprite{Glyph: "?", Color: core.ColorBrightMagenta}
}

var classColors = [NumClasses]core.Color{
	core.ColorGreen,
	core.ColorBrightBlue,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorRed,
}

// DefaultSprites holds every sprite the game draws.
var DefaultSprites = func() SpriteTable {
	t := SpriteTable{
		"water-block": {Fill: '≈', Color: core.ColorBlue},
		"stone-block": {Fill: '·', Color: core.ColorGray},
		"grass-block": {Fill: '"', Color: core.ColorGreen},
	}
	skinGlyphs := [NumClasses]string{"[o_o]", "=^.^=", "}o_o{", "(^o^)", "<*_*>"}
	for i := 0; i < NumClasses; i++ {
		c := ColorClass(i)
		t[EnemySprite(c)] = Sprite{Glyph: "<@@@>", Color: classColors[i]}
		t[CharmSprite(c)] = Sprite{Glyph: "◆", Color: classColors[i]}
		t[Skins[i]] = Sprite{Glyph: skinGlyphs[i], Color: classColors[i]}
	}
	return t
}()

// Text rows per board tile in the terminal layout.
const textLinesPerTile = 3

// ScreenRenderer implements Renderer on a core.Screen.
// Each tile maps to a fixed block of cells and sprites are clipped to the play area.
type ScreenRenderer struct {
	dst     *core.Screen
	assets  AssetResolver
	board   Board
	cellW   int
	cellH   int
	originX int
	originY int
	clip    core.Rect
}

// TileCellWidth is the number of columns one tile occupies.
const TileCellWidth = 10

// MinScreenSize returns the smallest screen that fits the board with HUD and status lines.
func MinScreenSize(b Board) (int, int) {
	return b.Columns * TileCellWidth, b.Rows*textLinesPerTile + 2
}

// NewScreenRenderer centres the board horizontally below a one-line HUD.
func NewScreenRenderer(dst *core.Screen, assets AssetResolver, board Board) *ScreenRenderer {
	w := board.Columns * TileCellWidth
	h := board.Rows * textLinesPerTile
	r := &ScreenRenderer{
		dst:     dst,
		assets:  assets,
		board:   board,
		cellW:   TileCellWidth,
		cellH:   textLinesPerTile,
		originX: core.Max(0, (dst.Width()-w)/2),
		originY: 1,
	}
	r.clip = core.NewRect(r.originX, r.originY-1, w, h+2)
	return r
}

func (r *ScreenRenderer) cellX(x float64) int {
	return r.originX + int(math.Floor(x*float64(r.cellW)/float64(r.board.TileWidth)))
}

func (r *ScreenRenderer) cellY(y float64) int {
	return r.originY + int(math.Floor(y*float64(r.cellH)/float64(r.board.TileHeight)))
}

func (r *ScreenRenderer) cells(w, h float64) (int, int) {
	cw := int(math.Round(w * float64(r.cellW) / float64(r.board.TileWidth)))
	ch := int(math.Round(h * float64(r.cellH) / float64(r.board.TileHeight)))
	return core.Max(1, cw), core.Max(1, ch)
}

func (r *ScreenRenderer) setClipped(x, y int, ch rune, c core.Color) {
	if !r.clip.Contains(x, y) {
		return
	}
	r.dst.SetColor(x, y, ch, c)
}

// DrawSprite draws a tile fill or a centred glyph.
func (r *ScreenRenderer) DrawSprite(ref string, x, y, w, h, alpha float64) {
	if alpha <= 0 {
		return
	}
	s := r.assets.Resolve(ref)
	color := s.Color.Faded(alpha)
	cx, cy := r.cellX(x), r.cellY(y)
	cw, ch := r.cells(w, h)
	if !core.NewRect(cx, cy, cw, ch).Intersects(r.clip) {
		return
	}

	if s.Fill != 0 {
		for dy := 0; dy < ch; dy++ {
			for dx := 0; dx < cw; dx++ {
				r.setClipped(cx+dx, cy+dy, s.Fill, color)
			}
		}
		return
	}

	gx := cx + (cw-utf8.RuneCountInString(s.Glyph))/2
	gy := cy + ch/2
	i := 0
	for _, g := range s.Glyph {
		r.setClipped(gx+i, gy, g, color)
		i++
	}
}

// DrawPanel draws a dialog box.
func (r *ScreenRenderer) DrawPanel(p PixelRect, alpha float64, fill, stroke bool) {
	x0, y0 := r.cellX(p.X), r.cellY(p.Y)
	x1, y1 := r.cellX(p.X+p.W), r.cellY(p.Y+p.H)
	rect := core.NewRect(x0, y0, x1-x0, y1-y0)
	if fill {
		r.dst.DrawRect(rect, ' ')
	}
	if stroke {
		r.dst.DrawBoxColor(rect, core.ColorBrightWhite.Faded(alpha))
	}
}

// DrawText draws a single line of text anchored at (x, y).
func (r *ScreenRenderer) DrawText(text string, font Font, align Align, x, y float64) {
	color := core.ColorWhite
	switch font {
	case FontTitle:
		text = strings.ToUpper(text)
		color = core.ColorBrightYellow
	case FontHUD:
		color = core.ColorBrightWhite
	}

	n := utf8.RuneCountInString(text)
	cx := r.cellX(x)
	switch align {
	case AlignCenter:
		cx -= n / 2
	case AlignRight:
		cx -= n
	}
	cx = core.Clamp(cx, 0, core.Max(0, r.dst.Width()-n))
	r.dst.DrawTextColor(cx, r.cellY(y), text, color)
}
