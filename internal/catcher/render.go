package catcher

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Visual characters for rendering
const (
	BasketRim  = '▄'
	BasketBody = '█'
	HeartChar  = '♥'
)

type glyph struct {
	r rune
	c core.Color
}

var fruitGlyphs = map[Kind]glyph{
	KindApple:      {'●', core.ColorRed},
	KindBanana:     {')', core.ColorYellow},
	KindOrange:     {'●', core.ColorOrange},
	KindGrape:      {'♣', core.ColorMagenta},
	KindStrawberry: {'♥', core.ColorBrightRed},
	KindPineapple:  {'♦', core.ColorBrightYellow},
}

// viewport maps arena units onto the screen cells inside the border.
type viewport struct {
	x0, y0 int // top-left inner cell
	w, h   int // inner size in cells
	sx, sy float64
}

func newViewport(dst *core.Screen, arenaW, arenaH float64) viewport {
	// Row 0 is the HUD, the arena box takes the rest.
	v := viewport{
		x0: 1,
		y0: 2,
		w:  max(dst.Width()-2, 1),
		h:  max(dst.Height()-3, 1),
	}
	v.sx = float64(v.w) / arenaW
	v.sy = float64(v.h) / arenaH
	return v
}

// cells converts an arena rect into an inclusive-exclusive cell span,
// always at least one cell wide and tall.
func (v viewport) cells(r core.Rect) (x1, y1, x2, y2 int) {
	x1 = int(math.Floor(r.X * v.sx))
	y1 = int(math.Floor(r.Y * v.sy))
	x2 = max(int(math.Ceil(r.Right()*v.sx)), x1+1)
	y2 = max(int(math.Ceil(r.Bottom()*v.sy)), y1+1)
	return x1, y1, x2, y2
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x1, y1, x2, y2 := v.cells(r)
	for y := max(y1, 0); y < min(y2, v.h); y++ {
		for x := max(x1, 0); x < min(x2, v.w); x++ {
			dst.SetColored(v.x0+x, v.y0+y, ch, c)
		}
	}
}

// Render draws the arena, fruit, basket, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine
	cfg := e.Config()
	v := newViewport(dst, cfg.Arena.Width, cfg.Arena.Height)

	dst.DrawBox(v.x0-1, v.y0-1, v.w+2, v.h+2)

	for _, f := range e.Store().Fruits() {
		gl, ok := fruitGlyphs[f.Kind]
		if !ok {
			gl = glyph{'●', core.ColorDefault}
		}
		v.fill(dst, f.Rect(), gl.r, gl.c)
	}

	g.drawBasket(dst, v)
	g.drawHUD(dst)

	s := e.Session()
	switch {
	case s.Status() == StatusIdle:
		g.drawCenteredMessage(dst, strings.ToUpper(g.title), "Press Enter to start")
	case e.Paused():
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case s.Status() == StatusEnded:
		title := "GAME OVER"
		if s.Timed() {
			title = "TIME'S UP"
		}
		if s.NewBest() {
			title += " - NEW BEST!"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  R to replay, Esc for menu", s.Score()))
	}
}

func (g *Game) drawBasket(dst *core.Screen, v viewport) {
	rect := g.engine.Store().Paddle().Rect()
	v.fill(dst, rect, BasketBody, core.ColorBrown)

	// Rim on the top row of the basket
	x1, y1, x2, _ := v.cells(rect)
	for x := max(x1, 0); x < min(x2, v.w); x++ {
		if y1 >= 0 && y1 < v.h {
			dst.SetColored(v.x0+x, v.y0+y1, BasketRim, core.ColorBrown)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.engine.Session()
	hud := fmt.Sprintf(" Score: %d  Best: %d ", s.Score(), s.Best())
	dst.DrawText(1, 0, hud)

	x := len(hud) + 2
	if s.Timed() {
		dst.DrawTextColored(x, 0, fmt.Sprintf("Time: %ds", int(math.Ceil(s.TimeRemaining()))), core.ColorCyan)
		return
	}
	dst.DrawText(x, 0, "Lives: ")
	for i := 0; i < s.Lives(); i++ {
		dst.SetColored(x+7+i, 0, HeartChar, core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		dst.DrawHLine(boxX, y, boxW, ' ', core.ColorDefault)
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
