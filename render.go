package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"snek/internal/geom"
)

// basicfont glyphs are 13 pixels tall; sizes are scaled from that.
const faceSize = 13

// renderer draws canvas shapes onto an ebiten image scaled by scale.
type renderer struct {
	screen *ebiten.Image
	scale  float64
	face   text.Face
}

func newRenderer() *renderer {
	return &renderer{
		scale: 1,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *renderer) px(v float64) float32 { return float32(v * r.scale) }

func (r *renderer) Clear() {
	r.screen.Fill(color.Black)
}

func (r *renderer) Rect(rect geom.Rect, fill, stroke color.Color, lineWidth float64) {
	if fill != nil {
		vector.DrawFilledRect(r.screen, r.px(rect.X), r.px(rect.Y), r.px(rect.Width), r.px(rect.Height), fill, false)
	}
	if stroke != nil {
		vector.StrokeRect(r.screen, r.px(rect.X), r.px(rect.Y), r.px(rect.Width), r.px(rect.Height), r.px(lineWidth), stroke, false)
	}
}

// Path strokes each segment and fills a square at every joint so corners
// come out mitred.
func (r *renderer) Path(points []geom.Point, stroke color.Color, lineWidth float64) {
	if stroke == nil {
		return
	}
	half := lineWidth / 2
	for i, p := range points {
		if i > 0 {
			q := points[i-1]
			vector.StrokeLine(r.screen, r.px(q.X), r.px(q.Y), r.px(p.X), r.px(p.Y), r.px(lineWidth), stroke, false)
		}
		if i > 0 && i < len(points)-1 {
			vector.DrawFilledRect(r.screen, r.px(p.X-half), r.px(p.Y-half), r.px(lineWidth), r.px(lineWidth), stroke, false)
		}
	}
}

func (r *renderer) Circle(center geom.Point, radius float64, fill color.Color) {
	if fill == nil {
		return
	}
	vector.DrawFilledCircle(r.screen, r.px(center.X), r.px(center.Y), r.px(radius), fill, true)
}

// Text draws s with its baseline at y.
func (r *renderer) Text(s string, clr color.Color, size, x, y float64) {
	k := size / faceSize * r.scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x*r.scale, (y-size)*r.scale)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	text.Draw(r.screen, s, r.face, op)
}
