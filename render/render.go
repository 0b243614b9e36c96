// Package render draws a classification run: the polygon, and every query
// point colored by which side of it the point landed on. This is a debugging
// and sanity checking aid, not a plotting library.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/insidepoly/internal"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const padding = 20

// Radius of a query point, in pixels
const pointRadius = 3

type Scene struct {
	Polygon []internal.Point
	Points  []internal.Point
	// Inside[i] is the classification of Points[i]
	Inside []bool
}

func (s Scene) bounds() internal.BoundingBox {
	box := internal.BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, list := range [][]internal.Point{s.Polygon, s.Points} {
		for _, p := range list {
			box.MinX = math.Min(box.MinX, p.X)
			box.MinY = math.Min(box.MinY, p.Y)
			box.MaxX = math.Max(box.MaxX, p.X)
			box.MaxY = math.Max(box.MaxY, p.Y)
		}
	}
	return box
}

// Draw the scene so that its longer side spans size pixels, plus padding. The
// context is left with the scene transform applied, so callers can map scene
// coordinates to pixels with TransformPoint.
func Draw(scene Scene, size int) (*gg.Context, error) {
	if len(scene.Polygon) == 0 {
		return nil, errors.Wrap(internal.ErrEmptyPolygon, "nothing to draw")
	}
	if len(scene.Inside) != len(scene.Points) {
		return nil, errors.Errorf("%d classifications for %d points", len(scene.Inside), len(scene.Points))
	}
	if size <= 0 {
		return nil, errors.Errorf("invalid render size %d", size)
	}

	box := scene.bounds()
	// A scene that is a single point or a line still needs a finite scale
	extent := math.Max(box.MaxX-box.MinX, box.MaxY-box.MinY)
	if extent == 0 {
		extent = 1
	}
	scale := float64(size) / extent

	width := int(math.Ceil(scale*(box.MaxX-box.MinX))) + padding*2
	height := int(math.Ceil(scale*(box.MaxY-box.MinY))) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-box.MinX, -box.MinY)

	c.MoveTo(scene.Polygon[0].X, scene.Polygon[0].Y)
	for _, p := range scene.Polygon[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for i, p := range scene.Points {
		c.DrawPoint(p.X, p.Y, pointRadius)
		if scene.Inside[i] {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.Fill()
	}
	return c, nil
}

func SavePNG(path string, scene Scene, size int) error {
	c, err := Draw(scene, size)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "could not save rendering to %q", path)
}

// Preview prints a saved PNG inline in the terminal. Only iTerm understands
// the escape sequence; elsewhere it is noise, so this is opt in.
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "could not preview %q", path)
}
