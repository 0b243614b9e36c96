package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/osuushi/insidepoly/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareScene() Scene {
	return Scene{
		Polygon: []internal.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		Points:  []internal.Point{{X: 2, Y: 2}, {X: 5, Y: 5}},
		Inside:  []bool{true, false},
	}
}

func pixelAt(c *gg.Context, x, y float64) (r, g, b uint32) {
	px, py := c.TransformPoint(x, y)
	r, g, b, _ = c.Image().At(int(px), int(py)).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestDraw(t *testing.T) {
	c, err := Draw(squareScene(), 100)
	require.NoError(t, err)

	// The points stretch the scene to 5 units, so 20 pixels per unit
	assert.Equal(t, 100+2*padding, c.Width())
	assert.Equal(t, 100+2*padding, c.Height())

	r, g, b := pixelAt(c, 2, 2)
	assert.Equal(t, [3]uint32{0, 255, 0}, [3]uint32{r, g, b}, "inside point is green")

	r, g, b = pixelAt(c, 5, 5)
	assert.Equal(t, [3]uint32{255, 0, 0}, [3]uint32{r, g, b}, "outside point is red")

	r, g, b = pixelAt(c, 3, 1)
	assert.Greater(t, b, r, "polygon interior is filled blue")
	assert.Greater(t, b, g, "polygon interior is filled blue")

	r, g, b = pixelAt(c, 4.5, 0.5)
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b}, "background is black")
}

func TestDraw_Errors(t *testing.T) {
	_, err := Draw(Scene{}, 100)
	assert.Error(t, err)

	scene := squareScene()
	scene.Inside = scene.Inside[:1]
	_, err = Draw(scene, 100)
	assert.Error(t, err)

	_, err = Draw(squareScene(), 0)
	assert.Error(t, err)
}

func TestDraw_DegenerateScene(t *testing.T) {
	c, err := Draw(Scene{Polygon: []internal.Point{{X: 1, Y: 1}}}, 50)
	require.NoError(t, err)
	assert.Equal(t, 2*padding, c.Width())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, SavePNG(path, squareScene(), 60))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 60+2*padding, img.Bounds().Dx())
}

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, SavePNG(path, squareScene(), 20))

	var out bytes.Buffer
	require.NoError(t, Preview(path, &out))
	assert.Contains(t, out.String(), "1337;File=")
}

func TestPreview_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	var out bytes.Buffer
	err := Preview(path, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	assert.Empty(t, out.String())
}
