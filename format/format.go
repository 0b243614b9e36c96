// Package format reads query points and polygons from disk and writes
// filtered points back out.
//
// Points live in XYZ files: a count on the first line, then one "x y z" triple
// per point. Polygons come from Wavefront OBJ files (vertices plus a face
// listing them in edge order) or from the first <polygon> element of an SVG
// file. Only the x and y coordinates ever make it out of this package.
package format

import (
	"path/filepath"
	"strings"

	"github.com/osuushi/insidepoly/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point

var (
	ErrUnknownFormat = errors.New("unknown file format")
	ErrNoPolygon     = errors.New("no polygon element found")
	ErrNoFace        = errors.New("no face found")
)

// LoadPolygon reads polygon vertices from an .obj or .svg file, chosen by
// extension.
func LoadPolygon(path string) ([]Point, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".svg":
		return LoadSVG(path)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "polygon file %q", path)
	}
}

// LoadPoints reads query points from an .xyz file.
func LoadPoints(path string) ([]Point, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xyz" {
		return nil, errors.Wrapf(ErrUnknownFormat, "point file %q", path)
	}
	return LoadXYZ(path)
}
