package format

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It parses the document,
// finds the one <polygon> element, and converts its points attribute. Paths,
// transforms and units are all ignored.

func LoadSVG(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open polygon file")
	}
	defer f.Close()

	points, err := ReadSVG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read polygon file %q", path)
	}
	return points, nil
}

func ReadSVG(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, ErrNoPolygon
	}
	if len(polygons) > 1 {
		return nil, errors.Errorf("more than one polygon element (found %d)", len(polygons))
	}

	return parsePointList(polygons[0].Attributes["points"])
}

// SVG point lists are numbers separated by whitespace and/or commas, taken in
// pairs: "0,0 4,0 4,4" and "0 0 4 0 4 4" are the same list.
func parsePointList(list string) ([]Point, error) {
	numbers := strings.Fields(strings.ReplaceAll(list, ",", " "))
	if len(numbers)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points %q", list)
	}

	points := make([]Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		x, err := strconv.ParseFloat(numbers[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", numbers[i])
		}
		y, err := strconv.ParseFloat(numbers[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", numbers[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
