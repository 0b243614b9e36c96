package format

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func LoadOBJ(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open polygon file")
	}
	defer f.Close()

	points, err := ReadOBJ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read polygon file %q", path)
	}
	return points, nil
}

// ReadOBJ resolves the faces of an OBJ stream into polygon vertices.
//
// Only "v" and "f" statements matter. Vertex z (and w) coordinates are ignored.
// Face indices are 1-based, may be negative to count back from the latest
// vertex, and may carry "/vt/vn" suffixes, which are ignored. When there is
// more than one face, their vertices are concatenated in file order; the usual
// input has exactly one.
func ReadOBJ(r io.Reader) ([]Point, error) {
	var vertices, polygon []Point
	sawFace := false

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 3 {
				return nil, errors.Errorf("line %d: vertex needs at least two coordinates", lineNumber)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: invalid x value", lineNumber)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: invalid y value", lineNumber)
			}
			vertices = append(vertices, Point{X: x, Y: y})

		case "f":
			sawFace = true
			for _, field := range fields[1:] {
				index, err := resolveIndex(field, len(vertices))
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNumber)
				}
				polygon = append(polygon, vertices[index])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygon")
	}
	if !sawFace {
		return nil, ErrNoFace
	}
	return polygon, nil
}

// Convert an OBJ face reference like "3", "-1" or "3/1/2" into a 0-based index
// into the vertices read so far.
func resolveIndex(field string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	index, err := strconv.Atoi(field)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid face index %q", field)
	}
	if index < 0 {
		index += vertexCount
	} else {
		index--
	}
	if index < 0 || index >= vertexCount {
		return 0, errors.Errorf("face index %q out of range (%d vertices)", field, vertexCount)
	}
	return index, nil
}
