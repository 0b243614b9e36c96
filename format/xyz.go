package format

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func LoadXYZ(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open point file")
	}
	defer f.Close()

	points, err := ReadXYZ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read point file %q", path)
	}
	return points, nil
}

// ReadXYZ parses an XYZ stream. The leading count must be present, but it is
// not trusted: points are read until the input runs out, or until a token is
// not a number, whichever comes first. A trailing partial triple is dropped.
func ReadXYZ(r io.Reader) ([]Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "reading point count")
		}
		return nil, errors.New("missing point count")
	}
	count, err := strconv.Atoi(scanner.Text())
	if err != nil || count < 0 {
		return nil, errors.Errorf("invalid point count %q", scanner.Text())
	}

	// The count only sizes the buffer, and is capped in case it is garbage.
	points := make([]Point, 0, min(count, 1<<16))
	var triple [3]float64
	for {
		for i := range triple {
			if !scanner.Scan() {
				return points, errors.Wrap(scanner.Err(), "reading points")
			}
			v, err := strconv.ParseFloat(scanner.Text(), 64)
			if err != nil {
				return points, nil
			}
			triple[i] = v
		}
		points = append(points, Point{X: triple[0], Y: triple[1]})
	}
}

func SaveXYZ(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create output file")
	}
	if err := WriteXYZ(f, points); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write output file %q", path)
	}
	return errors.Wrapf(f.Close(), "could not close output file %q", path)
}

// WriteXYZ writes the count line, then "x y 0" for every point. Coordinates use
// the shortest form that reads back to the same float64.
func WriteXYZ(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(points)))
	bw.WriteByte('\n')
	for _, p := range points {
		bw.WriteString(formatFloat(p.X))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p.Y))
		bw.WriteString(" 0\n")
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
