package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/insidepoly"
	"github.com/osuushi/insidepoly/format"
	"github.com/pkg/errors"
)

// Print one line per query point: the point as given, then inside or outside.
func runClassify(polygonPath string, args []string, color bool, out io.Writer) error {
	polygon, err := format.LoadPolygon(polygonPath)
	if err != nil {
		return err
	}

	points := make([]insidepoly.Point, len(args))
	for i, arg := range args {
		if points[i], err = parsePoint(arg); err != nil {
			return err
		}
	}

	mask, err := insidepoly.Classify(polygon, points)
	if err != nil {
		return err
	}

	au := aurora.NewAurora(color)
	for i, arg := range args {
		label := au.Red("outside")
		if mask[i] {
			label = au.Green("inside")
		}
		fmt.Fprintf(out, "%s\t%s\n", arg, label)
	}
	return nil
}

func parsePoint(arg string) (insidepoly.Point, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return insidepoly.Point{}, errors.Errorf("point %q is not of the form x,y", arg)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return insidepoly.Point{}, errors.Wrapf(err, "invalid x value in %q", arg)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return insidepoly.Point{}, errors.Wrapf(err, "invalid y value in %q", arg)
	}
	return insidepoly.Point{X: x, Y: y}, nil
}
