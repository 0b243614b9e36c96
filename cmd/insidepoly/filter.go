package main

import (
	"fmt"
	"io"
	"time"

	"github.com/osuushi/insidepoly"
	"github.com/osuushi/insidepoly/config"
	"github.com/osuushi/insidepoly/format"
	"github.com/osuushi/insidepoly/internal/dbg"
	"github.com/osuushi/insidepoly/log"
	"github.com/osuushi/insidepoly/render"
)

// Longer side of the rendering, in pixels
const renderSize = 800

type filterSummary struct {
	Points   int
	Vertices int
	Inside   int
}

// Load, classify, save. Everything the run needs comes from cfg; the summary
// line goes to out.
func runFilter(cfg *config.Config, out io.Writer) (*filterSummary, error) {
	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := log.WithField("run", dbg.RunName())

	points, err := format.LoadPoints(cfg.Input.Points)
	if err != nil {
		return nil, err
	}
	polygon, err := format.LoadPolygon(cfg.Input.Polygon)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{
		"points":   len(points),
		"vertices": len(polygon),
	}).Debug("loaded input")
	if len(polygon) > 0 && len(polygon) < 3 {
		logger.Warnf("polygon has only %d vertices", len(polygon))
	}

	start := time.Now()
	mask, err := insidepoly.Classify(polygon, points,
		insidepoly.WithWorkers(cfg.Workers),
		insidepoly.WithTolerance(cfg.Tolerance),
	)
	if err != nil {
		return nil, err
	}
	inside := insidepoly.Select(points, mask)
	logger.WithFields(log.Fields{
		"inside":  len(inside),
		"elapsed": time.Since(start),
	}).Info("classified points")

	if err := format.SaveXYZ(cfg.Output.Points, inside); err != nil {
		return nil, err
	}
	logger.WithField("path", cfg.Output.Points).Debug("wrote output")

	if cfg.Output.Render != "" {
		scene := render.Scene{Polygon: polygon, Points: points, Inside: mask}
		if err := render.SavePNG(cfg.Output.Render, scene, renderSize); err != nil {
			return nil, err
		}
		logger.WithField("path", cfg.Output.Render).Debug("wrote rendering")
		if cfg.Output.Preview {
			if err := render.Preview(cfg.Output.Render, out); err != nil {
				return nil, err
			}
		}
	}

	summary := &filterSummary{Points: len(points), Vertices: len(polygon), Inside: len(inside)}
	fmt.Fprintf(out, "%d of %d points inside a %d vertex polygon\n", summary.Inside, summary.Points, summary.Vertices)
	return summary, nil
}
