// Command insidepoly filters a point file down to the points inside a
// polygon.
//
//	insidepoly filter --data-dir data
//	insidepoly filter -c run.yaml --render inside.png --preview
//	insidepoly classify --polygon data/polygon.obj 1,1 3,3
//	insidepoly classify --polygon data/polygon.obj -- -1,-1 2,-0.5
//
// Query points whose first character is a minus sign look like flags, so put
// them after "--".
package main

import (
	"os"

	"github.com/osuushi/insidepoly/config"
	"github.com/osuushi/insidepoly/log"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Flags that were given on the command line, by long name. Only these
// override the config file, so an explicit zero (--workers 0, --tolerance 0)
// still counts.
type flagSet map[string]bool

type cli struct {
	app *kingpin.Application
	set flagSet

	logLevel  *string
	logFormat *string

	filter          *kingpin.CmdClause
	filterConfig    *string
	filterDataDir   *string
	filterPoints    *string
	filterPolygon   *string
	filterOutput    *string
	filterWorkers   *int
	filterTolerance *float64
	filterRender    *string
	filterPreview   *bool

	classify        *kingpin.CmdClause
	classifyPolygon *string
	classifyNoColor *bool
	classifyPoints  *[]string
}

func newCLI() *cli {
	c := &cli{
		app: kingpin.New("insidepoly", "Find the points that lie inside a polygon."),
		set: make(flagSet),
	}
	c.app.HelpFlag.Short('h')

	// Record that the flag was given, whatever its value
	mark := func(name string) kingpin.Action {
		return func(*kingpin.ParseContext) error {
			c.set[name] = true
			return nil
		}
	}

	c.logLevel = c.app.Flag("log-level", "Log level (trace, debug, info, warn, error).").Action(mark("log-level")).String()
	c.logFormat = c.app.Flag("log-format", "Log format (text, json).").Action(mark("log-format")).String()

	c.filter = c.app.Command("filter", "Write the points inside the polygon to an XYZ file. Flags override the config file, which overrides the defaults.")
	c.filterConfig = c.filter.Flag("config", "YAML configuration file.").Short('c').ExistingFile()
	c.filterDataDir = c.filter.Flag("data-dir", "Directory that relative paths are resolved against.").Action(mark("data-dir")).String()
	c.filterPoints = c.filter.Flag("points", "XYZ file of query points.").Action(mark("points")).String()
	c.filterPolygon = c.filter.Flag("polygon", "OBJ or SVG polygon file.").Action(mark("polygon")).String()
	c.filterOutput = c.filter.Flag("output", "XYZ file to write the inside points to.").Short('o').Action(mark("output")).String()
	c.filterWorkers = c.filter.Flag("workers", "Classification goroutines (0 for one per CPU).").Short('w').Action(mark("workers")).Int()
	c.filterTolerance = c.filter.Flag("tolerance", "Intersection tolerance (0 for exact).").Action(mark("tolerance")).Float64()
	c.filterRender = c.filter.Flag("render", "Also draw the run to this PNG file.").Action(mark("render")).String()
	c.filterPreview = c.filter.Flag("preview", "Print the rendering in the terminal (iTerm).").Action(mark("preview")).Bool()

	c.classify = c.app.Command("classify", "Print inside or outside for each point given on the command line. Put points with a negative x after \"--\".")
	c.classifyPolygon = c.classify.Flag("polygon", "OBJ or SVG polygon file.").Required().ExistingFile()
	c.classifyNoColor = c.classify.Flag("no-color", "Disable colored output.").Bool()
	c.classifyPoints = c.classify.Arg("points", "Query points as x,y (after \"--\" if any starts with a minus sign).").Required().Strings()
	return c
}

func main() {
	c := newCLI()
	command := kingpin.MustParse(c.app.Parse(os.Args[1:]))

	var err error
	switch command {
	case c.filter.FullCommand():
		var cfg *config.Config
		if cfg, err = c.filterConfiguration(); err == nil {
			if err = setupLogging(cfg); err == nil {
				_, err = runFilter(cfg, os.Stdout)
			}
		}
	case c.classify.FullCommand():
		if err = setupLogging(c.applyLogging(config.Default())); err == nil {
			err = runClassify(*c.classifyPolygon, *c.classifyPoints, !*c.classifyNoColor, os.Stdout)
		}
	}
	if err != nil {
		log.WithError(err).Error("insidepoly failed")
		os.Exit(1)
	}
}

// Build the configuration for a filter run. Flags override the config file,
// which overrides the defaults.
func (c *cli) filterConfiguration() (*config.Config, error) {
	cfg := config.Default()
	if *c.filterConfig != "" {
		var err error
		if cfg, err = config.Load(*c.filterConfig); err != nil {
			return nil, err
		}
	}

	if c.set["data-dir"] {
		cfg.DataDir = *c.filterDataDir
	}
	if c.set["points"] {
		cfg.Input.Points = *c.filterPoints
	}
	if c.set["polygon"] {
		cfg.Input.Polygon = *c.filterPolygon
	}
	if c.set["output"] {
		cfg.Output.Points = *c.filterOutput
	}
	if c.set["render"] {
		cfg.Output.Render = *c.filterRender
	}
	if c.set["preview"] {
		cfg.Output.Preview = *c.filterPreview
	}
	if c.set["workers"] {
		cfg.Workers = *c.filterWorkers
	}
	if c.set["tolerance"] {
		cfg.Tolerance = *c.filterTolerance
	}
	return c.applyLogging(cfg), nil
}

func (c *cli) applyLogging(cfg *config.Config) *config.Config {
	if c.set["log-level"] {
		cfg.Logging.Level = *c.logLevel
	}
	if c.set["log-format"] {
		cfg.Logging.Format = *c.logFormat
	}
	return cfg
}

func setupLogging(cfg *config.Config) error {
	if err := log.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if err := log.SetFormat(cfg.Logging.Format); err != nil {
		return err
	}
	return log.SetOutput(cfg.Logging.Output)
}
