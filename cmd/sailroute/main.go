// Command sailroute drives a single isochronal routing solve from a YAML
// run configuration, printing the journey time and path to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tdickson/sailrouter/config"
	"github.com/tdickson/sailrouter/craft"
	"github.com/tdickson/sailrouter/failure"
	"github.com/tdickson/sailrouter/geo"
	"github.com/tdickson/sailrouter/grid"
	"github.com/tdickson/sailrouter/internal/logging"
	"github.com/tdickson/sailrouter/polar"
	"github.com/tdickson/sailrouter/routing"
	"github.com/tdickson/sailrouter/solver"
)

func main() {
	configPath := flag.String("config", "", "path to a run configuration YAML file")
	windSpeedKn := flag.Float64("wind-speed", 15.0, "synthetic uniform wind speed (knots), used when no environment adapter is wired")
	windFromDeg := flag.Float64("wind-from", 0.0, "synthetic uniform wind direction (degrees, 0=N), used when no environment adapter is wired")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := logging.LevelInfo
	if *verbose {
		level = logging.LevelDebug
	}
	log := logging.New(os.Stderr, level)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "sailroute: -config is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *windSpeedKn, *windFromDeg, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(configPath string, windSpeedKn, windFromDeg float64, log *logging.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Infof("loaded run config: rank=%d width=%d d_node=%.0fm", cfg.Rank, cfg.Width, cfg.DNodeMeters)

	start := geo.Location{Lon: cfg.Start.Lon, Lat: cfg.Start.Lat}
	finish := geo.Location{Lon: cfg.End.Lon, Lat: cfg.End.Lat}

	g, err := grid.Build(start, finish, cfg.Rank, cfg.Width, cfg.DNodeMeters, grid.AllWaterOracle{})
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	var polarTable *polar.Table
	if cfg.PolarTablePath != "" {
		delim := ','
		if cfg.PolarTableDelimiter != "" {
			delim = rune(cfg.PolarTableDelimiter[0])
		}
		polarTable, err = polar.LoadTable(cfg.PolarTablePath, polar.LoaderOptions{Delimiter: delim}, polar.WithPerfFactor(cfg.PerfFactor))
		if err != nil {
			return fmt.Errorf("loading polar table: %w", err)
		}
	} else {
		polarTable = syntheticPolar(cfg.PerfFactor)
	}

	craftOpts := []craft.Option{craft.WithReliabilityTolerance(cfg.ReliabilityTol)}
	if cfg.LifetimeDecayRate > 0 {
		craftOpts = append(craftOpts, craft.WithLifetimeDecay(cfg.LifetimeDecayRate))
	}
	c := craft.New(polarTable, failure.NewModel(), craftOpts...)

	env := solver.Environment{
		TWS: uniformField(windSpeedKn),
		TWD: uniformField(windFromDeg),
		WH:  uniformField(0),
		WD:  uniformField(windFromDeg),
	}

	solverOpts := []solver.Option{solver.WithDepartureTime(cfg.DepartureTimeUnix)}
	if cfg.ParallelRanks > 1 {
		solverOpts = append(solverOpts, solver.WithParallelRanks(cfg.ParallelRanks))
	}

	log.Debugf("solving: start=%+v finish=%+v", start, finish)
	route, err := routing.Solve(context.Background(), g, start, finish, env, c, solverOpts...)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Printf("journey_time: %.2f hours\n", route.JourneyTime-cfg.DepartureTimeUnix)
	fmt.Printf("path:\n")
	for i := range route.PathLon {
		fmt.Printf("  (%.4f, %.4f)\n", route.PathLon[i], route.PathLat[i])
	}

	return nil
}

// uniformField is a trivial constant solver.EnvField, used when the
// driver has no real forecast adapter wired in — a smoke-testing
// substitute for a genuine envfield.Field loaded from gridded data.
type uniformField float64

func (f uniformField) At(lon, lat, t float64) float64 { return float64(f) }

var _ solver.EnvField = uniformField(0)

// syntheticPolar returns a small, plausible boat-speed table used when no
// polar table file is configured, so the driver can smoke-test a solve end
// to end without external data.
func syntheticPolar(perfFactor float64) *polar.Table {
	p, err := polar.NewTable(
		[]float64{0, 40, 60, 80, 100, 120, 140, 160, 180},
		[]float64{4, 8, 12, 16, 20, 25},
		[][]float64{
			{0.0, 0.5, 1.0, 1.5, 1.8, 2.0},
			{2.5, 4.5, 5.8, 6.5, 6.9, 7.0},
			{3.0, 5.5, 6.8, 7.4, 7.8, 7.9},
			{3.2, 6.0, 7.2, 7.8, 8.1, 8.2},
			{3.0, 5.8, 7.0, 7.6, 7.9, 8.0},
			{2.6, 5.0, 6.2, 6.8, 7.1, 7.2},
			{2.0, 4.2, 5.3, 5.9, 6.2, 6.3},
			{1.4, 3.2, 4.2, 4.8, 5.1, 5.2},
			{1.0, 2.6, 3.5, 4.0, 4.3, 4.4},
		},
		polar.WithPerfFactor(perfFactor),
	)
	if err != nil {
		panic(fmt.Sprintf("sailroute: synthetic polar table is malformed: %v", err))
	}
	return p
}
