package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/akmonengine/feather2d/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "scene",
		Aliases: []string{"s"},
		Usage:   "Load the bodies from a YAML `FILE`, the built-in pair is used otherwise",
	},
	&cli.IntFlag{
		Name:  "iterations",
		Usage: "Override the number of overlap queries",
	},
	&cli.IntFlag{
		Name:  "workers",
		Value: 1,
		Usage: "Number of goroutines running the queries",
	},
	&cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "debug, info, warn or error",
	},
	&cli.BoolFlag{
		Name:  "quiet",
		Usage: "Do not print every query result",
	},
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return config.Build()
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scene.LoadYAML(f)
}

// query runs the overlap test of the first two shapes n times across workers goroutines
func query(shapes [][]mgl32.Vec2, n, workers int) ([]bool, error) {
	results := make([]bool, n)

	var g errgroup.Group
	g.SetLimit(max(1, workers))

	for i := range n {
		g.Go(func() error {
			overlap, err := gjk.Intersects(shapes[0], shapes[1])
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = overlap
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid log level: %s", err), 1)
	}
	defer logger.Sync()

	s, err := loadScene(c.String("scene"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("error loading scene: %s", err), 1)
	}
	if v := c.Int("iterations"); v > 0 {
		s.Iterations = v
	}

	start := time.Now()
	results, err := query(s.Shapes(), s.Iterations, c.Int("workers"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	elapsed := time.Since(start)

	collisions := 0
	out := bufio.NewWriter(os.Stdout)
	for _, overlap := range results {
		if overlap {
			collisions++
		}
		if !c.Bool("quiet") {
			fmt.Fprintf(out, "has_collision=%t\n", overlap)
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}

	logger.Info("queries done",
		zap.Int("iterations", s.Iterations),
		zap.Int("collisions", collisions),
		zap.Duration("elapsed", elapsed),
	)

	world, err := s.Build()
	if err != nil {
		return cli.Exit(fmt.Sprintf("error building world: %s", err), 1)
	}
	world.Logger = logger

	for _, eventType := range []feather2d.EventType{feather2d.OVERLAP_ENTER, feather2d.TRIGGER_ENTER} {
		world.Events.Subscribe(eventType, func(event feather2d.Event) {
			switch e := event.(type) {
			case feather2d.OverlapEnterEvent:
				logger.Info("overlap", zap.Any("bodyA", e.BodyA.Id), zap.Any("bodyB", e.BodyB.Id))
			case feather2d.TriggerEnterEvent:
				logger.Info("trigger", zap.Any("bodyA", e.BodyA.Id), zap.Any("bodyB", e.BodyB.Id))
			}
		})
	}
	world.Step()

	return nil
}

func main() {
	app := &cli.App{
		Name:   "demo",
		Usage:  "runs GJK overlap queries on a polygon scene",
		Flags:  flags,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
