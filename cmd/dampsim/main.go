// Command dampsim runs a critically damped chase simulation: a follower
// smooth-damps toward a target while its heading rotates toward the
// remaining offset. Useful for tuning smooth_time / max_speed values
// before wiring them into camera or AI code.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lodestar3d/lodestar/internal/config"
	"github.com/lodestar3d/lodestar/internal/logger"
	"github.com/lodestar3d/lodestar/pkg/math"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default ./dampsim.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dampsim:", err)
		os.Exit(1)
	}

	opts := logger.DefaultOptions()
	opts.Level = cfg.Logging.Level
	opts.File = cfg.Logging.File
	if err := logger.Init(opts); err != nil {
		fmt.Fprintln(os.Stderr, "dampsim:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	run(cfg)
}

func run(cfg *config.Config) {
	sim := cfg.Sim
	pos := math.Vector3FromArray(sim.Start[:])
	target := math.Vector3FromArray(sim.Target[:])
	velocity := math.Zero()
	heading := math.Forward()

	dt := sim.TimeStep
	math.SetFrameDelta(dt)
	maxTurn := sim.TurnRateDeg * math.Deg2Rad * dt

	logger.Log.Info("chase start",
		zap.Stringer("start", pos),
		zap.Stringer("target", target),
		zap.Float32("smooth_time", sim.SmoothTime),
		zap.Float32("max_speed", sim.MaxSpeed),
	)

	for frame := 0; frame < sim.Frames; frame++ {
		pos, velocity = math.SmoothDamp(pos, target, velocity, sim.SmoothTime, sim.MaxSpeed, dt)

		toTarget := target.Sub(pos)
		heading = math.RotateTowards(heading, toTarget, maxTurn, 0)

		if frame%sim.TraceEvery == 0 {
			logger.Log.Info("chase",
				zap.Int("frame", frame),
				zap.Stringer("pos", pos),
				zap.Float32("speed", velocity.Magnitude()),
				zap.Float32("dist", toTarget.Magnitude()),
				zap.Float32("heading_err_deg", math.Angle(heading, toTarget)),
			)
		}

		if pos.Equals(target) && velocity.SqrMagnitude() < 1e-8 {
			logger.Log.Info("chase arrived",
				zap.Int("frame", frame),
				zap.Float32("time_s", float32(frame)*dt),
			)
			return
		}
	}

	logger.Log.Info("chase ended",
		zap.Stringer("pos", pos),
		zap.Float32("dist", math.Distance(pos, target)),
	)
}
