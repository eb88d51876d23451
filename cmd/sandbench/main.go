// Command sandbench runs the simulation headless and reports per-tick cost
// against the 16 ms frame budget.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"

	"sandfall/internal/scene"
	"sandfall/internal/sim"
)

// frameBudget is the per-tick ceiling implied by 60 frames per second with
// headroom for rendering.
const frameBudget = 16 * time.Millisecond

type benchOptions struct {
	width  int
	height int
	ticks  int
	seed   int64
	scene  string
	faucet bool
	debug  bool
}

func main() {
	o := initOptions()

	logger := buildLogger(o.debug)
	defer logger.Sync()

	u := sim.New(o.width, o.height, o.seed)
	if err := scene.Apply(o.scene, u, o.seed); err != nil {
		logger.Fatal("unknown scene", zap.String("scene", o.scene))
	}
	logger.Info("benchmark starting",
		zap.Int("width", o.width),
		zap.Int("height", o.height),
		zap.Int("ticks", o.ticks),
		zap.String("scene", o.scene),
		zap.Bool("faucet", o.faucet))

	var worst time.Duration
	start := time.Now()
	for i := 0; i < o.ticks; i++ {
		if o.faucet {
			// A steady pour keeps chunks dirty, the worst realistic case.
			u.SetCell(o.width/2, 0, uint8(sim.Sand))
			u.SetCell(o.width/4, 0, uint8(sim.Water))
		}
		tickStart := time.Now()
		u.Tick()
		if d := time.Since(tickStart); d > worst {
			worst = d
		}
	}
	total := time.Since(start)

	avg := total / time.Duration(o.ticks)
	tps := float64(o.ticks) / total.Seconds()

	fmt.Println()
	fmt.Printf("  %s: %v over %d ticks\n", aurora.Green("total"), total.Round(time.Millisecond), o.ticks)
	fmt.Printf("  %s: %v\n", aurora.Green("avg tick"), avg.Round(time.Microsecond))
	fmt.Printf("  %s: %v\n", aurora.Green("worst tick"), worst.Round(time.Microsecond))
	fmt.Printf("  %s: %.0f\n", aurora.Green("ticks/sec"), tps)
	if worst <= frameBudget {
		fmt.Printf("  %s\n", aurora.Green("within frame budget").Bold())
	} else {
		fmt.Printf("  %s (budget %v)\n", aurora.Red("over frame budget").Bold(), frameBudget)
		os.Exit(1)
	}
}

func initOptions() *benchOptions {
	o := &benchOptions{
		width:  256,
		height: 256,
		ticks:  1000,
		seed:   1337,
		scene:  "dunes",
	}
	flaggy.SetName("sandbench")
	flaggy.SetDescription("headless tick-rate benchmark for the sandfall core")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.width, "x", "width", "Grid width in cells")
	flaggy.Int(&o.height, "y", "height", "Grid height in cells")
	flaggy.Int(&o.ticks, "t", "ticks", "Number of ticks to run")
	flaggy.Int64(&o.seed, "s", "seed", "Seed for the simulation's random source")
	flaggy.String(&o.scene, "c", "scene", "Starting scene preset")
	flaggy.Bool(&o.faucet, "f", "faucet", "Pour sand and water every tick")
	flaggy.Bool(&o.debug, "d", "debug", "Verbose logging")
	flaggy.Parse()

	if o.ticks <= 0 {
		flaggy.ShowHelpAndExit("ticks must be positive")
	}
	return o
}

func buildLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	return logger
}
