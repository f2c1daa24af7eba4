package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"turingsim/internal/machine"
	"turingsim/internal/render"
	"turingsim/internal/tape"
	"turingsim/internal/trace"
	"turingsim/internal/tui"
)

// config holds the parsed CLI configuration for a tmrun invocation.
type config struct {
	machineFile string
	input       string

	blankTape    int
	configs      bool
	draw         bool
	watch        bool
	haltOnReject bool
	delay        time.Duration
	maxSteps     int
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.machineFile, "machine", "", "path to a JSON machine definition (required)")
	flag.IntVar(&cfg.blankTape, "blank-tape", 0, "start on a blank tape of this size instead of an input string")
	flag.BoolVar(&cfg.configs, "configs", false, "print the configuration 5-tuple after each step instead of drawing")
	flag.BoolVar(&cfg.draw, "draw", false, "draw the tape after each step")
	flag.BoolVar(&cfg.watch, "watch", false, "watch the run in a live TUI")
	flag.BoolVar(&cfg.haltOnReject, "halt-on-reject", false, "also halt when a rejecting state is entered")
	flag.DurationVar(&cfg.delay, "delay", 0, "pause between steps")
	flag.IntVar(&cfg.maxSteps, "max-steps", 0, "safety cap on steps (0 = unbounded)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tmrun -machine def.json [flags] [input]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a Turing machine loaded from a JSON definition file against\n")
		fmt.Fprintf(os.Stderr, "an input string (or a blank tape) and prints the final tape.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if cfg.machineFile == "" {
		fmt.Fprintln(os.Stderr, "error: -machine is required")
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "error: at most one input argument")
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() == 1 {
		cfg.input = flag.Arg(0)
	}
	if cfg.input == "" && cfg.blankTape == 0 {
		fmt.Fprintln(os.Stderr, "error: provide an input string or -blank-tape")
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

func run(cfg config) error {
	ctx := context.Background()

	def, err := machine.LoadDefinition(cfg.machineFile)
	if err != nil {
		return err
	}

	var t *tape.Tape
	if cfg.input != "" {
		t = tape.New(cfg.input)
	} else {
		t = tape.NewBlank(cfg.blankTape)
	}

	mc, err := def.NewMachine(t)
	if err != nil {
		return err
	}
	mc.MaxSteps = cfg.maxSteps
	mc.HaltOnReject = cfg.haltOnReject

	exporter, err := trace.NewExporter(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: tracing disabled: %v\n", err)
	}
	defer exporter.Shutdown(ctx)

	title := def.Name
	if title == "" {
		title = cfg.machineFile
	}

	var result *machine.RunResult
	if cfg.watch {
		mc.StepDelay = cfg.delay
		result, err = tui.Run(ctx, mc, title, nil)
	} else {
		switch {
		case cfg.configs:
			mc.Observer = render.NewConfigPrinter(os.Stdout)
			mc.StepDelay = cfg.delay
		case cfg.draw:
			mc.Observer = render.NewDrawer(os.Stdout)
			mc.StepDelay = cfg.delay
		}
		result, err = mc.Run(ctx)
	}

	if err != nil {
		exporter.RecordError(ctx, title, err)
		return err
	}
	exporter.RecordRun(ctx, title, result)

	fmt.Println(result.Output)
	if result.Halt != machine.HaltAccept {
		return fmt.Errorf("run stopped without accepting: %s after %d step(s)", result.Halt, result.Steps)
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tmrun: %v\n", err)
		os.Exit(1)
	}
}
