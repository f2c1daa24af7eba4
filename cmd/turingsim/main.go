package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"turingsim/internal/caesar"
	"turingsim/internal/machine"
	"turingsim/internal/render"
	"turingsim/internal/tape"
	"turingsim/internal/trace"
	"turingsim/internal/tui"
)

// config holds the parsed CLI configuration for a demo run.
type config struct {
	plaintext string
	shift     int

	configs  bool
	noDraw   bool
	watch    bool
	delay    time.Duration
	maxSteps int
}

func parseFlags() config {
	var cfg config

	flag.BoolVar(&cfg.configs, "configs", false, "print the configuration 5-tuple after each step instead of drawing")
	flag.BoolVar(&cfg.noDraw, "no-draw", false, "disable tape drawing")
	flag.BoolVar(&cfg.watch, "watch", false, "watch the run in a live TUI")
	flag.DurationVar(&cfg.delay, "delay", 200*time.Millisecond, "pause between steps when drawing or printing configs")
	flag.IntVar(&cfg.maxSteps, "max-steps", 0, "safety cap on steps (0 = unbounded)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: turingsim [flags] <plaintext> <shift>\n\n")
		fmt.Fprintf(os.Stderr, "Runs a Caesar cipher on a Turing machine: encrypts plaintext by\n")
		fmt.Fprintf(os.Stderr, "shifting lowercase letters, then decrypts the result with the\n")
		fmt.Fprintf(os.Stderr, "mirrored transition table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "error: expected <plaintext> and <shift> arguments")
		flag.Usage()
		os.Exit(1)
	}
	cfg.plaintext = flag.Arg(0)

	shift, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: shift must be an integer: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	cfg.shift = shift

	return cfg
}

// runPass runs one machine over input with the demo presentation wiring
// and returns the tape contents at halt.
func runPass(ctx context.Context, cfg config, title, input string, table machine.Table, exporter *trace.Exporter) (string, error) {
	mc, err := caesar.NewMachine(tape.New(input), table)
	if err != nil {
		return "", fmt.Errorf("building %s machine: %w", title, err)
	}
	mc.MaxSteps = cfg.maxSteps

	var (
		result *machine.RunResult
		runErr error
	)
	if cfg.watch {
		mc.StepDelay = cfg.delay
		result, runErr = tui.Run(ctx, mc, title, nil)
	} else {
		switch {
		case cfg.configs:
			// Config printing overrides drawing.
			mc.Observer = render.NewConfigPrinter(os.Stdout)
			mc.StepDelay = cfg.delay
		case !cfg.noDraw:
			mc.Observer = render.NewDrawer(os.Stdout)
			mc.StepDelay = cfg.delay
		}
		result, runErr = mc.Run(ctx)
	}

	if runErr != nil {
		exporter.RecordError(ctx, title, runErr)
		return "", runErr
	}
	exporter.RecordRun(ctx, title, result)
	if result.Halt != machine.HaltAccept {
		return "", fmt.Errorf("%s run stopped early: %s after %d step(s)", title, result.Halt, result.Steps)
	}
	return result.Output, nil
}

func run(cfg config) error {
	ctx := context.Background()

	exporter, err := trace.NewExporter(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: tracing disabled: %v\n", err)
	}
	defer exporter.Shutdown(ctx)

	ciphertext, err := runPass(ctx, cfg, "encrypt", cfg.plaintext, caesar.EncryptTable(cfg.shift), exporter)
	if err != nil {
		return err
	}
	fmt.Println(ciphertext)

	recovered, err := runPass(ctx, cfg, "decrypt", ciphertext, caesar.DecryptTable(cfg.shift), exporter)
	if err != nil {
		return err
	}
	fmt.Println(recovered)

	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "turingsim: %v\n", err)
		os.Exit(1)
	}
}
