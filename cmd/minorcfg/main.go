// Package main provides minorcfg, which builds Minor-style CPU
// configurations and prints their execute-stage functional-unit pools.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/minorfu/timing/core"
	"github.com/sarchlab/minorfu/timing/fu"
	"github.com/sarchlab/minorfu/timing/latency"
)

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	fpuOpLat    int
	fpuIssueLat int
	configPath  string
	cores       int
	freqGHz     float64
	asJSON      bool
	strict      bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("minorcfg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&f.fpuOpLat, "fpu-operation-latency", 0,
		"FloatSIMD operation latency in cycles (0 keeps the default)")
	fs.IntVar(&f.fpuIssueLat, "fpu-issue-latency", 0,
		"FloatSIMD issue latency in cycles (0 keeps the default)")
	fs.StringVar(&f.configPath, "config", "",
		"Path to a YAML or JSON options file")
	fs.IntVar(&f.cores, "cores", 1, "Number of CPU cores to build")
	fs.Float64Var(&f.freqGHz, "freq-ghz", 1, "Core frequency in GHz")
	fs.BoolVar(&f.asJSON, "json", false, "Print pools as JSON")
	fs.BoolVar(&f.strict, "strict", false,
		"Fail on latencies the pipeline would reject")
	fs.BoolVar(&f.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.cores < 1 {
		return nil, fmt.Errorf("cores must be >= 1, got %d", f.cores)
	}

	return f, nil
}

// loadOptions combines the options file with the flag values. Flags win
// when set.
func loadOptions(f *cliFlags) (*latency.Options, error) {
	var opts *latency.Options
	if f.configPath != "" {
		var err error
		opts, err = latency.LoadOptions(f.configPath)
		if err != nil {
			return nil, err
		}
	}

	return opts.Merge(&latency.Options{
		FPUOperationLatency: f.fpuOpLat,
		FPUIssueLatency:     f.fpuIssueLat,
	}), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr,
		&slog.HandlerOptions{Level: level})))

	opts, err := loadOptions(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading options: %v\n", err)
		return 1
	}

	cpus := core.MakeBuilder().
		WithFreq(sim.Freq(f.freqGHz) * sim.GHz).
		WithOptions(opts).
		BuildCores("CPU", f.cores)

	if f.strict {
		for _, cpu := range cpus {
			if err := cpu.ExecuteFuncUnits.Validate(); err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", cpu.Name(), err)
				return 1
			}
		}
	}

	if f.asJSON {
		if err := writeJSON(stdout, cpus); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	for _, cpu := range cpus {
		writeTable(stdout, cpu)
	}

	return 0
}

type cpuReport struct {
	Name      string          `json:"name"`
	FreqHz    float64         `json:"freq_hz"`
	FuncUnits []fu.Descriptor `json:"func_units"`
}

func writeJSON(w io.Writer, cpus []*core.CPU) error {
	reports := make([]cpuReport, 0, len(cpus))
	for _, cpu := range cpus {
		reports = append(reports, cpuReport{
			Name:      cpu.Name(),
			FreqHz:    float64(cpu.Freq),
			FuncUnits: cpu.ExecuteFuncUnits.Units(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode pools: %w", err)
	}

	return nil
}

func writeTable(w io.Writer, cpu *core.CPU) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(cpu.Name() + " execute units")
	t.AppendHeader(table.Row{"#", "Kind", "Base", "OpLat", "IssueLat", "OpClasses"})
	for i, u := range cpu.ExecuteFuncUnits.Units() {
		t.AppendRow(table.Row{i, u.Kind, u.Name, u.OpLat, u.IssueLat, len(u.OpClasses)})
	}
	t.Render()
}
