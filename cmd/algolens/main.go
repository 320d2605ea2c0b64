// Command algolens is the terminal front-end of the trace engine:
// interactive playback by default, JSON and plain-text trace dumps for
// scripting.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/dataset"
	"github.com/algolens/algolens/internal/config"
	"github.com/algolens/algolens/internal/tui"
)

// Version is stamped here until release tooling overrides it.
const Version = "0.1.0"

// defaultArray keeps first runs interesting without flags: unsorted,
// small enough to read, with one early-exit trap for bubble sort.
const defaultArray = "23, 1, 10, 5, 2, 7, 15"

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: algolens [options]\n\n")
		fmt.Fprintf(os.Stderr, "algolens replays sorting and searching algorithms step by step.\n")
		fmt.Fprintf(os.Stderr, "Every step carries full before/after snapshots, highlights and metrics.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  algolens                                  # TUI, bubble sort on the sample array\n")
		fmt.Fprintf(os.Stderr, "  algolens -a \"5,3,8,1\" -A quick            # TUI, quick sort on your array\n")
		fmt.Fprintf(os.Stderr, "  algolens -A binary -t 7 -a \"1,3,5,7,9\"    # TUI, binary search for 7\n")
		fmt.Fprintf(os.Stderr, "  algolens -c bubble,selection              # side-by-side comparison\n")
		fmt.Fprintf(os.Stderr, "  algolens -A merge --json                  # dump the trace as JSON\n")
		fmt.Fprintf(os.Stderr, "  algolens -A heap --trace                  # plain-text step listing\n")
	}

	arrayFlag := pflag.StringP("array", "a", defaultArray, "Comma-separated input values")
	algoFlag := pflag.StringP("algorithm", "A", "bubble", "Algorithm to replay (bubble, selection, insertion, merge, quick, heap, linear, binary, jump, interpolation)")
	targetFlag := pflag.StringP("target", "t", "", "Search target (defaults to the first array element)")
	compareFlag := pflag.StringP("compare", "c", "", "Two sorting algorithms to race, e.g. bubble,selection")
	intervalFlag := pflag.DurationP("interval", "i", 0, "Playback tick interval (overrides config)")
	configFlag := pflag.String("config", "", "Path to a YAML config file")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the trace as indented JSON and exit")
	traceFlag := pflag.BoolP("trace", "T", false, "Print the trace as a plain-text step listing and exit")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("algolens version %s\n", Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fail(err)
	}
	if *intervalFlag > 0 {
		cfg.Playback.Interval = config.Duration(*intervalFlag)
		cfg.Playback.CompareInterval = config.Duration(*intervalFlag)
		cfg.ApplyDefaults() // re-floor the overridden intervals
	}

	values, err := dataset.ParseList(*arrayFlag)
	if err != nil {
		fail(fmt.Errorf("--array: %w", err))
	}
	target := dataset.ParseTarget(*targetFlag, values)

	algo, err := core.ParseAlgorithm(*algoFlag)
	if err != nil {
		fail(fmt.Errorf("--algorithm: %w", err))
	}

	var compareA, compareB core.Algorithm
	if *compareFlag != "" {
		compareA, compareB, err = parseComparePair(*compareFlag)
		if err != nil {
			fail(err)
		}
	}

	if *jsonFlag {
		runJSONMode(algo, values, target)
		return
	}
	if *traceFlag {
		runTraceMode(algo, values, target)
		return
	}

	runTUIMode(tui.Params{
		Cfg:       cfg,
		Values:    values,
		Algorithm: algo,
		Target:    target,
		CompareA:  compareA,
		CompareB:  compareB,
	})
}

// parseComparePair resolves "--compare bubble,selection" into two
// distinct sorting algorithms.
func parseComparePair(raw string) (core.Algorithm, core.Algorithm, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("--compare: want two algorithms separated by a comma, got %q", raw)
	}
	a, err := core.ParseAlgorithm(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", "", fmt.Errorf("--compare: %w", err)
	}
	b, err := core.ParseAlgorithm(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", fmt.Errorf("--compare: %w", err)
	}
	if a.IsSearch() || b.IsSearch() {
		return "", "", fmt.Errorf("--compare: only sorting algorithms can race, got %q", raw)
	}

	return a, b, nil
}

func buildTrace(algo core.Algorithm, values []int, target int) core.Trace {
	trace, err := tui.BuildTrace(algo, values, target)
	if err != nil {
		fail(err)
	}

	return trace
}

// runJSONMode dumps the full trace: every step with both snapshots,
// highlights, pointers, arrows and metrics.
func runJSONMode(algo core.Algorithm, values []int, target int) {
	trace := buildTrace(algo, values, target)
	out, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

// runTraceMode prints a human-readable one-step-per-block listing.
func runTraceMode(algo core.Algorithm, values []int, target int) {
	trace := buildTrace(algo, values, target)
	fmt.Printf("%s — %d steps\n\n", algo.Title(), len(trace))
	for i, step := range trace {
		fmt.Printf("%3d  %-18s %v\n", i, step.Label, step.After)
		if step.Explanation != "" {
			fmt.Printf("     %s\n", step.Explanation)
		}
		fmt.Printf("     comparisons=%d swaps=%d passes=%d\n\n",
			step.Metrics.Comparisons, step.Metrics.Swaps, step.Metrics.Passes)
	}
}

func runTUIMode(p tui.Params) {
	prog := tea.NewProgram(tui.NewModel(p), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
