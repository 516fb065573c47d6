// Command lagwin prints properties of the lag windows used for
// time-correlation tapering.
//
// Usage:
//
//	lagwin [flags] [window-name ...]
//
// Without arguments it prints info for all known window kinds.
//
// Examples:
//
//	lagwin hann welch
//	lagwin -size 2048 exponential
//	lagwin -size 2048 -decay 8 exponential
//	lagwin -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vibspec/vib/window"
)

func main() {
	size := flag.Int("size", 1024, "lag window length in samples")
	decay := flag.Float64("decay", window.DefaultDecay, "decay constant for the exponential window")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lagwin [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of TCF lag windows.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, k := range window.Kinds() {
			fmt.Println(k)
		}

		return
	}

	kinds, err := resolveKinds(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printAnalysis(kinds, *size, *decay)
}

func resolveKinds(names []string) ([]window.Kind, error) {
	if len(names) == 0 {
		return window.Kinds(), nil
	}

	kinds := make([]window.Kind, 0, len(names))

	for _, name := range names {
		k, err := window.Parse(name)
		if err != nil {
			return nil, err
		}

		kinds = append(kinds, k)
	}

	return kinds, nil
}

func printAnalysis(kinds []window.Kind, size int, decay float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tHalf Point\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t----------\n")

	for _, k := range kinds {
		coeffs, err := window.Lag(k, size, window.WithDecay(decay))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		a := window.Analyze(coeffs)

		label := k.String()
		if k == window.Exponential {
			label = fmt.Sprintf("%s (decay=%.2f)", label, decay)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\n",
			label, size, a.CoherentGain, a.ENBW, a.HalfPoint)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
