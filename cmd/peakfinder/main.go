// Command peakfinder prints the threshold-bounded peaks of a three-axis
// sensor recording.
//
// Usage:
//
//	peakfinder detect --csv pullups.csv --threshold 0.5
//	peakfinder detect --csv pullups.csv --sigmas 1.5 --channels x,magnitude --format json
//	peakfinder plot --csv pullups.csv --channel z --png z.png
//	peakfinder version
package main

import "github.com/cwbudde/algo-peaks/internal/cli"

func main() {
	cli.Execute()
}
