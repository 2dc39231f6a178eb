package peaks_test

import (
	"fmt"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
)

func ExampleDetect() {
	signal := []float64{0, 0, 5, 0, 0.5, 0, 3, 4, 0, 0.5}
	for _, r := range peaks.Detect(signal, 1) {
		fmt.Println(r)
	}
	// Output:
	// { (1, 0), (2, 5), (3, 0), 5 }
	// { (5, 0), (7, 4), (8, 0), 7 }
}

func ExampleTrapezoidArea() {
	signal := peaks.Samples{0, 1, 2, 1, 0}
	fmt.Printf("%.1f\n", peaks.TrapezoidArea(signal, 0, 4))
	// Output:
	// 4.0
}

func ExampleStdDev() {
	level, err := peaks.StdDev{Sigmas: 1}.Level([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f\n", level)
	// Output:
	// 7.0
}
