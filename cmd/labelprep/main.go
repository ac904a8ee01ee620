// Command labelprep reshapes labeled CSV datasets before training: it
// balances and reduces classes, shuffles, and writes train/test or k-fold
// partitions.
//
// Example:
//
//	labelprep balance data.csv balanced.csv --labels 3
//	labelprep split balanced.csv train.csv test.csv --test-rate 0.25 --shuffle
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	root := newRootCmd(afero.NewOsFs())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
