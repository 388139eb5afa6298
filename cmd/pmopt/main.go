// Command pmopt runs the NSGA-II preventive-maintenance scheduler against
// an example System topology and prints the resulting Pareto front.
package main

import (
	"fmt"
	"os"

	"github.com/mikiurbi/net-flow-opt/cmd/pmopt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
