// Command blitz scaffolds React Native projects. It exits 1 on usage,
// configuration, or external command failures.
package main

import (
	"os"

	"github.com/earlbalai/rn-blitz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
