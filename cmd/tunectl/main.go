// cmd/tunectl/main.go
package main

import (
	"os"

	"github.com/tamzrod/drivecfg/cmd/tunectl/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
