package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/coffee-fueled-dev/statespace/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	if err := runner.Run(cliOpts); err != nil {
		gologger.Fatal().Msgf("run failed: %v", err)
	}
}
