// Package main is the entry point for the dstweak application.
package main

import (
	"github.com/dstweak-cli/dstweak/cmd"
	"github.com/dstweak-cli/dstweak/config"
	"github.com/dstweak-cli/dstweak/internal/cache"
	"github.com/dstweak-cli/dstweak/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Expired classification cache entries are swept in the background.
	go cache.CollectGarbage()

	cmd.Execute()
}
