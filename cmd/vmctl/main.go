// Package main is the entry point for the vmctl CLI.
//
// vmctl is an interactive wizard for deploying virtual server instances on a
// Kubernetes-shaped orchestration API. It collects compute, storage, user
// and network parameters, assembles a VirtualServer descriptor, estimates
// its hourly cost and submits it for creation. Descriptors can be saved as
// named templates and re-instantiated later.
//
// Commands: new, template, completion, version.
package main

import (
	"fmt"
	"os"

	"github.com/imamik/vmctl/cmd/vmctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
