// Copyright 2025 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli provides the bootstrap for the version-bump binary:
// version-flag handling, standardized error reporting and exit codes.
//
// Example usage:
//
//	package main
//
//	import "github.com/alexandremahdhaoui/version-bump/internal/cli"
//
//	// Version information (set via ldflags)
//	var (
//	    Version        = "dev"
//	    CommitSHA      = "unknown"
//	    BuildTimestamp = "unknown"
//	)
//
//	func main() {
//	    cli.Bootstrap(cli.Config{
//	        Name:           "version-bump",
//	        Version:        Version,
//	        CommitSHA:      CommitSHA,
//	        BuildTimestamp: BuildTimestamp,
//	        Run:            run,
//	    })
//	}
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexandremahdhaoui/version-bump/internal/version"
)

// Config holds the bootstrap configuration for a command.
type Config struct {
	// Name is the command name used in version output.
	Name string
	// Version is set via ldflags during build.
	Version string
	// CommitSHA is set via ldflags during build.
	CommitSHA string
	// BuildTimestamp is set via ldflags during build.
	BuildTimestamp string
	// Run executes the command with the full process arguments.
	Run func(ctx context.Context, args []string) error
}

// Bootstrap runs the command and exits the process. It handles the
// `version`, `--version` and `-v` invocations itself so every binary
// reports build information the same way.
func Bootstrap(cfg Config) {
	info := version.New(cfg.Name)
	info.Version = cfg.Version
	info.CommitSHA = cfg.CommitSHA
	info.BuildTimestamp = cfg.BuildTimestamp

	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			info.Print()
			os.Exit(0)
		}
	}

	if err := cfg.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
