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

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
)

// ----------------------------------------------------- ROOT COMMAND ----------------------------------------------- //

// newRootCmd builds the command tree. Env vars provide defaults for the
// global flags; values given on the command line win.
func newRootCmd(envs Envs) *cli.Command {
	manifestPath := envs.ManifestPath
	if manifestPath == "" {
		manifestPath = defaultManifestPath
	}

	versionKey := envs.VersionKey
	if versionKey == "" {
		versionKey = defaultVersionKey
	}

	return &cli.Command{
		Name:  Name,
		Usage: "Read and bump the semantic version stored in a YAML manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "manifest-path",
				Usage: "Path to the manifest file.",
				Value: manifestPath,
			},
			&cli.StringFlag{
				Name:  "version-key",
				Usage: "Dotted key path of the version field (e.g. \"version\" or \"package.version\").",
				Value: versionKey,
			},
		},
		Commands: []*cli.Command{
			bumpCmd(),
			readCmd(),
		},
	}
}

// ----------------------------------------------------- COMPONENT SELECTION ---------------------------------------- //

// componentFlags are the mutually exclusive flags shared by bump and read.
var componentFlags = []string{"version", "major", "minor", "patch", "pre", "build"}

var errInvalidInvocation = errors.New("invalid invocation")

// selectedComponent returns the single component flag set on cmd. Zero or
// more than one selected flag is an invalid invocation; for bump this is
// checked before the manifest is touched.
func selectedComponent(cmd *cli.Command) (string, error) {
	selected := make([]string, 0, 1)

	for _, name := range componentFlags {
		if cmd.IsSet(name) {
			selected = append(selected, name)
		}
	}

	if len(selected) != 1 {
		return "", flaterrors.Join(
			fmt.Errorf(
				"exactly one of --version, --major, --minor, --patch, --pre or --build is required, got %d",
				len(selected),
			),
			errInvalidInvocation,
		)
	}

	return selected[0], nil
}
