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

// version-bump reads and mutates the semantic version stored in a YAML
// package manifest. Each invocation applies at most one mutation (bump) or
// prints one version component (read); the rest of the manifest passes
// through unmodified.
package main

import (
	"context"
	"errors"

	"github.com/caarlos0/env/v11"

	"github.com/alexandremahdhaoui/version-bump/internal/cli"
	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
)

const (
	Name = "version-bump"

	defaultManifestPath = "manifest.yaml"
	defaultVersionKey   = "version"
)

// Version information (set via ldflags during build)
var (
	Version        = "dev"
	CommitSHA      = "unknown"
	BuildTimestamp = "unknown"
)

// ----------------------------------------------------- ENVS ------------------------------------------------------- //

// Envs holds the environment variables read by the version-bump tool.
// They provide defaults only; command-line flags take precedence.
type Envs struct {
	// ManifestPath overrides the default manifest path.
	ManifestPath string `env:"VERSION_BUMP_MANIFEST_PATH"`
	// VersionKey overrides the default version key path.
	VersionKey string `env:"VERSION_BUMP_VERSION_KEY"`
}

var errReadingEnvVars = errors.New("reading environment variables")

// readEnvs reads the environment variables read by the version-bump tool.
func readEnvs() (Envs, error) {
	out := Envs{} //nolint:exhaustruct // unmarshal

	if err := env.Parse(&out); err != nil {
		return Envs{}, flaterrors.Join(err, errReadingEnvVars)
	}

	return out, nil
}

// ----------------------------------------------------- MAIN ------------------------------------------------------- //

func main() {
	cli.Bootstrap(cli.Config{
		Name:           Name,
		Version:        Version,
		CommitSHA:      CommitSHA,
		BuildTimestamp: BuildTimestamp,
		Run:            run,
	})
}

func run(ctx context.Context, args []string) error {
	envs, err := readEnvs()
	if err != nil {
		return err
	}

	return newRootCmd(envs).Run(ctx, args)
}
