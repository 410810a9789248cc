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
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/urfave/cli/v3"

	"github.com/alexandremahdhaoui/version-bump/internal/manifest"
	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
	"github.com/alexandremahdhaoui/version-bump/pkg/semverutil"
)

// ----------------------------------------------------- BUMP ------------------------------------------------------- //

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:  "bump",
		Usage: "Apply exactly one mutation to the manifest version",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "version",
				Usage: "Set VERSION.",
			},
			&cli.BoolFlag{
				Name:  "major",
				Usage: "Bump the MAJOR version.",
			},
			&cli.BoolFlag{
				Name:  "minor",
				Usage: "Bump the MINOR version.",
			},
			&cli.BoolFlag{
				Name:  "patch",
				Usage: "Bump the PATCH version.",
			},
			&cli.StringFlag{
				Name:  "pre",
				Usage: "Set the PRE-RELEASE version.",
			},
			&cli.StringFlag{
				Name:  "build",
				Usage: "Set the BUILD metadata.",
			},
			&cli.BoolFlag{
				Name:  "dry",
				Usage: "Print the resulting version without writing the manifest.",
			},
		},
		Action: runBump,
	}
}

var errBumpingVersion = errors.New("bumping manifest version")

// runBump loads the manifest, applies the selected mutation to its version
// field and writes the document back.
func runBump(_ context.Context, cmd *cli.Command) error {
	// I. Validate the invocation before touching any file.
	component, err := selectedComponent(cmd)
	if err != nil {
		return flaterrors.Join(err, errBumpingVersion)
	}

	// II. Load the manifest and parse its current version.
	manifestPath := cmd.String("manifest-path")

	doc, current, err := loadVersion(cmd, manifestPath)
	if err != nil {
		return flaterrors.Join(err, errBumpingVersion)
	}

	// III. Apply the single mutation.
	next, err := mutate(cmd, component, current)
	if err != nil {
		return flaterrors.Join(err, errBumpingVersion)
	}

	formatted := semverutil.Format(next)

	if cmd.Bool("dry") {
		_, _ = fmt.Fprintln(cmd.Root().Writer, formatted)

		return nil
	}

	// IV. Write the updated document back.
	if err := doc.SetVersion(cmd.String("version-key"), formatted); err != nil {
		return flaterrors.Join(err, errBumpingVersion)
	}

	if err := doc.Save(manifestPath); err != nil {
		return flaterrors.Join(err, errBumpingVersion)
	}

	return nil
}

// mutate applies the mutation selected by component to current.
func mutate(cmd *cli.Command, component string, current *semver.Version) (*semver.Version, error) {
	switch component {
	case "major":
		return semverutil.BumpMajor(current), nil
	case "minor":
		return semverutil.BumpMinor(current), nil
	case "patch":
		return semverutil.BumpPatch(current), nil
	case "pre":
		return semverutil.SetPrerelease(current, cmd.String("pre"))
	case "build":
		return semverutil.SetBuild(current, cmd.String("build"))
	case "version":
		return semverutil.Parse(cmd.String("version"))
	default:
		return nil, fmt.Errorf("unknown component %q", component)
	}
}

// loadVersion loads the manifest and parses the version stored at the
// configured key path.
func loadVersion(cmd *cli.Command, manifestPath string) (*manifest.Document, *semver.Version, error) {
	doc, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	text, err := doc.Version(cmd.String("version-key"))
	if err != nil {
		return nil, nil, err
	}

	version, err := semverutil.Parse(text)
	if err != nil {
		return nil, nil, flaterrors.Join(
			fmt.Errorf("manifest %s holds an invalid version %q", manifestPath, text),
			err,
		)
	}

	return doc, version, nil
}
