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
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
	"github.com/alexandremahdhaoui/version-bump/pkg/semverutil"
)

// ----------------------------------------------------- READ ------------------------------------------------------- //

func readCmd() *cli.Command {
	return &cli.Command{
		Name:  "read",
		Usage: "Print one component of the manifest version",
		Description: `Prints the selected component followed by a newline.
A version without a pre-release or build component prints an empty line for
--pre and --build respectively.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "version",
				Usage: "Print the VERSION set in the given manifest.",
			},
			&cli.BoolFlag{
				Name:  "major",
				Usage: "Print the MAJOR version of this package.",
			},
			&cli.BoolFlag{
				Name:  "minor",
				Usage: "Print the MINOR version of this package.",
			},
			&cli.BoolFlag{
				Name:  "patch",
				Usage: "Print the PATCH version of this package.",
			},
			&cli.BoolFlag{
				Name:  "pre",
				Usage: "Print the PRE-RELEASE version of this package.",
			},
			&cli.BoolFlag{
				Name:  "build",
				Usage: "Print the BUILD metadata of this package.",
			},
		},
		Action: runRead,
	}
}

var errReadingVersion = errors.New("reading manifest version")

// runRead prints the selected component of the manifest version to stdout
// with a trailing newline and no other decoration.
func runRead(_ context.Context, cmd *cli.Command) error {
	component, err := selectedComponent(cmd)
	if err != nil {
		return flaterrors.Join(err, errReadingVersion)
	}

	_, version, err := loadVersion(cmd, cmd.String("manifest-path"))
	if err != nil {
		return flaterrors.Join(err, errReadingVersion)
	}

	var value string

	switch component {
	case "version":
		value = semverutil.Format(version)
	case "major":
		value = strconv.FormatUint(version.Major(), 10)
	case "minor":
		value = strconv.FormatUint(version.Minor(), 10)
	case "patch":
		value = strconv.FormatUint(version.Patch(), 10)
	case "pre":
		value = version.Prerelease()
	case "build":
		value = version.Metadata()
	default:
		return flaterrors.Join(fmt.Errorf("unknown component %q", component), errReadingVersion)
	}

	_, _ = fmt.Fprintln(cmd.Root().Writer, value)

	return nil
}
