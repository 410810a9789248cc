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

// Package semverutil implements the version-mutation policy on top of
// github.com/Masterminds/semver/v3.
//
// All operations are pure: they take a version value and return a new one.
// Bumping major, minor or patch clears the pre-release and build metadata,
// since a bumped release supersedes any tagged pre-release. Note that this
// differs from Masterminds' own Inc* methods, where incrementing the patch
// of a pre-release version only drops the pre-release tag.
package semverutil

import (
	"errors"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
)

var (
	// ErrMalformedVersion is returned when a string does not conform to the
	// strict MAJOR.MINOR.PATCH[-PRE][+BUILD] grammar.
	ErrMalformedVersion = errors.New("malformed semantic version")
	// ErrMalformedPrerelease is returned when a pre-release label contains
	// an empty or invalid identifier.
	ErrMalformedPrerelease = errors.New("malformed pre-release label")
	// ErrMalformedBuild is returned when a build-metadata label contains an
	// empty or invalid identifier.
	ErrMalformedBuild = errors.New("malformed build metadata")
)

// Parse parses text into a semantic version. Partial versions such as "1.2"
// and "v"-prefixed strings are rejected.
func Parse(text string) (*semver.Version, error) {
	version, err := semver.StrictNewVersion(text)
	if err != nil {
		return nil, flaterrors.Join(err, ErrMalformedVersion)
	}

	// Empty identifiers ("1.2.3-rc..1") are not caught by every semver
	// parser revision, so enforce the grammar here as well.
	for _, label := range []string{version.Prerelease(), version.Metadata()} {
		if label == "" {
			continue
		}
		if err := validateIdentifiers(label); err != nil {
			return nil, flaterrors.Join(err, ErrMalformedVersion)
		}
	}

	return version, nil
}

// BumpMajor increments the major version, resets minor and patch to 0 and
// clears the pre-release and build metadata.
func BumpMajor(v *semver.Version) *semver.Version {
	return semver.New(v.Major()+1, 0, 0, "", "")
}

// BumpMinor increments the minor version, resets patch to 0 and clears the
// pre-release and build metadata.
func BumpMinor(v *semver.Version) *semver.Version {
	return semver.New(v.Major(), v.Minor()+1, 0, "", "")
}

// BumpPatch increments the patch version and clears the pre-release and
// build metadata. The patch is incremented even when a pre-release is set:
// bumping 1.2.3-rc.1 yields 1.2.4.
func BumpPatch(v *semver.Version) *semver.Version {
	return semver.New(v.Major(), v.Minor(), v.Patch()+1, "", "")
}

// SetPrerelease replaces the pre-release label with pre, leaving the
// numeric core and the build metadata untouched. The label must be a
// non-empty dot-separated sequence of alphanumeric identifiers; numeric
// identifiers must not have leading zeros.
func SetPrerelease(v *semver.Version, pre string) (*semver.Version, error) {
	if err := validateIdentifiers(pre); err != nil {
		return nil, flaterrors.Join(err, ErrMalformedPrerelease)
	}

	out, err := v.SetPrerelease(pre)
	if err != nil {
		return nil, flaterrors.Join(err, ErrMalformedPrerelease)
	}

	return &out, nil
}

// SetBuild replaces the build metadata with build, leaving the numeric core
// and the pre-release label untouched. The label must be a non-empty
// dot-separated sequence of alphanumeric identifiers.
func SetBuild(v *semver.Version, build string) (*semver.Version, error) {
	if err := validateIdentifiers(build); err != nil {
		return nil, flaterrors.Join(err, ErrMalformedBuild)
	}

	out, err := v.SetMetadata(build)
	if err != nil {
		return nil, flaterrors.Join(err, ErrMalformedBuild)
	}

	return &out, nil
}

// Format returns the canonical serialization of v:
// MAJOR.MINOR.PATCH, plus -PRE if present, plus +BUILD if present.
func Format(v *semver.Version) string {
	return v.String()
}

var errEmptyIdentifier = errors.New("identifiers must be non-empty")

// validateIdentifiers rejects labels with empty identifiers ("", "rc..1",
// "rc.1."). Character-level validation is left to Masterminds, which
// enforces the semver charset and the numeric leading-zero rule.
func validateIdentifiers(label string) error {
	for _, identifier := range strings.Split(label, ".") {
		if identifier == "" {
			return errEmptyIdentifier
		}
	}

	return nil
}
