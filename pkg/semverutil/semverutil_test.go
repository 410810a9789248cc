//go:build unit

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

package semverutil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandremahdhaoui/version-bump/pkg/semverutil"
)

func TestParseRoundTrip(t *testing.T) {
	for _, text := range []string{
		"0.0.0",
		"1.2.3",
		"1.2.3-rc.1",
		"1.2.3+build.5",
		"1.2.3-rc.1+build.5",
		"10.20.30-alpha.0.x-y",
	} {
		t.Run(text, func(t *testing.T) {
			version, err := semverutil.Parse(text)
			require.NoError(t, err)
			assert.Equal(t, text, semverutil.Format(version))
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"1",
		"1.2",
		"v1.2.3",
		"1.2.3.4",
		"1.2.x",
		"01.2.3",
		"1.2.3-rc..1",
		"not-a-version",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := semverutil.Parse(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, semverutil.ErrMalformedVersion)
		})
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		name    string
		version string
		bump    string
		want    string
	}{
		{name: "major_resets_and_clears", version: "1.2.3-rc.1+build", bump: "major", want: "2.0.0"},
		{name: "major_plain", version: "1.2.3", bump: "major", want: "2.0.0"},
		{name: "minor_resets_patch", version: "1.2.3", bump: "minor", want: "1.3.0"},
		{name: "minor_clears_labels", version: "1.2.3-rc.1+build", bump: "minor", want: "1.3.0"},
		{name: "patch", version: "1.2.3", bump: "patch", want: "1.2.4"},
		{name: "patch_increments_despite_prerelease", version: "1.2.3-rc.1", bump: "patch", want: "1.2.4"},
		{name: "patch_clears_build", version: "1.2.3+build", bump: "patch", want: "1.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, err := semverutil.Parse(tt.version)
			require.NoError(t, err)

			switch tt.bump {
			case "major":
				version = semverutil.BumpMajor(version)
			case "minor":
				version = semverutil.BumpMinor(version)
			case "patch":
				version = semverutil.BumpPatch(version)
			default:
				t.Fatalf("unknown bump %q", tt.bump)
			}

			assert.Equal(t, tt.want, semverutil.Format(version))
		})
	}
}

func TestSetPrerelease(t *testing.T) {
	version, err := semverutil.Parse("1.2.3")
	require.NoError(t, err)

	version, err = semverutil.SetPrerelease(version, "rc.1")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-rc.1", semverutil.Format(version))

	// A subsequent patch bump supersedes the pre-release.
	assert.Equal(t, "1.2.4", semverutil.Format(semverutil.BumpPatch(version)))
}

func TestSetPrereleaseKeepsBuild(t *testing.T) {
	version, err := semverutil.Parse("1.2.3+build.5")
	require.NoError(t, err)

	version, err = semverutil.SetPrerelease(version, "beta")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-beta+build.5", semverutil.Format(version))
}

func TestSetPrereleaseMalformed(t *testing.T) {
	version, err := semverutil.Parse("1.2.3")
	require.NoError(t, err)

	for _, label := range []string{"", "rc..1", ".rc", "rc.", "rc.01", "r_c"} {
		t.Run(label, func(t *testing.T) {
			_, err := semverutil.SetPrerelease(version, label)
			require.Error(t, err)
			assert.ErrorIs(t, err, semverutil.ErrMalformedPrerelease)
		})
	}
}

func TestSetBuild(t *testing.T) {
	version, err := semverutil.Parse("1.2.3")
	require.NoError(t, err)

	version, err = semverutil.SetBuild(version, "dev.amd64")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3+dev.amd64", semverutil.Format(version))
}

func TestSetBuildKeepsPrerelease(t *testing.T) {
	version, err := semverutil.Parse("1.2.3-rc.1")
	require.NoError(t, err)

	version, err = semverutil.SetBuild(version, "linux")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-rc.1+linux", semverutil.Format(version))
}

func TestSetBuildMalformed(t *testing.T) {
	version, err := semverutil.Parse("1.2.3")
	require.NoError(t, err)

	for _, label := range []string{"", "dev..1", ".dev", "dev.", "d+v"} {
		t.Run(label, func(t *testing.T) {
			_, err := semverutil.SetBuild(version, label)
			require.Error(t, err)
			assert.ErrorIs(t, err, semverutil.ErrMalformedBuild)
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	_, err := semverutil.Parse("1.2")
	require.Error(t, err)
	assert.False(t, errors.Is(err, semverutil.ErrMalformedPrerelease))
	assert.False(t, errors.Is(err, semverutil.ErrMalformedBuild))
}
