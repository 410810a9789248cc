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

// Package version exposes the tool's own build version. It is unrelated to
// the manifest versions the tool edits. There is deliberately no git
// fallback: the binary runs inside other projects' working trees, and
// describing the host repository would report the wrong version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info holds version information for the tool binary.
type Info struct {
	// ToolName is the name of the tool.
	ToolName string
	// Version is set via ldflags or from build info.
	Version string
	// CommitSHA is set via ldflags or from build info.
	CommitSHA string
	// BuildTimestamp is set via ldflags or from build info.
	BuildTimestamp string
}

// New creates a new Info with default values.
func New(toolName string) *Info {
	return &Info{
		ToolName:       toolName,
		Version:        "dev",
		CommitSHA:      "unknown",
		BuildTimestamp: "unknown",
	}
}

// Get returns version information, falling back to the embedded Go build
// info for anything not set via ldflags (covers go install / go run).
func (i *Info) Get() (version, commit, timestamp string) {
	version = i.Version
	commit = i.CommitSHA
	timestamp = i.BuildTimestamp

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, timestamp
	}

	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "unknown" && len(setting.Value) >= 7 {
				commit = setting.Value[:7]
			}
			if version == "dev" && len(setting.Value) >= 7 {
				version = setting.Value[:7]
			}
		case "vcs.time":
			if timestamp == "unknown" {
				timestamp = setting.Value
			}
		}
	}

	return version, commit, timestamp
}

// Print outputs formatted version information to stdout.
func (i *Info) Print() {
	version, commit, timestamp := i.Get()
	fmt.Printf("%s version %s\n", i.ToolName, version)
	fmt.Printf("  commit:    %s\n", commit)
	fmt.Printf("  built:     %s\n", timestamp)
	fmt.Printf("  go:        %s\n", runtime.Version())
	fmt.Printf("  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// String returns a one-line version string using the explicitly set
// Version field.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s", i.ToolName, i.Version)
}
