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

// Package manifest reads and writes the version field of a YAML package
// manifest. The document is kept as a yaml.v3 node tree so that a single
// scalar can be replaced while comments, key ordering and the surrounding
// schema pass through unmodified.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
)

var (
	// ErrNotFound is returned when the manifest file does not exist or
	// cannot be read.
	ErrNotFound = errors.New("manifest not found")
	// ErrParse is returned when the manifest is not a valid YAML mapping.
	ErrParse = errors.New("parsing manifest")
	// ErrVersionFieldMissing is returned when the version key path does not
	// resolve to a scalar value in the manifest.
	ErrVersionFieldMissing = errors.New("version field missing from manifest")
	// ErrWrite is returned when the updated manifest cannot be persisted.
	ErrWrite = errors.New("writing manifest")
)

// Document is an in-memory manifest. It is obtained from Load, mutated in
// at most one scalar field via SetVersion, and persisted with Save.
type Document struct {
	root yaml.Node
}

// Load reads and parses the manifest at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, flaterrors.Join(err, ErrNotFound)
	}

	doc := &Document{} //nolint:exhaustruct // unmarshal
	if err := yaml.Unmarshal(data, &doc.root); err != nil {
		return nil, flaterrors.Join(err, ErrParse)
	}

	if doc.root.Kind != yaml.DocumentNode || len(doc.root.Content) == 0 ||
		doc.root.Content[0].Kind != yaml.MappingNode {
		return nil, flaterrors.Join(errors.New("manifest must be a mapping"), ErrParse)
	}

	return doc, nil
}

// Version returns the version string stored at keyPath, a dot-separated
// chain of mapping keys such as "version" or "package.version".
func (d *Document) Version(keyPath string) (string, error) {
	node, err := d.lookup(keyPath)
	if err != nil {
		return "", err
	}

	return node.Value, nil
}

// SetVersion replaces the scalar at keyPath with version. Everything else
// in the document, including the node's own style and comments, is left
// untouched.
func (d *Document) SetVersion(keyPath, version string) error {
	node, err := d.lookup(keyPath)
	if err != nil {
		return err
	}

	node.Value = version
	node.Tag = "!!str"

	return nil
}

// Save serializes the document back to path, overwriting it. The document
// is written to a temporary file in the same directory first and renamed
// into place so a crash cannot leave a truncated manifest behind.
func (d *Document) Save(path string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return flaterrors.Join(err, ErrWrite)
	}

	encoder := yaml.NewEncoder(tmp)
	encoder.SetIndent(2)

	if err := encoder.Encode(&d.root); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return flaterrors.Join(err, ErrWrite)
	}

	if err := flaterrors.Join(encoder.Close(), tmp.Chmod(mode), tmp.Close()); err != nil {
		_ = os.Remove(tmp.Name())

		return flaterrors.Join(err, ErrWrite)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())

		return flaterrors.Join(err, ErrWrite)
	}

	return nil
}

// lookup resolves keyPath to the scalar node holding the version string.
func (d *Document) lookup(keyPath string) (*yaml.Node, error) {
	node := d.root.Content[0]

	keys := strings.Split(keyPath, ".")
	for i, key := range keys {
		if node.Kind != yaml.MappingNode {
			return nil, flaterrors.Join(
				errKeyNotAMapping(keys[:i]),
				ErrVersionFieldMissing,
			)
		}

		child := childByKey(node, key)
		if child == nil {
			return nil, flaterrors.Join(
				errKeyNotFound(keys[:i+1]),
				ErrVersionFieldMissing,
			)
		}

		node = child
	}

	if node.Kind != yaml.ScalarNode {
		return nil, flaterrors.Join(
			errors.New("key "+keyPath+" does not hold a scalar value"),
			ErrVersionFieldMissing,
		)
	}

	return node, nil
}

// childByKey returns the value node for key in a mapping node, or nil.
// Mapping content alternates key and value nodes.
func childByKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func errKeyNotFound(keys []string) error {
	return errors.New("key " + strings.Join(keys, ".") + " not found in manifest")
}

func errKeyNotAMapping(keys []string) error {
	if len(keys) == 0 {
		return errors.New("manifest root is not a mapping")
	}

	return errors.New("key " + strings.Join(keys, ".") + " is not a mapping")
}
