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

// Package flaterrors joins errors into a flat list instead of the nested
// tree produced by errors.Join. Joining an already-joined error appends
// its members, so the rendered message stays one error per line no matter
// how many layers of wrapping a call chain adds.
package flaterrors

import "strings"

type flatError struct {
	errs []error
}

func (e *flatError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "\n")
}

// Unwrap makes the joined members visible to errors.Is and errors.As.
func (e *flatError) Unwrap() []error {
	return e.errs
}

// Join returns an error combining errs into a single flat list.
// Nil entries are dropped; members of previously joined errors are
// inlined rather than nested. Join returns nil if every input is nil,
// and the error itself if exactly one non-nil error remains.
func Join(errs ...error) error {
	flat := make([]error, 0, len(errs))

	for _, err := range errs {
		switch e := err.(type) {
		case nil:
		case *flatError:
			flat = append(flat, e.errs...)
		default:
			flat = append(flat, err)
		}
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &flatError{errs: flat}
	}
}
