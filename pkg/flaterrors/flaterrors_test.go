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

package flaterrors_test

import (
	"errors"
	"testing"

	"github.com/alexandremahdhaoui/version-bump/pkg/flaterrors"
)

var (
	errA = errors.New("a")
	errB = errors.New("b")
	errC = errors.New("c")
)

func TestJoinNil(t *testing.T) {
	if err := flaterrors.Join(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := flaterrors.Join(nil, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestJoinSingle(t *testing.T) {
	if err := flaterrors.Join(nil, errA, nil); err != errA {
		t.Errorf("expected errA unchanged, got %v", err)
	}
}

func TestJoinFlattens(t *testing.T) {
	inner := flaterrors.Join(errA, errB)
	outer := flaterrors.Join(inner, errC)

	expected := "a\nb\nc"
	if outer.Error() != expected {
		t.Errorf("expected %q, got %q", expected, outer.Error())
	}
}

func TestJoinErrorsIs(t *testing.T) {
	err := flaterrors.Join(flaterrors.Join(errA, errB), errC)

	for _, target := range []error{errA, errB, errC} {
		if !errors.Is(err, target) {
			t.Errorf("expected errors.Is to match %v", target)
		}
	}

	if errors.Is(err, errors.New("other")) {
		t.Error("expected errors.Is not to match an unrelated error")
	}
}
