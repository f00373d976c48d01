// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package editscript

import (
	"cmp"
	"slices"

	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/myers"
)

// Op describes the kind of an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Insert Op = iota // Insert elements from the new slice into the old slice
	Remove           // Remove elements from the old slice
	Move             // Relocate elements within the old slice
)

// Edit describes a single edit operation. Which fields are meaningful depends on Op, all other
// fields are unset (zero value):
//
//   - For Insert, Count elements of the new slice starting at Offset are inserted into the old
//     slice at position Index.
//   - For Remove, Count elements of the old slice starting at Offset are removed.
//   - For Move, Count elements are taken out of the old slice at position From and reinserted at
//     position To.
//
// All positions refer to the old slice as mutated by the operations applied before this one, see
// [Diff].
type Edit struct {
	Op     Op
	Index  int // Insert: the position in the old slice
	Offset int // Insert: the position in the new slice; Remove: the position in the old slice
	From   int // Move: the position the elements are taken from
	To     int // Move: the position the elements are moved to
	Count  int // the number of elements
}

// Diff compares the contents of x and y and returns the edit script that transforms x into y.
//
// If x and y are element-wise equal, the script is empty. Otherwise the script must be applied
// in the order returned, first operation first: every operation's positions refer to x as
// already mutated by the operations before it, so applying them in any other order silently
// produces a corrupt result.
//
// The following option is supported: [DetectMoves]
//
// When multiple minimal scripts exist, which one is returned is deterministic but unspecified.
// DO NOT rely on the output being stable across minor version upgrades.
func Diff[T comparable](x, y []T, opts ...Option) []Edit {
	return DiffFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns
// the edit script that transforms x into y.
//
// The returned script follows the same ordering contract as [Diff].
//
// The following option is supported: [DetectMoves]
//
// eq must be a consistent equivalence relation (reflexive, symmetric, transitive); an eq that is
// not produces diffs of undefined quality.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.DetectMoves)
	ops := script(myers.Snakes(x, y, eq))
	if cfg.DetectMoves {
		ops = detectMoves(ops, x, y, eq)
	}
	return ops
}

// script converts the snakes into an ordered edit script. The snakes are sorted by their
// position in the old slice and emitted back to front: operations earlier in the script edit
// higher positions, so the position recorded in every operation is still valid by the time it is
// applied.
func script(snakes []myers.Snake) []Edit {
	if len(snakes) == 0 {
		return nil
	}

	slices.SortFunc(snakes, func(a, b myers.Snake) int {
		if c := cmp.Compare(a.X1, b.X1); c != 0 {
			return c
		}
		return cmp.Compare(a.Y1, b.Y1)
	})

	ops := make([]Edit, 0, len(snakes))
	for _, s := range slices.Backward(snakes) {
		switch {
		case s.IsAddition():
			ops = append(ops, Edit{Op: Insert, Index: s.X1, Offset: s.Y1, Count: s.Y2 - s.Y1})
		case s.IsRemoval():
			ops = append(ops, Edit{Op: Remove, Offset: s.X1, Count: s.X2 - s.X1})
		default:
			panic("never reached")
		}
	}
	return ops
}
