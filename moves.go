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

import "slices"

// detectMoves rewrites the script, collapsing matched pairs of insertions and removals of
// equal-valued elements into moves. Unmatched operations pass through as single-element
// operations.
//
// The rewrite works on unit operations: every multi-element insertion and removal is first
// subdivided so that each operation references exactly one element, making one-to-one value
// matching tractable. Pairing is greedy first-fit in script order; see [DetectMoves] for the
// consequences.
func detectMoves[T any](ops []Edit, x, y []T, eq func(a, b T) bool) []Edit {
	ops = subdivide(ops)

	// Positions of pending operations shift as pairs collapse, but value matching must keep
	// referring to the element the operation was created for. Keep the original offsets in a
	// side array: for removals these are positions in x, for insertions positions in y.
	src := make([]int, len(ops))
	for i, op := range ops {
		src[i] = op.Offset
	}

	for i := 0; i < len(ops); i++ {
		switch ops[i].Op {
		case Insert:
			for j := i + 1; j < len(ops); j++ {
				if ops[j].Op != Remove || !eq(x[src[j]], y[ops[i].Offset]) {
					continue
				}
				// The removal is pulled forward from j to i. Every operation in between was
				// positioned with the removed element still in place and now sits one element
				// too high.
				for k := i + 1; k < j; k++ {
					switch ops[k].Op {
					case Insert:
						ops[k].Index--
					case Remove:
						ops[k].Offset--
					}
				}
				ops[i] = Edit{Op: Move, From: ops[j].Offset, To: ops[i].Index - 1, Count: 1}
				ops = slices.Delete(ops, j, j+1)
				src = slices.Delete(src, j, j+1)
				break
			}
		case Remove:
			for j := i + 1; j < len(ops); j++ {
				if ops[j].Op != Insert || !eq(x[src[i]], y[ops[j].Offset]) {
					continue
				}
				// The insertion is pulled forward from j to i. Every operation in between gains
				// one element below its position.
				for k := i + 1; k < j; k++ {
					switch ops[k].Op {
					case Insert:
						ops[k].Index++
					case Remove:
						ops[k].Offset++
					}
				}
				ops[i] = Edit{Op: Move, From: ops[i].Offset, To: ops[j].Index, Count: 1}
				ops = slices.Delete(ops, j, j+1)
				src = slices.Delete(src, j, j+1)
				break
			}
		}
	}
	return ops
}

// subdivide splits every multi-element operation into single-element operations. Units are
// emitted back to front so that each unit carries the position of exactly the element it touches
// and the script's ordering contract keeps holding: a run of unit insertions reuses the run's
// index and reinserts the run's elements highest offset first.
func subdivide(ops []Edit) []Edit {
	n := 0
	for _, op := range ops {
		n += op.Count
	}
	out := make([]Edit, 0, n)
	for _, op := range ops {
		switch op.Op {
		case Insert:
			for k := op.Count - 1; k >= 0; k-- {
				out = append(out, Edit{Op: Insert, Index: op.Index, Offset: op.Offset + k, Count: 1})
			}
		case Remove:
			for k := op.Count - 1; k >= 0; k-- {
				out = append(out, Edit{Op: Remove, Offset: op.Offset + k, Count: 1})
			}
		default:
			panic("never reached")
		}
	}
	return out
}
