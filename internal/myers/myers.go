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

package myers

// A Snake describes a partial match between the two input sequences: a run of diagonal edges in
// the edit graph, possibly preceded by one non-diagonal edge. Degenerate snakes describe pure
// insertions or removals.
type Snake struct {
	X1, X2 int // start and end position in the old sequence
	Y1, Y2 int // start and end position in the new sequence
}

// IsAddition reports whether the snake describes an insertion of new-sequence elements.
func (s Snake) IsAddition() bool {
	return s.X1 == s.X2 && s.Y1 != s.Y2
}

// IsRemoval reports whether the snake describes a removal of old-sequence elements.
func (s Snake) IsRemoval() bool {
	return s.X1 != s.X2 && s.Y1 == s.Y2
}

// A slice is a rectangular region [x1,x2) × [y1,y2) of the edit graph that still needs to be
// diffed.
type slice struct {
	x1, x2 int // range in the old sequence
	y1, y2 int // range in the new sequence
}

func (s slice) isNull() bool {
	return s.x2-s.x1 == 0 && s.y2-s.y1 == 0
}

// Snakes compares src and dst using eq and returns every snake that describes an insertion or a
// removal, in absolute coordinates. Snakes that only describe matches carry no edit and are
// dropped. The order of the returned snakes is unspecified.
func Snakes[T any](src, dst []T, eq func(a, b T) bool) []Snake {
	// Scratch arrays for the furthest reaching forward and backward paths, indexed by diagonal
	// via the non-negative offset vmax. No d-path in any sub-slice can be longer than vmax, so
	// 2*vmax slots hold every diagonal the searches can touch.
	vmax := 2 * max(len(src), len(dst))
	buf := make([]int, 4*vmax) // forward and backward in a single allocation
	forward := buf[:2*vmax]
	backward := buf[2*vmax:]

	var snakes []Snake
	stack := []slice{{x1: 0, x2: len(src), y1: 0, y2: len(dst)}}
	for len(stack) > 0 {
		sl := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		snake := middle(sl, src, dst, eq, forward, backward, vmax)

		// Translate from slice-local to absolute coordinates.
		snake.X1 += sl.x1
		snake.X2 += sl.x1
		snake.Y1 += sl.y1
		snake.Y2 += sl.y1

		if snake.IsAddition() || snake.IsRemoval() {
			snakes = append(snakes, snake)
		}

		left := slice{x1: sl.x1, x2: snake.X1, y1: sl.y1, y2: snake.Y1}
		right := slice{x1: snake.X2, x2: sl.x2, y1: snake.Y2, y2: sl.y2}
		if !left.isNull() {
			stack = append(stack, left)
		}
		if !right.isNull() {
			stack = append(stack, right)
		}
	}
	return snakes
}

// middle finds the middle snake of sl by searching for furthest reaching paths forwards from the
// top-left and backwards from the bottom-right corner of the slice until the two searches
// overlap. The returned snake uses slice-local coordinates.
func middle[T any](sl slice, src, dst []T, eq func(a, b T) bool, forward, backward []int, offset int) Snake {
	oldSize := sl.x2 - sl.x1
	newSize := sl.y2 - sl.y1

	if oldSize < 1 || newSize < 1 {
		// One side is empty: the whole slice is a single insertion or removal.
		return Snake{X1: 0, X2: oldSize, Y1: 0, Y2: newSize}
	}

	delta := oldSize - newSize
	max := (oldSize + newSize + 1) / 2

	// The optimal path length is odd or even as delta is odd or even, so only one of the two
	// searches can produce the overlap and only that one needs to check for it.
	front := delta%2 != 0

	forward[offset+1] = 0
	backward[offset+1] = newSize

	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			// Extend the furthest reaching path from the better of the two neighboring
			// diagonals. Moving rightward removes an element from the old sequence, moving
			// downward inserts one from the new sequence.
			var x, ox int
			if k == -d || (k != d && forward[offset+k-1] < forward[offset+k+1]) {
				ox = forward[offset+k+1]
				x = ox
			} else {
				ox = forward[offset+k-1]
				x = ox + 1
			}

			// k is defined as the difference between x and y.
			y := x - k
			oy := y
			if d != 0 && x == ox {
				oy = y - 1
			}

			// Follow the diagonal as far as possible. Diagonal steps keep elements of the old
			// sequence.
			x0, y0 := x, y
			for x < oldSize && y < newSize && eq(src[sl.x1+x], dst[sl.y1+y]) {
				x++
				y++
			}

			forward[offset+k] = x

			// The searches meet when the forward path reaches or passes the backward path's
			// recorded endpoint on the same diagonal. The middle snake is the diagonal run this
			// path just traversed: only those elements were actually compared. The backward
			// endpoint may lie outside that run (it can arrive on the diagonal via a neighbor
			// plus a non-diagonal step), so the interval between the two endpoints must not be
			// treated as matched. When the run is empty, the path's final non-diagonal edge is
			// the snake, which the caller records as the single edit it is.
			if c := k - delta; front && c >= -d+1 && c <= d-1 && y >= backward[offset+c] {
				if x != x0 {
					return Snake{X1: x0, X2: x, Y1: y0, Y2: y}
				}
				return Snake{X1: ox, X2: x, Y1: oy, Y2: y}
			}
		}

		for c := -d; c <= d; c += 2 {
			// The backward counterpart: extend towards the top-left corner, moving leftward or
			// upward.
			var y, oy int
			if c == -d || (c != d && backward[offset+c-1] > backward[offset+c+1]) {
				oy = backward[offset+c+1]
				y = oy
			} else {
				oy = backward[offset+c-1]
				y = oy - 1
			}

			k := c + delta
			x := y + k
			ox := x
			if d != 0 && y == oy {
				ox = x + 1
			}

			x0, y0 := x, y
			for x > 0 && y > 0 && eq(src[sl.x1+x-1], dst[sl.y1+y-1]) {
				x--
				y--
			}

			backward[offset+c] = y

			// Mirror of the forward check: the snake is the run this path traversed, never the
			// interval up to the forward path's endpoint.
			if !front && k >= -d && k <= d && x <= forward[offset+k] {
				if x != x0 {
					return Snake{X1: x, X2: x0, Y1: y, Y2: y0}
				}
				return Snake{X1: x, X2: ox, Y1: y, Y2: oy}
			}
		}
	}

	// The two searches must overlap after at most max steps for any pair of finite inputs.
	// Getting here means the search invariant was broken, e.g. by an eq that is not a consistent
	// equivalence relation.
	panic("myers: no middle snake found")
}
