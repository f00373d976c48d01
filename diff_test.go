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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Edit
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: nil,
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: []Edit{
				{Op: Insert, Index: 0, Offset: 0, Count: 3},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: []Edit{
				{Op: Remove, Offset: 0, Count: 3},
			},
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []Edit{
				{Op: Remove, Offset: 1, Count: 1},
				{Op: Insert, Index: 1, Offset: 1, Count: 1},
			},
		},
		{
			name: "swap-suffix",
			x:    strings.Split("abc", ""),
			y:    strings.Split("acb", ""),
			want: []Edit{
				{Op: Remove, Offset: 2, Count: 1},
				{Op: Insert, Index: 1, Offset: 1, Count: 1},
			},
		},
		{
			name: "identical-runs",
			x:    strings.Split("xx", ""),
			y:    strings.Split("xx", ""),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			{
				got := Diff(tt.x, tt.y)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
				}
				if applied := apply(tt.x, tt.y, got); !slices.Equal(applied, tt.y) {
					t.Errorf("applying Diff(...) = %v, want %v", applied, tt.y)
				}
			}
			{
				got := DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b })
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
				}
			}
		})
	}
}

func TestDiffRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y string
	}{
		{"paper-example", "ABCABBA", "CBABAC"},
		{"disjoint", "aaaa", "bbbb"},
		{"shift", "abcdefg", "bcdefgh"},
		{"repeats", "aabbaabb", "bbaabbaa"},
		// Inputs where one bidirectional search overshoots the other on the overlap diagonal.
		// The middle snake must only cover elements the search actually compared.
		{"overshoot-collapse", "caacaccaccbccb", "c"},
		{"overshoot-grow", "da", "cddbdaadabd"},
		{"overshoot-short", "a", "aba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := []byte(tt.x)
			y := []byte(tt.y)
			ops := Diff(x, y)
			if applied := apply(x, y, ops); !slices.Equal(applied, y) {
				t.Errorf("applying Diff(%q, %q) = %q, want %q", tt.x, tt.y, applied, tt.y)
			}
			got, want := editCount(ops), indelDistance(x, y)
			if got != want {
				t.Errorf("Diff(%q, %q) edits %d elements, want %d", tt.x, tt.y, got, want)
			}
		})
	}
}

func TestDiffRandom(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))

			x := make([]byte, rng.IntN(40))
			for s := range x {
				x[s] = 'a' + byte(rng.IntN(4))
			}
			y := make([]byte, rng.IntN(40))
			for s := range y {
				y[s] = 'a' + byte(rng.IntN(4))
			}

			ops := Diff(x, y)
			if len(ops) == 0 && !slices.Equal(x, y) {
				t.Fatalf("Diff(%q, %q) is empty for different inputs", x, y)
			}
			if applied := apply(x, y, ops); !slices.Equal(applied, y) {
				t.Errorf("applying Diff(%q, %q) = %q, want %q", x, y, applied, y)
			}
			got, want := editCount(ops), indelDistance(x, y)
			if got != want {
				t.Errorf("Diff(%q, %q) edits %d elements, want %d", x, y, got, want)
			}
		})
	}
}

// apply executes the script on a copy of x, resolving insert and move payloads against y and the
// progressively mutated slice respectively.
func apply[T any](x, y []T, ops []Edit) []T {
	out := slices.Clone(x)
	for _, op := range ops {
		switch op.Op {
		case Insert:
			out = slices.Insert(out, op.Index, y[op.Offset:op.Offset+op.Count]...)
		case Remove:
			out = slices.Delete(out, op.Offset, op.Offset+op.Count)
		case Move:
			moved := slices.Clone(out[op.From : op.From+op.Count])
			out = slices.Delete(out, op.From, op.From+op.Count)
			out = slices.Insert(out, op.To, moved...)
		default:
			panic("never reached")
		}
	}
	return out
}

// editCount returns the total number of elements inserted or removed by the script.
func editCount(ops []Edit) int {
	n := 0
	for _, op := range ops {
		n += op.Count
	}
	return n
}

// indelDistance computes the minimal number of single-element insertions and removals that
// transform x into y, as a reference for the optimality of the diff.
func indelDistance[T comparable](x, y []T) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for t := range prev {
		prev[t] = t
	}
	for s := 1; s <= len(x); s++ {
		cur[0] = s
		for t := 1; t <= len(y); t++ {
			d := min(prev[t]+1, cur[t-1]+1)
			if x[s-1] == y[t-1] {
				d = min(d, prev[t-1])
			}
			cur[t] = d
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func BenchmarkDiff(b *testing.B) {
	params := []struct {
		N, M int // Length of x and y respectively
		D    int // Number of edits (besides edits due to size differences)
	}{
		{50, 50, 10},
		{500, 50, 10},
		{500, 500, 10},
		{500, 500, 100},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d_D=%d", p.N, p.M, p.D)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))

			x := make([]int, p.N)
			for i := range x {
				x[i] = rng.IntN(100)
			}
			y := make([]int, p.M)
			copy(y, x)
			for d := p.D; d > 0; {
				i := rng.IntN(len(y))
				if y[i] >= 0 {
					y[i] = -y[i] - 1
					d--
				}
			}

			for b.Loop() {
				_ = Diff(x, y)
			}
		})
	}
}
