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

// Package myers implements the O(ND) variant of Myers' diff algorithm.
//
// The implementation uses the bidirectional "middle snake" refinement described in section 4b of
// the paper: instead of tracing a full path through the edit graph, it searches for furthest
// reaching d-paths from both corners of the graph at once and stops as soon as the two searches
// overlap. The middle snake is the run of diagonal (matching) edges the detecting search just
// traversed, or its final non-diagonal edge when that run is empty. The snake lies on a
// minimum-cost path and splits the edit graph into two smaller rectangles, which are then
// searched the same way.
//
// The search works on diagonals k = x - y. For every path length d, the furthest reaching forward
// path on diagonal k is either the furthest reaching (d-1)-path on diagonal k-1 followed by a
// rightward step (a removal) or the one on diagonal k+1 followed by a downward step (an
// insertion), extended by as many diagonal steps as the inputs allow. The forward and backward
// searches each store only the furthest reached coordinate per diagonal, so a single pair of
// scratch arrays indexed by an offset diagonal number is all the state the search needs.
//
// The subdivision is driven by an explicit stack of pending rectangles rather than recursion, so
// inputs that produce O(N) snakes (e.g. fully disjoint sequences) cannot grow the call stack
// proportionally.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
