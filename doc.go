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

// Package editscript computes the sequence of edit operations that transforms one slice into
// another.
//
// The main functions are [Diff] and [DiffFunc], which return a minimal script of insert and
// remove operations. With the [DetectMoves] option, matched pairs of insertions and removals of
// equal-valued elements are additionally collapsed into move operations.
//
// The operations in a script are ordered: they must be applied to the old slice in the order
// returned, first operation first, because every operation's positions refer to the slice as
// mutated by the operations before it. Applying them in any other order silently produces a
// corrupt result.
//
// The package performs no semantic interpretation of the input: callers diffing text supply an
// already tokenized slice (runes, words, lines) and own the rendering of the resulting script.
package editscript
