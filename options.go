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

import "znkr.io/editscript/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// DetectMoves collapses matched pairs of insertions and removals of equal-valued elements into
// move operations. Unmatched insertions and removals are passed through as single-element
// operations.
//
// Pairing is greedy first-fit: when a value appears multiple times, an insertion is matched with
// the first removal of an equal value in script order, which is not necessarily the nearest one
// and not necessarily the pairing with the fewest moves. The resulting script still transforms
// the old slice into the new one, but the particular move selection is not canonical.
//
// Detecting moves costs O(n²) in the number of changed elements and is therefore opt-in. For
// large inputs with many changes, run the comparison away from latency-sensitive paths.
func DetectMoves() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.DetectMoves = true
		return config.DetectMoves
	}
}
