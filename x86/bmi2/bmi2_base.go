// Copyright 2025 go-highway Authors
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

package bmi2

// This file provides the pure Go (scalar) implementations. They must produce
// bit-identical results to the hardware instructions for every input, so the
// dispatched implementation is never observable.

// bzhiIndexMask selects the index bits the instruction reads.
const bzhiIndexMask = 0xFF

func bzhi32Base(a, index uint32) uint32 {
	n := index & bzhiIndexMask
	// Shifting by n >= 32 yields 0, leaving a unchanged.
	return a &^ (^uint32(0) << n)
}

func bzhi64Base(a, index uint64) uint64 {
	n := index & bzhiIndexMask
	return a &^ (^uint64(0) << n)
}

func pdep32Base(a, mask uint32) uint32 {
	var res uint32
	for bit := uint32(1); mask != 0; bit <<= 1 {
		if a&bit != 0 {
			res |= mask & -mask
		}
		mask &= mask - 1
	}
	return res
}

func pdep64Base(a, mask uint64) uint64 {
	var res uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if a&bit != 0 {
			res |= mask & -mask
		}
		mask &= mask - 1
	}
	return res
}

func pext32Base(a, mask uint32) uint32 {
	var res uint32
	for bit := uint32(1); mask != 0; bit <<= 1 {
		if a&mask&-mask != 0 {
			res |= bit
		}
		mask &= mask - 1
	}
	return res
}

func pext64Base(a, mask uint64) uint64 {
	var res uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if a&mask&-mask != 0 {
			res |= bit
		}
		mask &= mask - 1
	}
	return res
}
