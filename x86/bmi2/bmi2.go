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

import "math/bits"

// Implementations selected by init() in dispatch_*.go files.
var (
	bzhi32Impl func(a, index uint32) uint32
	bzhi64Impl func(a, index uint64) uint64
	pdep32Impl func(a, mask uint32) uint32
	pdep64Impl func(a, mask uint64) uint64
	pext32Impl func(a, mask uint32) uint32
	pext64Impl func(a, mask uint64) uint64
)

// Mulx32 is an unsigned multiply without affecting flags.
//
// It multiplies a by b and returns the low and the high half of the 64-bit
// product.
func Mulx32(a, b uint32) (lo, hi uint32) {
	hi, lo = bits.Mul32(a, b)
	return lo, hi
}

// Mulx64 is an unsigned multiply without affecting flags.
//
// It multiplies a by b and returns the low and the high half of the 128-bit
// product.
func Mulx64(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Bzhi32 zeroes the bits of a at positions >= index.
//
// Only the low 8 bits of index are read. If they encode a value of 32 or more,
// a is returned unchanged. This is the instruction's behaviour; no other
// validation is done.
func Bzhi32(a, index uint32) uint32 {
	return bzhi32Impl(a, index)
}

// Bzhi64 zeroes the bits of a at positions >= index.
//
// Only the low 8 bits of index are read. If they encode a value of 64 or more,
// a is returned unchanged.
func Bzhi64(a, index uint64) uint64 {
	return bzhi64Impl(a, index)
}

// Pdep32 scatters the contiguous low order bits of a to the result at the
// positions specified by mask, from the least to the most significant set
// bit. Result bits where mask is 0 are 0.
func Pdep32(a, mask uint32) uint32 {
	return pdep32Impl(a, mask)
}

// Pdep64 is the 64-bit form of Pdep32.
func Pdep64(a, mask uint64) uint64 {
	return pdep64Impl(a, mask)
}

// Pext32 gathers the bits of a specified by mask into the contiguous low
// order bit positions of the result, preserving their order.
func Pext32(a, mask uint32) uint32 {
	return pext32Impl(a, mask)
}

// Pext64 is the 64-bit form of Pext32.
func Pext64(a, mask uint64) uint64 {
	return pext64Impl(a, mask)
}
