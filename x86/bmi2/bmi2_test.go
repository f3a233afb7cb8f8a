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

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

const (
	testInput = 0b1011_1110_1001_0011
	testMask0 = 0b0110_0011_1000_0101
	testMask1 = 0b1110_1011_1110_1111
)

func TestPext(t *testing.T) {
	tests := []struct {
		name string
		mask uint32
		want uint32
	}{
		{"mask0", testMask0, 0b0000_0000_0011_0101},
		{"mask1", testMask1, 0b0001_0111_0100_0011},
		{"zero_mask", 0, 0},
		{"all_ones", 0xFFFFFFFF, testInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pext32(testInput, tt.mask); got != tt.want {
				t.Errorf("Pext32(%#b, %#b) = %#b, want %#b", testInput, tt.mask, got, tt.want)
			}
			if got := Pext64(testInput, uint64(tt.mask)); got != uint64(tt.want) {
				t.Errorf("Pext64(%#b, %#b) = %#b, want %#b", testInput, tt.mask, got, tt.want)
			}
		})
	}

	t.Run("high_bits_64", func(t *testing.T) {
		got := Pext64(0xDEADBEEFCAFEBABE, 0xFF00FF00FF00FF00)
		if want := uint64(0xDEBECABA); got != want {
			t.Errorf("Pext64 = %#x, want %#x", got, want)
		}
	})
}

func TestPdep(t *testing.T) {
	tests := []struct {
		name string
		mask uint32
		want uint32
	}{
		{"mask0", testMask0, 0b0000_0010_0000_0101},
		{"mask1", testMask1, 0b1110_1001_0010_0011},
		{"zero_mask", 0, 0},
		{"all_ones", 0xFFFFFFFF, testInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pdep32(testInput, tt.mask); got != tt.want {
				t.Errorf("Pdep32(%#b, %#b) = %#b, want %#b", testInput, tt.mask, got, tt.want)
			}
			if got := Pdep64(testInput, uint64(tt.mask)); got != uint64(tt.want) {
				t.Errorf("Pdep64(%#b, %#b) = %#b, want %#b", testInput, tt.mask, got, tt.want)
			}
		})
	}

	t.Run("high_bits_64", func(t *testing.T) {
		got := Pdep64(0xDEADBEEF, 0xF0F0F0F0F0F0F0F0)
		if want := uint64(0xD0E0A0D0B0E0E0F0); got != want {
			t.Errorf("Pdep64 = %#x, want %#x", got, want)
		}
	})
}

func TestBzhi(t *testing.T) {
	tests := []struct {
		name  string
		a     uint32
		index uint32
		want  uint32
	}{
		{"index5", 0b1111_0010, 5, 0b0001_0010},
		{"index0", 0xFFFFFFFF, 0, 0},
		{"index1", 0xFFFFFFFF, 1, 1},
		{"index31", 0xFFFFFFFF, 31, 0x7FFFFFFF},
		{"index_width", 0xFFFFFFFF, 32, 0xFFFFFFFF},
		// Only the low 8 bits of the index are read.
		{"index_past_width", 0xDEADBEEF, 200, 0xDEADBEEF},
		{"index_wraps", 0xDEADBEEF, 0x104, 0xF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bzhi32(tt.a, tt.index); got != tt.want {
				t.Errorf("Bzhi32(%#x, %d) = %#x, want %#x", tt.a, tt.index, got, tt.want)
			}
		})
	}

	t.Run("64bit", func(t *testing.T) {
		if got := Bzhi64(0b1111_0010, 5); got != 0b0001_0010 {
			t.Errorf("Bzhi64(0b11110010, 5) = %#b, want 0b10010", got)
		}
		if got := Bzhi64(^uint64(0), 63); got != 1<<63-1 {
			t.Errorf("Bzhi64(all ones, 63) = %#x", got)
		}
		if got := Bzhi64(0xDEADBEEFCAFEBABE, 64); got != 0xDEADBEEFCAFEBABE {
			t.Errorf("Bzhi64(x, 64) = %#x, want x unchanged", got)
		}
		if got := Bzhi64(0xDEADBEEFCAFEBABE, 0x100+8); got != 0xBE {
			t.Errorf("Bzhi64(x, 0x108) = %#x, want 0xbe", got)
		}
	})
}

func TestMulx32(t *testing.T) {
	lo, hi := Mulx32(4_294_967_200, 2)
	// 8589934400 = 0b0001_1111_1111_1111_1111_1111_1111_0100_0000
	if lo != 0b1111_1111_1111_1111_1111_1111_0100_0000 {
		t.Errorf("lo = %#b", lo)
	}
	if hi != 0b0001 {
		t.Errorf("hi = %#b", hi)
	}
}

func TestMulx64(t *testing.T) {
	lo, hi := Mulx64(9_223_372_036_854_775_800, 100)
	if lo != 0b11111111_11111111_11111111_11111111_11111111_11111111_11111100_11100000 {
		t.Errorf("lo = %#b", lo)
	}
	if hi != 0b00110001 {
		t.Errorf("hi = %#b", hi)
	}

	lo, hi = Mulx64(^uint64(0), ^uint64(0))
	if lo != 1 || hi != ^uint64(0)-1 {
		t.Errorf("Mulx64(max, max) = (%#x, %#x), want (1, %#x)", lo, hi, ^uint64(0)-1)
	}
}

func TestPextPdepRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		n32, m32 := rng.Uint32(), rng.Uint32()
		if got := Pdep32(Pext32(n32, m32), m32); got != n32&m32 {
			t.Fatalf("Pdep32(Pext32(%#x, %#x)) = %#x, want %#x", n32, m32, got, n32&m32)
		}
		n64, m64 := rng.Uint64(), rng.Uint64()
		if got := Pdep64(Pext64(n64, m64), m64); got != n64&m64 {
			t.Fatalf("Pdep64(Pext64(%#x, %#x)) = %#x, want %#x", n64, m64, got, n64&m64)
		}
	}
}

func TestIdentityMask(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		n32 := rng.Uint32()
		if Pext32(n32, 0xFFFFFFFF) != n32 || Pdep32(n32, 0xFFFFFFFF) != n32 {
			t.Fatalf("identity mask changed %#x", n32)
		}
		n64 := rng.Uint64()
		if Pext64(n64, ^uint64(0)) != n64 || Pdep64(n64, ^uint64(0)) != n64 {
			t.Fatalf("identity mask changed %#x", n64)
		}
	}
}

func TestBzhiBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10000 {
		n32 := rng.Uint32()
		if Bzhi32(n32, 32) != n32 || Bzhi32(n32, 0) != 0 {
			t.Fatalf("Bzhi32 bounds failed for %#x", n32)
		}
		n64 := rng.Uint64()
		if Bzhi64(n64, 64) != n64 || Bzhi64(n64, 0) != 0 {
			t.Fatalf("Bzhi64 bounds failed for %#x", n64)
		}
	}
}

func TestMulxWideProduct(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 10000 {
		a32, b32 := rng.Uint32(), rng.Uint32()
		lo32, hi32 := Mulx32(a32, b32)
		if uint64(hi32)<<32|uint64(lo32) != uint64(a32)*uint64(b32) {
			t.Fatalf("Mulx32(%d, %d) = (%d, %d)", a32, b32, lo32, hi32)
		}

		a64, b64 := rng.Uint64(), rng.Uint64()
		lo64, hi64 := Mulx64(a64, b64)
		got := new(big.Int).Lsh(new(big.Int).SetUint64(hi64), 64)
		got.Or(got, new(big.Int).SetUint64(lo64))
		want := new(big.Int).Mul(new(big.Int).SetUint64(a64), new(big.Int).SetUint64(b64))
		if got.Cmp(want) != 0 {
			t.Fatalf("Mulx64(%d, %d) = %s, want %s", a64, b64, got, want)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	done := make(chan bool)
	for g := range 8 {
		go func() {
			ok := true
			for i := range 1000 {
				n := uint32(i * (g + 1))
				if Pdep32(Pext32(n, testMask1), testMask1) != n&testMask1 {
					ok = false
				}
			}
			done <- ok
		}()
	}
	for range 8 {
		if !<-done {
			t.Error("concurrent round trip mismatch")
		}
	}
}
