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

// Command bmi2info prints the bit-manipulation features detected by Go and
// which bmi2 implementation was selected, followed by one worked example per
// instruction.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/go-highway/stdsimd/x86/bmi2"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()

	if runtime.GOARCH == "amd64" || runtime.GOARCH == "386" {
		fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
		fmt.Printf("  HasBMI1:     %v (ANDN, BEXTR, BLSI, BLSR, TZCNT)\n", cpu.X86.HasBMI1)
		fmt.Printf("  HasBMI2:     %v (BZHI, MULX, PDEP, PEXT, RORX, SARX)\n", cpu.X86.HasBMI2)
		fmt.Printf("  HasPOPCNT:   %v\n", cpu.X86.HasPOPCNT)
		fmt.Println()
	}

	fmt.Printf("bmi2 dispatch level: %s\n", bmi2.CurrentLevel())
	if bmi2.NoAsmEnv() {
		fmt.Println("  (STDSIMD_NO_ASM is set)")
	}
	fmt.Println()

	const (
		n    = 0b1011_1110_1001_0011
		mask = 0b0110_0011_1000_0101
	)
	fmt.Println("Examples:")
	fmt.Printf("  Pext32(%#016b, %#016b) = %#b\n", n, mask, bmi2.Pext32(n, mask))
	fmt.Printf("  Pdep32(%#016b, %#016b) = %#b\n", n, mask, bmi2.Pdep32(n, mask))
	fmt.Printf("  Bzhi32(%#b, 5) = %#b\n", 0b1111_0010, bmi2.Bzhi32(0b1111_0010, 5))
	lo, hi := bmi2.Mulx32(4_294_967_200, 2)
	fmt.Printf("  Mulx32(4294967200, 2) = lo %#x, hi %#x\n", lo, hi)
}
