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

// Package bmi2 exposes the x86 Bit Manipulation Instruction Set 2.
//
// Each function maps onto a single instruction:
//
//	Pext32, Pext64   PEXT  parallel bits extract
//	Pdep32, Pdep64   PDEP  parallel bits deposit
//	Bzhi32, Bzhi64   BZHI  zero high bits starting at an index
//	Mulx32, Mulx64   MULX  unsigned multiply returning both halves
//
// The reference is the Intel 64 and IA-32 Architectures Software Developer's
// Manual, Volume 2: Instruction Set Reference, A-Z.
//
// On amd64 CPUs that report BMI2 the hardware instructions are used. Everywhere
// else (other architectures, older CPUs, the noasm build tag, or
// STDSIMD_NO_ASM set in the environment) a pure Go implementation with
// identical results is selected at init time. Use CurrentLevel to find out
// which one is active.
//
// All functions are pure: they hold no state and may be called concurrently.
package bmi2
