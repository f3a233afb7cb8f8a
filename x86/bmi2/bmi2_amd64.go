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

//go:build !noasm

package bmi2

// Implemented in bmi2_amd64.s. Callers must check cpu.X86.HasBMI2 first.

func bzhi32BMI2(a, index uint32) uint32
func bzhi64BMI2(a, index uint64) uint64
func pdep32BMI2(a, mask uint32) uint32
func pdep64BMI2(a, mask uint64) uint64
func pext32BMI2(a, mask uint32) uint32
func pext64BMI2(a, mask uint64) uint64
