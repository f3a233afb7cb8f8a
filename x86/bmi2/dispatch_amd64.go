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

//go:build amd64 && !noasm

package bmi2

import "golang.org/x/sys/cpu"

func init() {
	// Check if assembly is disabled via environment variable
	if NoAsmEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// BMI2 is a scalar extension and does not depend on OS support for extra
	// register state, so the CPUID bit is sufficient.
	if !cpu.X86.HasBMI2 {
		setScalarMode()
		return
	}
	currentLevel = LevelBMI2
	bzhi32Impl = bzhi32BMI2
	bzhi64Impl = bzhi64BMI2
	pdep32Impl = pdep32BMI2
	pdep64Impl = pdep64BMI2
	pext32Impl = pext32BMI2
	pext64Impl = pext64BMI2
}
