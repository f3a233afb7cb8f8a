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

// Command ptxgen compiles GPU kernels to PTX and generates a Go test that
// compares the result against a checked-in reference.
//
// Usage:
//
//	ptxgen generate --config ptxgen.yaml
//	ptxgen generate --config ptxgen.yaml --compiler nvcc --capability 7.0
//	ptxgen check --config ptxgen.yaml
//
// Or via go:generate:
//
//	//go:generate go run github.com/go-highway/stdsimd/cmd/ptxgen generate --config ptxgen.yaml
//
// generate writes the compiled PTX to the output directory and emits a test
// file embedding it, which asserts equality with the package's reference
// PTX. check compiles and diffs against the reference file without writing
// a test. Any compiler failure aborts with a non-zero exit status.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
