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

// Package nvptx holds the NVPTX test kernels and their reference PTX.
//
// kernels/lib.cu is compiled by cmd/ptxgen, which writes
// ptx_generated_test.go. That test fails whenever the toolchain output
// drifts from testdata/reference.ptx. To refresh after a kernel change:
//
//	go generate ./nvptx
//
// Generation requires clang with the NVPTX backend (or nvcc, via
// --compiler nvcc). Running the tests does not.
package nvptx

//go:generate go run github.com/go-highway/stdsimd/cmd/ptxgen generate --config ptxgen.yaml
