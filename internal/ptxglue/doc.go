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

// Package ptxglue compiles GPU kernels to PTX at build time and hands the
// result to a Glue that writes Go bindings for it.
//
// It is driven from go:generate through cmd/ptxgen:
//
//	compiled, err := ptxglue.NewBuilder().
//		KernelDir("kernels").
//		Gencode(ptxglue.PTXGencode(ptxglue.CC35)).
//		WhitelistKernel("hwy_nvptx_syncthreads_kernel").
//		Compile(ctx, ptxglue.PhasePTX)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = compiled.WriteBindingsToFile(glue, "ptx_generated_test.go")
//
// The compiler itself (clang or nvcc) is an external tool. Any failure while
// running it is returned as a *CompileError and should abort the build.
package ptxglue
