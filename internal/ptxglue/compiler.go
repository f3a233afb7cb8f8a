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

package ptxglue

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Compiler turns one kernel source file into PTX.
type Compiler interface {
	// Name identifies the toolchain in logs and errors.
	Name() string

	// CompilePTX compiles src for cc and writes PTX to out.
	CompilePTX(ctx context.Context, src string, cc Capability, out string) error
}

// NewCompiler returns the compiler registered under name ("clang" or
// "nvcc"). path overrides the binary; empty means look it up in PATH.
func NewCompiler(name, path string) (Compiler, error) {
	switch strings.ToLower(name) {
	case "", "clang":
		return &Clang{Path: path}, nil
	case "nvcc":
		return &NVCC{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown compiler %q (want clang or nvcc)", name)
	}
}

// Clang compiles CUDA sources with clang's NVPTX backend. No CUDA SDK is
// needed: the CUDA headers and libdevice are not used.
type Clang struct {
	Path       string
	ExtraFlags []string
}

// Name implements Compiler.
func (c *Clang) Name() string { return "clang" }

// Args returns the command line used to compile src.
func (c *Clang) Args(src string, cc Capability, out string) []string {
	args := []string{
		"-x", "cuda",
		"--cuda-device-only",
		"--cuda-gpu-arch=" + string(cc),
		"-nocudainc",
		"-nocudalib",
		"-O3",
		"-S",
		"-o", out,
	}
	args = append(args, c.ExtraFlags...)
	return append(args, src)
}

// CompilePTX implements Compiler.
func (c *Clang) CompilePTX(ctx context.Context, src string, cc Capability, out string) error {
	return runTool(ctx, c.Path, "clang", c.Args(src, cc, out))
}

// NVCC compiles CUDA sources with NVIDIA's nvcc.
type NVCC struct {
	Path       string
	ExtraFlags []string
}

// Name implements Compiler.
func (c *NVCC) Name() string { return "nvcc" }

// Args returns the command line used to compile src.
func (c *NVCC) Args(src string, cc Capability, out string) []string {
	args := []string{
		"-ptx",
		"-arch=" + string(cc),
		"-o", out,
	}
	args = append(args, c.ExtraFlags...)
	return append(args, src)
}

// CompilePTX implements Compiler.
func (c *NVCC) CompilePTX(ctx context.Context, src string, cc Capability, out string) error {
	return runTool(ctx, c.Path, "nvcc", c.Args(src, cc, out))
}

// runTool runs an external compiler and folds its output into the error.
func runTool(ctx context.Context, path, fallback string, args []string) error {
	if path == "" {
		path = fallback
	}
	bin, err := exec.LookPath(path)
	if err != nil {
		return &CompileError{Stage: "compile", Err: fmt.Errorf("find %s: %w", fallback, err)}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &CompileError{
			Stage:  "compile",
			Output: strings.TrimSpace(string(output)),
			Err:    fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err),
		}
	}
	return nil
}
