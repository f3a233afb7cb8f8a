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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultSource is the kernel source compiled when none is set.
const DefaultSource = "lib.cu"

// Glue writes Go bindings for a finished compilation.
type Glue interface {
	WriteBindings(spec *GlueSpec, w io.Writer) error
}

// Builder configures one kernel compilation. The zero value is not usable;
// start from NewBuilder.
type Builder struct {
	kernelDir string
	source    string
	gencode   Gencode
	whitelist []string
	outDir    string
	compiler  Compiler
	logger    *slog.Logger
}

// NewBuilder returns a Builder emitting PTX for sm_35 with clang.
func NewBuilder() *Builder {
	return &Builder{
		source:   DefaultSource,
		gencode:  PTXGencode(CC35),
		compiler: &Clang{},
		logger:   slog.New(slog.DiscardHandler),
	}
}

// KernelDir sets the directory holding the kernel sources.
func (b *Builder) KernelDir(dir string) *Builder {
	b.kernelDir = dir
	return b
}

// Source sets the kernel source file, relative to the kernel directory.
func (b *Builder) Source(name string) *Builder {
	b.source = name
	return b
}

// Gencode sets the code generation target.
func (b *Builder) Gencode(g Gencode) *Builder {
	b.gencode = g
	return b
}

// WhitelistKernel adds a kernel to keep in the output. Kernels that are not
// whitelisted are stripped from the PTX.
func (b *Builder) WhitelistKernel(name string) *Builder {
	if !slices.Contains(b.whitelist, name) {
		b.whitelist = append(b.whitelist, name)
	}
	return b
}

// OutDir sets where PTX is written. Defaults to $TMPDIR/ptxglue.
func (b *Builder) OutDir(dir string) *Builder {
	b.outDir = dir
	return b
}

// Compiler sets the external toolchain.
func (b *Builder) Compiler(c Compiler) *Builder {
	b.compiler = c
	return b
}

// Logger sets the logger used for progress output.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Compile runs the compiler, strips kernels that were not whitelisted and
// writes the resulting PTX to the output directory.
func (b *Builder) Compile(ctx context.Context, phase Phase) (*Compiled, error) {
	if phase != PhasePTX {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPhase, phase)
	}
	if b.gencode.Kind != GencodePTX {
		return nil, fmt.Errorf("%w: gencode %s", ErrUnsupportedPhase, b.gencode.Kind)
	}
	if len(b.whitelist) == 0 {
		return nil, ErrEmptyWhitelist
	}
	if b.kernelDir == "" {
		return nil, errors.New("kernel directory not set")
	}

	src := filepath.Join(b.kernelDir, b.source)
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("kernel source: %w", err)
	}

	outDir := b.outDir
	if outDir == "" {
		outDir = filepath.Join(os.TempDir(), "ptxglue")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(b.source), filepath.Ext(b.source))
	rawPath := filepath.Join(outDir, base+".raw.ptx")
	outPath := filepath.Join(outDir, base+".ptx")

	b.logger.Debug("compiling kernel source",
		"compiler", b.compiler.Name(),
		"source", src,
		"capability", b.gencode.Capability,
		"output", rawPath)
	if err := b.compiler.CompilePTX(ctx, src, b.gencode.Capability, rawPath); err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &CompileError{Stage: "compile", Err: err}
	}

	raw, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, &CompileError{Stage: "compile", Err: fmt.Errorf("read compiler output: %w", err)}
	}
	mod, err := ParsePTX(string(raw))
	if err != nil {
		return nil, &CompileError{Stage: "filter", Err: err}
	}
	b.logger.Debug("parsed PTX", "entries", mod.Entries())

	filtered, err := mod.Filter(b.whitelist)
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &CompileError{Stage: "filter", Err: err}
	}

	ptx := filtered.String()
	if err := os.WriteFile(outPath, []byte(ptx), 0o644); err != nil {
		return nil, &CompileError{Stage: "write", Err: err}
	}
	b.logger.Info("wrote PTX", "path", outPath, "kernels", b.whitelist)

	return &Compiled{
		spec: GlueSpec{
			KernelDir: b.kernelDir,
			Source:    b.source,
			Gencode:   b.gencode,
			Kernels:   slices.Clone(b.whitelist),
			Output:    CompilerOutput{Phase: phase, Path: outPath},
		},
		ptx:    ptx,
		logger: b.logger,
	}, nil
}

// Compiled is the result of a successful Builder.Compile.
type Compiled struct {
	spec   GlueSpec
	ptx    string
	logger *slog.Logger
}

// Spec describes the compilation.
func (c *Compiled) Spec() *GlueSpec {
	return &c.spec
}

// PTX returns the filtered PTX text, identical to the file at
// Spec().Output.Path.
func (c *Compiled) PTX() string {
	return c.ptx
}

// WriteBindingsToFile asks glue to write bindings into path. A partially
// written file is removed on failure.
func (c *Compiled) WriteBindingsToFile(glue Glue, path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bindings directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bindings file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close bindings file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := glue.WriteBindings(&c.spec, w); err != nil {
		return fmt.Errorf("write bindings: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write bindings: %w", err)
	}
	c.logger.Info("wrote bindings", "path", path)
	return nil
}
