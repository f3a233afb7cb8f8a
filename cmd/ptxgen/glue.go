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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/go-highway/stdsimd/internal/ptxglue"
)

// TestGlue emits a Go test file that embeds the compiled PTX and asserts it
// equals the reference PTX declared elsewhere in the package.
type TestGlue struct {
	Package        string
	Name           string
	SourceLabel    string // shown in the header, e.g. "kernels/lib.cu"
	ReferenceIdent string
}

// NewTestGlue builds a TestGlue from a config.
func NewTestGlue(cfg *Config) *TestGlue {
	return &TestGlue{
		Package:        cfg.Package,
		Name:           cfg.Name,
		SourceLabel:    path.Join(filepath.ToSlash(cfg.KernelDir), cfg.Source),
		ReferenceIdent: cfg.ReferenceIdent,
	}
}

// ConstName returns the identifier holding the compiled PTX,
// e.g. "compiledSyncthreadsPTX" for name "syncthreads".
func (g *TestGlue) ConstName() string {
	caser := cases.Title(language.English)
	words := strings.FieldsFunc(g.Name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	sb.WriteString("compiled")
	for _, w := range words {
		sb.WriteString(caser.String(w))
	}
	sb.WriteString("PTX")
	return sb.String()
}

// WriteBindings implements ptxglue.Glue.
func (g *TestGlue) WriteBindings(spec *ptxglue.GlueSpec, w io.Writer) error {
	ptx, err := os.ReadFile(spec.Output.Path)
	if err != nil {
		return fmt.Errorf("read compiled PTX: %w", err)
	}

	src, err := g.render(spec, string(ptx))
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// render produces the formatted test source.
func (g *TestGlue) render(spec *ptxglue.GlueSpec, ptx string) ([]byte, error) {
	constName := g.ConstName()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ptxgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Source: %s (%s)\n\n", g.SourceLabel, spec.Gencode.Capability)
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "import (\n\t\"testing\"\n\n\t\"github.com/stretchr/testify/require\"\n)\n\n")

	fmt.Fprintf(&buf, "// %s is the PTX compiled from %s.\n", constName, g.SourceLabel)
	fmt.Fprintf(&buf, "const %s = %s\n\n", constName, goStringLiteral(ptx))

	fmt.Fprintf(&buf, "func TestPTXEqualToReference(t *testing.T) {\n")
	fmt.Fprintf(&buf, "\trequire.Equal(t, %s, %s)\n", g.ReferenceIdent, constName)
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "func TestPTXWhitelistedKernels(t *testing.T) {\n")
	fmt.Fprintf(&buf, "\tfor _, kernel := range []string{\n")
	for _, k := range spec.Kernels {
		fmt.Fprintf(&buf, "\t\t%s,\n", strconv.Quote(k))
	}
	fmt.Fprintf(&buf, "\t} {\n")
	fmt.Fprintf(&buf, "\t\tt.Run(kernel, func(t *testing.T) {\n")
	fmt.Fprintf(&buf, "\t\t\trequire.Contains(t, %s, \".entry \"+kernel)\n", constName)
	fmt.Fprintf(&buf, "\t\t})\n")
	fmt.Fprintf(&buf, "\t}\n")
	fmt.Fprintf(&buf, "}\n")

	// FormatOnly keeps the output independent of the local module cache.
	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}
	formatted, err := imports.Process(g.Package+"_ptx_generated_test.go", buf.Bytes(), opts)
	if err != nil {
		return nil, fmt.Errorf("format generated test: %w", err)
	}
	return formatted, nil
}

// goStringLiteral quotes s, preferring a raw string so the PTX stays
// readable in the generated file.
func goStringLiteral(s string) string {
	if strings.ContainsAny(s, "`\r") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
