package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-highway/stdsimd/internal/ptxglue"
)

// Config is the build spec read from ptxgen.yaml. Relative paths are
// resolved against the directory holding the config file.
type Config struct {
	// Package is the Go package of the generated test.
	Package string `yaml:"package"`

	// Name is used to derive identifiers. Defaults to the source base name.
	Name string `yaml:"name,omitempty"`

	KernelDir     string   `yaml:"kernel_dir"`
	Source        string   `yaml:"source,omitempty"`
	Capability    string   `yaml:"capability,omitempty"`
	Compiler      string   `yaml:"compiler,omitempty"`
	CompilerPath  string   `yaml:"compiler_path,omitempty"`
	CompilerFlags []string `yaml:"compiler_flags,omitempty"`
	Whitelist     []string `yaml:"whitelist"`

	// OutDir receives the compiled PTX. Defaults to $TMPDIR/ptxglue.
	OutDir string `yaml:"out_dir,omitempty"`

	// Output is the generated test file.
	Output string `yaml:"output,omitempty"`

	// Reference is the checked-in PTX file, used by check.
	Reference string `yaml:"reference,omitempty"`

	// ReferenceIdent is the package-level string holding the reference PTX.
	ReferenceIdent string `yaml:"reference_ident,omitempty"`

	baseDir string
}

// Defaults applied by LoadConfig.
const (
	defaultOutput         = "ptx_generated_test.go"
	defaultReferenceIdent = "referencePTX"
	defaultCompiler       = "clang"
)

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = ptxglue.DefaultSource
	}
	if c.Capability == "" {
		c.Capability = string(ptxglue.CC35)
	}
	if c.Compiler == "" {
		c.Compiler = defaultCompiler
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.ReferenceIdent == "" {
		c.ReferenceIdent = defaultReferenceIdent
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(c.Source), filepath.Ext(c.Source))
	}
}

// Validate checks that the config can drive a build.
func (c *Config) Validate() error {
	var errs []error
	if c.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}
	if c.KernelDir == "" {
		errs = append(errs, errors.New("kernel_dir is required"))
	}
	if len(c.Whitelist) == 0 {
		errs = append(errs, ptxglue.ErrEmptyWhitelist)
	}
	if _, err := ptxglue.ParseCapability(c.Capability); err != nil {
		errs = append(errs, err)
	}
	if _, err := ptxglue.NewCompiler(c.Compiler, c.CompilerPath); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// resolve interprets p relative to the config file.
func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// Builder returns a ptxglue.Builder configured from c.
func (c *Config) Builder() (*ptxglue.Builder, error) {
	cc, err := ptxglue.ParseCapability(c.Capability)
	if err != nil {
		return nil, err
	}
	path := c.CompilerPath
	if strings.ContainsRune(path, filepath.Separator) {
		path = c.resolve(path)
	}
	compiler, err := ptxglue.NewCompiler(c.Compiler, path)
	if err != nil {
		return nil, err
	}
	switch tc := compiler.(type) {
	case *ptxglue.Clang:
		tc.ExtraFlags = c.CompilerFlags
	case *ptxglue.NVCC:
		tc.ExtraFlags = c.CompilerFlags
	}

	b := ptxglue.NewBuilder().
		KernelDir(c.resolve(c.KernelDir)).
		Source(c.Source).
		Gencode(ptxglue.PTXGencode(cc)).
		Compiler(compiler).
		OutDir(c.resolve(c.OutDir))
	for _, k := range c.Whitelist {
		b.WhitelistKernel(k)
	}
	return b, nil
}
