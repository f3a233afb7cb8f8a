package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-highway/stdsimd/internal/ptxglue"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath   string
	Capability   string
	Compiler     string
	CompilerPath string
	OutDir       string
	Verbose      bool
}

// NewRootCommand creates the root command for ptxgen.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ptxgen",
		Short: "Compile GPU kernels to PTX and generate reference tests",
		Long: `ptxgen compiles a kernel source to PTX with an external toolchain
(clang or nvcc), keeps only the whitelisted kernels, and generates a Go test
asserting the compiled PTX equals the checked-in reference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "ptxgen.yaml", "build spec file")
	cmd.PersistentFlags().StringVar(&opts.Capability, "capability", "", "override compute capability (e.g. sm_35, 7.0)")
	cmd.PersistentFlags().StringVar(&opts.Compiler, "compiler", "", "override compiler (clang|nvcc)")
	cmd.PersistentFlags().StringVar(&opts.CompilerPath, "compiler-path", "", "override compiler binary")
	cmd.PersistentFlags().StringVar(&opts.OutDir, "out-dir", "", "override PTX output directory")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func (o *RootOptions) loadConfig() (*Config, error) {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.Capability != "" {
		cfg.Capability = o.Capability
	}
	if o.Compiler != "" {
		cfg.Compiler = o.Compiler
	}
	if o.CompilerPath != "" {
		cfg.CompilerPath = o.CompilerPath
	}
	if o.OutDir != "" {
		cfg.OutDir = o.OutDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger returns a text logger on w; debug level when verbose.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Compile kernels and write the generated reference test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootOpts)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	b, err := cfg.Builder()
	if err != nil {
		return err
	}

	compiled, err := b.Logger(opts.logger(cmd.ErrOrStderr())).Compile(cmd.Context(), ptxglue.PhasePTX)
	if err != nil {
		return fmt.Errorf("compile to ptx: %w", err)
	}

	output := cfg.resolve(cfg.Output)
	if err := compiled.WriteBindingsToFile(NewTestGlue(cfg), output); err != nil {
		return fmt.Errorf("generate test bindings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s for kernels: %v\n", cfg.Output, cfg.Whitelist)
	return nil
}
