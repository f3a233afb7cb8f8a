package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/go-highway/stdsimd/internal/ptxglue"
)

// ErrReferenceMismatch is returned by check when the compiled PTX differs
// from the reference.
var ErrReferenceMismatch = errors.New("compiled PTX differs from reference")

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compile kernels and diff the PTX against the reference file",
		Long: `check compiles the kernels like generate does, but instead of writing a
test file it compares the PTX with the reference file named in the config and
prints a unified diff when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootOpts)
		},
	}
}

func runCheck(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Reference == "" {
		return errors.New("check needs a reference file in the config")
	}
	ref, err := os.ReadFile(cfg.resolve(cfg.Reference))
	if err != nil {
		return fmt.Errorf("read reference: %w", err)
	}

	b, err := cfg.Builder()
	if err != nil {
		return err
	}
	compiled, err := b.Logger(opts.logger(cmd.ErrOrStderr())).Compile(cmd.Context(), ptxglue.PhasePTX)
	if err != nil {
		return fmt.Errorf("compile to ptx: %w", err)
	}

	diff, err := diffPTX(string(ref), compiled.PTX(), cfg.Reference)
	if err != nil {
		return err
	}
	if diff != "" {
		fmt.Fprint(cmd.OutOrStdout(), diff)
		return ErrReferenceMismatch
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PTX matches %s\n", cfg.Reference)
	return nil
}

// diffPTX returns a unified diff of want and got, or "" when equal.
func diffPTX(want, got, name string) (string, error) {
	if want == got {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name,
		ToFile:   "compiled",
		Context:  3,
	})
}
