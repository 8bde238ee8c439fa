// SPDX-License-Identifier: MIT
// Package cli wires the linalg command tree: cobra for commands and flags,
// viper for flag / environment / config-file resolution.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linalg/internal/textio"
	"github.com/katalvlaran/linalg/matrix"
)

// app carries the state shared by every subcommand of one root.
type app struct {
	v   *viper.Viper
	cfg settings
}

// Execute runs the linalg root command against os.Args.
func Execute() error {
	root, err := NewRootCommand()
	if err != nil {
		return err
	}

	return root.Execute()
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() (*cobra.Command, error) {
	a := &app{}
	root := &cobra.Command{
		Use:   "linalg",
		Short: "Dense linear-algebra factorizations on small matrices.",
		Long: `linalg reads a matrix (one row per line, entries separated by
whitespace or commas, '#' comments allowed) and prints a factorization
together with its reconstruction error.

Every persistent flag can also be set from a config file (--config) or from
the environment as LINALG_<FLAG>, e.g. LINALG_ZERO_TOL=1e-10.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadSettings(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
	}
	registerFlags(root.PersistentFlags())

	v, err := newViper(root.PersistentFlags())
	if err != nil {
		return nil, err
	}
	a.v = v

	root.AddCommand(
		newLUCommand(a),
		newQRCommand(a),
		newCholeskyCommand(a),
		newEigenCommand(a),
		newSVDCommand(a),
		newDetCommand(a),
		newInverseCommand(a),
		newSolveCommand(a),
	)

	return root, nil
}

// readInput loads the matrix named by --input, or stdin.
func (a *app) readInput(cmd *cobra.Command) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	if a.cfg.input == "" || a.cfg.input == "-" {
		m, err = textio.ReadMatrix(cmd.InOrStdin())
	} else {
		m, err = textio.ReadMatrixFile(a.cfg.input)
	}
	if err != nil {
		return nil, err
	}
	a.logf(cmd, "input %dx%d", m.Rows(), m.Cols())

	return m, nil
}

// logf writes a diagnostic line to stderr when --verbose is set.
func (a *app) logf(cmd *cobra.Command, format string, args ...any) {
	if !a.cfg.verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "linalg: "+format+"\n", args...)
}

// logOptions prints the effective tolerances in verbose mode.
func (a *app) logOptions(cmd *cobra.Command, n int) {
	o := matrix.NewOptions(a.cfg.options()...)
	a.logf(cmd, "zero-tol=%g jacobi-tol=%g rank-tol=%g symmetry-tol=%g max-rotations=%d",
		o.ZeroTol(), o.JacobiTol(), o.RankTol(), o.SymmetryTol(), o.MaxRotations(n))
}

// printer binds an output stream to the configured precision.
type printer struct {
	w    io.Writer
	prec int
	err  error
}

func (a *app) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), prec: a.cfg.precision}
}

func (p *printer) matrix(label string, m matrix.Matrix) {
	if p.err == nil {
		p.err = textio.WriteMatrix(p.w, label, m, p.prec)
	}
}

func (p *printer) vector(label string, v []float64) {
	if p.err == nil {
		p.err = textio.WriteVector(p.w, label, v, p.prec)
	}
}

func (p *printer) scalar(label string, v float64) {
	if p.err == nil {
		p.err = textio.WriteScalar(p.w, label, v, p.prec)
	}
}

// line prints free-form text; diagnostics use it with %.3e.
func (p *printer) line(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
	}
}

// checkResidual prints the reconstruction error and warns on stderr when it
// exceeds ResidualTol·max(1, ‖A‖_F).
func (a *app) checkResidual(cmd *cobra.Command, p *printer, label string, in matrix.Matrix, e float64) {
	p.line("%s: %.3e", label, e)
	norm, err := matrix.FrobeniusNorm(in)
	if err != nil {
		return
	}
	if limit := matrix.ResidualTol * max(1, norm); e > limit {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s %.3e exceeds %.3e\n", label, e, limit)
	}
}
