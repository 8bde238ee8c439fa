// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/internal/spectrum"
	"github.com/katalvlaran/linalg/internal/textio"
	"github.com/katalvlaran/linalg/matrix"
)

const (
	labelReconstruction = "reconstruction error"
	labelOrthogonality  = "orthogonality error"

	flagRHS        = "rhs"
	flagPlot       = "plot"
	flagCovariance = "covariance"
)

func newLUCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lu",
		Short: "LU factorization with partial pivoting (P·A = L·U)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			a.logOptions(cmd, in.Rows())
			f, err := matrix.LU(in, a.cfg.options()...)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.line("pivot: %v", f.Pivot())
			p.matrix("P", f.P())
			p.matrix("L", f.L())
			p.matrix("U", f.U())
			p.scalar("det", f.Determinant())
			e, err := matrix.LUReconstructionError(in, f)
			if err != nil {
				return err
			}
			a.checkResidual(cmd, p, labelReconstruction, in, e)

			return p.err
		},
	}
}

func newQRCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "qr",
		Short: "QR factorization by modified Gram-Schmidt (A = Q·R)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			a.logOptions(cmd, in.Cols())
			f, err := matrix.QR(in, a.cfg.options()...)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.matrix("Q", f.Q())
			p.matrix("R", f.R())
			p.line("rank: %d", f.Rank())
			e, err := matrix.QRReconstructionError(in, f)
			if err != nil {
				return err
			}
			a.checkResidual(cmd, p, labelReconstruction, in, e)
			o, err := matrix.OrthogonalityError(f.Q())
			if err != nil {
				return err
			}
			p.line("%s: %.3e", labelOrthogonality, o)

			return p.err
		},
	}
}

func newCholeskyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cholesky",
		Short: "Cholesky factorization of a symmetric positive-definite matrix (A = L·Lᵀ)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			a.logOptions(cmd, in.Rows())
			f, err := matrix.Cholesky(in, a.cfg.options()...)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.matrix("L", f.L())
			p.scalar("det", f.Determinant())
			e, err := matrix.CholeskyReconstructionError(in, f)
			if err != nil {
				return err
			}
			a.checkResidual(cmd, p, labelReconstruction, in, e)

			return p.err
		},
	}
}

func newEigenCommand(a *app) *cobra.Command {
	var (
		covariance bool
		plotPath   string
	)
	cmd := &cobra.Command{
		Use:   "eigen",
		Short: "Symmetric eigendecomposition by Jacobi rotations (A = Q·Λ·Qᵀ)",
		Long: `eigen decomposes a symmetric matrix. With --covariance the input is
read as a data matrix (rows = observations) and its sample covariance is
decomposed instead, which gives the principal components.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if covariance {
				if in, _, err = matrix.Covariance(in); err != nil {
					return err
				}
				p.matrix("covariance", in)
			}
			a.logOptions(cmd, in.Rows())

			f, err := matrix.SpectralDecomposition(in, a.cfg.options()...)
			if err != nil {
				return err
			}
			a.logf(cmd, "jacobi rotations: %d", f.Rotations())

			p.vector("eigenvalues", f.Values())
			p.matrix("eigenvectors", f.Q())
			p.line("rotations: %d", f.Rotations())
			e, err := matrix.SpectralReconstructionError(in, f)
			if err != nil {
				return err
			}
			a.checkResidual(cmd, p, labelReconstruction, in, e)
			o, err := matrix.OrthogonalityError(f.Q())
			if err != nil {
				return err
			}
			p.line("%s: %.3e", labelOrthogonality, o)

			if plotPath != "" {
				s := spectrum.Scree{Title: "Eigenvalue spectrum", YLabel: "eigenvalue", Values: f.Values(), Cumulative: covariance}
				if err = s.Save(plotPath, 0, 0); err != nil {
					return err
				}
				p.line("plot: %s", plotPath)
			}

			return p.err
		},
	}
	cmd.Flags().BoolVar(&covariance, flagCovariance, false, "Decompose the sample covariance of the input rows")
	cmd.Flags().StringVar(&plotPath, flagPlot, "", "Write a scree plot (.png, .svg, .pdf)")

	return cmd
}

func newSVDCommand(a *app) *cobra.Command {
	var plotPath string
	cmd := &cobra.Command{
		Use:   "svd",
		Short: "Singular value decomposition via AᵀA (A = U·S·Vᵀ)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			a.logOptions(cmd, in.Cols())
			f, err := matrix.SVD(in, a.cfg.options()...)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.vector("singular values", f.S())
			p.line("rank: %d", f.Rank())
			if f.Rank() > 0 {
				p.matrix("U", f.U())
			} else {
				p.matrix("U", nil)
			}
			p.matrix("V", f.V())
			p.line("condition: %.6g", f.Condition())
			e, err := matrix.SVDReconstructionError(in, f)
			if err != nil {
				return err
			}
			a.checkResidual(cmd, p, labelReconstruction, in, e)

			if plotPath != "" {
				s := spectrum.Scree{Title: "Singular value spectrum", YLabel: "singular value", Values: f.Values()}
				if err = s.Save(plotPath, 0, 0); err != nil {
					return err
				}
				p.line("plot: %s", plotPath)
			}

			return p.err
		},
	}
	cmd.Flags().StringVar(&plotPath, flagPlot, "", "Write a scree plot (.png, .svg, .pdf)")

	return cmd
}

func newDetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Determinant via LU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			d, err := matrix.Determinant(in, a.cfg.options()...)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			p.scalar("det", d)

			return p.err
		},
	}
}

func newInverseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Matrix inverse via LU; fails on singular input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			inv, err := matrix.Inverse(in, a.cfg.options()...)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			p.matrix("inverse", inv)

			return p.err
		},
	}
}

func newSolveCommand(a *app) *cobra.Command {
	var rhs string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = b (LU when square, QR least squares when tall)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			b, err := parseRHS(rhs)
			if err != nil {
				return err
			}

			var x []float64
			method := "lu"
			if in.Rows() == in.Cols() {
				x, err = matrix.Solve(in, b, a.cfg.options()...)
			} else {
				method = "qr least squares"
				x, err = solveLeastSquares(in, b, a.cfg.options()...)
			}
			if err != nil {
				return err
			}

			ax, err := matrix.MatVec(in, x)
			if err != nil {
				return err
			}
			floats.Sub(ax, b)

			p := a.printer(cmd)
			p.line("method: %s", method)
			p.vector("x", x)
			p.line("residual: %.3e", floats.Norm(ax, 2))

			return p.err
		},
	}
	cmd.Flags().StringVar(&rhs, flagRHS, "", `Right-hand side, e.g. "1,2,3"`)
	_ = cmd.MarkFlagRequired(flagRHS)

	return cmd
}

func solveLeastSquares(in matrix.Matrix, b []float64, opts ...matrix.Option) ([]float64, error) {
	f, err := matrix.QR(in, opts...)
	if err != nil {
		return nil, err
	}

	return matrix.SolveQR(f, b)
}

func parseRHS(s string) ([]float64, error) {
	b, err := textio.ParseVector(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagRHS, err)
	}

	return b, nil
}
