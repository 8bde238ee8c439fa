// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for factorizations and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Tolerances are absolute, not relative. Inputs with entries far from
//     unit scale may need tuned values.
//   - The rotation budget is derived from n when left unset (0), so a single
//     Options value serves matrices of any size.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric tolerances.
const (
	// DefaultZeroTol is the pivot / divisor threshold below which a value is
	// treated as zero by LU, QR, Cholesky and the solvers.
	DefaultZeroTol = 1e-12

	// DefaultJacobiTol stops the Jacobi sweep once the largest off-diagonal
	// magnitude falls below it.
	DefaultJacobiTol = 1e-14

	// DefaultSymmetryTol is the maximum |A[i,j]-A[j,i]| accepted as symmetric.
	DefaultSymmetryTol = 1e-10

	// DefaultRankTol counts a singular value (or |R[j,j]|) towards the rank
	// only when strictly greater than it.
	DefaultRankTol = 1e-12

	// ResidualTol is the reconstruction quality bar: a healthy factorization of a
	// well-conditioned, unit-scale matrix has a Frobenius residual below it.
	ResidualTol = 1e-8

	// DefaultRotationsPerEntry scales the Jacobi budget: 200·n² rotations.
	DefaultRotationsPerEntry = 200

	// DefaultValidateNaNInf toggles strict finite-value checks on factorization input.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicZeroTolInvalid      = "matrix: WithZeroTol: tol must be finite, non-negative"
	panicJacobiTolInvalid    = "matrix: WithJacobiTol: tol must be finite, non-negative"
	panicSymmetryTolInvalid  = "matrix: WithSymmetryTol: tol must be finite, non-negative"
	panicRankTolInvalid      = "matrix: WithRankTol: tol must be finite, non-negative"
	panicMaxRotationsInvalid = "matrix: WithMaxRotations: budget must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept
// `...Option` and resolve them via gatherOptions.
type Options struct {
	zeroTol        float64 // DefaultZeroTol
	jacobiTol      float64 // DefaultJacobiTol
	symmetryTol    float64 // DefaultSymmetryTol
	rankTol        float64 // DefaultRankTol
	maxRotations   int     // 0 ⇒ DefaultRotationsPerEntry·n²
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithZeroTol sets the pivot threshold used by LU, QR, Cholesky and solvers.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Inputs:
//   - tol: non-negative finite threshold.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Raise it for data measured on a large scale; a pivot of 1e-9 in a matrix
//     of 1e6-sized entries is numerically zero.
func WithZeroTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicZeroTolInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithJacobiTol sets the off-diagonal convergence threshold of the Jacobi sweep.
// Panics when tol is NaN, ±Inf or negative.
func WithJacobiTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicJacobiTolInvalid)
	}

	return func(o *Options) { o.jacobiTol = tol }
}

// WithSymmetryTol sets the tolerance SpectralDecomposition uses to accept its
// input as symmetric. Panics when tol is NaN, ±Inf or negative.
func WithSymmetryTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSymmetryTolInvalid)
	}

	return func(o *Options) { o.symmetryTol = tol }
}

// WithRankTol sets the numerical-rank threshold for SVD and QR.
// Panics when tol is NaN, ±Inf or negative.
func WithRankTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithMaxRotations caps the number of Jacobi rotations.
// Implementation:
//   - Stage 1: validate budget > 0.
//   - Stage 2: return a setter overriding the derived 200·n² budget.
//
// Errors:
//   - Panics with a stable message when budget ≤ 0.
//
// Notes:
//   - Exhausting the budget makes SpectralDecomposition and SVD return
//     ErrNotConverged; nothing is silently truncated.
func WithMaxRotations(budget int) Option {
	if budget <= 0 {
		panic(panicMaxRotationsInvalid)
	}

	return func(o *Options) { o.maxRotations = budget }
}

// WithValidateNaNInf enables strict finite-value validation of factorization
// input (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite input then propagates into results as NaN instead of failing fast.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins for repeated setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ZeroTol reports the effective pivot threshold.
func (o Options) ZeroTol() float64 { return o.zeroTol }

// JacobiTol reports the effective Jacobi convergence threshold.
func (o Options) JacobiTol() float64 { return o.jacobiTol }

// SymmetryTol reports the effective symmetry tolerance.
func (o Options) SymmetryTol() float64 { return o.symmetryTol }

// RankTol reports the effective rank threshold.
func (o Options) RankTol() float64 { return o.rankTol }

// MaxRotations reports the rotation budget for an n×n input.
func (o Options) MaxRotations(n int) int { return o.rotationBudget(n) }

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		zeroTol:        DefaultZeroTol,
		jacobiTol:      DefaultJacobiTol,
		symmetryTol:    DefaultSymmetryTol,
		rankTol:        DefaultRankTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// rotationBudget returns the explicit budget or DefaultRotationsPerEntry·n².
// A 1×1 input still gets a positive budget so the loop guard stays uniform.
func (o Options) rotationBudget(n int) int {
	if o.maxRotations > 0 {
		return o.maxRotations
	}
	if n < 1 {
		n = 1
	}

	return DefaultRotationsPerEntry * n * n
}
