// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linalg/matrix"
)

// Configuration keys. Each is also a persistent flag and, upper-cased with
// dashes turned into underscores, an environment variable under envPrefix.
const (
	keyInput        = "input"
	keyConfig       = "config"
	keyZeroTol      = "zero-tol"
	keyJacobiTol    = "jacobi-tol"
	keyRankTol      = "rank-tol"
	keySymmetryTol  = "symmetry-tol"
	keyMaxRotations = "max-rotations"
	keyPrecision    = "precision"
	keyVerbose      = "verbose"

	envPrefix        = "LINALG"
	defaultPrecision = 6
	maxPrecision     = 17
)

// ErrInvalidSetting reports a flag, env or config value out of range.
var ErrInvalidSetting = errors.New("cli: invalid setting")

// settings is the resolved configuration for one run.
type settings struct {
	input        string
	zeroTol      float64
	jacobiTol    float64
	rankTol      float64
	symmetryTol  float64
	maxRotations int
	precision    int
	verbose      bool
}

// registerFlags installs the persistent flags with library defaults.
func registerFlags(fs *pflag.FlagSet) {
	fs.StringP(keyInput, "i", "", "Matrix file (one row per line); empty or - reads stdin")
	fs.StringP(keyConfig, "c", "", "Config file (yaml, toml or json)")
	fs.Float64(keyZeroTol, matrix.DefaultZeroTol, "Pivot / diagonal zero threshold")
	fs.Float64(keyJacobiTol, matrix.DefaultJacobiTol, "Jacobi off-diagonal convergence threshold")
	fs.Float64(keyRankTol, matrix.DefaultRankTol, "Singular value / QR rank threshold")
	fs.Float64(keySymmetryTol, matrix.DefaultSymmetryTol, "Symmetry check tolerance")
	fs.Int(keyMaxRotations, 0, "Jacobi rotation budget (0 = 200·n²)")
	fs.IntP(keyPrecision, "p", defaultPrecision, "Digits after the decimal point (-1 = shortest)")
	fs.BoolP(keyVerbose, "v", false, "Print tolerances and iteration counts to stderr")
}

// newViper returns a viper instance bound to fs and the LINALG_ environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("cli: bind flags: %w", err)
	}

	return v, nil
}

// loadSettings reads the optional config file, then resolves every key
// (flag > env > config file > default).
func loadSettings(v *viper.Viper) (settings, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("cli: read config %s: %w", path, err)
		}
	}

	s := settings{
		input:        v.GetString(keyInput),
		zeroTol:      v.GetFloat64(keyZeroTol),
		jacobiTol:    v.GetFloat64(keyJacobiTol),
		rankTol:      v.GetFloat64(keyRankTol),
		symmetryTol:  v.GetFloat64(keySymmetryTol),
		maxRotations: v.GetInt(keyMaxRotations),
		precision:    v.GetInt(keyPrecision),
		verbose:      v.GetBool(keyVerbose),
	}

	return s, s.validate()
}

// validate reports every out-of-range setting at once; each entry wraps
// ErrInvalidSetting.
func (s settings) validate() error {
	var result *multierror.Error
	tols := []struct {
		key string
		val float64
	}{
		{keyZeroTol, s.zeroTol},
		{keyJacobiTol, s.jacobiTol},
		{keyRankTol, s.rankTol},
		{keySymmetryTol, s.symmetryTol},
	}
	for _, t := range tols {
		if t.val < 0 || math.IsNaN(t.val) || math.IsInf(t.val, 0) {
			result = multierror.Append(result,
				fmt.Errorf("%w: %s=%v must be finite and >= 0", ErrInvalidSetting, t.key, t.val))
		}
	}
	if s.maxRotations < 0 {
		result = multierror.Append(result,
			fmt.Errorf("%w: %s=%d must be >= 0", ErrInvalidSetting, keyMaxRotations, s.maxRotations))
	}
	if s.precision < -1 || s.precision > maxPrecision {
		result = multierror.Append(result,
			fmt.Errorf("%w: %s=%d must be in [-1, %d]", ErrInvalidSetting, keyPrecision, s.precision, maxPrecision))
	}

	return result.ErrorOrNil()
}

// options converts validated settings into matrix options.
func (s settings) options() []matrix.Option {
	opts := []matrix.Option{
		matrix.WithZeroTol(s.zeroTol),
		matrix.WithJacobiTol(s.jacobiTol),
		matrix.WithRankTol(s.rankTol),
		matrix.WithSymmetryTol(s.symmetryTol),
	}
	if s.maxRotations > 0 {
		opts = append(opts, matrix.WithMaxRotations(s.maxRotations))
	}

	return opts
}
