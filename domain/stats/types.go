package stats

import (
	"fmt"
	"strings"

	"finstat/domain/core"

	"gonum.org/v1/gonum/mat"
)

// Method selects the resampling scheme used by the bootstrap
type Method string

const (
	MethodStationary Method = "stationary" // geometric block lengths
	MethodCircular   Method = "circular"   // fixed-length wrapping blocks
	MethodIID        Method = "iid"        // single observations with replacement
)

// ParseMethod accepts the short ('s', 'c', 'i') and long names of a method
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "s", "stationary":
		return MethodStationary, nil
	case "c", "circular":
		return MethodCircular, nil
	case "i", "iid":
		return MethodIID, nil
	}
	return "", fmt.Errorf("%w %q: choose 's' (stationary), 'c' (circular), or 'i' (iid)", core.ErrUnknownMethod, name)
}

// Short returns the single-letter code of the method
func (m Method) Short() string {
	if m == "" {
		return ""
	}
	return string(m[0])
}

// Valid reports whether m is one of the known methods
func (m Method) Valid() bool {
	return m == MethodStationary || m == MethodCircular || m == MethodIID
}

// BlockLengths holds the optimal block lengths estimated for one series
type BlockLengths struct {
	Stationary float64 `json:"stationary"`
	Circular   float64 `json:"circular"`
}

// MaxBlockLengths returns the column-wise maximum of each length
func MaxBlockLengths(lengths []BlockLengths) BlockLengths {
	var out BlockLengths
	for i, l := range lengths {
		if i == 0 || l.Stationary > out.Stationary {
			out.Stationary = l.Stationary
		}
		if i == 0 || l.Circular > out.Circular {
			out.Circular = l.Circular
		}
	}
	return out
}

// Interval is a two-sided confidence interval for one statistic dimension
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns Upper - Lower
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether v lies inside the closed interval
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// IntervalTable is the bootstrap result: one row per output dimension of
// the statistic.
type IntervalTable struct {
	Method          Method       `json:"method"`
	Samples         int          `json:"samples"`
	Seed            int64        `json:"seed"`
	BlockLengths    BlockLengths `json:"block_lengths"`
	LowerPercentile float64      `json:"lower_percentile"`
	UpperPercentile float64      `json:"upper_percentile"`
	Rows            []Interval   `json:"rows"`
	Fingerprint     core.Hash    `json:"fingerprint"` // hash of the resampling inputs
}

// CovType names the covariance estimator behind a regression fit
type CovType string

const (
	CovNonRobust CovType = "nonrobust"
	CovHAC       CovType = "HAC"
)

// RegressionResult is the fitted OLS model with its inference.
// Param-indexed slices share the column order of the design matrix.
type RegressionResult struct {
	Params    []float64    `json:"params"`
	StdErrors []float64    `json:"std_errors"`
	TValues   []float64    `json:"t_values"`
	PValues   []float64    `json:"p_values"`
	ConfInt   [][2]float64 `json:"conf_int"` // 95%

	Residuals []float64 `json:"-"`
	Fitted    []float64 `json:"-"`

	NObs        int     `json:"nobs"`
	DFModel     int     `json:"df_model"`
	DFResid     int     `json:"df_resid"`
	SSR         float64 `json:"ssr"`
	CenteredTSS float64 `json:"centered_tss"`
	RSquared    float64 `json:"r_squared"`

	CovType CovType       `json:"cov_type"`
	MaxLags int           `json:"max_lags,omitempty"`
	UseT    bool          `json:"use_t"` // t or normal reference distribution
	Cov     *mat.SymDense `json:"-"`
}

// Intercept returns the first parameter with its standard error, test
// statistic and p-value. For a constant-only design this is the whole model.
func (r *RegressionResult) Intercept() (param, stdErr, tValue, pValue float64) {
	if r == nil || len(r.Params) == 0 {
		return 0, 0, 0, 0
	}
	return r.Params[0], r.StdErrors[0], r.TValues[0], r.PValues[0]
}

// Summary renders a plain-text coefficient table
func (r *RegressionResult) Summary() string {
	var b strings.Builder
	stat := "z"
	if r.UseT {
		stat = "t"
	}
	fmt.Fprintf(&b, "OLS  nobs=%d  df_resid=%d  cov=%s", r.NObs, r.DFResid, r.CovType)
	if r.CovType == CovHAC {
		fmt.Fprintf(&b, "(maxlags=%d)", r.MaxLags)
	}
	fmt.Fprintf(&b, "  R2=%.4f\n", r.RSquared)
	fmt.Fprintf(&b, "%6s %12s %12s %10s %8s %12s %12s\n", "", "coef", "std err", stat, "P>|"+stat+"|", "[0.025", "0.975]")
	for i := range r.Params {
		fmt.Fprintf(&b, "%6s %12.6g %12.6g %10.4f %8.4f %12.6g %12.6g\n",
			fmt.Sprintf("x%d", i), r.Params[i], r.StdErrors[i], r.TValues[i], r.PValues[i],
			r.ConfInt[i][0], r.ConfInt[i][1])
	}
	return b.String()
}
