package regression

import (
	"fmt"
	"math"

	"finstat/domain/core"
	"finstat/domain/stats"
	"finstat/ports"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// singularTol is the relative singular value cutoff of the pseudo-inverse
const singularTol = 1e-12

// OLS implements ports.RegressionFitter
type OLS struct{}

// NewOLS creates an ordinary least squares fitter
func NewOLS() *OLS {
	return &OLS{}
}

// Fit estimates y = X b + e. Nonrobust fits use t inference with
// sigma^2 (X'X)^-1; HAC fits use the Newey-West sandwich with Bartlett
// weights and normal inference, without small-sample correction.
func (o *OLS) Fit(y []float64, X mat.Matrix, opts ports.CovOptions) (*stats.RegressionResult, error) {
	n, k := X.Dims()
	if n == 0 || k == 0 || len(y) == 0 {
		return nil, core.ErrEmptyInput
	}
	if len(y) != n {
		return nil, core.NewLengthMismatchError("endog", n, len(y))
	}
	if n <= k {
		return nil, core.NewInsufficientDataError(k, n)
	}
	if opts.MaxLags < 0 {
		return nil, fmt.Errorf("maxlags must be >= 0, got %d", opts.MaxLags)
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, core.NewNonFiniteError("endog", i, v)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if v := X.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, core.NewNonFiniteError(fmt.Sprintf("exog[:,%d]", j), i, v)
			}
		}
	}

	var xtx mat.Dense
	xtx.Mul(X.T(), X)
	xtxInv, rank, err := invert(&xtx)
	if err != nil {
		return nil, err
	}

	yVec := mat.NewVecDense(n, append([]float64(nil), y...))
	var xty, beta, fitted mat.VecDense
	xty.MulVec(X.T(), yVec)
	beta.MulVec(xtxInv, &xty)
	fitted.MulVec(X, &beta)

	resid := make([]float64, n)
	fit := make([]float64, n)
	for i := 0; i < n; i++ {
		fit[i] = fitted.AtVec(i)
		resid[i] = y[i] - fit[i]
	}

	result := &stats.RegressionResult{
		Params:    make([]float64, k),
		StdErrors: make([]float64, k),
		TValues:   make([]float64, k),
		PValues:   make([]float64, k),
		ConfInt:   make([][2]float64, k),
		Residuals: resid,
		Fitted:    fit,
		NObs:      n,
		DFResid:   n - rank,
		DFModel:   rank,
		SSR:       floats.Dot(resid, resid),
		CovType:   opts.Type,
	}
	if hasConstant(X) {
		result.DFModel = rank - 1
	}

	mean := floats.Sum(y) / float64(n)
	for _, v := range y {
		result.CenteredTSS += (v - mean) * (v - mean)
	}
	result.RSquared = 1 - result.SSR/result.CenteredTSS

	var cov *mat.Dense
	switch opts.Type {
	case stats.CovHAC:
		cov = hacCovariance(X, resid, xtxInv, opts.MaxLags)
		result.MaxLags = opts.MaxLags
		result.UseT = false
	case stats.CovNonRobust, "":
		result.CovType = stats.CovNonRobust
		cov = mat.DenseCopyOf(xtxInv)
		cov.Scale(result.SSR/float64(result.DFResid), cov)
		result.UseT = true
	default:
		return nil, fmt.Errorf("unsupported covariance type %q", opts.Type)
	}
	result.Cov = symmetrize(cov)

	var dist interface {
		Survival(float64) float64
		Quantile(float64) float64
	} = distuv.UnitNormal
	if result.UseT {
		dist = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(result.DFResid)}
	}
	q := dist.Quantile(0.975)

	for j := 0; j < k; j++ {
		b := beta.AtVec(j)
		se := math.Sqrt(result.Cov.At(j, j))
		tv := b / se
		result.Params[j] = b
		result.StdErrors[j] = se
		result.TValues[j] = tv
		result.PValues[j] = 2 * dist.Survival(math.Abs(tv))
		result.ConfInt[j] = [2]float64{b - q*se, b + q*se}
	}
	return result, nil
}

// invert returns (X'X)^-1, falling back to the SVD pseudo-inverse when the
// normal equations are singular or badly conditioned.
func invert(xtx *mat.Dense) (*mat.Dense, int, error) {
	k, _ := xtx.Dims()

	var inv mat.Dense
	if err := inv.Inverse(xtx); err == nil {
		return &inv, k, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(xtx, mat.SVDFull); !ok {
		return nil, 0, fmt.Errorf("%w: SVD factorization failed", core.ErrSingularDesign)
	}
	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	rank := 0
	cutoff := singularTol * values[0]
	sInv := mat.NewDiagDense(len(values), nil)
	for i, s := range values {
		if s > cutoff {
			sInv.SetDiag(i, 1/s)
			rank++
		}
	}
	if rank == 0 {
		return nil, 0, fmt.Errorf("%w: design matrix is zero", core.ErrSingularDesign)
	}

	var tmp, pinv mat.Dense
	tmp.Mul(&v, sInv)
	pinv.Mul(&tmp, u.T())
	return &pinv, rank, nil
}

// hacCovariance is the Newey-West sandwich (X'X)^-1 S (X'X)^-1 with
// S = G0 + sum_l w_l (G_l + G_l'), w_l = 1 - l/(maxLags+1).
func hacCovariance(X mat.Matrix, resid []float64, xtxInv *mat.Dense, maxLags int) *mat.Dense {
	n, k := X.Dims()
	xu := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			xu.Set(i, j, X.At(i, j)*resid[i])
		}
	}

	var s mat.Dense
	s.Mul(xu.T(), xu)
	for lag := 1; lag <= maxLags && lag < n; lag++ {
		weight := 1 - float64(lag)/float64(maxLags+1)
		lead := xu.Slice(lag, n, 0, k)
		lagged := xu.Slice(0, n-lag, 0, k)

		var gamma, gammaT mat.Dense
		gamma.Mul(lead.T(), lagged)
		gammaT.CloneFrom(gamma.T())
		gamma.Add(&gamma, &gammaT)
		gamma.Scale(weight, &gamma)
		s.Add(&s, &gamma)
	}

	var tmp, cov mat.Dense
	tmp.Mul(xtxInv, &s)
	cov.Mul(&tmp, xtxInv.T())
	return &cov
}

func symmetrize(a *mat.Dense) *mat.SymDense {
	k, _ := a.Dims()
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, (a.At(i, j)+a.At(j, i))/2)
		}
	}
	return sym
}

// hasConstant reports whether some column of X is a non-zero constant
func hasConstant(X mat.Matrix) bool {
	n, k := X.Dims()
	for j := 0; j < k; j++ {
		first := X.At(0, j)
		if first == 0 {
			continue
		}
		constant := true
		for i := 1; i < n; i++ {
			if X.At(i, j) != first {
				constant = false
				break
			}
		}
		if constant {
			return true
		}
	}
	return false
}
