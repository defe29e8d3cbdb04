// Package fit implements the distribution fitter (C2): outlier-aware
// candidate selection among seven continuous distributions, scored by a
// one-sample Kolmogorov-Smirnov goodness-of-fit test, per spec.md §4.2.
package fit

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/leeward-labs/fixtura/hint"
)

// candidate describes one distribution family's fitting contract.
type candidate struct {
	kind      hint.DistKind
	minSample int
	support   func(samples []float64) bool
	fitCDF    func(samples []float64) (cdf func(float64) float64, params []float64)
}

// candidates is the fixed, ordered list spec.md §4.2 names: normal,
// uniform, gamma, lognormal, exponential, beta, weibull.
var candidates = []candidate{
	{hint.DistNormal, 15, always, fitNormal},
	{hint.DistUniform, 6, always, fitUniform},
	{hint.DistGamma, 20, strictlyPositive, fitGamma},
	{hint.DistLogNormal, 15, strictlyPositive, fitLogNormal},
	{hint.DistExponential, 10, nonNegative, fitExponential},
	{hint.DistBeta, 12, inUnitInterval, fitBeta},
	{hint.DistWeibull, 18, strictlyPositive, fitWeibull},
}

// Fit selects the best-fitting distribution for samples per spec.md §4.2,
// returning a NUMBER hint carrying it. ok is false when no candidate
// qualifies; callers fall back to a plain NUMBER hint with observed bounds.
func Fit(samples []float64) (result hint.NumberHint, ok bool) {
	clean := removeOutliers(samples)
	if len(clean) == 0 {
		clean = samples
	}

	lo, hi := iqrBounds(clean, 1.5)

	var (
		bestKind   hint.DistKind
		bestParams []float64
		bestStat   = math.Inf(1)
		found      bool
	)

	for _, c := range candidates {
		if len(clean) < c.minSample || !c.support(clean) {
			continue
		}

		cdf, params := c.fitCDF(clean)

		stat, pValue := kolmogorovSmirnov(clean, cdf)
		if pValue < 0.05 {
			continue
		}

		if stat < bestStat {
			bestStat = stat
			bestKind = c.kind
			bestParams = params
			found = true
		}
	}

	if !found {
		return hint.NumberHint{}, false
	}

	prec := Precision(samples)

	return hint.NumberHint{
		Min:  lo,
		Max:  hi,
		Prec: precPtr(prec),
		Dist: &hint.Distribution{Kind: bestKind, Params: bestParams},
	}, true
}

// Precision is the maximum decimal-place count observed among non-integral
// values in samples, capped at 6; nil (represented here as -1) when every
// value is integral, matching spec.md §4.2.
func Precision(samples []float64) int {
	maxPrec := -1

	for _, v := range samples {
		if v == math.Trunc(v) {
			continue
		}

		p := decimalPlaces(v)
		if p > maxPrec {
			maxPrec = p
		}

		if maxPrec >= 6 {
			return 6
		}
	}

	return maxPrec
}

func precPtr(p int) *int {
	if p < 0 {
		return nil
	}

	if p > 6 {
		p = 6
	}

	return &p
}

func decimalPlaces(v float64) int {
	for p := 0; p <= 6; p++ {
		scaled := v * math.Pow(10, float64(p))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return p
		}
	}

	return 6
}

func always([]float64) bool { return true }

func strictlyPositive(samples []float64) bool {
	for _, v := range samples {
		if v <= 0 {
			return false
		}
	}

	return true
}

func nonNegative(samples []float64) bool {
	for _, v := range samples {
		if v < 0 {
			return false
		}
	}

	return true
}

func inUnitInterval(samples []float64) bool {
	for _, v := range samples {
		if v < 0 || v > 1 {
			return false
		}
	}

	return true
}

// iqrBounds returns [Q1-k*IQR, Q3+k*IQR].
func iqrBounds(samples []float64, k float64) (float64, float64) {
	q, err := stats.Quartile(stats.Float64Data(samples))
	if err != nil {
		lo, hi := minMax(samples)
		return lo, hi
	}

	iqr := q.Q3 - q.Q1

	return q.Q1 - k*iqr, q.Q3 + k*iqr
}

// removeOutliers drops samples outside [Q1-3*IQR, Q3+3*IQR], the "outlier
// removal" bound spec.md §4.2 (and the glossary's "IQR bounds" entry)
// distinguishes from the tighter 1.5x "recording" bound.
func removeOutliers(samples []float64) []float64 {
	lo, hi := iqrBounds(samples, 3.0)

	clean := make([]float64, 0, len(samples))

	for _, v := range samples {
		if v >= lo && v <= hi {
			clean = append(clean, v)
		}
	}

	return clean
}

func minMax(samples []float64) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	lo, hi := samples[0], samples[0]

	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// kolmogorovSmirnov runs a one-sample KS test of samples against cdf,
// returning the D statistic and its asymptotic p-value.
func kolmogorovSmirnov(samples []float64, cdf func(float64) float64) (stat, pValue float64) {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	n := float64(len(sorted))

	var d float64

	for i, x := range sorted {
		empiricalAbove := float64(i+1) / n
		empiricalBelow := float64(i) / n
		theoretical := cdf(x)

		if diff := math.Abs(empiricalAbove - theoretical); diff > d {
			d = diff
		}

		if diff := math.Abs(theoretical - empiricalBelow); diff > d {
			d = diff
		}
	}

	return d, ksPValue(d, int(n))
}

// ksPValue is the standard asymptotic Kolmogorov distribution approximation
// (Numerical Recipes §14.3).
func ksPValue(d float64, n int) float64 {
	if n == 0 {
		return 1
	}

	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d

	sum := 0.0
	sign := 1.0

	for j := 1; j <= 100; j++ {
		term := sign * math.Exp(-2 * float64(j) * float64(j) * lambda * lambda)
		sum += term
		sign = -sign

		if math.Abs(term) < 1e-10 {
			break
		}
	}

	p := 2 * sum
	if p < 0 {
		p = 0
	}

	if p > 1 {
		p = 1
	}

	return p
}

func fitNormal(samples []float64) (func(float64) float64, []float64) {
	mu, _ := stats.Mean(stats.Float64Data(samples))
	sigma := populationStdDev(samples, mu)

	d := distuv.Normal{Mu: mu, Sigma: sigma}

	return d.CDF, []float64{mu, sigma}
}

func fitUniform(samples []float64) (func(float64) float64, []float64) {
	lo, hi := minMax(samples)
	d := distuv.Uniform{Min: lo, Max: hi}

	return d.CDF, []float64{lo, hi}
}

func fitGamma(samples []float64) (func(float64) float64, []float64) {
	mean, _ := stats.Mean(stats.Float64Data(samples))
	variance := populationVariance(samples, mean)

	if variance <= 0 {
		variance = 1e-6
	}

	shape := mean * mean / variance
	rate := mean / variance

	d := distuv.Gamma{Alpha: shape, Beta: rate}

	return d.CDF, []float64{shape, rate, 0}
}

func fitLogNormal(samples []float64) (func(float64) float64, []float64) {
	logs := make([]float64, len(samples))
	for i, v := range samples {
		logs[i] = math.Log(v)
	}

	mu, _ := stats.Mean(stats.Float64Data(logs))
	sigma := populationStdDev(logs, mu)

	d := distuv.LogNormal{Mu: mu, Sigma: sigma}

	return d.CDF, []float64{mu, sigma, 0}
}

func fitExponential(samples []float64) (func(float64) float64, []float64) {
	mean, _ := stats.Mean(stats.Float64Data(samples))
	if mean <= 0 {
		mean = 1e-6
	}

	rate := 1 / mean
	d := distuv.Exponential{Rate: rate}

	return d.CDF, []float64{rate, 0}
}

func fitBeta(samples []float64) (func(float64) float64, []float64) {
	mean, _ := stats.Mean(stats.Float64Data(samples))
	variance := populationVariance(samples, mean)

	if variance <= 0 {
		variance = 1e-6
	}

	common := mean*(1-mean)/variance - 1
	if common <= 0 {
		common = 1e-3
	}

	alpha := mean * common
	beta := (1 - mean) * common

	if alpha <= 0 {
		alpha = 1e-3
	}

	if beta <= 0 {
		beta = 1e-3
	}

	d := distuv.Beta{Alpha: alpha, Beta: beta}

	return d.CDF, []float64{alpha, beta, 0, 1}
}

func fitWeibull(samples []float64) (func(float64) float64, []float64) {
	mean, _ := stats.Mean(stats.Float64Data(samples))
	sigma := populationStdDev(samples, mean)

	cv := sigma / mean
	if cv <= 0 {
		cv = 1e-3
	}

	// Justel's approximation for the Weibull shape from the coefficient
	// of variation.
	shape := math.Pow(cv, -1.086)
	scale := mean / math.Gamma(1+1/shape)

	d := distuv.Weibull{K: shape, Lambda: scale}

	return d.CDF, []float64{shape, 0, scale}
}

func populationVariance(samples []float64, mean float64) float64 {
	sum := 0.0

	for _, v := range samples {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(samples))
}

func populationStdDev(samples []float64, mean float64) float64 {
	return math.Sqrt(populationVariance(samples, mean))
}
