package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// linearFit holds the genotype coefficient of a simple OLS regression
// of phenotype on dosage.
type linearFit struct {
	beta   float64
	se     float64
	tStat  float64
	pValue float64
}

// fitLinear regresses phenotype on dosage and tests the slope against
// zero with a two-sided t-test. Returns ok=false for degenerate inputs
// (too few samples or a monomorphic dosage vector).
func fitLinear(dosages, phenotypes []float64) (linearFit, bool) {
	n := len(dosages)
	df := n - 2
	if df < 1 {
		return linearFit{}, false
	}

	alpha, beta := stat.LinearRegression(dosages, phenotypes, nil, false)

	meanX, err := stats.Mean(dosages)
	if err != nil {
		return linearFit{}, false
	}
	sxx := 0.0
	for _, x := range dosages {
		dx := x - meanX
		sxx += dx * dx
	}
	if sxx == 0 {
		// Every sample carries the same dosage; the slope is
		// unidentifiable.
		return linearFit{}, false
	}

	ssr := 0.0
	for i, x := range dosages {
		residual := phenotypes[i] - (alpha + beta*x)
		ssr += residual * residual
	}

	se := math.Sqrt(ssr / float64(df) / sxx)
	if se == 0 {
		// Perfect fit: the association is exact.
		return linearFit{beta: beta, se: 0, tStat: 0, pValue: 0}, true
	}

	tStat := beta / se
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	pValue := 2 * tDist.Survival(math.Abs(tStat))
	if pValue > 1 {
		pValue = 1
	}

	return linearFit{beta: beta, se: se, tStat: tStat, pValue: pValue}, true
}
