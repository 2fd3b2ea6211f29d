// Package engine runs per-SNP association tests over a cohort: linear
// regression for quantitative phenotypes and chi-square contingency
// tests for binary ones, with minor-allele-frequency quality control.
package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"zygotrix/domain/core"
	"zygotrix/domain/gwas"
	"zygotrix/internal"
	"zygotrix/ports"
)

const (
	DefaultWorkers      = 4
	DefaultMAFThreshold = 0.01

	// minSamples is the smallest cohort an association test accepts.
	minSamples = 10
)

// Config tunes the analyzer.
type Config struct {
	Workers      int
	MAFThreshold float64
	Logger       *internal.Logger
}

// Analyzer executes association sweeps. Stateless between calls and
// safe for concurrent use.
type Analyzer struct {
	workers      int
	mafThreshold float64
	logger       *internal.Logger
}

var _ ports.AssociationAnalyzer = (*Analyzer)(nil)

// NewAnalyzer creates an analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	mafThreshold := cfg.MAFThreshold
	if mafThreshold <= 0 {
		mafThreshold = DefaultMAFThreshold
	}
	logger := cfg.Logger
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Analyzer{
		workers:      workers,
		mafThreshold: mafThreshold,
		logger:       logger,
	}
}

// Analyze tests every requested SNP for association with the cohort
// phenotype. SNPs failing quality control (too few complete samples,
// MAF below threshold, degenerate dosage vector) are counted as
// filtered, not errored. SNPs are analyzed in parallel; result order
// follows request order.
func (a *Analyzer) Analyze(ctx context.Context, req gwas.Request) (*gwas.Response, error) {
	start := time.Now()

	if len(req.SNPs) == 0 || len(req.Samples) == 0 {
		return nil, core.ErrEmptyRequest
	}

	testType := req.TestType
	if testType == "" {
		testType = gwas.TestLinear
	}
	switch testType {
	case gwas.TestLinear, gwas.TestChiSquare:
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownTestType, testType)
	}

	mafThreshold := req.MAFThreshold
	if mafThreshold <= 0 {
		mafThreshold = a.mafThreshold
	}
	workers := req.Workers
	if workers <= 0 {
		workers = a.workers
	}

	perSNP := make([]*gwas.AssociationResult, len(req.SNPs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range req.SNPs {
		index := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perSNP[index] = a.analyzeSNP(index, &req, testType, mafThreshold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &gwas.Response{
		AnalysisID: core.AnalysisID(core.NewID()),
	}
	for _, result := range perSNP {
		if result == nil {
			resp.SNPsFiltered++
			continue
		}
		resp.SNPsTested++
		resp.Results = append(resp.Results, *result)
	}
	resp.RuntimeMs = time.Since(start).Milliseconds()

	a.logger.Info("association sweep %s: %d tested, %d filtered in %dms",
		resp.AnalysisID, resp.SNPsTested, resp.SNPsFiltered, resp.RuntimeMs)
	return resp, nil
}

// analyzeSNP runs one association test; a nil result means the SNP was
// filtered by quality control.
func (a *Analyzer) analyzeSNP(index int, req *gwas.Request, testType gwas.TestType, mafThreshold float64) *gwas.AssociationResult {
	dosages, phenotypes := completePairs(index, req.Samples)
	if len(dosages) < minSamples {
		return nil
	}

	maf := gwas.MinorAlleleFrequency(dosages)
	if maf < mafThreshold {
		return nil
	}

	snp := req.SNPs[index]
	result := &gwas.AssociationResult{
		RSID:       snp.RSID,
		Chromosome: snp.Chromosome,
		Position:   snp.Position,
		RefAllele:  snp.RefAllele,
		AltAllele:  snp.AltAllele,
		MAF:        maf,
		NSamples:   len(dosages),
	}

	switch testType {
	case gwas.TestLinear:
		fit, ok := fitLinear(toFloats(dosages), phenotypes)
		if !ok {
			return nil
		}
		result.Beta = fit.beta
		result.SE = fit.se
		result.TStat = fit.tStat
		result.PValue = fit.pValue
	case gwas.TestChiSquare:
		binary := phenotypes
		if !isBinaryPhenotype(phenotypes) {
			binary = medianSplit(phenotypes)
		}
		chi, pValue, ok := chiSquareBinary(dosages, binary)
		if !ok {
			return nil
		}
		// Chi-square has no effect estimate; the statistic rides in
		// TStat.
		result.TStat = chi
		result.PValue = pValue
	}
	return result
}

// completePairs extracts the dosage/phenotype pairs with complete data
// for one SNP: called genotype and non-NaN phenotype.
func completePairs(index int, samples []gwas.Sample) ([]int, []float64) {
	dosages := make([]int, 0, len(samples))
	phenotypes := make([]float64, 0, len(samples))
	for _, sample := range samples {
		if index >= len(sample.Genotypes) {
			continue
		}
		g := sample.Genotypes[index]
		if g < 0 || g > 2 || math.IsNaN(sample.Phenotype) {
			continue
		}
		dosages = append(dosages, g)
		phenotypes = append(phenotypes, sample.Phenotype)
	}
	return dosages, phenotypes
}

func toFloats(dosages []int) []float64 {
	out := make([]float64, len(dosages))
	for i, d := range dosages {
		out[i] = float64(d)
	}
	return out
}

func isBinaryPhenotype(phenotypes []float64) bool {
	for _, p := range phenotypes {
		if p != 0.0 && p != 1.0 {
			return false
		}
	}
	return true
}
