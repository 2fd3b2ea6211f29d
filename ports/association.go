package ports

import (
	"context"

	"zygotrix/domain/gwas"
)

// AssociationAnalyzer runs per-SNP association tests over a cohort.
type AssociationAnalyzer interface {
	Analyze(ctx context.Context, req gwas.Request) (*gwas.Response, error)
}
