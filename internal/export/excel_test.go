package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"zygotrix/app"
	"zygotrix/domain/genetics"
	"zygotrix/domain/gwas"
)

func TestWriteCrossResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.xlsx")
	results := map[string]app.TraitResult{
		"eye_color": {
			GenotypicRatios:  genetics.Distribution{"Bb": 0.5, "bb": 0.5},
			PhenotypicRatios: genetics.Distribution{"Brown": 0.5, "Blue": 0.5},
		},
	}

	require.NoError(t, WriteCrossResults(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Crosses", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Trait", header)

	trait, err := f.GetCellValue("Crosses", "A2")
	require.NoError(t, err)
	assert.Equal(t, "eye_color", trait)

	kind, err := f.GetCellValue("Crosses", "B2")
	require.NoError(t, err)
	assert.Equal(t, "genotype", kind)

	// Genotype rows sort Bb before bb.
	outcome, err := f.GetCellValue("Crosses", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Bb", outcome)
}

func TestWriteAssociationResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gwas.xlsx")
	resp := &gwas.Response{
		Results: []gwas.AssociationResult{
			{RSID: "rs1", Chromosome: 1, Position: 100, Beta: 0.4, PValue: 0.001, MAF: 0.2, NSamples: 50},
		},
	}

	require.NoError(t, WriteAssociationResults(path, resp))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rsid, err := f.GetCellValue("Associations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "rs1", rsid)
}
