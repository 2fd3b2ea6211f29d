// Package export writes simulation and association results to xlsx
// workbooks for downstream analysis.
package export

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"zygotrix/app"
	"zygotrix/domain/gwas"
	"zygotrix/internal/errors"
)

// WriteCrossResults writes one sheet of per-trait genotype and
// phenotype ratios. Rows are ordered by trait key, then outcome key,
// so repeated exports of the same cross diff cleanly.
func WriteCrossResults(path string, results map[string]app.TraitResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Crosses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Trait", "Kind", "Outcome", "Probability"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	traitKeys := make([]string, 0, len(results))
	for key := range results {
		traitKeys = append(traitKeys, key)
	}
	sort.Strings(traitKeys)

	row := 2
	for _, traitKey := range traitKeys {
		result := results[traitKey]
		row = writeRatioRows(f, sheet, row, traitKey, "genotype", result.GenotypicRatios.Keys(), result.GenotypicRatios)
		row = writeRatioRows(f, sheet, row, traitKey, "phenotype", result.PhenotypicRatios.Keys(), result.PhenotypicRatios)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to write workbook %s", path)
	}
	return nil
}

func writeRatioRows(f *excelize.File, sheet string, row int, traitKey, kind string, keys []string, ratios map[string]float64) int {
	for _, outcome := range keys {
		values := []interface{}{traitKey, kind, outcome, ratios[outcome]}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
		row++
	}
	return row
}

// WriteAssociationResults writes one sheet of per-SNP association test
// outcomes in request order.
func WriteAssociationResults(path string, resp *gwas.Response) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Associations"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"RSID", "Chromosome", "Position", "Ref", "Alt", "Beta", "SE", "TStat", "PValue", "MAF", "N"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, result := range resp.Results {
		values := []interface{}{
			result.RSID, result.Chromosome, result.Position,
			result.RefAllele, result.AltAllele,
			result.Beta, result.SE, result.TStat, result.PValue,
			result.MAF, result.NSamples,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to write workbook %s", path)
	}
	return nil
}
