package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"zygotrix/adapters/exact"
	gwasengine "zygotrix/adapters/gwas/engine"
	"zygotrix/adapters/montecarlo"
	"zygotrix/adapters/traitstore"
	"zygotrix/app"
	"zygotrix/domain/genetics"
	"zygotrix/domain/gwas"
	"zygotrix/internal"
	"zygotrix/internal/config"
	"zygotrix/internal/export"
	"zygotrix/internal/testkit"
	"zygotrix/ports"
)

func main() {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "zygotrix",
		Short: "Mendelian crosses, polygenic scores, and association sweeps",
	}

	rootCmd.PersistentFlags().String("traits", "", "JSON trait registry file (defaults to the built-in traits)")

	rootCmd.AddCommand(
		newCrossCmd(),
		newJointCmd(),
		newGenotypesCmd(),
		newPolygenicCmd(),
		newGwasCmd(),
		newValidateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// crossRequest is the JSON request shape shared by cross and joint.
type crossRequest struct {
	Parent1       map[string]string `json:"parent1"`
	Parent2       map[string]string `json:"parent2"`
	AsPercentages bool              `json:"as_percentages"`
}

type polygenicRequest struct {
	Parent1 map[string]float64 `json:"parent1"`
	Parent2 map[string]float64 `json:"parent2"`
	Weights map[string]float64 `json:"weights"`
}

func newCrossCmd() *cobra.Command {
	var simulate bool
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "cross [request.json]",
		Short: "Compute per-trait offspring genotype and phenotype distributions",
		Long: `Compute offspring distributions for every trait present in the
registry and in both parents' genotype maps.

The request is read from the given file, or from stdin when the
argument is omitted or "-":

  {"parent1": {"eye_color": "Bb"}, "parent2": {"eye_color": "bb"}, "as_percentages": true}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req crossRequest
			if err := decodeRequest(args, &req); err != nil {
				return err
			}

			sim, err := buildSimulator(cmd, simulate)
			if err != nil {
				return err
			}

			results, err := sim.SimulateMendelianTraits(cmd.Context(), req.Parent1, req.Parent2, req.AsPercentages)
			if err != nil {
				return err
			}

			if xlsxPath != "" {
				if err := export.WriteCrossResults(xlsxPath, results); err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"results":        results,
				"missing_traits": sim.MissingTraits(req.Parent1, req.Parent2),
			})
		},
	}

	cmd.Flags().BoolVar(&simulate, "simulate", false, "Use the Monte Carlo sampling strategy instead of the exact calculator")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write results to an xlsx workbook")

	return cmd
}

func newJointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "joint [request.json]",
		Short: "Compute the joint phenotype distribution across independently-assorting traits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req crossRequest
			if err := decodeRequest(args, &req); err != nil {
				return err
			}

			sim, err := buildSimulator(cmd, false)
			if err != nil {
				return err
			}

			joint, err := sim.SimulateJointPhenotypes(cmd.Context(), req.Parent1, req.Parent2, req.AsPercentages)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"joint_phenotypes": joint,
				"missing_traits":   sim.MissingTraits(req.Parent1, req.Parent2),
			})
		},
	}
}

func newGenotypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genotypes trait-key...",
		Short: "List every possible canonical genotype for the given traits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := buildSimulator(cmd, false)
			if err != nil {
				return err
			}

			genotypes, err := sim.PossibleGenotypes(args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), genotypes)
		},
	}
}

func newPolygenicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "polygenic [request.json]",
		Short: "Compute the expected offspring polygenic score",
		Long: `Compute the additive expected polygenic score from two parents'
per-SNP dosages and per-SNP effect weights:

  {"parent1": {"rs1": 1.0}, "parent2": {"rs1": 2.0}, "weights": {"rs1": 0.6}}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req polygenicRequest
			if err := decodeRequest(args, &req); err != nil {
				return err
			}

			sim, err := buildSimulator(cmd, false)
			if err != nil {
				return err
			}

			score := sim.SimulatePolygenicTrait(req.Parent1, req.Parent2, req.Weights)
			return writeJSON(cmd.OutOrStdout(), map[string]float64{"score": score})
		},
	}
}

func newGwasCmd() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "gwas [request.json]",
		Short: "Run per-SNP association tests over a cohort",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req gwas.Request
			if err := decodeRequest(args, &req); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			analyzer := gwasengine.NewAnalyzer(gwasengine.Config{
				Workers:      cfg.GWAS.Workers,
				MAFThreshold: cfg.GWAS.MAFThreshold,
				Logger:       internal.NewDefaultLogger(),
			})
			resp, err := analyzer.Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}

			if xlsxPath != "" {
				if err := export.WriteAssociationResults(xlsxPath, resp); err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write results to an xlsx workbook")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate registry.json",
		Short: "Validate phenotype coverage for every trait in a registry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var definitions map[string]struct {
				Alleles      []string          `json:"alleles"`
				PhenotypeMap map[string]string `json:"phenotype_map"`
			}
			if err := json.Unmarshal(raw, &definitions); err != nil {
				return err
			}

			results := make(map[string]genetics.CoverageResult, len(definitions))
			failed := false
			for key, def := range definitions {
				result := genetics.ValidatePhenotypeCoverage(def.Alleles, def.PhenotypeMap)
				results[key] = result
				if !result.Passed {
					failed = true
				}
			}

			if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if failed {
				return fmt.Errorf("one or more traits failed coverage validation")
			}
			return nil
		},
	}
}

// buildSimulator wires the registry and cross strategy for a command.
func buildSimulator(cmd *cobra.Command, simulate bool) (*app.Simulator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	registry, err := loadRegistry(cmd)
	if err != nil {
		return nil, err
	}

	var cross ports.CrossCalculator = exact.NewCalculator()
	if simulate {
		cross = montecarlo.NewCalculator(montecarlo.Config{
			Iterations: cfg.MonteCarlo.Iterations,
			Workers:    cfg.MonteCarlo.Workers,
			Seed:       cfg.MonteCarlo.Seed,
		})
	}

	return app.NewSimulator(registry, cross, app.SimulatorConfig{
		MaxTraits: cfg.Simulator.MaxTraits,
	}), nil
}

func loadRegistry(cmd *cobra.Command) (map[string]genetics.Trait, error) {
	traitsPath, err := cmd.Flags().GetString("traits")
	if err != nil {
		return nil, err
	}

	var repo ports.TraitRepository
	if traitsPath != "" {
		repo = traitstore.NewFileRepository(traitsPath)
	} else {
		repo = traitstore.NewStaticRepository(testkit.Registry())
	}
	return repo.LoadTraits(context.Background())
}

// decodeRequest reads a JSON request from the file argument, or from
// stdin when the argument is omitted or "-".
func decodeRequest(args []string, v interface{}) error {
	var reader io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		reader = f
	}
	return json.NewDecoder(reader).Decode(v)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
