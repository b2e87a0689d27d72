package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jask/finkit/internal/config"
	"github.com/jask/finkit/internal/database"
	"github.com/jask/finkit/internal/database/repository"
	"github.com/jask/finkit/internal/dataset"
	"github.com/jask/finkit/internal/export"
	"github.com/jask/finkit/internal/logging"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	outDir     string
	seed       uint64
	sales      int
	sqlitePath string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "salesgen",
		Short:         "Generate the synthetic sellers/products/targets/sales dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("out") {
				opts.outDir = cfg.Generator.OutDir
			}
			if !flags.Changed("seed") {
				opts.seed = cfg.Generator.Seed
			}
			if !flags.Changed("sales") {
				opts.sales = cfg.Generator.Sales
			}
			if !flags.Changed("sqlite") {
				opts.sqlitePath = cfg.Generator.SQLitePath
			}
			logger := logging.New(stderr, cfg.Log)
			return runGenerate(cmd.Context(), opts, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&opts.outDir, "out", ".", "Output directory for the CSV files and manifest")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 42, "Random seed")
	cmd.Flags().IntVar(&opts.sales, "sales", dataset.DefaultSales, "Number of sales to generate")
	cmd.Flags().StringVar(&opts.sqlitePath, "sqlite", "", "Also load the dataset into this SQLite database")
	return cmd
}

func runGenerate(ctx context.Context, opts options, stdout io.Writer, logger *slog.Logger) error {
	if opts.sales <= 0 {
		return fmt.Errorf("sales must be positive, got %d", opts.sales)
	}

	ds, err := dataset.Generate(dataset.Options{Seed: opts.seed, Sales: opts.sales})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	run := export.Run{ID: uuid.NewString(), Seed: opts.seed, GeneratedAt: database.Now()}
	logger.Info("dataset generated", "run_id", run.ID, "seed", run.Seed, "sales", len(ds.Sales))

	manifest, err := export.WriteDataset(opts.outDir, ds, run, logger)
	if err != nil {
		return err
	}

	if opts.sqlitePath != "" {
		if err := loadSQLite(ctx, opts.sqlitePath, run, ds, logger); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Generated %d tables in %s (run %s)\n", len(manifest.Tables), opts.outDir, manifest.RunID)
	return nil
}

func loadSQLite(ctx context.Context, path string, run export.Run, ds dataset.Dataset, logger *slog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	repo := repository.NewDatasetRepo(db)
	if err := repo.Replace(ctx, repository.Run{ID: run.ID, Seed: run.Seed, GeneratedAt: run.GeneratedAt}, ds); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	counts, err := repo.Counts(ctx)
	if err != nil {
		return err
	}
	runs, err := repo.Runs(ctx)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	logger.Info("sqlite loaded", "path", path, "sellers", counts.Sellers, "products", counts.Products,
		"targets", counts.Targets, "sales", counts.Sales, "runs", len(runs))

	totals, err := repo.RegionTotals(ctx)
	if err != nil {
		return fmt.Errorf("region totals: %w", err)
	}
	for _, rt := range totals {
		logger.Info("region total", "region", rt.Region, "sales", rt.Sales, "total", rt.Total.StringFixed(2))
	}
	return nil
}
