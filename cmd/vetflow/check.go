package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/surfaid/vetflow/internal/cli"
	"github.com/surfaid/vetflow/internal/config"
	"github.com/surfaid/vetflow/internal/engine"
	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/namescan"
	"github.com/surfaid/vetflow/internal/report"
	"github.com/surfaid/vetflow/internal/storage"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Screen suppliers against the watchlists",
		Long: `Screen every supplier in the input spreadsheet against the Namescan
emerald API, classify the hits, and write an xlsx report.

The exit code is non-zero when any supplier needs human attention (a true
positive or needs-review verdict) or could not be screened.

Examples:
  vetflow check -f suppliers.xlsx -o report.xlsx -k $VETFLOW_API_KEY
  vetflow check -f suppliers.xlsx -o report.xlsx --workers 8 --strong 0.95`,
		RunE: runCheck,
	}

	cmd.Flags().StringP("file", "f", "", "path to the supplier xlsx file")
	cmd.Flags().StringP("output", "o", "", "path for the report xlsx file")
	cmd.Flags().StringP("api-key", "k", "", "Namescan API key")
	cmd.Flags().String("cache", "~/.cache/vetflow/scans.db", "scan cache database path (empty disables caching)")
	cmd.Flags().Int("workers", engine.DefaultConfig().Workers, "number of concurrent screening workers")
	cmd.Flags().Float64("strong", 0, "strong-match name score threshold (overrides config)")
	cmd.Flags().Float64("weak", 0, "weak-name score threshold (overrides config)")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("output")

	_ = viper.BindPFlag("check.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("check.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("namescan.api_key", cmd.Flags().Lookup("api-key"))
	_ = viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))
	_ = viper.BindPFlag("check.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	inputPath := viper.GetString("check.file")
	outputPath := viper.GetString("check.output")
	apiKey := viper.GetString("namescan.api_key")

	pol := config.LoadPolicy()
	if v, _ := cmd.Flags().GetFloat64("strong"); v > 0 {
		pol.StrongThreshold = v
	}
	if v, _ := cmd.Flags().GetFloat64("weak"); v > 0 {
		pol.WeakThreshold = v
	}
	if err := pol.Validate(); err != nil {
		return err
	}

	suppliers, err := report.NewXLSXReader(inputPath).Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read suppliers: %w", err)
	}
	slog.Info("Loaded suppliers", "file", inputPath, "count", len(suppliers))

	clientOpts := []namescan.Option{}
	if cachePath := config.ExpandPath(viper.GetString("cache.path")); cachePath != "" {
		cache, cacheErr := storage.NewSQLiteScanCache(cachePath)
		if cacheErr != nil {
			return fmt.Errorf("failed to open scan cache: %w", cacheErr)
		}
		defer func() {
			if closeErr := cache.Close(); closeErr != nil {
				slog.Error("Failed to close scan cache", "error", closeErr)
			}
		}()
		clientOpts = append(clientOpts, namescan.WithCache(cache))
	}

	client, err := namescan.NewClient(apiKey, clientOpts...)
	if err != nil {
		return err
	}

	eng := engine.NewWithConfig(client, engine.NewClassifier(pol), engine.Config{
		Workers: viper.GetInt("check.workers"),
	})

	bar := progressbar.NewOptions(len(suppliers),
		progressbar.OptionSetDescription("Screening suppliers"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
	eng.OnResult = func(model.SupplierResult) {
		_ = bar.Add(1)
	}

	results, summary, err := eng.Run(ctx, suppliers)
	if err != nil {
		return err
	}

	if err := report.NewXLSXWriter(outputPath).Write(ctx, results, summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	slog.Info("Report written", "file", outputPath)

	for _, result := range results {
		if result.Err != nil || result.Verdict.Worst.RequiresAttention() {
			fmt.Println(cli.RenderVerdict(result))
		}
	}
	fmt.Println(cli.RenderSummary(summary))

	if summary.TruePositives > 0 || summary.NeedsReview > 0 || summary.Errored > 0 {
		return fmt.Errorf("%d supplier(s) need attention", summary.TruePositives+summary.NeedsReview+summary.Errored)
	}
	return nil
}
