package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/orghire/pulse/internal/analysis"
	"github.com/orghire/pulse/internal/config"
	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/pkg/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis over a record snapshot",
	Long:  "Decodes a JSON snapshot of job-posting records, runs the metrics, anomaly and narrative pipeline, and prints the report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeRecordsFile string
	analyzeRange       string
	analyzeSubject     string
	analyzeLookupsFile string
	analyzePretty      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRecordsFile, "records", "r", "", "Path to the record snapshot JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeRange, "range", "", "Time range: 4w, 8w, 3m, 6m or 12m (default from DEFAULT_RANGE)")
	analyzeCmd.Flags().StringVarP(&analyzeSubject, "subject", "s", "", "Subject agency; omit for the market-wide view")
	analyzeCmd.Flags().StringVar(&analyzeLookupsFile, "lookups", "", "Path to the peer-group/category lookups YAML (default from LOOKUPS_PATH)")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent the JSON output")

	if err := analyzeCmd.MarkFlagRequired("records"); err != nil {
		panic(fmt.Sprintf("failed to mark records flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

// envelope wraps the report with run metadata.
type envelope struct {
	RunID       string           `json:"run_id"`
	GeneratedAt string           `json:"generated_at"`
	Report      *analysis.Report `json:"report"`
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	lookupsPath := analyzeLookupsFile
	if lookupsPath == "" {
		lookupsPath = cfg.LookupsPath
	}
	lookups, err := config.LoadLookups(lookupsPath)
	if err != nil {
		return err
	}

	rangeValue := analyzeRange
	if rangeValue == "" {
		rangeValue = cfg.DefaultRange
	}
	timeRange, err := domain.ParseTimeRange(rangeValue)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(analyzeRecordsFile)
	if err != nil {
		return fmt.Errorf("reading records file: %w", err)
	}
	var records []domain.JobRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("decoding records file %s: %w", analyzeRecordsFile, err)
	}

	log.Info().
		Int("records", len(records)).
		Str("range", string(timeRange)).
		Str("subject", analyzeSubject).
		Msg("Starting analysis")

	svc := analysis.NewService(log, lookups)
	report, err := svc.Run(records, timeRange, analyzeSubject, time.Now().UTC())
	if err != nil {
		return err
	}

	out := envelope{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Report:      report,
	}

	var payload []byte
	if analyzePretty {
		payload, err = json.MarshalIndent(out, "", "  ")
	} else {
		payload, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	fmt.Println(string(payload))
	return nil
}
