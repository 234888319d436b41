// Command slfmapper counts spotted lanternfly spread/sighting posts per US
// region and year from a Twitter export spreadsheet.
//
// Usage:
//
//	slfmapper --input data/posts.xlsx --header-row 5 \
//	  --text-column "Full Text" --location-column "City Code" --date-column "Date" \
//	  --output-mode multiple --start-year 2017 --end-year 2020 \
//	  --output-dir out --export-results
//
// Every flag can also be set via an SLF_* environment variable (dashes become
// underscores, e.g. SLF_START_YEAR), or a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/adapter/csvexport"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/adapter/excel"
	httpadapter "github.com/haved-jossain/spotted-lanternfly-mapper/internal/adapter/http"
	kafkaadapter "github.com/haved-jossain/spotted-lanternfly-mapper/internal/adapter/kafka"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/adapter/nlp"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/adapter/render"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/config"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/observability"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("slfmapper failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slfmapper",
		Short:         "Map spotted lanternfly sighting posts to US regions by year",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("input", "", "path to the posts spreadsheet (.xlsx)")
	flags.String("sheet", "Sheet0", "worksheet name")
	flags.Int("header-row", 0, "0-based offset of the header row within the sheet")
	flags.String("text-column", "Full Text", "header name of the post text column")
	flags.String("location-column", "City Code", "header name of the structured location column")
	flags.String("date-column", "Date", "header name of the timestamp column")
	flags.String("output-mode", config.OutputMultiple, "single (one merged bucket) or multiple (one per year)")
	flags.String("start-year", "", "inclusive start year (4 digits)")
	flags.String("end-year", "", "inclusive end year (4 digits)")
	flags.String("output-dir", ".", "directory for exported artifacts")
	flags.Bool("export-results", false, "write the detailed classification results CSV")
	flags.Int("dedup-window", 100, "size of the duplicate-suppression window")
	flags.String("metrics-addr", "", "optional listen address for health/metrics endpoints")
	flags.StringSlice("kafka-brokers", nil, "optional Kafka brokers for the record stream")
	flags.String("kafka-topic", "", "Kafka topic for classification records")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "json", "log format: json or text")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// NLP model load failure is fatal before any scanning.
	tagger, err := nlp.New()
	if err != nil {
		return err
	}

	exporter, closers, err := buildExporters(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range closers {
			if cerr := c.Close(); cerr != nil {
				logger.Error("close exporter", "error", cerr)
			}
		}
	}()

	agg := pipeline.New(
		excel.NewReader(cfg, logger),
		tagger,
		exporter,
		render.NewTablePresenter(os.Stdout, logger),
		logger,
		metrics,
		pipeline.Options{
			StartYear:     cfg.StartYear,
			EndYear:       cfg.EndYear,
			OutputMode:    cfg.OutputMode,
			DedupCapacity: cfg.DedupWindow,
		},
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(cfg.MetricsAddr, agg, logger)
		go func() {
			if serr := srv.Start(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
				logger.Error("http server error", "error", serr)
			}
		}()
		defer func() {
			if serr := srv.Shutdown(context.Background()); serr != nil {
				logger.Error("http server shutdown error", "error", serr)
			}
		}()
	}

	return agg.Run(ctx)
}

// buildExporters assembles the record export fan-out from configuration.
// Returns a nil exporter when the detailed export is disabled everywhere.
func buildExporters(cfg *config.Config, logger *slog.Logger) (pipeline.RecordExporter, []interface{ Close() error }, error) {
	var exporters pipeline.FanoutExporter
	var closers []interface{ Close() error }

	if cfg.ExportResults {
		w, err := csvexport.NewWriter(cfg.OutputDir, logger)
		if err != nil {
			return nil, nil, err
		}
		exporters = append(exporters, w)
		closers = append(closers, w)
	}
	if cfg.KafkaEnabled() {
		w := kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		exporters = append(exporters, w)
		closers = append(closers, w)
		logger.Info("kafka record stream enabled", "topic", cfg.KafkaTopic)
	}

	if len(exporters) == 0 {
		return nil, nil, nil
	}
	return exporters, closers, nil
}

// loadConfig binds flags and SLF_* environment variables into a validated
// Config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SLF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
