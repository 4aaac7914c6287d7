package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/finwellhq/insights-go/pkg/insights"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ReportConfig holds configuration for a report run
type ReportConfig struct {
	SnapshotFile string
	BaseURL      string
	Token        string
	SessionFile  string
	AsOf         string
	OutputFile   string
	SentryDSN    string
	Verbose      bool
}

func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	config := parseFlags()

	logger := newLogger(config.Verbose)

	asOf, err := resolveAsOf(config.AsOf)
	if err != nil {
		logger.Fatalf("Invalid -as-of value: %v", err)
	}

	provider, err := buildProvider(config, logger)
	if err != nil {
		logger.Fatalf("Failed to create snapshot source: %v", err)
	}

	engine, err := insights.NewEngine(&insights.EngineOptions{
		Logger:    &logrusAdapter{logger},
		SentryDSN: config.SentryDSN,
	})
	if err != nil {
		logger.Fatalf("Failed to create engine: %v", err)
	}

	ctx := context.Background()
	report, err := engine.GenerateReport(ctx, provider, asOf)
	if err != nil {
		logger.Fatalf("Report generation failed: %v", err)
	}

	if err := writeReport(report, config.OutputFile); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"score":    report.HealthScore.Score,
		"grade":    report.HealthScore.Grade,
		"insights": len(report.ProactiveInsights),
	}).Info("Report generated")
}

func parseFlags() *ReportConfig {
	config := &ReportConfig{}

	flag.StringVar(&config.SnapshotFile, "snapshot", "", "Path to a local snapshot JSON file (skips the API)")
	flag.StringVar(&config.BaseURL, "base-url", os.Getenv("FINWELL_BASE_URL"), "Snapshot API base URL")
	flag.StringVar(&config.Token, "token", os.Getenv("FINWELL_TOKEN"), "API auth token")
	flag.StringVar(&config.SessionFile, "session", "", "Path to a persisted session file")
	flag.StringVar(&config.AsOf, "as-of", "", "Report date as YYYY-MM-DD (default today)")
	flag.StringVar(&config.OutputFile, "o", "", "Write the report to a file instead of stdout")
	flag.StringVar(&config.SentryDSN, "sentry-dsn", os.Getenv("SENTRY_DSN"), "Sentry DSN for error tracking")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose logging")

	flag.Parse()

	return config
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

func resolveAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}

func buildProvider(config *ReportConfig, logger *logrus.Logger) (insights.SnapshotProvider, error) {
	if config.SnapshotFile != "" {
		logger.WithField("file", config.SnapshotFile).Debug("Using local snapshot")
		return &insights.FileProvider{Path: config.SnapshotFile}, nil
	}

	if config.Token == "" && config.SessionFile == "" {
		return nil, fmt.Errorf("either -snapshot, -token, or -session is required")
	}

	return insights.NewClient(&insights.ClientOptions{
		BaseURL:     config.BaseURL,
		Token:       config.Token,
		SessionFile: config.SessionFile,
		Logger:      &logrusAdapter{logger},
	})
}

func writeReport(report *insights.InsightsReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(path, data, 0644)
}

// logrusAdapter bridges logrus to the engine's Logger interface.
type logrusAdapter struct {
	logger *logrus.Logger
}

func (a *logrusAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.logger.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (a *logrusAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.WithFields(toFields(keysAndValues)).Info(msg)
}

func (a *logrusAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.logger.WithFields(toFields(keysAndValues)).Warn(msg)
}

func (a *logrusAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.WithFields(toFields(keysAndValues)).Error(msg)
}

func toFields(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
