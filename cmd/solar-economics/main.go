package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/solar-economics/internal/comparison"
	"github.com/iwvelando/solar-economics/internal/config"
	"github.com/iwvelando/solar-economics/pkg/constants"
	"github.com/iwvelando/solar-economics/pkg/incentives"
	"github.com/iwvelando/solar-economics/pkg/output"
	"github.com/iwvelando/solar-economics/pkg/production"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("invalid output format %s", outputFormat),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn(warning, zap.String("op", "main"))
	}

	estimator := production.NewEstimator(logger)
	engine := comparison.NewEngine(logger)

	for i := range conf.Scenarios {
		scenario := &conf.Scenarios[i]
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "main"),
			)
			continue
		}

		annualProduction := scenario.System.AnnualProductionKwh
		if scenario.NeedsProductionEstimate() {
			estimate := estimator.Estimate(scenario.ProductionInput())
			annualProduction = estimate.AnnualProductionKwh
			logger.Info(fmt.Sprintf("estimated %.0f kWh/yr production for scenario %s", annualProduction, scenario.Name),
				zap.String("op", "main"),
				zap.Float64("capacityFactor", estimate.CapacityFactor),
			)
		}

		if scenario.Site.State != "" {
			rec := incentives.CalculateRECValue(incentives.RECInput{
				State:               scenario.Site.State,
				AnnualProductionKwh: annualProduction,
			})
			if rec.HasSRECMarket {
				logger.Info(fmt.Sprintf("scenario %s qualifies for an estimated $%.2f/yr in SREC income", scenario.Name, rec.AnnualValue),
					zap.String("op", "main"),
					zap.String("state", rec.State),
				)
			}
		}

		result := engine.Run(scenario.ToAnalysisScenario(annualProduction))

		switch outputFormat {
		case constants.OutputFormatCSV:
			output.CsvFormat(scenario.Name, result)
		default:
			output.PrettyFormat(scenario.Name, result)
		}
	}
}
