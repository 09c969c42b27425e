package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/income-tax/internal/assessment"
	"github.com/iwvelando/income-tax/internal/config"
	"github.com/iwvelando/income-tax/internal/logging"
	"github.com/iwvelando/income-tax/internal/optimizer"
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/output"
	"github.com/iwvelando/income-tax/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A .env file is optional; it only seeds INCOME_TAX_* overrides.
	_ = godotenv.Load()

	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	regime := flag.String("regime", "", "override the selected regime of every profile (old, new)")
	breakEven := flag.Bool("break-even", false, "search for the deduction at which the old regime breaks even")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
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

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if *regime != "" {
		if err := conf.OverrideRegime(*regime); err != nil {
			logger.Fatal("invalid regime override",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := assessment.GetAssessments(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute assessments",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if *breakEven {
		runner, err := optimizer.NewRunner(logger, conf)
		if err != nil {
			logger.Fatal("failed to initialize break-even search",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		summaries, err := runner.Run()
		if err != nil {
			logger.Fatal("break-even search failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		summaries.Apply(results)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, results)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(os.Stdout, results); err != nil {
			logger.Fatal("failed to write output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(os.Stdout, results); err != nil {
			logger.Fatal("failed to write output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
