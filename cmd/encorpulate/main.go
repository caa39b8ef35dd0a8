// Package main provides the encorpulate command that builds a
// truecasing training corpus from Project Gutenberg texts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wtee/encorpulators/internal/config"
	"github.com/wtee/encorpulators/internal/corpus"
	"github.com/wtee/encorpulators/internal/logger"
	"github.com/wtee/encorpulators/internal/pipeline"
	"github.com/wtee/encorpulators/internal/report"
)

const defaultConfigPath = "configs/encorpulator.yaml"

func main() {
	// 1. Define Command-Line Flags
	// ----------------------------
	inputPath := flag.String("input", "", "Path to a Gutenberg text file (or a directory with -loop)")
	outputPath := flag.String("output", "", "Path to the corpus file to append to")
	loop := flag.Bool("loop", false, "Treat -input as a directory and process every file in it")
	ignoreErrors := flag.Bool("ignore-errors", false, "Drop ill-formed input bytes instead of aborting (recommended)")
	dryRun := flag.Bool("dry-run", false, "Process documents without appending to the corpus")
	configFile := flag.String("config", "", "Path to YAML configuration file")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	// 2. Load Configuration
	// ---------------------
	cfg := loadConfig(*configFile)

	// Flags override file values.
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}

	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	if *loop {
		cfg.Input.Loop = true
	}

	if *ignoreErrors {
		cfg.Input.ErrorMode = "ignore"
	}

	if *dryRun {
		cfg.Output.DryRun = true
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if cfg.Input.Path == "" || cfg.Output.Path == "" {
		log.Error("Please provide an input path (-input) and an output path (-output)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Error(fmt.Sprintf("❌ Invalid configuration: %v", err))
		os.Exit(1)
	}

	// 3. Build & Run the Pipeline
	// ---------------------------
	log.Info("📚 Building truecasing corpus")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.Input.Path))
	log.Info(fmt.Sprintf("🎯 Corpus: %s", cfg.Output.Path))

	if cfg.Output.DryRun {
		log.Info("👀 Dry-run mode (nothing will be appended)")
	}

	startTime := time.Now()

	p, err := pipeline.New(cfg, log)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline setup failed: %v", err))
		os.Exit(1)
	}

	stats := runPipeline(p, cfg, log)

	// 4. Final Report
	// ---------------
	log.Info("✨ Corpus build complete")

	if cfg.Logging.ShowProgress && len(stats) > 0 {
		fmt.Println("\n------------------------------------------------")
		fmt.Println("📊 Summary Report")
		fmt.Println("------------------------------------------------")
		fmt.Println(report.Render(stats))
		fmt.Printf("Total Duration: %v\n", time.Since(startTime))
		fmt.Println("------------------------------------------------")
	}
}

func runPipeline(p *pipeline.Pipeline, cfg *config.Config, log *logger.Logger) []corpus.Stats {
	if cfg.Input.Loop {
		stats, err := p.RunDir(cfg.Input.Path, cfg.Output.Path)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Directory run failed: %v", err))
			os.Exit(1)
		}

		return stats
	}

	st, err := p.Run(cfg.Input.Path, cfg.Output.Path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Processing failed: %v", err))
		os.Exit(1)
	}

	return []corpus.Stats{st}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		// Try the default location before falling back to built-ins.
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Failed to load config %s: %v (proceeding with defaults)\n", path, err)

		return config.DefaultConfig()
	}

	return cfg
}

func printUsage() {
	fmt.Println("Usage: ./bin/encorpulate [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/encorpulate -input book.txt -output corpus.txt")
	fmt.Println("  ./bin/encorpulate -input books/ -output corpus.txt -loop -ignore-errors")
}
