package main

import (
	"fmt"
	"os"

	"github.com/eduextract/bancoimg/internal/cli"
	"github.com/eduextract/bancoimg/internal/extract"
	"github.com/eduextract/bancoimg/internal/logger"
	"github.com/eduextract/bancoimg/internal/rename"
)

// Default configuration for the CLI
var config = &cli.DefaultConfig

func newLogger() logger.Logger {
	log, err := logger.NewLogger(logger.LogConfig{Level: config.LogLevel})
	if err != nil {
		panic(err)
	}
	return log
}

func runExtract() {
	log := newLogger()

	pipeline, err := extract.NewPipeline(extract.Options{
		SourcePath: config.File,
		OutputDir:  config.OutputDir,
		BankLabel:  config.Bank,
		Log:        log,
	})
	if err != nil {
		log.Fatal("extraction aborted: %v", err)
	}

	records, err := pipeline.Run()
	if err != nil {
		log.Fatal("extraction aborted: %v", err)
	}

	fmt.Printf("Extracted %d images from %s\n", len(records), config.File)
	fmt.Printf("Output folder: %s\n", pipeline.OutputDir())
	fmt.Printf("Report: %s\n", extract.ReportFileName)
}

func runRename() {
	log := newLogger()

	renamer, err := rename.NewRenamer(config.Dir, log)
	if err != nil {
		log.Fatal("rename aborted: %v", err)
	}

	result, err := renamer.Run()
	if err != nil {
		log.Fatal("rename aborted: %v", err)
	}

	fmt.Printf("Renamed %d files with prefix %s (%d skipped)\n",
		result.Renamed, result.Prefix, result.Skipped)
}

func main() {
	ctx := cli.DefineFlags(config, runExtract, runRename)

	subcmd, err := ctx.Parse(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// If the subcommand is nil, print the usage and exit
	if subcmd == nil {
		ctx.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	subcmd.Handler()
}
