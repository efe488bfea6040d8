// Command outliner scans a directory of PDF documents and writes one
// outline JSON file per document.
//
// Usage:
//
//	outliner -input ./docs -output ./outlines [-config outliner.yaml]
//
// A document that cannot be processed still produces an output file,
// holding the sentinel {"title":"Error","outline":[]}, and the run
// continues with the next document.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
)

func main() {
	var (
		inputDir   = flag.String("input", "", "directory containing PDF documents")
		outputDir  = flag.String("output", "", "directory to write outline JSON files to")
		configPath = flag.String("config", "", "optional YAML configuration file")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("loading configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.Input = *inputDir
	}
	if *outputDir != "" {
		cfg.Output = *outputDir
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	names, err := filepath.Glob(filepath.Join(cfg.Input, "*.pdf"))
	if err != nil {
		return fmt.Errorf("listing input directory: %w", err)
	}
	if len(names) == 0 {
		logger.Warn("no PDF documents found", "dir", cfg.Input)
	}

	for _, name := range names {
		result := processDocument(name, cfg, logger)
		outPath := filepath.Join(cfg.Output, stem(name)+".json")
		if err := writeOutline(outPath, result, cfg); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
	}
	return nil
}

// processDocument never fails the run: any error collapses to the
// sentinel result so the batch keeps going.
func processDocument(path string, cfg config, logger *slog.Logger) model.DocumentOutline {
	src, err := source.OpenPDF(path)
	if err != nil {
		logger.Error("opening document", "file", filepath.Base(path), "error", err)
		return model.ErrorOutline()
	}
	defer src.Close()

	result, err := outliner.FromSource(src).
		BaselinePages(cfg.BaselinePages).
		MinConfidence(cfg.MinConfidence).
		Outline()
	if err != nil {
		logger.Error("outline inference failed", "file", filepath.Base(path), "error", err)
		return model.ErrorOutline()
	}

	logger.Info("document processed",
		"file", filepath.Base(path),
		"pages", src.PageCount(),
		"title", result.Title,
		"headings", len(result.Outline))
	return result
}

func writeOutline(path string, result model.DocumentOutline, cfg config) error {
	var (
		data []byte
		err  error
	)
	if cfg.Compact {
		data, err = sonic.Marshal(result)
	} else {
		data, err = sonic.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
