// Command build_index runs the indexing pipeline offline: it reads a résumé
// file, builds chunks and the inverted index, writes the snapshot to the data
// directory, and prints the build report. Useful for inspecting chunking
// changes without starting the server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/internal/engine"
	"github.com/taekim-dev/resume-rag-engine/internal/extract"
)

func main() {
	var (
		dataDir = flag.String("data-dir", "", "Directory for index snapshots (overrides DATA_DIR)")
		resume  = flag.String("resume", "", "Résumé file to index (overrides RESUME_FILE)")
		vocab   = flag.String("vocab", "", "YAML vocabulary file (overrides VOCABULARY_FILE)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *resume != "" {
		cfg.ResumeFile = *resume
	}
	if *vocab != "" {
		cfg.VocabularyFile = *vocab
	}

	vocabulary := config.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		vocabulary, err = config.LoadVocabulary(cfg.VocabularyFile)
		if err != nil {
			log.Fatalf("Failed to load vocabulary: %v", err)
		}
	}

	text, err := extract.TextFromFile(cfg.ResumeFile)
	if err != nil {
		log.Fatalf("Failed to read résumé: %v", err)
	}

	eng, err := engine.NewEngine(cfg, vocabulary)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}
	if err := eng.Rebuild(text, cfg.ResumeFile); err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}

	stats, err := eng.Stats()
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}
	fmt.Printf("Wrote snapshot to %s: %d chunks, %d terms\n", cfg.DataDir, stats.ChunkCount, stats.TermCount)
	fmt.Printf("Sections: %v\n", stats.Sections)

	report, err := eng.Report()
	if err != nil {
		log.Fatalf("Failed to compute report: %v", err)
	}
	for _, sec := range report.Sections {
		fmt.Printf("  %s: %d chunks, %d entities\n", sec.Section, sec.ChunkCount, len(sec.EntityCount))
	}
	if len(report.SuspiciousEntities) > 0 {
		fmt.Printf("Suspicious entities:\n")
		for _, s := range report.SuspiciousEntities {
			fmt.Printf("  [%s] %s\n", s.Section, s.Entity)
		}
	}
	fmt.Printf("Chunk length min/median/max: %d/%d/%d\n",
		report.ChunkLengthMin, report.ChunkLengthMedian, report.ChunkLengthMax)
	fmt.Printf("Context marker coverage: %.1f%%, keyword coverage: %.1f%%\n",
		report.PrefixCoverage, report.KeywordCoverage)
}
