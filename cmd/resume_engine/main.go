package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/taekim-dev/resume-rag-engine/api"
	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/internal/engine"
	"github.com/taekim-dev/resume-rag-engine/internal/extract"
	"github.com/taekim-dev/resume-rag-engine/internal/synthesis"
)

func main() {
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "", "Port to run the server on (overrides PORT)")
		dataDir = flag.String("data-dir", "", "Directory for index snapshots (overrides DATA_DIR)")
		resume  = flag.String("resume", "", "Résumé file to index (overrides RESUME_FILE)")
		vocab   = flag.String("vocab", "", "YAML vocabulary file (overrides VOCABULARY_FILE)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Resume RAG Engine - evidence-grounded Q&A over a résumé\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                               # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                   # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --resume ./data/resume.pdf    # Index a PDF résumé\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("Resume RAG Engine v1.0.0\n")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
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

	log.Printf("Using data directory: %s", cfg.DataDir)
	eng, err := engine.NewEngine(cfg, vocabulary)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// Build at startup when no snapshot was restored and the résumé exists.
	if _, err := eng.Stats(); err != nil {
		if text, readErr := extract.TextFromFile(cfg.ResumeFile); readErr == nil {
			if buildErr := eng.Rebuild(text, cfg.ResumeFile); buildErr != nil {
				log.Fatalf("Failed to build index from %s: %v", cfg.ResumeFile, buildErr)
			}
		} else {
			log.Printf("Warning: no snapshot and could not read %s: %v. Serving without an index until a reindex.", cfg.ResumeFile, readErr)
		}
	}

	synth := synthesis.NewService(
		synthesis.NewClient(cfg.LLMURL, cfg.LLMModel, cfg.LLMKey),
		cfg.Subject,
	)

	router := gin.Default()
	api.SetupRoutes(router, eng, synth, cfg.ResumeFile)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
