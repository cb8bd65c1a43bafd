package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/cache"
	"nlpwalk/internal/adapter/corpus"
	"nlpwalk/internal/adapter/segmenter"
	"nlpwalk/internal/logging"
	"nlpwalk/internal/usecase"
)

func main() {
	rootDir := flag.String("root", ".", "Directory holding nlpwalk.yaml")
	doc := flag.String("doc", "", "Corpus document to annotate (default: target doc)")
	trainDoc := flag.String("train", "", "Corpus document to train the boundary model on (default: train doc)")
	runs := flag.Int("runs", 3, "Number of annotation runs")
	workers := flag.Int("workers", 4, "Annotation workers")
	noChunk := flag.Bool("no-chunk", false, "Skip chunking")
	flag.Parse()

	if *runs <= 0 {
		fmt.Println("Usage: go run cmd/benchmark/main.go -root . -doc 2006-GWBush.txt -runs 3")
		fmt.Println("\nMeasures:")
		fmt.Println("  1. Boundary model training time")
		fmt.Println("  2. Annotation throughput (tokenize, tag, chunk)")
		fmt.Println("  3. Tag cache effectiveness across repeated runs")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	col, err := corpus.Open(corpus.Options{
		Dir:      cfg.Corpus.Dir,
		BoltPath: cfg.Corpus.BoltPath,
		Includes: cfg.Corpus.Includes,
		Excludes: cfg.Corpus.Excludes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening corpus: %v\n", err)
		os.Exit(1)
	}
	defer col.Close()

	trainName := firstNonEmpty(*trainDoc, cfg.Corpus.TrainDoc)
	targetName := firstNonEmpty(*doc, cfg.Corpus.TargetDoc)

	trainText, err := col.Raw(trainName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", trainName, err)
		os.Exit(1)
	}
	targetText, err := col.Raw(targetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", targetName, err)
		os.Exit(1)
	}

	log := logging.Discard()
	p, err := usecase.NewPipelineFromConfig(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building pipeline: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("ANNOTATION BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Train doc:  %s (%d bytes)\n", trainName, len(trainText))
	fmt.Printf("Target doc: %s (%d bytes)\n", targetName, len(targetText))
	fmt.Printf("Workers:    %d\n", *workers)
	fmt.Println()

	start := time.Now()
	model := segmenter.NewTrainer(log).Fit(trainText)
	trainTime := time.Since(start)
	fmt.Printf("Training: %s (%d tokens, %d abbreviations, %d starters, %d collocations)\n",
		trainTime.Round(time.Millisecond), model.Stats().Tokens,
		len(model.Abbreviations()), len(model.SentenceStarters()), len(model.Collocations()))

	sentences := p.WithSegmenter(model).Segment(targetText)
	fmt.Printf("Segmented: %d sentences\n", len(sentences))
	fmt.Println(strings.Repeat("-", 70))

	var total time.Duration
	var failed int
	for run := 1; run <= *runs; run++ {
		start := time.Now()
		result, err := p.Annotate(context.Background(), sentences, usecase.AnnotateOptions{
			Chunk:   !*noChunk,
			Workers: *workers,
		})
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Annotate error: %v\n", err)
			os.Exit(1)
		}
		total += elapsed
		failed = len(result.Errors)

		rate := float64(len(sentences)) / elapsed.Seconds()
		fmt.Printf("Run %d: %s  %.0f sentences/s  %d failed\n", run, elapsed.Round(time.Microsecond), rate, failed)
	}

	avg := total / time.Duration(*runs)
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("RESULTS:\n")
	fmt.Printf("  Average run:  %s\n", avg.Round(time.Microsecond))
	fmt.Printf("  Failures:     %d\n", failed)

	if ct, ok := p.Tagger().(*cache.CachedTagger); ok {
		hits, misses := ct.Cache().Stats()
		ratio := 0.0
		if hits+misses > 0 {
			ratio = float64(hits) / float64(hits+misses)
		}
		fmt.Printf("  Tag cache:    %d hits, %d misses (%.0f%%)\n", hits, misses, ratio*100)
	} else {
		fmt.Println("  Tag cache:    disabled")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
