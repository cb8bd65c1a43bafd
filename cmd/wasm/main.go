//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"nlpwalk/config"
	"nlpwalk/internal/adapter/segmenter"
	"nlpwalk/internal/logging"
	"nlpwalk/internal/usecase"
)

var (
	base     *usecase.Pipeline
	pipeline *usecase.Pipeline
	model    *segmenter.Model
)

func init() {
	p, err := usecase.NewPipelineFromConfig(config.DefaultConfig(), logging.Discard())
	if err != nil {
		panic(err)
	}
	base = p
	pipeline = p
}

func main() {
	c := make(chan struct{})

	js.Global().Set("nlpSentences", js.FuncOf(sentences))
	js.Global().Set("nlpWords", js.FuncOf(words))
	js.Global().Set("nlpStopwords", js.FuncOf(stopwords))
	js.Global().Set("nlpStem", js.FuncOf(stem))
	js.Global().Set("nlpTrain", js.FuncOf(train))
	js.Global().Set("nlpAnnotate", js.FuncOf(annotate))
	js.Global().Set("nlpReset", js.FuncOf(reset))

	<-c
}

func sentences(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpSentences(text)")
	}
	out := []string{}
	for _, s := range pipeline.Segment(args[0].String()) {
		out = append(out, s.Text)
	}
	return makeResult(map[string]interface{}{
		"sentences": out,
	})
}

func words(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpWords(text)")
	}
	return makeResult(map[string]interface{}{
		"words": nonNil(pipeline.Words(args[0].String())),
	})
}

func stopwords(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpStopwords(text)")
	}
	w := pipeline.Words(args[0].String())
	return makeResult(map[string]interface{}{
		"words":    nonNil(w),
		"filtered": nonNil(pipeline.FilterStopwords(w)),
	})
}

func stem(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpStem(text)")
	}
	w := pipeline.Words(args[0].String())
	return makeResult(map[string]interface{}{
		"words": nonNil(w),
		"stems": nonNil(pipeline.Stem(w)),
	})
}

// train fits a boundary model on the given text and segments with it from
// then on.
func train(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpTrain(corpus)")
	}
	model = segmenter.NewTrainer(logging.Discard()).Fit(args[0].String())
	pipeline = base.WithSegmenter(model)

	return makeResult(map[string]interface{}{
		"success":          true,
		"degenerate":       model.Degenerate(),
		"abbreviations":    nonNil(model.Abbreviations()),
		"sentenceStarters": nonNil(model.SentenceStarters()),
		"collocations":     nonNil(model.Collocations()),
	})
}

func annotate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpAnnotate(text, [grammar])")
	}
	grammar := ""
	if len(args) > 1 {
		grammar = args[1].String()
	}

	result, err := pipeline.Annotate(context.Background(), pipeline.Segment(args[0].String()), usecase.AnnotateOptions{
		Chunk:   true,
		Grammar: grammar,
		Workers: 1,
	})
	if err != nil {
		return makeError("annotate failed: " + err.Error())
	}

	trees := make([]string, len(result.Sentences))
	for i, s := range result.Sentences {
		if s.Tree != nil {
			trees[i] = s.Tree.String()
		}
	}
	return makeResult(map[string]interface{}{
		"sentences": result.Sentences,
		"trees":     trees,
		"failed":    len(result.Errors),
	})
}

func reset(this js.Value, args []js.Value) interface{} {
	model = nil
	pipeline = base
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
