package emotion

import (
	"context"
	"strings"

	"echoverse-be/pkg/llm"
)

// Analysis sources.
const (
	SourceRemote  = "remote"
	SourceLexicon = "lexicon"
)

// Analyzer classifies journal text into emotion scores. It asks a remote
// model for a structured classification and falls back to the lexicon when
// the model is unavailable or returns something unusable.
type Analyzer struct {
	provider llm.LLMProvider
	model    string
}

// NewAnalyzer builds an Analyzer. Provider may be nil, in which case every
// analysis uses the lexicon path.
func NewAnalyzer(provider llm.LLMProvider, model string) *Analyzer {
	return &Analyzer{
		provider: provider,
		model:    model,
	}
}

// Analyze classifies text. Empty text yields the neutral default.
func (a *Analyzer) Analyze(ctx context.Context, text string) *Analysis {
	text = strings.TrimSpace(text)
	if text == "" {
		return DefaultAnalysis()
	}

	if a.provider != nil {
		if result, err := a.analyzeRemote(ctx, text); err == nil {
			return result
		}
	}

	return lexiconAnalysis(text)
}

func (a *Analyzer) analyzeRemote(ctx context.Context, text string) (*Analysis, error) {
	prompt := BuildAnalysisPrompt(text)

	opts := []llm.Option{llm.WithMaxTokens(512)}
	if a.model != "" {
		opts = append(opts, llm.WithModel(a.model))
	}

	response, err := a.provider.Generate(ctx, prompt, opts...)
	if err != nil {
		return nil, err
	}

	return ParseRemoteResponse(response)
}
