// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	internal_abbreviations "github.com/rapidaai/tts-utils/api/normalizer-api/internal/abbreviations"
	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// =============================================================================
// Pipeline
// =============================================================================

// StageName identifies one stage of the cascade.
type StageName string

const (
	StageCurrency     StageName = "currency"
	StageNumeric      StageName = "numeric"
	StageAbbreviation StageName = "abbreviation"
	StageSymbol       StageName = "symbol"
	StagePunctuation  StageName = "punctuation"
)

// stageOrder is the only order stages ever run in. Each stage assumes the
// ones before it already ran: numbers see no currency symbols, the symbol
// cleaner sees no digits it should have spelled, and so on.
var stageOrder = []StageName{
	StageCurrency,
	StageNumeric,
	StageAbbreviation,
	StageSymbol,
	StagePunctuation,
}

func stageRank(name StageName) int {
	for i, s := range stageOrder {
		if s == name {
			return i
		}
	}
	return -1
}

// Stage pairs a normalizer with its name.
type Stage struct {
	Name       StageName
	Normalizer Normalizer
}

// NormalizerConfig selects what a pipeline is built from.
type NormalizerConfig struct {
	Locale        *internal_locale.Locale
	Abbreviations *internal_abbreviations.Table

	// Stages limits the pipeline to the named stages. Empty means all.
	Stages []string
}

func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		Locale:        internal_locale.Default(),
		Abbreviations: internal_abbreviations.Default(),
	}
}

// Pipeline runs the stages in their fixed order. It holds no mutable state
// and is safe for concurrent use.
type Pipeline struct {
	logger commons.Logger
	locale *internal_locale.Locale
	stages []Stage
}

// BuildNormalizerPipeline creates the pipeline for cfg. Stage names are
// matched case-insensitively; unknown names are logged and skipped. Whatever
// order names are given in, stages run in canonical order.
func BuildNormalizerPipeline(logger commons.Logger, cfg NormalizerConfig) *Pipeline {
	if cfg.Locale == nil {
		cfg.Locale = internal_locale.Default()
	}
	if cfg.Abbreviations == nil {
		cfg.Abbreviations = internal_abbreviations.Default()
	}

	names := stageOrder
	if len(cfg.Stages) > 0 {
		seen := make(map[StageName]bool, len(cfg.Stages))
		names = make([]StageName, 0, len(cfg.Stages))
		for _, raw := range cfg.Stages {
			name := StageName(strings.TrimSpace(strings.ToLower(raw)))
			if stageRank(name) < 0 {
				logger.Warnf("normalizer: unknown stage '%s', skipping", raw)
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
		sort.SliceStable(names, func(i, j int) bool {
			return stageRank(names[i]) < stageRank(names[j])
		})
	}

	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		var normalizer Normalizer
		switch name {
		case StageCurrency:
			normalizer = NewCurrencyNormalizer(logger, cfg.Locale)
		case StageNumeric:
			normalizer = NewNumericNormalizer(logger, cfg.Locale)
		case StageAbbreviation:
			normalizer = NewAbbreviationNormalizer(logger, cfg.Abbreviations)
		case StageSymbol:
			normalizer = NewSymbolNormalizer(logger, cfg.Locale)
		case StagePunctuation:
			normalizer = NewPunctuationNormalizer(logger)
		}
		stages = append(stages, Stage{Name: name, Normalizer: normalizer})
	}

	return &Pipeline{logger: logger, locale: cfg.Locale, stages: stages}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []StageName {
	names := make([]StageName, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

func (p *Pipeline) Locale() *internal_locale.Locale {
	return p.locale
}

// Normalize rewrites text into its speakable form. It fails with
// ErrMalformedInput for invalid UTF-8 or NUL bytes and with
// ErrNumericOverflow for numerals too large to spell; anything else it
// cannot rewrite is passed through.
func (p *Pipeline) Normalize(ctx context.Context, text string) (string, error) {
	if !utf8.ValidString(text) || strings.ContainsRune(text, 0) {
		return "", fmt.Errorf("%w: invalid UTF-8 or NUL byte", ErrMalformedInput)
	}

	start := time.Now()
	defer func() {
		p.logger.Benchmark("Pipeline.Normalize", time.Since(start))
	}()

	for _, stage := range p.stages {
		out, err := stage.Normalizer.Normalize(text)
		if err != nil {
			p.logger.Tracef(ctx, "normalizer: stage %s failed: %v", stage.Name, err)
			return "", err
		}
		text = out
	}
	return text, nil
}

var (
	defaultPipelineOnce sync.Once
	defaultPipeline     *Pipeline
)

// Normalize runs the default pt-BR pipeline without logging.
func Normalize(text string) (string, error) {
	defaultPipelineOnce.Do(func() {
		defaultPipeline = BuildNormalizerPipeline(commons.NewNopLogger(), DefaultNormalizerConfig())
	})
	return defaultPipeline.Normalize(context.Background(), text)
}
