// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	internal_normalizers "github.com/rapidaai/tts-utils/api/normalizer-api/internal/normalizers"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// Utterance is one transcribed audio file as produced by the speech to text
// step upstream.
type Utterance struct {
	AudioID string
	Text    string
}

// Record is one metadata row: a phrase, its id and its training label.
type Record struct {
	ID          string
	Text        string
	TextCleaned string
}

// TextNormalizer is satisfied by *internal_normalizers.Pipeline.
type TextNormalizer interface {
	Normalize(ctx context.Context, text string) (string, error)
}

var phraseBoundary = regexp.MustCompile(`[.!?]\s+`)

// SplitPhrases splits text after every ".", "!" or "?" followed by
// whitespace. The marks stay with their phrase; blank phrases are dropped.
func SplitPhrases(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var phrases []string
	last := 0
	for _, loc := range phraseBoundary.FindAllStringIndex(text, -1) {
		if p := strings.TrimSpace(text[last : loc[0]+1]); p != "" {
			phrases = append(phrases, p)
		}
		last = loc[1]
	}
	if p := strings.TrimSpace(text[last:]); p != "" {
		phrases = append(phrases, p)
	}
	return phrases
}

// ReadUtterances reads "<audio-id>|<transcript>" lines. Blank lines and lines
// starting with "#" are ignored.
func ReadUtterances(r io.Reader) ([]Utterance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var utterances []Utterance
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		id, text, ok := strings.Cut(raw, "|")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("dataset: line %d: expected <audio-id>|<transcript>", line)
		}
		utterances = append(utterances, Utterance{AudioID: id, Text: strings.TrimSpace(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: reading utterances: %w", err)
	}
	return utterances, nil
}

type BuilderConfig struct {
	Workers   int
	Lowercase bool
	Language  language.Tag
}

// Builder turns utterances into metadata records.
type Builder struct {
	logger     commons.Logger
	normalizer TextNormalizer
	cfg        BuilderConfig
}

func NewBuilder(logger commons.Logger, normalizer TextNormalizer, cfg BuilderConfig) *Builder {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Builder{logger: logger, normalizer: normalizer, cfg: cfg}
}

type phraseResult struct {
	text    string
	cleaned string
}

// Build normalizes every phrase of every utterance. Utterances are processed
// concurrently but records come back in input order, numbered per audio id
// as "<audio-id>_0001", "<audio-id>_0002", ...
//
// Phrases that overflow the number speller, or that normalize to nothing,
// are logged and skipped. Any other error aborts the build.
func (b *Builder) Build(ctx context.Context, utterances []Utterance) ([]Record, error) {
	results := make([][]phraseResult, len(utterances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)
	for i, u := range utterances {
		i, u := i, u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := b.normalizeUtterance(gctx, u)
			if err != nil {
				return fmt.Errorf("dataset: %s: %w", u.AudioID, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counters := make(map[string]int)
	var records []Record
	for i, phrases := range results {
		id := utterances[i].AudioID
		for _, p := range phrases {
			counters[id]++
			records = append(records, Record{
				ID:          fmt.Sprintf("%s_%04d", id, counters[id]),
				Text:        p.text,
				TextCleaned: p.cleaned,
			})
		}
	}
	b.logger.Infof("dataset: %d utterances produced %d records", len(utterances), len(records))
	return records, nil
}

func (b *Builder) normalizeUtterance(ctx context.Context, u Utterance) ([]phraseResult, error) {
	var caser cases.Caser
	if b.cfg.Lowercase {
		// a Caser keeps state and must not be shared between goroutines
		caser = cases.Lower(b.cfg.Language)
	}

	var out []phraseResult
	for _, phrase := range SplitPhrases(u.Text) {
		cleaned, err := b.normalizer.Normalize(ctx, phrase)
		if err != nil {
			if errors.Is(err, internal_normalizers.ErrNumericOverflow) {
				b.logger.Warnf("dataset: %s: skipping phrase %q: %v", u.AudioID, phrase, err)
				continue
			}
			return nil, err
		}
		if cleaned == "" {
			b.logger.Debugf("dataset: %s: phrase %q normalized to nothing", u.AudioID, phrase)
			continue
		}
		if b.cfg.Lowercase {
			cleaned = caser.String(cleaned)
		}
		out = append(out, phraseResult{text: phrase, cleaned: cleaned})
	}
	return out, nil
}
