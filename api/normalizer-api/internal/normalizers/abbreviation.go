// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"fmt"

	"github.com/dlclark/regexp2"

	internal_abbreviations "github.com/rapidaai/tts-utils/api/normalizer-api/internal/abbreviations"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// =============================================================================
// Abbreviation Normalizer
// =============================================================================

type abbreviationRule struct {
	abbreviation string
	expansion    string
	pattern      *regexp2.Regexp
}

type abbreviationNormalizer struct {
	logger commons.Logger
	rules  []abbreviationRule
}

// NewAbbreviationNormalizer replaces stand-alone abbreviations with their
// expansion. Each entry is applied once, in table order; text produced by
// one expansion is not rescanned for entries already applied.
func NewAbbreviationNormalizer(logger commons.Logger, table *internal_abbreviations.Table) Normalizer {
	entries := table.Entries()
	rules := make([]abbreviationRule, 0, len(entries))
	for _, e := range entries {
		// regexp2 \w covers accented letters, unlike RE2
		re, err := regexp2.Compile(`(?<!\w)`+regexp2.Escape(e.Abbreviation)+`(?!\w)`, regexp2.None)
		if err != nil {
			logger.Warnf("abbreviation: skipping %q: %v", e.Abbreviation, err)
			continue
		}
		rules = append(rules, abbreviationRule{
			abbreviation: e.Abbreviation,
			expansion:    e.Expansion,
			pattern:      re,
		})
	}
	return &abbreviationNormalizer{logger: logger, rules: rules}
}

func (n *abbreviationNormalizer) Normalize(text string) (string, error) {
	if text == "" {
		return text, nil
	}
	for _, rule := range n.rules {
		expansion := rule.expansion
		out, err := rule.pattern.ReplaceFunc(text, func(regexp2.Match) string {
			return expansion
		}, -1, -1)
		if err != nil {
			return "", fmt.Errorf("abbreviation %q: %w", rule.abbreviation, err)
		}
		text = out
	}
	return text, nil
}
