// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rapidaai/tts-utils/pkg/commons"
)

// =============================================================================
// Punctuation Normalizer
// =============================================================================

type punctuationNormalizer struct {
	logger commons.Logger
}

// NewPunctuationNormalizer makes sure non-empty text ends in ".", "?" or "!".
func NewPunctuationNormalizer(logger commons.Logger) Normalizer {
	return &punctuationNormalizer{logger: logger}
}

func (n *punctuationNormalizer) Normalize(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return text, nil
	}

	last, size := utf8.DecodeLastRuneInString(text)
	switch {
	case isTerminal(last):
		return text, nil
	case unicode.IsPunct(last) || unicode.IsSymbol(last):
		return strings.TrimRightFunc(text[:len(text)-size], unicode.IsSpace) + ".", nil
	default:
		return text + ".", nil
	}
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}
