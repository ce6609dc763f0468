// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// =============================================================================
// Symbol Normalizer
// =============================================================================

var (
	urlPattern        = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://\S*|http\S+`)
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}]+`)
)

type symbolNormalizer struct {
	logger     commons.Logger
	disallowed *regexp.Regexp
}

// NewSymbolNormalizer strips URLs, then every character that is not a
// letter, digit, underscore, whitespace or one of ",.!?". The locale's
// accented letters are always allowed. Whitespace runs are collapsed to one
// space, so the result never spans lines.
func NewSymbolNormalizer(logger commons.Logger, locale *internal_locale.Locale) Normalizer {
	allowed := `\p{L}\p{M}\p{N}_\s\p{Z},.!?`
	if locale.Accented != "" {
		allowed += regexp.QuoteMeta(locale.Accented)
	}
	return &symbolNormalizer{
		logger:     logger,
		disallowed: regexp.MustCompile(`[^` + allowed + `]`),
	}
}

func (n *symbolNormalizer) Normalize(text string) (string, error) {
	if text == "" {
		return text, nil
	}
	// decomposed accents would otherwise lose their combining mark
	text = norm.NFC.String(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = n.disallowed.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text), nil
}
