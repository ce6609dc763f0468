// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"errors"
	"regexp"
	"strings"

	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
)

var (
	// ErrNumericOverflow is returned when a numeral is too large to spell.
	ErrNumericOverflow = internal_locale.ErrNumericOverflow

	// ErrMalformedInput is returned for text that is not valid UTF-8.
	ErrMalformedInput = errors.New("malformed input")
)

// Normalizer is one text to text rewrite of the cascade. Implementations
// return a complete replacement string and never mutate shared state.
type Normalizer interface {
	Normalize(text string) (string, error)
}

// replaceAllSubmatchFunc is regexp.ReplaceAllStringFunc with access to the
// capture groups and an error path. Unmatched optional groups are "".
func replaceAllSubmatchFunc(re *regexp.Regexp, text string, fn func(groups []string) (string, error)) (string, error) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		replacement, err := fn(groups)
		if err != nil {
			return "", err
		}
		sb.WriteString(text[last:loc[0]])
		sb.WriteString(replacement)
		last = loc[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}
