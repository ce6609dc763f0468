// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"fmt"
	"regexp"

	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// =============================================================================
// Numeric Normalizer
// =============================================================================

// "10kg" -> "10 kg"; neither side changes
var unitSpacingPattern = regexp.MustCompile(`(\d+)(°?[a-zA-Z²³µ%]+)`)

type numberRule struct {
	name    string
	pattern *regexp.Regexp
	parse   func(groups []string) NumberForm
	// lead is a capture group written back in front of the spoken form
	lead int
}

// Order matters: decimals, times with seconds and on-the-hour times must be
// consumed before the general time rule, and all of them before integers.
var numberRules = []numberRule{
	{
		name:    "decimal",
		pattern: regexp.MustCompile(`\b(\d+)[,.](\d+)\b`),
		parse: func(g []string) NumberForm {
			return DecimalNumber{Integer: g[1], Fraction: g[2]}
		},
	},
	{
		name:    "time-with-seconds",
		pattern: regexp.MustCompile(`\b(\d{1,2}):(\d{2}):(\d{2})\b`),
		parse: func(g []string) NumberForm {
			return ClockTime{Hour: g[1], Minute: g[2], Second: g[3]}
		},
	},
	{
		name:    "time-on-the-hour",
		pattern: regexp.MustCompile(`\b([01]?\d|2[0-3]):00(?:\s?h)?\b`),
		parse: func(g []string) NumberForm {
			return ClockTime{Hour: g[1], OnTheHour: true}
		},
	},
	{
		name:    "time",
		pattern: regexp.MustCompile(`\b(\d+):(\d+)\b`),
		parse: func(g []string) NumberForm {
			return ClockTime{Hour: g[1], Minute: g[2]}
		},
	},
	{
		name:    "signed-integer",
		pattern: regexp.MustCompile(`(^|[\s(])-(\d+)\b`),
		parse: func(g []string) NumberForm {
			return PlainInteger{Digits: g[2], Negative: true}
		},
		lead: 1,
	},
	{
		name:    "integer",
		pattern: regexp.MustCompile(`\b\d+\b`),
		parse: func(g []string) NumberForm {
			return PlainInteger{Digits: g[0]}
		},
	},
}

type numericNormalizer struct {
	logger commons.Logger
	locale *internal_locale.Locale
}

// NewNumericNormalizer spells decimals, clock times and integers. It expects
// currency amounts to have been expanded already.
func NewNumericNormalizer(logger commons.Logger, locale *internal_locale.Locale) Normalizer {
	return &numericNormalizer{logger: logger, locale: locale}
}

func (n *numericNormalizer) Normalize(text string) (string, error) {
	if text == "" {
		return text, nil
	}

	text = unitSpacingPattern.ReplaceAllString(text, "${1} ${2}")

	var err error
	for _, rule := range numberRules {
		text, err = replaceAllSubmatchFunc(rule.pattern, text, func(groups []string) (string, error) {
			spoken, err := rule.parse(groups).Render(n.locale)
			if err != nil {
				return "", err
			}
			if rule.lead > 0 {
				spoken = groups[rule.lead] + spoken
			}
			return spoken, nil
		})
		if err != nil {
			n.logger.Warnf("numeric: %s rule failed: %v", rule.name, err)
			return "", fmt.Errorf("numeric %s: %w", rule.name, err)
		}
	}
	return text, nil
}
