// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

// =============================================================================
// Currency Normalizer
// =============================================================================

// amount is either dot-grouped thousands ("3.200") or a plain digit run
// ("2500"), optionally followed by a comma and the decimal digits.
const currencyAmountPattern = `\s*(\d{1,3}(?:\.\d{3})+|\d+)(?:,(\d+))?`

type currencySymbol struct {
	kind    internal_locale.CurrencyKind
	pattern *regexp.Regexp
}

// applied in this order
var currencySymbols = []currencySymbol{
	{internal_locale.CurrencyReal, regexp.MustCompile(`R\$` + currencyAmountPattern)},
	{internal_locale.CurrencyDollar, regexp.MustCompile(`US\$` + currencyAmountPattern)},
	{internal_locale.CurrencyDollar, regexp.MustCompile(`USD` + currencyAmountPattern)},
	{internal_locale.CurrencyDollar, regexp.MustCompile(`U\$` + currencyAmountPattern)},
}

type currencyNormalizer struct {
	logger commons.Logger
	locale *internal_locale.Locale
}

// NewCurrencyNormalizer expands "R$10,50" into "dez reais e cinquenta centavos".
func NewCurrencyNormalizer(logger commons.Logger, locale *internal_locale.Locale) Normalizer {
	return &currencyNormalizer{logger: logger, locale: locale}
}

func (n *currencyNormalizer) Normalize(text string) (string, error) {
	if text == "" {
		return text, nil
	}
	var err error
	for _, symbol := range currencySymbols {
		text, err = replaceAllSubmatchFunc(symbol.pattern, text, func(groups []string) (string, error) {
			amount, err := parseCurrencyAmount(symbol.kind, groups[1], groups[2])
			if err != nil {
				return "", err
			}
			spoken, err := amount.Render(n.locale)
			if err != nil {
				return "", err
			}
			n.logger.Debugf("currency: %q -> %q", groups[0], spoken)
			return spoken, nil
		})
		if err != nil {
			return "", fmt.Errorf("currency: %w", err)
		}
	}
	return text, nil
}

// parseCurrencyAmount turns the captured integer and decimal digits into an
// amount. Thousands dots are dropped; decimals are right padded or truncated
// to two digits.
func parseCurrencyAmount(kind internal_locale.CurrencyKind, integer, decimals string) (CurrencyAmount, error) {
	amount := CurrencyAmount{Kind: kind}

	value, err := strconv.ParseUint(strings.ReplaceAll(integer, ".", ""), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return amount, fmt.Errorf("%w: %s", ErrNumericOverflow, integer)
		}
		return amount, err
	}
	amount.Integer = value

	if decimals != "" {
		cents, err := strconv.ParseUint((decimals + "00")[:2], 10, 64)
		if err != nil {
			return amount, err
		}
		amount.Cents = cents
	}
	return amount, nil
}
