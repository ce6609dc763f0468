// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	internal_locale "github.com/rapidaai/tts-utils/api/normalizer-api/internal/locale"
)

// NumberForm is a numeral recognised in text, parsed but not yet spoken.
// The expanders only parse; each form knows how to render itself.
type NumberForm interface {
	Render(l *internal_locale.Locale) (string, error)
}

// CurrencyAmount is a monetary value such as "R$ 3.200,75".
type CurrencyAmount struct {
	Kind    internal_locale.CurrencyKind
	Integer uint64
	// Cents is always within [0, 99].
	Cents uint64
}

// Render speaks the integer part with its unit and the cents joined by the
// locale conjunction. Zero parts are omitted, so a zero amount renders "".
func (c CurrencyAmount) Render(l *internal_locale.Locale) (string, error) {
	parts := make([]string, 0, 2)
	if c.Integer > 0 {
		words, err := l.Speller.DigitsToWords(strconv.FormatUint(c.Integer, 10))
		if err != nil {
			return "", err
		}
		if l.LargeAmountPreposition != "" && c.Integer%1_000_000 == 0 {
			words += " " + l.LargeAmountPreposition
		}
		parts = append(parts, words+" "+l.Currency(c.Kind).For(c.Integer))
	}
	if c.Cents > 0 {
		words, err := l.Speller.DigitsToWords(strconv.FormatUint(c.Cents, 10))
		if err != nil {
			return "", err
		}
		cents := words + " " + l.Cents.For(c.Cents)
		if len(parts) > 0 {
			cents = l.Conjunction + " " + cents
		}
		parts = append(parts, cents)
	}
	return strings.Join(parts, " "), nil
}

// DecimalNumber is "2,5" or "2.5". Each side is spoken as a whole integer.
type DecimalNumber struct {
	Integer  string
	Fraction string
}

func (d DecimalNumber) Render(l *internal_locale.Locale) (string, error) {
	left, err := l.Speller.DigitsToWords(d.Integer)
	if err != nil {
		return "", err
	}
	right, err := l.Speller.DigitsToWords(d.Fraction)
	if err != nil {
		return "", err
	}
	return left + " " + l.DecimalWord + " " + right, nil
}

// ClockTime is "10:45" or "10:45:30". When OnTheHour is set the minutes are
// not spoken.
type ClockTime struct {
	Hour      string
	Minute    string
	Second    string
	OnTheHour bool
}

func (c ClockTime) Render(l *internal_locale.Locale) (string, error) {
	hour, err := l.Speller.DigitsToWords(c.Hour)
	if err != nil {
		return "", err
	}
	if c.OnTheHour {
		return hour, nil
	}
	minute, err := l.Speller.DigitsToWords(c.Minute)
	if err != nil {
		return "", err
	}
	spoken := hour + " " + l.Conjunction + " " + minute
	if c.Second != "" {
		second, err := l.Speller.DigitsToWords(c.Second)
		if err != nil {
			return "", err
		}
		spoken += " " + l.Conjunction + " " + second
	}
	return spoken, nil
}

// PlainInteger is any other standalone digit run, optionally signed.
type PlainInteger struct {
	Digits   string
	Negative bool
}

func (p PlainInteger) Render(l *internal_locale.Locale) (string, error) {
	if !p.Negative {
		return l.Speller.DigitsToWords(p.Digits)
	}
	n, err := strconv.ParseInt("-"+p.Digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "", fmt.Errorf("%w: -%s", ErrNumericOverflow, p.Digits)
		}
		return "", err
	}
	return l.Speller.IntegerToWords(n)
}
