// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ptBrUnits = [...]string{
		"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
		"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	}
	ptBrTens = [...]string{
		"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
	}
	ptBrHundreds = [...]string{
		"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos",
	}
	// index is the power of one thousand
	ptBrScales = [...]Unit{
		{},
		{Singular: "mil", Plural: "mil"},
		{Singular: "milhão", Plural: "milhões"},
		{Singular: "bilhão", Plural: "bilhões"},
		{Singular: "trilhão", Plural: "trilhões"},
		{Singular: "quatrilhão", Plural: "quatrilhões"},
		{Singular: "quintilhão", Plural: "quintilhões"},
	}
)

// brazilianSpeller spells numbers using Brazilian Portuguese short scale.
// It covers the whole uint64 range.
type brazilianSpeller struct{}

func (brazilianSpeller) IntegerToWords(n int64) (string, error) {
	if n < 0 {
		// two's complement keeps math.MinInt64 representable
		return "menos " + spellBrazilian(uint64(^n)+1), nil
	}
	return spellBrazilian(uint64(n)), nil
}

func (brazilianSpeller) DigitsToWords(digits string) (string, error) {
	n, err := parseDigits(digits, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
	if err != nil {
		return "", err
	}
	return spellBrazilian(n), nil
}

// parseDigits validates an ASCII digit run and maps range errors to
// ErrNumericOverflow.
func parseDigits[T int64 | uint64](digits string, parse func(string) (T, error)) (T, error) {
	if digits == "" {
		return 0, fmt.Errorf("empty digit run")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("invalid digit run %q", digits)
		}
	}
	n, err := parse(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrNumericOverflow, digits)
		}
		return 0, err
	}
	return n, nil
}

func spellBrazilian(n uint64) string {
	if n == 0 {
		return ptBrUnits[0]
	}

	var groups []uint64
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, v%1000)
	}

	lowest := 0
	for lowest < len(groups) && groups[lowest] == 0 {
		lowest++
	}

	var sb strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if sb.Len() > 0 {
			// "e" precedes the closing group when it is below one hundred
			// or a round hundred: "dois mil e quinhentos", "mil e um".
			if i == lowest && (g < 100 || g%100 == 0) {
				sb.WriteString(" e ")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(spellGroup(g, i))
	}
	return sb.String()
}

func spellGroup(g uint64, scale int) string {
	switch {
	case scale == 0:
		return spellBelowThousand(g)
	case scale == 1 && g == 1:
		return ptBrScales[1].Singular
	default:
		return spellBelowThousand(g) + " " + ptBrScales[scale].For(g)
	}
}

func spellBelowThousand(n uint64) string {
	if n == 100 {
		return "cem"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, ptBrHundreds[h])
	}
	if r := n % 100; r > 0 {
		if r < 20 {
			parts = append(parts, ptBrUnits[r])
		} else {
			tens := ptBrTens[r/10]
			if u := r % 10; u > 0 {
				tens += " e " + ptBrUnits[u]
			}
			parts = append(parts, tens)
		}
	}
	return strings.Join(parts, " e ")
}
