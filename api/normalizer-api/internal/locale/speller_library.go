// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_locale

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	ntw "moul.io/number-to-words"
)

type libraryLanguage struct {
	spell func(int) string
	minus string
	// largest magnitude the library has scale words for
	max int64
}

var (
	enUS       = libraryLanguage{spell: ntw.IntegerToEnUs, minus: "minus", max: math.MaxInt64}
	ptPortugal = libraryLanguage{spell: ntw.IntegerToPtPt, minus: "menos", max: 999_999_999_999_999}
)

// librarySpeller delegates to moul.io/number-to-words. Magnitude is bounded
// by the language's scale table and never exceeds int64.
type librarySpeller struct {
	lang libraryLanguage
}

func newLibrarySpeller(lang libraryLanguage) Speller {
	return &librarySpeller{lang: lang}
}

func (s *librarySpeller) IntegerToWords(n int64) (string, error) {
	if n == math.MinInt64 || n > s.lang.max || -n > s.lang.max {
		return "", fmt.Errorf("%w: %d", ErrNumericOverflow, n)
	}
	if n < 0 {
		return s.lang.minus + " " + s.spell(-n), nil
	}
	return s.spell(n), nil
}

func (s *librarySpeller) DigitsToWords(digits string) (string, error) {
	n, err := parseDigits(digits, func(v string) (int64, error) {
		return strconv.ParseInt(v, 10, 64)
	})
	if err != nil {
		return "", err
	}
	if n > s.lang.max {
		return "", fmt.Errorf("%w: %s", ErrNumericOverflow, digits)
	}
	return s.spell(n), nil
}

// spell joins compounds such as "twenty-five" with a space so the symbol
// cleaner does not fuse them.
func (s *librarySpeller) spell(n int64) string {
	return strings.ReplaceAll(s.lang.spell(int(n)), "-", " ")
}
