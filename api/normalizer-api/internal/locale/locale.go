// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrNumericOverflow is returned when a numeral exceeds the magnitude a
// speller can put into words.
var ErrNumericOverflow = errors.New("numeric overflow")

// ErrUnknownLocale is returned by Lookup for an unsupported tag.
var ErrUnknownLocale = errors.New("unknown locale")

const DefaultLocaleTag = "pt-BR"

// Speller converts integers into spoken words.
type Speller interface {
	// IntegerToWords spells n, including negative values. Values beyond the
	// supported magnitude fail with ErrNumericOverflow.
	IntegerToWords(n int64) (string, error)

	// DigitsToWords spells a run of ASCII digits (leading zeros allowed).
	// Runs beyond the supported magnitude fail with ErrNumericOverflow.
	DigitsToWords(digits string) (string, error)
}

// CurrencyKind identifies the unit a currency symbol stands for.
type CurrencyKind int

const (
	CurrencyReal CurrencyKind = iota
	CurrencyDollar
)

// Unit is a countable noun in singular and plural form.
type Unit struct {
	Singular string
	Plural   string
}

// For picks the singular form for exactly one, plural otherwise.
func (u Unit) For(n uint64) string {
	if n == 1 {
		return u.Singular
	}
	return u.Plural
}

// Locale bundles the word lists and number rules of one language variant.
// Locales are immutable once registered.
type Locale struct {
	Tag      string
	Language language.Tag
	Speller  Speller

	// DecimalWord is spoken between the two sides of "2,5".
	DecimalWord string

	// Conjunction joins hours to minutes and units to cents.
	Conjunction string

	Currencies map[CurrencyKind]Unit
	Cents      Unit

	// LargeAmountPreposition is placed between an exact multiple of one
	// million and its currency unit ("um milhão de reais").
	LargeAmountPreposition string

	// Accented lists the non-ASCII letters of the alphabet kept by the
	// symbol cleaner.
	Accented string
}

// Currency returns the unit for kind, or the zero Unit when the locale does
// not name it.
func (l *Locale) Currency(kind CurrencyKind) Unit {
	if u, ok := l.Currencies[kind]; ok {
		return u
	}
	return Unit{}
}

var registry = map[string]*Locale{}

func register(l *Locale) {
	registry[canonical(l.Tag)] = l
}

func canonical(tag string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
}

// Lookup resolves a locale by tag. Matching ignores case and accepts "_"
// in place of "-". An empty tag resolves to DefaultLocaleTag.
func Lookup(tag string) (*Locale, error) {
	if strings.TrimSpace(tag) == "" {
		tag = DefaultLocaleTag
	}
	if l, ok := registry[canonical(tag)]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
}

// Default returns the pt-BR locale.
func Default() *Locale {
	l, _ := Lookup(DefaultLocaleTag)
	return l
}

// Tags lists the registered locale tags.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for _, l := range registry {
		tags = append(tags, l.Tag)
	}
	sort.Strings(tags)
	return tags
}

func init() {
	register(&Locale{
		Tag:         "pt-BR",
		Language:    language.BrazilianPortuguese,
		Speller:     brazilianSpeller{},
		DecimalWord: "vírgula",
		Conjunction: "e",
		Currencies: map[CurrencyKind]Unit{
			CurrencyReal:   {Singular: "real", Plural: "reais"},
			CurrencyDollar: {Singular: "dólar", Plural: "dólares"},
		},
		Cents:                  Unit{Singular: "centavo", Plural: "centavos"},
		LargeAmountPreposition: "de",
		Accented:               "áéíóúãõâêôçàüÁÉÍÓÚÃÕÂÊÔÇÀÜ",
	})
	register(&Locale{
		Tag:         "pt-PT",
		Language:    language.EuropeanPortuguese,
		Speller:     newLibrarySpeller(ptPortugal),
		DecimalWord: "vírgula",
		Conjunction: "e",
		Currencies: map[CurrencyKind]Unit{
			CurrencyReal:   {Singular: "real", Plural: "reais"},
			CurrencyDollar: {Singular: "dólar", Plural: "dólares"},
		},
		Cents:                  Unit{Singular: "cêntimo", Plural: "cêntimos"},
		LargeAmountPreposition: "de",
		Accented:               "áéíóúãõâêôçàüÁÉÍÓÚÃÕÂÊÔÇÀÜ",
	})
	register(&Locale{
		Tag:         "en-US",
		Language:    language.AmericanEnglish,
		Speller:     newLibrarySpeller(enUS),
		DecimalWord: "point",
		Conjunction: "and",
		Currencies: map[CurrencyKind]Unit{
			CurrencyReal:   {Singular: "real", Plural: "reais"},
			CurrencyDollar: {Singular: "dollar", Plural: "dollars"},
		},
		Cents: Unit{Singular: "cent", Plural: "cents"},
	})
}
