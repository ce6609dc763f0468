package internal_locale

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrazilianSpeller_IntegerToWords(t *testing.T) {
	speller := brazilianSpeller{}

	tests := []struct {
		input    int64
		expected string
	}{
		{0, "zero"},
		{1, "um"},
		{9, "nove"},
		{14, "quatorze"},
		{16, "dezesseis"},
		{19, "dezenove"},
		{20, "vinte"},
		{21, "vinte e um"},
		{45, "quarenta e cinco"},
		{50, "cinquenta"},
		{100, "cem"},
		{101, "cento e um"},
		{110, "cento e dez"},
		{199, "cento e noventa e nove"},
		{200, "duzentos"},
		{555, "quinhentos e cinquenta e cinco"},
		{1000, "mil"},
		{1001, "mil e um"},
		{1100, "mil e cem"},
		{1101, "mil cento e um"},
		{1234, "mil duzentos e trinta e quatro"},
		{2000, "dois mil"},
		{2500, "dois mil e quinhentos"},
		{3200, "três mil e duzentos"},
		{10000, "dez mil"},
		{101000, "cento e um mil"},
		{999999, "novecentos e noventa e nove mil novecentos e noventa e nove"},
		{1000000, "um milhão"},
		{1001000, "um milhão e mil"},
		{2000000, "dois milhões"},
		{1234567, "um milhão duzentos e trinta e quatro mil quinhentos e sessenta e sete"},
		{1000000000, "um bilhão"},
		{3000000000000, "três trilhões"},
		{-5, "menos cinco"},
		{-1000, "menos mil"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			words, err := speller.IntegerToWords(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}

func TestBrazilianSpeller_MinInt64(t *testing.T) {
	result, err := brazilianSpeller{}.IntegerToWords(math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, "menos nove quintilhões duzentos e vinte e três quatrilhões trezentos e setenta e dois trilhões trinta e seis bilhões oitocentos e cinquenta e quatro milhões setecentos e setenta e cinco mil oitocentos e oito", result)
}

func TestBrazilianSpeller_DigitsToWords(t *testing.T) {
	speller := brazilianSpeller{}

	tests := []struct {
		name     string
		input    string
		expected string
		overflow bool
		wantErr  bool
	}{
		{name: "plain", input: "42", expected: "quarenta e dois"},
		{name: "leading zeros", input: "05", expected: "cinco"},
		{name: "all zeros", input: "000", expected: "zero"},
		{name: "uint64 max", input: "18446744073709551615", expected: "dezoito quintilhões quatrocentos e quarenta e seis quatrilhões setecentos e quarenta e quatro trilhões setenta e três bilhões setecentos e nove milhões quinhentos e cinquenta e um mil seiscentos e quinze"},
		{name: "overflow", input: "18446744073709551616", overflow: true, wantErr: true},
		{name: "huge", input: "123456789012345678901234567890", overflow: true, wantErr: true},
		{name: "not digits", input: "12a", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := speller.DigitsToWords(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.overflow, errors.Is(err, ErrNumericOverflow))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLibrarySpeller_English(t *testing.T) {
	l, err := Lookup("en-US")
	require.NoError(t, err)

	words, err := l.Speller.DigitsToWords("42")
	require.NoError(t, err)
	assert.Equal(t, "forty two", words)

	words, err = l.Speller.IntegerToWords(-42)
	require.NoError(t, err)
	assert.Equal(t, "minus forty two", words)

	words, err = l.Speller.DigitsToWords("1021")
	require.NoError(t, err)
	assert.Equal(t, "one thousand twenty one", words)

	_, err = l.Speller.DigitsToWords("99999999999999999999")
	assert.True(t, errors.Is(err, ErrNumericOverflow))

	_, err = l.Speller.IntegerToWords(math.MinInt64)
	assert.True(t, errors.Is(err, ErrNumericOverflow))
}

func TestLibrarySpeller_EuropeanPortugueseBounds(t *testing.T) {
	l, err := Lookup("pt-PT")
	require.NoError(t, err)

	tests := []struct {
		name     string
		digits   string
		overflow bool
	}{
		{"largest supported", "999999999999999", false},
		{"one past the scale table", "1000000000000000", true},
		{"int64 max", "9223372036854775807", true},
		{"beyond int64", "99999999999999999999", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := l.Speller.DigitsToWords(tt.digits)
			if tt.overflow {
				assert.True(t, errors.Is(err, ErrNumericOverflow))
				assert.Empty(t, words)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, words)
		})
	}

	_, err = l.Speller.IntegerToWords(1_000_000_000_000_000)
	assert.True(t, errors.Is(err, ErrNumericOverflow))
	_, err = l.Speller.IntegerToWords(-1_000_000_000_000_000)
	assert.True(t, errors.Is(err, ErrNumericOverflow))

	words, err := l.Speller.IntegerToWords(-16)
	require.NoError(t, err)
	assert.Equal(t, "menos dezasseis", words)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"pt-BR", "pt-BR", false},
		{"pt_br", "pt-BR", false},
		{" PT-BR ", "pt-BR", false},
		{"", "pt-BR", false},
		{"en-us", "en-US", false},
		{"pt-PT", "pt-PT", false},
		{"fr-FR", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := Lookup(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLocale)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.Tag)
		})
	}
}

func TestDefaultAndTags(t *testing.T) {
	assert.Equal(t, "pt-BR", Default().Tag)
	assert.Equal(t, []string{"en-US", "pt-BR", "pt-PT"}, Tags())
}

func TestUnitFor(t *testing.T) {
	u := Unit{Singular: "centavo", Plural: "centavos"}
	assert.Equal(t, "centavo", u.For(1))
	assert.Equal(t, "centavos", u.For(0))
	assert.Equal(t, "centavos", u.For(2))

	l := Default()
	assert.Equal(t, "reais", l.Currency(CurrencyReal).Plural)
	assert.Equal(t, Unit{}, l.Currency(CurrencyKind(99)))
}
