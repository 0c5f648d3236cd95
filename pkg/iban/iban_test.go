package iban_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/iban/pkg/iban"
)

func TestParse(t *testing.T) {
	t.Run("parses print format", func(t *testing.T) {
		i, err := iban.Parse("GB29 NWBK 6016 1331 9268 19")
		require.NoError(t, err)

		assert.Equal(t, "GB29NWBK60161331926819", i.String())
		assert.Equal(t, "GB", i.CountryCode())
		assert.Equal(t, "29", i.CheckDigits())
		assert.Equal(t, "NWBK60161331926819", i.BBAN())
		assert.Equal(t, "NWBK", i.BankIdentifier())
		assert.Equal(t, "601613", i.BranchIdentifier())
		assert.Equal(t, "GB", i.Country().Code())
		assert.False(t, i.IsZero())
	})

	t.Run("returns the validation result on failure", func(t *testing.T) {
		_, err := iban.Parse("NL92ABNA0417164300")
		require.Error(t, err)

		var perr *iban.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, iban.InvalidCheckDigits, perr.Result.Outcome)
		assert.Equal(t, "NL", perr.Result.Country.Code())
		assert.Contains(t, err.Error(), "InvalidCheckDigits")
	})

	t.Run("lowercase tolerated input is stored uppercase", func(t *testing.T) {
		i, err := iban.Parse("MT84malt011000012345mtlcast001s")
		require.NoError(t, err)
		assert.Equal(t, "MT84MALT011000012345MTLCAST001S", i.String())
	})

	t.Run("must parse panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { iban.MustParse("AA00") })
		assert.NotPanics(t, func() { iban.MustParse("DE89370400440532013000") })
	})
}

func TestIBAN_Identifiers(t *testing.T) {
	tests := []struct {
		value  string
		bank   string
		branch string
	}{
		{value: "DE89370400440532013000", bank: "37040044", branch: ""},
		{value: "FR1420041010050500013M02606", bank: "20041", branch: "01005"},
		{value: "IT60X0542811101000000123456", bank: "05428", branch: "11101"},
		{value: "NL91ABNA0417164300", bank: "ABNA", branch: ""},
		{value: "ES9121000418450200051332", bank: "2100", branch: "0418"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			i := iban.MustParse(tt.value)
			assert.Equal(t, tt.bank, i.BankIdentifier())
			assert.Equal(t, tt.branch, i.BranchIdentifier())
		})
	}
}

func TestIBAN_Formats(t *testing.T) {
	i := iban.MustParse("NL91ABNA0417164300")

	assert.Equal(t, "NL91 ABNA 0417 1643 00", i.Print())
	assert.Equal(t, "NL91XXXXXXXXXX4300", i.Obfuscated())
	assert.True(t, i.Equal(iban.MustParse("NL91 ABNA 0417 1643 00")))
	assert.False(t, i.Equal(iban.MustParse("GB29NWBK60161331926819")))

	var zero iban.IBAN
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.Print())
	assert.Equal(t, "", zero.BBAN())
	assert.Equal(t, "", zero.BankIdentifier())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", iban.Mask(""))
	assert.Equal(t, "XXXXXXXX", iban.Mask("NL91ABNA"))
	assert.Equal(t, "NL91X4300", iban.Mask("NL91A4300"))
	assert.Equal(t, "ÑL91XXÉ!ab", iban.Mask("ÑL91€€É!ab"))
}

func TestBuild(t *testing.T) {
	t.Run("computes check digits", func(t *testing.T) {
		i, err := iban.Build("DE", "3704 0044 0532 0130 00")
		require.NoError(t, err)
		assert.Equal(t, "DE89370400440532013000", i.String())
	})

	t.Run("rejects a BBAN with the wrong structure", func(t *testing.T) {
		_, err := iban.Build("NL", "1234041716430A")
		var perr *iban.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, iban.InvalidStructure, perr.Result.Outcome)
	})

	t.Run("rejects an unknown country", func(t *testing.T) {
		_, err := iban.Build("ZZ", "123456")
		var perr *iban.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, iban.UnknownCountryCode, perr.Result.Outcome)
	})

	t.Run("rejects a malformed country code", func(t *testing.T) {
		_, err := iban.Build("de", "370400440532013000")
		require.Error(t, err)
	})
}
