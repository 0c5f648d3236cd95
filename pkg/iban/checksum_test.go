package iban

import (
	"math/big"
	"strings"
	"testing"
)

// bigMod97 is the textbook computation on an arbitrary-precision integer.
func bigMod97(value string) int {
	rearranged := value[4:] + value[:4]
	var digits strings.Builder
	for i := 0; i < len(rearranged); i++ {
		ch := rearranged[i]
		if isDigit(ch) {
			digits.WriteByte(ch)
			continue
		}
		n := int(ch-'A') + 10
		if isLower(ch) {
			n = int(ch-'a') + 10
		}
		digits.WriteString(big.NewInt(int64(n)).String())
	}
	n, _ := new(big.Int).SetString(digits.String(), 10)
	return int(new(big.Int).Mod(n, big.NewInt(97)).Int64())
}

func TestMod97(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{value: "NL91ABNA0417164300", want: 1},
		{value: "GB29NWBK60161331926819", want: 1},
		{value: "MT84MALT011000012345MTLCAST001S", want: 1},
		{value: "mt84malt011000012345mtlcast001s", want: 1},
		{value: "LC55HEMM000100010012001200023015", want: 1},
		{value: "NL92ABNA0417164300", want: 2},
		{value: "ZZ00", want: bigMod97("ZZ00")},
		{value: "GB00NWBK60161331926819", want: bigMod97("GB00NWBK60161331926819")},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := mod97(tt.value); got != tt.want {
				t.Errorf("mod97(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestMod97_MatchesBigInt(t *testing.T) {
	alphabet := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Deterministic spread of values up to the maximum IBAN length.
	for length := 4; length <= 34; length++ {
		var b strings.Builder
		for i := 0; i < length; i++ {
			b.WriteByte(alphabet[(i*7+length*3)%len(alphabet)])
		}
		value := b.String()
		if got, want := mod97(value), bigMod97(value); got != want {
			t.Errorf("mod97(%q) = %d, want %d", value, got, want)
		}
	}
}

func TestCheckDigits(t *testing.T) {
	tests := []struct {
		country string
		bban    string
		want    string
	}{
		{country: "NL", bban: "ABNA0417164300", want: "91"},
		{country: "GB", bban: "NWBK60161331926819", want: "29"},
		{country: "DE", bban: "370400440532013000", want: "89"},
		{country: "AD", bban: "00012030200359100100", want: "12"},
		{country: "XK", bban: "1212012345678906", want: "05"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, err := CheckDigits(tt.country, tt.bban)
			if err != nil {
				t.Fatalf("CheckDigits returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CheckDigits(%q, %q) = %q, want %q", tt.country, tt.bban, got, tt.want)
			}
			if r := mod97(tt.country + got + tt.bban); r != 1 {
				t.Errorf("assembled IBAN has remainder %d", r)
			}
		})
	}
}

func TestCheckDigits_Errors(t *testing.T) {
	cases := []struct{ country, bban string }{
		{"nl", "ABNA0417164300"},
		{"N", "ABNA0417164300"},
		{"NL", ""},
		{"NL", "ABNA-417164300"},
	}
	for _, c := range cases {
		if _, err := CheckDigits(c.country, c.bban); err == nil {
			t.Errorf("CheckDigits(%q, %q) expected error", c.country, c.bban)
		}
	}
}
