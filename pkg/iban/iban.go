package iban

import (
	"strings"
)

// IBAN is a validated International Bank Account Number in electronic format.
// The zero value is not a valid IBAN.
type IBAN struct {
	value   string
	country *CountryInfo
}

// Parse validates s with the default validator and returns the IBAN.
func Parse(s string) (IBAN, error) { return DefaultValidator().Parse(s) }

// MustParse is Parse that panics on error. Intended for package-level fixtures.
func MustParse(s string) IBAN {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

// Parse validates s and returns the IBAN. A failed validation is reported as a
// *ParseError carrying the full Result.
func (v *Validator) Parse(s string) (IBAN, error) {
	res := v.Validate(s)
	if !res.IsValid() {
		return IBAN{}, &ParseError{Result: res}
	}
	return IBAN{value: strings.ToUpper(res.Value), country: res.Country}, nil
}

// Build assembles an IBAN from a country code and BBAN, computing the check digits.
func (v *Validator) Build(countryCode, bban string) (IBAN, error) {
	bban = Normalize(bban)
	cd, err := CheckDigits(countryCode, bban)
	if err != nil {
		return IBAN{}, err
	}
	return v.Parse(countryCode + cd + bban)
}

// Build assembles an IBAN with the default validator.
func Build(countryCode, bban string) (IBAN, error) { return DefaultValidator().Build(countryCode, bban) }

// String returns the electronic format, e.g. NL91ABNA0417164300.
func (i IBAN) String() string { return i.value }

// IsZero reports whether i is the zero value.
func (i IBAN) IsZero() bool { return i.value == "" }

// Equal reports whether both IBANs have the same electronic format.
func (i IBAN) Equal(other IBAN) bool { return i.value == other.value }

// Country returns the rules of the IBAN's country.
func (i IBAN) Country() *CountryInfo { return i.country }

// CountryCode returns the two-letter country code.
func (i IBAN) CountryCode() string {
	if i.IsZero() {
		return ""
	}
	return i.value[:2]
}

// CheckDigits returns the two check digits.
func (i IBAN) CheckDigits() string {
	if i.IsZero() {
		return ""
	}
	return i.value[2:4]
}

// BBAN returns the Basic Bank Account Number.
func (i IBAN) BBAN() string {
	if i.IsZero() {
		return ""
	}
	return i.value[4:]
}

// BankIdentifier returns the bank code, or "" when the country defines none.
func (i IBAN) BankIdentifier() string {
	if i.IsZero() {
		return ""
	}
	return i.span(i.country.bank)
}

// BranchIdentifier returns the branch code, or "" when the country defines none.
func (i IBAN) BranchIdentifier() string {
	if i.IsZero() {
		return ""
	}
	return i.span(i.country.branch)
}

func (i IBAN) span(s Span) string {
	if s.IsZero() {
		return ""
	}
	bban := i.BBAN()
	return bban[s.Offset:s.end()]
}

// Print returns the print format: groups of four characters separated by spaces.
func (i IBAN) Print() string {
	var b strings.Builder
	b.Grow(len(i.value) + len(i.value)/4)
	for n := 0; n < len(i.value); n++ {
		if n > 0 && n%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(i.value[n])
	}
	return b.String()
}

// Obfuscated keeps the country code, check digits and last four characters and
// masks the rest, e.g. NL91XXXXXXXXXX4300.
func (i IBAN) Obfuscated() string {
	return Mask(i.value)
}

// Mask hides everything but the first four and last four characters of s. It works
// on any string so unvalidated input can be logged or stored safely.
func Mask(s string) string {
	const visible = 4
	r := []rune(s)
	if len(r) <= 2*visible {
		return strings.Repeat("X", len(r))
	}
	return string(r[:visible]) + strings.Repeat("X", len(r)-2*visible) + string(r[len(r)-visible:])
}
