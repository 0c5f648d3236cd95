package iban

// Span locates an identifier inside the BBAN. A zero Span means the country
// publishes no such identifier.
type Span struct {
	Offset int
	Length int
}

// IsZero reports whether the span is empty.
func (s Span) IsZero() bool { return s.Length == 0 }

func (s Span) end() int { return s.Offset + s.Length }

// CountryDefinition is the raw description of a country's IBAN rules, as found in a
// registry table or database row.
type CountryDefinition struct {
	Code            string
	Name            string
	Length          int
	BBANFormat      string
	AllowsLowerCase bool
	SEPA            bool
	Bank            Span
	Branch          Span
}

// CountryInfo holds the validation rules of one country. Values are immutable once
// built and shared read-only by every validation.
type CountryInfo struct {
	code            string
	name            string
	length          int
	bban            Pattern
	structure       Pattern
	allowsLowerCase bool
	sepa            bool
	bank            Span
	branch          Span
}

// NewCountryInfo validates def and builds the immutable CountryInfo for it.
func NewCountryInfo(def CountryDefinition) (*CountryInfo, error) {
	if len(def.Code) != 2 || !isUpper(def.Code[0]) || !isUpper(def.Code[1]) {
		return nil, invalidArgument("code", "%q is not two uppercase letters", def.Code)
	}

	bban, err := ParsePattern(def.BBANFormat)
	if err != nil {
		return nil, invalidArgument("bban_format", "%s: %v", def.Code, err)
	}

	structure := append(ibanPrefix.clone(), bban...)
	if def.Length != structure.Len() {
		return nil, invalidArgument("length", "%s: declared length %d but pattern %s describes %d",
			def.Code, def.Length, structure, structure.Len())
	}

	for name, s := range map[string]Span{"bank": def.Bank, "branch": def.Branch} {
		if s.IsZero() {
			continue
		}
		if s.Offset < 0 || s.Length < 0 || s.end() > bban.Len() {
			return nil, invalidArgument(name, "%s: span %d+%d outside BBAN of length %d",
				def.Code, s.Offset, s.Length, bban.Len())
		}
	}

	return &CountryInfo{
		code:            def.Code,
		name:            def.Name,
		length:          def.Length,
		bban:            bban,
		structure:       structure,
		allowsLowerCase: def.AllowsLowerCase,
		sepa:            def.SEPA,
		bank:            def.Bank,
		branch:          def.Branch,
	}, nil
}

// MustCountryInfo is NewCountryInfo that panics on error. Intended for package-level data.
func MustCountryInfo(def CountryDefinition) *CountryInfo {
	c, err := NewCountryInfo(def)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 3166-1 alpha-2 country code.
func (c *CountryInfo) Code() string { return c.code }

// Name returns the English country name.
func (c *CountryInfo) Name() string { return c.name }

// Length returns the expected total IBAN length.
func (c *CountryInfo) Length() int { return c.length }

// Structure returns the pattern of the whole IBAN: country code, check digits, BBAN.
func (c *CountryInfo) Structure() Pattern { return c.structure.clone() }

// BBAN returns the pattern of the BBAN part only.
func (c *CountryInfo) BBAN() Pattern { return c.bban.clone() }

// AllowsLowerCase reports whether letter-bearing BBAN segments tolerate lowercase.
func (c *CountryInfo) AllowsLowerCase() bool { return c.allowsLowerCase }

// SEPA reports whether the country is part of the Single Euro Payments Area.
func (c *CountryInfo) SEPA() bool { return c.sepa }

// Bank returns the position of the bank identifier inside the BBAN.
func (c *CountryInfo) Bank() Span { return c.bank }

// Branch returns the position of the branch identifier inside the BBAN.
func (c *CountryInfo) Branch() Span { return c.branch }

// Definition returns the raw definition the info was built from.
func (c *CountryInfo) Definition() CountryDefinition {
	return CountryDefinition{
		Code:            c.code,
		Name:            c.name,
		Length:          c.length,
		BBANFormat:      c.bban.String(),
		AllowsLowerCase: c.allowsLowerCase,
		SEPA:            c.sepa,
		Bank:            c.bank,
		Branch:          c.branch,
	}
}

func (c *CountryInfo) String() string { return c.code }
