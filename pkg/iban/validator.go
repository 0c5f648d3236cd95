package iban

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// Outcome classifies a validation. Exactly one outcome is set per Result.
type Outcome int

const (
	Valid Outcome = iota + 1
	InvalidLength
	IllegalCharacters
	UnknownCountryCode
	InvalidCheckDigits
	InvalidStructure
)

var outcomeNames = map[Outcome]string{
	Valid:              "Valid",
	InvalidLength:      "InvalidLength",
	IllegalCharacters:  "IllegalCharacters",
	UnknownCountryCode: "UnknownCountryCode",
	InvalidCheckDigits: "InvalidCheckDigits",
	InvalidStructure:   "InvalidStructure",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText encodes the outcome as its name.
func (o Outcome) MarshalText() ([]byte, error) {
	if _, ok := outcomeNames[o]; !ok {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	for k, v := range outcomeNames {
		if v == string(text) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Result is the outcome of validating one value.
type Result struct {
	// Value is the normalized input.
	Value string
	// Outcome is the single classification of the value.
	Outcome Outcome
	// Country is the resolved country, nil when the prefix could not be resolved or
	// the value contains illegal characters.
	Country *CountryInfo
}

// IsValid reports whether the outcome is Valid.
func (r Result) IsValid() bool { return r.Outcome == Valid }

// ValidationMethod selects how strictly structural case rules are applied.
type ValidationMethod int

const (
	// Strict applies each country's case policy to its BBAN segments.
	Strict ValidationMethod = iota + 1
	// Loose accepts lowercase letters in every BBAN segment that holds letters.
	Loose
)

func (m ValidationMethod) String() string {
	switch m {
	case Strict:
		return "strict"
	case Loose:
		return "loose"
	default:
		return fmt.Sprintf("ValidationMethod(%d)", int(m))
	}
}

// MarshalText encodes the method as "strict" or "loose".
func (m ValidationMethod) MarshalText() ([]byte, error) {
	if m != Strict && m != Loose {
		return nil, fmt.Errorf("unknown validation method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a method name, ignoring case.
func (m *ValidationMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseValidationMethod(strings.ToLower(string(text)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseValidationMethod maps "strict" or "loose" to a ValidationMethod.
func ParseValidationMethod(s string) (ValidationMethod, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "loose":
		return Loose, nil
	default:
		return 0, invalidArgument("method", "unknown validation method %q", s)
	}
}

// Options configures a Validator.
type Options struct {
	Registry *Registry
	Method   ValidationMethod
}

// DefaultOptions validates strictly against the built-in registry.
func DefaultOptions() *Options {
	return &Options{Registry: DefaultRegistry(), Method: Strict}
}

// Validator runs the validation pipeline. It holds no mutable state and is safe for
// concurrent use.
type Validator struct {
	registry *Registry
	method   ValidationMethod
}

// NewValidator checks opts and builds a Validator. Missing values fail with an error
// wrapping ErrNilArgument, unusable ones with ErrInvalidArgument.
func NewValidator(opts *Options) (*Validator, error) {
	if opts == nil {
		return nil, nilArgument("options")
	}
	if opts.Registry == nil {
		return nil, nilArgument("registry")
	}
	if opts.Registry.Len() == 0 {
		return nil, invalidArgument("registry", "contains no countries")
	}
	switch opts.Method {
	case 0:
		return nil, nilArgument("method")
	case Strict, Loose:
	default:
		return nil, invalidArgument("method", "unknown validation method %d", int(opts.Method))
	}
	return &Validator{registry: opts.Registry, method: opts.Method}, nil
}

// Method returns the configured validation method.
func (v *Validator) Method() ValidationMethod { return v.method }

// Registry returns the registry the validator resolves countries against.
func (v *Validator) Registry() *Registry { return v.registry }

// SupportedCountries returns a read-only view of the registry.
func (v *Validator) SupportedCountries() CountryMap { return v.registry.View() }

// Validate classifies value. It never fails: every input, including the empty
// string, yields a Result.
func (v *Validator) Validate(value string) Result {
	value = Normalize(value)
	if value == "" {
		return Result{Value: value, Outcome: InvalidLength}
	}

	// The prefix must be two uppercase letters before the registry is consulted.
	if !isUpper(value[0]) || (len(value) > 1 && !isUpper(value[1])) {
		return Result{Value: value, Outcome: IllegalCharacters}
	}
	if len(value) < 2 {
		return Result{Value: value, Outcome: InvalidLength}
	}

	country, ok := v.registry.Lookup(value[:2])
	if !ok {
		return Result{Value: value, Outcome: UnknownCountryCode}
	}

	// Length is counted in characters; a non-ASCII character is rejected below.
	if utf8.RuneCountInString(value) != country.length {
		return Result{Value: value, Outcome: InvalidLength, Country: country}
	}

	for i := 0; i < len(value); i++ {
		ch := value[i]
		if !isDigit(ch) && !isUpper(ch) && !isLower(ch) {
			return Result{Value: value, Outcome: IllegalCharacters}
		}
	}

	if !v.matchStructure(value, country) {
		return Result{Value: value, Outcome: InvalidStructure, Country: country}
	}

	if mod97(value) != 1 {
		return Result{Value: value, Outcome: InvalidCheckDigits, Country: country}
	}

	return Result{Value: value, Outcome: Valid, Country: country}
}

// matchStructure checks the country code and check digits strictly, then the BBAN
// with the case policy of the method and country.
func (v *Validator) matchStructure(value string, country *CountryInfo) bool {
	if !ibanPrefix.matchAt(value, 0, false) {
		return false
	}
	allowLower := v.method == Loose || country.allowsLowerCase
	return country.bban.matchAt(value, ibanPrefix.Len(), allowLower)
}

var defaultValidator = sync.OnceValue(func() *Validator {
	v, err := NewValidator(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return v
})

// DefaultValidator returns the process-wide strict validator over DefaultRegistry.
func DefaultValidator() *Validator { return defaultValidator() }

// Validate classifies value with the default validator.
func Validate(value string) Result { return DefaultValidator().Validate(value) }
