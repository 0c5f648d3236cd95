package iban

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Registry maps country codes to their rules. It is immutable after construction
// and safe for concurrent use without locking.
type Registry struct {
	countries map[string]*CountryInfo
	codes     []string
}

// NewRegistry builds a registry from the given countries. Codes must be unique.
func NewRegistry(countries ...*CountryInfo) (*Registry, error) {
	r := &Registry{
		countries: make(map[string]*CountryInfo, len(countries)),
		codes:     make([]string, 0, len(countries)),
	}
	for i, c := range countries {
		if c == nil {
			return nil, nilArgument(fmt.Sprintf("countries[%d]", i))
		}
		if _, dup := r.countries[c.code]; dup {
			return nil, invalidArgument("countries", "duplicate country code %s", c.code)
		}
		r.countries[c.code] = c
		r.codes = append(r.codes, c.code)
	}
	slices.Sort(r.codes)
	return r, nil
}

// Merge returns a new registry holding every country of base with overrides applied
// on top: an override replaces the base entry with the same code or adds a new one.
// base itself is left untouched.
func Merge(base *Registry, overrides ...*CountryInfo) (*Registry, error) {
	if base == nil {
		return nil, nilArgument("base")
	}

	byCode := make(map[string]*CountryInfo, base.Len()+len(overrides))
	for code, c := range base.countries {
		byCode[code] = c
	}
	for i, c := range overrides {
		if c == nil {
			return nil, nilArgument(fmt.Sprintf("overrides[%d]", i))
		}
		byCode[c.code] = c
	}

	merged := make([]*CountryInfo, 0, len(byCode))
	for _, c := range byCode {
		merged = append(merged, c)
	}
	return NewRegistry(merged...)
}

// Lookup returns the rules for a country code.
func (r *Registry) Lookup(code string) (*CountryInfo, bool) {
	c, ok := r.countries[code]
	return c, ok
}

// Len returns the number of countries.
func (r *Registry) Len() int { return len(r.countries) }

// Codes returns the sorted country codes. The slice is a copy.
func (r *Registry) Codes() []string { return slices.Clone(r.codes) }

// All iterates countries in code order.
func (r *Registry) All() iter.Seq2[string, *CountryInfo] {
	return func(yield func(string, *CountryInfo) bool) {
		for _, code := range r.codes {
			if !yield(code, r.countries[code]) {
				return
			}
		}
	}
}

// View exposes the registry as a CountryMap that rejects writes.
func (r *Registry) View() CountryMap { return readOnlyCountries{r: r} }

// CountryMap is a keyed collection of country rules.
type CountryMap interface {
	Get(code string) (*CountryInfo, bool)
	Len() int
	Codes() []string
	Set(code string, info *CountryInfo) error
	Delete(code string) error
	Clear() error
}

// readOnlyCountries forwards reads to the registry and fails every write with
// ErrUnsupportedOperation.
type readOnlyCountries struct {
	r *Registry
}

func (v readOnlyCountries) Get(code string) (*CountryInfo, bool) { return v.r.Lookup(code) }
func (v readOnlyCountries) Len() int                             { return v.r.Len() }
func (v readOnlyCountries) Codes() []string                      { return v.r.Codes() }

func (v readOnlyCountries) Set(code string, _ *CountryInfo) error {
	return fmt.Errorf("set %s on read-only country map: %w", code, ErrUnsupportedOperation)
}

func (v readOnlyCountries) Delete(code string) error {
	return fmt.Errorf("delete %s from read-only country map: %w", code, ErrUnsupportedOperation)
}

func (v readOnlyCountries) Clear() error {
	return fmt.Errorf("clear read-only country map: %w", ErrUnsupportedOperation)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	countries := make([]*CountryInfo, 0, len(swiftRegistry))
	for _, def := range swiftRegistry {
		countries = append(countries, MustCountryInfo(def))
	}
	r, err := NewRegistry(countries...)
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the built-in registry of IBAN countries. It is created on
// first use and shared by the whole process.
func DefaultRegistry() *Registry { return defaultRegistry() }
