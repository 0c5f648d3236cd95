// Package iban validates International Bank Account Numbers.
//
// Validation runs as an ordered pipeline over the normalized (whitespace-free)
// value: the two-letter prefix is checked and resolved against a Registry, then the
// length, the per-country structure and finally the ISO 7064 MOD 97-10 checksum are
// verified. Each stage either passes or ends validation with a single Outcome;
// malformed input never produces an error, only a Result.
//
// Country rules are plain data. The built-in table follows the SWIFT IBAN registry
// and uses its BBAN notation: "4!a10!n" is four uppercase letters followed by ten
// digits. Registries are immutable once built and are exposed to callers only
// through read-only views.
//
//	res := iban.Validate("NL91 ABNA 0417 1643 00")
//	if res.IsValid() {
//		fmt.Println(res.Value, res.Country.Name())
//	}
package iban
