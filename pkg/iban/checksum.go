package iban

import (
	"fmt"
	"strconv"
)

// chunkDigits bounds how many digits are folded into the running remainder at once.
// remainder*10^9 + chunk stays well inside uint64.
const chunkDigits = 9

// mod97 computes the ISO 7064 MOD 97-10 remainder of an IBAN: the first four
// characters are moved to the end and letters expand to two digits (A=10 .. Z=35).
// value must be at least four characters from [A-Za-z0-9].
func mod97(value string) int {
	var s mod97State
	for i := 4; i < len(value); i++ {
		s.feed(value[i])
	}
	for i := 0; i < 4; i++ {
		s.feed(value[i])
	}
	return s.sum()
}

type mod97State struct {
	remainder uint64
	chunk     uint64
	scale     uint64
	n         int
}

func (s *mod97State) feed(ch byte) {
	switch {
	case isDigit(ch):
		s.push(uint64(ch - '0'))
	case isUpper(ch):
		v := uint64(ch-'A') + 10
		s.push(v / 10)
		s.push(v % 10)
	case isLower(ch):
		v := uint64(ch-'a') + 10
		s.push(v / 10)
		s.push(v % 10)
	}
}

func (s *mod97State) push(d uint64) {
	if s.n == 0 {
		s.scale = 1
	}
	s.chunk = s.chunk*10 + d
	s.scale *= 10
	s.n++
	if s.n == chunkDigits {
		s.flush()
	}
}

func (s *mod97State) flush() {
	if s.n == 0 {
		return
	}
	s.remainder = (s.remainder*s.scale + s.chunk) % 97
	s.chunk, s.scale, s.n = 0, 1, 0
}

func (s *mod97State) sum() int {
	s.flush()
	return int(s.remainder)
}

// CheckDigits computes the two check digits for a BBAN in the given country.
func CheckDigits(countryCode, bban string) (string, error) {
	if len(countryCode) != 2 || !isUpper(countryCode[0]) || !isUpper(countryCode[1]) {
		return "", fmt.Errorf("invalid country code %q: must be two uppercase letters", countryCode)
	}
	if bban == "" {
		return "", fmt.Errorf("empty BBAN")
	}
	for i := 0; i < len(bban); i++ {
		ch := bban[i]
		if !isDigit(ch) && !isUpper(ch) && !isLower(ch) {
			return "", fmt.Errorf("invalid character %q in BBAN", ch)
		}
	}

	// Placeholder check digits "00" give 98 - remainder as the real ones.
	r := mod97(countryCode + "00" + bban)
	cd := strconv.Itoa(98 - r)
	if len(cd) == 1 {
		cd = "0" + cd
	}
	return cd, nil
}
