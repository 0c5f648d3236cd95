package iban

import (
	"fmt"
	"strconv"
	"strings"
)

// CharClass is the set of characters a structural token accepts.
type CharClass uint8

const (
	// Digits accepts 0-9 (registry notation "n").
	Digits CharClass = iota + 1
	// UpperLetters accepts A-Z (registry notation "a").
	UpperLetters
	// Alphanumeric accepts A-Z and 0-9 (registry notation "c").
	Alphanumeric
	// MixedAlphanumeric accepts A-Z, a-z and 0-9. Letter-bearing segments widen to
	// this class when lowercase is tolerated.
	MixedAlphanumeric
)

// Symbol returns the registry notation letter for the class.
func (c CharClass) Symbol() byte {
	switch c {
	case Digits:
		return 'n'
	case UpperLetters:
		return 'a'
	case Alphanumeric:
		return 'c'
	case MixedAlphanumeric:
		return 'x'
	default:
		return '?'
	}
}

func (c CharClass) String() string {
	switch c {
	case Digits:
		return "digits"
	case UpperLetters:
		return "upper-letters"
	case Alphanumeric:
		return "alphanumeric"
	case MixedAlphanumeric:
		return "mixed-alphanumeric"
	default:
		return "unknown"
	}
}

// accepts reports whether ch belongs to the class. With allowLower set, letter-bearing
// classes also accept a-z.
func (c CharClass) accepts(ch byte, allowLower bool) bool {
	switch c {
	case Digits:
		return isDigit(ch)
	case UpperLetters:
		return isUpper(ch) || (allowLower && isLower(ch))
	case Alphanumeric:
		return isUpper(ch) || isDigit(ch) || (allowLower && isLower(ch))
	case MixedAlphanumeric:
		return isUpper(ch) || isLower(ch) || isDigit(ch)
	default:
		return false
	}
}

// Token is one fixed-length group of a structural pattern.
type Token struct {
	Class  CharClass
	Length int
}

func (t Token) String() string {
	return fmt.Sprintf("%d!%c", t.Length, t.Class.Symbol())
}

// Pattern is an ordered sequence of tokens describing a fixed-length value.
type Pattern []Token

// ibanPrefix is the country code followed by the check digits.
var ibanPrefix = Pattern{{Class: UpperLetters, Length: 2}, {Class: Digits, Length: 2}}

// ParsePattern parses SWIFT registry notation such as "4!a10!n".
func ParsePattern(notation string) (Pattern, error) {
	if notation == "" {
		return nil, fmt.Errorf("empty pattern notation")
	}

	var p Pattern
	rest := notation
	for rest != "" {
		bang := strings.IndexByte(rest, '!')
		if bang <= 0 || bang+1 >= len(rest) {
			return nil, fmt.Errorf("malformed pattern notation %q", notation)
		}
		n, err := strconv.Atoi(rest[:bang])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid token length %q in %q", rest[:bang], notation)
		}

		var class CharClass
		switch rest[bang+1] {
		case 'n':
			class = Digits
		case 'a':
			class = UpperLetters
		case 'c':
			class = Alphanumeric
		case 'x':
			class = MixedAlphanumeric
		default:
			return nil, fmt.Errorf("unknown character class %q in %q", rest[bang+1], notation)
		}

		p = append(p, Token{Class: class, Length: n})
		rest = rest[bang+2:]
	}
	return p, nil
}

// MustParsePattern is ParsePattern that panics on error. Intended for package-level data.
func MustParsePattern(notation string) Pattern {
	p, err := ParsePattern(notation)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the total number of characters the pattern describes.
func (p Pattern) Len() int {
	n := 0
	for _, t := range p {
		n += t.Length
	}
	return n
}

// String renders the pattern in registry notation.
func (p Pattern) String() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteString(t.String())
	}
	return b.String()
}

// Match reports whether value has exactly the pattern's length and every position
// satisfies its token's class.
func (p Pattern) Match(value string, allowLower bool) bool {
	if len(value) != p.Len() {
		return false
	}
	return p.matchAt(value, 0, allowLower)
}

// matchAt checks the tokens against value starting at offset. The caller guarantees
// value is long enough.
func (p Pattern) matchAt(value string, offset int, allowLower bool) bool {
	pos := offset
	for _, t := range p {
		for i := 0; i < t.Length; i++ {
			if !t.Class.accepts(value[pos], allowLower) {
				return false
			}
			pos++
		}
	}
	return true
}

func (p Pattern) clone() Pattern {
	out := make(Pattern, len(p))
	copy(out, p)
	return out
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
