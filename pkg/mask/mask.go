package mask

import (
	"regexp"
	"strings"
)

// DigitSlot marks a position in a pattern that accepts one digit
const DigitSlot = '0'

var nonDigits = regexp.MustCompile(`\D`)

// Digits strips every non-digit character from the input
func Digits(input string) string {
	return nonDigits.ReplaceAllString(input, "")
}

// Pattern is a literal template such as "(00) 0000-0000"
type Pattern string

// Capacity returns the number of digit slots in the pattern
func (p Pattern) Capacity() int {
	return strings.Count(string(p), string(DigitSlot))
}

// Apply fills the pattern with digits. Literals are only emitted when a
// digit follows them and surplus digits are dropped.
func (p Pattern) Apply(digits string) string {
	if digits == "" {
		return ""
	}

	var (
		out     strings.Builder
		pending strings.Builder
		next    int
	)
	for _, r := range string(p) {
		if next >= len(digits) {
			break
		}
		if r != DigitSlot {
			pending.WriteRune(r)
			continue
		}
		out.WriteString(pending.String())
		pending.Reset()
		out.WriteByte(digits[next])
		next++
	}
	return out.String()
}

// Dynamic picks one of several patterns depending on how many digits
// have been entered.
type Dynamic []Pattern

// Resolve returns the first pattern able to hold n digits, or the last
// pattern when none can.
func (d Dynamic) Resolve(n int) Pattern {
	if len(d) == 0 {
		return ""
	}
	for _, p := range d {
		if p.Capacity() >= n {
			return p
		}
	}
	return d[len(d)-1]
}

// MaxDigits is the capacity of the widest pattern
func (d Dynamic) MaxDigits() int {
	widest := 0
	for _, p := range d {
		if c := p.Capacity(); c > widest {
			widest = c
		}
	}
	return widest
}

// Format masks the digits of raw with the pattern that fits them
func (d Dynamic) Format(raw string) string {
	digits := Digits(raw)
	if limit := d.MaxDigits(); len(digits) > limit {
		digits = digits[:limit]
	}
	return d.Resolve(len(digits)).Apply(digits)
}

var (
	// Phone accepts Brazilian fixed lines and mobiles with the ninth digit
	Phone = Dynamic{
		"(00) 0000-0000",
		"(00) 00000-0000",
	}

	// Document accepts CPF (individuals) and CNPJ (organizations)
	Document = Dynamic{
		"000.000.000-00",
		"00.000.000/0000-00",
	}
)
