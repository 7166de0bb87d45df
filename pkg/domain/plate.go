package domain

import (
	"regexp"
	"strings"

	dErrors "picoplaca/pkg/domain-errors"
)

// Plate is a validated Ecuadorian license plate.
// Invariant: 2 or 3 uppercase letters, a single hyphen, and a 4-digit suffix.
//
// Usage: construct via ParsePlate at trust boundaries; direct construction
// bypasses validation.
type Plate struct {
	prefix string
	suffix string
}

var platePattern = regexp.MustCompile(`^[A-Z]{2,3}-[0-9]{4}$`)

// exemptClassLetters are the second-position prefix letters that identify
// official fleets (government, municipal, state enterprise, experimental),
// which circulate free of the plate-digit restriction. Two-letter prefixes
// (diplomatic corps) are exempt as a class.
const exemptClassLetters = "AUZEXM"

// ParsePlate constructs a Plate from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or does not match
// XX-YYYY / XXX-YYYY (uppercase letters, 4-digit suffix).
func ParsePlate(s string) (Plate, error) {
	if s == "" {
		return Plate{}, dErrors.New(dErrors.CodeInvalidInput, "plate cannot be empty")
	}
	if !platePattern.MatchString(s) {
		return Plate{}, dErrors.New(dErrors.CodeInvalidInput,
			"plate must be in the format XX-YYYY or XXX-YYYY, where X is a capital letter and Y is a digit")
	}
	prefix, suffix, _ := strings.Cut(s, "-")
	return Plate{prefix: prefix, suffix: suffix}, nil
}

// LastDigit returns the final digit of the numeric suffix, the key used to
// determine the restricted weekday.
func (p Plate) LastDigit() int {
	return int(p.suffix[len(p.suffix)-1] - '0')
}

// Exempt reports whether the plate belongs to a vehicle class that is never
// restricted: diplomatic plates (two-letter prefix) and official fleets
// (second prefix letter in AUZEXM).
func (p Plate) Exempt() bool {
	if len(p.prefix) == 2 {
		return true
	}
	return strings.ContainsRune(exemptClassLetters, rune(p.prefix[1]))
}

func (p Plate) Prefix() string { return p.prefix }

func (p Plate) Suffix() string { return p.suffix }

func (p Plate) String() string { return p.prefix + "-" + p.suffix }
