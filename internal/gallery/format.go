package gallery

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatDate turns an ISO-8601 timestamp into DD/MM/YYYY by reversing the
// dash-separated segments of its first 10 characters.
func FormatDate(iso string) string {
	if len(iso) > 10 {
		iso = iso[:10]
	}
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// FormatPhone regroups a punctuated phone number as (XXX) XXX-XXXX. Short
// numbers are truncated at whatever group they run out in; no digits at all
// yields the empty string.
func FormatPhone(raw string) string {
	digits := []rune(strings.Map(func(r rune) rune {
		switch r {
		case '-', '(', ')', ' ', '\t':
			return -1
		}
		return r
	}, raw))
	if len(digits) == 0 {
		return ""
	}
	return "(" + clampSlice(digits, 0, 3) + ") " + clampSlice(digits, 3, 6) + "-" + clampSlice(digits, 6, len(digits))
}

func clampSlice(s []rune, from, to int) string {
	from = min(from, len(s))
	to = min(to, len(s))
	if from >= to {
		return ""
	}
	return string(s[from:to])
}

// FullName is "First Last" in title case.
func FullName(p Profile) string {
	name := strings.TrimSpace(p.Name.First + " " + p.Name.Last)
	// Caser is stateful; one per call keeps this safe across sessions.
	return cases.Title(language.Und).String(name)
}

// CityState is the card's location line.
func CityState(p Profile) string {
	return strings.TrimSpace(p.Location.City + " " + p.Location.State)
}

// FormatAddress is "number, street, state, postcode".
// An address with every part missing is empty.
func FormatAddress(p Profile) string {
	parts := []string{
		p.Location.Street.Number.String(),
		p.Location.Street.Name,
		p.Location.State,
		p.Location.Postcode.String(),
	}
	if strings.Join(parts, "") == "" {
		return ""
	}
	return strings.Join(parts, ", ")
}

// Birthday is the formatted date of birth.
func Birthday(p Profile) string {
	return FormatDate(p.DOB.Date)
}
