package util

import "unicode"

// IsNumber accepts ascii digits only, in literals and identifiers alike.
func IsNumber(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsUnderScore(r rune) bool {
	return r == '_'
}

// IsLetter accepts any unicode letter, not only ascii ones.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func IsLetterOrUnderscore(r rune) bool {
	return IsLetter(r) || IsUnderScore(r)
}

func IsLetterOrUnderscoreOrNumber(r rune) bool {
	return IsLetter(r) || IsUnderScore(r) || IsNumber(r)
}

// IsBlank reports whitespace that carries no meaning. A newline is not blank,
// it separates lines.
func IsBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}
