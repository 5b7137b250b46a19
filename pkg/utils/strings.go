package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TypeScript reserved words that cannot be used as bare identifiers.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "implements": true,
	"import": true, "in": true, "instanceof": true, "interface": true, "let": true,
	"new": true, "null": true, "package": true, "private": true, "protected": true,
	"public": true, "return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
}

// RemoveAccents removes accents from a string, converting accented characters to their base forms
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// LowerFirst lower-cases only the first character: "CreateUserDto" -> "createUserDto".
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// IsIdentifier reports whether s can be written as a bare TypeScript
// binding: a syntactically valid name that is not a reserved word.
func IsIdentifier(s string) bool {
	return isIdentifierName(s) && !reservedWords[s]
}

// isIdentifierName checks syntax only. Reserved words pass, since they are
// valid as property and method names.
func isIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}

// QuotePropertyName quotes property names that are not valid identifiers.
func QuotePropertyName(name string) string {
	if isIdentifierName(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
}

// SanitizeIdentifier turns s into a syntactically valid name: accents are
// stripped, other invalid characters become underscores and a leading digit
// is prefixed. Reserved words are left alone, see SafeBinding.
func SanitizeIdentifier(s string) string {
	s = RemoveAccents(s)
	if isIdentifierName(s) {
		return s
	}
	if s == "" {
		return "_"
	}

	var b strings.Builder
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteRune('_')
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// SafeBinding is SanitizeIdentifier plus a trailing underscore for reserved
// words, for names used as classes or local variables.
func SafeBinding(s string) string {
	s = SanitizeIdentifier(s)
	if reservedWords[s] {
		s += "_"
	}
	return s
}
