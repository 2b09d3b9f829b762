package event

import (
	"regexp"
	"strconv"
	"strings"
)

// yearPattern matches the first window of four consecutive digits.
var yearPattern = regexp.MustCompile(`\d{4}`)

// themeSeparators splits a multi-valued theme string on the Portuguese
// conjunction "e" (surrounded by whitespace, any case) or on any single
// comma, semicolon, slash or ampersand.
var themeSeparators = regexp.MustCompile(`(?i)\s+e\s+|[,;/&]`)

// FirstYear extracts the first four-digit year from text. A range like
// "1939-1945" yields 1939; text with no four-digit run yields NoYear.
// It never fails.
func FirstYear(text string) int {
	m := yearPattern.FindString(text)
	if m == "" {
		return NoYear
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return NoYear
	}
	return year
}

// SplitThemes splits a raw theme column into individual theme tags.
// Fragments are trimmed and empty fragments dropped; the left-to-right
// order of the surviving tags is preserved. The result is always a
// non-nil slice.
func SplitThemes(text string) []string {
	themes := []string{}
	if strings.TrimSpace(text) == "" {
		return themes
	}
	for _, part := range themeSeparators.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			themes = append(themes, part)
		}
	}
	return themes
}
