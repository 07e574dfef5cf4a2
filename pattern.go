package culture

import "strings"

const (
	timeTokens = "Hhms"
	dateTokens = "dyM"
)

// TimeSeparator derives the time separator from a long time pattern,
// "H:mm:ss" yields ":".
func TimeSeparator(longTime string) string {
	return Separator(longTime, timeTokens)
}

// DateSeparator derives the date separator from a short date pattern,
// "yyyy-MM-dd" yields "-".
func DateSeparator(shortDate string) string {
	return Separator(shortDate, dateTokens)
}

// Separator returns the literal text that follows the first run of a token
// character in format, up to the next token character or the end of the
// string, with one layer of escaping removed. It returns "" when format holds
// no token character.
func Separator(format, tokens string) string {
	runes := []rune(format)

	index := indexOfToken(runes, 0, tokens)
	if index < 0 {
		return ""
	}

	token := runes[index]
	for index < len(runes) && runes[index] == token {
		index++
	}
	start := index
	if start >= len(runes) {
		return ""
	}

	end := indexOfToken(runes, start, tokens)
	if end < 0 {
		end = len(runes)
	}
	return unescapeRunes(runes[start:end])
}

// indexOfToken finds the first unquoted token character at or after start.
// A backslash hides a following quote or backslash from the quote tracking.
func indexOfToken(runes []rune, start int, tokens string) int {
	inQuote := false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		if !inQuote && strings.ContainsRune(tokens, r) {
			return i
		}
		switch r {
		case '\\':
			if i+1 < len(runes) && (runes[i+1] == '\'' || runes[i+1] == '\\') {
				i++
			}
		case '\'':
			inQuote = !inQuote
		}
	}
	return -1
}

// Unescape removes one layer of pattern escaping: quotes are dropped and
// "\x" becomes "x".
func Unescape(s string) string {
	return unescapeRunes([]rune(s))
}

func unescapeRunes(runes []rune) string {
	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\'':
		case '\\':
			i++
			if i < len(runes) {
				b.WriteRune(runes[i])
			}
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

// DeriveShortTime removes the seconds from a long time pattern:
// "HH:mm:ss" yields "HH:mm" and "hh:mm:ss tt" yields "hh:mm tt".
func DeriveShortTime(longTime string) string {
	pattern := []rune(longTime)
	inQuote := false
	lastToken := -1

	for j := 0; j < len(pattern); j++ {
		switch pattern[j] {
		case '\'':
			inQuote = !inQuote
			continue
		case '\\':
			j++
			continue
		}
		if inQuote {
			continue
		}

		switch pattern[j] {
		case 's':
			// A separator of at most three characters between the previous
			// token and the seconds goes with the seconds.
			span := j - lastToken
			if lastToken >= 0 && span > 1 && span <= 4 && pattern[lastToken+1] != '\'' && pattern[j-1] != '\'' {
				j = lastToken + 1
			}

			end, space := nextTokenAfterSeconds(pattern, j)
			sep := ""
			if space {
				sep = " "
			}

			rest := append([]rune(sep), pattern[end:]...)
			pattern = append(pattern[:j:j], rest...)
		case 'm', 'H', 'h':
			lastToken = j
		}
	}
	return string(pattern)
}

// nextTokenAfterSeconds returns the index of the next unquoted t, m, H or h at
// or after index, and whether a space was skipped on the way. Running off the
// end reports no space.
func nextTokenAfterSeconds(pattern []rune, index int) (int, bool) {
	inQuote := false
	space := false
	for ; index < len(pattern); index++ {
		switch pattern[index] {
		case '\'':
			inQuote = !inQuote
		case '\\':
			index++
			if index < len(pattern) && pattern[index] == ' ' {
				space = true
			}
		case ' ':
			space = true
		case 't', 'm', 'H', 'h':
			if !inQuote {
				return index, space
			}
		}
	}
	return len(pattern), false
}

// Reescape converts a host pattern to the engine's escaping: a backslash
// becomes "\\" and a doubled quote inside a quoted run becomes "\'".
func Reescape(s string) string {
	if !strings.ContainsAny(s, `'\`) {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) * 2)

	inQuote := false
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\'':
			if inQuote && i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteString(`\'`)
				i++
				continue
			}
			inQuote = !inQuote
		case '\\':
			b.WriteString(`\\`)
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// ReescapeAll applies Reescape to every pattern in place and returns patterns.
func ReescapeAll(patterns []string) []string {
	for i, p := range patterns {
		patterns[i] = Reescape(p)
	}
	return patterns
}
