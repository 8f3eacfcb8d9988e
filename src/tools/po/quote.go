// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"strings"
)

// Unquote returns the text strictly between the first and the last double
// quote of line. ok is false if line has less than two double quotes.
func Unquote(line string) (value string, ok bool) {
	begin := strings.Index(line, `"`)
	end := strings.LastIndex(line, `"`)
	if begin == -1 || end <= begin {
		return "", false
	}
	return line[begin+1 : end], true
}

// Escape prepares value to be written between double quotes.
//
// Only double quotes are escaped. A value made of white space only is
// written as an empty string.
func Escape(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return strings.Replace(value, `"`, `\"`, -1)
}

var simpleEscapes = map[byte]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	'?':  '?',
}

// Unescape replaces the C escape sequences of s by the characters they
// stand for: \a \b \f \n \r \t \v \" \' \\ \?, octal sequences of one to
// three digits and \u followed by four hexadecimal digits. A backslash
// followed by anything else is kept as is.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			sb.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case isOctal(next):
			// First digit 0-3 allows three digits, otherwise two.
			maxLen := 2
			if next <= '3' {
				maxLen = 3
			}
			j, code := i+1, 0
			for j < len(s) && j < i+1+maxLen && isOctal(s[j]) {
				code = code*8 + int(s[j]-'0')
				j++
			}
			sb.WriteRune(rune(code))
			i = j - 1
		case next == 'u' && i+5 < len(s) && isHex(s[i+2:i+6]):
			code := 0
			for _, h := range s[i+2 : i+6] {
				code = code*16 + hexValue(byte(h))
			}
			sb.WriteRune(rune(code))
			i += 5
		default:
			r, ok := simpleEscapes[next]
			if !ok {
				sb.WriteByte(c)
				continue
			}
			sb.WriteRune(r)
			i++
		}
	}
	return sb.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if hexValue(s[i]) < 0 {
			return false
		}
	}
	return true
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
