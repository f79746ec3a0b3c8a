package fileutil

import "strings"

// CaseInsensitiveFind returns the byte offset of the first occurrence of needle in haystack,
// folding ASCII letters only, or -1 when there is none.
// An empty needle is found at offset 0.
func CaseInsensitiveFind(haystack, needle string) int {
	needleLength := len(needle)

	for i := 0; i+needleLength <= len(haystack); i++ {
		if equalFoldASCII(haystack[i:i+needleLength], needle) {
			return i
		}
	}

	return -1
}

// ReplaceAll replaces every literal occurrence of search in text with replace.
// An empty search leaves text unchanged.
func ReplaceAll(search, replace, text string) string {
	if search == "" {
		return text
	}

	return strings.Join(strings.Split(text, search), replace)
}

// ReplaceAllOptional is ReplaceAll for text that may be absent: nil in, nil out.
func ReplaceAllOptional(search, replace string, text *string) *string {
	if text == nil {
		return nil
	}

	result := ReplaceAll(search, replace, *text)

	return &result
}

func equalFoldASCII(a, b string) bool {
	for i := range len(a) {
		if toUpperASCII(a[i]) != toUpperASCII(b[i]) {
			return false
		}
	}

	return true
}

func toUpperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
