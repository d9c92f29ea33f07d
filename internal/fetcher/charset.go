package fetcher

import (
	"fmt"
	"strings"
)

const charsetMarker = "charset="

// GetBetween returns the text between the first occurrence of left and the
// first occurrence of right after it.
func GetBetween(s, left, right string) (string, error) {
	leftIndex := strings.Index(s, left)
	if leftIndex == -1 {
		return "", fmt.Errorf("%w: %q not found", ErrMalformedContent, left)
	}
	start := leftIndex + len(left)

	rightIndex := strings.Index(s[start:], right)
	if rightIndex == -1 {
		return "", fmt.Errorf("%w: no %q after %q", ErrMalformedContent, right, left)
	}

	return s[start : start+rightIndex], nil
}

// SniffCharset looks for the first literal "charset=" in text and returns the
// identifier that follows it, up to the next double quote. A quote right after
// the marker (charset="X") is skipped. found is false when there is no marker.
//
// This is a plain substring search: a "charset=" inside a comment or script
// matches too.
func SniffCharset(text string) (id string, found bool, err error) {
	idx := strings.Index(text, charsetMarker)
	if idx == -1 {
		return "", false, nil
	}

	left := charsetMarker
	if strings.HasPrefix(text[idx+len(charsetMarker):], `"`) {
		left += `"`
	}

	id, err = GetBetween(text, left, `"`)
	if err != nil {
		return "", true, err
	}
	return id, true, nil
}
