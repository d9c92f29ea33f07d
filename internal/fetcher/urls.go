package fetcher

import "regexp"

var urlRegex = regexp.MustCompile(`https?://[a-zA-Z0-9\p{L}\p{N}\-._~:/?#\[\]@!$&'()*+,;=%]+[a-zA-Z0-9\p{L}\p{N}\-._~:/?#\[\]@!$&'()*+,;=%]`)

// ExtractURLs returns every http(s) URL found in free text, in order.
func ExtractURLs(text string) []string {
	return urlRegex.FindAllString(text, -1)
}
