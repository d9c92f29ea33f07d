// Package extract reduces a decoded HTML page to its readable text.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const boilerplateSelector = "script, style, noscript, template, footer, nav, aside, " +
	".cookie-consent, .promoted-link, .sidebar, .login-form, .signup-form, .hidden"

var whitespace = regexp.MustCompile(`\s+`)

// IsHTML guesses from the leading markup whether body is an HTML document.
func IsHTML(body string) bool {
	trimmed := strings.TrimSpace(body)
	lower := strings.ToLower(trimmed[:min(len(trimmed), 512)])
	return strings.HasPrefix(lower, "<!doctype html") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(trimmed, "<head>") ||
		strings.Contains(trimmed, "<body>")
}

// Text returns the visible text of an HTML document with boilerplate
// elements removed and whitespace collapsed.
func Text(body string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(boilerplateSelector).Remove()

	return CleanText(doc.Text()), nil
}

func CleanText(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
