package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"multiple spaces", "hello    world", "hello world"},
		{"tabs and newlines", "hello\t\nworld", "hello world"},
		{"leading and trailing spaces", "  hello world  ", "hello world"},
		{"mixed whitespace", "  hello\n\t  world\r\n  ", "hello world"},
		{"empty string", "", ""},
		{"only whitespace", "   \t\n\r   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestText(t *testing.T) {
	html := `
		<html>
			<head><title>Page</title><style>.hidden { display: none; }</style></head>
			<body>
				<nav>Navigation</nav>
				<div>Content to keep</div>
				<script>alert('remove me')</script>
				<div class="cookie-consent">Cookie banner</div>
				<aside>Sidebar</aside>
				<p>More   content
				to keep</p>
				<div class="hidden">Hidden content</div>
				<footer>Footer content</footer>
			</body>
		</html>
	`

	text, err := Text(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Content to keep More content to keep", text)
}

func TestText_Malformed(t *testing.T) {
	text, err := Text("<html><body><h1>Test</body></html>")

	require.NoError(t, err, "goquery should handle malformed HTML")
	assert.Equal(t, "Test", text)
}

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{"DOCTYPE declaration", "<!DOCTYPE html><html><body>content</body></html>", true},
		{"lowercase doctype", "<!doctype html><p>x</p>", true},
		{"html tag", "<html><body>content</body></html>", true},
		{"head tag", "<head><title>Test</title></head>", true},
		{"body tag", "<body>content</body>", true},
		{"JSON content", `{"key": "value"}`, false},
		{"plain text", "Just some plain text content", false},
		{"empty body", "", false},
		{"XML content", `<?xml version="1.0"?><root></root>`, false},
		{"whitespace with DOCTYPE", "   <!DOCTYPE html>\n<html><body>test</body></html>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsHTML(tt.body))
		})
	}
}
