package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Default is used whenever no charset is declared. It is fixed so decoding
// does not depend on the host locale.
var Default encoding.Encoding = unicode.UTF8

// Resolve maps a charset identifier such as "UTF-8" or "ISO-8859-1" to an
// encoding. IANA names are tried first, then WHATWG labels.
func Resolve(id string) (encoding.Encoding, error) {
	name := strings.TrimSpace(id)
	if name == "" {
		return nil, fmt.Errorf("%w: empty charset", ErrUnsupportedEncoding)
	}

	// ianaindex returns (nil, nil) for registered names it has no decoder for
	enc, err := ianaindex.IANA.Encoding(name)
	if err == nil && enc != nil {
		return enc, nil
	}

	// WHATWG maps some labels (ISO-2022-KR, ISO-2022-CN) to the replacement
	// encoding, which decodes any input to a single U+FFFD
	if enc, _ := charset.Lookup(name); enc != nil && enc != encoding.Replacement {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, id)
}

// Name returns the IANA name of enc, or "unknown".
func Name(enc encoding.Encoding) string {
	if enc == nil {
		enc = Default
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}
