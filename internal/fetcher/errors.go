package fetcher

import (
	"errors"

	"github.com/muratoffalex/pagefetch/internal/buffer"
	"github.com/muratoffalex/pagefetch/internal/encoding"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNetwork          = errors.New("network error")
	ErrMalformedContent = errors.New("malformed content")

	ErrIO                  = buffer.ErrIO
	ErrOutOfRange          = buffer.ErrOutOfRange
	ErrUnsupportedEncoding = encoding.ErrUnsupportedEncoding
)
