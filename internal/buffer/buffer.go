// Package buffer turns a forward-only body stream into an in-memory,
// seekable buffer that can be decoded more than once.
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	pfencoding "github.com/muratoffalex/pagefetch/internal/encoding"
)

var (
	ErrIO         = errors.New("i/o error")
	ErrOutOfRange = errors.New("offset out of range")
	ErrClosed     = errors.New("buffer is closed")
)

type Buffer struct {
	data   []byte
	pos    int64
	closed bool
}

// Materialize reads r until EOF. The returned buffer is positioned at 0.
func Materialize(r io.Reader) (*Buffer, error) {
	return MaterializeLimit(r, 0)
}

// MaterializeLimit is Materialize with an upper bound on the number of bytes
// read. A limit of 0 means no limit.
func MaterializeLimit(r io.Reader, limit int64) (*Buffer, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrIO)
	}

	src := r
	if limit > 0 {
		// one extra byte tells an exact fit apart from an oversized body
		src = io.LimitReader(r, limit+1)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("%w: reading body failed: %w", ErrIO, err)
	}
	if limit > 0 && int64(buf.Len()) > limit {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrIO, limit)
	}

	return &Buffer{data: buf.Bytes()}, nil
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// Seek implements io.Seeker. Resulting offsets outside [0, Len()] fail.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	if b.closed {
		return 0, ErrClosed
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return b.pos, fmt.Errorf("%w: invalid whence %d", ErrOutOfRange, whence)
	}

	if abs < 0 || abs > int64(len(b.data)) {
		return b.pos, fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, abs, len(b.data))
	}
	b.pos = abs
	return abs, nil
}

// Decode returns a text reader over the bytes from the current cursor.
// Reading from it does not move the cursor. A nil enc means the default
// encoding; a byte order mark, if present, overrides enc.
func (b *Buffer) Decode(enc encoding.Encoding) (io.Reader, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if enc == nil {
		enc = pfencoding.Default
	}
	decoder := unicode.BOMOverride(enc.NewDecoder())
	return transform.NewReader(bytes.NewReader(b.data[b.pos:]), decoder), nil
}

// DecodeString decodes everything from the cursor to the end.
func (b *Buffer) DecodeString(enc encoding.Encoding) (string, error) {
	r, err := b.Decode(enc)
	if err != nil {
		return "", err
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding failed: %w", err)
	}
	return string(text), nil
}

// Close drops the buffered bytes. It is safe to call more than once.
func (b *Buffer) Close() error {
	b.data = nil
	b.pos = 0
	b.closed = true
	return nil
}
