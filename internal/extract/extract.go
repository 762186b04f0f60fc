// Package extract defines the text-extraction contract for uploaded
// documents. PDF parsing itself is an external concern; the service
// layer only depends on the interface.
package extract

import (
	"context"
	"strings"
	"unicode/utf8"
)

type TextExtractor interface {
	// Extract returns the searchable full text of an uploaded file.
	Extract(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// PlainText treats the payload as UTF-8 text and strips anything that
// is not. It is the default extractor; a real PDF extraction service
// can be swapped in behind the same interface.
type PlainText struct{}

func (PlainText) Extract(_ context.Context, _ string, _ string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r != utf8.RuneError || size > 1 {
			b.WriteRune(r)
		}
		data = data[size:]
	}
	return b.String(), nil
}
