package utils

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	errs "shogi_csa/internal/errors"
)

const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NewCharsetWriter wraps w so that UTF-8 text written to it comes out in the
// named encoding. Close flushes pending bytes but does not close w.
func NewCharsetWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch normalizeEncoding(name) {
	case EncodingUTF8:
		return nopCloser{w}, nil
	case EncodingShiftJIS:
		return transform.NewWriter(w, japanese.ShiftJIS.NewEncoder()), nil
	}
	return nil, fmt.Errorf("%q: %w", name, errs.ErrUnknownEncoding)
}

// ContentType is the text/plain media type for CSA text in the named encoding.
func ContentType(name string) string {
	if normalizeEncoding(name) == EncodingShiftJIS {
		return "text/plain; charset=Shift_JIS"
	}
	return "text/plain; charset=utf-8"
}

func normalizeEncoding(name string) string {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "", "utf_8", "utf8":
		return EncodingUTF8
	case "shift_jis", "sjis", "shiftjis":
		return EncodingShiftJIS
	}
	return name
}
