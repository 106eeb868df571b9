package parser

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// plaintextFromArchive recovers note text from a ZICNOTEDATA.ZDATA blob.
// The blob is a gzipped protobuf archive whose document text is stored as a
// single length-delimited string near the front. Rather than decoding the
// full archive format, we take the longest printable UTF-8 run, which is the
// note body for every format revision seen in the wild. Returns "" when the
// blob cannot be decompressed, in which case the caller falls back to the
// snippet column.
func plaintextFromArchive(data []byte) string {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(longestPrintableRun(raw))
}

func longestPrintableRun(raw []byte) string {
	var best, current []byte
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r != utf8.RuneError && (unicode.IsPrint(r) || r == '\n' || r == '\t') {
			current = append(current, raw[:size]...)
		} else {
			if len(current) > len(best) {
				best = current
			}
			current = nil
		}
		raw = raw[size:]
	}
	if len(current) > len(best) {
		best = current
	}
	return string(best)
}
