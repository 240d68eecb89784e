package export

import (
	"bufio"
	"os"
	"strings"

	"plexcsv/format"
)

// rowWriter appends always-quoted CSV rows to an output file. Every
// field is entity-decoded, scrubbed of embedded line breaks, and
// quote-escaped before being wrapped; decoding has to precede escaping
// because a decoded &quot; yields a literal quote.
type rowWriter struct {
	f      *os.File
	w      *bufio.Writer
	closed bool
}

func newRowWriter(path string) (*rowWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &rowWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// writeRow writes one physical line. Line breaks inside fields are
// flattened to spaces so every record stays a single row.
func (rw *rowWriter) writeRow(fields []string) error {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		field = format.DecodeEntities(field)
		field = scrubLineBreaks(field)
		sb.WriteByte('"')
		sb.WriteString(format.EscapeQuotes(field))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	_, err := rw.w.WriteString(sb.String())
	return err
}

func (rw *rowWriter) Close() error {
	if rw.closed {
		return nil
	}
	rw.closed = true
	if err := rw.w.Flush(); err != nil {
		rw.f.Close()
		return err
	}
	return rw.f.Close()
}

var lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func scrubLineBreaks(s string) string {
	return lineBreakReplacer.Replace(s)
}
