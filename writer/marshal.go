package writer

import (
	"bytes"
	"io"

	"github.com/erraggy/oasdoc/parser"
)

// Marshal renders doc in format.
func Marshal(doc *parser.Document, format Format, settings Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, format, settings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders doc in format to out.
func Write(out io.Writer, doc *parser.Document, format Format, settings Settings) error {
	w, err := New(out, format, settings.Terse)
	if err != nil {
		return err
	}
	return Serialize(w, doc, settings)
}

// MarshalValue renders an untyped value, such as parser.NodeValue output,
// in format.
func MarshalValue(v any, format Format, terse bool) ([]byte, error) {
	var buf bytes.Buffer
	w, err := New(&buf, format, terse)
	if err != nil {
		return nil, err
	}
	if err := WriteAny(w, v); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
