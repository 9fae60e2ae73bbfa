package drugbank

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyDocument is returned when the input holds no XML at all.
var ErrEmptyDocument = errors.New("empty DrugBank document")

// ParseError reports malformed XML.
type ParseError struct {
	// Offset is the input offset at which decoding stopped.
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing XML at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader streams top-level drug records out of a DrugBank document.
type Reader struct {
	dec      *xml.Decoder
	depth    int
	seenRoot bool
	done     bool
}

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// Next returns the next record. It returns io.EOF once the document has
// been fully consumed.
func (r *Reader) Next() (*Drug, error) {
	if r.done {
		return nil, io.EOF
	}
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			r.done = true
			if !r.seenRoot {
				return nil, ErrEmptyDocument
			}
			return nil, io.EOF
		}
		if err != nil {
			r.done = true
			return nil, &ParseError{Offset: r.dec.InputOffset(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			r.seenRoot = true
			if r.depth == 1 && t.Name.Local == "drug" {
				var drug Drug
				if err := r.dec.DecodeElement(&drug, &t); err != nil {
					r.done = true
					return nil, &ParseError{Offset: r.dec.InputOffset(), Err: err}
				}
				return &drug, nil
			}
			if r.depth >= 1 {
				// Anything else below the root is not a record.
				if err := r.dec.Skip(); err != nil {
					r.done = true
					return nil, &ParseError{Offset: r.dec.InputOffset(), Err: err}
				}
				continue
			}
			r.depth++
		case xml.EndElement:
			r.depth--
		case xml.CharData:
			if r.depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				r.done = true
				return nil, &ParseError{
					Offset: r.dec.InputOffset(),
					Err:    errors.New("text outside of the root element"),
				}
			}
		}
	}
}

// ReadAll collects the remaining records, checking ctx between records.
func ReadAll(ctx context.Context, r io.Reader) ([]*Drug, error) {
	reader := NewReader(r)
	var drugs []*Drug
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		drug, err := reader.Next()
		if err == io.EOF {
			return drugs, nil
		}
		if err != nil {
			return nil, err
		}
		drugs = append(drugs, drug)
	}
}

// Parse decodes every record of an in-memory document.
func Parse(data []byte) ([]*Drug, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	return ReadAll(context.Background(), bytes.NewReader(data))
}

// ParseFile decodes every record of the document at path.
func ParseFile(ctx context.Context, path string) ([]*Drug, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadAll(ctx, f)
}
