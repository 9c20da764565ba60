package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/daidoji-traincrew-office/dbbase-converter/normalize"
)

// Supported input encodings.
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

// NoKey disables placeholder-key filtering.
const NoKey = -1

// Options controls how a table is read.
type Options struct {
	// KeyColumn is the column checked against the placeholder token.
	// Rows whose key is the placeholder are dropped. Use NoKey to keep all rows.
	KeyColumn int

	// Encoding is EncodingUTF8 (default) or EncodingShiftJIS.
	Encoding string

	// Comma is the field delimiter, ',' when zero.
	Comma rune

	// Logger receives debug lines for dropped rows. Optional.
	Logger *log.Logger
}

// BuildFunc turns one data row into a record.
type BuildFunc[T any] func(r *Row) (T, error)

// Read loads the table at path, skips the header row and builds one record per
// remaining row in file order. The file is closed before Read returns.
func Read[T any](fsys afero.Fs, path string, opts Options, build BuildFunc[T]) ([]T, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f, path, opts, build)
}

// Decode is Read over an already opened stream. Path is only used in errors.
func Decode[T any](src io.Reader, path string, opts Options, build BuildFunc[T]) ([]T, error) {
	dec, err := decoder(opts.Encoding)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	lc := &lineCounter{r: transform.NewReader(src, dec)}
	cr := csv.NewReader(lc)
	cr.FieldsPerRecord = -1
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	records := []T{}
	header := true
	prevEnd := 0
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("line %d: %w", lc.lines+1, err)}
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}

		// The csv reader skips blank lines; a blank line inside the table
		// is a row without cells.
		start, _ := cr.FieldPos(0)
		if prevEnd > 0 && start > prevEnd+1 {
			return nil, &ShortRowError{Path: path, Line: prevEnd + 1, Column: 0, Width: 0}
		}
		last, _ := cr.FieldPos(len(cells) - 1)
		prevEnd = last + strings.Count(cells[len(cells)-1], "\n")

		if header {
			header = false
			continue
		}

		line := start
		row := NewRow(path, line, cells)

		if opts.KeyColumn >= 0 {
			key := row.Cell(opts.KeyColumn)
			if err := row.Err(); err != nil {
				return nil, err
			}
			if normalize.IsNashi(key) {
				if opts.Logger != nil {
					opts.Logger.Debug("skipping placeholder row", "path", path, "line", line)
				}
				continue
			}
		}

		rec, err := build(row)
		if rowErr := row.Err(); rowErr != nil {
			return nil, rowErr
		}
		if err != nil {
			return nil, &RowError{Path: path, Line: line, Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}

// decoder returns the transformer for name. UTF-8 input is validated before
// the BOM is stripped so invalid bytes fail instead of becoming U+FFFD.
func decoder(name string) (transform.Transformer, error) {
	switch name {
	case "", EncodingUTF8:
		return transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder()), nil
	case EncodingShiftJIS:
		return japanese.ShiftJIS.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// lineCounter counts the newlines handed to the csv reader.
type lineCounter struct {
	r     io.Reader
	lines int
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.lines += bytes.Count(p[:n], []byte{'\n'})
	return n, err
}
