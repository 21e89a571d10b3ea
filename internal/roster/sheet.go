package roster

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record is one results sheet row addressed by header name.
type Record struct {
	Line   int
	values map[string]string
}

// Get returns the raw value for column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.values[column]
}

// Text returns the trimmed value for column.
func (r Record) Text(column string) string {
	return strings.TrimSpace(r.values[column])
}

// Optional returns nil for a blank value, otherwise the trimmed text.
func (r Record) Optional(column string) *string {
	value := r.Text(column)
	if value == "" {
		return nil
	}
	return &value
}

// Int coerces column with the sheet's lenient integer rules.
func (r Record) Int(column string) int {
	return Int(r.values[column])
}

// Bool coerces column with the sheet's lenient boolean rules.
func (r Record) Bool(column string) bool {
	return Bool(r.values[column])
}

// Sheet streams records from a CSV file whose first row is the header.
type Sheet struct {
	reader interface {
		Read() ([]string, error)
		FieldPos(field int) (int, int)
	}
	header []string
}

// NewSheet reads the header row from r.
func NewSheet(r io.Reader) (*Sheet, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("results sheet is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return &Sheet{reader: reader, header: header}, nil
}

// Header returns the column names in file order.
func (s *Sheet) Header() []string {
	return append([]string(nil), s.header...)
}

// Require reports the first of columns missing from the header.
func (s *Sheet) Require(columns ...string) error {
	present := make(map[string]struct{}, len(s.header))
	for _, h := range s.header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, c := range columns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("results sheet missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Next returns the next record or io.EOF. Short rows leave trailing columns
// empty; extra cells are ignored.
func (s *Sheet) Next() (Record, error) {
	row, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("read results sheet: %w", err)
	}
	line, _ := s.reader.FieldPos(0)
	values := make(map[string]string, len(s.header))
	for i, column := range s.header {
		if i < len(row) {
			values[column] = row[i]
		}
	}
	return Record{Line: line, values: values}, nil
}
