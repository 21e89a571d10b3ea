package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"protracker/internal/players"
)

const utf8BOM = "\ufeff"

// Entry is one usable roster row.
type Entry struct {
	Line int
	Name players.Name
}

// ReadNames parses a headerless two-column roster. Rows with fewer than two
// columns or a blank first or last name are skipped. Order is preserved.
func ReadNames(r io.Reader) ([]Entry, error) {
	reader := newReader(r)
	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read roster: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		line, _ := reader.FieldPos(0)
		name, err := players.NewName(strings.TrimPrefix(record[0], utf8BOM), record[1])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Line: line, Name: name})
	}
}

// OpenNames reads a roster file from disk.
func OpenNames(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadNames(file)
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}
