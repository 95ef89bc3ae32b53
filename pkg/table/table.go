// Package table reads CSV data into an in-memory table of strings.
package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var ErrNoHeader = errors.New("no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Table struct {
	Columns []string
	Rows    [][]string
}

// Read parses r as CSV. The first record is the header and every following
// record must have the same number of fields.
func Read(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{Columns: header}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		t.Rows = append(t.Rows, record)
	}

	return t, nil
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Head returns a table sharing the first n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// String renders the table with an index column and left-aligned cells.
func (t *Table) String() string {
	widths := make([]int, len(t.Columns)+1)
	widths[0] = utf8.RuneCountInString(fmt.Sprint(len(t.Rows)))
	for i, c := range t.Columns {
		widths[i+1] = utf8.RuneCountInString(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i+1] {
				widths[i+1] = n
			}
		}
	}

	var sb strings.Builder
	writeLine := func(index string, cells []string) {
		sb.WriteString(pad(index, widths[0]))
		for i, cell := range cells {
			sb.WriteString("  ")
			sb.WriteString(pad(cell, widths[i+1]))
		}
		sb.WriteString("\n")
	}

	writeLine("", t.Columns)
	for i, row := range t.Rows {
		writeLine(fmt.Sprint(i), row)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
