package nicenumber

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the Frame as CSV with a header row.
func (f *Frame) WriteCSV(w io.Writer) error {
	return f.writeDelimited(w, ',')
}

// WriteTSV writes the Frame as tab-separated values with a header row.
func (f *Frame) WriteTSV(w io.Writer) error {
	return f.writeDelimited(w, '\t')
}

func (f *Frame) writeDelimited(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(f.columns); err != nil {
		return err
	}
	for _, row := range f.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		if err := cw.Write(cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV builds a Frame from CSV input. The first record is the header;
// every cell is read as a string.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := records[0]
	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		rows = append(rows, row)
	}
	return NewFrame(header, rows...)
}
