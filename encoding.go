package nicenumber

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// frameDoc is the split-orientation wire shape shared by the JSON and YAML
// encodings: the header once, then row-major data. It keeps column order
// stable, which record maps would not.
type frameDoc struct {
	Columns []string `json:"columns" yaml:"columns"`
	Data    [][]any  `json:"data" yaml:"data"`
}

func (f *Frame) doc() frameDoc {
	data := make([][]any, 0, f.rows)
	for _, row := range f.Rows() {
		data = append(data, row)
	}
	return frameDoc{Columns: f.Columns(), Data: data}
}

// WriteJSON writes the Frame as a single JSON document with "columns" and
// row-major "data" fields.
func (f *Frame) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(f.doc())
}

// WriteJSONL writes one JSON array per row, in column order.
func (f *Frame) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, row := range f.Rows() {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes the Frame as a YAML document with "columns" and
// row-major "data" fields.
func (f *Frame) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(f.doc()); err != nil {
		return err
	}
	return enc.Close()
}
