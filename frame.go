package nicenumber

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Transform identifies a per-cell conversion applied across Frame columns.
type Transform string

const (
	Human Transform = "human" // ToHuman
	Num   Transform = "num"   // ToNumeric
	Color Transform = "color" // ToColor
)

var transforms = []Transform{Human, Num, Color}

// String returns the transform name.
func (t Transform) String() string { return string(t) }

// Transforms returns all supported transforms.
func Transforms() []Transform {
	out := make([]Transform, len(transforms))
	copy(out, transforms)
	return out
}

// ParseTransform parses a transform name.
func ParseTransform(s string) (Transform, error) {
	t := Transform(s)
	if !slices.Contains(transforms, t) {
		return "", fmt.Errorf("%w: %q (valid options: %v)", ErrInvalidTransform, s, Transforms())
	}
	return t, nil
}

// Frame is an ordered collection of named columns of dynamically typed
// cells. Frames are immutable through the public API: transforms produce a
// new Frame and accessors return copies.
type Frame struct {
	columns []string
	data    [][]any // column-major, data[i] belongs to columns[i]
	rows    int
}

// NewFrame builds a Frame from a header and row-major data. Every row must
// have exactly one cell per column, and column names must be unique.
func NewFrame(columns []string, rows ...[]any) (*Frame, error) {
	f := &Frame{
		columns: slices.Clone(columns),
		data:    make([][]any, len(columns)),
		rows:    len(rows),
	}
	for i, name := range columns {
		if slices.Index(columns, name) != i {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		f.data[i] = make([]any, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), len(columns))
		}
		for i, cell := range row {
			f.data[i][r] = cell
		}
	}
	return f, nil
}

// FromColumns builds a Frame from a header and column-major data. All
// columns must have the same length and unique names.
func FromColumns(columns []string, data [][]any) (*Frame, error) {
	if len(data) != len(columns) {
		return nil, fmt.Errorf("got %d columns of data, want %d", len(data), len(columns))
	}
	rows := 0
	if len(data) > 0 {
		rows = len(data[0])
	}
	f := &Frame{
		columns: slices.Clone(columns),
		data:    make([][]any, len(columns)),
		rows:    rows,
	}
	for i, name := range columns {
		if slices.Index(columns, name) != i {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		if len(data[i]) != rows {
			return nil, fmt.Errorf("column %q has %d cells, want %d", name, len(data[i]), rows)
		}
		f.data[i] = slices.Clone(data[i])
	}
	return f, nil
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Column returns a copy of the named column's cells.
func (f *Frame) Column(name string) ([]any, error) {
	i := slices.Index(f.columns, name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q (columns: %v)", ErrUnknownColumn, name, f.columns)
	}
	return slices.Clone(f.data[i]), nil
}

// At returns the cell at the given row in the named column.
func (f *Frame) At(row int, name string) (any, error) {
	i := slices.Index(f.columns, name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q (columns: %v)", ErrUnknownColumn, name, f.columns)
	}
	if row < 0 || row >= f.rows {
		return nil, fmt.Errorf("row %d out of range [0, %d)", row, f.rows)
	}
	return f.data[i][row], nil
}

// Rows iterates over the Frame row by row. Each yielded slice is a fresh
// copy in column order.
func (f *Frame) Rows() iter.Seq2[int, []any] {
	return func(yield func(int, []any) bool) {
		for r := 0; r < f.rows; r++ {
			row := make([]any, len(f.columns))
			for i := range f.columns {
				row[i] = f.data[i][r]
			}
			if !yield(r, row) {
				return
			}
		}
	}
}

// Equal reports whether two Frames have the same columns, order, and cells.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.rows != other.rows || !slices.Equal(f.columns, other.columns) {
		return false
	}
	for i := range f.data {
		for r := range f.data[i] {
			if !reflect.DeepEqual(f.data[i][r], other.data[i][r]) {
				return false
			}
		}
	}
	return true
}

// Apply applies a per-cell transform across columns of a table. The table
// must be a *Frame; anything else fails with [ErrNotATable]. cols selects
// the columns to transform: nil means all columns, a single string names
// one column, and a []string names several. Remaining options are forwarded
// to the per-cell conversion.
func Apply(table any, t Transform, cols any, opts ...Option) (*Frame, error) {
	f, ok := table.(*Frame)
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: got %T", ErrNotATable, table)
	}
	return f.Transform(t, cols, opts...)
}

// Transform returns a new Frame with every cell of the selected columns
// replaced by the result of the per-cell conversion. Unselected columns and
// row order are preserved; the receiver is never mutated.
//
// Structural failures (unknown column, bad column spec, unknown transform)
// always propagate. Per-cell conversion failures honor [WithErrors]: under
// Coerce the failed cell becomes NA for the Human and Num transforms. The
// Color transform always propagates cell failures.
func (f *Frame) Transform(t Transform, cols any, opts ...Option) (*Frame, error) {
	names, err := f.resolveColumns(cols)
	if err != nil {
		return nil, err
	}

	c := newConfig(opts)
	cell, coercible, err := cellFunc(t, c, opts)
	if err != nil {
		return nil, err
	}

	out := &Frame{
		columns: slices.Clone(f.columns),
		data:    make([][]any, len(f.columns)),
		rows:    f.rows,
	}
	for i, name := range f.columns {
		if !slices.Contains(names, name) {
			out.data[i] = slices.Clone(f.data[i])
			continue
		}
		col := make([]any, f.rows)
		for r, v := range f.data[i] {
			converted, err := cell(v)
			if err != nil {
				if coercible && c.errors == Coerce {
					col[r] = NA
					continue
				}
				return nil, fmt.Errorf("column %q, row %d: %w", name, r, err)
			}
			col[r] = converted
		}
		out.data[i] = col
	}
	return out, nil
}

// resolveColumns normalizes the column selector to a list of names present
// in the Frame.
func (f *Frame) resolveColumns(cols any) ([]string, error) {
	var names []string
	switch v := cols.(type) {
	case nil:
		names = f.columns
	case string:
		names = []string{v}
	case []string:
		names = v
	default:
		return nil, fmt.Errorf("%w: got %T, want string or []string", ErrBadColumnSpec, cols)
	}
	for _, name := range names {
		if !slices.Contains(f.columns, name) {
			return nil, fmt.Errorf("%w: %q (columns: %v)", ErrUnknownColumn, name, f.columns)
		}
	}
	return names, nil
}

// cellFunc resolves a Transform to its per-cell conversion. The second
// result reports whether the conversion participates in the Coerce policy.
func cellFunc(t Transform, c config, opts []Option) (func(any) (any, error), bool, error) {
	switch t {
	case Human:
		return func(v any) (any, error) {
			s, err := ToHuman(v, opts...)
			if err != nil {
				return nil, err
			}
			return s, nil
		}, true, nil
	case Num:
		return func(v any) (any, error) {
			n, err := ToNumeric(v, opts...)
			if err != nil {
				return nil, err
			}
			return n, nil
		}, true, nil
	case Color:
		return func(v any) (any, error) {
			s, err := ToColor(v, c.colors...)
			if err != nil {
				return nil, err
			}
			return s, nil
		}, false, nil
	default:
		return nil, false, fmt.Errorf("%w: %q (valid options: %v)", ErrInvalidTransform, t, Transforms())
	}
}
