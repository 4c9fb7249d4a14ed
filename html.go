package nicenumber

import (
	"fmt"
	"html"
	"io"
)

// WriteHTML writes the Frame as an HTML table. Cell content is escaped.
func (f *Frame) WriteHTML(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, name := range f.columns {
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(name)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range f.Rows() {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, v := range row {
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", html.EscapeString(cellString(v))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}
