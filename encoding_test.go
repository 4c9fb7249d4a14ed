package nicenumber_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/UBC-MDS/nicenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportFrame(t).WriteCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Name,Count\nalpha,1.2K\nbeta,450\n", buf.String())
}

func TestWriteCSVQuoted(t *testing.T) {
	t.Parallel()

	f, err := nicenumber.NewFrame([]string{"Name"}, []any{"hello, world"})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = f.WriteCSV(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"hello, world"`)
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportFrame(t).WriteTSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Name\tCount\nalpha\t1.2K\nbeta\t450\n", buf.String())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	f, err := nicenumber.ReadCSV(strings.NewReader("Name,Count\nalpha,1.2K\nbeta,450\n"))
	require.NoError(t, err)
	assert.True(t, f.Equal(exportFrame(t)))
}

func TestReadCSVRoundTrip(t *testing.T) {
	t.Parallel()

	f := exportFrame(t)
	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	back, err := nicenumber.ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, back.Equal(f))
}

func TestReadCSVEmpty(t *testing.T) {
	t.Parallel()

	_, err := nicenumber.ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportFrame(t).WriteJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, `{"columns":["Name","Count"],"data":[["alpha","1.2K"],["beta","450"]]}`+"\n", buf.String())
}

func TestWriteJSONNA(t *testing.T) {
	t.Parallel()

	f, err := nicenumber.NewFrame([]string{"V"}, []any{nicenumber.NA})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = f.WriteJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, `{"columns":["V"],"data":[[null]]}`+"\n", buf.String())
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportFrame(t).WriteJSONL(&buf)
	require.NoError(t, err)
	assert.Equal(t, `["alpha","1.2K"]`+"\n"+`["beta","450"]`+"\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportFrame(t).WriteYAML(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "columns:")
	assert.Contains(t, out, "- Name")
	assert.Contains(t, out, "data:")
	assert.Contains(t, out, "alpha")
}
