package vertexio_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectigrid"
	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/vertexio"
)

func TestRead_Basic(t *testing.T) {
	in := "7,1\n11,1\n11,7\n9,7\n"
	vs, skipped, err := vertexio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []lattice.Point{
		lattice.Pt(7, 1), lattice.Pt(11, 1), lattice.Pt(11, 7), lattice.Pt(9, 7),
	}, vs)
}

// TestRead_Whitespace tolerates padding, tabs, CRLF endings and blank lines.
func TestRead_Whitespace(t *testing.T) {
	in := "  1 , 2  \r\n\n\t3,4\n   \n5 ,6"
	vs, skipped, err := vertexio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []lattice.Point{lattice.Pt(1, 2), lattice.Pt(3, 4), lattice.Pt(5, 6)}, vs)
}

// TestRead_SkipsMalformed keeps going past bad lines and reports each one.
func TestRead_SkipsMalformed(t *testing.T) {
	var buf bytes.Buffer
	rectigrid.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { rectigrid.SetLogger(nil) })

	in := "1,1\nhello\n-2,3\n4;5\n6,7,8\n\n9,9\n"
	vs, skipped, err := vertexio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []lattice.Point{lattice.Pt(1, 1), lattice.Pt(9, 9)}, vs)
	assert.Equal(t, []vertexio.Skipped{
		{Line: 2, Text: "hello"},
		{Line: 3, Text: "-2,3"},
		{Line: 4, Text: "4;5"},
		{Line: 5, Text: "6,7,8"},
	}, skipped)
	assert.Equal(t, 4, strings.Count(buf.String(), "skipping malformed line"))
	assert.Equal(t, `line 4: "4;5"`, skipped[2].String())
}

func TestRead_Empty(t *testing.T) {
	vs, skipped, err := vertexio.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, vs)
	assert.Empty(t, skipped)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRead_IOError(t *testing.T) {
	_, _, err := vertexio.Read(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,1\n5,1\n5,4\n1,4\n"), 0o600))

	vs, _, err := vertexio.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, vs, 4)

	_, _, err = vertexio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
