package texttable_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/texttable"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()
	tbl := titleHeaderFooterTable(t)
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, tbl.WriteFile(path, texttable.LayoutCompact))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := mustRender(t, tbl, texttable.LayoutCompact) + "\n"
	assert.Equal(t, want, string(data))
}

func TestWriteFileInvalidTableCreatesNothing(t *testing.T) {
	t.Parallel()
	tbl, err := texttable.New()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "table.txt")
	require.ErrorIs(t, tbl.WriteFile(path, texttable.LayoutStandard), texttable.ErrNoColumns)
	assert.NoFileExists(t, path)
}

func TestWriteFileBadPath(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "table.txt")
	require.Error(t, bareTable(t).WriteFile(path, texttable.LayoutStandard))
}

func TestWriteStream(t *testing.T) {
	t.Parallel()
	tbl := bareTable(t)
	var buf bytes.Buffer
	require.NoError(t, tbl.WriteStream(&buf, texttable.LayoutMinimal))
	assert.Equal(t, "| a | 1 |\n| b | 2 |\n", buf.String())
}

func TestWriteStreamErrors(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, bareTable(t).WriteStream(&errWriter{}, texttable.LayoutStandard), errWriteFailed)

	tbl := bareTable(t)
	tbl.Options.Indent = -1
	var buf bytes.Buffer
	require.ErrorIs(t, tbl.WriteStream(&buf, texttable.LayoutStandard), texttable.ErrInvalidOptions)
	assert.Empty(t, buf.String())
}

func TestWriteConsoleInvalidTable(t *testing.T) {
	t.Parallel()
	tbl, err := texttable.New()
	require.NoError(t, err)
	require.ErrorIs(t, tbl.WriteConsole(texttable.LayoutCompact), texttable.ErrNoColumns)
}
