//go:build unit

package ok

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-strict/strict"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o600))

	return name
}

func requireFailure(t *testing.T, err error, operation string) *strict.UnexpectedFailureError {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, strict.ErrUnexpectedFailure)

	var failure *strict.UnexpectedFailureError
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, operation, failure.Operation)
	assert.True(t, strings.HasPrefix(err.Error(), operation+" failed unexpectedly: "), err.Error())

	return failure
}

func TestOpen(t *testing.T) {
	t.Parallel()

	name := writeTemp(t, "hello")

	for _, mode := range []string{"r", "rb", "r+", "rt", "a", "a+", "c", "c+", "w+"} {
		f, err := Open(name, mode)
		require.NoError(t, err, mode)
		require.NoError(t, Close(f))
	}

	_, err := Open(name, "x")
	failure := requireFailure(t, err, "Open")
	assert.ErrorIs(t, failure, fs.ErrExist)

	_, err = Open(filepath.Join(t.TempDir(), "missing"), "r")
	failure = requireFailure(t, err, "Open")
	assert.ErrorIs(t, failure, fs.ErrNotExist)

	_, err = Open(name, "q")
	requireFailure(t, err, "Open")
	assert.ErrorIs(t, err, strict.ErrInvalidArgument)
	assert.EqualError(t, err, `Open failed unexpectedly: invalid mode "q"`)
}

func TestRead(t *testing.T) {
	t.Parallel()

	name := writeTemp(t, "hello world")

	f, err := Open(name, "r")
	require.NoError(t, err)
	defer f.Close()

	got, err := Read(f, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = Read(f, 100)
	require.NoError(t, err)
	assert.Equal(t, " world", got)

	got, err = Read(f, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Read(f, 0)
	requireFailure(t, err, "Read")
	assert.ErrorIs(t, err, strict.ErrInvalidArgument)
}

func TestRead_WriteOnlyHandle(t *testing.T) {
	t.Parallel()

	name := writeTemp(t, "hello")

	f, err := Open(name, "w")
	require.NoError(t, err)
	defer f.Close()

	_, err = Read(f, 10)
	requireFailure(t, err, "Read")
	assert.NotErrorIs(t, err, strict.ErrInvalidArgument)
}

func TestGets(t *testing.T) {
	t.Parallel()

	name := writeTemp(t, "first\nsecond\nthird")

	f, err := Open(name, "r")
	require.NoError(t, err)
	defer f.Close()

	line, err := Gets(f)
	require.NoError(t, err)
	assert.Equal(t, "first\n", line)

	line, err = Gets(f, 4)
	require.NoError(t, err)
	assert.Equal(t, "sec", line)

	line, err = Gets(f)
	require.NoError(t, err)
	assert.Equal(t, "ond\n", line)

	line, err = Gets(f)
	require.NoError(t, err)
	assert.Equal(t, "third", line)

	_, err = Gets(f)
	requireFailure(t, err, "Gets")
}

func TestGets_WriteOnlyHandle(t *testing.T) {
	t.Parallel()

	f, err := Open(writeTemp(t, "x"), "w")
	require.NoError(t, err)
	defer f.Close()

	_, err = Gets(f)
	requireFailure(t, err, "Gets")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "out.txt")

	f, err := Open(name, "w")
	require.NoError(t, err)

	n, err := Write(f, "hello world", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = Write(f, "!")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, Close(f))

	got, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "hello!", got)

	ro, err := Open(name, "r")
	require.NoError(t, err)
	defer ro.Close()

	_, err = Write(ro, "nope")
	requireFailure(t, err, "Write")
}

func TestWrite_Length(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	n, err := Write(&buf, "abc", -1)
	failure := requireFailure(t, err, "Write")
	require.ErrorIs(t, failure, strict.ErrInvalidArgument)
	assert.Equal(t, "length must not be negative", failure.Message)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())

	n, err = Write(&buf, "abc", 0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())

	n, err = Write(&buf, "abc", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", buf.String())
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	requireFailure(t, err, "ReadFile")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

type banner struct{}

func (banner) String() string { return "banner" }

func TestWriteFile(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "out.txt")

	n, err := WriteFile(name, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = WriteFile(name, []byte("b"), Append)
	require.NoError(t, err)

	_, err = WriteFile(name, []string{"c", "d"}, Append)
	require.NoError(t, err)

	_, err = WriteFile(name, banner{}, Append)
	require.NoError(t, err)

	got, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "abcdbanner", got)

	_, err = WriteFile(name, "z")
	require.NoError(t, err)

	got, err = ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "z", got)

	_, err = WriteFile(name, "z", Exclusive)
	requireFailure(t, err, "WriteFile")

	_, err = WriteFile(name, 42)
	requireFailure(t, err, "WriteFile")
	assert.ErrorIs(t, err, strict.ErrInvalidArgument)
	assert.EqualError(t, err, "WriteFile failed unexpectedly: unsupported data type int")
}

func TestTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	name, err := TempFile(dir, "strict")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(name))
	assert.True(t, strings.HasPrefix(filepath.Base(name), "strict"))

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	_, err = TempFile(filepath.Join(dir, "missing"), "strict")
	requireFailure(t, err, "TempFile")
}

func TestClose(t *testing.T) {
	t.Parallel()

	err := Close(nil)
	requireFailure(t, err, "Close")
	assert.ErrorIs(t, err, strict.ErrInvalidArgument)

	f, err := Open(writeTemp(t, ""), "r")
	require.NoError(t, err)
	require.NoError(t, Close(f))

	err = Close(f)
	requireFailure(t, err, "Close")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	names, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.log"}, names)

	_, err = ReadDir(filepath.Join(dir, "missing"))
	requireFailure(t, err, "ReadDir")

	matches, err := Glob(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, matches)

	matches, err = Glob(filepath.Join(dir, "*.none"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = Glob("[")
	requireFailure(t, err, "Glob")
}
