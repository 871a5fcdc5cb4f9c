package ok

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LerianStudio/lib-strict/strict"
	"github.com/LerianStudio/lib-strict/strict/internal/nilcheck"
)

// WriteFlag modifies WriteFile.
type WriteFlag int

const (
	// Append adds data to the end of an existing file instead of replacing it.
	Append WriteFlag = 1 << iota
	// Exclusive fails when the file already exists.
	Exclusive
)

const filePerm = 0o666

var modes = map[string]int{
	"r":  os.O_RDONLY,
	"r+": os.O_RDWR,
	"w":  os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	"w+": os.O_RDWR | os.O_CREATE | os.O_TRUNC,
	"a":  os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	"a+": os.O_RDWR | os.O_CREATE | os.O_APPEND,
	"x":  os.O_WRONLY | os.O_CREATE | os.O_EXCL,
	"x+": os.O_RDWR | os.O_CREATE | os.O_EXCL,
	"c":  os.O_WRONLY | os.O_CREATE,
	"c+": os.O_RDWR | os.O_CREATE,
}

// Open opens name with an fopen-style mode: r, r+, w, w+, a, a+, x, x+, c or
// c+. The b and t modifiers are accepted and ignored.
func Open(name, mode string) (*os.File, error) {
	flag, found := modes[strings.NewReplacer("b", "", "t", "").Replace(mode)]
	if !found {
		return nil, strict.NewInvalidArgument("Open", fmt.Sprintf("invalid mode %q", mode))
	}

	f, err := os.OpenFile(name, flag, filePerm)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("Open", err)
	}

	return f, nil
}

// Close closes a file, connection or any other io.Closer.
func Close(c io.Closer) error {
	if nilcheck.Interface(c) {
		return strict.NewInvalidArgument("Close", "nil handle")
	}

	if err := c.Close(); err != nil {
		return strict.NewUnexpectedFailure("Close", err)
	}

	return nil
}

// Read reads up to length bytes. Reading at end of file returns "".
func Read(r io.Reader, length int) (string, error) {
	if nilcheck.Interface(r) {
		return "", strict.NewInvalidArgument("Read", "nil handle")
	}

	if length <= 0 {
		return "", strict.NewInvalidArgument("Read", "length must be greater than 0")
	}

	buf := make([]byte, length)

	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", strict.NewUnexpectedFailure("Read", err)
	}

	return string(buf[:n]), nil
}

// Gets reads one line, newline included. With a length, at most length-1
// bytes are read. Reaching end of file before reading anything fails.
func Gets(r io.Reader, length ...int) (string, error) {
	if nilcheck.Interface(r) {
		return "", strict.NewInvalidArgument("Gets", "nil handle")
	}

	limit := -1

	if len(length) > 0 {
		if length[0] <= 1 {
			return "", strict.NewInvalidArgument("Gets", "length must be greater than 1")
		}

		limit = length[0] - 1
	}

	var (
		line strings.Builder
		one  [1]byte
	)

	for limit < 0 || line.Len() < limit {
		n, err := r.Read(one[:])
		if n == 1 {
			line.WriteByte(one[0])

			if one[0] == '\n' {
				break
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", strict.NewUnexpectedFailure("Gets", err)
		}
	}

	if line.Len() == 0 {
		return "", strict.NewUnexpectedFailure("Gets", io.EOF)
	}

	return line.String(), nil
}

// Write writes s, or its first length bytes when length is given, and returns
// the number of bytes written.
func Write(w io.Writer, s string, length ...int) (int, error) {
	if nilcheck.Interface(w) {
		return 0, strict.NewInvalidArgument("Write", "nil handle")
	}

	if len(length) > 0 {
		if length[0] < 0 {
			return 0, strict.NewInvalidArgument("Write", "length must not be negative")
		}

		if length[0] < len(s) {
			s = s[:length[0]]
		}
	}

	n, err := io.WriteString(w, s)
	if err != nil {
		return n, strict.NewUnexpectedFailure("Write", err)
	}

	return n, nil
}

// ReadFile returns the contents of name.
func ReadFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", strict.NewUnexpectedFailure("ReadFile", err)
	}

	return string(data), nil
}

// WriteFile writes data to name and returns the number of bytes written.
// data may be a string, []byte, []string (concatenated) or fmt.Stringer.
func WriteFile(name string, data any, flags ...WriteFlag) (int, error) {
	content, err := fileContent(data)
	if err != nil {
		return 0, err
	}

	var combined WriteFlag
	for _, f := range flags {
		combined |= f
	}

	flag := os.O_WRONLY | os.O_CREATE

	switch {
	case combined&Append != 0:
		flag |= os.O_APPEND
	default:
		flag |= os.O_TRUNC
	}

	if combined&Exclusive != 0 {
		flag |= os.O_EXCL
	}

	f, err := os.OpenFile(name, flag, filePerm)
	if err != nil {
		return 0, strict.NewUnexpectedFailure("WriteFile", err)
	}

	n, err := f.Write(content)
	if err != nil {
		_ = f.Close()
		return n, strict.NewUnexpectedFailure("WriteFile", err)
	}

	if err := f.Close(); err != nil {
		return n, strict.NewUnexpectedFailure("WriteFile", err)
	}

	return n, nil
}

func fileContent(data any) ([]byte, error) {
	switch v := data.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case []string:
		return []byte(strings.Join(v, "")), nil
	case fmt.Stringer:
		if nilcheck.Interface(v) {
			break
		}

		return []byte(v.String()), nil
	}

	return nil, strict.NewInvalidArgument("WriteFile", "unsupported data type "+strict.TypeName(data))
}

// TempFile creates an empty file with a unique name in dir and returns its
// path. An empty dir means os.TempDir.
func TempFile(dir, prefix string) (string, error) {
	f, err := os.CreateTemp(dir, prefix+"*")
	if err != nil {
		return "", strict.NewUnexpectedFailure("TempFile", err)
	}

	if err := f.Close(); err != nil {
		return "", strict.NewUnexpectedFailure("TempFile", err)
	}

	return f.Name(), nil
}
