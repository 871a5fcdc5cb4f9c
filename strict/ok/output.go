package ok

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/LerianStudio/lib-strict/strict"
)

// ErrNoBuffer is the cause when an Output operation needs an active buffer
// and none was started.
var ErrNoBuffer = errors.New("no active output buffer")

// Output is a stack of capture buffers in front of a base writer. Writes go
// to the innermost buffer, or straight to the base writer when no buffer is
// active. It is safe for concurrent use.
type Output struct {
	mu    sync.Mutex
	base  io.Writer
	stack []*bytes.Buffer
}

// NewOutput returns an Output writing through to base. A nil base discards.
func NewOutput(base io.Writer) *Output {
	if base == nil {
		base = io.Discard
	}

	return &Output{base: base}
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if top := o.top(); top != nil {
		return top.Write(p)
	}

	n, err := o.base.Write(p)
	if err != nil {
		return n, strict.NewUnexpectedFailure("Write", err)
	}

	return n, nil
}

// Start pushes a new buffer.
func (o *Output) Start() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stack = append(o.stack, new(bytes.Buffer))
}

// Level returns the number of active buffers.
func (o *Output) Level() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.stack)
}

// Clean discards the contents of the innermost buffer.
func (o *Output) Clean() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	top := o.top()
	if top == nil {
		return strict.NewUnexpectedFailure("Clean", ErrNoBuffer)
	}

	top.Reset()

	return nil
}

// Flush sends the contents of the innermost buffer to the next level and
// empties it.
func (o *Output) Flush() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.top() == nil {
		return strict.NewUnexpectedFailure("Flush", ErrNoBuffer)
	}

	return o.flush("Flush")
}

// EndClean discards the innermost buffer.
func (o *Output) EndClean() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.top() == nil {
		return strict.NewUnexpectedFailure("EndClean", ErrNoBuffer)
	}

	o.pop()

	return nil
}

// EndFlush sends the innermost buffer to the next level and removes it.
func (o *Output) EndFlush() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.top() == nil {
		return strict.NewUnexpectedFailure("EndFlush", ErrNoBuffer)
	}

	if err := o.flush("EndFlush"); err != nil {
		return err
	}

	o.pop()

	return nil
}

// GetContents returns the contents of the innermost buffer.
func (o *Output) GetContents() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	top := o.top()
	if top == nil {
		return "", strict.NewUnexpectedFailure("GetContents", ErrNoBuffer)
	}

	return top.String(), nil
}

// GetLength returns the size in bytes of the innermost buffer.
func (o *Output) GetLength() (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	top := o.top()
	if top == nil {
		return 0, strict.NewUnexpectedFailure("GetLength", ErrNoBuffer)
	}

	return top.Len(), nil
}

// GetClean returns the contents of the innermost buffer and removes it.
func (o *Output) GetClean() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	top := o.top()
	if top == nil {
		return "", strict.NewUnexpectedFailure("GetClean", ErrNoBuffer)
	}

	contents := top.String()
	o.pop()

	return contents, nil
}

// GetFlush returns the contents of the innermost buffer, sends them to the
// next level and removes the buffer.
func (o *Output) GetFlush() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	top := o.top()
	if top == nil {
		return "", strict.NewUnexpectedFailure("GetFlush", ErrNoBuffer)
	}

	contents := top.String()

	if err := o.flush("GetFlush"); err != nil {
		return "", err
	}

	o.pop()

	return contents, nil
}

func (o *Output) top() *bytes.Buffer {
	if len(o.stack) == 0 {
		return nil
	}

	return o.stack[len(o.stack)-1]
}

func (o *Output) pop() {
	o.stack[len(o.stack)-1] = nil
	o.stack = o.stack[:len(o.stack)-1]
}

// flush moves the innermost buffer one level down. Callers hold mu and have
// checked that a buffer is active.
func (o *Output) flush(operation string) error {
	top := o.top()

	var next io.Writer = o.base
	if len(o.stack) > 1 {
		next = o.stack[len(o.stack)-2]
	}

	if _, err := next.Write(top.Bytes()); err != nil {
		return strict.NewUnexpectedFailure(operation, err)
	}

	top.Reset()

	return nil
}
