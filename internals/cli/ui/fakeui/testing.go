// +build !production

// Package fakeui provides an in-memory implementation of ui.IO to be used in tests.
package fakeui

import (
	"bytes"
	"errors"
	"io"
)

// FakeIO is a helper type for testing that implements the ui.IO interface
type FakeIO struct {
	In        *FakeReader
	Out       *FakeWriter
	PromptIn  *FakeReader
	PromptOut *FakeWriter
	PromptErr error
}

// NewIO creates a new FakeIO with empty buffers.
func NewIO() *FakeIO {
	return &FakeIO{
		In: &FakeReader{
			Buffer: &bytes.Buffer{},
		},
		Out: &FakeWriter{
			Buffer: &bytes.Buffer{},
		},
		PromptIn: &FakeReader{
			Buffer: &bytes.Buffer{},
		},
		PromptOut: &FakeWriter{
			Buffer: &bytes.Buffer{},
		},
	}
}

// Input returns the mocked In.
func (f *FakeIO) Input() io.Reader {
	return f.In
}

// Output returns the mocked Out.
func (f *FakeIO) Output() io.Writer {
	return f.Out
}

// Prompts returns the mocked prompts and error.
func (f *FakeIO) Prompts() (io.Reader, io.Writer, error) {
	return f.PromptIn, f.PromptOut, f.PromptErr
}

func (f *FakeIO) IsInputPiped() bool {
	return f.In.Piped
}

func (f *FakeIO) IsOutputPiped() bool {
	return f.Out.Piped
}

// FakeReader implements the Reader interface.
type FakeReader struct {
	*bytes.Buffer
	Piped   bool
	i       int
	Reads   []string
	ReadErr error
}

// Read returns the mocked ReadErr or reads from the mocked buffer.
func (f *FakeReader) Read(p []byte) (n int, err error) {
	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	if len(f.Reads) > 0 {
		if len(f.Reads) <= f.i {
			return 0, errors.New("no more fake lines to read")
		}
		f.Buffer = bytes.NewBufferString(f.Reads[f.i])
		f.i++
	}
	return f.Buffer.Read(p)
}

// FakeWriter implements the Writer interface.
type FakeWriter struct {
	*bytes.Buffer
	Piped bool
}
