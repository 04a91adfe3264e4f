// Package pager pipes command output through a terminal pager such as less.
package pager

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

const (
	pagerEnvVar       = "PAGER"
	fallbackLineCount = 100
)

// Errors
var (
	ErrPagerClosed   = errors.New("cannot write to closed terminal pager")
	ErrPagerNotFound = errors.New("no terminal pager available. Please configure a terminal pager by setting the $PAGER environment variable or install \"less\" or \"more\"")
)

// pager is a writer that is piped to a terminal pager command.
type pager struct {
	writer io.WriteCloser
	cmd    *exec.Cmd
	done   <-chan struct{}
	closed bool
}

// New runs the given terminal pager command and returns a writer that is
// piped to its standard input. When command is empty, the pager configured
// in $PAGER is used, falling back to less and then more.
func New(w io.Writer, command string) (io.WriteCloser, error) {
	args, err := pagerCommand(command)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(args[0], args[1:]...)
	writer, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stdout = w
	cmd.Stderr = os.Stderr

	err = cmd.Start()
	if err != nil {
		return nil, err
	}
	done := make(chan struct{}, 1)
	go func() {
		_ = cmd.Wait()
		done <- struct{}{}
	}()
	return &pager{writer: writer, cmd: cmd, done: done}, nil
}

// NewOrFallback returns New's pager or, when no pager is available, a writer
// that stops after a fixed number of lines.
func NewOrFallback(w io.WriteCloser, command string) (io.WriteCloser, error) {
	p, err := New(w, command)
	if err == ErrPagerNotFound {
		return NewFallback(w), nil
	}
	return p, err
}

// Write pipes the data to the terminal pager.
// It returns ErrPagerClosed if the terminal pager has been closed.
func (p *pager) Write(data []byte) (n int, err error) {
	if p.isClosed() {
		return 0, ErrPagerClosed
	}
	n, err = p.writer.Write(data)
	if err != nil && p.isClosed() {
		return n, ErrPagerClosed
	}
	return n, err
}

// Close closes the writer to the terminal pager and waits for the user to quit it.
func (p *pager) Close() error {
	err := p.writer.Close()
	if err != nil && !p.isClosed() {
		_ = p.cmd.Process.Signal(syscall.SIGINT)
		<-p.done
		return err
	}
	if !p.closed {
		<-p.done
	}
	return nil
}

// isClosed checks if the terminal pager process has been stopped.
func (p *pager) isClosed() bool {
	if p.closed {
		return true
	}
	select {
	case <-p.done:
		p.closed = true
		return true
	default:
		return false
	}
}

// pagerCommand returns the program and arguments of the pager to run.
func pagerCommand(command string) ([]string, error) {
	candidates := []string{command, os.Getenv(pagerEnvVar), "less", "more"}
	for _, candidate := range candidates {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		path, err := exec.LookPath(fields[0])
		if err == nil {
			return append([]string{path}, fields[1:]...), nil
		}
		if candidate == command {
			return nil, err
		}
	}
	return nil, ErrPagerNotFound
}

// NewFallback returns a writer that closes after outputting a fixed number of lines without pagination
// and returns ErrPagerNotFound on the last (or any subsequent) write.
func NewFallback(w io.WriteCloser) io.WriteCloser {
	return &fallbackPager{
		linesLeft: fallbackLineCount,
		writer:    w,
	}
}

type fallbackPager struct {
	writer    io.WriteCloser
	linesLeft int
}

func (p *fallbackPager) Write(data []byte) (int, error) {
	if p.linesLeft == 0 {
		return 0, ErrPagerNotFound
	}

	lines := bytes.Count(data, []byte{'\n'})
	if lines > p.linesLeft {
		data = bytes.Join(bytes.Split(data, []byte{'\n'})[:p.linesLeft], []byte{'\n'})
		data = append(data, '\n')
	}
	p.linesLeft -= bytes.Count(data, []byte{'\n'})
	n, err := p.writer.Write(data)
	if p.linesLeft == 0 {
		err = ErrPagerNotFound
	}
	return n, err
}

func (p *fallbackPager) Close() error {
	return p.writer.Close()
}
