package ui

import (
	"bufio"
	"io"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"github.com/secrethub/secrethub-go/internals/errio"
)

// Errors
var (
	errRead      = errio.Namespace("read")
	ErrReadInput = errRead.Code("read_input").ErrorPref("could not read input: %s")
)

// IO is an interface to work with input/output.
type IO interface {
	Input() io.Reader
	Output() io.Writer
	Prompts() (io.Reader, io.Writer, error)
	IsInputPiped() bool
	IsOutputPiped() bool
}

// UserIO is a middleware between input and output to the CLI program.
type UserIO struct {
	input  *os.File
	output *os.File
	tty    *os.File
}

// NewUserIO creates a new UserIO from os.Stdin and os.Stdout and adds the
// terminal device if it is available.
func NewUserIO() UserIO {
	return UserIO{
		input:  os.Stdin,
		output: os.Stdout,
		tty:    openTTY(),
	}
}

// Input returns the standard input of the program.
func (o UserIO) Input() io.Reader {
	return o.input
}

// Output returns the standard output of the program, translating color
// escape sequences on terminals that need it.
func (o UserIO) Output() io.Writer {
	if !color.NoColor {
		return colorable.NewColorable(o.output)
	}
	return o.output
}

// Prompts simply returns Stdin and Stdout, when both input and output are
// not piped. When either input or output is piped, Prompts attempts to
// bypass stdin and stdout by connecting to the terminal device directly.
// When that is not available, prompting is not possible so an error is returned.
func (o UserIO) Prompts() (io.Reader, io.Writer, error) {
	if o.IsInputPiped() || o.IsOutputPiped() {
		if o.tty != nil {
			return o.tty, o.tty, nil
		}
		return nil, nil, ErrCannotAsk
	}
	return o.input, o.output, nil
}

func (o UserIO) IsInputPiped() bool {
	return isPiped(o.input)
}

func (o UserIO) IsOutputPiped() bool {
	return isPiped(o.output)
}

// isPiped checks whether the file is not attached to a terminal.
// If the file does not exist, it returns false.
func isPiped(file *os.File) bool {
	if _, err := file.Stat(); err != nil {
		return false
	}
	return os.Getenv("TERM") == "dumb" ||
		(!isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()))
}

// Readln reads 1 line of input from a io.Reader. The newline character is not included in the response.
func Readln(r io.Reader) (string, error) {
	s := bufio.NewScanner(r)
	s.Scan()
	err := s.Err()
	if err != nil {
		return "", ErrReadInput(err)
	}
	return s.Text(), nil
}
