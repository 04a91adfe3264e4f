package ui

import (
	"fmt"
	"strings"

	"github.com/secrethub/secrethub-go/internals/errio"
)

// Errors
var (
	askErr = errio.Namespace("ask")
	// ErrCannotAsk occurs when prompting for input is impossible.
	ErrCannotAsk = askErr.Code("cannot_ask_for_input").Error("Cannot ask for interactive input.\n\n" +
		"This usually happens when you run something non-interactively that needs to ask interactive questions.")
)

// Ask prints out the question and reads the first line of input.
func Ask(io IO, question string) (string, error) {
	r, w, err := io.Prompts()
	if err != nil {
		return "", err
	}

	_, err = fmt.Fprintf(w, "%s", question)
	if err != nil {
		return "", err
	}
	return Readln(r)
}

// ConfirmationType defines what AskYesNo uses as the default answer.
type ConfirmationType int

const (
	// DefaultNone assumes no default [y/n]
	DefaultNone ConfirmationType = iota
	// DefaultNo assumes no as the default answer [y/N]
	DefaultNo
	// DefaultYes assumes yes as the default answer [Y/n]
	DefaultYes
)

// AskYesNo asks the user for confirmation. A user must type in "yes" or "no" and
// then press enter. It has fuzzy matching, so "y", "Y", "yes", "YES", and "Yes"
// all count as confirmations. If no input is given, it will return true with
// DefaultYes and false with DefaultNo. If the input is not recognized, it will
// ask again. The function retries 3 times. If it still has no valid response
// after that, it returns false.
func AskYesNo(io IO, question string, t ConfirmationType) (bool, error) {
	defaultRetry := 3

	for i := 1; i <= defaultRetry; i++ {
		// After defaultRetry tries we assume a default no
		if i == defaultRetry {
			t = DefaultNo
		}

		yesNo := "y/n"
		if t == DefaultNo {
			yesNo = "y/N"
		} else if t == DefaultYes {
			yesNo = "Y/n"
		}

		response, err := Ask(io, fmt.Sprintf("%s [%s]: ", question, yesNo))
		if err != nil {
			return false, err
		}

		response = strings.ToLower(strings.TrimSpace(response))

		if response == "y" || response == "yes" || (response == "" && t == DefaultYes) {
			return true, nil
		} else if response == "n" || response == "no" || (response == "" && t == DefaultNo) {
			return false, nil
		}
	}

	return false, nil
}
