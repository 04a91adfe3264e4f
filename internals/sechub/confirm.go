package sechub

import (
	"fmt"

	"github.com/sechub/sechub-cli/internals/cli/ui"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

// promptConfirmer asks the user on the terminal whether a mutating operation should proceed.
type promptConfirmer struct {
	io ui.IO
}

// Confirm asks for confirmation, defaulting to no. It returns ErrCannotDoWithoutForce
// when there is no terminal to ask on.
func (c promptConfirmer) Confirm(d *dispatch.Descriptor, target string) (bool, error) {
	question := fmt.Sprintf("Are you sure you want to run %s", d.Name)
	if target != "" {
		question += " on " + target
	}
	question += "?"

	ok, err := ui.AskYesNo(c.io, question, ui.DefaultNo)
	if err == ui.ErrCannotAsk {
		return false, ErrCannotDoWithoutForce
	}
	return ok, err
}
