package cli

import (
	"errors"
	"fmt"
)

func (c *CommandClause) argumentError(args []string) error {
	if len(args) >= getRequired(c.Args) && len(args) <= len(c.Args) {
		return nil
	}
	errorText, minimum, maximum := "", getRequired(c.Args), len(c.Args)

	if minimum == maximum {
		errorText += fmt.Sprintf("`%s` requires exactly %d argument(s).", c.fullCommand(), minimum)
	} else {
		errorText += fmt.Sprintf("`%s` requires between %d and %d arguments.", c.fullCommand(), minimum, maximum)
	}
	errorText += "\n\nSee `" + c.fullCommand() + " --help` for help.\n\n" + useLine(c.Cmd, c.Args)
	errorText += "\n\n" + c.Cmd.Short

	return errors.New(errorText)
}
