package cli

// Argument is a positional argument of a command.
type Argument struct {
	Value       ArgValue
	Name        string
	Required    bool
	Placeholder string
	Description string
	Hidden      bool
}

// ArgValue is the destination of a parsed argument.
type ArgValue interface {
	Set(string) error
}

// ArgumentRegister sets the values of the arguments in order.
func ArgumentRegister(params []Argument, args []string) error {
	for i, arg := range args {
		err := params[i].Value.Set(arg)
		if err != nil {
			return err
		}
	}
	return nil
}

// StringValue is an ArgValue holding a single string.
type StringValue struct {
	Param string
}

func (s *StringValue) Set(replacer string) error {
	s.Param = replacer
	return nil
}

func getRequired(params []Argument) int {
	required := 0
	for _, arg := range params {
		if arg.Required {
			required++
		}
	}
	return required
}
