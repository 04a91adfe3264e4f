package sechub

import (
	"fmt"

	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/catalog"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/ui/fakeui"
	"github.com/sechub/sechub-cli/internals/sechub/fakes"
)

type fakeLogger struct {
	debug    []string
	notices  []string
	warnings []string
	errors   []string
}

func (l *fakeLogger) Debugf(format string, args ...interface{}) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Noticef(format string, args ...interface{}) {
	l.notices = append(l.notices, fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// newTestApp returns an application with a command for every operation,
// backed by the given fake.
func newTestApp(api *fakes.SecurityHub, io *fakeui.FakeIO, logger *fakeLogger, format outputFormat) *cli.App {
	app := cli.NewApp(ApplicationName, "test")
	output := NewOutput(io)
	output.format = format
	c := catalog.New(func() (securityhubiface.SecurityHubAPI, error) {
		return api, nil
	})
	for _, d := range c.All() {
		cmd := NewOperationCommand(d, io, logger, output)
		cmd.Register(app)
	}
	return app
}
