package sechub

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/catalog"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/ui/fakeui"
	"github.com/sechub/sechub-cli/internals/sechub/fakes"
	"github.com/secrethub/secrethub-go/internals/assert"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(func() (securityhubiface.SecurityHubAPI, error) {
		return &fakes.SecurityHub{}, nil
	})
}

func TestOperationsLsCommand_Run(t *testing.T) {
	cases := map[string]struct {
		cmd       OperationsLsCommand
		format    outputFormat
		contains  []string
		excludes  []string
		firstLine string
	}{
		"table": {
			contains: []string{
				"accept-administrator-invitation",
				"get-findings",
				"write",
				"list",
				"read",
			},
			firstLine: "COMMAND",
		},
		"quiet mutating": {
			cmd: OperationsLsCommand{
				quiet:    true,
				mutating: true,
			},
			contains:  []string{"accept-administrator-invitation\n", "invite-members\n"},
			excludes:  []string{"get-findings", "describe-hub"},
			firstLine: "accept-administrator-invitation",
		},
		"quiet paginated": {
			cmd: OperationsLsCommand{
				quiet:     true,
				paginated: true,
			},
			contains: []string{"get-findings\n", "list-members\n"},
			excludes: []string{"accept-administrator-invitation", "describe-hub"},
		},
		"json": {
			format: formatJSON,
			contains: []string{
				`"Command":"get-findings"`,
				`"Kind":"list"`,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// Arrange
			io := fakeui.NewIO()
			output := NewOutput(io)
			output.format = tc.format
			cmd := tc.cmd
			cmd.io = io
			cmd.catalog = testCatalog()
			cmd.output = output
			cmd.terminalWidth = func() int { return 160 }

			// Act
			err := cmd.Run()

			// Assert
			assert.OK(t, err)
			out := io.Out.String()
			for _, s := range tc.contains {
				assert.Equal(t, strings.Contains(out, s), true)
			}
			for _, s := range tc.excludes {
				assert.Equal(t, strings.Contains(out, s), false)
			}
			if tc.firstLine != "" {
				assert.Equal(t, strings.HasPrefix(out, tc.firstLine), true)
			}
		})
	}
}

func TestOperationsDescribeCommand_JSON(t *testing.T) {
	// Arrange
	io := fakeui.NewIO()
	output := NewOutput(io)
	output.format = formatJSON
	cmd := NewOperationsDescribeCommand(io, testCatalog(), output)
	cmd.name = cli.StringValue{Param: "AcceptAdministratorInvitation"}

	// Act
	err := cmd.Run()

	// Assert
	assert.OK(t, err)
	var actual operationDescription
	assert.OK(t, json.Unmarshal(io.Out.Bytes(), &actual))
	assert.Equal(t, actual.Operation, "AcceptAdministratorInvitation")
	assert.Equal(t, actual.Command, "accept-administrator-invitation")
	assert.Equal(t, actual.Output, "nothing")
	assert.Equal(t, actual.Mutating, true)
	assert.Equal(t, actual.Paginated, false)
	assert.Equal(t, actual.PassThru, "invitation-id")
	assert.Equal(t, len(actual.Parameters), 2)
	for _, p := range actual.Parameters {
		assert.Equal(t, p.Required, true)
		assert.Equal(t, p.Type, "string")
	}
}

func TestOperationsDescribeCommand_Text(t *testing.T) {
	io := fakeui.NewIO()
	cmd := NewOperationsDescribeCommand(io, testCatalog(), NewOutput(io))
	cmd.name = cli.StringValue{Param: "get-findings"}

	err := cmd.Run()

	assert.OK(t, err)
	out := io.Out.String()
	assert.Equal(t, strings.HasPrefix(out, "Operation:"), true)
	assert.Equal(t, strings.Contains(out, "sechub get-findings"), true)
	assert.Equal(t, strings.Contains(out, "Findings"), true)
	assert.Equal(t, strings.Contains(out, "--max-results"), true)
	assert.Equal(t, strings.Contains(out, "FLAG"), true)
}

func TestOperationsDescribeCommand_Unknown(t *testing.T) {
	io := fakeui.NewIO()
	cmd := NewOperationsDescribeCommand(io, testCatalog(), NewOutput(io))
	cmd.name = cli.StringValue{Param: "get-secrets"}

	err := cmd.Run()

	assert.Equal(t, err, ErrUnknownOperation("get-secrets"))
	assert.Equal(t, io.Out.String(), "")
}
