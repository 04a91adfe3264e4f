package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/sechub/sechub-cli/internals/dispatch"
	"github.com/sechub/sechub-cli/internals/sechub/fakes"
	"github.com/secrethub/secrethub-go/internals/assert"
)

func clientOf(api securityhubiface.SecurityHubAPI) ClientFunc {
	return func() (securityhubiface.SecurityHubAPI, error) {
		return api, nil
	}
}

func TestCatalog_Descriptors(t *testing.T) {
	c := New(clientOf(&fakes.SecurityHub{}))

	commands := make(map[string]bool)
	for _, d := range c.All() {
		t.Run(d.Name, func(t *testing.T) {
			assert.OK(t, d.Validate())
			assert.Equal(t, commands[d.CommandName()], false)
			commands[d.CommandName()] = true

			for _, p := range d.Params {
				assert.Equal(t, p.Help != "", true)
			}
			if d.Paginated {
				_, ok := d.Param("max-results")
				assert.Equal(t, ok, true)
			}
		})
	}
	assert.Equal(t, len(c.All()), 79)
}

func TestCatalog_Lookup(t *testing.T) {
	c := New(clientOf(&fakes.SecurityHub{}))

	cases := map[string]struct {
		name     string
		expected string
		found    bool
	}{
		"api name": {
			name:     "AcceptAdministratorInvitation",
			expected: "AcceptAdministratorInvitation",
			found:    true,
		},
		"api name lowercase": {
			name:     "getfindings",
			expected: "GetFindings",
			found:    true,
		},
		"command name": {
			name:     "batch-update-findings",
			expected: "BatchUpdateFindings",
			found:    true,
		},
		"configuration policy": {
			name:     "list-configuration-policy-associations",
			expected: "ListConfigurationPolicyAssociations",
			found:    true,
		},
		"unknown": {
			name:  "get-secrets",
			found: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d, found := c.Lookup(tc.name)

			assert.Equal(t, found, tc.found)
			if tc.found {
				assert.Equal(t, d.Name, tc.expected)
			}
		})
	}
}

func TestCatalog_AcceptAdministratorInvitation(t *testing.T) {
	// Arrange
	var requests []*securityhub.AcceptAdministratorInvitationInput
	api := &fakes.SecurityHub{
		AcceptAdministratorInvitationFunc: func(in *securityhub.AcceptAdministratorInvitationInput) (*securityhub.AcceptAdministratorInvitationOutput, error) {
			requests = append(requests, in)
			return &securityhub.AcceptAdministratorInvitationOutput{}, nil
		},
	}
	d, ok := New(clientOf(api)).Lookup("accept-administrator-invitation")
	assert.Equal(t, ok, true)

	inv := dispatch.NewInvocation(d)
	assert.OK(t, inv.Bind("invitation-id", "abc"))
	assert.OK(t, inv.Bind("administrator-id", "111122223333"))
	inv.Force = true

	emitter := &recordingEmitter{}
	runner := dispatch.NewRunner(emitter, nil, nopLogger{})

	// Act
	err := runner.Run(context.Background(), inv)

	// Assert
	assert.OK(t, err)
	assert.Equal(t, requests, []*securityhub.AcceptAdministratorInvitationInput{
		{
			AdministratorId: aws.String("111122223333"),
			InvitationId:    aws.String("abc"),
		},
	})
	assert.Equal(t, len(emitter.records), 0)
}

func TestCatalog_StartConfigurationPolicyAssociation(t *testing.T) {
	// Arrange
	var requests []*securityhub.StartConfigurationPolicyAssociationInput
	api := &fakes.SecurityHub{
		StartConfigurationPolicyAssociationFunc: func(in *securityhub.StartConfigurationPolicyAssociationInput) (*securityhub.StartConfigurationPolicyAssociationOutput, error) {
			requests = append(requests, in)
			return &securityhub.StartConfigurationPolicyAssociationOutput{
				AssociationStatus: aws.String("PENDING"),
			}, nil
		},
	}
	d, ok := New(clientOf(api)).Lookup("start-configuration-policy-association")
	assert.Equal(t, ok, true)

	inv := dispatch.NewInvocation(d)
	assert.OK(t, inv.BindDocument(map[string]interface{}{
		"policy-id": "a1b2c3d4",
		"target":    map[interface{}]interface{}{"AccountId": "111122223333"},
	}))
	inv.Force = true
	emitter := &recordingEmitter{}

	// Act
	err := dispatch.NewRunner(emitter, nil, nopLogger{}).Run(context.Background(), inv)

	// Assert
	assert.OK(t, err)
	assert.Equal(t, requests, []*securityhub.StartConfigurationPolicyAssociationInput{
		{
			ConfigurationPolicyIdentifier: aws.String("a1b2c3d4"),
			Target: &securityhub.Target{
				AccountId: aws.String("111122223333"),
			},
		},
	})
	assert.Equal(t, emitter.records, []interface{}{
		&securityhub.StartConfigurationPolicyAssociationOutput{AssociationStatus: aws.String("PENDING")},
	})
}

func TestCatalog_ClientError(t *testing.T) {
	clientErr := errors.New("no region configured")
	d, _ := New(func() (securityhubiface.SecurityHubAPI, error) {
		return nil, clientErr
	}).Lookup("DescribeHub")

	_, err := d.Call(context.Background(), &securityhub.DescribeHubInput{})

	assert.Equal(t, err, clientErr)
}

func TestCatalog_GetFindingsPages(t *testing.T) {
	// Arrange
	pages := map[string]*securityhub.GetFindingsOutput{
		"": {
			Findings:  []*securityhub.AwsSecurityFinding{{Id: aws.String("f1")}},
			NextToken: aws.String("page-2"),
		},
		"page-2": {
			Findings: []*securityhub.AwsSecurityFinding{{Id: aws.String("f2")}, {Id: aws.String("f3")}},
		},
	}
	calls := 0
	api := &fakes.SecurityHub{
		GetFindingsFunc: func(in *securityhub.GetFindingsInput) (*securityhub.GetFindingsOutput, error) {
			calls++
			assert.Equal(t, aws.Int64Value(in.MaxResults), int64(2))
			return pages[aws.StringValue(in.NextToken)], nil
		},
	}
	d, _ := New(clientOf(api)).Lookup("get-findings")

	inv := dispatch.NewInvocation(d)
	assert.OK(t, inv.Bind("max-results", int64(2)))
	emitter := &recordingEmitter{}

	// Act
	err := dispatch.NewRunner(emitter, nil, nopLogger{}).Run(context.Background(), inv)

	// Assert
	assert.OK(t, err)
	assert.Equal(t, calls, 2)
	assert.Equal(t, emitter.records, []interface{}{
		pages[""].Findings[0],
		pages["page-2"].Findings[0],
		pages["page-2"].Findings[1],
	})
}

type recordingEmitter struct {
	records []interface{}
}

func (e *recordingEmitter) Emit(record interface{}) error {
	e.records = append(e.records, record)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Noticef(string, ...interface{})  {}
func (nopLogger) Warningf(string, ...interface{}) {}
