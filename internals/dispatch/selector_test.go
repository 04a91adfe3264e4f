package dispatch

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/secrethub/secrethub-go/internals/assert"
)

func TestParseSelector(t *testing.T) {
	cases := map[string]struct {
		descriptor *Descriptor
		expr       string
		expected   Selector
		err        error
	}{
		"default none": {
			descriptor: acceptInvitationDescriptor(&fakeBackend{}),
			expected:   Selector{Kind: SelectNone},
		},
		"default field": {
			descriptor: getFindingsDescriptor(&fakeBackend{}),
			expected:   NamedField("Findings"),
		},
		"whole response": {
			descriptor: getFindingsDescriptor(&fakeBackend{}),
			expr:       "*",
			expected:   WholeResponse(),
		},
		"field case insensitive": {
			descriptor: getFindingsDescriptor(&fakeBackend{}),
			expr:       "nexttoken",
			expected:   NamedField("NextToken"),
		},
		"echo by name": {
			descriptor: acceptInvitationDescriptor(&fakeBackend{}),
			expr:       "^invitation-id",
			expected:   EchoInput("invitation-id"),
		},
		"echo by field": {
			descriptor: acceptInvitationDescriptor(&fakeBackend{}),
			expr:       "^InvitationId",
			expected:   EchoInput("invitation-id"),
		},
		"unknown field": {
			descriptor: getFindingsDescriptor(&fakeBackend{}),
			expr:       "Finding",
			err:        ErrUnknownSelectorField("GetFindings", "Finding"),
		},
		"unknown echo": {
			descriptor: acceptInvitationDescriptor(&fakeBackend{}),
			expr:       "^MasterId",
			err:        ErrUnknownEchoParam("MasterId", "AcceptAdministratorInvitation"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// Act
			actual, err := ParseSelector(tc.expr, tc.descriptor)

			// Assert
			assert.Equal(t, err, tc.err)
			if tc.err == nil {
				assert.Equal(t, actual, tc.expected)
			}
		})
	}
}

func TestSelector_Project(t *testing.T) {
	findings := []*securityhub.AwsSecurityFinding{
		{Id: aws.String("finding-1")},
		{Id: aws.String("finding-2")},
	}
	output := &securityhub.GetFindingsOutput{
		Findings:  findings,
		NextToken: aws.String("token"),
	}

	cases := map[string]struct {
		selector Selector
		output   interface{}
		expected []interface{}
	}{
		"list element by element": {
			selector: NamedField("Findings"),
			output:   output,
			expected: []interface{}{findings[0], findings[1]},
		},
		"scalar dereferenced": {
			selector: NamedField("NextToken"),
			output:   output,
			expected: []interface{}{"token"},
		},
		"unset field": {
			selector: NamedField("NextToken"),
			output:   &securityhub.GetFindingsOutput{},
			expected: nil,
		},
		"whole response": {
			selector: WholeResponse(),
			output:   output,
			expected: []interface{}{output},
		},
		"none": {
			selector: Selector{Kind: SelectNone},
			output:   output,
			expected: nil,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.selector.project(tc.output), tc.expected)
		})
	}
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, WholeResponse().String(), "*")
	assert.Equal(t, EchoInput("invitation-id").String(), "^invitation-id")
	assert.Equal(t, NamedField("Findings").String(), "Findings")
}
