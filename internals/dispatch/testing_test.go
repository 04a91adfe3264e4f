package dispatch

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/service/securityhub"
)

type fakeBackend struct {
	inputs  []interface{}
	outputs []interface{}
	err     error
	// onCall is invoked before the call returns, e.g. to cancel a context.
	onCall func(call int)
}

func (b *fakeBackend) call(ctx context.Context, input interface{}) (interface{}, error) {
	n := len(b.inputs)
	b.inputs = append(b.inputs, input)
	if b.onCall != nil {
		b.onCall(n)
	}
	if b.err != nil {
		return nil, b.err
	}
	if n >= len(b.outputs) {
		return nil, fmt.Errorf("unexpected call %d", n+1)
	}
	return b.outputs[n], nil
}

type fakeEmitter struct {
	records []interface{}
	err     error
}

func (e *fakeEmitter) Emit(record interface{}) error {
	if e.err != nil {
		return e.err
	}
	e.records = append(e.records, record)
	return nil
}

type fakeConfirmer struct {
	answer  bool
	err     error
	asked   int
	targets []string
}

func (c *fakeConfirmer) Confirm(d *Descriptor, target string) (bool, error) {
	c.asked++
	c.targets = append(c.targets, target)
	return c.answer, c.err
}

type fakeLogger struct {
	debug    []string
	notices  []string
	warnings []string
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

func acceptInvitationDescriptor(b *fakeBackend) *Descriptor {
	return &Descriptor{
		Name: "AcceptAdministratorInvitation",
		Params: []Param{
			{Name: "administrator-id", Field: "AdministratorId", Required: true},
			{Name: "invitation-id", Field: "InvitationId", Required: true},
		},
		Mutating: true,
		Target:   []string{"administrator-id"},
		PassThru: "invitation-id",
		NewInput: func() interface{} {
			return &securityhub.AcceptAdministratorInvitationInput{}
		},
		NewOutput: func() interface{} {
			return &securityhub.AcceptAdministratorInvitationOutput{}
		},
		Call: b.call,
	}
}

func batchUpdateFindingsDescriptor(b *fakeBackend) *Descriptor {
	return &Descriptor{
		Name: "BatchUpdateFindings",
		Params: []Param{
			{Name: "finding-identifiers", Field: "FindingIdentifiers", Type: TypeDocument, Required: true},
			{Name: "note-text", Field: "Note.Text"},
			{Name: "note-updated-by", Field: "Note.UpdatedBy"},
			{Name: "severity-label", Field: "Severity.Label"},
			{Name: "severity-normalized", Field: "Severity.Normalized", Type: TypeInt},
			{Name: "confidence", Field: "Confidence", Type: TypeInt},
			{Name: "types", Field: "Types", Type: TypeStringList},
			{Name: "user-defined-fields", Field: "UserDefinedFields", Type: TypeStringMap},
			{Name: "verification-state", Field: "VerificationState", Aliases: []string{"state"}},
		},
		Select:   "UnprocessedFindings",
		Mutating: true,
		NewInput: func() interface{} {
			return &securityhub.BatchUpdateFindingsInput{}
		},
		NewOutput: func() interface{} {
			return &securityhub.BatchUpdateFindingsOutput{}
		},
		Call: b.call,
	}
}

func getFindingsDescriptor(b *fakeBackend) *Descriptor {
	return &Descriptor{
		Name: "GetFindings",
		Params: []Param{
			{Name: "filters", Field: "Filters", Type: TypeDocument},
			{Name: "max-results", Field: "MaxResults", Type: TypeInt},
		},
		Select:    "Findings",
		Paginated: true,
		NewInput: func() interface{} {
			return &securityhub.GetFindingsInput{}
		},
		NewOutput: func() interface{} {
			return &securityhub.GetFindingsOutput{}
		},
		Call: b.call,
	}
}
