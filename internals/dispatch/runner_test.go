package dispatch

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/sechub/sechub-cli/internals/cli/progress/fakeprogress"
	"github.com/secrethub/secrethub-go/internals/assert"
)

func findingsPage(token string, ids ...string) *securityhub.GetFindingsOutput {
	page := &securityhub.GetFindingsOutput{}
	for _, id := range ids {
		page.Findings = append(page.Findings, &securityhub.AwsSecurityFinding{Id: aws.String(id)})
	}
	if token != "" {
		page.NextToken = aws.String(token)
	}
	return page
}

func emittedIDs(records []interface{}) []string {
	var ids []string
	for _, record := range records {
		ids = append(ids, aws.StringValue(record.(*securityhub.AwsSecurityFinding).Id))
	}
	return ids
}

func TestRunner_AcceptInvitation(t *testing.T) {
	// Arrange
	backend := &fakeBackend{
		outputs: []interface{}{&securityhub.AcceptAdministratorInvitationOutput{}},
	}
	emitter := &fakeEmitter{}
	confirmer := &fakeConfirmer{answer: true}
	logger := &fakeLogger{}
	runner := NewRunner(emitter, confirmer, logger)

	inv := NewInvocation(acceptInvitationDescriptor(backend))
	assert.OK(t, inv.Bind("InvitationId", "abc"))
	assert.OK(t, inv.Bind("administrator-id", "111122223333"))

	// Act
	err := runner.Run(context.Background(), inv)

	// Assert
	assert.OK(t, err)
	assert.Equal(t, backend.inputs, []interface{}{
		&securityhub.AcceptAdministratorInvitationInput{
			AdministratorId: aws.String("111122223333"),
			InvitationId:    aws.String("abc"),
		},
	})
	assert.Equal(t, len(emitter.records), 0)
	assert.Equal(t, confirmer.asked, 1)
	assert.Equal(t, confirmer.targets, []string{"111122223333"})
	assert.Equal(t, len(logger.warnings), 0)
}

func TestRunner_Run(t *testing.T) {
	cases := map[string]struct {
		descriptor func(*fakeBackend) *Descriptor
		backend    *fakeBackend
		confirm    *fakeConfirmer
		prepare    func(inv *Invocation)
		calls      int
		emitted    []string
		notices    int
		warnings   int
		err        error
	}{
		"single page": {
			descriptor: getFindingsDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{findingsPage("", "f1", "f2")},
			},
			calls:   1,
			emitted: []string{"f1", "f2"},
		},
		"every page in order": {
			descriptor: getFindingsDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{
					findingsPage("t1", "f1", "f2"),
					findingsPage("t2", "f3"),
					findingsPage("", "f4", "f5"),
				},
			},
			calls:   3,
			emitted: []string{"f1", "f2", "f3", "f4", "f5"},
		},
		"no auto iteration": {
			descriptor: getFindingsDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{
					findingsPage("t1", "f1"),
					findingsPage("", "f2"),
				},
			},
			prepare: func(inv *Invocation) {
				inv.NoAutoIterate = true
			},
			calls:   1,
			emitted: []string{"f1"},
			notices: 1,
		},
		"repeated cursor": {
			descriptor: getFindingsDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{
					findingsPage("t1", "f1"),
					findingsPage("t1", "f2"),
					findingsPage("", "f3"),
				},
			},
			calls:    2,
			emitted:  []string{"f1", "f2"},
			warnings: 1,
		},
		"declined": {
			descriptor: acceptInvitationDescriptor,
			backend:    &fakeBackend{},
			confirm:    &fakeConfirmer{answer: false},
			prepare: func(inv *Invocation) {
				_ = inv.Bind("invitation-id", "abc")
				_ = inv.Bind("administrator-id", "111122223333")
			},
			calls: 0,
		},
		"forced": {
			descriptor: acceptInvitationDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{&securityhub.AcceptAdministratorInvitationOutput{}},
			},
			confirm: &fakeConfirmer{err: errors.New("should not be asked")},
			prepare: func(inv *Invocation) {
				inv.Force = true
				_ = inv.Bind("invitation-id", "abc")
				_ = inv.Bind("administrator-id", "111122223333")
			},
			calls: 1,
		},
		"confirmation error": {
			descriptor: acceptInvitationDescriptor,
			backend:    &fakeBackend{},
			confirm:    &fakeConfirmer{err: errors.New("cannot ask")},
			calls:      0,
			err:        errors.New("cannot ask"),
		},
		"missing required warns": {
			descriptor: acceptInvitationDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{&securityhub.AcceptAdministratorInvitationOutput{}},
			},
			prepare: func(inv *Invocation) {
				_ = inv.Bind("invitation-id", "  ")
			},
			calls:    1,
			warnings: 2,
		},
		"echo input": {
			descriptor: acceptInvitationDescriptor,
			backend: &fakeBackend{
				outputs: []interface{}{&securityhub.AcceptAdministratorInvitationOutput{}},
			},
			prepare: func(inv *Invocation) {
				_ = inv.Bind("invitation-id", "abc")
				_ = inv.Bind("administrator-id", "111122223333")
				inv.Selector = EchoInput("invitation-id")
			},
			calls: 1,
		},
		"failure": {
			descriptor: getFindingsDescriptor,
			backend: &fakeBackend{
				err: errors.New("AccessDeniedException"),
			},
			calls: 1,
			err: &InvocationError{
				Operation: "GetFindings",
				Err:       errors.New("AccessDeniedException"),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// Arrange
			emitter := &fakeEmitter{}
			logger := &fakeLogger{}
			confirmer := tc.confirm
			if confirmer == nil {
				confirmer = &fakeConfirmer{answer: true}
			}
			runner := NewRunner(emitter, confirmer, logger)

			inv := NewInvocation(tc.descriptor(tc.backend))
			if tc.prepare != nil {
				tc.prepare(inv)
			}

			// Act
			err := runner.Run(context.Background(), inv)

			// Assert
			assert.Equal(t, err, tc.err)
			assert.Equal(t, len(tc.backend.inputs), tc.calls)
			if inv.Selector.Kind == SelectField {
				assert.Equal(t, emittedIDs(emitter.records), tc.emitted)
			}
			assert.Equal(t, len(logger.notices), tc.notices)
			assert.Equal(t, len(logger.warnings), tc.warnings)
		})
	}
}

func TestRunner_CursorPassedToNextPage(t *testing.T) {
	// Arrange
	backend := &fakeBackend{
		outputs: []interface{}{
			findingsPage("t1", "f1"),
			findingsPage("", "f2"),
		},
	}
	runner := NewRunner(&fakeEmitter{}, &fakeConfirmer{}, &fakeLogger{})
	inv := NewInvocation(getFindingsDescriptor(backend))
	assert.OK(t, inv.Bind("max-results", int64(1)))
	inv.NextToken = "t0"

	// Act
	err := runner.Run(context.Background(), inv)

	// Assert
	assert.OK(t, err)
	assert.Equal(t, backend.inputs, []interface{}{
		&securityhub.GetFindingsInput{MaxResults: aws.Int64(1), NextToken: aws.String("t0")},
		&securityhub.GetFindingsInput{MaxResults: aws.Int64(1), NextToken: aws.String("t1")},
	})
}

func TestRunner_EchoInput(t *testing.T) {
	// Arrange
	backend := &fakeBackend{
		outputs: []interface{}{&securityhub.AcceptAdministratorInvitationOutput{}},
	}
	emitter := &fakeEmitter{}
	runner := NewRunner(emitter, &fakeConfirmer{}, &fakeLogger{})
	inv := NewInvocation(acceptInvitationDescriptor(backend))
	assert.OK(t, inv.Bind("invitation-id", "abc"))
	inv.Force = true
	inv.Selector = EchoInput("invitation-id")

	// Act
	err := runner.Run(context.Background(), inv)

	// Assert
	assert.OK(t, err)
	assert.Equal(t, emitter.records, []interface{}{"abc"})
}

func TestRunner_CancelledBetweenPages(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := &fakeBackend{
		outputs: []interface{}{
			findingsPage("t1", "f1"),
			findingsPage("", "f2"),
		},
		onCall: func(call int) {
			cancel()
		},
	}
	emitter := &fakeEmitter{}
	runner := NewRunner(emitter, &fakeConfirmer{}, &fakeLogger{})

	// Act
	err := runner.Run(ctx, NewInvocation(getFindingsDescriptor(backend)))

	// Assert
	assert.Equal(t, err, &InvocationError{Operation: "GetFindings", Err: ErrInterrupted})
	assert.Equal(t, len(backend.inputs), 1)
	assert.Equal(t, emittedIDs(emitter.records), []string{"f1"})
}

func TestRunner_OutputClosed(t *testing.T) {
	backend := &fakeBackend{
		outputs: []interface{}{
			findingsPage("t1", "f1"),
			findingsPage("", "f2"),
		},
	}
	runner := NewRunner(&fakeEmitter{err: ErrOutputClosed}, &fakeConfirmer{}, &fakeLogger{})

	err := runner.Run(context.Background(), NewInvocation(getFindingsDescriptor(backend)))

	assert.OK(t, err)
	assert.Equal(t, len(backend.inputs), 1)
}

func TestRunner_Progress(t *testing.T) {
	cases := map[string]struct {
		descriptor    func(*fakeBackend) *Descriptor
		output        interface{}
		noAutoIterate bool
		expected      int
	}{
		"paginated": {
			descriptor: getFindingsDescriptor,
			output:     findingsPage("", "f1"),
			expected:   1,
		},
		"no auto iteration": {
			descriptor:    getFindingsDescriptor,
			output:        findingsPage("", "f1"),
			noAutoIterate: true,
			expected:      0,
		},
		"not paginated": {
			descriptor: acceptInvitationDescriptor,
			output:     &securityhub.AcceptAdministratorInvitationOutput{},
			expected:   0,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			backend := &fakeBackend{
				outputs: []interface{}{tc.output},
			}
			printer := &fakeprogress.Printer{}
			runner := NewRunner(&fakeEmitter{}, &fakeConfirmer{answer: true}, &fakeLogger{}, WithProgress(printer))

			inv := NewInvocation(tc.descriptor(backend))
			inv.NoAutoIterate = tc.noAutoIterate
			err := runner.Run(context.Background(), inv)

			assert.OK(t, err)
			assert.Equal(t, printer.Started, tc.expected)
			assert.Equal(t, printer.Stopped, tc.expected)
		})
	}
}

func TestRunner_NameResolutionFailure(t *testing.T) {
	dnsErr := &net.DNSError{
		Err:        "no such host",
		Name:       "securityhub.xx-nowhere-1.amazonaws.com",
		IsNotFound: true,
	}
	urlErr := &url.Error{
		Op:  "Post",
		URL: "https://securityhub.xx-nowhere-1.amazonaws.com/findings",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: dnsErr},
	}

	cases := map[string]struct {
		err      error
		rewrapped bool
	}{
		"sdk request error": {
			err:      awserr.New("RequestError", "send request failed", urlErr),
			rewrapped: true,
		},
		"bare dns error": {
			err:      dnsErr,
			rewrapped: true,
		},
		"service error": {
			err:      awserr.New("InvalidAccessException", "Account is not subscribed to AWS Security Hub", nil),
			rewrapped: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// Arrange
			backend := &fakeBackend{err: tc.err}
			runner := NewRunner(&fakeEmitter{}, &fakeConfirmer{}, &fakeLogger{})

			// Act
			err := runner.Run(context.Background(), NewInvocation(getFindingsDescriptor(backend)))

			// Assert
			var invErr *InvocationError
			assert.Equal(t, errors.As(err, &invErr), true)
			assert.Equal(t, len(backend.inputs), 1)
			if tc.rewrapped {
				assert.Equal(t, invErr.Err.Error(), ErrEndpointUnreachable(tc.err).Error())
			} else {
				assert.Equal(t, invErr.Err, tc.err)
			}
		})
	}
}

func TestRunner_RunAll(t *testing.T) {
	// Arrange
	ok := &fakeBackend{
		outputs: []interface{}{
			&securityhub.AcceptAdministratorInvitationOutput{},
			&securityhub.AcceptAdministratorInvitationOutput{},
		},
	}
	failing := &fakeBackend{err: errors.New("ResourceNotFoundException")}

	first := NewInvocation(acceptInvitationDescriptor(ok))
	_ = first.Bind("administrator-id", "111122223333")
	second := NewInvocation(acceptInvitationDescriptor(failing))
	_ = second.Bind("administrator-id", "444455556666")
	third := NewInvocation(acceptInvitationDescriptor(ok))
	_ = third.Bind("administrator-id", "777788889999")

	runner := NewRunner(&fakeEmitter{}, &fakeConfirmer{answer: true}, &fakeLogger{})

	// Act
	results := runner.RunAll(context.Background(), []*Invocation{first, second, third})

	// Assert
	assert.Equal(t, len(results), 3)
	assert.Equal(t, len(ok.inputs), 2)
	assert.Equal(t, len(failing.inputs), 1)

	failed := Failed(results)
	assert.Equal(t, len(failed), 1)
	assert.Equal(t, failed[0].Index, 1)
	assert.Equal(t, failed[0].Err, &InvocationError{
		Operation: "AcceptAdministratorInvitation",
		Target:    "444455556666",
		Err:       errors.New("ResourceNotFoundException"),
	})
}
