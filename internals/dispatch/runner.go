package dispatch

import (
	"context"
	"reflect"
	"time"

	"github.com/docker/go-units"
	"github.com/sechub/sechub-cli/internals/cli/progress"
)

// Logger receives the diagnostics of a Runner.
type Logger interface {
	Debugf(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// Confirmer asks whether a mutating operation should be performed on a target.
// Returning an error aborts the invocation with that error.
type Confirmer interface {
	Confirm(d *Descriptor, target string) (bool, error)
}

// Emitter writes the records selected from the responses.
type Emitter interface {
	Emit(record interface{}) error
}

// Runner executes invocations against the backends of their operations.
type Runner struct {
	emitter   Emitter
	confirmer Confirmer
	logger    Logger
	progress  progress.Printer
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress shows progress while paginated operations iterate through their pages.
func WithProgress(p progress.Printer) Option {
	return func(r *Runner) {
		r.progress = p
	}
}

// WithClock sets the clock used to time invocations.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a Runner that writes its results to the given emitter.
func NewRunner(emitter Emitter, confirmer Confirmer, logger Logger, opts ...Option) *Runner {
	r := &Runner{
		emitter:   emitter,
		confirmer: confirmer,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs a single invocation.
//
// Mutating operations are confirmed first, unless forced. When the
// confirmation is declined, nothing is called and nil is returned.
// Required parameters that are not bound produce a warning, not an error:
// the service is left to reject the request.
//
// Paginated operations are called repeatedly until the response carries
// no cursor, unless automatic iteration is disabled. Cancellation of the
// context is checked between pages.
//
// A failure of the backend is returned as an *InvocationError.
func (r *Runner) Run(ctx context.Context, inv *Invocation) error {
	d := inv.Descriptor
	target := inv.Target()

	if d.Mutating && !inv.Force {
		confirmed, err := r.confirmer.Confirm(d, target)
		if err != nil {
			return err
		}
		if !confirmed {
			r.logger.Debugf("%s was not confirmed, skipping", d.Name)
			return nil
		}
	}

	for _, p := range d.missingRequired(inv.Values) {
		r.logger.Warningf("%s: required parameter --%s is not set", d.CommandName(), p.Name)
	}

	iterate := d.Paginated && !inv.NoAutoIterate
	if iterate && r.progress != nil {
		r.progress.Start()
		defer r.progress.Stop()
	}

	start := r.now()
	cursor := inv.NextToken
	seen := make(map[string]bool)
	pages, emitted := 0, 0
	for {
		if pages > 0 {
			if ctx.Err() != nil {
				return newInvocationError(d, target, ErrInterrupted)
			}
		}

		input, err := BuildRequest(d, inv.Values)
		if err != nil {
			return newInvocationError(d, target, err)
		}
		if d.Paginated && cursor != "" {
			err = setField(reflect.ValueOf(input), d.inputCursor(), cursor)
			if err != nil {
				return newInvocationError(d, target, err)
			}
		}

		output, err := d.Call(ctx, input)
		if err != nil {
			return newInvocationError(d, target, err)
		}
		pages++

		for _, record := range inv.Selector.project(output) {
			err = r.emitter.Emit(record)
			if err == ErrOutputClosed {
				return nil
			} else if err != nil {
				return newInvocationError(d, target, err)
			}
			emitted++
		}

		if !d.Paginated {
			break
		}
		next := nextCursor(output, d.outputCursor())
		if next == "" {
			break
		}
		if inv.NoAutoIterate {
			r.logger.Noticef("more results are available, continue with --next-token %s", next)
			break
		}
		if seen[next] {
			r.logger.Warningf("%s returned the same cursor twice, stopping", d.Name)
			break
		}
		seen[next] = true
		cursor = next
	}

	if inv.Selector.Kind == SelectEchoInput {
		if value, ok := inv.Values[inv.Selector.Name]; ok {
			err := r.emitter.Emit(value)
			if err != nil && err != ErrOutputClosed {
				return newInvocationError(d, target, err)
			}
		}
	}

	r.logger.Debugf("%s: %d call(s), %d record(s) in %s", d.Name, pages, emitted, units.HumanDuration(r.now().Sub(start)))
	return nil
}

func nextCursor(output interface{}, name string) string {
	field, ok := outputField(output, name)
	if !ok {
		return ""
	}
	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return ""
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}

// Result is the outcome of one invocation of a batch.
type Result struct {
	Index      int
	Invocation *Invocation
	Err        error
}

// RunAll performs the invocations in order. A failing invocation does not
// stop the ones after it; every failure is captured in its Result.
// Invocations that have not started when the context is cancelled fail with ErrInterrupted.
func (r *Runner) RunAll(ctx context.Context, invocations []*Invocation) []Result {
	results := make([]Result, len(invocations))
	for i, inv := range invocations {
		results[i] = Result{Index: i, Invocation: inv}
		if ctx.Err() != nil {
			results[i].Err = newInvocationError(inv.Descriptor, inv.Target(), ErrInterrupted)
			continue
		}
		results[i].Err = r.Run(ctx, inv)
	}
	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}
